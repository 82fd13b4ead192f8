package flatten

import (
	"io/fs"
	"path/filepath"
)

// CollectOptions configures Collect.
type CollectOptions struct {
	Rename bool
	Strict bool
}

// Collect walks root and returns the work list for every file strictly nested
// below it. Files directly in root never appear in the plan. root must be
// canonical (see sandbox.ResolveRoot).
//
// Unreadable entries are recorded in Plan.Skipped and the walk continues,
// unless opts.Strict is set, in which case the first one aborts with an
// OpError. An unreadable root is always fatal.
func Collect(root string, opts CollectOptions) (*Plan, error) {
	plan := &Plan{Root: root}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root || opts.Strict {
				return &OpError{Op: OpWalk, Path: path, Err: err}
			}
			plan.Skipped = append(plan.Skipped, SkippedEntry{Path: path, Err: err})
			return nil
		}
		if path == root {
			return nil
		}
		if d.IsDir() {
			plan.Dirs = append(plan.Dirs, path)
			return nil
		}

		parent := filepath.Dir(path)
		if parent == root {
			return nil
		}

		var size int64
		if info, err := d.Info(); err == nil {
			size = info.Size()
		}

		plan.Moves = append(plan.Moves, PendingMove{
			Source:      path,
			Destination: filepath.Join(root, destinationName(parent, d.Name(), opts.Rename)),
			Size:        size,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return plan, nil
}

// destinationName returns the root-level name for a file. In rename mode
// only the immediate parent is used as prefix, whatever the depth.
func destinationName(parent, name string, rename bool) string {
	if !rename {
		return name
	}
	return filepath.Base(parent) + "_" + name
}
