package flatten

import (
	"cmp"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/thatjuan/organize/internal/sandbox"
)

// PruneOptions configures Prune.
type PruneOptions struct {
	DryRun bool
	Strict bool
	// Gone holds paths to count as already absent. A dry run passes the
	// sources of planned moves so pruning can be previewed.
	Gone map[string]struct{}
}

// PruneResult holds the directories removed (or, in a dry run, that would be).
type PruneResult struct {
	Removed []string
	Skipped []SkippedEntry
}

// Prune removes every empty directory below root, deepest first, so a parent
// that only held empty directories goes in the same pass. A directory holding
// anything at inspection time is kept. Failing to read or remove a directory
// is fatal.
func Prune(root string, opts PruneOptions) (*PruneResult, error) {
	result := &PruneResult{}
	unreadable := make(map[string]struct{})

	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root || opts.Strict {
				return &OpError{Op: OpWalk, Path: path, Err: err}
			}
			unreadable[path] = struct{}{}
			result.Skipped = append(result.Skipped, SkippedEntry{Path: path, Err: err})
			return nil
		}
		if path != root && d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	// Deepest first; ties by path so runs are reproducible.
	slices.SortFunc(dirs, func(a, b string) int {
		if c := cmp.Compare(depth(b), depth(a)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	gone := make(map[string]struct{}, len(opts.Gone))
	for p := range opts.Gone {
		gone[p] = struct{}{}
	}

	for _, dir := range dirs {
		if _, ok := unreadable[dir]; ok {
			continue
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return result, &OpError{Op: OpScan, Path: dir, Err: err}
		}
		if remaining(dir, entries, gone) > 0 {
			continue
		}

		if !opts.DryRun {
			if err := sandbox.SafeRemoveDir(root, dir); err != nil {
				return result, &OpError{Op: OpRemove, Path: dir, Err: err}
			}
		}
		gone[dir] = struct{}{}
		result.Removed = append(result.Removed, dir)
	}

	return result, nil
}

func depth(path string) int {
	return strings.Count(filepath.Clean(path), string(filepath.Separator))
}

// remaining counts entries of dir not marked as gone.
func remaining(dir string, entries []os.DirEntry, gone map[string]struct{}) int {
	n := 0
	for _, e := range entries {
		if _, ok := gone[filepath.Join(dir, e.Name())]; !ok {
			n++
		}
	}
	return n
}
