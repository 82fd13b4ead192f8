// Package flatten moves every file nested below a root directory up to the
// root. Name collisions get a numeric suffix instead of overwriting, and the
// directories left empty can be pruned afterwards.
//
// A run is strictly sequential: the tree is collected into a plan before any
// file moves, the plan is executed in order, and pruning only starts once
// every move has committed. The first fatal error stops the run.
package flatten

import (
	"context"

	"github.com/thatjuan/organize/internal/sandbox"
)

// ErrNotDirectory is returned (wrapped) when the root is not a directory.
var ErrNotDirectory = sandbox.ErrNotDirectory

// Flatten relocates every file nested below root into root.
//
// The returned Result is non-nil whenever root could be resolved, including
// on error, and then describes the work done before the failure.
func Flatten(ctx context.Context, root string, opts Options) (*Result, error) {
	canonical, err := sandbox.ResolveRoot(root)
	if err != nil {
		return nil, &OpError{Op: OpResolve, Path: root, Err: err}
	}
	result := &Result{Root: canonical, DryRun: opts.DryRun}

	plan, err := Collect(canonical, CollectOptions{Rename: opts.Rename, Strict: opts.Strict})
	if err != nil {
		return result, err
	}
	result.Skipped = plan.Skipped
	result.Dirs = len(plan.Dirs)

	occupied, err := SeedOccupied(canonical)
	if err != nil {
		return result, err
	}

	moves, err := Move(ctx, plan.Moves, occupied, MoveOptions{Root: canonical, DryRun: opts.DryRun})
	result.Moves = moves
	for _, m := range moves {
		result.Bytes += m.Size
	}
	if err != nil {
		return result, err
	}

	if !opts.DeleteEmpty {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	var gone map[string]struct{}
	if opts.DryRun {
		gone = make(map[string]struct{}, len(moves))
		for _, m := range moves {
			gone[m.Source] = struct{}{}
		}
	}

	pruned, err := Prune(canonical, PruneOptions{DryRun: opts.DryRun, Strict: opts.Strict, Gone: gone})
	if pruned != nil {
		result.Removed = pruned.Removed
		result.Skipped = mergeSkipped(result.Skipped, pruned.Skipped)
	}
	return result, err
}

// mergeSkipped appends entries from extra whose path is not already in base.
func mergeSkipped(base, extra []SkippedEntry) []SkippedEntry {
	seen := make(map[string]struct{}, len(base))
	for _, s := range base {
		seen[s.Path] = struct{}{}
	}
	for _, s := range extra {
		if _, ok := seen[s.Path]; ok {
			continue
		}
		seen[s.Path] = struct{}{}
		base = append(base, s)
	}
	return base
}
