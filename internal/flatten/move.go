package flatten

import (
	"context"

	"github.com/thatjuan/organize/internal/sandbox"
)

// MoveOptions configures Move.
type MoveOptions struct {
	// Root is the canonical root every source and destination must stay in.
	Root   string
	DryRun bool
	// Exists checks the live filesystem for a candidate destination.
	// Defaults to Lexists.
	Exists ExistsFunc
}

// Move performs each pending move in order. A destination is accepted only
// when it is absent from occupied and from the filesystem; it is added to
// occupied before the next move is resolved. The first failed rename stops
// the run: files already moved stay moved and the returned actions cover
// exactly those.
func Move(ctx context.Context, moves []PendingMove, occupied *OccupiedSet, opts MoveOptions) ([]MoveAction, error) {
	exists := opts.Exists
	if exists == nil {
		exists = Lexists
	}

	actions := make([]MoveAction, 0, len(moves))
	for _, m := range moves {
		if err := ctx.Err(); err != nil {
			return actions, err
		}

		dest := ResolveDestination(m.Destination, occupied, exists)
		if !opts.DryRun {
			if err := sandbox.SafeRename(opts.Root, m.Source, dest); err != nil {
				return actions, &OpError{Op: OpMove, Path: m.Source, Dest: dest, Err: err}
			}
		}
		occupied.Add(dest)

		actions = append(actions, MoveAction{
			Source:      m.Source,
			Destination: dest,
			Size:        m.Size,
			Renamed:     dest != m.Destination,
		})
	}
	return actions, nil
}
