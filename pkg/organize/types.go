package organize

import "github.com/thatjuan/organize/internal/flatten"

// Type aliases re-export the flatten types as the public API.

type Options = flatten.Options
type Result = flatten.Result
type MoveAction = flatten.MoveAction
type SkippedEntry = flatten.SkippedEntry
type OpError = flatten.OpError

// Operations reported in OpError.Op.
const (
	OpResolve = flatten.OpResolve
	OpWalk    = flatten.OpWalk
	OpScan    = flatten.OpScan
	OpMove    = flatten.OpMove
	OpRemove  = flatten.OpRemove
)

// ErrNotDirectory is returned (wrapped) when the root is not a directory.
var ErrNotDirectory = flatten.ErrNotDirectory
