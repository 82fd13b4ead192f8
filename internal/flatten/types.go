package flatten

// PendingMove is a planned relocation of one nested file to root.
// Source never changes after collection; the Mover may only pick a different
// final destination when Destination is taken.
type PendingMove struct {
	Source      string
	Destination string
	Size        int64
}

// SkippedEntry records a traversal entry that could not be read.
type SkippedEntry struct {
	Path string
	Err  error
}

// Plan is the read-only work list produced by Collect before any mutation.
type Plan struct {
	Root    string
	Moves   []PendingMove
	Dirs    []string
	Skipped []SkippedEntry
}

// MoveAction describes a completed (or, in a dry run, planned) move.
type MoveAction struct {
	Source      string
	Destination string
	Size        int64
	Renamed     bool // destination differs from the proposed one because of a collision
}

// Result holds the outcome of a flatten operation.
type Result struct {
	Root    string
	Moves   []MoveAction
	Removed []string
	Skipped []SkippedEntry
	Dirs    int
	Bytes   int64
	DryRun  bool
}

// Options configures a flatten operation.
type Options struct {
	// Rename prefixes each moved file with its immediate parent directory name.
	Rename bool
	// DeleteEmpty prunes directories left empty after the moves.
	DeleteEmpty bool
	// DryRun plans and reports without touching the filesystem.
	DryRun bool
	// Strict makes unreadable traversal entries fatal instead of skipped.
	Strict bool
}
