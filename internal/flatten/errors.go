package flatten

import "fmt"

// Operations reported in OpError.
const (
	OpResolve = "resolve"
	OpWalk    = "walk"
	OpScan    = "scan"
	OpMove    = "move"
	OpRemove  = "remove"
)

// OpError is a fatal error tied to the path and the operation that failed.
type OpError struct {
	Op   string
	Path string
	Dest string // move only
	Err  error
}

func (e *OpError) Error() string {
	if e.Dest != "" {
		return fmt.Sprintf("%s %s -> %s: %s", e.Op, e.Path, e.Dest, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
