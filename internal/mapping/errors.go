package mapping

import "fmt"

// UnsafeSymlinkPathError is returned when the target of a link cannot be
// expressed as a path relative to the link's directory.
type UnsafeSymlinkPathError struct {
	Link   string
	Source string
	Result string
	Err    error
}

func (e *UnsafeSymlinkPathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("expected relative symlink target for %s -> %s: %v", e.Link, e.Source, e.Err)
	}
	return fmt.Sprintf("expected relative symlink target for %s, but got: %s", e.Link, e.Result)
}

func (e *UnsafeSymlinkPathError) Unwrap() error {
	return e.Err
}
