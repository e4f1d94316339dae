package pathutil

import (
	"errors"
	"fmt"
)

// -- Error Types --

// RootError is returned when the confinement root is unusable.
type RootError struct {
	Root  string
	Cause error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("invalid root %s: %v", e.Root, e.Cause)
}
func (e *RootError) Unwrap() error { return e.Cause }

// EscapeError is returned when a request would leave the root.
// Its message is shown to the user as is.
type EscapeError struct {
	Path string
}

func (e *EscapeError) Error() string {
	return fmt.Sprintf("Access denied: cannot navigate above the root directory (%s)", e.Path)
}
func (e *EscapeError) Unwrap() error { return ErrEscapesRoot }

// -- Sentinels --

var (
	ErrEscapesRoot   = errors.New("path escapes root directory")
	ErrRootNotSet    = errors.New("root not set")
	ErrNotADirectory = errors.New("not a directory")
)
