package shell

import (
	"errors"
	"fmt"

	"github.com/Cyclone1070/rootnav/internal/storage"
)

// The messages of these errors are shown to the user verbatim.

// -- Sentinels --

var (
	errPathRequired      = errors.New("path is required")
	errFlagValueRequired = errors.New("flag value is required")
)

// -- Error Types --

type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Unknown command: %s, use 'help' for available commands", e.Name)
}

type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "Usage: " + e.Usage
}

type InvalidValueError struct {
	Field string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("Invalid %s value: %s", e.Field, e.Value)
}

// PathNotFoundError is reported by commands that default to the current directory.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return "Path does not exist: " + e.Path
}
func (e *PathNotFoundError) Unwrap() error { return storage.ErrNotFound }

// FileNotFoundError is reported by commands that require a file argument.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return "File does not exist: " + e.Path
}
func (e *FileNotFoundError) Unwrap() error { return storage.ErrNotFound }

type IsDirectoryError struct {
	Path   string
	Action string
}

func (e *IsDirectoryError) Error() string {
	return fmt.Sprintf("%s is a directory, cannot %s", e.Path, e.Action)
}
func (e *IsDirectoryError) Unwrap() error { return storage.ErrIsADirectory }

type BinaryFileError struct {
	Path string
}

func (e *BinaryFileError) Error() string {
	return e.Path + " is a binary file, cannot display"
}

type ChangeDirectoryError struct {
	Path string
}

func (e *ChangeDirectoryError) Error() string {
	return "Cannot change to directory: " + e.Path
}

type OffsetError struct {
	Path   string
	Offset uint64
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("Offset %d exceeds file size of %s", e.Offset, e.Path)
}
func (e *OffsetError) Unwrap() error { return storage.ErrOffsetOutOfRange }

// OperationError reports a backend failure that the command cannot explain further.
type OperationError struct {
	Op    string
	Path  string
	Cause error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
}
func (e *OperationError) Unwrap() error { return e.Cause }

// rootCause strips the storage wrappers so messages don't repeat the path.
func rootCause(err error) error {
	var statErr *storage.StatError
	var readErr *storage.ReadError
	var listErr *storage.ListError
	switch {
	case errors.As(err, &statErr):
		return statErr.Cause
	case errors.As(err, &readErr):
		return readErr.Cause
	case errors.As(err, &listErr):
		return listErr.Cause
	default:
		return err
	}
}
