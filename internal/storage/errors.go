package storage

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrNotFound         = errors.New("no such file or directory")
	ErrNotADirectory    = errors.New("not a directory")
	ErrIsADirectory     = errors.New("is a directory")
	ErrNotRegular       = errors.New("not a regular file")
	ErrOffsetOutOfRange = errors.New("offset exceeds file size")
	ErrPermission       = errors.New("permission denied")
	ErrUnknownBackend   = errors.New("unknown backend type")
)

// -- Error Types --

// StatError is returned when metadata for a path cannot be read.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat %s: %v", e.Path, e.Cause)
}
func (e *StatError) Unwrap() error { return e.Cause }

// ReadError is returned when file content cannot be read.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}
func (e *ReadError) Unwrap() error { return e.Cause }

// ListError is returned when a directory cannot be listed.
type ListError struct {
	Path  string
	Cause error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("failed to list %s: %v", e.Path, e.Cause)
}
func (e *ListError) Unwrap() error { return e.Cause }

// OffsetError reports a read offset beyond the end of a file.
type OffsetError struct {
	Path   string
	Offset int64
	Size   int64
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("offset %d exceeds size %d of %s", e.Offset, e.Size, e.Path)
}
func (e *OffsetError) Unwrap() error { return ErrOffsetOutOfRange }

// IsNotFound reports whether err means the entry does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
