// Package storage defines the capability contract every storage backend
// implements, together with the metadata model and errors they share.
package storage

import (
	"context"

	"github.com/Cyclone1070/rootnav/internal/pathutil"
)

// Backend is the read-only view of a storage tree confined to a root.
// Every path argument is a virtual path; implementations map it under
// their root with pathutil.ToBackendPath.
type Backend interface {
	// ListDirectory returns the entries of a directory sorted by name.
	// A missing directory yields an empty list.
	ListDirectory(ctx context.Context, virtualPath string) ([]FileRecord, error)
	IsDirectory(ctx context.Context, virtualPath string) bool
	Exists(ctx context.Context, virtualPath string) bool
	// FileInfo returns ErrNotFound when the entry is absent.
	FileInfo(ctx context.Context, virtualPath string) (FileRecord, error)
	FileSize(ctx context.Context, virtualPath string) (int64, error)
	// DirectorySize sums the sizes of the non-directory entries below virtualPath.
	// For a non-directory it returns the entry's own size.
	DirectorySize(ctx context.Context, virtualPath string, recursive bool) (int64, error)
	// ReadContent reads at most maxSize bytes from the start; 0 reads the whole file.
	ReadContent(ctx context.Context, virtualPath string, maxSize int64) ([]byte, error)
	// ReadContentAt reads length bytes from offset; 0 reads to the end.
	// It returns ErrOffsetOutOfRange when offset is beyond the file size.
	ReadContentAt(ctx context.Context, virtualPath string, offset, length int64) ([]byte, error)
	// RootLabel is how the root is shown to the user.
	RootLabel() string
	// IsEscapeAttempt reports whether raw, interpreted from current, climbs above the root.
	IsEscapeAttempt(raw, current string) bool
	Close() error
}

// Root carries the parts of Backend that only depend on where the tree is rooted.
// Backends embed it.
type Root struct {
	label string
	base  string
}

// NewRoot returns a Root shown as label whose backend paths live under base.
func NewRoot(label, base string) Root {
	return Root{label: label, base: base}
}

func (r Root) RootLabel() string {
	return r.label
}

// BackendPath maps a virtual path under the root.
func (r Root) BackendPath(virtualPath string) string {
	return pathutil.ToBackendPath(virtualPath, r.base)
}

func (r Root) IsEscapeAttempt(raw, current string) bool {
	return pathutil.EscapesRoot(raw, current)
}
