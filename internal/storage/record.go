package storage

import (
	"io/fs"
	"time"
)

// Kind classifies a storage entry.
type Kind int

const (
	KindUnknown Kind = iota
	KindRegular
	KindDirectory
	KindSymlink
	KindBlockDevice
	KindCharDevice
	KindFIFO
	KindSocket
)

// KindFromMode derives the entry kind from its mode bits.
// Every FileRecord built by a backend must use this mapping.
func KindFromMode(mode fs.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindRegular
	case mode.IsDir():
		return KindDirectory
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode&fs.ModeCharDevice != 0:
		return KindCharDevice
	case mode&fs.ModeDevice != 0:
		return KindBlockDevice
	case mode&fs.ModeNamedPipe != 0:
		return KindFIFO
	case mode&fs.ModeSocket != 0:
		return KindSocket
	default:
		return KindUnknown
	}
}

func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symbolic link"
	case KindBlockDevice:
		return "block device"
	case KindCharDevice:
		return "character device"
	case KindFIFO:
		return "FIFO"
	case KindSocket:
		return "socket"
	default:
		return "unknown"
	}
}

// FileRecord is the metadata a backend reports for a single entry.
type FileRecord struct {
	Name       string
	Kind       Kind
	Size       int64
	Mode       fs.FileMode
	ModTime    time.Time
	AccessTime time.Time
	ChangeTime time.Time
}

// NewFileRecord builds a record whose Kind is derived from mode.
func NewFileRecord(name string, size int64, mode fs.FileMode, mtime, atime, ctime time.Time) FileRecord {
	return FileRecord{
		Name:       name,
		Kind:       KindFromMode(mode),
		Size:       size,
		Mode:       mode,
		ModTime:    mtime,
		AccessTime: atime,
		ChangeTime: ctime,
	}
}

// IsDir reports whether the record describes a directory.
func (r FileRecord) IsDir() bool {
	return r.Kind == KindDirectory
}
