// Package local provides a storage backend over a directory on the local disk.
package local

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/Cyclone1070/rootnav/internal/pathutil"
	"github.com/Cyclone1070/rootnav/internal/storage"
)

// Backend implements storage.Backend on a billy filesystem bound to the root,
// so neither ".." nor symlinks can reach outside it.
type Backend struct {
	storage.Root
	fs     billy.Filesystem
	logger *log.Logger
}

// New opens root as a confined local tree. root must be an existing directory.
func New(root string, logger *log.Logger) (*Backend, error) {
	canonical, err := pathutil.CanonicaliseRoot(root)
	if err != nil {
		return nil, err
	}
	return NewWithFilesystem(canonical, osfs.New(canonical, osfs.WithBoundOS(), osfs.WithDeduplicatePath(false)), logger), nil
}

// NewWithFilesystem wraps an already rooted billy filesystem shown as label.
// Paths handed to bfs are relative to its root.
func NewWithFilesystem(label string, bfs billy.Filesystem, logger *log.Logger) *Backend {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Backend{
		Root:   storage.NewRoot(label, ""),
		fs:     bfs,
		logger: logger.WithPrefix("local"),
	}
}

// key maps a virtual path to a path relative to the filesystem root.
func (b *Backend) key(virtualPath string) string {
	if k := b.BackendPath(virtualPath); k != "" {
		return k
	}
	return "."
}

func (b *Backend) stat(virtualPath string) (storage.FileRecord, error) {
	p := b.key(virtualPath)
	info, err := b.fs.Stat(p)
	if err != nil {
		return storage.FileRecord{}, &storage.StatError{Path: virtualPath, Cause: translate(err)}
	}
	name := info.Name()
	if pathutil.Normalize(virtualPath) == pathutil.Separator {
		name = pathutil.Separator
	}
	return recordFromInfo(name, info), nil
}

func (b *Backend) ListDirectory(_ context.Context, virtualPath string) ([]storage.FileRecord, error) {
	p := b.key(virtualPath)
	infos, err := b.fs.ReadDir(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []storage.FileRecord{}, nil
		}
		return nil, &storage.ListError{Path: virtualPath, Cause: translate(err)}
	}

	records := make([]storage.FileRecord, 0, len(infos))
	for _, entry := range infos {
		info, err := b.fs.Stat(path.Join(p, entry.Name()))
		if err != nil {
			b.logger.Debug("skipping entry", "dir", virtualPath, "name", entry.Name(), "err", err)
			continue
		}
		records = append(records, recordFromInfo(entry.Name(), info))
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, nil
}

func (b *Backend) IsDirectory(_ context.Context, virtualPath string) bool {
	rec, err := b.stat(virtualPath)
	return err == nil && rec.IsDir()
}

func (b *Backend) Exists(_ context.Context, virtualPath string) bool {
	_, err := b.stat(virtualPath)
	return err == nil
}

func (b *Backend) FileInfo(_ context.Context, virtualPath string) (storage.FileRecord, error) {
	return b.stat(virtualPath)
}

func (b *Backend) FileSize(_ context.Context, virtualPath string) (int64, error) {
	rec, err := b.stat(virtualPath)
	if err != nil {
		return 0, err
	}
	return rec.Size, nil
}

func (b *Backend) DirectorySize(ctx context.Context, virtualPath string, recursive bool) (int64, error) {
	rec, err := b.stat(virtualPath)
	if err != nil {
		return 0, err
	}
	if !rec.IsDir() {
		return rec.Size, nil
	}
	return b.sumDir(ctx, virtualPath, recursive)
}

func (b *Backend) sumDir(ctx context.Context, virtualPath string, recursive bool) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	entries, err := b.fs.ReadDir(b.key(virtualPath))
	if err != nil {
		return 0, &storage.ListError{Path: virtualPath, Cause: translate(err)}
	}

	var total int64
	for _, entry := range entries {
		// ReadDir reports symlinks without following them.
		if entry.IsDir() {
			if !recursive {
				continue
			}
			sub, err := b.sumDir(ctx, pathutil.Join(virtualPath, entry.Name()), recursive)
			if err != nil {
				b.logger.Debug("skipping directory", "dir", virtualPath, "name", entry.Name(), "err", err)
				continue
			}
			total += sub
			continue
		}
		total += entry.Size()
	}
	return total, nil
}

func (b *Backend) ReadContent(_ context.Context, virtualPath string, maxSize int64) ([]byte, error) {
	f, size, err := b.open(virtualPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, storage.ReadLimit(size, maxSize))
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, &storage.ReadError{Path: virtualPath, Cause: err}
	}
	return buf[:n], nil
}

func (b *Backend) ReadContentAt(_ context.Context, virtualPath string, offset, length int64) ([]byte, error) {
	f, size, err := b.open(virtualPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	start, end, err := storage.ClampRange(virtualPath, size, offset, length)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, end-start)
	n, err := f.ReadAt(buf, start)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, &storage.ReadError{Path: virtualPath, Cause: err}
	}
	return buf[:n], nil
}

// open returns an open handle to a regular file and its size.
// Callers must close the handle.
func (b *Backend) open(virtualPath string) (billy.File, int64, error) {
	rec, err := b.stat(virtualPath)
	if err != nil {
		return nil, 0, err
	}
	switch rec.Kind {
	case storage.KindRegular:
	case storage.KindDirectory:
		return nil, 0, &storage.ReadError{Path: virtualPath, Cause: storage.ErrIsADirectory}
	default:
		// Devices and pipes could block forever on open.
		return nil, 0, &storage.ReadError{Path: virtualPath, Cause: storage.ErrNotRegular}
	}

	f, err := b.fs.Open(b.key(virtualPath))
	if err != nil {
		return nil, 0, &storage.ReadError{Path: virtualPath, Cause: translate(err)}
	}
	return f, rec.Size, nil
}

// Close is a no-op; the local backend holds no long-lived handles.
func (b *Backend) Close() error {
	return nil
}

func recordFromInfo(name string, info os.FileInfo) storage.FileRecord {
	atime, ctime := fileTimes(info)
	return storage.NewFileRecord(name, info.Size(), info.Mode(), info.ModTime(), atime, ctime)
}

func translate(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return storage.ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return storage.ErrPermission
	default:
		return err
	}
}
