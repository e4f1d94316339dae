// Package mocks provides in-memory test doubles for storage backends.
package mocks

import (
	"context"
	"io/fs"
	"path"
	"sort"
	"sync"
	"time"

	"github.com/Cyclone1070/rootnav/internal/pathutil"
	"github.com/Cyclone1070/rootnav/internal/storage"
)

// MockTime is the timestamp given to every entry created through the mock.
var MockTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)

// MockBackend implements storage.Backend with in-memory storage.
// Paths are virtual paths; the root "/" always exists as a directory.
type MockBackend struct {
	storage.Root

	Mu       sync.RWMutex
	Files    map[string][]byte             // path -> content
	Records  map[string]storage.FileRecord // path -> metadata
	Errors   map[string]error              // path -> error to return
	OpErrors map[string]error              // operation -> error to return
	Calls    []string                      // operation names in call order
	Closed   bool
}

// NewMockBackend creates an empty mock shown as label.
func NewMockBackend(label string) *MockBackend {
	m := &MockBackend{
		Root:     storage.NewRoot(label, "/"),
		Files:    make(map[string][]byte),
		Records:  make(map[string]storage.FileRecord),
		Errors:   make(map[string]error),
		OpErrors: make(map[string]error),
	}
	m.Records["/"] = storage.NewFileRecord("/", 0, fs.ModeDir|0o755, MockTime, MockTime, MockTime)
	return m
}

// SetError sets an error to return for a specific path.
func (m *MockBackend) SetError(p string, err error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.Errors[pathutil.Normalize(p)] = err
}

// SetOperationError sets an error to return for a specific operation.
func (m *MockBackend) SetOperationError(operation string, err error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.OpErrors[operation] = err
}

// CreateFile creates a file with content, creating missing parents.
func (m *MockBackend) CreateFile(p string, content []byte, perm fs.FileMode) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	p = pathutil.Normalize(p)
	m.ensureParents(p)
	m.Files[p] = content
	m.Records[p] = storage.NewFileRecord(path.Base(p), int64(len(content)), perm, MockTime, MockTime, MockTime)
}

// CreateDir creates a directory, creating missing parents.
func (m *MockBackend) CreateDir(p string) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	p = pathutil.Normalize(p)
	m.ensureParents(p)
	m.Records[p] = storage.NewFileRecord(path.Base(p), 0, fs.ModeDir|0o755, MockTime, MockTime, MockTime)
}

// CreateEntry stores an arbitrary record, e.g. a device or socket.
func (m *MockBackend) CreateEntry(p string, size int64, mode fs.FileMode) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	p = pathutil.Normalize(p)
	m.ensureParents(p)
	m.Records[p] = storage.NewFileRecord(path.Base(p), size, mode, MockTime, MockTime, MockTime)
}

func (m *MockBackend) ensureParents(p string) {
	for dir := path.Dir(p); dir != "/"; dir = path.Dir(dir) {
		if _, ok := m.Records[dir]; !ok {
			m.Records[dir] = storage.NewFileRecord(path.Base(dir), 0, fs.ModeDir|0o755, MockTime, MockTime, MockTime)
		}
	}
}

func (m *MockBackend) lookup(op, p string) (storage.FileRecord, error) {
	m.Calls = append(m.Calls, op)
	if err, ok := m.OpErrors[op]; ok {
		return storage.FileRecord{}, err
	}
	p = pathutil.Normalize(p)
	if err, ok := m.Errors[p]; ok {
		return storage.FileRecord{}, err
	}
	rec, ok := m.Records[p]
	if !ok {
		return storage.FileRecord{}, &storage.StatError{Path: p, Cause: storage.ErrNotFound}
	}
	return rec, nil
}

func (m *MockBackend) ListDirectory(_ context.Context, virtualPath string) ([]storage.FileRecord, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	dir, err := m.lookup("ListDirectory", virtualPath)
	if err != nil {
		if storage.IsNotFound(err) {
			return []storage.FileRecord{}, nil
		}
		return nil, err
	}
	if !dir.IsDir() {
		return nil, &storage.ListError{Path: virtualPath, Cause: storage.ErrNotADirectory}
	}

	parent := pathutil.Normalize(virtualPath)
	entries := []storage.FileRecord{}
	for p, rec := range m.Records {
		if p != "/" && path.Dir(p) == parent {
			entries = append(entries, rec)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (m *MockBackend) IsDirectory(_ context.Context, virtualPath string) bool {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	rec, err := m.lookup("IsDirectory", virtualPath)
	return err == nil && rec.IsDir()
}

func (m *MockBackend) Exists(_ context.Context, virtualPath string) bool {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	_, err := m.lookup("Exists", virtualPath)
	return err == nil
}

func (m *MockBackend) FileInfo(_ context.Context, virtualPath string) (storage.FileRecord, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	return m.lookup("FileInfo", virtualPath)
}

func (m *MockBackend) FileSize(_ context.Context, virtualPath string) (int64, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	rec, err := m.lookup("FileSize", virtualPath)
	if err != nil {
		return 0, err
	}
	return rec.Size, nil
}

func (m *MockBackend) DirectorySize(_ context.Context, virtualPath string, recursive bool) (int64, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	rec, err := m.lookup("DirectorySize", virtualPath)
	if err != nil {
		return 0, err
	}
	if !rec.IsDir() {
		return rec.Size, nil
	}

	root := pathutil.Normalize(virtualPath)
	var total int64
	for p, r := range m.Records {
		if p == root || r.IsDir() || !isBelow(p, root) {
			continue
		}
		if !recursive && path.Dir(p) != root {
			continue
		}
		total += r.Size
	}
	return total, nil
}

func (m *MockBackend) ReadContent(_ context.Context, virtualPath string, maxSize int64) ([]byte, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	data, err := m.content("ReadContent", virtualPath)
	if err != nil {
		return nil, err
	}
	return data[:storage.ReadLimit(int64(len(data)), maxSize)], nil
}

func (m *MockBackend) ReadContentAt(_ context.Context, virtualPath string, offset, length int64) ([]byte, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	data, err := m.content("ReadContentAt", virtualPath)
	if err != nil {
		return nil, err
	}
	start, end, err := storage.ClampRange(virtualPath, int64(len(data)), offset, length)
	if err != nil {
		return nil, err
	}
	return data[start:end], nil
}

func (m *MockBackend) content(op, virtualPath string) ([]byte, error) {
	rec, err := m.lookup(op, virtualPath)
	if err != nil {
		return nil, err
	}
	if rec.IsDir() {
		return nil, &storage.ReadError{Path: virtualPath, Cause: storage.ErrIsADirectory}
	}
	return m.Files[pathutil.Normalize(virtualPath)], nil
}

func (m *MockBackend) Close() error {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.Closed = true
	return nil
}

func isBelow(p, dir string) bool {
	if dir == "/" {
		return true
	}
	return len(p) > len(dir) && p[:len(dir)] == dir && p[len(dir)] == '/'
}
