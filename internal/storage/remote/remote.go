// Package remote provides a storage backend over an S3 compatible bucket.
// Objects are shown as regular files and key prefixes as directories.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jellydator/ttlcache/v3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Cyclone1070/rootnav/internal/pathutil"
	"github.com/Cyclone1070/rootnav/internal/storage"
)

const (
	fileMode = fs.FileMode(0o644)
	dirMode  = fs.ModeDir | 0o755
)

// Backend implements storage.Backend on an ObjectStore.
type Backend struct {
	storage.Root
	store     ObjectStore
	cache     *ttlcache.Cache[string, storage.FileRecord]
	closeOnce sync.Once
	logger    *log.Logger
}

// New connects to the bucket described by cfg and checks that it exists.
func New(ctx context.Context, cfg Config, logger *log.Logger) (*Backend, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid minio config: %w", err)
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	store := &minioStore{client: client, bucket: cfg.Bucket}
	exists, err := store.BucketExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reach bucket %s: %w", cfg.Bucket, translate(err))
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s: %w", cfg.Bucket, storage.ErrNotFound)
	}

	prefix := NormalizePrefix(cfg.Prefix)
	return NewWithStore(Label(cfg.Bucket, prefix), prefix, store, cfg.CacheTTL, logger), nil
}

// NewWithStore builds a backend on an existing store. prefix must already be normalized.
func NewWithStore(label, prefix string, store ObjectStore, cacheTTL time.Duration, logger *log.Logger) *Backend {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	b := &Backend{
		Root:   storage.NewRoot(label, prefix),
		store:  store,
		logger: logger.WithPrefix("remote"),
	}
	if cacheTTL > 0 {
		b.cache = ttlcache.New[string, storage.FileRecord](
			ttlcache.WithTTL[string, storage.FileRecord](cacheTTL),
			// Entries must expire on schedule even when read constantly.
			ttlcache.WithDisableTouchOnHit[string, storage.FileRecord](),
		)
		go b.cache.Start()
	}
	return b
}

// NormalizePrefix turns a root argument into a key prefix without leading or trailing slashes.
func NormalizePrefix(root string) string {
	return strings.TrimPrefix(pathutil.Normalize(root), pathutil.Separator)
}

// Label is how a bucket and prefix are shown to the user.
func Label(bucket, prefix string) string {
	if prefix == "" {
		return "s3://" + bucket
	}
	return "s3://" + bucket + "/" + prefix
}

func (b *Backend) cached(key string) (storage.FileRecord, bool) {
	if b.cache == nil {
		return storage.FileRecord{}, false
	}
	item := b.cache.Get(key)
	if item == nil {
		return storage.FileRecord{}, false
	}
	b.logger.Debug("cache hit", "key", key)
	return item.Value(), true
}

func (b *Backend) remember(key string, rec storage.FileRecord) {
	if b.cache != nil {
		b.cache.Set(key, rec, ttlcache.DefaultTTL)
	}
}

func (b *Backend) stat(ctx context.Context, virtualPath string) (storage.FileRecord, error) {
	key := b.BackendPath(virtualPath)
	if rec, ok := b.cached(key); ok {
		return rec, nil
	}

	if pathutil.Normalize(virtualPath) == pathutil.Separator {
		rec := dirRecord(pathutil.Separator, time.Time{})
		b.remember(key, rec)
		return rec, nil
	}

	name := pathutil.Base(virtualPath)
	info, err := b.store.StatObject(ctx, key)
	if err == nil {
		rec := fileRecord(name, info.Size, info.LastModified)
		b.remember(key, rec)
		return rec, nil
	}
	if err = translate(err); !errors.Is(err, storage.ErrNotFound) {
		return storage.FileRecord{}, &storage.StatError{Path: virtualPath, Cause: err}
	}

	// No object under the key; it is a directory if anything lives below it.
	found, err := b.hasChildren(ctx, key)
	if err != nil {
		return storage.FileRecord{}, &storage.StatError{Path: virtualPath, Cause: err}
	}
	if !found {
		return storage.FileRecord{}, &storage.StatError{Path: virtualPath, Cause: storage.ErrNotFound}
	}
	rec := dirRecord(name, time.Time{})
	b.remember(key, rec)
	return rec, nil
}

func (b *Backend) hasChildren(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for obj := range b.store.ListObjects(ctx, dirPrefix(key), false) {
		if obj.Err != nil {
			return false, translate(obj.Err)
		}
		return true, nil
	}
	return false, nil
}

func (b *Backend) ListDirectory(ctx context.Context, virtualPath string) ([]storage.FileRecord, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prefix := dirPrefix(b.BackendPath(virtualPath))
	records := []storage.FileRecord{}
	for obj := range b.store.ListObjects(ctx, prefix, false) {
		if obj.Err != nil {
			return nil, &storage.ListError{Path: virtualPath, Cause: translate(obj.Err)}
		}
		rec, ok := recordFromObject(prefix, obj)
		if !ok {
			continue
		}
		b.remember(prefix+rec.Name, rec)
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, nil
}

func (b *Backend) IsDirectory(ctx context.Context, virtualPath string) bool {
	rec, err := b.stat(ctx, virtualPath)
	return err == nil && rec.IsDir()
}

func (b *Backend) Exists(ctx context.Context, virtualPath string) bool {
	_, err := b.stat(ctx, virtualPath)
	return err == nil
}

func (b *Backend) FileInfo(ctx context.Context, virtualPath string) (storage.FileRecord, error) {
	return b.stat(ctx, virtualPath)
}

func (b *Backend) FileSize(ctx context.Context, virtualPath string) (int64, error) {
	rec, err := b.stat(ctx, virtualPath)
	if err != nil {
		return 0, err
	}
	return rec.Size, nil
}

func (b *Backend) DirectorySize(ctx context.Context, virtualPath string, recursive bool) (int64, error) {
	rec, err := b.stat(ctx, virtualPath)
	if err != nil {
		return 0, err
	}
	if !rec.IsDir() {
		return rec.Size, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var total int64
	for obj := range b.store.ListObjects(ctx, dirPrefix(b.BackendPath(virtualPath)), recursive) {
		if obj.Err != nil {
			return 0, &storage.ListError{Path: virtualPath, Cause: translate(obj.Err)}
		}
		if strings.HasSuffix(obj.Key, pathutil.Separator) {
			continue
		}
		total += obj.Size
	}
	return total, nil
}

func (b *Backend) ReadContent(ctx context.Context, virtualPath string, maxSize int64) ([]byte, error) {
	rec, err := b.readable(ctx, virtualPath)
	if err != nil {
		return nil, err
	}
	return b.readRange(ctx, virtualPath, 0, storage.ReadLimit(rec.Size, maxSize))
}

func (b *Backend) ReadContentAt(ctx context.Context, virtualPath string, offset, length int64) ([]byte, error) {
	rec, err := b.readable(ctx, virtualPath)
	if err != nil {
		return nil, err
	}
	start, end, err := storage.ClampRange(virtualPath, rec.Size, offset, length)
	if err != nil {
		return nil, err
	}
	return b.readRange(ctx, virtualPath, start, end)
}

func (b *Backend) readable(ctx context.Context, virtualPath string) (storage.FileRecord, error) {
	rec, err := b.stat(ctx, virtualPath)
	if err != nil {
		return storage.FileRecord{}, err
	}
	if rec.IsDir() {
		return storage.FileRecord{}, &storage.ReadError{Path: virtualPath, Cause: storage.ErrIsADirectory}
	}
	return rec, nil
}

func (b *Backend) readRange(ctx context.Context, virtualPath string, start, end int64) ([]byte, error) {
	if end <= start {
		return []byte{}, nil
	}

	obj, err := b.store.GetObjectRange(ctx, b.BackendPath(virtualPath), start, end)
	if err != nil {
		return nil, &storage.ReadError{Path: virtualPath, Cause: translate(err)}
	}
	defer func() {
		_ = obj.Close()
	}()

	buf := make([]byte, end-start)
	// The object may have shrunk since it was stat'ed; a short read is not an error.
	n, err := io.ReadFull(obj, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, &storage.ReadError{Path: virtualPath, Cause: translate(err)}
	}
	return buf[:n], nil
}

// Close stops the metadata cache.
func (b *Backend) Close() error {
	b.closeOnce.Do(func() {
		if b.cache != nil {
			b.cache.Stop()
			b.cache.DeleteAll()
		}
	})
	return nil
}

// dirPrefix returns the listing prefix for the directory at key.
func dirPrefix(key string) string {
	if key == "" {
		return ""
	}
	return key + pathutil.Separator
}

// recordFromObject converts a listing entry under prefix. Entries that are not
// direct children, such as the directory marker itself, are rejected.
func recordFromObject(prefix string, obj minio.ObjectInfo) (storage.FileRecord, bool) {
	name := strings.TrimPrefix(obj.Key, prefix)
	isDir := strings.HasSuffix(name, pathutil.Separator)
	name = strings.TrimSuffix(name, pathutil.Separator)
	if name == "" || strings.Contains(name, pathutil.Separator) {
		return storage.FileRecord{}, false
	}
	if isDir {
		return dirRecord(name, obj.LastModified), true
	}
	return fileRecord(name, obj.Size, obj.LastModified), true
}

// Object stores keep a single timestamp, so it stands in for all three.
func fileRecord(name string, size int64, mtime time.Time) storage.FileRecord {
	return storage.NewFileRecord(name, size, fileMode, mtime, mtime, mtime)
}

func dirRecord(name string, mtime time.Time) storage.FileRecord {
	return storage.NewFileRecord(name, 0, dirMode, mtime, mtime, mtime)
}
