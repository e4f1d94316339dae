package remote

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
)

// ObjectStore is the subset of an S3 compatible client the backend needs.
type ObjectStore interface {
	BucketExists(ctx context.Context) (bool, error)
	StatObject(ctx context.Context, key string) (minio.ObjectInfo, error)
	// ListObjects streams objects under prefix. Non-recursive listings also
	// yield common prefixes as keys ending in "/".
	ListObjects(ctx context.Context, prefix string, recursive bool) <-chan minio.ObjectInfo
	// GetObjectRange opens the bytes [start, end) of an object.
	GetObjectRange(ctx context.Context, key string, start, end int64) (io.ReadCloser, error)
}

// minioStore adapts a minio client bound to one bucket.
type minioStore struct {
	client *minio.Client
	bucket string
}

func (s *minioStore) BucketExists(ctx context.Context) (bool, error) {
	return s.client.BucketExists(ctx, s.bucket)
}

func (s *minioStore) StatObject(ctx context.Context, key string) (minio.ObjectInfo, error) {
	return s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
}

func (s *minioStore) ListObjects(ctx context.Context, prefix string, recursive bool) <-chan minio.ObjectInfo {
	return s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: recursive,
	})
}

func (s *minioStore) GetObjectRange(ctx context.Context, key string, start, end int64) (io.ReadCloser, error) {
	opts := minio.GetObjectOptions{}
	if err := opts.SetRange(start, end-1); err != nil {
		return nil, err
	}
	return s.client.GetObject(ctx, s.bucket, key, opts)
}
