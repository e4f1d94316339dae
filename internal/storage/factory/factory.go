// Package factory builds the storage backend named in the configuration.
package factory

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Cyclone1070/rootnav/internal/config"
	"github.com/Cyclone1070/rootnav/internal/storage"
	"github.com/Cyclone1070/rootnav/internal/storage/local"
	"github.com/Cyclone1070/rootnav/internal/storage/remote"
)

// New creates a backend of cfg.Type rooted at root. For the local backend root
// is a directory on disk; for minio it is a key prefix inside the bucket.
func New(ctx context.Context, cfg config.BackendConfig, root string, logger *log.Logger) (storage.Backend, error) {
	switch cfg.Type {
	case config.BackendLocal, "":
		b, err := local.New(root, logger)
		if err != nil {
			return nil, err
		}
		return b, nil
	case config.BackendMinio:
		b, err := remote.New(ctx, remote.Config{
			Endpoint:  cfg.Minio.Endpoint,
			Bucket:    cfg.Minio.Bucket,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			UseSSL:    cfg.Minio.UseSSL,
			Region:    cfg.Minio.Region,
			Prefix:    root,
			CacheTTL:  cfg.Minio.CacheTTL,
		}, logger)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %s", storage.ErrUnknownBackend, cfg.Type)
	}
}
