package remote

import (
	"fmt"

	"github.com/minio/minio-go/v7"

	"github.com/Cyclone1070/rootnav/internal/storage"
)

// translate maps S3 error codes onto the storage sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}

	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return storage.ErrNotFound
	case "AccessDenied":
		return storage.ErrPermission
	}

	return fmt.Errorf("minio: %w", err)
}
