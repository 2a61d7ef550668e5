package storage

import (
	"context"
	"fmt"
	"time"

	"facelens/config"
)

// BlobStore is the single storage capability the upload flow depends on.
// Put stores raw bytes under key and returns the URL the caller can use to
// fetch them back; Get resolves a previously stored key.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Get(ctx context.Context, key string) ([]byte, error)
}

// Remote stores bound every operation with this timeout.
const opTimeout = 50 * time.Second

// New builds the blob store selected by the configuration.
func New(ctx context.Context, cfg *config.Config) (BlobStore, error) {
	switch cfg.StorageBackend {
	case config.BackendDisk:
		return NewDiskStore(cfg.UploadsPath)
	case config.BackendGCS:
		return NewGCSStore(ctx, cfg.GCSBucketName, cfg.GCSProjectID, cfg.GCSSignedURLs)
	case config.BackendMinio:
		return NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey,
			cfg.MinioBucket, cfg.MinioUseSSL, cfg.MinioPresignedURLs)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
