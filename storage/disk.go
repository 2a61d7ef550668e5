package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// PublicUploadsPath is the route prefix stored files are served under.
const PublicUploadsPath = "/uploads"

// DiskStore saves uploaded images on the local filesystem. Files are served
// back through the static /uploads route.
type DiskStore struct {
	basePath string
}

// NewDiskStore creates the base directory if missing.
func NewDiskStore(basePath string) (*DiskStore, error) {
	if basePath == "" {
		return nil, fmt.Errorf("uploads path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &DiskStore{basePath: basePath}, nil
}

func (d *DiskStore) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	name := filepath.Base(key)
	target := filepath.Join(d.basePath, name)

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return PublicUploadsPath + "/" + name, nil
}

func (d *DiskStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(d.basePath, filepath.Base(key)))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

// BasePath is the directory the static file route serves from.
func (d *DiskStore) BasePath() string {
	return d.basePath
}
