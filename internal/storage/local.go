package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalDriver stores media on the local filesystem, served under
// /uploads by whatever fronts the media API.
type LocalDriver struct {
	basePath string
}

func NewLocalDriver(basePath string) *LocalDriver {
	return &LocalDriver{basePath: basePath}
}

func (d *LocalDriver) Put(ctx context.Context, file io.Reader, key string) (string, string, error) {
	fullPath := filepath.Join(d.basePath, key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", "", fmt.Errorf("failed to create directory: %w", err)
	}

	out, err := os.Create(fullPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", "", fmt.Errorf("failed to write file: %w", err)
	}

	return key, d.URL(key), nil
}

func (d *LocalDriver) Remove(ctx context.Context, key string) error {
	fullPath := filepath.Join(d.basePath, key)
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	d.removeEmptyDirs(filepath.Dir(fullPath))
	return nil
}

func (d *LocalDriver) URL(key string) string {
	return fmt.Sprintf("/uploads/%s", key)
}

func (d *LocalDriver) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(d.basePath, key))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

// removeEmptyDirs prunes empty parents up to the base path.
func (d *LocalDriver) removeEmptyDirs(dir string) {
	rel, err := filepath.Rel(d.basePath, dir)
	if err != nil || rel == "." {
		return
	}
	if err := os.Remove(dir); err == nil {
		d.removeEmptyDirs(filepath.Dir(dir))
	}
}
