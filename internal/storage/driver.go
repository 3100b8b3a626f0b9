package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shariarfaisal/snapshop/internal/config"
)

// Driver abstracts where uploaded media bytes live.
type Driver interface {
	// Put stores the file under key and returns the final key and its
	// public URL.
	Put(ctx context.Context, file io.Reader, key string) (storedKey string, publicURL string, err error)

	// Remove deletes a stored file.
	Remove(ctx context.Context, key string) error

	// URL returns the public URL for a stored key.
	URL(key string) string

	// Open returns a reader over a stored file, used by the thumbnailer.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// New selects a driver from configuration.
func New(cfg *config.StorageConfig) (Driver, error) {
	switch cfg.Driver {
	case "local", "":
		path := cfg.UploadsPath
		if path == "" {
			path = "./uploads"
		}
		return NewLocalDriver(path), nil

	case "s3":
		return NewS3Driver(cfg)

	case "r2":
		return NewR2Driver(cfg)

	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}

// contentTypeForKey maps a stored key's extension to its MIME type.
// The platform accepts images and mp4 video.
func contentTypeForKey(key string) string {
	switch {
	case strings.HasSuffix(key, ".jpg"), strings.HasSuffix(key, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(key, ".png"):
		return "image/png"
	case strings.HasSuffix(key, ".webp"):
		return "image/webp"
	case strings.HasSuffix(key, ".gif"):
		return "image/gif"
	case strings.HasSuffix(key, ".mp4"):
		return "video/mp4"
	}
	return "application/octet-stream"
}
