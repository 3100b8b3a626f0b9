package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shariarfaisal/snapshop/internal/storage"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds maximum size")
	ErrUnsupportedType = errors.New("file type not supported")
)

// allowedExtensions maps accepted upload extensions to their media
// family, the value the product form stores as the media type.
var allowedExtensions = map[string]string{
	".jpg":  "image",
	".jpeg": "image",
	".png":  "image",
	".webp": "image",
	".gif":  "image",
	".mp4":  "video",
}

// UploadService stores uploaded media files and generates image
// thumbnails.
type UploadService struct {
	storage     storage.Driver
	maxFileSize int64
}

func NewUploadService(driver storage.Driver, maxFileSize int64) *UploadService {
	return &UploadService{storage: driver, maxFileSize: maxFileSize}
}

// UploadedFile is the result of a stored upload.
type UploadedFile struct {
	Key  string
	URL  string
	Type string // image or video
}

// Upload validates and stores one uploaded file.
func (s *UploadService) Upload(ctx context.Context, file *multipart.FileHeader) (*UploadedFile, error) {
	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, file.Size, s.maxFileSize)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	family, ok := allowedExtensions[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Read once; the same bytes feed the store and the thumbnailer.
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	key := fmt.Sprintf("media/%s/%s%s", time.Now().Format("2006/01"), uuid.New().String(), ext)

	storedKey, publicURL, err := s.storage.Put(ctx, bytes.NewReader(data), key)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	if family == "image" {
		// Thumbnail generation is best effort; the upload succeeded.
		if err := s.makeThumbnail(ctx, storedKey, data); err != nil {
			log.Printf("failed to create thumbnail for %s: %v", storedKey, err)
		}
	}

	return &UploadedFile{Key: storedKey, URL: publicURL, Type: family}, nil
}

// Delete removes a stored file and its thumbnail, if any.
func (s *UploadService) Delete(ctx context.Context, key string) error {
	if err := s.storage.Remove(ctx, key); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	if thumb := thumbnailKey(key); thumb != key {
		if err := s.storage.Remove(ctx, thumb); err != nil {
			log.Printf("failed to delete thumbnail for %s: %v", key, err)
		}
	}
	return nil
}
