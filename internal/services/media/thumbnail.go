package media

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// thumbnailSize bounds both dimensions of a generated thumbnail.
const thumbnailSize = 480

// makeThumbnail renders a resized variant next to the original, under
// the same key with a _thumb suffix.
func (s *UploadService) makeThumbnail(ctx context.Context, key string, data []byte) error {
	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	resized := imaging.Fit(src, thumbnailSize, thumbnailSize, imaging.Lanczos)

	var buf bytes.Buffer
	switch strings.ToLower(filepath.Ext(key)) {
	case ".png":
		err = png.Encode(&buf, resized)
	default:
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	if _, _, err := s.storage.Put(ctx, &buf, thumbnailKey(key)); err != nil {
		return fmt.Errorf("failed to store thumbnail: %w", err)
	}
	return nil
}

// thumbnailKey derives the thumbnail key for an original key.
func thumbnailKey(key string) string {
	ext := filepath.Ext(key)
	return strings.TrimSuffix(key, ext) + "_thumb" + ext
}
