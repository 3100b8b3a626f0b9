package media

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/jpeg"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mediaservice "github.com/shariarfaisal/snapshop/internal/services/media"
)

// memDriver keeps stored files in a map.
type memDriver struct {
	mu    sync.Mutex
	files map[string][]byte
}

func (d *memDriver) Put(_ context.Context, file io.Reader, key string) (string, string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", "", err
	}
	d.mu.Lock()
	if d.files == nil {
		d.files = map[string][]byte{}
	}
	d.files[key] = data
	d.mu.Unlock()
	return key, "https://cdn.test/" + key, nil
}

func (d *memDriver) Remove(_ context.Context, key string) error {
	d.mu.Lock()
	delete(d.files, key)
	d.mu.Unlock()
	return nil
}

func (d *memDriver) URL(key string) string { return "https://cdn.test/" + key }

func (d *memDriver) Open(_ context.Context, key string) (io.ReadCloser, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return io.NopCloser(bytes.NewReader(d.files[key])), nil
}

func newTestEngine(maxFileSize int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := mediaservice.NewUploadService(&memDriver{}, maxFileSize)
	handler := NewUploadHandler(svc)

	engine := gin.New()
	engine.POST("/media/upload", handler.Upload)
	return engine
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func jpegBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestUploadEndpointSuccess(t *testing.T) {
	engine := newTestEngine(10 << 20)

	body, contentType := multipartBody(t, "file", "photo.jpg", jpegBytes(t))
	req := httptest.NewRequest(http.MethodPost, "/media/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message  string `json:"message"`
		FileURL  string `json:"fileUrl"`
		FileType string `json:"fileType"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "File uploaded successfully", resp.Message)
	assert.Contains(t, resp.FileURL, "https://cdn.test/media/")
	assert.Equal(t, "image", resp.FileType)
}

func TestUploadEndpointMissingFile(t *testing.T) {
	engine := newTestEngine(10 << 20)

	req := httptest.NewRequest(http.MethodPost, "/media/upload", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "file is required")
}

func TestUploadEndpointUnsupportedType(t *testing.T) {
	engine := newTestEngine(10 << 20)

	body, contentType := multipartBody(t, "file", "script.sh", []byte("#!/bin/sh"))
	req := httptest.NewRequest(http.MethodPost, "/media/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "file type not supported")
}

func TestUploadEndpointFileTooLarge(t *testing.T) {
	engine := newTestEngine(8)

	body, contentType := multipartBody(t, "file", "big.jpg", []byte("definitely more than eight bytes"))
	req := httptest.NewRequest(http.MethodPost, "/media/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "maximum size")
}
