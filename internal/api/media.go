package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// UploadFileResponse is returned by the media upload endpoint.
type UploadFileResponse struct {
	Message  string `json:"message"`
	FileURL  string `json:"fileUrl"`
	FileType string `json:"fileType"`
}

// UploadFile streams a file to the media endpoint as multipart form
// data. onProgress, when non-nil, receives the upload percentage
// (0–100) as the file body is consumed; each call reports this upload
// only, independent of any other upload in flight.
func (c *Client) UploadFile(ctx context.Context, filename string, file io.Reader, size int64, onProgress func(int)) (*UploadFileResponse, error) {
	if onProgress != nil && size > 0 {
		file = &progressReader{r: file, total: size, report: onProgress}
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(fmt.Errorf("failed to create form file: %w", err))
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(fmt.Errorf("failed to copy file: %w", err))
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/media/upload", nil, pr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out UploadFileResponse
	if err := c.send(req, &out); err != nil {
		return nil, err
	}
	if onProgress != nil {
		onProgress(100)
	}
	return &out, nil
}

// progressReader reports how much of the wrapped reader has been
// consumed, as a percentage of total.
type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	report func(int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		pct := int(p.read * 100 / p.total)
		if pct > 100 {
			pct = 100
		}
		p.report(pct)
	}
	return n, err
}
