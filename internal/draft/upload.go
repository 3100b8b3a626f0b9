package draft

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/shariarfaisal/snapshop/internal/api"
	"github.com/shariarfaisal/snapshop/internal/models"
)

// Uploader is the media endpoint the orchestrator uploads through.
// *api.Client satisfies it.
type Uploader interface {
	UploadFile(ctx context.Context, filename string, file io.Reader, size int64, onProgress func(int)) (*api.UploadFileResponse, error)
}

// StartUpload begins the asynchronous upload for one media slot after a
// file is selected or dropped. The slot immediately renders pending
// state (name, size, icon family); progress and the eventual result are
// routed back by the captured slot id, never by "most recent request"
// ordering, so concurrent uploads cannot corrupt each other. Returns
// false when the slot no longer exists.
func (d *Draft) StartUpload(ctx context.Context, uploader Uploader, slotID uuid.UUID, filename, contentType string, file io.Reader, size int64) bool {
	d.mu.Lock()
	i := d.mediaIndexLocked(slotID)
	if i < 0 {
		d.mu.Unlock()
		return false
	}
	d.media[i].State = MediaUploading
	d.media[i].FileName = filename
	d.media[i].FileSize = size
	d.media[i].MIMEFamily = mimeFamily(contentType)
	d.media[i].Progress = 0
	d.media[i].Err = ""
	d.mu.Unlock()

	go d.uploadSlot(ctx, uploader, slotID, filename, file, size)
	return true
}

// uploadSlot performs the transfer and writes results back under the
// existence guard: if the slot was removed while the upload was in
// flight, the resolution is discarded. There is no cancellation of the
// transfer itself.
func (d *Draft) uploadSlot(ctx context.Context, uploader Uploader, slotID uuid.UUID, filename string, file io.Reader, size int64) {
	onProgress := func(pct int) {
		d.mu.Lock()
		if i := d.mediaIndexLocked(slotID); i >= 0 {
			d.media[i].Progress = pct
		}
		d.mu.Unlock()
	}

	resp, err := uploader.UploadFile(ctx, filename, file, size, onProgress)

	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.mediaIndexLocked(slotID)
	if i < 0 {
		return
	}

	if err != nil {
		// Scoped to this slot; sibling uploads and overall form
		// validity are untouched. An empty URL at submit time is what
		// blocks submission, not this event.
		d.media[i].State = MediaErrored
		d.media[i].Err = err.Error()
		return
	}

	d.media[i].State = MediaUploaded
	d.media[i].Progress = 100
	d.media[i].URL = resp.FileURL
	d.media[i].Type = models.MediaType(resp.FileType)
}

func mimeFamily(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image"):
		return "image"
	case strings.HasPrefix(contentType, "video"):
		return "video"
	default:
		return "other"
	}
}
