package media

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	mediaservice "github.com/shariarfaisal/snapshop/internal/services/media"
)

// UploadHandler serves the media upload endpoint the product form
// posts to.
type UploadHandler struct {
	service *mediaservice.UploadService
}

func NewUploadHandler(service *mediaservice.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload accepts one multipart file and returns its public URL and
// media family.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "file is required"})
		return
	}

	uploaded, err := h.service.Upload(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, mediaservice.ErrFileTooLarge) || errors.Is(err, mediaservice.ErrUnsupportedType) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to upload file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "File uploaded successfully",
		"fileUrl":  uploaded.URL,
		"fileType": uploaded.Type,
	})
}
