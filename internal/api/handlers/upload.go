package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentdesk/contentdesk/internal/uploads"
)

type UploadHandler struct {
	store *uploads.Store
}

func NewUploadHandler(store *uploads.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	h.upload(c, "image")
}

func (h *UploadHandler) UploadVideo(c *gin.Context) {
	h.upload(c, "video")
}

// upload accepts multipart/form-data with a single file field named after
// the kind and returns {url} for the record to keep.
func (h *UploadHandler) upload(c *gin.Context, kind string) {
	header, err := c.FormFile(kind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + kind + " file field"})
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	url, err := h.store.Save(kind, header.Filename, header.Size, f)
	if err != nil {
		switch {
		case errors.Is(err, uploads.ErrUnsupportedType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, uploads.ErrTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
