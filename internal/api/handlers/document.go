package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentdesk/contentdesk/internal/core/document"
	"github.com/contentdesk/contentdesk/internal/core/validation"
)

type DocumentHandler struct {
	sessions *document.Manager
}

func NewDocumentHandler(sessions *document.Manager) *DocumentHandler {
	return &DocumentHandler{sessions: sessions}
}

func (h *DocumentHandler) CreateSession(c *gin.Context) {
	c.JSON(http.StatusCreated, h.sessions.Create())
}

func (h *DocumentHandler) GetSession(c *gin.Context) {
	resp, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DocumentHandler) SelectTemplate(c *gin.Context) {
	var req document.SelectTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.sessions.SelectTemplate(c.Request.Context(), c.Param("id"), req.TemplateID)
	if err != nil {
		h.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DocumentHandler) SetValue(c *gin.Context) {
	var req document.SetValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.sessions.SetFieldValue(c.Param("id"), req.FieldID, req.Value)
	if err != nil {
		h.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DocumentHandler) Back(c *gin.Context) {
	resp, err := h.sessions.Back(c.Param("id"))
	if err != nil {
		h.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DocumentHandler) Reset(c *gin.Context) {
	resp, err := h.sessions.StartOver(c.Param("id"))
	if err != nil {
		h.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DocumentHandler) Validate(c *gin.Context) {
	resp, err := h.sessions.Validate(c.Param("id"))
	if err != nil {
		h.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DocumentHandler) Generate(c *gin.Context) {
	resp, err := h.sessions.Generate(c.Param("id"))
	if err != nil {
		if validation.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": validation.GetValidationErrors(err)})
			return
		}
		h.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Export streams the generated document as a PDF attachment.
func (h *DocumentHandler) Export(c *gin.Context) {
	pdf, filename, err := h.sessions.ExportPDF(c.Param("id"))
	if err != nil {
		h.writeSessionError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *DocumentHandler) writeSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, document.ErrSessionNotFound),
		errors.Is(err, document.ErrTemplateNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, document.ErrInvalidTransition),
		errors.Is(err, document.ErrNotGenerated):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, document.ErrExportInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, document.ErrUnknownField):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
