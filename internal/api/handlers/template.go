package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentdesk/contentdesk/internal/core/document"
	"github.com/contentdesk/contentdesk/internal/core/schema"
)

type TemplateHandler struct {
	registry *document.Registry
}

func NewTemplateHandler(registry *document.Registry) *TemplateHandler {
	return &TemplateHandler{registry: registry}
}

func (h *TemplateHandler) List(c *gin.Context) {
	resp, err := h.registry.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TemplateHandler) Get(c *gin.Context) {
	id := c.Param("id")

	tpl, err := h.registry.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, document.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var req document.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tpl, err := h.registry.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, document.ErrAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, schema.ErrInvalidFieldSpec):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.registry.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, document.ErrTemplateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, document.ErrBuiltIn):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
