package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentdesk/contentdesk/internal/core/collection"
	"github.com/contentdesk/contentdesk/internal/core/validation"
)

type CollectionHandler struct {
	collectionService *collection.Service
}

func NewCollectionHandler(collectionService *collection.Service) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

func (h *CollectionHandler) List(c *gin.Context) {
	defs, err := h.collectionService.Definitions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": defs, "total": len(defs)})
}

func (h *CollectionHandler) Get(c *gin.Context) {
	name := c.Param("name")

	resp, err := h.collectionService.Collection(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, collection.ErrCollectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Persist flushes the in-memory collection to storage (last write wins).
func (h *CollectionHandler) Persist(c *gin.Context) {
	name := c.Param("name")

	if err := h.collectionService.Persist(c.Request.Context(), name); err != nil {
		switch {
		case errors.Is(err, collection.ErrCollectionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, collection.ErrPersistInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			// Edits stay dirty and retryable; only the flush failed.
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "persisted"})
}

func (h *CollectionHandler) Refresh(c *gin.Context) {
	name := c.Param("name")

	resp, err := h.collectionService.Refresh(c.Request.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, collection.ErrCollectionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, collection.ErrPersistInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CollectionHandler) AddRecord(c *gin.Context) {
	name := c.Param("name")

	var req collection.AddRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.collectionService.Add(c.Request.Context(), name, &req)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *CollectionHandler) UpdateRecord(c *gin.Context) {
	name := c.Param("name")
	id := c.Param("id")

	var req collection.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.collectionService.Update(c.Request.Context(), name, id, &req)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteRecord is idempotent: deleting an id that is already gone still
// returns 204.
func (h *CollectionHandler) DeleteRecord(c *gin.Context) {
	name := c.Param("name")
	id := c.Param("id")

	if err := h.collectionService.Remove(c.Request.Context(), name, id); err != nil {
		h.writeMutationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CollectionHandler) ToggleRecord(c *gin.Context) {
	name := c.Param("name")
	id := c.Param("id")

	rec, err := h.collectionService.ToggleActive(c.Request.Context(), name, id)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *CollectionHandler) ReorderRecord(c *gin.Context) {
	name := c.Param("name")
	id := c.Param("id")

	var req collection.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.collectionService.Reorder(c.Request.Context(), name, id, req.Order); err != nil {
		h.writeMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reordered"})
}

func (h *CollectionHandler) View(c *gin.Context) {
	name := c.Param("name")

	var filter collection.FilterState
	if err := c.ShouldBindJSON(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.collectionService.View(c.Request.Context(), name, filter)
	if err != nil {
		if errors.Is(err, collection.ErrCollectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CollectionHandler) Public(c *gin.Context) {
	name := c.Param("name")

	resp, err := h.collectionService.Public(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, collection.ErrCollectionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CollectionHandler) writeMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, collection.ErrCollectionNotFound), errors.Is(err, collection.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, collection.ErrPersistInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case validation.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": validation.GetValidationErrors(err)})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
