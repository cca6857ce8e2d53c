package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/contentdesk/contentdesk/internal/storage/localstore"
)

// ConvenienceHandler serves the ephemeral admin conveniences: recent
// searches and bookmarks. None of it is authoritative state.
type ConvenienceHandler struct {
	store       *localstore.Store
	recentLimit int
}

func NewConvenienceHandler(store *localstore.Store, recentLimit int) *ConvenienceHandler {
	return &ConvenienceHandler{store: store, recentLimit: recentLimit}
}

type addSearchRequest struct {
	Scope string `json:"scope" binding:"required"`
	Term  string `json:"term" binding:"required"`
}

type addBookmarkRequest struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required"`
}

func (h *ConvenienceHandler) RecentSearches(c *gin.Context) {
	scope := c.DefaultQuery("scope", "global")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.recentLimit)))

	searches, err := h.store.RecentSearches(c.Request.Context(), scope, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"searches": searches})
}

func (h *ConvenienceHandler) AddSearch(c *gin.Context) {
	var req addSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.AddSearch(c.Request.Context(), req.Scope, req.Term, h.recentLimit); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "recorded"})
}

func (h *ConvenienceHandler) ListBookmarks(c *gin.Context) {
	bookmarks, err := h.store.ListBookmarks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks})
}

func (h *ConvenienceHandler) AddBookmark(c *gin.Context) {
	var req addBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.store.AddBookmark(c.Request.Context(), req.Title, req.URL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *ConvenienceHandler) DeleteBookmark(c *gin.Context) {
	if err := h.store.DeleteBookmark(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
