package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/contentdesk/contentdesk/internal/uploads"
)

func newUploadRouter(t *testing.T, maxBytes int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := uploads.NewStore(t.TempDir(), "/static/uploads", maxBytes)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	h := NewUploadHandler(store)

	r := gin.New()
	r.POST("/api/uploads/image", h.UploadImage)
	r.POST("/api/uploads/video", h.UploadVideo)
	return r
}

func multipartUpload(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestUploadHandler_ImageReturnsURL(t *testing.T) {
	r := newUploadRouter(t, 1<<20)

	body, contentType := multipartUpload(t, "image", "hero.png", "png bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/uploads/image", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(resp["url"], "/static/uploads/") || !strings.HasSuffix(resp["url"], ".png") {
		t.Errorf("Unexpected url %q", resp["url"])
	}
}

func TestUploadHandler_MissingFileField(t *testing.T) {
	r := newUploadRouter(t, 1<<20)

	// The file arrives under the wrong field name
	body, contentType := multipartUpload(t, "file", "hero.png", "png bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/uploads/image", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUploadHandler_WrongKindRejected(t *testing.T) {
	r := newUploadRouter(t, 1<<20)

	body, contentType := multipartUpload(t, "video", "cover.png", "not a video")
	req := httptest.NewRequest(http.MethodPost, "/api/uploads/video", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a png video upload, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUploadHandler_OversizedUpload(t *testing.T) {
	r := newUploadRouter(t, 8)

	body, contentType := multipartUpload(t, "image", "big.jpg", strings.Repeat("x", 64))
	req := httptest.NewRequest(http.MethodPost, "/api/uploads/image", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected 413, got %d: %s", w.Code, w.Body.String())
	}
}
