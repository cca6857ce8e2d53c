// Package uploads stores admin-uploaded media on disk and hands back the
// URL under which the static file server exposes it. The URL is opaque to
// callers; records just keep it as a string field.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file too large")
)

var allowedExtensions = map[string][]string{
	"image": {".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"},
	"video": {".mp4", ".webm", ".mov"},
}

type Store struct {
	dir      string
	baseURL  string
	maxBytes int64
}

func NewStore(dir, baseURL string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, baseURL: strings.TrimRight(baseURL, "/"), maxBytes: maxBytes}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save writes one uploaded file under a fresh name and returns its URL.
// kind is "image" or "video" and constrains the accepted extensions.
func (s *Store) Save(kind, filename string, size int64, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !extensionAllowed(kind, ext) {
		return "", fmt.Errorf("%w: %s for %s upload", ErrUnsupportedType, ext, kind)
	}
	if s.maxBytes > 0 && size > s.maxBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrTooLarge, size)
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", err
	}

	return path.Join(s.baseURL, name), nil
}

func extensionAllowed(kind, ext string) bool {
	for _, allowed := range allowedExtensions[kind] {
		if ext == allowed {
			return true
		}
	}
	return false
}
