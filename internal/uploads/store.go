package uploads

import (
	"errors"
	"fmt"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PublicPrefix is the URL prefix under which stored files are served; every
// path string persisted in the database starts with it.
const PublicPrefix = "/uploads/"

// MaxFileSize caps a single uploaded image.
const MaxFileSize = 5 << 20

// Store owns the upload directory. Rows in the database reference its files
// only by path string, so Store is the one place allowed to create or remove
// them.
type Store struct {
	dir string
	log *zap.SugaredLogger
}

func NewStore(dir string, log *zap.SugaredLogger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, log: log}, nil
}

// Dir returns the directory files are written to (for static serving).
func (s *Store) Dir() string { return s.dir }

// SaveUploaded writes one multipart image to disk and returns its public
// path. Non-image extensions and oversized files are rejected.
func (s *Store) SaveUploaded(c *gin.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif":
	default:
		return "", fmt.Errorf("unsupported image format")
	}
	if file.Size > MaxFileSize {
		return "", fmt.Errorf("file too large")
	}
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(s.dir, name)); err != nil {
		return "", err
	}
	return PublicPrefix + name, nil
}

// Remove deletes the file behind a stored path. Removing an absent file is a
// no-op: replacement and primary-image bookkeeping may mark the same file
// twice, and a path may point at a file that was never written. Other errors
// are logged and swallowed — orphaned files are a cleanup concern, not a
// request failure.
func (s *Store) Remove(path *string) {
	if path == nil || *path == "" {
		return
	}
	name := strings.TrimPrefix(*path, PublicPrefix)
	if name == *path {
		// not one of ours
		return
	}
	full := filepath.Join(s.dir, filepath.Base(name))
	err := os.Remove(full)
	switch {
	case err == nil:
		s.log.Infow("deleted image file", "file", name)
	case errors.Is(err, fs.ErrNotExist):
	default:
		s.log.Warnw("failed to delete image file", "file", name, "err", err)
	}
}
