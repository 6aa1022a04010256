package upload

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// MaxFileSize is the upload size cap in bytes.
const MaxFileSize = 5 << 20 // 5 MiB

var (
	// ErrUnsupportedFileType is returned when either the file extension or
	// the declared MIME type falls outside the allowed image set.
	ErrUnsupportedFileType = errors.New("only image files are allowed (jpeg, jpg, png, gif)")
	// ErrFileTooLarge is returned for files over MaxFileSize.
	ErrFileTooLarge = errors.New("file exceeds the 5MB size limit")
)

var (
	allowedExtensions = map[string]bool{
		".jpeg": true,
		".jpg":  true,
		".png":  true,
		".gif":  true,
	}
	allowedMIMETypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
	}
)

// Store persists uploaded product images under a local directory and hands
// out storage-relative paths.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Save validates and persists one uploaded file, returning the relative
// path ("/uploads/<name>") to store alongside the product row.
func (s *Store) Save(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	if err := Validate(file); err != nil {
		return "", err
	}

	name := uniqueName(file.Filename)
	if err := c.SaveFile(file, filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}
	return "/uploads/" + name, nil
}

// Validate checks size, extension and declared MIME type. Both the
// extension and the MIME type must be in the allowed image set.
func Validate(file *multipart.FileHeader) error {
	if file.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return ErrUnsupportedFileType
	}
	if !allowedMIMETypes[file.Header.Get("Content-Type")] {
		return ErrUnsupportedFileType
	}
	return nil
}

// uniqueName builds "<unix-ms>-<token>-<basename>". The random token closes
// the collision window a timestamp-only name leaves between two uploads of
// the same file in the same millisecond.
func uniqueName(original string) string {
	token := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), token, filepath.Base(original))
}
