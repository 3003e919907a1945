package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFile is returned for filenames outside the whitelist.
var ErrUnsupportedFile = errors.New("unsupported file type")

var allowedExtensions = map[string]bool{
	".txt":  true,
	".pdf":  true,
	".docx": true,
}

// Uploader writes accepted study-material files into a fixed directory.
// Stored files are write-only from the app's perspective.
type Uploader struct {
	dir string
}

// NewUploader creates the upload directory if missing.
func NewUploader(dir string) (*Uploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Uploader{dir: dir}, nil
}

// Save validates the extension, sanitizes the name, and writes the
// blob. It returns the stored filename.
func (u *Uploader) Save(filename string, src io.Reader) (string, error) {
	if !AllowedFile(filename) {
		return "", ErrUnsupportedFile
	}
	name := SanitizeFilename(filename)
	if name == "" {
		return "", ErrUnsupportedFile
	}

	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return name, nil
}

// AllowedFile reports whether the filename carries a whitelisted
// extension. The check is case-insensitive.
func AllowedFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return allowedExtensions[ext]
}

// SanitizeFilename strips path components and unsafe characters so the
// name is safe to join onto the upload directory.
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)

	var b strings.Builder
	for _, r := range filename {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	name := strings.Trim(b.String(), "._")
	if name == "" || name == "." || name == ".." {
		return ""
	}
	return name
}
