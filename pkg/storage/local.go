package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/kennygrant/sanitize"
)

// ImageStorage defines contract for image storage provider (local disk implementation).
type ImageStorage interface {
	// SaveImage stores the image from reader under a name derived from
	// fileName and returns the public path recorded with the news item.
	SaveImage(ctx context.Context, r io.Reader, fileName string) (string, error)
}

type localStorage struct {
	dir    string
	prefix string
}

// NewLocalStorage creates a disk-backed ImageStorage. dir is the directory
// files are written to, prefix is the public path prepended to file names
// (e.g. "static/uploads"). The directory is created if missing.
func NewLocalStorage(dir, prefix string) (ImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}

	return &localStorage{dir: dir, prefix: prefix}, nil
}

func (s *localStorage) SaveImage(ctx context.Context, r io.Reader, fileName string) (string, error) {
	name := sanitize.Name(filepath.Base(fileName))
	if name == "" || name == "." {
		return "", fmt.Errorf("unusable image file name %q", fileName)
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	// Reused file names map to the same public path on purpose; the unique
	// constraint on news.image_path rejects the second item.
	return path.Join(s.prefix, name), nil
}
