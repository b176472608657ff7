package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"rallypoint/internal/domain"
)

type diskPictureStore struct {
	dir     string
	baseURL string
}

// NewDiskPictureStore returns a PictureStore that writes files under dir and
// serves them from baseURL. Stored names are random so uploads can't collide
// or overwrite each other.
func NewDiskPictureStore(dir, baseURL string) (domain.PictureStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &diskPictureStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *diskPictureStore) Save(originalFilename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		return "", fmt.Errorf("unsupported file type %q", ext)
	}
	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return s.baseURL + "/" + name, nil
}
