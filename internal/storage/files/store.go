package files

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"photo2text-backend/internal/util"
)

// Store persists uploaded files on the local filesystem.
type Store struct {
	baseDir string
}

// New creates a file store rooted at baseDir, creating the directory if absent.
func New(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir upload dir: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Save writes the reader to disk under a collision-resistant stored name
// formed by prefixing a random UUID to the sanitized original name. It
// returns the stored name, the sanitized original name and the byte count.
func (s *Store) Save(ctx context.Context, fileName string, r io.Reader) (stored string, sanitized string, size int64, err error) {
	sanitized, err = util.SanitizeFileName(fileName)
	if err != nil {
		return "", "", 0, fmt.Errorf("sanitize file name: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return "", "", 0, err
	}

	stored = uuid.NewString() + "_" + sanitized
	fullPath := filepath.Join(s.baseDir, stored)

	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", "", 0, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	size, err = io.Copy(f, r)
	if err != nil {
		os.Remove(fullPath)
		return "", "", 0, fmt.Errorf("write body: %w", err)
	}
	return stored, sanitized, size, nil
}

// Path resolves a stored name to its on-disk path.
func (s *Store) Path(stored string) (string, error) {
	clean := filepath.Clean(stored)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) || strings.ContainsRune(clean, filepath.Separator) {
		return "", fmt.Errorf("invalid stored name")
	}
	return filepath.Join(s.baseDir, clean), nil
}

// Remove deletes a stored file. Used by simple extraction mode, which does
// not retain uploads after recognition.
func (s *Store) Remove(stored string) error {
	path, err := s.Path(stored)
	if err != nil {
		return err
	}
	return os.Remove(path)
}
