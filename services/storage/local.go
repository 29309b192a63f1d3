package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStorage writes files under a single upload directory. Stored names
// are prefixed with a UUID so concurrent uploads of the same filename
// never collide.
type LocalStorage struct {
	Dir string
}

func (s *LocalStorage) Save(ctx context.Context, src io.Reader, originalName string) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("LocalStorage: failed to create upload dir: %w", err)
	}
	name := uuid.NewString() + "-" + filepath.Base(originalName)
	path := filepath.Join(s.Dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("LocalStorage: failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("LocalStorage: failed to write file: %w", err)
	}
	return path, nil
}

func (s *LocalStorage) DownloadURL(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("LocalStorage: stored file missing: %w", err)
	}
	return path, nil
}

func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("LocalStorage: failed to delete file: %w", err)
	}
	return nil
}
