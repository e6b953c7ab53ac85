package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// LocalStorage stores uploads in a flat local directory under generated
// filenames
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new local storage rooted at basePath,
// creating the directory if needed
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", basePath, err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// Save persists an uploaded file under a generated unique filename and
// returns the stored filename
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	ext := filepath.Ext(fileHeader.Filename)
	storedName := uuid.New().String() + ext

	dst, err := os.Create(filepath.Join(ls.basePath, storedName))
	if err != nil {
		return "", fmt.Errorf("failed to create stored file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write stored file: %w", err)
	}

	return storedName, nil
}

// Remove deletes a stored file. A missing file is not an error.
func (ls *LocalStorage) Remove(storedName string) error {
	err := os.Remove(filepath.Join(ls.basePath, storedName))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ListOlderThan lists stored filenames whose last modification is older
// than age. Used by the orphan sweeper.
func (ls *LocalStorage) ListOlderThan(age time.Duration) ([]string, error) {
	entries, err := os.ReadDir(ls.basePath)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-age)
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
