package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Storage persists uploaded file content and returns the public path stored
// on the document. The path is a plain string; moving storage later does not
// rewrite existing documents.
type Storage interface {
	Save(folder, filename string, r io.Reader) (string, error)
}

// LocalStorage writes uploads to the public directory on local disk, from
// where they are served as static assets.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage creates a disk-backed storage rooted at baseDir
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir}
}

// Save writes the file under <baseDir>/<folder>/<filename> and returns the
// public path "/<folder>/<filename>".
func (s *LocalStorage) Save(folder, filename string, r io.Reader) (string, error) {
	folder = strings.Trim(folder, "/")
	dir := filepath.Join(s.baseDir, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return "/" + folder + "/" + filename, nil
}
