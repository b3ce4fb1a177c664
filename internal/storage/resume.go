// Package storage keeps uploaded resumes as opaque blobs and hands back a
// reference string for the user record.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ResumeStore persists resume uploads.
type ResumeStore interface {
	Save(file *multipart.FileHeader) (string, error)
}

// LocalResumeStore writes resumes to a directory on disk. References look
// like "/resumes/<uuid>.pdf" regardless of where the directory lives.
type LocalResumeStore struct {
	dir string
}

func NewLocalResumeStore(dir string) (*LocalResumeStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create resume dir: %w", err)
	}
	return &LocalResumeStore{dir: dir}, nil
}

// Save stores the upload under a fresh name and returns the reference string.
func (s *LocalResumeStore) Save(file *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".pdf"
	}
	name := uuid.New().String() + ext

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to store resume: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write resume: %w", err)
	}
	return "/resumes/" + name, nil
}
