package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"convertapi/internal/config"
	"convertapi/internal/model"
)

// localStore implements Storage on the local filesystem with two working
// directories: one for incoming uploads, one for generated outputs.
type localStore struct {
	uploadDir string
	outputDir string
}

// NewLocal creates a local temporary store, ensuring both working
// directories exist. Directory paths are read-only after this call.
func NewLocal(cfg config.StorageConfig) (Storage, error) {
	if cfg.UploadDir == "" || cfg.OutputDir == "" {
		return nil, fmt.Errorf("upload and output directories are required")
	}
	for _, dir := range []string{cfg.UploadDir, cfg.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return &localStore{uploadDir: cfg.UploadDir, outputDir: cfg.OutputDir}, nil
}

// SaveUpload writes the upload under <basename>_<creation-timestamp><ext>.
// The nanosecond timestamp keeps concurrent same-named uploads distinct.
func (s *localStore) SaveUpload(r io.Reader, originalFilename string, contentType string, size int64) (*model.UploadedDocument, error) {
	if r == nil {
		return nil, fmt.Errorf("reader is nil")
	}

	now := time.Now()
	// filepath.Base strips any directory components a client may have sent.
	base := filepath.Base(originalFilename)
	ext := filepath.Ext(base)
	storedName := fmt.Sprintf("%s_%d%s", strings.TrimSuffix(base, ext), now.UnixNano(), ext)
	storedPath := filepath.Join(s.uploadDir, storedName)

	f, err := os.Create(storedPath)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	written, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// Do not leave a partial upload behind.
		_ = os.Remove(storedPath)
		return nil, fmt.Errorf("write upload file: %w", err)
	}
	if size <= 0 {
		size = written
	}

	return &model.UploadedDocument{
		OriginalFilename: base,
		StoredFilename:   storedName,
		StoredPath:       storedPath,
		ContentType:      contentType,
		Size:             size,
		CreatedAt:        now.UTC(),
	}, nil
}

// OutputPath swaps the stored upload's extension for ".pdf" and places the
// result in the outgoing directory.
func (s *localStore) OutputPath(storedFilename string) string {
	name := strings.TrimSuffix(storedFilename, filepath.Ext(storedFilename)) + ".pdf"
	return filepath.Join(s.outputDir, name)
}

// Remove deletes a file by path.
func (s *localStore) Remove(path string) error {
	return os.Remove(path)
}
