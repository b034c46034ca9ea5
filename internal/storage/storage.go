package storage

import (
	"io"

	"convertapi/internal/model"
)

// Package storage contains the process-local temporary file store backing the
// conversion pipeline. Files in it are ephemeral: every upload and every
// generated output is deleted once its request completes.

// Storage is the temporary store for uploads and generated outputs.
// Implementations must be safe for concurrent use; paths handed out are
// fixed at startup and never change afterwards.
type Storage interface {
	// SaveUpload persists the uploaded bytes to the incoming directory under a
	// collision-resistant stored name derived from the original filename.
	SaveUpload(r io.Reader, originalFilename string, contentType string, size int64) (*model.UploadedDocument, error)
	// OutputPath derives the outgoing path for a stored upload, with the
	// extension replaced by the output format's.
	OutputPath(storedFilename string) string
	// Remove deletes a file previously created through this store.
	Remove(path string) error
}
