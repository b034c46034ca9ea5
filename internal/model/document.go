package model

import "time"

// UploadedDocument represents a validated upload persisted to the incoming
// directory. This is a pure domain model with no framework dependencies.
// It is owned exclusively by the request that created it and is removed
// after the response is sent or on terminal failure.
type UploadedDocument struct {
	// OriginalFilename is the name the client uploaded; it is what the
	// downloaded result is named after. Never exposed as a disk path.
	OriginalFilename string `json:"original_filename"`
	// StoredFilename is the on-disk name, disambiguated with a creation
	// timestamp so concurrent same-named uploads never collide.
	StoredFilename string    `json:"stored_filename"`
	StoredPath     string    `json:"stored_path"`
	ContentType    string    `json:"content_type"`
	Size           int64     `json:"size"`
	CreatedAt      time.Time `json:"created_at"`
}

// GeneratedOutput is the rasterized result of a conversion, owned by the
// request until streamed and deleted.
type GeneratedOutput struct {
	Path string `json:"path"`
}
