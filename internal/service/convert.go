package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"convertapi/internal/convert"
	"convertapi/internal/model"
	"convertapi/internal/storage"
)

// Validation errors, caught at the boundary before any disk write.
var (
	ErrNoFileUploaded  = errors.New("no file uploaded")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file too large")
)

// ConversionError wraps a pipeline stage failure so handlers can attach the
// underlying engine message to the response.
type ConversionError struct {
	Err error
}

func (e *ConversionError) Error() string {
	return "conversion failed: " + e.Err.Error()
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// allowedExtensions and allowedContentTypes are the two conventional forms of
// legacy and modern word-processing documents.
var (
	allowedExtensions = map[string]bool{
		".doc":  true,
		".docx": true,
	}
	allowedContentTypes = map[string]bool{
		"application/msword": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	}
)

// ConvertService defines the document conversion use case.
type ConvertService interface {
	// Convert validates and persists the upload, renders it to a paginated
	// PDF, and returns both artifacts. On any failure after the upload is
	// stored, the stored file is removed and no output is referenced.
	Convert(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.UploadedDocument, *model.GeneratedOutput, error)
}

type convertService struct {
	store     storage.Storage
	extractor convert.Extractor
	pool      *convert.RendererPool
	maxBytes  int64
	tracer    trace.Tracer
}

// NewConvertService constructs a ConvertService backed by the given store,
// extractor, and renderer pool.
func NewConvertService(store storage.Storage, extractor convert.Extractor, pool *convert.RendererPool, maxBytes int64) ConvertService {
	return &convertService{
		store:     store,
		extractor: extractor,
		pool:      pool,
		maxBytes:  maxBytes,
		tracer:    otel.Tracer("convertapi/service"),
	}
}

func (s *convertService) Convert(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.UploadedDocument, *model.GeneratedOutput, error) {
	if err := s.validateUpload(r, originalFilename, contentType, size); err != nil {
		return nil, nil, err
	}

	ctx, span := s.tracer.Start(ctx, "convert",
		trace.WithAttributes(attribute.String("document.filename", originalFilename), attribute.Int64("document.size", size)))
	defer span.End()

	doc, err := s.store.SaveUpload(r, originalFilename, contentType, size)
	if err != nil {
		return nil, nil, fmt.Errorf("store upload: %w", err)
	}

	out, err := s.runPipeline(ctx, doc)
	if err != nil {
		// Terminal failure: the stored upload must not outlive the request.
		if rmErr := s.store.Remove(doc.StoredPath); rmErr != nil {
			err = fmt.Errorf("%w; remove upload failed: %v", err, rmErr)
		}
		return nil, nil, err
	}
	return doc, out, nil
}

// runPipeline performs extraction, template assembly, and rasterization.
func (s *convertService) runPipeline(ctx context.Context, doc *model.UploadedDocument) (*model.GeneratedOutput, error) {
	extractCtx, extractSpan := s.tracer.Start(ctx, "convert.extract")
	markup, err := s.extractor.ExtractHTML(extractCtx, doc.StoredPath)
	extractSpan.End()
	if err != nil {
		return nil, &ConversionError{Err: err}
	}

	htmlContent := convert.AssembleDocument(markup)
	outputPath := s.store.OutputPath(doc.StoredFilename)

	renderCtx, renderSpan := s.tracer.Start(ctx, "convert.render")
	defer renderSpan.End()

	renderer := s.pool.Acquire()
	defer s.pool.Release(renderer)

	if err := renderer.RenderPDF(renderCtx, htmlContent, outputPath); err != nil {
		return nil, &ConversionError{Err: err}
	}
	return &model.GeneratedOutput{Path: outputPath}, nil
}

// validateUpload enforces presence, type, and size before anything touches
// disk.
func (s *convertService) validateUpload(r io.Reader, originalFilename string, contentType string, size int64) error {
	if r == nil || originalFilename == "" {
		return ErrNoFileUploaded
	}

	ext := strings.ToLower(filepath.Ext(originalFilename))
	if !allowedExtensions[ext] && !allowedContentTypes[contentType] {
		return ErrInvalidFileType
	}

	if s.maxBytes > 0 && size > s.maxBytes {
		return ErrFileTooLarge
	}
	return nil
}
