package convert

import "errors"

// Sentinel errors for pipeline stages. Callers wrap these with the underlying
// engine message via fmt.Errorf("%w: %v", ...).
var (
	ErrParseDocument  = errors.New("failed to parse document")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
