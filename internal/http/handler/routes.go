package handler

import (
	"errors"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"convertapi/internal/http/middleware"
	"convertapi/internal/service"
	"convertapi/internal/storage"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, svc service.ConvertService, store storage.Storage, cleanupDelay time.Duration, metrics *middleware.PrometheusMiddleware) {
	app.Post("/convertFile", ConvertFile(svc, store, cleanupDelay, metrics))
	app.Get("/health", Health())
}

// ConvertFile handles the single-file multipart upload, runs the conversion
// pipeline, and streams the result back as an attachment named after the
// original upload. Both temp files are deleted after a grace delay once the
// response is on its way.
func ConvertFile(svc service.ConvertService, store storage.Storage, cleanupDelay time.Duration, metrics *middleware.PrometheusMiddleware) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, msgNoFileUploaded)
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, msgNoFileUploaded)
		}
		defer f.Close()

		start := time.Now()
		doc, out, err := svc.Convert(c.UserContext(), f, fh.Filename, fh.Header.Get("Content-Type"), fh.Size)
		if err != nil {
			if metrics != nil {
				metrics.ObserveConversion("error", time.Since(start))
			}
			return conversionErrorResponse(c, err)
		}
		if metrics != nil {
			metrics.ObserveConversion("success", time.Since(start))
		}

		// Scheduled before streaming starts; the grace delay keeps deletion
		// from racing the transfer's I/O. Stream failures still clean up on
		// the same schedule.
		scheduleCleanup(store, cleanupDelay, doc.StoredPath, out.Path)

		// The attachment is named from the original filename; the stored name
		// is an internal detail and never leaks to the client.
		downloadName := strings.TrimSuffix(doc.OriginalFilename, filepath.Ext(doc.OriginalFilename)) + ".pdf"
		return c.Download(out.Path, downloadName)
	}
}

// conversionErrorResponse maps the service error taxonomy to status + body.
func conversionErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNoFileUploaded):
		return writeError(c, fiber.StatusBadRequest, msgNoFileUploaded)
	case errors.Is(err, service.ErrInvalidFileType):
		return writeError(c, fiber.StatusBadRequest, msgInvalidFileType)
	case errors.Is(err, service.ErrFileTooLarge):
		return writeError(c, fiber.StatusBadRequest, msgFileTooLarge)
	}

	var convErr *service.ConversionError
	if errors.As(err, &convErr) {
		return writeError(c, fiber.StatusInternalServerError, conversionMsgPrefix+convErr.Err.Error())
	}
	return writeError(c, fiber.StatusInternalServerError, "Internal server error: "+err.Error())
}

// scheduleCleanup removes the request's temp files after the grace delay.
// Deletion failures are logged, never surfaced: the response is already sent.
func scheduleCleanup(store storage.Storage, delay time.Duration, paths ...string) {
	time.AfterFunc(delay, func() {
		for _, p := range paths {
			if err := store.Remove(p); err != nil {
				log.Printf("cleanup: failed to remove %s: %v", p, err)
			}
		}
	})
}

// Health reports process liveness. Never fails.
func Health() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"message":   "docx to pdf conversion service is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
