package handler

import (
	"github.com/gofiber/fiber/v2"
)

// Client-facing messages per failure category.
const (
	msgNoFileUploaded  = "No file uploaded"
	msgInvalidFileType = "Invalid file type. Only .doc and .docx files are allowed."
	msgFileTooLarge    = "File too large. Maximum size is 50MB."

	conversionMsgPrefix = "Error converting docx to pdf: "
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	Message string `json:"message"`
}

// writeError writes the JSON error body with the given status.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{Message: message})
}

// ErrorHandler returns a Fiber global error handler for faults that escape
// the route handlers. Body-limit rejections map to the size-limit message;
// everything else is reported generically with the original message attached
// for diagnostics.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			switch e.Code {
			case fiber.StatusRequestEntityTooLarge:
				return writeError(c, fiber.StatusBadRequest, msgFileTooLarge)
			case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
				return writeError(c, e.Code, e.Message)
			}
		}
		return writeError(c, fiber.StatusInternalServerError, "Something went wrong: "+err.Error())
	}
}
