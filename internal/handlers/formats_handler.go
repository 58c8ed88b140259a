package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cvmatcher/internal/services"
)

type FormatsHandler struct {
	maxFileSize int64
}

func NewFormatsHandler(maxFileSize int64) *FormatsHandler {
	return &FormatsHandler{
		maxFileSize: maxFileSize,
	}
}

// HandleSupportedFormats handles GET /supported-formats.
func (h *FormatsHandler) HandleSupportedFormats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"file_formats":     services.SupportedFormats,
		"max_file_size_mb": h.maxFileSize / (1024 * 1024),
		"text_modes":       []string{"text_input", "file_upload", "both"},
	})
}
