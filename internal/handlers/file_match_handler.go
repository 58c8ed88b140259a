package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"cvmatcher/internal/matcher"
	"cvmatcher/internal/services"
)

type FileMatchHandler struct {
	engine      *matcher.Engine
	recorder    services.Recorder
	storage     services.StorageService
	extractor   services.TextExtractorService
	maxFileSize int64
}

func NewFileMatchHandler(
	engine *matcher.Engine,
	recorder services.Recorder,
	storage services.StorageService,
	extractor services.TextExtractorService,
	maxFileSize int64,
) *FileMatchHandler {
	return &FileMatchHandler{
		engine:      engine,
		recorder:    recorder,
		storage:     storage,
		extractor:   extractor,
		maxFileSize: maxFileSize,
	}
}

// HandleMatchWithFiles handles POST /match/files. Each side accepts either
// an uploaded document (cv_file/jd_file) or a plain-text field
// (cv_text/jd_text); the file wins when both are present.
func (h *FileMatchHandler) HandleMatchWithFiles(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	cvText, err := h.resolveInput(form, "cv")
	if err != nil {
		return h.inputError(c, "CV", err)
	}

	jdText, err := h.resolveInput(form, "jd")
	if err != nil {
		return h.inputError(c, "Job description", err)
	}

	return scoreAndRespond(c, h.engine, h.recorder, cvText, jdText)
}

// resolveInput returns the text for one side of the match, extracting it
// from an uploaded file when one was sent.
func (h *FileMatchHandler) resolveInput(form *multipart.Form, side string) (string, error) {
	if files, ok := form.File[side+"_file"]; ok && len(files) > 0 {
		return h.extractUpload(files[0], side)
	}

	if values, ok := form.Value[side+"_text"]; ok && len(values) > 0 {
		if text := strings.TrimSpace(values[0]); text != "" {
			return text, nil
		}
	}

	return "", fmt.Errorf("please provide either a file or text")
}

func (h *FileMatchHandler) extractUpload(file *multipart.FileHeader, side string) (string, error) {
	if file.Size > h.maxFileSize {
		return "", fmt.Errorf("file too large, max size: %d bytes", h.maxFileSize)
	}

	filename, filePath, err := h.storage.SaveFile(file, side)
	if err != nil {
		return "", err
	}
	// Uploads only exist for the duration of extraction.
	defer h.storage.DeleteFile(filename)

	text, err := h.extractor.ExtractFile(filePath)
	if err != nil {
		return "", err
	}

	return text, nil
}

func (h *FileMatchHandler) inputError(c *fiber.Ctx, side string, err error) error {
	status := fiber.StatusBadRequest

	var unsupported *services.ErrUnsupportedFormat
	if errors.As(err, &unsupported) {
		status = fiber.StatusUnsupportedMediaType
	}

	return c.Status(status).JSON(fiber.Map{
		"error":   fmt.Sprintf("%s input error", side),
		"details": err.Error(),
	})
}
