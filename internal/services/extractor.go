package services

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFormat marks a file type the extractor cannot read.
type ErrUnsupportedFormat struct {
	Ext string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Ext)
}

// SupportedFormats lists the file extensions the extractor accepts.
var SupportedFormats = map[string]string{
	".pdf":  "Adobe PDF",
	".docx": "Microsoft Word (.docx)",
	".txt":  "Plain Text",
}

type TextExtractorService interface {
	ExtractFile(filePath string) (string, error)
}

type textExtractorService struct{}

func NewTextExtractorService() TextExtractorService {
	return &textExtractorService{}
}

// ExtractFile extracts plain text from a PDF, DOCX or TXT file.
func (t *textExtractorService) ExtractFile(filePath string) (string, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", filePath)
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".pdf":
		return extractPDF(filePath)
	case ".docx":
		return extractDOCX(filePath)
	case ".txt":
		return extractTXT(filePath)
	default:
		return "", &ErrUnsupportedFormat{Ext: ext}
	}
}

func extractPDF(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := strings.TrimSpace(textBuilder.String())
	if text == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

var docxTagRe = regexp.MustCompile(`<[^>]+>`)

func extractDOCX(filePath string) (string, error) {
	r, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer r.Close()

	content := r.Editable().GetContent()

	// The document body is WordprocessingML; paragraph closers become
	// newlines, everything else in angle brackets is markup.
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = docxTagRe.ReplaceAllString(content, "")
	content = html.UnescapeString(content)

	text := strings.TrimSpace(content)
	if text == "" {
		return "", fmt.Errorf("no text content found in DOCX")
	}

	return text, nil
}

func extractTXT(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}
