package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvmatcher/internal/matcher"
	"cvmatcher/internal/models"
	"cvmatcher/internal/services"
)

const testMaxFileSize = 10 * 1024 * 1024

func newFileMatchTestApp(t *testing.T) (*fiber.App, *captureRecorder) {
	t.Helper()

	engine, err := matcher.NewEngine(identityProvider{}, meanModel{})
	require.NoError(t, err)

	recorder := &captureRecorder{}
	storage := services.NewStorageService(t.TempDir())
	extractor := services.NewTextExtractorService()
	handler := NewFileMatchHandler(engine, recorder, storage, extractor, testMaxFileSize)

	app := fiber.New()
	app.Post("/api/v1/match/files", handler.HandleMatchWithFiles)
	return app, recorder
}

func multipartBody(t *testing.T, fields map[string]string, files map[string][2]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for name, file := range files {
		part, err := writer.CreateFormFile(name, file[0])
		require.NoError(t, err)
		_, err = io.WriteString(part, file[1])
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestHandleMatchWithFiles_TextFields(t *testing.T) {
	app, recorder := newFileMatchTestApp(t)

	body, contentType := multipartBody(t, map[string]string{
		"cv_text": "Senior Python developer with 5 years experience and machine learning background",
		"jd_text": "Python developer role, 3 years experience required, machine learning",
	}, nil)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/match/files", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result models.MatchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.InDelta(t, 100.0, result.SkillMatch, 1e-9)
	assert.Equal(t, 1, recorder.count())
}

func TestHandleMatchWithFiles_UploadedTxtWinsOverText(t *testing.T) {
	app, _ := newFileMatchTestApp(t)

	body, contentType := multipartBody(t,
		map[string]string{
			"cv_text": "this plain text must be ignored when a file is attached",
			"jd_text": "Python developer role, 3 years experience required, machine learning",
		},
		map[string][2]string{
			"cv_file": {"cv.txt", "Senior Python developer with 5 years experience and machine learning background"},
		})

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/match/files", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result models.MatchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	// The ignored placeholder mentions no known skills; the uploaded CV does.
	assert.InDelta(t, 100.0, result.SkillMatch, 1e-9)
}

func TestHandleMatchWithFiles_MissingSide(t *testing.T) {
	app, recorder := newFileMatchTestApp(t)

	body, contentType := multipartBody(t, map[string]string{
		"cv_text": "Senior Python developer with 5 years experience",
	}, nil)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/match/files", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, recorder.count())
}

func TestHandleMatchWithFiles_UnsupportedUpload(t *testing.T) {
	app, _ := newFileMatchTestApp(t)

	body, contentType := multipartBody(t,
		map[string]string{
			"jd_text": "Python developer role, 3 years experience required",
		},
		map[string][2]string{
			"cv_file": {"cv.pages", "not a supported document"},
		})

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/match/files", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnsupportedMediaType, resp.StatusCode)
}
