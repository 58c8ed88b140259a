package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvmatcher/internal/models"
)

// stubHistoryRepo serves canned results and records the requested limit.
type stubHistoryRepo struct {
	results   []models.MatchResult
	err       error
	lastLimit int
}

func (s *stubHistoryRepo) Create(*models.MatchResult) error { return nil }

func (s *stubHistoryRepo) FindRecent(limit int) ([]models.MatchResult, error) {
	s.lastLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	if limit > len(s.results) {
		limit = len(s.results)
	}
	return s.results[:limit], nil
}

func newHistoryTestApp(repo *stubHistoryRepo) *fiber.App {
	app := fiber.New()
	app.Get("/api/v1/matches/history", NewHistoryHandler(repo).HandleGetHistory)
	return app
}

func TestHandleGetHistory(t *testing.T) {
	repo := &stubHistoryRepo{results: []models.MatchResult{
		{OverallMatch: 88.5},
		{OverallMatch: 42.0},
	}}
	app := newHistoryTestApp(repo)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/matches/history", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, defaultHistoryLimit, repo.lastLimit)

	var body models.HistoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Count)
	assert.InDelta(t, 88.5, body.Results[0].OverallMatch, 1e-9)
}

func TestHandleGetHistory_ClampsLimit(t *testing.T) {
	repo := &stubHistoryRepo{}
	app := newHistoryTestApp(repo)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/matches/history?limit=5000", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, maxHistoryLimit, repo.lastLimit)

	resp2, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/matches/history?limit=-3", nil), -1)
	require.NoError(t, err)
	defer resp2.Body.Close()

	assert.Equal(t, defaultHistoryLimit, repo.lastLimit)
}

func TestHandleGetHistory_RepositoryFailure(t *testing.T) {
	app := newHistoryTestApp(&stubHistoryRepo{err: errors.New("db down")})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/matches/history", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
