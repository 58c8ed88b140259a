package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cvmatcher/internal/models"
	"cvmatcher/internal/repositories"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type HistoryHandler struct {
	repo repositories.MatchResultRepository
}

func NewHistoryHandler(repo repositories.MatchResultRepository) *HistoryHandler {
	return &HistoryHandler{
		repo: repo,
	}
}

// HandleGetHistory handles GET /matches/history.
func (h *HistoryHandler) HandleGetHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	results, err := h.repo.FindRecent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load match history",
		})
	}

	return c.JSON(models.HistoryResponse{
		Count:   len(results),
		Results: results,
	})
}
