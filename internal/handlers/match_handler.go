package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"cvmatcher/internal/matcher"
	"cvmatcher/internal/models"
	"cvmatcher/internal/services"
)

type MatchHandler struct {
	engine   *matcher.Engine
	recorder services.Recorder
}

func NewMatchHandler(engine *matcher.Engine, recorder services.Recorder) *MatchHandler {
	return &MatchHandler{
		engine:   engine,
		recorder: recorder,
	}
}

// HandleMatch handles POST /match with plain-text CV and JD inputs.
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	var req models.MatchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	cvText := strings.TrimSpace(req.CVText)
	jdText := strings.TrimSpace(req.JDText)

	if cvText == "" || jdText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Both CV and JD text are required",
		})
	}

	return scoreAndRespond(c, h.engine, h.recorder, cvText, jdText)
}

// scoreAndRespond validates, scores, records and answers. Shared by the
// text and file-upload endpoints.
func scoreAndRespond(c *fiber.Ctx, engine *matcher.Engine, recorder services.Recorder, cvText, jdText string) error {
	if err := matcher.ValidateText(cvText); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "CV validation failed",
			"details": err.Error(),
		})
	}

	if err := matcher.ValidateText(jdText); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "JD validation failed",
			"details": err.Error(),
		})
	}

	record, err := engine.Score(c.Context(), cvText, jdText)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   "Error processing prediction",
			"details": err.Error(),
		})
	}

	recorder.Record(&models.MatchResult{
		CVExcerpt:          models.Excerpt(cvText),
		JDExcerpt:          models.Excerpt(jdText),
		SkillMatch:         record.SkillMatch,
		ExperienceMatch:    record.ExperienceMatch,
		EducationMatch:     record.EducationMatch,
		SemanticSimilarity: record.SemanticSimilarity,
		OverallMatch:       record.OverallMatch,
	})

	return c.JSON(models.MatchResponse{
		ScoreRecord: *record,
		Preprocessing: models.PreprocessingStats{
			CVStats: matcher.Stats(cvText),
			JDStats: matcher.Stats(jdText),
		},
	})
}
