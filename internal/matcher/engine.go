package matcher

import (
	"context"
	"fmt"
	"math"

	"cvmatcher/internal/embedding"
)

// Guardrail thresholds. The regression model, trained on a small feature
// set, can assign an implausibly high overall score to documents that share
// superficial semantic similarity but no actual skill overlap. The caps are
// a deliberate policy override on top of the learned model.
const (
	guardSkillMin      = 20.0
	guardSemanticMin   = 40.0
	guardMismatchCap   = 45.0
	guardExtremeSkill  = 0.0
	guardExtremeSemMin = 30.0
	guardExtremeCap    = 30.0
)

// ScoreRecord is the result of one scoring request. All fields are
// percentages rounded to two decimals; the overall score leaves [0, 100]
// only through the guardrail logic, never silently.
type ScoreRecord struct {
	SkillMatch         float64 `json:"skill_match"`
	ExperienceMatch    float64 `json:"experience_match"`
	EducationMatch     float64 `json:"education_match"`
	SemanticSimilarity float64 `json:"semantic_similarity"`
	OverallMatch       float64 `json:"overall_match"`
}

// Engine fuses the rule-based sub-scores with the semantic signal through
// the trained regression model. It holds only immutable, process-wide state
// (the embedder and the model) and is safe for concurrent use.
type Engine struct {
	embedder   embedding.Provider
	regression RegressionModel
}

func NewEngine(embedder embedding.Provider, regression RegressionModel) (*Engine, error) {
	if embedder == nil {
		return nil, fmt.Errorf("embedding provider is required")
	}
	if regression == nil {
		return nil, fmt.Errorf("regression model is required")
	}

	return &Engine{
		embedder:   embedder,
		regression: regression,
	}, nil
}

// Score computes the full match record for a CV/JD pair. It is a pure
// function of the two texts and the frozen models; degenerate inputs fall
// back to documented constants rather than errors, and only embedding or
// regression failures propagate.
func (e *Engine) Score(ctx context.Context, cvText, jdText string) (*ScoreRecord, error) {
	cv := Strict(cvText)
	jd := Strict(jdText)

	skillPct := SkillMatchPercent(ExtractSkills(cv), ExtractSkills(jd))

	expPct, err := e.ExperienceScore(ctx, cv, jd)
	if err != nil {
		return nil, err
	}

	eduPct := float64(EducationScore(DetectDegree(cv), DetectDegree(jd)))

	semantic, err := e.semanticSimilarity(ctx, cv, jd)
	if err != nil {
		return nil, err
	}

	features := []float64{skillPct, expPct, eduPct, semantic}
	rawOverall, err := e.regression.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("regression prediction failed: %w", err)
	}

	overall := applyDomainGuardrail(skillPct, semantic, rawOverall)

	return &ScoreRecord{
		SkillMatch:         round2(skillPct),
		ExperienceMatch:    round2(expPct),
		EducationMatch:     round2(eduPct),
		SemanticSimilarity: round2(semantic),
		OverallMatch:       round2(overall),
	}, nil
}

// semanticSimilarity embeds both full normalized texts and reports their
// cosine similarity as a percentage.
func (e *Engine) semanticSimilarity(ctx context.Context, cv, jd string) (float64, error) {
	cvVec, err := e.embedder.Embed(ctx, cv)
	if err != nil {
		return 0, fmt.Errorf("failed to embed CV text: %w", err)
	}

	jdVec, err := e.embedder.Embed(ctx, jd)
	if err != nil {
		return 0, fmt.Errorf("failed to embed JD text: %w", err)
	}

	return embedding.Cosine(cvVec, jdVec) * 100, nil
}

// applyDomainGuardrail caps the learned score on broad domain mismatch, and
// harder still when there is zero skill overlap. The extreme condition is a
// strict subset of the broad one, so it must be checked first for its lower
// cap to ever apply.
func applyDomainGuardrail(skill, semantic, overall float64) float64 {
	// Extreme mismatch (absolute rejection)
	if skill == guardExtremeSkill && semantic < guardExtremeSemMin {
		return min(overall, guardExtremeCap)
	}

	// Strong domain mismatch
	if skill < guardSkillMin && semantic < guardSemanticMin {
		return min(overall, guardMismatchCap)
	}

	return overall
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
