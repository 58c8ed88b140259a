package matcher

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"cvmatcher/internal/embedding"
)

var (
	yearsRe  = regexp.MustCompile(`(\d+(\.\d+)?)\s*(years|yrs|year|yr)`)
	monthsRe = regexp.MustCompile(`(\d+)\s*(months|month|mos|mo)`)
)

// entryLevelCues signal a candidate (or requirement) with no numeric tenure.
var entryLevelCues = []string{"intern", "internship", "fresher", "entry level", "entry-level"}

// experienceKeywords is the fixed set used to filter both texts down to
// their experience-related words before embedding.
var experienceKeywords = map[string]struct{}{
	"experience":       {},
	"intern":           {},
	"internship":       {},
	"worked":           {},
	"responsibilities": {},
	"employment":       {},
	"job":              {},
	"role":             {},
}

const (
	// entryLevelYears is assumed when only qualitative entry-level
	// language is present.
	entryLevelYears = 0.5

	// neutralRelevance is returned when either text carries no
	// experience-related words at all.
	neutralRelevance = 0.3

	numericWeight   = 0.4
	relevanceWeight = 0.4
	boostWeight     = 0.2

	entryLevelBoost = 0.9
	defaultBoost    = 0.5
)

// EstimateYears derives a years-of-experience estimate from text. Rules are
// evaluated in order and the first hit wins: explicit years, explicit months
// (converted), entry-level cues (0.5), otherwise 0.
func EstimateYears(text string) float64 {
	text = strings.ToLower(text)

	if m := yearsRe.FindStringSubmatch(text); m != nil {
		years, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return years
		}
	}

	if m := monthsRe.FindStringSubmatch(text); m != nil {
		months, err := strconv.Atoi(m[1])
		if err == nil {
			return round2(float64(months) / 12)
		}
	}

	for _, cue := range entryLevelCues {
		if strings.Contains(text, cue) {
			return entryLevelYears
		}
	}

	return 0
}

// filterExperienceWords keeps only words from the experience keyword set.
func filterExperienceWords(text string) string {
	var kept []string
	for _, word := range strings.Fields(text) {
		if _, ok := experienceKeywords[word]; ok {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " ")
}

// experienceRelevance embeds the experience-filtered forms of both texts and
// returns their cosine similarity. When either side has no experience
// vocabulary there is no signal to compare, so a neutral constant is used.
func (e *Engine) experienceRelevance(ctx context.Context, cvText, jdText string) (float64, error) {
	cvExp := filterExperienceWords(cvText)
	jdExp := filterExperienceWords(jdText)

	if cvExp == "" || jdExp == "" {
		return neutralRelevance, nil
	}

	cvVec, err := e.embedder.Embed(ctx, cvExp)
	if err != nil {
		return 0, fmt.Errorf("failed to embed CV experience text: %w", err)
	}

	jdVec, err := e.embedder.Embed(ctx, jdExp)
	if err != nil {
		return 0, fmt.Errorf("failed to embed JD experience text: %w", err)
	}

	return embedding.Cosine(cvVec, jdVec), nil
}

// ExperienceScore blends the numeric years ratio, the semantic relevance of
// the experience language, and a rule boost that rewards entry-level-to-
// entry-level alignment, where the raw ratio alone is uninformative.
// The result is not clamped: with cosine similarity bounded by 1 the blend
// cannot exceed 100 (0.4 + 0.4 + 0.2*0.9 caps at 98).
func (e *Engine) ExperienceScore(ctx context.Context, cvText, jdText string) (float64, error) {
	cvYears := EstimateYears(cvText)
	jdYears := EstimateYears(jdText)

	numeric := min(cvYears/max(jdYears, 0.5), 1.0)

	relevance, err := e.experienceRelevance(ctx, cvText, jdText)
	if err != nil {
		return 0, err
	}

	boost := defaultBoost
	if cvYears <= 1 && jdYears <= 1 {
		boost = entryLevelBoost
	}

	final := numericWeight*numeric + relevanceWeight*relevance + boostWeight*boost
	return round2(final * 100), nil
}
