package models

import (
	"time"

	"github.com/google/uuid"
)

// excerptLength bounds how much of each input text is persisted with a
// result. Full documents stay request-scoped.
const excerptLength = 500

type MatchResult struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CVExcerpt          string    `gorm:"type:text" json:"cv_excerpt"`
	JDExcerpt          string    `gorm:"type:text" json:"jd_excerpt"`
	SkillMatch         float64   `gorm:"not null" json:"skill_match"`
	ExperienceMatch    float64   `gorm:"not null" json:"experience_match"`
	EducationMatch     float64   `gorm:"not null" json:"education_match"`
	SemanticSimilarity float64   `gorm:"not null" json:"semantic_similarity"`
	OverallMatch       float64   `gorm:"not null" json:"overall_match"`
	CreatedAt          time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (MatchResult) TableName() string {
	return "match_results"
}

// Excerpt truncates text for persistence.
func Excerpt(text string) string {
	if len(text) > excerptLength {
		return text[:excerptLength]
	}
	return text
}
