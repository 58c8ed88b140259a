package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"cvmatcher/internal/models"
)

type MatchResultRepository interface {
	Create(result *models.MatchResult) error
	FindRecent(limit int) ([]models.MatchResult, error)
}

type matchResultRepository struct {
	db *gorm.DB
}

func NewMatchResultRepository(db *gorm.DB) MatchResultRepository {
	return &matchResultRepository{db: db}
}

// Create implements MatchResultRepository.
func (r *matchResultRepository) Create(result *models.MatchResult) error {
	if err := r.db.Create(result).Error; err != nil {
		return fmt.Errorf("failed to create match result: %w", err)
	}

	return nil
}

// FindRecent implements MatchResultRepository.
func (r *matchResultRepository) FindRecent(limit int) ([]models.MatchResult, error) {
	var results []models.MatchResult
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find recent match results: %w", err)
	}

	return results, nil
}
