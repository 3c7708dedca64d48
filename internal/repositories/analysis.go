package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"onewave/route-compass/internal/models"
)

type AnalysisRepository interface {
	// Create persists the result together with its matched-route children.
	Create(result *models.AnalysisResult) error
	// FindLatestByUser returns the most recent result for the user with its
	// matched routes rank-ordered, or (nil, nil) when none exists.
	FindLatestByUser(userID uuid.UUID) (*models.AnalysisResult, error)
	// FindPageByUser returns one page of the user's analysis history, newest
	// first, plus the total count.
	FindPageByUser(userID uuid.UUID, page, size int) ([]models.AnalysisResult, int64, error)
	// DeleteAllByUser removes every result for the user; matched-route rows
	// go with them via the FK cascade.
	DeleteAllByUser(userID uuid.UUID) error
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

// Create implements AnalysisRepository.
func (r *analysisRepository) Create(result *models.AnalysisResult) error {
	if err := r.db.Create(result).Error; err != nil {
		return fmt.Errorf("failed to create analysis result: %w", err)
	}
	return nil
}

// FindLatestByUser implements AnalysisRepository.
func (r *analysisRepository) FindLatestByUser(userID uuid.UUID) (*models.AnalysisResult, error) {
	var result models.AnalysisResult
	err := r.db.Preload("MatchedRoutes", func(db *gorm.DB) *gorm.DB {
		return db.Order("match_rank ASC")
	}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest analysis: %w", err)
	}
	return &result, nil
}

// FindPageByUser implements AnalysisRepository.
func (r *analysisRepository) FindPageByUser(userID uuid.UUID, page, size int) ([]models.AnalysisResult, int64, error) {
	var total int64
	if err := r.db.Model(&models.AnalysisResult{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count analysis history: %w", err)
	}

	var results []models.AnalysisResult
	err := r.db.Preload("MatchedRoutes", func(db *gorm.DB) *gorm.DB {
		return db.Order("match_rank ASC")
	}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&results).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list analysis history: %w", err)
	}

	return results, total, nil
}

// DeleteAllByUser implements AnalysisRepository.
func (r *analysisRepository) DeleteAllByUser(userID uuid.UUID) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.AnalysisResult{}).Error; err != nil {
		return fmt.Errorf("failed to delete analysis results: %w", err)
	}
	return nil
}
