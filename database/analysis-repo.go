package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"facelens/models"
)

// RecordStore is the persistence surface the upload handler needs. A nil
// RecordStore means no database is configured and persistence is skipped.
type RecordStore interface {
	Create(analysis *models.Analysis) error
	UpdateResult(id uint, aiComment, style, language, analysisType string) error
	FindByID(id uint) (*models.Analysis, error)
}

type AnalysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Create inserts a pending row without an AI result, so the upload has a
// stable id even if the AI call later fails.
func (r *AnalysisRepository) Create(analysis *models.Analysis) error {
	if err := r.db.Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to insert analysis: %w", err)
	}
	return nil
}

// UpdateResult fills in the AI comment and the effective selectors once the
// AI call has completed.
func (r *AnalysisRepository) UpdateResult(id uint, aiComment, style, language, analysisType string) error {
	result := r.db.Model(&models.Analysis{}).Where("id = ?", id).Updates(map[string]interface{}{
		"ai_comment":    aiComment,
		"style":         style,
		"language":      language,
		"analysis_type": analysisType,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update analysis %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("analysis %d not found", id)
	}
	return nil
}

func (r *AnalysisRepository) FindByID(id uint) (*models.Analysis, error) {
	var analysis models.Analysis
	if err := r.db.First(&analysis, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("analysis %d not found", id)
		}
		return nil, fmt.Errorf("failed to get analysis %d: %w", id, err)
	}
	return &analysis, nil
}
