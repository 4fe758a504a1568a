package repository

import (
	"context"
	"fmt"

	"github.com/axellelanca/portfolio/internal/models"
	"gorm.io/gorm"
)

// ContactRepository stores contact form submissions.
type ContactRepository interface {
	CreateSubmission(ctx context.Context, submission *models.ContactSubmission) error
	ListSubmissions(ctx context.Context, limit int) ([]models.ContactSubmission, error)
}

// GormContactRepository is the GORM implementation of ContactRepository.
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new GormContactRepository.
func NewContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// CreateSubmission inserts a contact submission.
func (r *GormContactRepository) CreateSubmission(ctx context.Context, submission *models.ContactSubmission) error {
	if err := r.db.WithContext(ctx).Create(submission).Error; err != nil {
		return fmt.Errorf("failed to create contact submission: %w", err)
	}
	return nil
}

// ListSubmissions returns the latest submissions, newest first.
func (r *GormContactRepository) ListSubmissions(ctx context.Context, limit int) ([]models.ContactSubmission, error) {
	var submissions []models.ContactSubmission
	err := r.db.WithContext(ctx).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	return submissions, nil
}
