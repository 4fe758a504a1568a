package repository

import (
	"context"
	"fmt"

	"github.com/axellelanca/portfolio/internal/models"
	"gorm.io/gorm"
)

// ClickRepository defines data access for click events. Events are append-only.
type ClickRepository interface {
	CreateClick(ctx context.Context, click *models.ClickEvent) error
	CountByAction(ctx context.Context) ([]models.ActionCount, error)
	CountByProject(ctx context.Context) ([]models.ProjectClickCount, error)
	ListRecent(ctx context.Context, limit int) ([]models.ClickEvent, error)
}

// GormClickRepository is the GORM implementation of ClickRepository.
type GormClickRepository struct {
	db *gorm.DB
}

// NewClickRepository creates a new GormClickRepository.
func NewClickRepository(db *gorm.DB) *GormClickRepository {
	return &GormClickRepository{db: db}
}

// CreateClick inserts a single click event.
func (r *GormClickRepository) CreateClick(ctx context.Context, click *models.ClickEvent) error {
	if err := r.db.WithContext(ctx).Create(click).Error; err != nil {
		return fmt.Errorf("failed to create click: %w", err)
	}
	return nil
}

// CountByAction returns the number of events per action kind. Kinds without
// events are absent.
func (r *GormClickRepository) CountByAction(ctx context.Context) ([]models.ActionCount, error) {
	var rows []models.ActionCount
	err := r.db.WithContext(ctx).
		Model(&models.ClickEvent{}).
		Select("action_type, COUNT(*) AS total").
		Group("action_type").
		Order("action_type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count clicks by action: %w", err)
	}
	return rows, nil
}

// CountByProject returns the number of events attached to each existing
// project, most clicked first. Detached events are not counted.
func (r *GormClickRepository) CountByProject(ctx context.Context) ([]models.ProjectClickCount, error) {
	var rows []models.ProjectClickCount
	err := r.db.WithContext(ctx).
		Model(&models.ClickEvent{}).
		Select("click_events.project_id AS project_id, projects.title AS title, COUNT(*) AS total").
		Joins("JOIN projects ON projects.id = click_events.project_id").
		Group("click_events.project_id, projects.title").
		Order("total DESC, click_events.project_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count clicks by project: %w", err)
	}
	return rows, nil
}

// ListRecent returns the latest events, newest first.
func (r *GormClickRepository) ListRecent(ctx context.Context, limit int) ([]models.ClickEvent, error) {
	var events []models.ClickEvent
	err := r.db.WithContext(ctx).
		Preload("Project").
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list clicks: %w", err)
	}
	return events, nil
}
