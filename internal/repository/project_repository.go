package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/axellelanca/portfolio/internal/errors"
	"github.com/axellelanca/portfolio/internal/models"
	"gorm.io/gorm"
)

// ProjectRepository defines data access for projects.
type ProjectRepository interface {
	GetProjectByID(ctx context.Context, id uint) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, id uint) error
}

// GormProjectRepository is the GORM implementation of ProjectRepository.
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new GormProjectRepository.
func NewProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// GetProjectByID returns the project with the given ID, or
// errors.ErrProjectNotFound.
func (r *GormProjectRepository) GetProjectByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}
	return &project, nil
}

// ListProjects returns all projects with their categories and tags.
func (r *GormProjectRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Order("id").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// CreateProject inserts a project. Categories and tags are matched by name and
// created when they do not exist yet.
func (r *GormProjectRepository) CreateProject(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range project.Categories {
			c := &project.Categories[i]
			if err := tx.Where(models.ProjectCategory{Name: c.Name}).FirstOrCreate(c).Error; err != nil {
				return fmt.Errorf("failed to resolve category %q: %w", c.Name, err)
			}
		}
		for i := range project.Tags {
			tag := &project.Tags[i]
			if err := tx.Where(models.Tag{Name: tag.Name}).FirstOrCreate(tag).Error; err != nil {
				return fmt.Errorf("failed to resolve tag %q: %w", tag.Name, err)
			}
		}
		if err := tx.Create(project).Error; err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}
		return nil
	})
}

// DeleteProject removes a project. Its click events are kept with the project
// reference cleared.
func (r *GormProjectRepository) DeleteProject(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		project := models.Project{ID: id}
		if err := tx.First(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return fmt.Errorf("failed to get project %d: %w", id, err)
		}

		// Click events outlive the project
		if err := tx.Model(&models.ClickEvent{}).
			Where("project_id = ?", id).
			Update("project_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach clicks from project %d: %w", id, err)
		}
		if err := tx.Model(&project).Association("Categories").Clear(); err != nil {
			return fmt.Errorf("failed to clear categories of project %d: %w", id, err)
		}
		if err := tx.Model(&project).Association("Tags").Clear(); err != nil {
			return fmt.Errorf("failed to clear tags of project %d: %w", id, err)
		}
		if err := tx.Delete(&project).Error; err != nil {
			return fmt.Errorf("failed to delete project %d: %w", id, err)
		}
		return nil
	})
}
