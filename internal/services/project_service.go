package services

import (
	"context"
	"strings"

	"github.com/axellelanca/portfolio/internal/models"
	"github.com/axellelanca/portfolio/internal/repository"
	"go.uber.org/zap"
)

// NewProject is the input for adding a project outside the admin interface.
type NewProject struct {
	Title        string
	Description  string
	ImageURL     string
	GitHubLink   string
	LiveDemoLink string
	Featured     bool
	Categories   []string
	Tags         []string
}

// ProjectService manages portfolio projects.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	logger      *zap.Logger
}

// NewProjectService creates a ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		logger:      logger.With(zap.String("component", "project_service")),
	}
}

// CreateProject stores a project, creating missing categories and tags.
// Blank category and tag names are skipped.
func (s *ProjectService) CreateProject(ctx context.Context, in NewProject) (*models.Project, error) {
	project := &models.Project{
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		GitHubLink:   in.GitHubLink,
		LiveDemoLink: in.LiveDemoLink,
		IsFeatured:   in.Featured,
	}
	for _, name := range in.Categories {
		if name = strings.TrimSpace(name); name != "" {
			project.Categories = append(project.Categories, models.ProjectCategory{Name: name})
		}
	}
	for _, name := range in.Tags {
		if name = strings.TrimSpace(name); name != "" {
			project.Tags = append(project.Tags, models.Tag{Name: name})
		}
	}

	if err := s.projectRepo.CreateProject(ctx, project); err != nil {
		return nil, err
	}
	s.logger.Info("Project created", zap.Uint("project_id", project.ID), zap.String("title", project.Title))
	return project, nil
}

// DeleteProject removes a project; its click history is kept, detached.
func (s *ProjectService) DeleteProject(ctx context.Context, id uint) error {
	if err := s.projectRepo.DeleteProject(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Project deleted, click events detached", zap.Uint("project_id", id))
	return nil
}

// ListProjects returns every project with categories and tags.
func (s *ProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.ListProjects(ctx)
}
