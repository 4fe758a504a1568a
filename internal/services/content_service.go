package services

import (
	"context"

	"github.com/axellelanca/portfolio/internal/models"
	"github.com/axellelanca/portfolio/internal/repository"
)

// Snapshot is the read-only content rendered on one page view.
type Snapshot struct {
	Info              models.GeneralInfo
	SkillCategories   []models.SkillCategory
	Expertise         []models.Expertise
	ProjectCategories []models.ProjectCategory
	Projects          []models.Project
	SocialLinks       []models.SocialLink
	LicenseCategories []models.LicenseCategory
	Licenses          []models.License
}

// ContentService assembles the page content.
type ContentService struct {
	contentRepo repository.ContentRepository
	projectRepo repository.ProjectRepository
}

// NewContentService creates a ContentService.
func NewContentService(contentRepo repository.ContentRepository, projectRepo repository.ProjectRepository) *ContentService {
	return &ContentService{contentRepo: contentRepo, projectRepo: projectRepo}
}

// Snapshot reads every content section. Missing site info yields the
// defaults; any storage error is returned as is.
func (s *ContentService) Snapshot(ctx context.Context) (*Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)
	if snap.Info, err = s.contentRepo.GetGeneralInfo(ctx); err != nil {
		return nil, err
	}
	if snap.SkillCategories, err = s.contentRepo.ListSkillCategories(ctx); err != nil {
		return nil, err
	}
	if snap.Expertise, err = s.contentRepo.ListExpertise(ctx); err != nil {
		return nil, err
	}
	if snap.ProjectCategories, err = s.contentRepo.ListProjectCategories(ctx); err != nil {
		return nil, err
	}
	if snap.Projects, err = s.projectRepo.ListProjects(ctx); err != nil {
		return nil, err
	}
	if snap.SocialLinks, err = s.contentRepo.ListSocialLinks(ctx); err != nil {
		return nil, err
	}
	if snap.LicenseCategories, err = s.contentRepo.ListLicenseCategories(ctx); err != nil {
		return nil, err
	}
	if snap.Licenses, err = s.contentRepo.ListLicenses(ctx); err != nil {
		return nil, err
	}
	return &snap, nil
}

// SaveGeneralInfo replaces the site info row.
func (s *ContentService) SaveGeneralInfo(ctx context.Context, info *models.GeneralInfo) error {
	return s.contentRepo.SaveGeneralInfo(ctx, info)
}

// GeneralInfo returns the current site info, or the defaults.
func (s *ContentService) GeneralInfo(ctx context.Context) (models.GeneralInfo, error) {
	return s.contentRepo.GetGeneralInfo(ctx)
}
