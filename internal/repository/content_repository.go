package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/axellelanca/portfolio/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContentRepository reads the editable site content.
type ContentRepository interface {
	GetGeneralInfo(ctx context.Context) (models.GeneralInfo, error)
	SaveGeneralInfo(ctx context.Context, info *models.GeneralInfo) error
	ListSkillCategories(ctx context.Context) ([]models.SkillCategory, error)
	ListExpertise(ctx context.Context) ([]models.Expertise, error)
	ListProjectCategories(ctx context.Context) ([]models.ProjectCategory, error)
	ListSocialLinks(ctx context.Context) ([]models.SocialLink, error)
	ListLicenseCategories(ctx context.Context) ([]models.LicenseCategory, error)
	ListLicenses(ctx context.Context) ([]models.License, error)
}

// GormContentRepository is the GORM implementation of ContentRepository.
type GormContentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new GormContentRepository.
func NewContentRepository(db *gorm.DB) *GormContentRepository {
	return &GormContentRepository{db: db}
}

// GetGeneralInfo returns the site info row, or the defaults when it was never
// saved.
func (r *GormContentRepository) GetGeneralInfo(ctx context.Context) (models.GeneralInfo, error) {
	var info models.GeneralInfo
	err := r.db.WithContext(ctx).First(&info, models.GeneralInfoID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultGeneralInfo(), nil
	}
	if err != nil {
		return models.GeneralInfo{}, fmt.Errorf("failed to get general info: %w", err)
	}
	return info, nil
}

// SaveGeneralInfo writes info under the fixed singleton key, replacing any
// previous row.
func (r *GormContentRepository) SaveGeneralInfo(ctx context.Context, info *models.GeneralInfo) error {
	info.ID = models.GeneralInfoID
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(info).Error
	if err != nil {
		return fmt.Errorf("failed to save general info: %w", err)
	}
	return nil
}

// ListSkillCategories returns the skill categories with their skills.
func (r *GormContentRepository) ListSkillCategories(ctx context.Context) ([]models.SkillCategory, error) {
	var categories []models.SkillCategory
	err := r.db.WithContext(ctx).
		Preload("Skills", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("id").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list skill categories: %w", err)
	}
	return categories, nil
}

// ListExpertise returns all expertise entries.
func (r *GormContentRepository) ListExpertise(ctx context.Context) ([]models.Expertise, error) {
	var items []models.Expertise
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list expertise: %w", err)
	}
	return items, nil
}

// ListProjectCategories returns the project categories used by the filters.
func (r *GormContentRepository) ListProjectCategories(ctx context.Context) ([]models.ProjectCategory, error) {
	var categories []models.ProjectCategory
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list project categories: %w", err)
	}
	return categories, nil
}

// ListSocialLinks returns all social profile links.
func (r *GormContentRepository) ListSocialLinks(ctx context.Context) ([]models.SocialLink, error) {
	var links []models.SocialLink
	if err := r.db.WithContext(ctx).Order("id").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to list social links: %w", err)
	}
	return links, nil
}

// ListLicenseCategories returns all license categories.
func (r *GormContentRepository) ListLicenseCategories(ctx context.Context) ([]models.LicenseCategory, error) {
	var categories []models.LicenseCategory
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list license categories: %w", err)
	}
	return categories, nil
}

// ListLicenses returns licenses by display order, then by ID.
func (r *GormContentRepository) ListLicenses(ctx context.Context) ([]models.License, error) {
	var licenses []models.License
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Order("display_order, id").
		Find(&licenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list licenses: %w", err)
	}
	return licenses, nil
}
