package models

import (
	"time"

	"gorm.io/gorm"
)

// ProjectCategory groups projects for the filter tabs of the page.
type ProjectCategory struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;uniqueIndex;not null"`
	// Slug is derived from Name when left blank
	Slug string `gorm:"size:100;uniqueIndex;not null"`
}

// BeforeSave derives the slug from the name when it is empty.
func (c *ProjectCategory) BeforeSave(tx *gorm.DB) error {
	c.Slug = deriveSlug(c.Slug, c.Name)
	return nil
}

func (c ProjectCategory) String() string { return c.Name }

// Tag labels a project with a technology.
type Tag struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;uniqueIndex;not null"`
}

func (t Tag) String() string { return t.Name }

// Project is a portfolio entry. Click events reference it weakly.
type Project struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"size:200;not null"`
	Description  string `gorm:"type:text;not null"`
	ImageURL     string `gorm:"size:500"`
	GitHubLink   string `gorm:"size:500"`
	LiveDemoLink string `gorm:"size:500"`
	// IsFeatured places the project in the "Featured" tab
	IsFeatured bool              `gorm:"not null;default:false"`
	Categories []ProjectCategory `gorm:"many2many:project_category_links;constraint:OnDelete:CASCADE"`
	Tags       []Tag             `gorm:"many2many:project_tags;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time         `gorm:"autoCreateTime"`
}

func (p Project) String() string { return p.Title }

// CategorySlugs returns the slugs of the project's categories, used by the
// page filters.
func (p Project) CategorySlugs() []string {
	slugs := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		slugs = append(slugs, c.Slug)
	}
	return slugs
}
