package models

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GeneralInfoID is the fixed key of the single site information row.
const GeneralInfoID uint = 1

// GeneralInfo holds the site-wide texts. The table holds at most one row,
// stored under GeneralInfoID.
type GeneralInfo struct {
	ID uint `gorm:"primaryKey;autoIncrement:false"`

	Name          string `gorm:"size:100"`
	ResumeURL     string `gorm:"size:500"`
	HeroTitle     string `gorm:"type:text"`
	HeroSubtitle  string `gorm:"type:text"`
	AboutImageURL string `gorm:"size:500"`

	AboutSectionTag   string `gorm:"size:50"`
	AboutTitle        string `gorm:"size:200"`
	AboutSubtitle     string `gorm:"type:text"`
	AboutContentTitle string `gorm:"size:200"`
	AboutContentP1    string `gorm:"type:text"`
	AboutContentP2    string `gorm:"type:text"`

	ProjectsCompleted string `gorm:"size:10"`
	HappyClients      string `gorm:"size:10"`
	YearsExperience   string `gorm:"size:10"`

	SkillsSectionTag string `gorm:"size:50"`
	SkillsTitle      string `gorm:"size:200"`
	SkillsSubtitle   string `gorm:"type:text"`

	ProjectsSectionTag string `gorm:"size:50"`
	ProjectsTitle      string `gorm:"size:200"`
	ProjectsSubtitle   string `gorm:"type:text"`

	ContactSectionTag   string `gorm:"size:50"`
	ContactTitle        string `gorm:"size:200"`
	ContactTextTitle    string `gorm:"size:200"`
	ContactTextSubtitle string `gorm:"type:text"`
	ContactEmail        string `gorm:"size:254"`
	FooterText          string `gorm:"size:100"`

	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName pins the singleton table name.
func (GeneralInfo) TableName() string {
	return "general_info"
}

func (GeneralInfo) String() string {
	return "General Site Information"
}

// DefaultGeneralInfo returns the texts shown before any site info was saved.
func DefaultGeneralInfo() GeneralInfo {
	return GeneralInfo{
		ID:                  GeneralInfoID,
		HeroTitle:           "Building digital<br><span class='gradient-text'>experiences</span> that matter",
		HeroSubtitle:        "Full-stack developer crafting beautiful, accessible, and performant web applications with modern technologies.",
		AboutSectionTag:     "About Me",
		AboutTitle:          "Crafting Digital Solutions",
		AboutSubtitle:       "Passionate about creating innovative web experiences that combine beautiful design with powerful functionality",
		AboutContentTitle:   "Hello! I'm a developer who loves building things for the web.",
		AboutContentP1:      "My journey in web development started years ago...",
		AboutContentP2:      "Currently, I'm focused on building innovative products...",
		ProjectsCompleted:   "50+",
		HappyClients:        "30+",
		YearsExperience:     "3+",
		SkillsSectionTag:    "Skills",
		SkillsTitle:         "My Capabilities",
		SkillsSubtitle:      "A blend of modern technologies and core software engineering expertise.",
		ProjectsSectionTag:  "Projects",
		ProjectsTitle:       "My Projects",
		ProjectsSubtitle:    "A collection of my work. Use the filters to explore different categories.",
		ContactSectionTag:   "Contact",
		ContactTitle:        "Let's Build Something Amazing",
		ContactTextTitle:    "Have a project in mind or just want to connect? My inbox is always open.",
		ContactTextSubtitle: "I'm currently available for freelance opportunities...",
		ContactEmail:        "youremail@example.com",
		FooterText:          "Designed & Built by Your Name",
	}
}

// SkillCategory groups skills in the skills section.
type SkillCategory struct {
	ID     uint    `gorm:"primaryKey"`
	Name   string  `gorm:"size:100;uniqueIndex;not null"`
	Slug   string  `gorm:"size:100;uniqueIndex;not null"`
	Skills []Skill `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// BeforeSave derives the slug from the name when it is empty.
func (c *SkillCategory) BeforeSave(tx *gorm.DB) error {
	c.Slug = deriveSlug(c.Slug, c.Name)
	return nil
}

func (c SkillCategory) String() string { return c.Name }

// Skill is one technology listed under a SkillCategory.
type Skill struct {
	ID         uint          `gorm:"primaryKey"`
	CategoryID uint          `gorm:"not null;index"`
	Category   SkillCategory `gorm:"foreignKey:CategoryID"`
	Name       string        `gorm:"size:100;not null"`
	SVGIcon    string        `gorm:"type:text"`
}

func (s Skill) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.Category.Name)
}

// Expertise is an area of expertise card.
type Expertise struct {
	ID          uint   `gorm:"primaryKey"`
	SVGIcon     string `gorm:"type:text"`
	Title       string `gorm:"size:100;not null"`
	Description string `gorm:"type:text;not null"`
}

func (e Expertise) String() string { return e.Title }

// SocialLink is a profile link shown in the contact section.
type SocialLink struct {
	ID           uint   `gorm:"primaryKey"`
	PlatformName string `gorm:"size:50;not null"`
	SVGIcon      string `gorm:"type:text"`
	Link         string `gorm:"size:500;not null"`
}

func (l SocialLink) String() string { return l.PlatformName }

// LicenseCategory groups licenses and certifications.
type LicenseCategory struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;uniqueIndex;not null"`
	Slug string `gorm:"size:100;uniqueIndex;not null"`
}

// BeforeSave derives the slug from the name when it is empty.
func (c *LicenseCategory) BeforeSave(tx *gorm.DB) error {
	c.Slug = deriveSlug(c.Slug, c.Name)
	return nil
}

func (c LicenseCategory) String() string { return c.Name }

// License is a certification or license, listed by DisplayOrder.
type License struct {
	ID            uint   `gorm:"primaryKey"`
	Title         string `gorm:"size:200;not null"`
	Organization  string `gorm:"size:200"`
	DateIssued    *time.Time
	CredentialURL string            `gorm:"size:500"`
	DisplayOrder  int               `gorm:"not null;default:0;index"`
	Categories    []LicenseCategory `gorm:"many2many:license_category_links;constraint:OnDelete:CASCADE"`
}

func (l License) String() string { return l.Title }

// deriveSlug keeps an explicit slug and otherwise builds one from name.
func deriveSlug(current, name string) string {
	if current != "" {
		return current
	}
	return slug.Make(name)
}
