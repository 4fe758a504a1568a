package models

import (
	"fmt"
	"time"
)

// ActionKind is the category of visitor interaction recorded by the click tracker.
// The string values are the wire values sent by the rendered page.
type ActionKind string

const (
	ActionResumeDownload  ActionKind = "RESUME_DOWNLOAD"
	ActionProjectLiveDemo ActionKind = "PROJECT_LIVE_DEMO"
	ActionProjectGitHub   ActionKind = "PROJECT_GITHUB"
	ActionEmailClick      ActionKind = "EMAIL_CLICK"
)

var actionLabels = map[ActionKind]string{
	ActionResumeDownload:  "Resume Download",
	ActionProjectLiveDemo: "Project Live Demo",
	ActionProjectGitHub:   "Project GitHub",
	ActionEmailClick:      "Email Click",
}

// ActionKinds lists every known kind in display order.
func ActionKinds() []ActionKind {
	return []ActionKind{ActionResumeDownload, ActionProjectLiveDemo, ActionProjectGitHub, ActionEmailClick}
}

// Valid reports whether k is one of the known wire values. Unknown kinds are
// still recorded, they only lack a label.
func (k ActionKind) Valid() bool {
	_, ok := actionLabels[k]
	return ok
}

// IsProjectScoped reports whether the kind refers to a project link.
func (k ActionKind) IsProjectScoped() bool {
	return k == ActionProjectLiveDemo || k == ActionProjectGitHub
}

// Label returns the human readable name of the kind.
func (k ActionKind) Label() string {
	if label, ok := actionLabels[k]; ok {
		return label
	}
	return string(k)
}

// ClickEvent is one recorded visitor interaction. Rows are appended by the
// tracking endpoint and never updated afterwards.
type ClickEvent struct {
	// ID is the primary key with auto-increment functionality
	ID uint `gorm:"primaryKey"`

	// ActionType is the interaction kind, always set
	ActionType ActionKind `gorm:"size:50;not null;index"`

	// Timestamp is assigned once at creation
	Timestamp time.Time `gorm:"not null;index;autoCreateTime"`

	// IPAddress is the caller address taken from X-Forwarded-For or the peer
	IPAddress *string `gorm:"size:64"`

	// UserAgent is the raw User-Agent header
	UserAgent *string `gorm:"type:text"`

	// ProjectID references the clicked project. The reference is cleared,
	// not cascaded, when the project is deleted.
	ProjectID *uint    `gorm:"index"`
	Project   *Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	// Details holds "Project ID: <id>" for resolved project clicks and the raw
	// details parameter otherwise
	Details *string `gorm:"size:255"`
}

func (e ClickEvent) String() string {
	return fmt.Sprintf("%s at %s", e.ActionType.Label(), e.Timestamp.Format("2006-01-02 15:04"))
}

// ActionCount is one row of the per-kind aggregation.
type ActionCount struct {
	ActionType ActionKind `json:"action_type"`
	Total      int64      `json:"total"`
}

// ProjectClickCount is one row of the per-project aggregation.
type ProjectClickCount struct {
	ProjectID uint   `json:"project_id"`
	Title     string `json:"title"`
	Total     int64  `json:"total"`
}
