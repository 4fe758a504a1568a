// Package models defines the records persisted by the portfolio site.
package models

// All returns every model managed by the application, in migration order.
func All() []interface{} {
	return []interface{}{
		&GeneralInfo{},
		&SkillCategory{},
		&Skill{},
		&Expertise{},
		&ProjectCategory{},
		&Tag{},
		&Project{},
		&SocialLink{},
		&LicenseCategory{},
		&License{},
		&ClickEvent{},
		&ContactSubmission{},
	}
}
