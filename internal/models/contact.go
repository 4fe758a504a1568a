package models

import (
	"fmt"
	"time"
)

// ContactSubmission is a message left through the contact form. It is written
// once and only read afterwards.
type ContactSubmission struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"size:254;not null;index"`
	Subject   string    `gorm:"size:200;not null"`
	Message   string    `gorm:"type:text;not null"`
	Timestamp time.Time `gorm:"not null;index;autoCreateTime"`
}

func (s ContactSubmission) String() string {
	return fmt.Sprintf("Message from %s (%s)", s.Name, s.Email)
}
