package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Project statuses. Status is advisory: the public reader filters on it,
// the store does not enforce it.
const (
	ProjectStatusActive   = "active"
	ProjectStatusInactive = "inactive"
)

// Project represents a portfolio project shown in the public projects grid
type Project struct {
	ID           uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title        string         `json:"title" db:"title" gorm:"type:text;not null"`
	Description  string         `json:"description" db:"description" gorm:"type:text"`
	ImageURL     string         `json:"image_url" db:"image_url" gorm:"type:text"`
	DemoURL      string         `json:"demo_url" db:"demo_url" gorm:"type:text"`
	RepoURL      string         `json:"repo_url" db:"repo_url" gorm:"type:text"`
	LinkedinURL  string         `json:"linkedin_url" db:"linkedin_url" gorm:"type:text"`
	Technologies pq.StringArray `json:"technologies" db:"technologies" gorm:"type:text[]"`
	Category     string         `json:"category" db:"category" gorm:"type:text"`
	Featured     bool           `json:"featured" db:"featured" gorm:"not null;default:false"`
	Status       string         `json:"status" db:"status" gorm:"type:text;not null;default:'active'"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at" gorm:"not null;default:now()"`
}

// SplitTechnologies parses the comma-delimited string used by the editing
// form into the stored list. Items are trimmed and empty items dropped.
func SplitTechnologies(s string) []string {
	parts := strings.Split(s, ",")
	techs := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			techs = append(techs, trimmed)
		}
	}
	return techs
}

// JoinTechnologies renders the stored list back into the form's
// comma-delimited string.
func JoinTechnologies(techs []string) string {
	return strings.Join(techs, ", ")
}
