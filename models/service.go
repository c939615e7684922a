package models

import (
	"time"

	"github.com/google/uuid"
)

// Icon keys the frontend knows how to render. An unknown key is normalized
// to DefaultServiceIcon before it reaches the public surface.
const (
	IconLayout     = "Layout"
	IconCode       = "Code"
	IconBrain      = "Brain"
	IconSmartphone = "Smartphone"

	DefaultServiceIcon = IconCode
)

var knownServiceIcons = map[string]bool{
	IconLayout:     true,
	IconCode:       true,
	IconBrain:      true,
	IconSmartphone: true,
}

// Service represents an offered service card on the public site
type Service struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text"`
	Icon        string    `json:"icon" db:"icon" gorm:"type:text"`
	Featured    bool      `json:"featured" db:"featured" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"not null;default:now()"`
}

// NormalizeIcon maps an icon key to itself when the client icon set knows
// it, and to the default icon otherwise.
func NormalizeIcon(icon string) string {
	if knownServiceIcons[icon] {
		return icon
	}
	return DefaultServiceIcon
}
