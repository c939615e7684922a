package models

import (
	"time"

	"github.com/google/uuid"
)

// Skill represents a single entry in the skills section, rendered as a
// proficiency bar grouped under its category
type Skill struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Proficiency int       `json:"proficiency" db:"proficiency" gorm:"not null;default:0"`
	Category    string    `json:"category" db:"category" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"not null;default:now()"`
}

// ClampProficiency bounds a proficiency value to [0,100]. The bound is
// applied at the API boundary, not by the store.
func ClampProficiency(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// GroupSkillsByCategory buckets skills by their category tag, preserving the
// input order within each bucket. Uncategorized skills land under "".
func GroupSkillsByCategory(skills []*Skill) map[string][]*Skill {
	grouped := make(map[string][]*Skill)
	for _, skill := range skills {
		grouped[skill.Category] = append(grouped[skill.Category], skill)
	}
	return grouped
}
