package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin is the only role that passes the admin session gate.
const RoleAdmin = "admin"

// Profile mirrors an authenticated user. Its ID is the subject of the auth
// token; the role field backs the admin session gate.
type Profile struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	FullName  string    `json:"full_name" db:"full_name" gorm:"type:text"`
	Role      string    `json:"role" db:"role" gorm:"type:text;not null;default:'user'"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null;default:now()"`
}

// IsAdmin reports whether the profile carries the elevated role.
func (p Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
