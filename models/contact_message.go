package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact message statuses. Status and Replied are independently mutable:
// the admin UI exposes them as separate controls and no reconciliation rule
// exists between them.
const (
	MessageStatusUnread  = "unread"
	MessageStatusRead    = "read"
	MessageStatusReplied = "replied"
)

// ValidMessageStatus reports whether s is one of the known statuses.
func ValidMessageStatus(s string) bool {
	return s == MessageStatusUnread || s == MessageStatusRead || s == MessageStatusReplied
}

// ContactMessage represents a message submitted through the public contact
// form. New messages always start unread and un-replied.
type ContactMessage struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Subject   string    `json:"subject" db:"subject" gorm:"type:text;not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	Status    string    `json:"status" db:"status" gorm:"type:text;not null;default:'unread'"`
	Replied   bool      `json:"replied" db:"replied" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null;default:now()"`
}
