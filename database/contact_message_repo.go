package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/nsahli/portfolio-backend/models"
	"gorm.io/gorm"
)

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// FindAll returns every contact message, newest first.
func (r *ContactMessageRepo) FindAll() ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// FindByID returns a message by its ID, or (nil, nil) when no such message
// exists.
func (r *ContactMessageRepo) FindByID(id uuid.UUID) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.First(&message, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// Add inserts a new contact message into the database
func (r *ContactMessageRepo) Add(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

// UpdateStatus patches only the status column of a message. Replied is left
// untouched; the two fields are independent.
func (r *ContactMessageRepo) UpdateStatus(id uuid.UUID, status string) error {
	return r.db.Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// UpdateReplied patches only the replied column of a message.
func (r *ContactMessageRepo) UpdateReplied(id uuid.UUID, replied bool) error {
	return r.db.Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Update("replied", replied).Error
}

// Delete removes a contact message from the database by id
func (r *ContactMessageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ContactMessage{}, "id = ?", id).Error
}

// Count returns the total number of contact messages
func (r *ContactMessageRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactMessage{}).Count(&count).Error
	return count, err
}
