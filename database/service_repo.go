package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/nsahli/portfolio-backend/models"
	"gorm.io/gorm"
)

type ServiceRepo struct {
	db *gorm.DB
}

func NewServiceRepo(db *gorm.DB) *ServiceRepo {
	return &ServiceRepo{db}
}

// FindAll returns every service, newest first, for the admin manager.
func (r *ServiceRepo) FindAll() ([]*models.Service, error) {
	var services []*models.Service
	err := r.db.Order("created_at DESC").Find(&services).Error
	return services, err
}

// FindFeatured returns featured services, newest first, for the public
// services section.
func (r *ServiceRepo) FindFeatured() ([]*models.Service, error) {
	var services []*models.Service
	err := r.db.Where("featured = ?", true).
		Order("created_at DESC").
		Find(&services).Error
	return services, err
}

// FindByID returns a service by its ID, or (nil, nil) when no such service
// exists.
func (r *ServiceRepo) FindByID(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := r.db.First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// Add inserts a new service into the database
func (r *ServiceRepo) Add(service *models.Service) error {
	return r.db.Create(service).Error
}

// Update replaces an existing service in the database
func (r *ServiceRepo) Update(service *models.Service) error {
	return r.db.Save(service).Error
}

// Delete removes a service from the database by id
func (r *ServiceRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Service{}, "id = ?", id).Error
}

// Count returns the total number of services
func (r *ServiceRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Service{}).Count(&count).Error
	return count, err
}
