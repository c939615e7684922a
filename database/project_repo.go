package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/nsahli/portfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns every project, newest first. The admin surface uses this:
// no visibility filter is applied.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// FindActive returns projects with status "active", newest first, for the
// public projects grid.
func (r *ProjectRepo) FindActive() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Where("status = ?", models.ProjectStatusActive).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or (nil, nil) when no such project
// exists.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update replaces an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

// Count returns the total number of projects
func (r *ProjectRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}
