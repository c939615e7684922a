package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/nsahli/portfolio-backend/models"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns every skill ordered by category, matching the order the
// skills section renders its groups in.
func (r *SkillRepo) FindAll() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Order("category ASC").Find(&skills).Error
	return skills, err
}

// FindByID returns a skill by its ID, or (nil, nil) when no such skill
// exists.
func (r *SkillRepo) FindByID(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new skill into the database
func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// Update replaces an existing skill in the database
func (r *SkillRepo) Update(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

// Delete removes a skill from the database by id
func (r *SkillRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Skill{}, "id = ?", id).Error
}

// Count returns the total number of skills
func (r *SkillRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Skill{}).Count(&count).Error
	return count, err
}
