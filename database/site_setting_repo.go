package database

import (
	"errors"

	"github.com/nsahli/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteSettingRepo struct {
	db *gorm.DB
}

func NewSiteSettingRepo(db *gorm.DB) *SiteSettingRepo {
	return &SiteSettingRepo{db}
}

// FindAll returns every site setting ordered by key.
func (r *SiteSettingRepo) FindAll() ([]*models.SiteSetting, error) {
	var settings []*models.SiteSetting
	err := r.db.Order("key ASC").Find(&settings).Error
	return settings, err
}

// FindByKey returns a setting by its key, or (nil, nil) when the key is not
// present.
func (r *SiteSettingRepo) FindByKey(key string) (*models.SiteSetting, error) {
	var setting models.SiteSetting
	err := r.db.First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Upsert inserts the setting or, when the key already exists, replaces its
// value and description.
func (r *SiteSettingRepo) Upsert(setting *models.SiteSetting) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "description"}),
	}).Create(setting).Error
}

// Delete removes a setting by key
func (r *SiteSettingRepo) Delete(key string) error {
	return r.db.Delete(&models.SiteSetting{}, "key = ?", key).Error
}
