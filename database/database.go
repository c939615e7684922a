package database

import (
	"gorm.io/gorm"
)

type Database struct {
	projectRepo        *ProjectRepo
	skillRepo          *SkillRepo
	serviceRepo        *ServiceRepo
	contactMessageRepo *ContactMessageRepo
	siteSettingRepo    *SiteSettingRepo
	profileRepo        *ProfileRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:        NewProjectRepo(db),
		skillRepo:          NewSkillRepo(db),
		serviceRepo:        NewServiceRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
		siteSettingRepo:    NewSiteSettingRepo(db),
		profileRepo:        NewProfileRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ServiceRepo() *ServiceRepo {
	return d.serviceRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

func (d Database) SiteSettingRepo() *SiteSettingRepo {
	return d.siteSettingRepo
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}
