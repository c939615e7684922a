package api

import (
	"github.com/nsahli/portfolio-backend/database"
	"github.com/nsahli/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, pipeline *services.ContactPipeline, images imageUploader) *routeHandlers {
	return &routeHandlers{
		publicHandler:   newPublicHandler(db.ProjectRepo(), db.SkillRepo(), db.ServiceRepo(), pipeline),
		projectHandler:  newProjectHandler(db.ProjectRepo()),
		skillHandler:    newSkillHandler(db.SkillRepo()),
		serviceHandler:  newServiceHandler(db.ServiceRepo()),
		contactHandler:  newContactHandler(db.ContactMessageRepo()),
		settingsHandler: newSettingsHandler(db.SiteSettingRepo()),
		adminHandler: newAdminHandler(
			db.ProfileRepo(),
			db.ProjectRepo(),
			db.SkillRepo(),
			db.ServiceRepo(),
			db.ContactMessageRepo(),
			images,
		),
	}
}
