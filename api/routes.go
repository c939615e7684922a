package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public surface and the gated admin surface
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, gate adminGate) {
	// Public routes: content reads and the contact form. No authentication.
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/content/projects", handlers.publicHandler.getProjects())
		r.Get("/content/skills", handlers.publicHandler.getSkills())
		r.Get("/content/services", handlers.publicHandler.getServices())
		r.Post("/contact", handlers.publicHandler.submitContact())
	})

	// Admin routes: authenticated and gated on the admin role.
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)
		r.Use(gate.requireAdmin)

		r.Get("/admin/me", handlers.adminHandler.getMe())
		r.Get("/admin/stats", handlers.adminHandler.getStats())
		r.Post("/admin/upload", handlers.adminHandler.uploadImage())

		r.Get("/admin/projects", handlers.projectHandler.listProjects())
		r.Get("/admin/project/{projectID}", handlers.projectHandler.getProject())
		r.Post("/admin/project", handlers.projectHandler.createProject())
		r.Put("/admin/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/admin/project/{projectID}", handlers.projectHandler.deleteProject())

		r.Get("/admin/skills", handlers.skillHandler.listSkills())
		r.Post("/admin/skill", handlers.skillHandler.createSkill())
		r.Put("/admin/skill/{skillID}", handlers.skillHandler.updateSkill())
		r.Delete("/admin/skill/{skillID}", handlers.skillHandler.deleteSkill())

		r.Get("/admin/services", handlers.serviceHandler.listServices())
		r.Post("/admin/service", handlers.serviceHandler.createService())
		r.Put("/admin/service/{serviceID}", handlers.serviceHandler.updateService())
		r.Delete("/admin/service/{serviceID}", handlers.serviceHandler.deleteService())

		r.Get("/admin/messages", handlers.contactHandler.listMessages())
		r.Patch("/admin/message/{messageID}/status", handlers.contactHandler.updateStatus())
		r.Patch("/admin/message/{messageID}/replied", handlers.contactHandler.updateReplied())
		r.Delete("/admin/message/{messageID}", handlers.contactHandler.deleteMessage())

		r.Get("/admin/settings", handlers.settingsHandler.listSettings())
		r.Put("/admin/settings", handlers.settingsHandler.saveSettings())
	})
}
