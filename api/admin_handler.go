package api

import (
	"context"
	"io"
	"net/http"
	"path"

	"github.com/google/uuid"
	"github.com/nsahli/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const maxUploadBytes = 10 << 20 // 10MB

type counter interface {
	Count() (int64, error)
}

// imageUploader stores an uploaded object and returns its public URL.
type imageUploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// adminHandler serves the dashboard chrome: identity, summary statistics
// and project image uploads.
type adminHandler struct {
	responder Responder
	logger    zerolog.Logger
	roles     roleLookup
	projects  counter
	skills    counter
	services  counter
	messages  counter
	images    imageUploader
}

func newAdminHandler(roles roleLookup, projects, skills, services, messages counter, images imageUploader) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder: NewResponder(logger),
		logger:    logger,
		roles:     roles,
		projects:  projects,
		skills:    skills,
		services:  services,
		messages:  messages,
		images:    images,
	}
}

// DashboardStats mirrors the summary cards on the admin dashboard
type DashboardStats struct {
	Projects int64 `json:"projects"`
	Skills   int64 `json:"skills"`
	Services int64 `json:"services"`
	Messages int64 `json:"messages"`
}

// getStats counts each collection for the dashboard summary. Counts are
// independent reads; no transaction spans them.
func (h adminHandler) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := DashboardStats{}
		var err error

		if stats.Projects, err = h.projects.Count(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "projects", err))
			return
		}
		if stats.Skills, err = h.skills.Count(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "skills", err))
			return
		}
		if stats.Services, err = h.services.Count(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "services", err))
			return
		}
		if stats.Messages, err = h.messages.Count(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "contact messages", err))
			return
		}

		h.responder.WriteJSON(w, stats)
	}
}

// getMe returns the caller's identity and role. Reaching this handler
// implies the gate granted access.
func (h adminHandler) getMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		profile, err := h.roles.FindByID(userID)
		if err != nil || profile == nil {
			h.responder.WriteError(w, errs.NewInsufficientRoleError("admin"))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"id":        profile.ID,
			"email":     profile.Email,
			"full_name": profile.FullName,
			"role":      profile.Role,
			"decision":  "granted",
		})
	}
}

// uploadImage accepts a multipart project image and stores it, returning
// the URL to use as image_url.
func (h adminHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.images == nil {
			h.responder.WriteError(w, errs.NewInternalError("image storage is not configured"))
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to parse multipart form"))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			h.responder.WriteError(w, errs.NewValidationError("image", "image file is required"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		key := uploadKey(header.Filename)

		url, err := h.images.Upload(r.Context(), key, contentType, file)
		if err != nil {
			h.logger.Error().Err(err).Str("key", key).Msg("Failed to upload image")
			h.responder.WriteError(w, errs.NewInternalError("failed to store image"))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{
			"status": "success",
			"url":    url,
		})
	}
}

// uploadKey builds the storage key for an uploaded project image.
func uploadKey(filename string) string {
	return "projects/" + uuid.NewString() + path.Ext(filename)
}
