package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/nsahli/portfolio-backend/errs"
	"github.com/nsahli/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type serviceStore interface {
	FindAll() ([]*models.Service, error)
	FindByID(id uuid.UUID) (*models.Service, error)
	Add(service *models.Service) error
	Update(service *models.Service) error
	Delete(id uuid.UUID) error
}

type serviceHandler struct {
	responder Responder
	logger    zerolog.Logger
	services  serviceStore
}

func newServiceHandler(services serviceStore) serviceHandler {
	logger := log.With().Str("handlerName", "serviceHandler").Logger()

	return serviceHandler{
		responder: NewResponder(logger),
		logger:    logger,
		services:  services,
	}
}

// ServiceForm is the editing-form shape of a service
type ServiceForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Featured    bool   `json:"featured"`
}

func (f ServiceForm) toModel() models.Service {
	return models.Service{
		Title:       f.Title,
		Description: f.Description,
		Icon:        f.Icon,
		Featured:    f.Featured,
	}
}

// ServiceCollection represents the admin service list
type ServiceCollection struct {
	Services []*models.Service `json:"services"`
	Total    int               `json:"total"`
}

// listServices retrieves all services, featured or not
func (h serviceHandler) listServices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := h.services.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "services", err))
			return
		}

		h.responder.WriteJSON(w, ServiceCollection{
			Services: services,
			Total:    len(services),
		})
	}
}

// createService creates a new service from its form payload
func (h serviceHandler) createService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := h.decodeForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		service := form.toModel()
		if err := h.services.Add(&service); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "service", err))
			return
		}

		created, err := h.services.FindByID(service.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "service", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateService replaces an existing service with its form payload
func (h serviceHandler) updateService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID, err := parseIDParam(r, "serviceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.services.FindByID(serviceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "service", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("service not found"))
			return
		}

		form, err := h.decodeForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		service := form.toModel()
		service.ID = serviceID
		service.CreatedAt = existing.CreatedAt

		if err := h.services.Update(&service); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "service", err))
			return
		}

		h.responder.WriteJSON(w, service)
	}
}

// deleteService deletes a service behind the confirmation guard
func (h serviceHandler) deleteService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID, err := parseIDParam(r, "serviceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := requireDeleteConfirmation(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.services.FindByID(serviceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "service", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("service not found"))
			return
		}

		if err := h.services.Delete(serviceID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "service", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "service deleted successfully",
		})
	}
}

func (h serviceHandler) decodeForm(r *http.Request) (ServiceForm, error) {
	var form ServiceForm

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read request body")
		return form, errs.NewBadRequestError("failed to read request body")
	}

	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&form); err != nil {
		h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode service request body")
		return form, errs.NewBadRequestError("malformed request body")
	}

	if form.Title == "" {
		return form, errs.NewValidationError("title", "title is required")
	}

	return form, nil
}
