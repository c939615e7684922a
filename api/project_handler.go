package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nsahli/portfolio-backend/errs"
	"github.com/nsahli/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// projectStore is the slice of the project repository the handler needs.
type projectStore interface {
	FindAll() ([]*models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  projectStore
}

func newProjectHandler(projects projectStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
	}
}

// ProjectForm is the editing-form shape of a project. Technologies cross
// this boundary as one comma-delimited string; the stored representation is
// a list.
type ProjectForm struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	DemoURL      string `json:"demo_url"`
	RepoURL      string `json:"repo_url"`
	LinkedinURL  string `json:"linkedin_url"`
	Technologies string `json:"technologies"`
	Category     string `json:"category"`
	Featured     bool   `json:"featured"`
	Status       string `json:"status"`
}

func (f ProjectForm) toModel() models.Project {
	status := f.Status
	if status == "" {
		status = models.ProjectStatusActive
	}
	return models.Project{
		Title:        f.Title,
		Description:  f.Description,
		ImageURL:     f.ImageURL,
		DemoURL:      f.DemoURL,
		RepoURL:      f.RepoURL,
		LinkedinURL:  f.LinkedinURL,
		Technologies: models.SplitTechnologies(f.Technologies),
		Category:     f.Category,
		Featured:     f.Featured,
		Status:       status,
	}
}

func projectFormFromModel(p models.Project) ProjectForm {
	return ProjectForm{
		Title:        p.Title,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		DemoURL:      p.DemoURL,
		RepoURL:      p.RepoURL,
		LinkedinURL:  p.LinkedinURL,
		Technologies: models.JoinTechnologies(p.Technologies),
		Category:     p.Category,
		Featured:     p.Featured,
		Status:       p.Status,
	}
}

// ProjectCollection represents the admin project list
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
}

// ProjectWithForm pairs a stored project with its editing-form rendition
type ProjectWithForm struct {
	Project models.Project `json:"project"`
	Form    ProjectForm    `json:"form"`
}

// listProjects retrieves all projects, regardless of status or featured flag
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// getProject retrieves a single project with its form rendition
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, ProjectWithForm{
			Project: *project,
			Form:    projectFormFromModel(*project),
		})
	}
}

// createProject creates a new project from its form payload
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var form ProjectForm
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&form); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if form.Title == "" {
			h.responder.WriteError(w, errs.NewValidationError("title", "title is required"))
			return
		}

		project := form.toModel()
		if err := h.projects.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		// Reload so the response carries the server-assigned fields
		created, err := h.projects.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, ProjectWithForm{
			Project: *created,
			Form:    projectFormFromModel(*created),
		})
	}
}

// updateProject replaces an existing project with its form payload
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var form ProjectForm
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&form); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if form.Title == "" {
			h.responder.WriteError(w, errs.NewValidationError("title", "title is required"))
			return
		}

		project := form.toModel()
		project.ID = projectID
		project.CreatedAt = existing.CreatedAt

		if err := h.projects.Update(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, ProjectWithForm{
			Project: *updated,
			Form:    projectFormFromModel(*updated),
		})
	}
}

// deleteProject deletes a project. The destructive-action guard requires
// confirm=true; without it the store is not touched.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := requireDeleteConfirmation(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projects.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// parseIDParam extracts and parses a uuid URL parameter.
func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	idStr := chi.URLParam(r, name)
	if idStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + name)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}

// requireDeleteConfirmation enforces the explicit confirmation step on
// destructive operations.
func requireDeleteConfirmation(r *http.Request) error {
	if r.URL.Query().Get("confirm") != "true" {
		return errs.NewBadRequestError("delete requires confirm=true")
	}
	return nil
}
