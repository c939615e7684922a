package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/nsahli/portfolio-backend/errs"
	"github.com/nsahli/portfolio-backend/models"
	"github.com/nsahli/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Read-side slices of the repositories, restricted to what the public
// surface may see.
type publishedProjectReader interface {
	FindActive() ([]*models.Project, error)
}

type skillReader interface {
	FindAll() ([]*models.Skill, error)
}

type featuredServiceReader interface {
	FindFeatured() ([]*models.Service, error)
}

// publicHandler serves the visitor-facing surface: published content reads
// and the contact form. Read failures are logged and rendered as empty
// collections; the visitor never sees an error for a read.
type publicHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  publishedProjectReader
	skills    skillReader
	services  featuredServiceReader
	pipeline  *services.ContactPipeline
}

func newPublicHandler(projects publishedProjectReader, skills skillReader, featured featuredServiceReader, pipeline *services.ContactPipeline) publicHandler {
	logger := log.With().Str("handlerName", "publicHandler").Logger()

	return publicHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
		skills:    skills,
		services:  featured,
		pipeline:  pipeline,
	}
}

// PublicProjectCollection is the public projects grid: active projects,
// the derived category list, and the filter that produced the view.
type PublicProjectCollection struct {
	Projects   []*models.Project `json:"projects"`
	Categories []string          `json:"categories"`
	Category   string            `json:"category"`
	Total      int               `json:"total"`
}

// CategoryAll is the synthetic category that selects the full collection.
const CategoryAll = "all"

// projectCategories derives the filter choices from a fetched collection:
// "all" first, then the distinct categories in encounter order.
func projectCategories(projects []*models.Project) []string {
	categories := []string{CategoryAll}
	seen := make(map[string]bool)
	for _, project := range projects {
		if project.Category == "" || seen[project.Category] {
			continue
		}
		seen[project.Category] = true
		categories = append(categories, project.Category)
	}
	return categories
}

// filterProjectsByCategory restricts a collection to an exact category
// match. "all" (or empty) selects everything; a category with no matches
// yields an empty, valid result.
func filterProjectsByCategory(projects []*models.Project, category string) []*models.Project {
	if category == "" || category == CategoryAll {
		return projects
	}
	filtered := make([]*models.Project, 0, len(projects))
	for _, project := range projects {
		if project.Category == category {
			filtered = append(filtered, project)
		}
	}
	return filtered
}

// getProjects serves the active projects, optionally filtered by category
func (h publicHandler) getProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindActive()
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to fetch public projects, rendering empty collection")
			projects = nil
		}

		category := r.URL.Query().Get("category")
		if category == "" {
			category = CategoryAll
		}

		filtered := filterProjectsByCategory(projects, category)
		h.responder.WriteJSON(w, PublicProjectCollection{
			Projects:   filtered,
			Categories: projectCategories(projects),
			Category:   category,
			Total:      len(filtered),
		})
	}
}

// PublicSkillCollection is the public skills section, grouped by category
type PublicSkillCollection struct {
	Skills  []*models.Skill            `json:"skills"`
	Grouped map[string][]*models.Skill `json:"grouped"`
	Total   int                        `json:"total"`
}

// getSkills serves the skills section, ordered and grouped by category
func (h publicHandler) getSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skills.FindAll()
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to fetch public skills, rendering empty collection")
			skills = nil
		}

		h.responder.WriteJSON(w, PublicSkillCollection{
			Skills:  skills,
			Grouped: models.GroupSkillsByCategory(skills),
			Total:   len(skills),
		})
	}
}

// PublicServiceCollection is the public services section
type PublicServiceCollection struct {
	Services []*models.Service `json:"services"`
	Total    int               `json:"total"`
}

// getServices serves the featured services with icons normalized to the
// client icon set
func (h publicHandler) getServices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		featured, err := h.services.FindFeatured()
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to fetch public services, rendering empty collection")
			featured = nil
		}

		for _, service := range featured {
			service.Icon = models.NormalizeIcon(service.Icon)
		}

		h.responder.WriteJSON(w, PublicServiceCollection{
			Services: featured,
			Total:    len(featured),
		})
	}
}

// submitContact runs the contact pipeline and reports its outcome. A stored
// message with failed notification is distinct from total failure.
func (h publicHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var submission services.ContactSubmission
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&submission); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode contact submission")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		outcome, message, err := h.pipeline.Submit(r.Context(), submission)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		response := map[string]interface{}{
			"status":  "success",
			"outcome": string(outcome),
			"id":      message.ID,
		}
		if outcome == services.OutcomeStored {
			response["message"] = "Your message has been saved but email notification failed."
		} else {
			response["message"] = "Message sent successfully."
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, response)
	}
}
