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

type skillStore interface {
	FindAll() ([]*models.Skill, error)
	FindByID(id uuid.UUID) (*models.Skill, error)
	Add(skill *models.Skill) error
	Update(skill *models.Skill) error
	Delete(id uuid.UUID) error
}

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skills    skillStore
}

func newSkillHandler(skills skillStore) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skills:    skills,
	}
}

// SkillForm is the editing-form shape of a skill. Proficiency is clamped to
// [0,100] here, not by the store.
type SkillForm struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
	Category    string `json:"category"`
}

func (f SkillForm) toModel() models.Skill {
	return models.Skill{
		Name:        f.Name,
		Proficiency: models.ClampProficiency(f.Proficiency),
		Category:    f.Category,
	}
}

// SkillCollection represents the admin skill list, with the by-category
// grouping the dashboard renders
type SkillCollection struct {
	Skills  []*models.Skill            `json:"skills"`
	Grouped map[string][]*models.Skill `json:"grouped"`
	Total   int                        `json:"total"`
}

// listSkills retrieves all skills grouped by category
func (h skillHandler) listSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skills.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}

		h.responder.WriteJSON(w, SkillCollection{
			Skills:  skills,
			Grouped: models.GroupSkillsByCategory(skills),
			Total:   len(skills),
		})
	}
}

// createSkill creates a new skill from its form payload
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := h.decodeForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill := form.toModel()
		if err := h.skills.Add(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill", err))
			return
		}

		created, err := h.skills.FindByID(skill.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "skill", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateSkill replaces an existing skill with its form payload
func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.skills.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
			return
		}

		form, err := h.decodeForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill := form.toModel()
		skill.ID = skillID
		skill.CreatedAt = existing.CreatedAt

		if err := h.skills.Update(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill", err))
			return
		}

		h.responder.WriteJSON(w, skill)
	}
}

// deleteSkill deletes a skill behind the confirmation guard
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseIDParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := requireDeleteConfirmation(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.skills.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("skill not found"))
			return
		}

		if err := h.skills.Delete(skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "skill deleted successfully",
		})
	}
}

func (h skillHandler) decodeForm(r *http.Request) (SkillForm, error) {
	var form SkillForm

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read request body")
		return form, errs.NewBadRequestError("failed to read request body")
	}

	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&form); err != nil {
		h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode skill request body")
		return form, errs.NewBadRequestError("malformed request body")
	}

	if form.Name == "" {
		return form, errs.NewValidationError("name", "name is required")
	}

	return form, nil
}
