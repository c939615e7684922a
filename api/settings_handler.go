package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/nsahli/portfolio-backend/errs"
	"github.com/nsahli/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type settingStore interface {
	FindAll() ([]*models.SiteSetting, error)
	Upsert(setting *models.SiteSetting) error
}

type settingsHandler struct {
	responder Responder
	logger    zerolog.Logger
	settings  settingStore
}

func newSettingsHandler(settings settingStore) settingsHandler {
	logger := log.With().Str("handlerName", "settingsHandler").Logger()

	return settingsHandler{
		responder: NewResponder(logger),
		logger:    logger,
		settings:  settings,
	}
}

// SettingPayload carries one keyed setting across the API boundary. Value
// rides as the bare JSON value; the tagged union infers its shape.
type SettingPayload struct {
	Key         string              `json:"key"`
	Value       models.SettingValue `json:"value"`
	Description string              `json:"description,omitempty"`
}

// SettingCollection represents the settings list plus a decoded key→value view
type SettingCollection struct {
	Settings []*models.SiteSetting          `json:"settings"`
	Values   map[string]models.SettingValue `json:"values"`
}

// listSettings retrieves every site setting
func (h settingsHandler) listSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.settings.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "site settings", err))
			return
		}

		values := make(map[string]models.SettingValue, len(settings))
		for _, setting := range settings {
			value, err := setting.DecodeValue()
			if err != nil {
				h.logger.Warn().Err(err).Str("key", setting.Key).Msg("Skipping setting with undecodable value")
				continue
			}
			values[setting.Key] = value
		}

		h.responder.WriteJSON(w, SettingCollection{
			Settings: settings,
			Values:   values,
		})
	}
}

// saveSettings upserts each submitted setting by key. Keys not submitted are
// left untouched.
func (h settingsHandler) saveSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var payloads []SettingPayload
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&payloads); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode settings payload")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if len(payloads) == 0 {
			h.responder.WriteError(w, errs.NewValidationError("settings", "at least one setting is required"))
			return
		}

		for _, payload := range payloads {
			if payload.Key == "" {
				h.responder.WriteError(w, errs.NewValidationError("key", "setting key is required"))
				return
			}

			setting := models.SiteSetting{
				Key:         payload.Key,
				Description: payload.Description,
			}
			if err := setting.SetValue(payload.Value); err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("unsupported value for setting "+payload.Key))
				return
			}

			if err := h.settings.Upsert(&setting); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("upsert", "site setting", err))
				return
			}
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "settings saved successfully",
		})
	}
}
