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

type messageStore interface {
	FindAll() ([]*models.ContactMessage, error)
	FindByID(id uuid.UUID) (*models.ContactMessage, error)
	UpdateStatus(id uuid.UUID, status string) error
	UpdateReplied(id uuid.UUID, replied bool) error
	Delete(id uuid.UUID) error
}

// contactHandler is the admin manager for contact messages. Messages are
// created only by the public pipeline; here they are listed, patched
// field-by-field and deleted.
type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	messages  messageStore
}

func newContactHandler(messages messageStore) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		messages:  messages,
	}
}

// MessageCollection represents the admin message list
type MessageCollection struct {
	Messages []*models.ContactMessage `json:"messages"`
	Total    int                      `json:"total"`
}

// listMessages retrieves all contact messages
func (h contactHandler) listMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messages.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact messages", err))
			return
		}

		h.responder.WriteJSON(w, MessageCollection{
			Messages: messages,
			Total:    len(messages),
		})
	}
}

// updateStatus patches only the status field of a message. Replied is
// deliberately untouched; the two fields are independent.
func (h contactHandler) updateStatus() http.HandlerFunc {
	type statusPatch struct {
		Status string `json:"status"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := parseIDParam(r, "messageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var patch statusPatch
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode status patch")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if !models.ValidMessageStatus(patch.Status) {
			h.responder.WriteError(w, errs.NewValidationError("status", "status must be unread, read or replied"))
			return
		}

		message, err := h.messages.FindByID(messageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact message", err))
			return
		}
		if message == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact message not found"))
			return
		}

		if err := h.messages.UpdateStatus(messageID, patch.Status); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update status of", "contact message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message status updated",
		})
	}
}

// updateReplied patches only the replied flag of a message
func (h contactHandler) updateReplied() http.HandlerFunc {
	type repliedPatch struct {
		Replied bool `json:"replied"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := parseIDParam(r, "messageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var patch repliedPatch
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode replied patch")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		message, err := h.messages.FindByID(messageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact message", err))
			return
		}
		if message == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact message not found"))
			return
		}

		if err := h.messages.UpdateReplied(messageID, patch.Replied); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update replied flag of", "contact message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message replied flag updated",
		})
	}
}

// deleteMessage deletes a contact message behind the confirmation guard
func (h contactHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := parseIDParam(r, "messageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := requireDeleteConfirmation(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message, err := h.messages.FindByID(messageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact message", err))
			return
		}
		if message == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact message not found"))
			return
		}

		if err := h.messages.Delete(messageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "contact message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact message deleted successfully",
		})
	}
}
