package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nsahli/portfolio-backend/models"
)

type fakeMessageRepo struct {
	messages []*models.ContactMessage
}

func (r *fakeMessageRepo) FindAll() ([]*models.ContactMessage, error) {
	return r.messages, nil
}

func (r *fakeMessageRepo) FindByID(id uuid.UUID) (*models.ContactMessage, error) {
	for _, message := range r.messages {
		if message.ID == id {
			copied := *message
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeMessageRepo) UpdateStatus(id uuid.UUID, status string) error {
	for _, message := range r.messages {
		if message.ID == id {
			message.Status = status
		}
	}
	return nil
}

func (r *fakeMessageRepo) UpdateReplied(id uuid.UUID, replied bool) error {
	for _, message := range r.messages {
		if message.ID == id {
			message.Replied = replied
		}
	}
	return nil
}

func (r *fakeMessageRepo) Delete(id uuid.UUID) error {
	for i, message := range r.messages {
		if message.ID == id {
			r.messages = append(r.messages[:i], r.messages[i+1:]...)
			return nil
		}
	}
	return nil
}

func newContactTestRouter(repo *fakeMessageRepo) *chi.Mux {
	handler := newContactHandler(repo)

	router := chi.NewRouter()
	router.Get("/admin/messages", handler.listMessages())
	router.Patch("/admin/message/{messageID}/status", handler.updateStatus())
	router.Patch("/admin/message/{messageID}/replied", handler.updateReplied())
	router.Delete("/admin/message/{messageID}", handler.deleteMessage())
	return router
}

func seedMessage() *models.ContactMessage {
	return &models.ContactMessage{
		ID:      uuid.New(),
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Hi there",
		Status:  models.MessageStatusUnread,
	}
}

func TestUpdateStatusLeavesRepliedUntouched(t *testing.T) {
	message := seedMessage()
	message.Replied = true
	repo := &fakeMessageRepo{messages: []*models.ContactMessage{message}}
	router := newContactTestRouter(repo)

	body, _ := json.Marshal(map[string]string{"status": models.MessageStatusRead})
	req := httptest.NewRequest(http.MethodPatch, "/admin/message/"+message.ID.String()+"/status", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if repo.messages[0].Status != models.MessageStatusRead {
		t.Errorf("message status = %q, want %q", repo.messages[0].Status, models.MessageStatusRead)
	}
	if !repo.messages[0].Replied {
		t.Error("replied flag was touched by a status patch")
	}
}

func TestUpdateRepliedLeavesStatusUntouched(t *testing.T) {
	message := seedMessage()
	repo := &fakeMessageRepo{messages: []*models.ContactMessage{message}}
	router := newContactTestRouter(repo)

	body, _ := json.Marshal(map[string]bool{"replied": true})
	req := httptest.NewRequest(http.MethodPatch, "/admin/message/"+message.ID.String()+"/replied", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if !repo.messages[0].Replied {
		t.Error("replied flag was not set")
	}
	if repo.messages[0].Status != models.MessageStatusUnread {
		t.Errorf("message status = %q, want %q untouched", repo.messages[0].Status, models.MessageStatusUnread)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	message := seedMessage()
	repo := &fakeMessageRepo{messages: []*models.ContactMessage{message}}
	router := newContactTestRouter(repo)

	body, _ := json.Marshal(map[string]string{"status": "archived"})
	req := httptest.NewRequest(http.MethodPatch, "/admin/message/"+message.ID.String()+"/status", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if repo.messages[0].Status != models.MessageStatusUnread {
		t.Errorf("message status = %q, want %q untouched", repo.messages[0].Status, models.MessageStatusUnread)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	router := newContactTestRouter(&fakeMessageRepo{})

	body, _ := json.Marshal(map[string]string{"status": models.MessageStatusRead})
	req := httptest.NewRequest(http.MethodPatch, "/admin/message/"+uuid.NewString()+"/status", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestDeleteMessageRequiresConfirmation(t *testing.T) {
	message := seedMessage()
	repo := &fakeMessageRepo{messages: []*models.ContactMessage{message}}
	router := newContactTestRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/admin/message/"+message.ID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unconfirmed delete status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if len(repo.messages) != 1 {
		t.Fatal("unconfirmed delete removed the message")
	}

	req = httptest.NewRequest(http.MethodDelete, "/admin/message/"+message.ID.String()+"?confirm=true", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("confirmed delete status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if len(repo.messages) != 0 {
		t.Errorf("confirmed delete left %d messages", len(repo.messages))
	}
}
