package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/nsahli/portfolio-backend/models"
)

type fixedCounter struct {
	n   int64
	err error
}

func (c fixedCounter) Count() (int64, error) {
	return c.n, c.err
}

type fakeImageStore struct {
	err     error
	lastKey string
}

func (s *fakeImageStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.lastKey = key
	return "https://cdn.example.com/" + key, nil
}

func TestGetStats(t *testing.T) {
	handler := newAdminHandler(
		fakeRoleLookup{},
		fixedCounter{n: 7},
		fixedCounter{n: 12},
		fixedCounter{n: 4},
		fixedCounter{n: 3},
		nil,
	)

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	rec := httptest.NewRecorder()
	handler.getStats()(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var stats DashboardStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := DashboardStats{Projects: 7, Skills: 12, Services: 4, Messages: 3}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
}

func TestGetStatsCountFailure(t *testing.T) {
	handler := newAdminHandler(
		fakeRoleLookup{},
		fixedCounter{err: errors.New("connection refused")},
		fixedCounter{},
		fixedCounter{},
		fixedCounter{},
		nil,
	)

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	rec := httptest.NewRecorder()
	handler.getStats()(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestGetMe(t *testing.T) {
	adminID := uuid.New()
	handler := newAdminHandler(
		fakeRoleLookup{profiles: map[uuid.UUID]*models.Profile{
			adminID: {ID: adminID, Email: "admin@example.com", Role: models.RoleAdmin},
		}},
		fixedCounter{}, fixedCounter{}, fixedCounter{}, fixedCounter{},
		nil,
	)

	req := httptest.NewRequest(http.MethodGet, "/admin/me", nil)
	req = req.WithContext(ctxWithIdentity(req.Context(), adminID, "admin@example.com"))
	rec := httptest.NewRecorder()
	handler.getMe()(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var me map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if me["role"] != models.RoleAdmin {
		t.Errorf("role = %v, want %q", me["role"], models.RoleAdmin)
	}
	if me["decision"] != "granted" {
		t.Errorf("decision = %v, want granted", me["decision"])
	}
}

func multipartImageRequest(t *testing.T, fieldName, filename string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := io.Copy(part, strings.NewReader("fake image bytes")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/admin/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadImage(t *testing.T) {
	store := &fakeImageStore{}
	handler := newAdminHandler(
		fakeRoleLookup{},
		fixedCounter{}, fixedCounter{}, fixedCounter{}, fixedCounter{},
		store,
	)

	req := multipartImageRequest(t, "image", "screenshot.png")
	rec := httptest.NewRecorder()
	handler.uploadImage()(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.HasPrefix(store.lastKey, "projects/") || !strings.HasSuffix(store.lastKey, ".png") {
		t.Errorf("upload key = %q, want projects/<uuid>.png", store.lastKey)
	}

	var response map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response["url"] != "https://cdn.example.com/"+store.lastKey {
		t.Errorf("url = %q, want the stored object's URL", response["url"])
	}
}

func TestUploadImageWithoutStore(t *testing.T) {
	handler := newAdminHandler(
		fakeRoleLookup{},
		fixedCounter{}, fixedCounter{}, fixedCounter{}, fixedCounter{},
		nil,
	)

	req := multipartImageRequest(t, "image", "screenshot.png")
	rec := httptest.NewRecorder()
	handler.uploadImage()(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestUploadImageMissingField(t *testing.T) {
	handler := newAdminHandler(
		fakeRoleLookup{},
		fixedCounter{}, fixedCounter{}, fixedCounter{}, fixedCounter{},
		&fakeImageStore{},
	)

	req := multipartImageRequest(t, "attachment", "screenshot.png")
	rec := httptest.NewRecorder()
	handler.uploadImage()(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
