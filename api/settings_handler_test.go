package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/nsahli/portfolio-backend/models"
)

type fakeSettingRepo struct {
	settings map[string]*models.SiteSetting
	order    []string
}

func (r *fakeSettingRepo) FindAll() ([]*models.SiteSetting, error) {
	all := make([]*models.SiteSetting, 0, len(r.order))
	for _, key := range r.order {
		all = append(all, r.settings[key])
	}
	return all, nil
}

func (r *fakeSettingRepo) Upsert(setting *models.SiteSetting) error {
	if r.settings == nil {
		r.settings = make(map[string]*models.SiteSetting)
	}
	if _, exists := r.settings[setting.Key]; !exists {
		r.order = append(r.order, setting.Key)
	}
	copied := *setting
	r.settings[setting.Key] = &copied
	return nil
}

func newSettingsTestRouter(repo *fakeSettingRepo) *chi.Mux {
	handler := newSettingsHandler(repo)

	router := chi.NewRouter()
	router.Get("/admin/settings", handler.listSettings())
	router.Put("/admin/settings", handler.saveSettings())
	return router
}

func TestSaveSettingsUpsertsByKey(t *testing.T) {
	repo := &fakeSettingRepo{}
	router := newSettingsTestRouter(repo)

	save := func(payloads []SettingPayload) *httptest.ResponseRecorder {
		body, _ := json.Marshal(payloads)
		req := httptest.NewRequest(http.MethodPut, "/admin/settings", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := save([]SettingPayload{
		{Key: "site_title", Value: models.StringValue("Portfolio"), Description: "Headline"},
		{Key: "show_contact", Value: models.BoolValue(true)},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("first save status = %d: %s", rec.Code, rec.Body.String())
	}
	if len(repo.settings) != 2 {
		t.Fatalf("repo holds %d settings, want 2", len(repo.settings))
	}

	// Resubmitting a key overwrites in place instead of adding a row.
	rec = save([]SettingPayload{
		{Key: "site_title", Value: models.StringValue("New Title")},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("second save status = %d: %s", rec.Code, rec.Body.String())
	}
	if len(repo.settings) != 2 {
		t.Errorf("repo holds %d settings after upsert, want 2", len(repo.settings))
	}

	value, err := repo.settings["site_title"].DecodeValue()
	if err != nil {
		t.Fatalf("decode stored value: %v", err)
	}
	if value.Str != "New Title" {
		t.Errorf("stored title = %q, want New Title", value.Str)
	}

	// The untouched key keeps its value.
	other, err := repo.settings["show_contact"].DecodeValue()
	if err != nil {
		t.Fatalf("decode stored value: %v", err)
	}
	if other.Kind != models.SettingBool || !other.Bool {
		t.Errorf("show_contact = %+v, want bool true", other)
	}
}

func TestSaveSettingsRequiresKey(t *testing.T) {
	router := newSettingsTestRouter(&fakeSettingRepo{})

	body, _ := json.Marshal([]SettingPayload{{Value: models.StringValue("no key")}})
	req := httptest.NewRequest(http.MethodPut, "/admin/settings", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSaveSettingsRejectsEmptyBatch(t *testing.T) {
	router := newSettingsTestRouter(&fakeSettingRepo{})

	req := httptest.NewRequest(http.MethodPut, "/admin/settings", bytes.NewReader([]byte(`[]`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestListSettingsDecodesValues(t *testing.T) {
	repo := &fakeSettingRepo{}
	seed := models.SiteSetting{Key: "accent_color"}
	if err := seed.SetValue(models.StringValue("#ff6600")); err != nil {
		t.Fatalf("seed setting: %v", err)
	}
	if err := repo.Upsert(&seed); err != nil {
		t.Fatalf("seed setting: %v", err)
	}
	// A corrupt value is skipped in the decoded view, not fatal.
	if err := repo.Upsert(&models.SiteSetting{Key: "broken", Value: []byte(`{"nested":true}`)}); err != nil {
		t.Fatalf("seed setting: %v", err)
	}
	router := newSettingsTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var raw struct {
		Settings []json.RawMessage          `json:"settings"`
		Values   map[string]json.RawMessage `json:"values"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(raw.Settings) != 2 {
		t.Errorf("settings list has %d entries, want 2", len(raw.Settings))
	}
	if string(raw.Values["accent_color"]) != `"#ff6600"` {
		t.Errorf("accent_color value = %s, want \"#ff6600\"", raw.Values["accent_color"])
	}
	if _, present := raw.Values["broken"]; present {
		t.Error("undecodable setting leaked into the decoded view")
	}
}
