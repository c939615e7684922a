package config

import "testing"

func TestGetString(t *testing.T) {
	cfg := map[string]string{"PORT": "8080", "EMPTY": ""}

	if got := GetString(cfg, "PORT", "3000"); got != "8080" {
		t.Errorf("GetString(PORT) = %q, want 8080", got)
	}
	if got := GetString(cfg, "MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetString(MISSING) = %q, want fallback", got)
	}
	if got := GetString(cfg, "EMPTY", "fallback"); got != "" {
		t.Errorf("GetString(EMPTY) = %q, want empty (present keys win)", got)
	}
	if got := GetString(nil, "PORT", "fallback"); got != "fallback" {
		t.Errorf("GetString(nil map) = %q, want fallback", got)
	}
}

func TestGetInt(t *testing.T) {
	cfg := map[string]string{"PORT": "8080", "BAD": "not-a-number"}

	if got := GetInt(cfg, "PORT", 3000); got != 8080 {
		t.Errorf("GetInt(PORT) = %d, want 8080", got)
	}
	if got := GetInt(cfg, "MISSING", 3000); got != 3000 {
		t.Errorf("GetInt(MISSING) = %d, want 3000", got)
	}
	if got := GetInt(cfg, "BAD", 3000); got != 3000 {
		t.Errorf("GetInt(BAD) = %d, want 3000", got)
	}
}

func TestGetBool(t *testing.T) {
	cfg := map[string]string{"ON": "true", "OFF": "0", "BAD": "maybe"}

	if got := GetBool(cfg, "ON", false); !got {
		t.Error("GetBool(ON) = false, want true")
	}
	if got := GetBool(cfg, "OFF", true); got {
		t.Error("GetBool(OFF) = true, want false")
	}
	if got := GetBool(cfg, "BAD", true); !got {
		t.Error("GetBool(BAD) = false, want the default")
	}
	if got := GetBool(cfg, "MISSING", true); !got {
		t.Error("GetBool(MISSING) = false, want the default")
	}
}
