package config_test

import (
	"testing"

	"github.com/km-arc/go-container/framework/config"
)

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load("testdata/missing.env")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"App.Name", cfg.App.Name, "GoContainer"},
		{"App.Env", cfg.App.Env, "local"},
		{"App.Port", cfg.App.Port, "8000"},
		{"Log.Level", cfg.Log.Level, "info"},
		{"Log.Handler", cfg.Log.Handler, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if !cfg.App.Debug {
		t.Error("App.Debug should default to true")
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("APP_NAME", "MyApp")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_HANDLER", "json")

	cfg := config.Load("testdata/missing.env")

	if cfg.App.Name != "MyApp" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "MyApp")
	}
	if cfg.App.Env != "production" {
		t.Errorf("App.Env: got %q want %q", cfg.App.Env, "production")
	}
	if cfg.App.Port != "9000" {
		t.Errorf("App.Port: got %q want %q", cfg.App.Port, "9000")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level: got %q want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Handler != "json" {
		t.Errorf("Log.Handler: got %q want %q", cfg.Log.Handler, "json")
	}
}

// ── Raw getters ──────────────────────────────────────────────────────────────

func TestGet_FallsBackToDefault(t *testing.T) {
	if got := config.Get("NOPE_NOT_SET", "fallback"); got != "fallback" {
		t.Errorf("Get: got %q want fallback", got)
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("WORKERS", "4")

	if got := config.GetInt("WORKERS", 1); got != 4 {
		t.Errorf("GetInt: got %d want 4", got)
	}
	if got := config.GetInt("MISSING", 7); got != 7 {
		t.Errorf("GetInt missing: got %d want 7", got)
	}

	t.Setenv("WORKERS", "not-a-number")
	if got := config.GetInt("WORKERS", 2); got != 2 {
		t.Errorf("GetInt malformed: got %d want 2", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("FEATURE", "true")
	if !config.GetBool("FEATURE", false) {
		t.Error("GetBool: expected true")
	}

	t.Setenv("FEATURE", "garbage")
	if !config.GetBool("FEATURE", true) {
		t.Error("GetBool malformed: expected fallback true")
	}
}
