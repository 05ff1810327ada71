package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SHOWDECK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.UI.Motion || !cfg.UI.Mouse || !cfg.UI.Splash {
		t.Fatalf("UI defaults = %+v, want all on", cfg.UI)
	}
	if cfg.Deck.Path != "" || cfg.Log.Path != "" {
		t.Fatalf("paths should default empty, got %+v", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "[ui]\nmotion = false\nsplash = false\n\n[log]\npath = \"/tmp/showdeck.log\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SHOWDECK_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Motion {
		t.Fatalf("motion should be off")
	}
	if cfg.UI.Splash {
		t.Fatalf("splash should be off")
	}
	if !cfg.UI.Mouse {
		t.Fatalf("mouse should keep its default")
	}
	if cfg.Log.Path != "/tmp/showdeck.log" {
		t.Fatalf("log path = %q", cfg.Log.Path)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SHOWDECK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("SHOWDECK_UI_MOTION", "false")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Motion {
		t.Fatalf("env override did not disable motion")
	}
}
