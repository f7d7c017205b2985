package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.GetServer() != DefaultServer {
		t.Errorf("server = %q, want default", cfg.GetServer())
	}
	if cfg.GetTheme() != DefaultTheme {
		t.Errorf("theme = %q, want default", cfg.GetTheme())
	}
	if !cfg.GetNotificationsEnabled() {
		t.Error("notifications should default on")
	}
	if cfg.GetDisplayName() != "" {
		t.Errorf("display name = %q, want empty on first run", cfg.GetDisplayName())
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	cfg.SetDisplayName("alice")
	cfg.SetServer("https://chat.internal")
	cfg.SetRoom("dev")
	cfg.SetTheme("nord")
	cfg.SetNotificationsEnabled(false)
	cfg.SetLastSeenVersion("1.2.0")

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.GetDisplayName() != "alice" ||
		got.GetServer() != "https://chat.internal" ||
		got.GetRoom() != "dev" ||
		got.GetTheme() != "nord" ||
		got.GetNotificationsEnabled() ||
		got.GetLastSeenVersion() != "1.2.0" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestLoadFromCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for corrupt config")
	}
}

func TestLoadFromFillsEmptyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"display_name":"bob"}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.GetServer() != DefaultServer || cfg.GetTheme() != DefaultTheme {
		t.Errorf("empty fields not defaulted: server=%q theme=%q", cfg.GetServer(), cfg.GetTheme())
	}
	if cfg.GetDisplayName() != "bob" {
		t.Errorf("display name = %q", cfg.GetDisplayName())
	}
}
