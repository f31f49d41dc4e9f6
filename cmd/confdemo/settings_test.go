package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CONFDEMO_CONFIG", "")

	s, err := loadSettings(nil)
	if err != nil {
		t.Fatalf("loadSettings error = %v", err)
	}
	if s.Window.Width != 854 || s.Window.Height != 480 {
		t.Errorf("window = %dx%d, want 854x480", s.Window.Width, s.Window.Height)
	}
	if s.Theme.Style != "modern" || s.Locale.Language != "en" || s.Log.Level != "info" {
		t.Errorf("settings = %+v", s)
	}
	if want := filepath.Join(home, ".config", "confdemo", "preferences.toml"); s.Store.Path != want {
		t.Errorf("Store.Path = %q, want %q", s.Store.Path, want)
	}
}

func TestLoadSettingsLayers(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "demo.toml")
	data := `
power_button = "/dev/input/event1"

[window]
width = 640
height = 480

[theme]
style = "faithful"

[log]
level = "warn"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFDEMO_LOG_LEVEL", "debug")

	s, err := loadSettings([]string{"--config", path, "--lang", "de"})
	if err != nil {
		t.Fatalf("loadSettings error = %v", err)
	}
	if s.Window.Width != 640 {
		t.Errorf("Window.Width = %d, want 640 from file", s.Window.Width)
	}
	if s.Theme.Style != "faithful" {
		t.Errorf("Theme.Style = %q, want faithful from file", s.Theme.Style)
	}
	if s.PowerButton != "/dev/input/event1" {
		t.Errorf("PowerButton = %q", s.PowerButton)
	}
	if s.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug from environment", s.Log.Level)
	}
	if s.Locale.Language != "de" {
		t.Errorf("Locale.Language = %q, want de from flag", s.Locale.Language)
	}
}

func TestLoadSettingsMissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := loadSettings([]string{"--config", filepath.Join(t.TempDir(), "absent.toml")}); err == nil {
		t.Error("an explicit config path that does not exist should fail")
	}
}

func TestResolveTheme(t *testing.T) {
	var s Settings
	s.Theme.Style = "faithful"

	th, err := resolveTheme(s)
	if err != nil {
		t.Fatalf("resolveTheme error = %v", err)
	}
	if !th.Vanilla {
		t.Error("faithful style should resolve to the vanilla palette")
	}

	s.Theme.Style = "neon"
	if _, err := resolveTheme(s); err == nil {
		t.Error("unknown style should fail")
	}

	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(`accent_primary = "#FF123456"`), 0644); err != nil {
		t.Fatal(err)
	}
	s.Theme.Style = "modern"
	s.Theme.File = path
	th, err = resolveTheme(s)
	if err != nil {
		t.Fatalf("resolveTheme error = %v", err)
	}
	if th.AccentPrimary != 0xFF123456 {
		t.Errorf("AccentPrimary = %s, want the file's color", th.AccentPrimary)
	}
}
