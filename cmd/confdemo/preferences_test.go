package main

import (
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/confkit/pkg/confkit"
	"github.com/BrandonKowalski/confkit/pkg/confkit/config"
	"github.com/BrandonKowalski/confkit/pkg/confkit/router"
)

func newPreferencesScreen(t *testing.T) (*confkit.Screen, *config.File[Preferences]) {
	t.Helper()

	store := config.NewFile(filepath.Join(t.TempDir(), "preferences.toml"), defaultPreferences)
	screen, err := buildSettingsScreen(confkit.ScreenOptions{Store: store}, store.Value())
	if err != nil {
		t.Fatalf("buildSettingsScreen error = %v", err)
	}
	return screen, store
}

func TestSettingsScreenCategories(t *testing.T) {
	screen, _ := newPreferencesScreen(t)

	var names []string
	for _, c := range screen.Categories() {
		names = append(names, c.Name)
	}
	want := []string{"Video", "Audio", "Appearance", "Network"}
	if len(names) != len(want) {
		t.Fatalf("categories = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("category %d = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestFPSPositionFollowsToggle(t *testing.T) {
	screen, store := newPreferencesScreen(t)
	video := screen.Categories()[0].Options

	show := video[4].(*confkit.Toggle)
	position := video[5]
	if position.Visible() {
		t.Fatal("FPS position should start hidden")
	}

	show.SetValue(true)
	if !position.Visible() || !store.Value().Video.ShowFPS {
		t.Error("enabling Show FPS should reveal the position dropdown")
	}

	screen.Reset()
	if position.Visible() {
		t.Error("reset should hide the position dropdown again")
	}
}

func TestSavePersistsPreferences(t *testing.T) {
	screen, store := newPreferencesScreen(t)
	video := screen.Categories()[0].Options

	video[0].(*confkit.Toggle).SetValue(false)
	video[1].(*confkit.Dropdown[string]).SetValue("FULL_SCREEN")

	if err := screen.Save(); err != nil {
		t.Fatalf("Save error = %v", err)
	}
	if res := screen.Result(); !res.Saved || !res.RestartRequired {
		t.Errorf("result = %+v, want saved with restart", res)
	}

	reloaded := config.NewFile(store.Path(), defaultPreferences)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load error = %v", err)
	}
	got := reloaded.Value().Video
	if got.VSync || got.Display != "FULL_SCREEN" || got.Scale != 2 {
		t.Errorf("reloaded video = %+v", got)
	}
	if reloaded.Value().Appearance.Accent != 0xFF00BCD4 {
		t.Errorf("accent = %s", reloaded.Value().Appearance.Accent)
	}
}

func TestValidators(t *testing.T) {
	tests := []struct {
		port string
		ok   bool
	}{
		{"7777", true},
		{"1", true},
		{"65535", true},
		{"0", false},
		{"65536", false},
		{"http", false},
	}
	for _, tt := range tests {
		if err := validatePort(tt.port); (err == nil) != tt.ok {
			t.Errorf("validatePort(%q) = %v", tt.port, err)
		}
	}

	if validateHost("") == nil || validateHost("a b") == nil {
		t.Error("empty hosts and hosts with spaces should be rejected")
	}
	if err := validateHost("example.org"); err != nil {
		t.Errorf("validateHost(example.org) = %v", err)
	}
}

func TestFormatBalance(t *testing.T) {
	tests := map[float64]string{
		-1:   "L 100%",
		0:    "Center",
		0.02: "Center",
		0.5:  "R 50%",
	}
	for in, want := range tests {
		if got := formatBalance(in); got != want {
			t.Errorf("formatBalance(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestNextScreen(t *testing.T) {
	tests := []struct {
		name   string
		from   router.Screen
		result any
		want   router.Screen
	}{
		{"restart after save", screenSettings, confkit.ScreenResult{Saved: true, RestartRequired: true}, screenRestart},
		{"plain save exits", screenSettings, confkit.ScreenResult{Saved: true}, router.ScreenExit},
		{"discard exits", screenSettings, confkit.ScreenResult{Action: confkit.ScreenActionDiscarded}, router.ScreenExit},
		{"notice exits", screenRestart, confkit.ScreenResult{}, router.ScreenExit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := nextScreen(tt.from, tt.result, nil); got != tt.want {
				t.Errorf("nextScreen = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRestartScreenHidesSaveAndReset(t *testing.T) {
	screen, err := buildRestartScreen(confkit.ScreenOptions{})
	if err != nil {
		t.Fatalf("buildRestartScreen error = %v", err)
	}
	if screen.Title() != "Restart Required" {
		t.Errorf("Title = %q", screen.Title())
	}
	if n := len(screen.Buttons()); n != 1 {
		t.Errorf("buttons = %d, want only Done", n)
	}
}
