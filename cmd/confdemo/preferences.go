package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/confkit/pkg/confkit"
	"github.com/BrandonKowalski/confkit/pkg/confkit/theme"
	"go.uber.org/atomic"
)

// Preferences is the document the settings screen edits and the store persists.
type Preferences struct {
	Video      VideoPreferences      `toml:"video"`
	Audio      AudioPreferences      `toml:"audio"`
	Appearance AppearancePreferences `toml:"appearance"`
	Network    NetworkPreferences    `toml:"network"`
}

type VideoPreferences struct {
	VSync       bool   `toml:"vsync"`
	Display     string `toml:"display"`
	Scale       int    `toml:"scale"`
	ShowFPS     bool   `toml:"show_fps"`
	FPSPosition string `toml:"fps_position"`
}

type AudioPreferences struct {
	Volume  int     `toml:"volume"`
	Muted   bool    `toml:"muted"`
	Balance float32 `toml:"balance"`
}

type AppearancePreferences struct {
	Accent   theme.Color `toml:"accent"`
	Nickname string      `toml:"nickname"`
}

type NetworkPreferences struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
}

var (
	displayModes = []string{"WINDOWED", "FULL_SCREEN", "BORDERLESS"}
	fpsPositions = []string{"TOP_LEFT", "TOP_RIGHT", "BOTTOM_LEFT", "BOTTOM_RIGHT"}

	accentPresets = []theme.Color{
		0xFF00BCD4, 0xFF6A8CFF, 0xFF6AFF6A, 0xFFFFAA00, 0xFFFF5555,
		0xFFE040FB, 0xFFFFFFFF,
	}
)

func defaultPreferences() Preferences {
	return Preferences{
		Video: VideoPreferences{
			VSync:       true,
			Display:     "WINDOWED",
			Scale:       2,
			FPSPosition: "TOP_RIGHT",
		},
		Audio: AudioPreferences{
			Volume: 80,
		},
		Appearance: AppearancePreferences{
			Accent:   0xFF00BCD4,
			Nickname: "Player",
		},
		Network: NetworkPreferences{
			Host: "localhost",
			Port: "7777",
		},
	}
}

var errPortRange = errors.New("port must be between 1 and 65535")

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port %q is not a number", s)
	}
	if n < 1 || n > 65535 {
		return errPortRange
	}
	return nil
}

func validateHost(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("host is required")
	}
	if strings.ContainsAny(s, " \t/") {
		return fmt.Errorf("host %q contains invalid characters", s)
	}
	return nil
}

// buildSettingsScreen lays out one category per Preferences section, with
// every control bound to a field of prefs.
func buildSettingsScreen(opts confkit.ScreenOptions, prefs *Preferences) (*confkit.Screen, error) {
	showFPS := atomic.NewBool(prefs.Video.ShowFPS)

	fpsPosition := confkit.NewDropdown(confkit.DropdownOptions[string]{
		Label:   "FPS position",
		Values:  fpsPositions,
		Default: "TOP_RIGHT",
		Binding: confkit.Bind(&prefs.Video.FPSPosition),
	})
	fpsPosition.SetVisibleWhen(showFPS)

	b := confkit.NewBuilder(opts)

	video := b.Category("Video").
		Icon(displayIcon).
		Description("Window mode, sync and overlays").
		Toggle(confkit.ToggleOptions{
			Label:       "VSync",
			Description: "Wait for the display before presenting each frame",
			Default:     true,
			Binding:     confkit.Bind(&prefs.Video.VSync),
		})
	confkit.AddDropdown(video, confkit.DropdownOptions[string]{
		Label:           "Display mode",
		Values:          displayModes,
		Default:         "WINDOWED",
		Binding:         confkit.Bind(&prefs.Video.Display),
		RequiresRestart: true,
	})
	video.Slider(confkit.SliderOptions{
		Label:           "Scale",
		Min:             1,
		Max:             4,
		Step:            1,
		Default:         2,
		Suffix:          "x",
		Binding:         confkit.IntBinding(confkit.Bind(&prefs.Video.Scale)),
		RequiresRestart: true,
	}).
		Separator().
		Toggle(confkit.ToggleOptions{
			Label: "Show FPS",
			Binding: confkit.Binding[bool]{
				Get: func() bool { return prefs.Video.ShowFPS },
				Set: func(v bool) {
					prefs.Video.ShowFPS = v
					showFPS.Store(v)
				},
			},
		}).
		Add(fpsPosition)

	b.Category("Audio").
		Icon(speakerIcon).
		Description("Output levels").
		Slider(confkit.SliderOptions{
			Label:   "Volume",
			Min:     0,
			Max:     100,
			Step:    5,
			Default: 80,
			Suffix:  "%",
			Binding: confkit.IntBinding(confkit.Bind(&prefs.Audio.Volume)),
		}).
		Slider(confkit.SliderOptions{
			Label:     "Balance",
			Min:       -1,
			Max:       1,
			Step:      0.1,
			Formatter: formatBalance,
			Binding:   confkit.Float32Binding(confkit.Bind(&prefs.Audio.Balance)),
		}).
		Toggle(confkit.ToggleOptions{
			Label:   "Mute",
			OnText:  "Muted",
			OffText: "Audible",
			Binding: confkit.Bind(&prefs.Audio.Muted),
		})

	b.Category("Appearance").
		Icon(paletteIcon).
		Header("Colors").
		ColorPicker(confkit.ColorPickerOptions{
			Label:       "Accent",
			Description: "Focus borders and highlights",
			Default:     0xFF00BCD4,
			Presets:     accentPresets,
			Binding:     confkit.Bind(&prefs.Appearance.Accent),
		}).
		Header("Profile").
		TextField(confkit.TextFieldOptions{
			Label:       "Nickname",
			Default:     "Player",
			Placeholder: "Your name",
			MaxLength:   16,
			Binding:     confkit.Bind(&prefs.Appearance.Nickname),
		})

	return b.Category("Network").
		Icon(networkIcon).
		Note("Changes apply the next time the demo connects.").
		TextField(confkit.TextFieldOptions{
			Label:     "Host",
			Default:   "localhost",
			Validator: validateHost,
			Binding:   confkit.Bind(&prefs.Network.Host),
		}).
		TextField(confkit.TextFieldOptions{
			Label:           "Port",
			Default:         "7777",
			MaxLength:       5,
			Validator:       validatePort,
			Binding:         confkit.Bind(&prefs.Network.Port),
			RequiresRestart: true,
		}).
		Build()
}

func formatBalance(v float64) string {
	switch {
	case v < -0.05:
		return fmt.Sprintf("L %.0f%%", -v*100)
	case v > 0.05:
		return fmt.Sprintf("R %.0f%%", v*100)
	default:
		return "Center"
	}
}

// buildRestartScreen tells the user that some saved options take effect on
// the next start. It has nothing to save, so only Done is shown.
func buildRestartScreen(opts confkit.ScreenOptions) (*confkit.Screen, error) {
	opts.Title = "Restart Required"
	opts.Store = nil
	opts.HideSaveButton = true
	opts.HideResetButton = true

	return confkit.NewBuilder(opts).
		Category("Restart").
		Icon(displayIcon).
		Header("Settings saved").
		Label("Some of the changes apply after the demo restarts.").
		Note("Press B or Escape to exit.").
		Build()
}
