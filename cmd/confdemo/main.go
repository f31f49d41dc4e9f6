// Command confdemo opens a settings screen over a TOML preferences file.
package main

import (
	"fmt"
	"os"

	"github.com/BrandonKowalski/confkit/pkg/confkit"
	"github.com/BrandonKowalski/confkit/pkg/confkit/config"
	"github.com/BrandonKowalski/confkit/pkg/confkit/host"
	"github.com/BrandonKowalski/confkit/pkg/confkit/locale"
	"github.com/BrandonKowalski/confkit/pkg/confkit/router"
	"github.com/BrandonKowalski/confkit/pkg/confkit/theme"
)

const (
	screenSettings router.Screen = iota
	screenRestart
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "confdemo:", err)
		confkit.CloseLogger()
		os.Exit(1)
	}
	confkit.CloseLogger()
}

func run(args []string) error {
	settings, err := loadSettings(args)
	if err != nil {
		return err
	}

	if settings.Log.Path != "" {
		confkit.SetLogPath(settings.Log.Path)
	}
	confkit.SetRawLogLevel(settings.Log.Level)
	logger := confkit.GetLogger()

	tr, err := locale.New(settings.Locale.Language)
	if err != nil {
		return err
	}
	if settings.Locale.File != "" {
		if err := tr.LoadFile(settings.Locale.File); err != nil {
			return err
		}
	}

	base, err := resolveTheme(settings)
	if err != nil {
		return err
	}

	store := config.NewFile(settings.Store.Path, defaultPreferences)
	if err := store.Load(); err != nil {
		logger.Warn("preferences unreadable, using defaults", "path", store.Path(), "error", err)
	}

	h, err := host.New(host.Options{
		Title:             "confdemo",
		Width:             settings.Window.Width,
		Height:            settings.Window.Height,
		Window:            host.WindowOptions{Resizable: true, Fullscreen: settings.Window.Fullscreen},
		FontPath:          settings.Font.Path,
		FontSize:          settings.Font.Size,
		PowerButtonDevice: settings.PowerButton,
	})
	if err != nil {
		return err
	}
	defer h.Close()

	screenOptions := func() confkit.ScreenOptions {
		th := base
		if accent := store.Value().Appearance.Accent; accent != 0 {
			th.AccentPrimary = accent
		}
		return h.Configure(confkit.ScreenOptions{
			Theme:      &th,
			Translator: tr,
			Store:      store,
		})
	}

	r := router.New().
		Register(screenSettings, func(any) (any, error) {
			screen, err := buildSettingsScreen(screenOptions(), store.Value())
			if err != nil {
				return nil, err
			}
			result, err := h.Run(screen)
			if err != nil {
				return nil, err
			}
			if result.Action == confkit.ScreenActionDiscarded {
				if err := store.Load(); err != nil {
					logger.Warn("reloading preferences failed", "error", err)
				}
			}
			logger.Info("settings closed",
				"action", result.Action.String(),
				"saved", result.Saved,
				"restart_required", result.RestartRequired)
			return result, nil
		}).
		Name(screenSettings, "settings").
		Register(screenRestart, func(any) (any, error) {
			screen, err := buildRestartScreen(screenOptions())
			if err != nil {
				return nil, err
			}
			return h.Run(screen)
		}).
		Name(screenRestart, "restart").
		OnTransition(nextScreen)

	return r.Run(screenSettings, nil)
}

// nextScreen shows the restart notice after a save that needs one and exits otherwise.
func nextScreen(from router.Screen, result any, _ *router.Stack) (router.Screen, any) {
	if from != screenSettings {
		return router.ScreenExit, nil
	}
	res, ok := result.(confkit.ScreenResult)
	if ok && res.Saved && res.RestartRequired {
		return screenRestart, nil
	}
	return router.ScreenExit, nil
}

func resolveTheme(s Settings) (theme.Theme, error) {
	style, err := theme.ParseStyle(s.Theme.Style)
	if err != nil {
		return theme.Theme{}, err
	}
	if s.Theme.File != "" {
		custom, err := theme.LoadFile(s.Theme.File)
		if err != nil {
			return theme.Theme{}, err
		}
		theme.SetCustom(custom)
		style = theme.StyleCustom
	}
	confkit.GetLogger().Debug("theme selected", "style", style.String())
	return theme.Get(style), nil
}
