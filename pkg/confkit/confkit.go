// Package confkit is a toolkit for configuration screens: a category
// sidebar, a scrolling list of option rows (toggles, sliders, dropdowns,
// color pickers, text fields) and the Save/Reset/Done chrome around them.
//
// The package draws through the Canvas interface and receives input as
// plain method calls, so it has no windowing dependency of its own. The
// host package drives a Screen from an SDL window.
//
//	screen, err := confkit.NewBuilder(confkit.ScreenOptions{Title: "Settings"}).
//	    Category("Display").
//	    Toggle(confkit.ToggleOptions{Label: "Fullscreen", Binding: confkit.Bind(&cfg.Fullscreen)}).
//	    Slider(confkit.SliderOptions{Label: "Brightness", Min: 0, Max: 100, Step: 5, Default: 80}).
//	    Build()
package confkit

import (
	"log/slog"

	"github.com/BrandonKowalski/confkit/pkg/confkit/internal"
)

// GetLogger returns the application logger shared with the toolkit.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogPath sets the log file path. Call before the first log line.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses "debug", "info", "warn" or "error".
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel controls the toolkit's own diagnostics.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

func CloseLogger() {
	internal.CloseLogger()
}

func logger() *slog.Logger {
	return internal.GetInternalLogger()
}
