// Package host runs confkit screens in an SDL2 window. It owns the window,
// renderer and font, translates mouse, keyboard, text and gamepad events
// into Screen input, and draws each frame through an SDL-backed Canvas.
//
// Call New once, build screens with Configure so they pick up the host's
// font metrics and clipboard, then Run each screen until it closes.
package host

import (
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/confkit/pkg/confkit"
	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
	"github.com/BrandonKowalski/confkit/pkg/confkit/internal"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const defaultFontSize = 16

// Options configures the host window.
type Options struct {
	Title             string
	Width             int32 // 0 uses the display size
	Height            int32
	Window            WindowOptions
	FontPath          string        // TTF file; default $CONFKIT_FONT
	FontSize          int           // Point size; default 16
	BackgroundImage   string        // Drawn behind the screen; optional
	PowerButtonDevice string        // evdev node, e.g. /dev/input/event1; empty disables
	InputDelay        time.Duration // Minimum time between gamepad presses; default 20ms
	TextureCacheSize  int           // Rendered text and icon textures kept; default 256
}

// Host is an initialized SDL window that runs screens.
type Host struct {
	win    *window
	font   *ttf.Font
	canvas *canvas
	input  *inputProcessor
	power  *powerButton
}

func logger() *slog.Logger {
	return internal.GetInternalLogger()
}

// New initializes SDL, opens the window and loads the font.
func New(opts Options) (*Host, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return nil, confkit.NewInfrastructureError("sdl_init", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, confkit.NewInfrastructureError("ttf_init", err)
	}
	img.Init(img.INIT_PNG | img.INIT_JPG)

	if opts.Window.isZero() {
		opts.Window = WindowOptions{Resizable: true, Borderless: !constants.IsDevMode()}
	}
	if opts.FontSize <= 0 {
		opts.FontSize = defaultFontSize
	}
	if opts.FontPath == "" {
		opts.FontPath = os.Getenv(constants.FontPathEnvVar)
	}
	if opts.InputDelay <= 0 {
		opts.InputDelay = constants.DefaultInputDelay
	}

	h := &Host{}
	var err error
	if h.win, err = newWindow(opts); err != nil {
		h.quit()
		return nil, err
	}

	if opts.FontPath == "" {
		h.Close()
		return nil, confkit.NewInfrastructureError("load_font", errNoFont)
	}
	if h.font, err = ttf.OpenFont(opts.FontPath, opts.FontSize); err != nil {
		h.Close()
		return nil, confkit.NewInfrastructureError("load_font", err)
	}

	h.canvas = newCanvas(h.win.renderer, h.font, opts.TextureCacheSize)
	h.input = newInputProcessor(opts.InputDelay, h.win.size)

	if opts.PowerButtonDevice != "" && !constants.IsDevMode() {
		if h.power, err = watchPowerButton(opts.PowerButtonDevice); err != nil {
			logger().Warn("power button unavailable", "device", opts.PowerButtonDevice, "error", err)
		}
	}

	return h, nil
}

// Size returns the drawable size in pixels.
func (h *Host) Size() (int32, int32) {
	return h.win.size()
}

// Metrics measures text in the host font.
func (h *Host) Metrics() confkit.TextMetrics {
	return h.canvas
}

// Clipboard is the system clipboard.
func (h *Host) Clipboard() confkit.Clipboard {
	return clipboard{}
}

// Configure fills the screen size, text metrics and clipboard of opts from the host.
func (h *Host) Configure(opts confkit.ScreenOptions) confkit.ScreenOptions {
	opts.Width, opts.Height = h.Size()
	opts.Metrics = h.Metrics()
	opts.Clipboard = h.Clipboard()
	return opts
}

// Run drives screen until it closes and returns its result. A power button
// press or a window close requests close the same way Escape does.
func (h *Host) Run(screen *confkit.Screen) (confkit.ScreenResult, error) {
	screen.Resize(h.Size())

	sdl.StartTextInput()
	defer sdl.StopTextInput()

	last := time.Now()
	for !screen.Closed() {
		now := time.Now()
		for event := sdl.WaitEventTimeout(frameMS); event != nil; event = sdl.PollEvent() {
			h.input.dispatch(screen, event, now)
		}
		if h.power.take() {
			logger().Debug("power button pressed")
			screen.RequestClose()
		}
		h.input.repeatHeld(screen, now)

		now = time.Now()
		dt := now.Sub(last)
		last = now

		h.win.clear()
		h.canvas.reset()
		screen.Render(h.canvas, h.input.pointer, dt)
		h.win.present()
	}

	return screen.Result(), nil
}

// Close releases everything New acquired.
func (h *Host) Close() {
	h.power.close()
	if h.input != nil {
		h.input.close()
	}
	if h.canvas != nil {
		h.canvas.destroy()
	}
	if h.font != nil {
		h.font.Close()
	}
	if h.win != nil {
		h.win.destroy()
	}
	h.quit()
}

func (h *Host) quit() {
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}
