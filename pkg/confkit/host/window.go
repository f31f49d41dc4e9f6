package host

import (
	"os"
	"strconv"

	"github.com/BrandonKowalski/confkit/pkg/confkit"
	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	devWidth  int32 = 1024
	devHeight int32 = 768
	frameMS         = 16
)

// window owns the SDL window and renderer.
type window struct {
	sdlWindow  *sdl.Window
	renderer   *sdl.Renderer
	background *sdl.Texture

	hasVSync        bool
	lastPresentTime uint64
}

// windowSize resolves the initial size: explicit options, then the display
// mode. Dev mode runs in a fixed window sized by WINDOW_WIDTH and WINDOW_HEIGHT.
func windowSize(w, h int32) (int32, int32) {
	if constants.IsDevMode() {
		return envSize(constants.WindowWidthEnvVar, devWidth), envSize(constants.WindowHeightEnvVar, devHeight)
	}
	if w > 0 && h > 0 {
		return w, h
	}
	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		logger().Error("failed to get display mode", "error", err)
		return devWidth, devHeight
	}
	return mode.W, mode.H
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		logger().Warn("invalid window size; using default", "var", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func newWindow(opts Options) (*window, error) {
	width, height := windowSize(opts.Width, opts.Height)

	winOpts := opts.Window
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = 50, 50
	}

	logger().Debug("creating window", "width", width, "height", height)
	sw, err := sdl.CreateWindow(opts.Title, x, y, width, height, winOpts.flags())
	if err != nil {
		return nil, confkit.NewInfrastructureError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(sw, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		logger().Warn("accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(sw, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			sw.Destroy()
			return nil, confkit.NewInfrastructureError("create_renderer", err)
		}
	}
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	w := &window{
		sdlWindow: sw,
		renderer:  renderer,
		hasVSync:  err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0,
	}

	if opts.BackgroundImage != "" {
		w.loadBackground(opts.BackgroundImage)
	}
	return w, nil
}

// loadBackground draws an image behind the screen. A missing image is not an error.
func (w *window) loadBackground(path string) {
	texture, err := img.LoadTexture(w.renderer, path)
	if err != nil {
		logger().Debug("no background image", "path", path, "error", err)
		return
	}
	w.background = texture
}

func (w *window) size() (int32, int32) {
	width, height, err := w.renderer.GetOutputSize()
	if err != nil {
		return w.sdlWindow.GetSize()
	}
	return width, height
}

func (w *window) clear() {
	if w.background != nil {
		width, height := w.size()
		w.renderer.Copy(w.background, nil, &sdl.Rect{W: width, H: height})
		return
	}
	w.renderer.SetDrawColor(0, 0, 0, 255)
	w.renderer.Clear()
}

// present swaps buffers and holds ~60fps when the renderer has no vsync.
func (w *window) present() {
	w.renderer.Present()
	if w.hasVSync {
		return
	}
	now := sdl.GetTicks64()
	if elapsed := now - w.lastPresentTime; elapsed < frameMS {
		sdl.Delay(uint32(frameMS - elapsed))
	}
	w.lastPresentTime = sdl.GetTicks64()
}

func (w *window) destroy() {
	if w.background != nil {
		w.background.Destroy()
	}
	w.renderer.Destroy()
	w.sdlWindow.Destroy()
}
