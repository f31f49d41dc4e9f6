package host

import "github.com/veandco/go-sdl2/sdl"

// clipboard is the system clipboard through SDL.
type clipboard struct{}

func (clipboard) Get() string {
	text, err := sdl.GetClipboardText()
	if err != nil {
		logger().Debug("clipboard read failed", "error", err)
		return ""
	}
	return text
}

func (clipboard) Set(text string) {
	if err := sdl.SetClipboardText(text); err != nil {
		logger().Debug("clipboard write failed", "error", err)
	}
}
