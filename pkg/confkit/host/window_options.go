package host

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions selects SDL window flags. The zero value picks a resizable
// window, borderless on devices.
type WindowOptions struct {
	Borderless        bool // Remove window decorations
	Resizable         bool // Let the user resize; the screen relayouts on every size change
	Fullscreen        bool
	FullscreenDesktop bool // Fullscreen at desktop resolution
	AlwaysOnTop       bool
	Hidden            bool // Start hidden (omits SDL_WINDOW_SHOWN)
}

func (wo WindowOptions) isZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) flags() uint32 {
	var flags uint32
	set := func(on bool, flag uint32) {
		if on {
			flags |= flag
		}
	}
	set(!wo.Hidden, sdl.WINDOW_SHOWN)
	set(wo.Resizable, sdl.WINDOW_RESIZABLE)
	set(wo.Borderless, sdl.WINDOW_BORDERLESS)
	set(wo.Fullscreen, sdl.WINDOW_FULLSCREEN)
	set(wo.FullscreenDesktop, sdl.WINDOW_FULLSCREEN_DESKTOP)
	set(wo.AlwaysOnTop, sdl.WINDOW_ALWAYS_ON_TOP)
	return flags
}
