package host

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/confkit/pkg/confkit"
	"github.com/veandco/go-sdl2/sdl"
)

func newTestScreen(t *testing.T) *confkit.Screen {
	t.Helper()
	s, err := confkit.NewScreen(confkit.ScreenOptions{Width: 854, Height: 480}, []confkit.Category{
		{Name: "Video", Options: []confkit.OptionControl{confkit.NewToggle(confkit.ToggleOptions{Label: "Vsync"})}},
	})
	if err != nil {
		t.Fatalf("NewScreen error = %v", err)
	}
	return s
}

func TestResizeUsesRendererSize(t *testing.T) {
	s := newTestScreen(t)
	p := &inputProcessor{outputSize: func() (int32, int32) { return 1708, 960 }}

	// A HiDPI window reports half the renderer size in window coordinates.
	p.dispatch(s, &sdl.WindowEvent{Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 854, Data2: 480}, time.Now())

	if got := s.List().Bounds(); got != (confkit.Rect{X: 128, Y: 38, W: 1572, H: 874}) {
		t.Errorf("list bounds = %+v, want layout for 1708x960", got)
	}
}

func TestQuitRequestsClose(t *testing.T) {
	s := newTestScreen(t)
	p := &inputProcessor{outputSize: func() (int32, int32) { return 854, 480 }}

	p.dispatch(s, &sdl.QuitEvent{}, time.Now())
	if !s.Closed() || s.Result().Action != confkit.ScreenActionClosed {
		t.Errorf("closed = %v, action = %v", s.Closed(), s.Result().Action)
	}
}
