package confkit

import (
	"time"

	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
)

// Widget is anything the screen lays out, draws and routes input to.
// Every handler reports whether it consumed the event; nothing returns an
// error, and input a widget does not understand is ignored.
type Widget interface {
	Bounds() Rect
	SetBounds(r Rect)

	Visible() bool
	SetVisible(v bool)
	Enabled() bool
	SetEnabled(e bool)
	Focused() bool
	SetFocused(f bool)
	Hovered() bool

	// Render draws the widget. p is the pointer position, dt the time since the last frame.
	Render(c Canvas, p Point, dt time.Duration)
	// RenderOverlay draws content that must appear above every sibling, unclipped.
	RenderOverlay(c Canvas, p Point, dt time.Duration)

	HandlePointerDown(p Point, button constants.MouseButton) bool
	HandlePointerUp(p Point, button constants.MouseButton) bool
	HandlePointerDrag(p Point, button constants.MouseButton, dx, dy int32) bool
	HandleKey(key constants.Key, mods constants.Modifier) bool
	HandleChar(r rune) bool
	// HandleScroll receives wheel motion; positive dy scrolls up.
	HandleScroll(p Point, dy float64) bool
}

// BaseWidget carries the state shared by all widgets. The zero value is a
// visible, enabled, unfocused widget with empty bounds. Embedders override
// the handlers they need; the rest consume nothing.
type BaseWidget struct {
	bounds   Rect
	hidden   bool
	disabled bool
	focused  bool
	hovered  bool
}

func (w *BaseWidget) Bounds() Rect          { return w.bounds }
func (w *BaseWidget) SetBounds(r Rect)      { w.bounds = r }
func (w *BaseWidget) Visible() bool         { return !w.hidden }
func (w *BaseWidget) SetVisible(v bool)     { w.hidden = !v }
func (w *BaseWidget) Enabled() bool         { return !w.disabled }
func (w *BaseWidget) SetEnabled(e bool)     { w.disabled = !e }
func (w *BaseWidget) Focused() bool         { return w.focused }
func (w *BaseWidget) SetFocused(f bool)     { w.focused = f }
func (w *BaseWidget) Hovered() bool         { return w.hovered }
func (w *BaseWidget) setHovered(h bool)     { w.hovered = h }
func (w *BaseWidget) interactive() bool     { return !w.hidden && !w.disabled }
func (w *BaseWidget) contains(p Point) bool { return w.bounds.Contains(p) }

func (w *BaseWidget) Render(Canvas, Point, time.Duration)        {}
func (w *BaseWidget) RenderOverlay(Canvas, Point, time.Duration) {}

func (w *BaseWidget) HandlePointerDown(Point, constants.MouseButton) bool { return false }
func (w *BaseWidget) HandlePointerUp(Point, constants.MouseButton) bool   { return false }
func (w *BaseWidget) HandlePointerDrag(Point, constants.MouseButton, int32, int32) bool {
	return false
}
func (w *BaseWidget) HandleKey(constants.Key, constants.Modifier) bool { return false }
func (w *BaseWidget) HandleChar(rune) bool                             { return false }
func (w *BaseWidget) HandleScroll(Point, float64) bool                 { return false }

// beginRender refreshes the hover state and reports whether to draw at all.
func (w *BaseWidget) beginRender(p Point) bool {
	if w.hidden {
		w.hovered = false
		return false
	}
	w.hovered = w.bounds.Contains(p)
	return true
}
