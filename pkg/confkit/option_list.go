package confkit

import (
	"math"
	"time"

	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
	"github.com/BrandonKowalski/confkit/pkg/confkit/internal"
)

// OptionList is a vertically scrolling column of option rows with a
// scrollbar. At most one row is expanded at a time; its overlay is drawn
// above everything else in the list and gets the first look at clicks.
type OptionList struct {
	BaseWidget

	ctx     *Context
	options []OptionControl

	scrollCurrent float64
	scrollTarget  float64

	draggingScrollbar bool
	dragOffset        int32

	expanded int
}

func NewOptionList(ctx *Context) *OptionList {
	return &OptionList{
		ctx:      ctx.withDefaults(),
		expanded: -1,
	}
}

// Add appends rows to the list.
func (l *OptionList) Add(options ...OptionControl) {
	for _, o := range options {
		if o == nil {
			continue
		}
		o.attach(l, l.ctx, len(l.options))
		l.options = append(l.options, o)
	}
	l.layout()
}

// Clear removes every row and resets scrolling and expansion.
func (l *OptionList) Clear() {
	for _, o := range l.options {
		o.SetFocused(false)
		o.attach(nil, l.ctx, -1)
	}
	l.options = nil
	l.expanded = -1
	l.scrollCurrent, l.scrollTarget = 0, 0
	l.draggingScrollbar = false
}

func (l *OptionList) Options() []OptionControl { return l.options }

func (l *OptionList) expandedIndex() int { return l.expanded }

func (l *OptionList) requestExpand(index int) {
	if index < 0 || index >= len(l.options) || l.expanded == index {
		return
	}
	if l.expanded >= 0 {
		l.options[l.expanded].CloseExpanded()
	}
	l.expanded = index
	logger().Debug("option expanded", "index", index, "label", l.options[index].Label())
}

func (l *OptionList) releaseExpand(index int) {
	if l.expanded == index {
		l.expanded = -1
	}
}

// Expanded returns the expanded row, or nil. A row that was hidden or
// disabled while expanded loses its overlay here.
func (l *OptionList) Expanded() OptionControl {
	if l.expanded < 0 || l.expanded >= len(l.options) {
		return nil
	}
	o := l.options[l.expanded]
	if !o.Visible() || !o.Enabled() {
		o.CloseExpanded()
		l.expanded = -1
		return nil
	}
	return o
}

// HasExpanded reports whether a row shows an overlay.
func (l *OptionList) HasExpanded() bool {
	return l.Expanded() != nil
}

// CloseExpanded closes the expanded row's overlay, if any.
func (l *OptionList) CloseExpanded() {
	if o := l.Expanded(); o != nil {
		o.CloseExpanded()
	}
	l.expanded = -1
}

// ResetAllToDefaults resets every row.
func (l *OptionList) ResetAllToDefaults() {
	l.CloseExpanded()
	for _, o := range l.options {
		o.ResetToDefault()
	}
}

func (l *OptionList) HasModifiedOptions() bool {
	for _, o := range l.options {
		if o.IsModified() {
			return true
		}
	}
	return false
}

func (l *OptionList) ClearModified() {
	for _, o := range l.options {
		o.SetModified(false)
	}
}

// DefocusAll removes focus from every row, closing any overlay.
func (l *OptionList) DefocusAll() {
	for _, o := range l.options {
		o.SetFocused(false)
	}
	l.CloseExpanded()
}

// FocusedOption returns the focused row, or nil.
func (l *OptionList) FocusedOption() OptionControl {
	for _, o := range l.options {
		if o.Focused() {
			return o
		}
	}
	return nil
}

func (l *OptionList) focusedIndex() int {
	for i, o := range l.options {
		if o.Focused() {
			return i
		}
	}
	return -1
}

func (l *OptionList) contentHeight() float64 {
	n := 0
	for _, o := range l.options {
		if o.Visible() {
			n++
		}
	}
	return float64(int32(n) * constants.RowHeight)
}

// MaxScroll is how far the content can scroll: max(0, content - view).
func (l *OptionList) MaxScroll() float64 {
	return math.Max(0, l.contentHeight()-float64(l.bounds.H))
}

func (l *OptionList) ScrollTarget() float64  { return l.scrollTarget }
func (l *OptionList) ScrollCurrent() float64 { return l.scrollCurrent }

// ScrollTo sets the scroll target, clamped to [0, MaxScroll].
func (l *OptionList) ScrollTo(offset float64) {
	l.scrollTarget = internal.Clamp(offset, 0, l.MaxScroll())
}

func (l *OptionList) scrollbarShown() bool {
	return l.contentHeight() > float64(l.bounds.H)
}

// layout positions every visible row for the current scroll offset. Rows
// hidden by visibility take no slot; rows outside the viewport keep their
// computed position but are skipped when drawing and hit-testing.
func (l *OptionList) layout() {
	l.scrollTarget = internal.Clamp(l.scrollTarget, 0, l.MaxScroll())
	l.scrollCurrent = internal.Clamp(l.scrollCurrent, 0, l.MaxScroll())

	top := l.bounds.Y - int32(math.Floor(l.scrollCurrent))
	slot := int32(0)
	for _, o := range l.options {
		if !o.Visible() {
			continue
		}
		o.SetBounds(Rect{
			X: l.bounds.X + constants.RowPadding,
			Y: top + slot*constants.RowHeight,
			W: max(0, l.bounds.W-constants.ScrollbarWidth-constants.ControlGutter),
			H: constants.RowHeight - constants.RowPadding,
		})
		slot++
	}
	l.Expanded()
}

// rowShown reports whether o is visible and intersects the viewport.
func (l *OptionList) rowShown(o OptionControl) bool {
	return o.Visible() && o.Bounds().Intersects(l.bounds)
}

// SetBounds moves the list and lays the rows out again.
func (l *OptionList) SetBounds(r Rect) {
	l.bounds = r
	l.layout()
}

func (l *OptionList) animate(dt time.Duration) {
	if l.draggingScrollbar {
		return
	}
	l.scrollCurrent = internal.Damp(l.scrollCurrent, l.scrollTarget,
		constants.ScrollDamping, constants.ScrollSnap, dt, constants.ReferenceFrame)
}

// ScrollIntoView scrolls the minimum distance that makes row i fully visible.
func (l *OptionList) ScrollIntoView(i int) {
	if i < 0 || i >= len(l.options) {
		return
	}
	l.layout()
	b := l.options[i].Bounds()
	rowTop := float64(b.Y-l.bounds.Y) + math.Floor(l.scrollCurrent)
	rowBottom := rowTop + float64(constants.RowHeight)
	switch {
	case rowTop < l.scrollTarget:
		l.ScrollTo(rowTop)
	case rowBottom > l.scrollTarget+float64(l.bounds.H):
		l.ScrollTo(rowBottom - float64(l.bounds.H))
	}
}

func (l *OptionList) thumbRect() Rect {
	view := float64(l.bounds.H)
	content := l.contentHeight()
	thumbH := math.Max(float64(constants.ScrollbarMinSize), view*view/content)

	y := float64(l.bounds.Y)
	if maxScroll := l.MaxScroll(); maxScroll > 0 {
		y += (view - thumbH) * l.scrollCurrent / maxScroll
	}
	return Rect{
		X: l.bounds.Right() - constants.ScrollbarWidth - 1,
		Y: int32(y),
		W: constants.ScrollbarWidth,
		H: int32(thumbH),
	}
}

func (l *OptionList) scrollbarColumn() Rect {
	return Rect{
		X: l.bounds.Right() - constants.ScrollbarWidth - 1,
		Y: l.bounds.Y,
		W: constants.ScrollbarWidth,
		H: l.bounds.H,
	}
}

// Render draws the rows clipped to the list, the scrollbar, and finally the
// overlays of every row without clipping.
func (l *OptionList) Render(c Canvas, p Point, dt time.Duration) {
	if !l.beginRender(p) {
		return
	}
	l.animate(dt)
	l.layout()

	c.PushClip(l.bounds)
	for _, o := range l.options {
		if l.rowShown(o) {
			o.Render(c, p, dt)
		}
	}
	c.PopClip()

	if l.scrollbarShown() {
		th := l.ctx.Theme
		c.FillRect(l.scrollbarColumn(), th.ScrollbarTrack)
		thumb := l.thumbRect()
		color := th.ScrollbarThumb
		if l.draggingScrollbar || thumb.Contains(p) {
			color = th.ScrollbarThumbHover
		}
		c.FillRect(thumb, color)
	}

	for _, o := range l.options {
		o.RenderOverlay(c, p, dt)
	}
}

func (l *OptionList) HandlePointerDown(p Point, button constants.MouseButton) bool {
	if !l.interactive() {
		return false
	}
	l.layout()

	if o := l.Expanded(); o != nil {
		if !o.HandleExpandedClick(p, button) {
			o.CloseExpanded()
			l.expanded = -1
		}
		return true
	}

	if !l.contains(p) {
		return false
	}

	if l.scrollbarShown() && l.scrollbarColumn().Contains(p) {
		l.draggingScrollbar = true
		l.dragOffset = p.Y - l.thumbRect().Y
		return true
	}

	for i, o := range l.options {
		if !l.rowShown(o) {
			continue
		}
		if o.HandlePointerDown(p, button) {
			for j, other := range l.options {
				if j != i {
					other.SetFocused(false)
				}
			}
			return true
		}
	}

	l.DefocusAll()
	return false
}

func (l *OptionList) dragScrollbar(y int32) {
	thumb := l.thumbRect()
	travel := float64(l.bounds.H - thumb.H)
	progress := 0.0
	if travel > 0 {
		progress = internal.Clamp(float64(y-l.dragOffset-l.bounds.Y)/travel, 0, 1)
	}
	l.scrollTarget = progress * l.MaxScroll()
	l.scrollCurrent = l.scrollTarget
}

func (l *OptionList) HandlePointerDrag(p Point, button constants.MouseButton, dx, dy int32) bool {
	if l.draggingScrollbar {
		l.dragScrollbar(p.Y)
		return true
	}
	for _, o := range l.options {
		if o.HandlePointerDrag(p, button, dx, dy) {
			return true
		}
	}
	return false
}

func (l *OptionList) HandlePointerUp(p Point, button constants.MouseButton) bool {
	consumed := l.draggingScrollbar
	l.draggingScrollbar = false
	for _, o := range l.options {
		if o.HandlePointerUp(p, button) {
			consumed = true
		}
	}
	return consumed
}

// HandleScroll moves the scroll target by one wheel step per notch while the
// pointer is over a scrollable list.
func (l *OptionList) HandleScroll(p Point, dy float64) bool {
	if !l.Visible() || !l.contains(p) || !l.scrollbarShown() {
		return false
	}
	l.ScrollTo(l.scrollTarget - dy*constants.WheelStep)
	return true
}

// HandleKey sends the key to the focused row only.
func (l *OptionList) HandleKey(key constants.Key, mods constants.Modifier) bool {
	l.Expanded()
	if o := l.FocusedOption(); o != nil {
		return o.HandleKey(key, mods)
	}
	return false
}

func (l *OptionList) HandleChar(r rune) bool {
	if o := l.FocusedOption(); o != nil {
		return o.HandleChar(r)
	}
	return false
}

// FocusFirst focuses the first focusable row.
func (l *OptionList) FocusFirst() bool {
	return l.moveFocus(-1, 1)
}

// MoveFocus moves focus from the focused row to the next focusable row in
// direction delta. It reports false when no row is focused or none follows.
func (l *OptionList) MoveFocus(delta int) bool {
	i := l.focusedIndex()
	if i < 0 {
		return false
	}
	return l.moveFocus(i, delta)
}

func (l *OptionList) moveFocus(from, delta int) bool {
	for i := from + delta; i >= 0 && i < len(l.options); i += delta {
		o := l.options[i]
		if !o.Visible() || !o.Enabled() || !focusable(o) {
			continue
		}
		if from >= 0 {
			l.options[from].SetFocused(false)
		}
		o.SetFocused(true)
		l.ScrollIntoView(i)
		return true
	}
	return false
}

func focusable(o OptionControl) bool {
	switch o.Kind() {
	case KindLabel, KindSeparator:
		return false
	}
	return true
}

// HoveredOption returns the row under p, or nil.
func (l *OptionList) HoveredOption(p Point) OptionControl {
	if !l.contains(p) {
		return nil
	}
	for _, o := range l.options {
		if l.rowShown(o) && o.Bounds().Contains(p) {
			return o
		}
	}
	return nil
}
