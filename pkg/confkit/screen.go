package confkit

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/confkit/pkg/confkit/config"
	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
	"github.com/BrandonKowalski/confkit/pkg/confkit/internal"
	"github.com/BrandonKowalski/confkit/pkg/confkit/locale"
	"github.com/BrandonKowalski/confkit/pkg/confkit/theme"
)

// Category is a named group of options shown when selected in the sidebar.
type Category struct {
	Name        string
	Icon        *Icon
	Description string // Sidebar tooltip
	Options     []OptionControl
}

// ScreenOptions configures a settings screen. Zero values pick the defaults
// noted per field.
type ScreenOptions struct {
	Title           string       // Header text; default translated "Settings"
	Width           int32        // Default 854
	Height          int32        // Default 480
	Theme           *theme.Theme // Default theme.Modern()
	Metrics         TextMetrics  // Set by the host from its font; default 6x9 fixed
	Clipboard       Clipboard    // Default process-local clipboard
	Translator      Translator   // Default English catalog
	Store           config.Store // Saved and reset with the screen; optional
	OnSave          func() error // Runs after Store.Save succeeds
	OnReset         func()       // Runs after every option was reset
	OnClose         func(ScreenResult)
	DisableConfirm  bool // Close without asking even when changes are pending
	HideSaveButton  bool
	HideResetButton bool
	InitialCategory int
}

// Screen composes the header, category sidebar, option list, footer
// buttons, tooltip and confirmation modal into one configuration screen.
type Screen struct {
	ctx        *Context
	opts       ScreenOptions
	title      string
	categories []Category

	sidebar *CategoryList
	list    *OptionList
	save    *Button
	reset   *Button
	done    *Button
	buttons []*Button
	modal   *Confirmation

	pointer Point
	result  ScreenResult
	closed  bool
}

// NewScreen builds a screen over categories. Each option belongs to exactly
// one category; the list shows the selected category's options.
func NewScreen(opts ScreenOptions, categories []Category) (*Screen, error) {
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	ctx := (&Context{
		Theme:      opts.Theme,
		Metrics:    opts.Metrics,
		Clipboard:  opts.Clipboard,
		Translator: opts.Translator,
		ScreenW:    opts.Width,
		ScreenH:    opts.Height,
	}).withDefaults()

	s := &Screen{
		ctx:        ctx,
		opts:       opts,
		title:      opts.Title,
		categories: categories,
		pointer:    Point{X: -1, Y: -1},
	}
	if s.title == "" {
		s.title = ctx.Translator.T(locale.ScreenTitle)
	}

	entries := make([]CategoryEntry, len(categories))
	for i, cat := range categories {
		entries[i] = CategoryEntry{Name: cat.Name, Icon: cat.Icon, Description: cat.Description}
	}
	s.sidebar = NewCategoryList(ctx, entries)
	s.sidebar.OnSelect = s.showCategory
	s.list = NewOptionList(ctx)

	s.done = NewButton(ctx, ctx.Translator.T(locale.ButtonDone), s.RequestClose)
	s.buttons = append(s.buttons, s.done)
	if !opts.HideResetButton {
		s.reset = NewButton(ctx, ctx.Translator.T(locale.ButtonReset), s.Reset)
		s.buttons = append(s.buttons, s.reset)
	}
	if !opts.HideSaveButton {
		s.save = NewButton(ctx, ctx.Translator.T(locale.ButtonSave), func() { _ = s.Save() })
		s.buttons = append(s.buttons, s.save)
	}

	initial := opts.InitialCategory
	if initial < 0 || initial >= len(categories) {
		initial = 0
	}
	s.sidebar.selected = initial
	s.showCategory(initial)
	s.Resize(ctx.ScreenW, ctx.ScreenH)

	return s, nil
}

func (s *Screen) Context() *Context      { return s.ctx }
func (s *Screen) Title() string          { return s.title }
func (s *Screen) Categories() []Category { return s.categories }
func (s *Screen) Sidebar() *CategoryList { return s.sidebar }
func (s *Screen) List() *OptionList      { return s.list }
func (s *Screen) Modal() *Confirmation   { return s.modal }
func (s *Screen) Buttons() []*Button     { return s.buttons }
func (s *Screen) SelectedCategory() int  { return s.sidebar.Selected() }
func (s *Screen) Closed() bool           { return s.closed }
func (s *Screen) Result() ScreenResult   { return s.result }

// SelectCategory shows category i.
func (s *Screen) SelectCategory(i int) error {
	if i < 0 || i >= len(s.categories) {
		return fmt.Errorf("%w: %d", ErrUnknownCategory, i)
	}
	s.sidebar.Select(i)
	return nil
}

func (s *Screen) showCategory(i int) {
	s.list.DefocusAll()
	s.list.Clear()
	s.list.Add(s.categories[i].Options...)
}

// Resize lays the screen out for a new window size.
func (s *Screen) Resize(w, h int32) {
	s.ctx.ScreenW, s.ctx.ScreenH = w, h

	body := h - constants.HeaderHeight - constants.FooterHeight
	s.sidebar.SetBounds(Rect{X: 0, Y: constants.HeaderHeight, W: constants.SidebarWidth, H: max(0, body)})
	s.list.SetBounds(Rect{
		X: constants.SidebarWidth + constants.ScreenPadding,
		Y: constants.HeaderHeight + constants.ScreenPadding,
		W: max(0, w-constants.SidebarWidth-2*constants.ScreenPadding),
		H: max(0, body-2*constants.ScreenPadding),
	})

	x := w - constants.ScreenPadding - constants.ButtonWidth
	y := h - constants.FooterHeight + (constants.FooterHeight-constants.ButtonHeight)/2
	for _, b := range s.buttons {
		b.SetBounds(Rect{X: x, Y: y, W: constants.ButtonWidth, H: constants.ButtonHeight})
		x -= constants.ButtonWidth + constants.ScreenPadding
	}

	if s.modal != nil {
		s.modal.Layout(w, h)
	}
}

func (s *Screen) headerRect() Rect {
	return Rect{W: s.ctx.ScreenW, H: constants.HeaderHeight}
}

func (s *Screen) footerRect() Rect {
	return Rect{Y: s.ctx.ScreenH - constants.FooterHeight, W: s.ctx.ScreenW, H: constants.FooterHeight}
}

func (s *Screen) allOptions(fn func(OptionControl)) {
	for _, cat := range s.categories {
		for _, o := range cat.Options {
			fn(o)
		}
	}
}

// HasModified reports whether any option in any category changed since the
// last save or reset.
func (s *Screen) HasModified() bool {
	modified := false
	s.allOptions(func(o OptionControl) {
		if o.IsModified() {
			modified = true
		}
	})
	return modified
}

func (s *Screen) restartPending() bool {
	pending := false
	s.allOptions(func(o OptionControl) {
		if o.IsModified() && o.RequiresRestart() {
			pending = true
		}
	})
	return pending
}

// Save persists through the store, runs OnSave and clears every modified
// flag. On failure the flags are kept so the user can retry.
func (s *Screen) Save() error {
	restart := s.restartPending()

	if s.opts.Store != nil {
		if err := s.opts.Store.Save(); err != nil {
			return s.failed("save", err)
		}
	}
	if s.opts.OnSave != nil {
		if err := s.opts.OnSave(); err != nil {
			return s.failed("save", err)
		}
	}

	s.allOptions(func(o OptionControl) { o.SetModified(false) })
	s.result.Saved = true
	s.result.Err = nil
	if restart {
		s.result.RestartRequired = true
	}
	logger().Debug("settings saved", "restart_required", s.result.RestartRequired)
	return nil
}

// Reset restores every option of every category to its default.
func (s *Screen) Reset() {
	s.list.CloseExpanded()
	s.allOptions(func(o OptionControl) { o.ResetToDefault() })

	if s.opts.Store != nil {
		if err := s.opts.Store.ResetToDefaults(); err != nil {
			_ = s.failed("reset", err)
		}
	}
	if s.opts.OnReset != nil {
		s.opts.OnReset()
	}
	logger().Debug("settings reset")
}

func (s *Screen) failed(op string, err error) error {
	err = fmt.Errorf("%s settings: %w", op, err)
	s.result.Err = err
	logger().Error("settings "+op+" failed", "error", err)
	return err
}

// RequestClose closes the screen, first asking for confirmation when
// changes are pending.
func (s *Screen) RequestClose() {
	if s.closed || s.modal != nil {
		return
	}
	if !s.HasModified() {
		s.finish(ScreenActionClosed)
		return
	}
	if s.opts.DisableConfirm {
		s.finish(ScreenActionDiscarded)
		return
	}

	s.list.DefocusAll()
	tr := s.ctx.Translator
	s.modal = NewConfirmation(s.ctx, tr.T(locale.UnsavedTitle), tr.T(locale.UnsavedMessage), func(yes bool) {
		s.modal = nil
		if yes {
			s.finish(ScreenActionDiscarded)
		}
	})
}

func (s *Screen) finish(action ScreenAction) {
	s.closed = true
	s.result.Action = action
	logger().Debug("settings screen closed", "action", action.String())
	if s.opts.OnClose != nil {
		s.opts.OnClose(s.result)
	}
}

// Render draws the whole screen. p is the pointer position.
func (s *Screen) Render(c Canvas, p Point, dt time.Duration) {
	s.pointer = p
	th := s.ctx.Theme

	// Widgets under a modal must not show hover.
	under := p
	if s.modal != nil {
		under = Point{X: -1, Y: -1}
	}

	c.FillRect(Rect{W: s.ctx.ScreenW, H: s.ctx.ScreenH}, th.Background)

	header := s.headerRect()
	c.FillRect(header, th.BackgroundSecondary)
	c.DrawText(s.title, constants.ScreenPadding, textY(c, header), th.TextPrimary)
	c.FillRect(Rect{Y: header.Bottom() - 1, W: header.W, H: 1}, th.Divider)

	footer := s.footerRect()
	c.FillRect(footer, th.BackgroundSecondary)
	c.FillRect(Rect{Y: footer.Y, W: footer.W, H: 1}, th.Divider)

	for _, b := range s.buttons {
		b.Render(c, under, dt)
	}
	s.sidebar.Render(c, under, dt)
	s.list.Render(c, under, dt)

	if s.modal == nil {
		s.renderTooltip(c, p)
		return
	}
	s.modal.Render(c, p, dt)
}

// TooltipText returns the text shown for the pointer position, if any.
func (s *Screen) TooltipText(p Point) string {
	if s.modal != nil || s.list.HasExpanded() {
		return ""
	}
	if o := s.list.HoveredOption(p); o != nil {
		text := o.Description()
		if o.RequiresRestart() {
			note := s.ctx.Translator.T(locale.RestartRequired)
			if text == "" {
				return note
			}
			text += "\n" + note
		}
		return text
	}
	if i := s.sidebar.IndexAt(p); i >= 0 {
		return s.categories[i].Description
	}
	return ""
}

// TooltipRect places a tooltip of the given size at the pointer, kept on screen.
func (s *Screen) TooltipRect(p Point, w, h int32) Rect {
	x := internal.ClampInt32(p.X+12, 0, max(0, s.ctx.ScreenW-w))
	y := internal.ClampInt32(p.Y+12, 0, max(0, s.ctx.ScreenH-h))
	return Rect{X: x, Y: y, W: w, H: h}
}

var tooltipPadding = internal.Padding{Top: 3, Right: 4, Bottom: 3, Left: 4}

func (s *Screen) renderTooltip(c Canvas, p Point) {
	text := s.TooltipText(p)
	if text == "" {
		return
	}
	th := s.ctx.Theme

	lines := WrapText(c, text, constants.TooltipWidth)
	w := int32(0)
	for _, line := range lines {
		w = max(w, c.TextWidth(line))
	}
	lineH := c.LineHeight() + 2
	r := s.TooltipRect(p, w+tooltipPadding.Horizontal(), int32(len(lines))*lineH+tooltipPadding.Vertical())

	c.FillRect(r, th.TooltipBackground)
	c.StrokeRect(r, th.TooltipBorder)
	inner := r.Inset(tooltipPadding)
	for i, line := range lines {
		c.DrawText(line, inner.X, inner.Y+int32(i)*lineH, th.TextPrimary)
	}
}

func (s *Screen) defocusButtons() {
	for _, b := range s.buttons {
		b.SetFocused(false)
	}
}

func (s *Screen) HandlePointerDown(p Point, button constants.MouseButton) bool {
	s.pointer = p
	if s.closed {
		return false
	}
	if s.modal != nil {
		return s.modal.HandlePointerDown(p, button)
	}
	if s.list.HasExpanded() {
		return s.list.HandlePointerDown(p, button)
	}
	if s.sidebar.HandlePointerDown(p, button) {
		s.list.DefocusAll()
		s.defocusButtons()
		return true
	}
	if s.list.HandlePointerDown(p, button) {
		s.sidebar.SetFocused(false)
		s.defocusButtons()
		return true
	}
	for _, b := range s.buttons {
		if b.HandlePointerDown(p, button) {
			s.list.DefocusAll()
			s.sidebar.SetFocused(false)
			return true
		}
	}
	return false
}

func (s *Screen) HandlePointerUp(p Point, button constants.MouseButton) bool {
	s.pointer = p
	if s.closed {
		return false
	}
	if s.modal != nil {
		return s.modal.HandlePointerUp(p, button)
	}
	consumed := s.list.HandlePointerUp(p, button)
	for _, b := range s.buttons {
		if b.HandlePointerUp(p, button) {
			consumed = true
		}
	}
	return consumed
}

func (s *Screen) HandlePointerDrag(p Point, button constants.MouseButton, dx, dy int32) bool {
	s.pointer = p
	if s.closed {
		return false
	}
	if s.modal != nil {
		return s.modal.HandlePointerDrag(p, button, dx, dy)
	}
	return s.list.HandlePointerDrag(p, button, dx, dy)
}

// HandleKey routes keys to the modal, the list and the sidebar in that
// order, then handles focus movement: Up and Down step between rows,
// Left and Right cross between sidebar and list. Escape that nothing
// consumed requests close.
func (s *Screen) HandleKey(key constants.Key, mods constants.Modifier) bool {
	if s.closed {
		return false
	}
	if s.modal != nil {
		return s.modal.HandleKey(key, mods)
	}
	if s.list.HandleKey(key, mods) {
		return true
	}
	if s.sidebar.HandleKey(key, mods) {
		return true
	}

	rowFocused := s.list.FocusedOption() != nil
	switch key {
	case constants.KeyRight, constants.KeyEnter:
		if s.sidebar.Focused() && s.list.FocusFirst() {
			s.sidebar.SetFocused(false)
			return true
		}
	case constants.KeyLeft:
		if rowFocused {
			s.list.DefocusAll()
			s.sidebar.SetFocused(true)
			return true
		}
	case constants.KeyUp, constants.KeyDown:
		if rowFocused {
			delta := 1
			if key == constants.KeyUp {
				delta = -1
			}
			return s.list.MoveFocus(delta)
		}
		if !s.sidebar.Focused() {
			s.sidebar.SetFocused(true)
			return true
		}
	case constants.KeyEscape:
		s.RequestClose()
		return true
	}
	return false
}

func (s *Screen) HandleChar(r rune) bool {
	if s.closed {
		return false
	}
	if s.modal != nil {
		return s.modal.HandleChar(r)
	}
	return s.list.HandleChar(r)
}

func (s *Screen) HandleScroll(p Point, dy float64) bool {
	if s.closed {
		return false
	}
	if s.modal != nil {
		return true
	}
	return s.list.HandleScroll(p, dy)
}

// Pointer is the last pointer position the screen saw.
func (s *Screen) Pointer() Point { return s.pointer }
