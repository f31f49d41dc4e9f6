package confkit

import (
	"time"

	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
	"github.com/BrandonKowalski/confkit/pkg/confkit/internal"
	"github.com/BrandonKowalski/confkit/pkg/confkit/locale"
)

const (
	confirmW       int32 = 250
	confirmH       int32 = 100
	confirmButtonW int32 = 60
	confirmPadding int32 = 8
)

// Confirmation is a modal yes/no dialog. While shown it takes all input.
// Enter answers yes, Escape answers no.
type Confirmation struct {
	BaseWidget

	ctx      *Context
	title    string
	message  string
	onResult func(yes bool)

	yes, no *Button
	done    bool
}

func NewConfirmation(ctx *Context, title, message string, onResult func(yes bool)) *Confirmation {
	ctx = ctx.withDefaults()
	cf := &Confirmation{ctx: ctx, title: title, message: message, onResult: onResult}
	cf.yes = NewButton(ctx, ctx.Translator.T(locale.ConfirmYes), func() { cf.answer(true) })
	cf.no = NewButton(ctx, ctx.Translator.T(locale.ConfirmNo), func() { cf.answer(false) })
	cf.yes.SetFocused(true)
	cf.Layout(ctx.ScreenW, ctx.ScreenH)
	return cf
}

func (cf *Confirmation) Title() string   { return cf.title }
func (cf *Confirmation) Message() string { return cf.message }

// Done reports whether the dialog was answered.
func (cf *Confirmation) Done() bool { return cf.done }

func (cf *Confirmation) answer(yes bool) {
	if cf.done {
		return
	}
	cf.done = true
	logger().Debug("confirmation answered", "title", cf.title, "yes", yes)
	if cf.onResult != nil {
		cf.onResult(yes)
	}
}

// Layout centers the dialog on a screen of the given size.
func (cf *Confirmation) Layout(screenW, screenH int32) {
	cf.bounds = Rect{X: (screenW - confirmW) / 2, Y: (screenH - confirmH) / 2, W: confirmW, H: confirmH}
	by := cf.bounds.Bottom() - confirmPadding - constants.ButtonHeight
	cx := cf.bounds.CenterX()
	cf.yes.SetBounds(Rect{X: cx - confirmPadding/2 - confirmButtonW, Y: by, W: confirmButtonW, H: constants.ButtonHeight})
	cf.no.SetBounds(Rect{X: cx + confirmPadding/2, Y: by, W: confirmButtonW, H: constants.ButtonHeight})
}

// YesRect and NoRect locate the answer buttons.
func (cf *Confirmation) YesRect() Rect { return cf.yes.Bounds() }
func (cf *Confirmation) NoRect() Rect  { return cf.no.Bounds() }

func (cf *Confirmation) Render(c Canvas, p Point, dt time.Duration) {
	if !cf.beginRender(p) {
		return
	}
	th := cf.ctx.Theme

	c.FillRect(Rect{W: cf.ctx.ScreenW, H: cf.ctx.ScreenH}, th.Shadow)
	c.FillRect(cf.bounds, th.Background.Opaque())
	c.StrokeRect(cf.bounds, th.AccentPrimary)

	inner := cf.bounds.Inset(internal.UniformPadding(confirmPadding))
	title := Rect{X: inner.X, Y: inner.Y, W: inner.W, H: c.LineHeight()}
	drawTextIn(c, cf.title, title, constants.TextAlignCenter, th.AccentPrimary)

	y := title.Bottom() + confirmPadding
	for _, line := range WrapText(c, cf.message, inner.W) {
		c.DrawText(line, cf.bounds.CenterX()-c.TextWidth(line)/2, y, th.TextPrimary)
		y += c.LineHeight() + 2
	}

	cf.yes.Render(c, p, dt)
	cf.no.Render(c, p, dt)
}

// HandlePointerDown always consumes: clicks outside the dialog are swallowed.
func (cf *Confirmation) HandlePointerDown(p Point, button constants.MouseButton) bool {
	if !cf.yes.HandlePointerDown(p, button) {
		cf.no.HandlePointerDown(p, button)
	}
	return true
}

func (cf *Confirmation) HandlePointerUp(p Point, button constants.MouseButton) bool {
	cf.yes.HandlePointerUp(p, button)
	cf.no.HandlePointerUp(p, button)
	return true
}

func (cf *Confirmation) HandlePointerDrag(Point, constants.MouseButton, int32, int32) bool {
	return true
}

func (cf *Confirmation) HandleKey(key constants.Key, _ constants.Modifier) bool {
	switch key {
	case constants.KeyEnter, constants.KeySpace:
		cf.answer(!cf.no.Focused())
	case constants.KeyEscape:
		cf.answer(false)
	case constants.KeyLeft, constants.KeyRight, constants.KeyTab:
		yes := cf.yes.Focused()
		cf.yes.SetFocused(!yes)
		cf.no.SetFocused(yes)
	}
	return true
}

func (cf *Confirmation) HandleChar(rune) bool             { return true }
func (cf *Confirmation) HandleScroll(Point, float64) bool { return true }
