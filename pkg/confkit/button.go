package confkit

import (
	"time"

	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
)

// Button is a footer push button. OnClick fires on release inside the
// button, or on Enter/Space while focused.
type Button struct {
	BaseWidget

	ctx     *Context
	Text    string
	OnClick func()

	pressed bool
}

func NewButton(ctx *Context, text string, onClick func()) *Button {
	return &Button{ctx: ctx.withDefaults(), Text: text, OnClick: onClick}
}

func (b *Button) click() {
	if b.OnClick != nil {
		b.OnClick()
	}
}

func (b *Button) Render(c Canvas, p Point, _ time.Duration) {
	if !b.beginRender(p) {
		return
	}
	th := b.ctx.Theme

	bg := th.ButtonBackground
	switch {
	case b.disabled:
		bg = th.ButtonBackgroundDisabled
	case b.pressed:
		bg = th.AccentSecondary
	case b.hovered:
		bg = th.ButtonBackgroundHover
	}
	c.FillRect(b.bounds, bg)

	border := th.ButtonBorder
	if b.focused {
		border = th.AccentPrimary
	}
	c.StrokeRect(b.bounds, border)

	color := th.TextPrimary
	if b.disabled {
		color = th.TextDisabled
	}
	drawTextIn(c, b.Text, b.bounds, constants.TextAlignCenter, color)
}

func (b *Button) HandlePointerDown(p Point, button constants.MouseButton) bool {
	if !b.interactive() || button != constants.MouseButtonLeft || !b.contains(p) {
		return false
	}
	b.pressed = true
	return true
}

func (b *Button) HandlePointerUp(p Point, _ constants.MouseButton) bool {
	if !b.pressed {
		return false
	}
	b.pressed = false
	if b.contains(p) && b.interactive() {
		b.click()
	}
	return true
}

func (b *Button) HandleKey(key constants.Key, _ constants.Modifier) bool {
	if !b.focused || !b.interactive() {
		return false
	}
	switch key {
	case constants.KeyEnter, constants.KeySpace:
		b.click()
		return true
	}
	return false
}
