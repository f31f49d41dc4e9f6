package confkit

import (
	"time"

	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
	"github.com/BrandonKowalski/confkit/pkg/confkit/internal"
	"github.com/BrandonKowalski/confkit/pkg/confkit/locale"
)

// ToggleOptions configures a boolean switch.
type ToggleOptions struct {
	Label           string
	Description     string // Tooltip text
	Default         bool   // Value restored by reset and used without a binding
	Binding         Binding[bool]
	OnText          string // Default: translated "On"
	OffText         string // Default: translated "Off"
	RequiresRestart bool
	LabelRatio      int // Percent of the row used by the label (default 50)
	OnChange        func(bool)
}

// Toggle is an on/off switch. Clicking the row or pressing Enter/Space flips it.
type Toggle struct {
	optionRow

	binding  Binding[bool]
	def      bool
	onText   string
	offText  string
	onChange func(bool)

	progress float64 // 0 = off, 1 = on
}

const (
	toggleSwitchW   int32 = 36
	toggleSwitchH   int32 = 16
	toggleHandleW   int32 = 14
	toggleHandleH   int32 = 12
	toggleTextGap   int32 = 6
	toggleButtonW   int32 = 50
	toggleButtonH   int32 = 20
	toggleHandlePad int32 = 2
)

func NewToggle(opts ToggleOptions) *Toggle {
	t := &Toggle{
		optionRow: newOptionRow(rowOptions{
			label:           opts.Label,
			description:     opts.Description,
			requiresRestart: opts.RequiresRestart,
			labelRatio:      opts.LabelRatio,
		}),
		binding:  opts.Binding.orLocal(opts.Default),
		def:      opts.Default,
		onText:   opts.OnText,
		offText:  opts.OffText,
		onChange: opts.OnChange,
	}
	if t.binding.Get() {
		t.progress = 1
	}
	return t
}

func (t *Toggle) Kind() Kind { return KindToggle }

// Value returns the bound value.
func (t *Toggle) Value() bool { return t.binding.Get() }

// SetValue writes v through the binding, marking the row modified if it changed.
func (t *Toggle) SetValue(v bool) {
	if v == t.binding.Get() {
		return
	}
	t.binding.Set(v)
	t.changed()
	if t.onChange != nil {
		t.onChange(v)
	}
}

func (t *Toggle) ResetToDefault() {
	t.binding.Set(t.def)
	t.modified = false
}

// AnimationProgress is the handle position, 0 for off and 1 for on.
func (t *Toggle) AnimationProgress() float64 { return t.progress }

func (t *Toggle) text(on bool) string {
	tr := t.context().Translator
	if on {
		if t.onText != "" {
			return t.onText
		}
		return tr.T(locale.ToggleOn)
	}
	if t.offText != "" {
		return t.offText
	}
	return tr.T(locale.ToggleOff)
}

func (t *Toggle) Render(c Canvas, p Point, dt time.Duration) {
	if !t.beginRender(p) {
		return
	}

	on := t.binding.Get()
	target := 0.0
	if on {
		target = 1
	}
	t.progress = internal.Approach(t.progress, target, dt, constants.ToggleSlideTime)

	t.renderRow(c)

	th := t.theme()
	cr := t.ControlRegion()
	track := th.ToggleOff.Blend(th.ToggleOn, t.progress)

	if th.Vanilla {
		button := Rect{X: cr.X, Y: cr.CenterY() - toggleButtonH/2, W: toggleButtonW, H: toggleButtonH}
		bg := th.ButtonBackground
		if t.hovered {
			bg = th.ButtonBackgroundHover
		}
		c.FillRect(button, bg)
		c.StrokeRect(button, th.ButtonBorder)
		drawTextIn(c, t.text(on), button, constants.TextAlignCenter, track)
		return
	}

	sw := Rect{X: cr.X, Y: cr.CenterY() - toggleSwitchH/2, W: toggleSwitchW, H: toggleSwitchH}
	c.FillRect(sw, track)

	travel := float64(toggleSwitchW - toggleHandleW - 2*toggleHandlePad)
	handle := Rect{
		X: sw.X + toggleHandlePad + int32(travel*t.progress),
		Y: sw.CenterY() - toggleHandleH/2,
		W: toggleHandleW,
		H: toggleHandleH,
	}
	c.FillRect(handle, th.ToggleHandle)

	c.DrawText(t.text(on), sw.Right()+toggleTextGap, t.lineY(c), t.textColor())
}

func (t *Toggle) HandlePointerDown(p Point, button constants.MouseButton) bool {
	if !t.interactive() || button != constants.MouseButtonLeft || !t.contains(p) {
		return false
	}
	t.focused = true
	t.SetValue(!t.binding.Get())
	return true
}

func (t *Toggle) HandleKey(key constants.Key, _ constants.Modifier) bool {
	if !t.focused || !t.interactive() {
		return false
	}
	switch key {
	case constants.KeyEnter, constants.KeySpace:
		t.SetValue(!t.binding.Get())
		return true
	}
	return false
}
