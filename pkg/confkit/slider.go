package confkit

import (
	"fmt"
	"math"
	"time"

	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
	"github.com/BrandonKowalski/confkit/pkg/confkit/internal"
)

// SliderOptions configures a numeric slider.
type SliderOptions struct {
	Label           string
	Description     string
	Min             float64
	Max             float64
	Step            float64 // Grid anchored at Min; 0 means continuous
	Default         float64
	Binding         Binding[float64] // See IntBinding and Float32Binding
	Suffix          string           // Appended to the value text, e.g. "%" or " px"
	Formatter       func(float64) string
	HideValue       bool
	RequiresRestart bool
	LabelRatio      int
	OnChange        func(float64)
}

// PercentFormatter shows a 0..1 value as a whole percentage.
func PercentFormatter(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v*100)))
}

// Slider edits a number in [Min, Max], snapped to Step. Clicking the control
// starts a drag; Left and Right step the value while focused.
type Slider struct {
	optionRow

	binding   Binding[float64]
	min, max  float64
	step      float64
	def       float64
	suffix    string
	formatter func(float64) string
	hideValue bool
	onChange  func(float64)

	dragging bool
}

const (
	sliderTrackH    int32 = 4
	sliderHandleW   int32 = 8
	sliderHandleH   int32 = 12
	sliderTextGap   int32 = 8
	sliderVanillaH  int32 = 20
	sliderVanillaIn int32 = 4
)

func NewSlider(opts SliderOptions) *Slider {
	lo, hi := opts.Min, opts.Max
	if hi < lo {
		lo, hi = hi, lo
	}
	s := &Slider{
		optionRow: newOptionRow(rowOptions{
			label:           opts.Label,
			description:     opts.Description,
			requiresRestart: opts.RequiresRestart,
			labelRatio:      opts.LabelRatio,
		}),
		min:       lo,
		max:       hi,
		step:      math.Abs(opts.Step),
		suffix:    opts.Suffix,
		formatter: opts.Formatter,
		hideValue: opts.HideValue,
		onChange:  opts.OnChange,
	}
	s.def = s.Snap(opts.Default)
	s.binding = opts.Binding.orLocal(s.def)
	return s
}

func (s *Slider) Kind() Kind { return KindSlider }

func (s *Slider) Min() float64  { return s.min }
func (s *Slider) Max() float64  { return s.max }
func (s *Slider) Step() float64 { return s.step }

// Value returns the bound value.
func (s *Slider) Value() float64 { return s.binding.Get() }

// Snap clamps v to [Min, Max] and moves it to the nearest grid point
// Min + k*Step that does not exceed Max.
func (s *Slider) Snap(v float64) float64 {
	v = internal.Clamp(v, s.min, s.max)
	if s.step <= 0 {
		return v
	}
	snapped := s.min + math.Round((v-s.min)/s.step)*s.step
	if snapped > s.max {
		snapped -= s.step
	}
	return snapped
}

// SetValue snaps v and writes it through the binding.
func (s *Slider) SetValue(v float64) {
	v = s.Snap(v)
	if v == s.binding.Get() {
		return
	}
	s.binding.Set(v)
	s.changed()
	if s.onChange != nil {
		s.onChange(v)
	}
}

func (s *Slider) ResetToDefault() {
	s.binding.Set(s.def)
	s.modified = false
}

// FormatValue renders v the way the slider displays it.
func (s *Slider) FormatValue(v float64) string {
	if s.formatter != nil {
		return s.formatter(v)
	}
	switch {
	case s.step >= 1:
		return fmt.Sprintf("%d%s", int64(math.Round(v)), s.suffix)
	case s.step >= 0.1:
		return fmt.Sprintf("%.1f%s", v, s.suffix)
	default:
		return fmt.Sprintf("%.2f%s", v, s.suffix)
	}
}

// Progress is the value's position in [0, 1].
func (s *Slider) Progress() float64 {
	if s.max == s.min {
		return 0
	}
	return internal.Clamp((s.binding.Get()-s.min)/(s.max-s.min), 0, 1)
}

// track returns the horizontal extent of the track for the current value text.
func (s *Slider) track(m TextMetrics) (x, w int32) {
	cr := s.ControlRegion()
	if s.theme().Vanilla {
		return cr.X + sliderVanillaIn, max(1, cr.W-sliderVanillaIn-2*sliderTextGap)
	}
	textW := int32(0)
	if !s.hideValue {
		textW = m.TextWidth(s.FormatValue(s.binding.Get())) + sliderTextGap
	}
	return cr.X, max(1, cr.W-textW-constants.ControlGutter)
}

func (s *Slider) setFromX(x int32) {
	tx, tw := s.track(s.context().Metrics)
	progress := internal.Clamp(float64(x-tx)/float64(tw), 0, 1)
	s.SetValue(s.min + progress*(s.max-s.min))
}

func (s *Slider) Render(c Canvas, p Point, _ time.Duration) {
	if !s.beginRender(p) {
		return
	}
	s.renderRow(c)

	th := s.theme()
	cr := s.ControlRegion()
	tx, tw := s.track(c)
	filled := int32(float64(tw) * s.Progress())
	value := s.FormatValue(s.binding.Get())

	if th.Vanilla {
		box := Rect{X: cr.X, Y: cr.CenterY() - sliderVanillaH/2, W: tw + 2*sliderVanillaIn, H: sliderVanillaH}
		c.FillRect(box, th.ButtonBackground)
		c.StrokeRect(box, th.ButtonBorder)
		handle := Rect{X: tx + filled - sliderHandleW/2, Y: box.Y + 2, W: sliderHandleW, H: box.H - 4}
		c.FillRect(handle, th.SliderHandle)
		if !s.hideValue {
			drawTextIn(c, value, box, constants.TextAlignCenter, s.textColor())
		}
		return
	}

	track := Rect{X: tx, Y: cr.CenterY() - sliderTrackH/2, W: tw, H: sliderTrackH}
	c.FillRect(track, th.SliderTrack)
	c.FillRect(Rect{X: tx, Y: track.Y, W: filled, H: sliderTrackH}, th.SliderFilled)

	handleColor := th.SliderHandle
	if s.dragging {
		handleColor = th.AccentSecondary
	}
	c.FillRect(Rect{
		X: tx + filled - sliderHandleW/2,
		Y: cr.CenterY() - sliderHandleH/2,
		W: sliderHandleW,
		H: sliderHandleH,
	}, handleColor)

	if !s.hideValue {
		c.DrawText(value, tx+tw+sliderTextGap, s.lineY(c), s.textColor())
	}
}

func (s *Slider) HandlePointerDown(p Point, button constants.MouseButton) bool {
	if !s.interactive() || button != constants.MouseButtonLeft || !s.contains(p) {
		return false
	}
	s.focused = true
	if !s.ControlRegion().Contains(p) {
		return true
	}
	s.dragging = true
	s.setFromX(p.X)
	return true
}

func (s *Slider) HandlePointerDrag(p Point, _ constants.MouseButton, _, _ int32) bool {
	if !s.dragging || !s.interactive() {
		s.dragging = false
		return false
	}
	s.setFromX(p.X)
	return true
}

func (s *Slider) HandlePointerUp(Point, constants.MouseButton) bool {
	was := s.dragging
	s.dragging = false
	return was
}

// Dragging reports whether a pointer drag is in progress.
func (s *Slider) Dragging() bool { return s.dragging }

func (s *Slider) HandleKey(key constants.Key, _ constants.Modifier) bool {
	if !s.focused || !s.interactive() {
		return false
	}
	step := s.step
	if step <= 0 {
		step = (s.max - s.min) / 100
	}
	switch key {
	case constants.KeyLeft:
		s.SetValue(s.binding.Get() - step)
		return true
	case constants.KeyRight:
		s.SetValue(s.binding.Get() + step)
		return true
	case constants.KeyHome:
		s.SetValue(s.min)
		return true
	case constants.KeyEnd:
		s.SetValue(s.max)
		return true
	}
	return false
}
