package confkit

import (
	"strings"
	"time"

	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
	"github.com/BrandonKowalski/confkit/pkg/confkit/internal"
	"github.com/BrandonKowalski/confkit/pkg/confkit/theme"
)

// ColorPickerOptions configures a color option.
type ColorPickerOptions struct {
	Label           string
	Description     string
	Default         theme.Color
	Binding         Binding[theme.Color]
	AllowAlpha      bool          // Keep the alpha channel; otherwise every write is opaque
	Presets         []theme.Color // Quick picks below the hex field, at most 10 shown
	RequiresRestart bool
	LabelRatio      int
	OnChange        func(theme.Color)
}

// ColorPicker shows a swatch and hex code. Clicking it opens a popup with a
// saturation/value square, a hue strip, an editable hex field and presets.
type ColorPicker struct {
	optionRow

	binding    Binding[theme.Color]
	def        theme.Color
	allowAlpha bool
	presets    []theme.Color
	onChange   func(theme.Color)

	hue, sat, val float64
	drag          pickerDrag

	editingHex bool
	hexText    string
	hexCursor  int
}

type pickerDrag int

const (
	pickerDragNone pickerDrag = iota
	pickerDragSV
	pickerDragHue
)

const (
	pickerSwatch        int32 = 16
	pickerSwatchVanilla int32 = 20
	pickerTextGap       int32 = 6
	pickerPopupW        int32 = 150
	pickerPopupH        int32 = 120
	pickerPopupGap      int32 = 2
	pickerInset         int32 = 5
	pickerSVW           int32 = 100
	pickerSVH           int32 = 80
	pickerHueOffset     int32 = 105
	pickerHueW          int32 = 15
	pickerHexOffset     int32 = 85
	pickerHexW          int32 = 120
	pickerHexH          int32 = 14
	pickerPresetSize    int32 = 12
	pickerPresetGap     int32 = 2
	pickerMaxPresets          = 10
	pickerDragSlack     int32 = 5
	pickerHexMaxLen           = 9
	pickerSVCell        int32 = 5
)

func NewColorPicker(opts ColorPickerOptions) *ColorPicker {
	presets := opts.Presets
	if len(presets) > pickerMaxPresets {
		presets = presets[:pickerMaxPresets]
	}
	cp := &ColorPicker{
		optionRow: newOptionRow(rowOptions{
			label:           opts.Label,
			description:     opts.Description,
			requiresRestart: opts.RequiresRestart,
			labelRatio:      opts.LabelRatio,
		}),
		allowAlpha: opts.AllowAlpha,
		presets:    append([]theme.Color(nil), presets...),
		onChange:   opts.OnChange,
	}
	cp.def = cp.normalize(opts.Default)
	cp.binding = opts.Binding.orLocal(cp.def)
	cp.syncHSV()
	return cp
}

func (cp *ColorPicker) Kind() Kind { return KindColorPicker }

// Value returns the bound color.
func (cp *ColorPicker) Value() theme.Color { return cp.binding.Get() }

func (cp *ColorPicker) normalize(c theme.Color) theme.Color {
	if cp.allowAlpha {
		return c
	}
	return c.Opaque()
}

// SetValue writes c, forced opaque unless alpha editing is allowed.
func (cp *ColorPicker) SetValue(c theme.Color) {
	c = cp.normalize(c)
	if c == cp.binding.Get() {
		return
	}
	cp.binding.Set(c)
	cp.changed()
	if cp.onChange != nil {
		cp.onChange(c)
	}
}

func (cp *ColorPicker) ResetToDefault() {
	cp.binding.Set(cp.def)
	cp.modified = false
	cp.syncHSV()
}

// syncHSV loads the HSV state from the bound color. Hue is kept for grays so
// dragging saturation back up returns to the previous hue.
func (cp *ColorPicker) syncHSV() {
	h, s, v := cp.binding.Get().HSV()
	if s > 0 && v > 0 {
		cp.hue = h
	}
	cp.sat, cp.val = s, v
}

func (cp *ColorPicker) applyHSV() {
	alpha := uint8(0xFF)
	if cp.allowAlpha {
		alpha = cp.binding.Get().A()
	}
	cp.SetValue(theme.FromHSV(cp.hue, cp.sat, cp.val, alpha))
}

// EditingHex reports whether the hex field has keyboard focus.
func (cp *ColorPicker) EditingHex() bool { return cp.editingHex }

// HexText is the hex field's current text.
func (cp *ColorPicker) HexText() string { return cp.hexText }

// SwatchRect is the color sample shown in the row.
func (cp *ColorPicker) SwatchRect() Rect {
	cr := cp.ControlRegion()
	size := pickerSwatch
	if cp.theme().Vanilla {
		size = pickerSwatchVanilla
	}
	return Rect{X: cr.X, Y: cp.bounds.CenterY() - size/2, W: size, H: size}
}

// PopupRect is the popup area, below the row or flipped above it near the
// bottom of the screen.
func (cp *ColorPicker) PopupRect() Rect {
	b := cp.bounds
	y := b.Bottom() + pickerPopupGap
	if y+pickerPopupH > cp.context().ScreenH-constants.FlipMargin {
		y = b.Y - pickerPopupH - pickerPopupGap
	}
	return Rect{X: cp.ControlRegion().X, Y: y, W: pickerPopupW, H: pickerPopupH}
}

func (cp *ColorPicker) svRect() Rect {
	pr := cp.PopupRect()
	return Rect{X: pr.X + pickerInset, Y: pr.Y + pickerInset, W: pickerSVW, H: pickerSVH}
}

func (cp *ColorPicker) hueRect() Rect {
	sv := cp.svRect()
	return Rect{X: sv.X + pickerHueOffset, Y: sv.Y, W: pickerHueW, H: pickerSVH}
}

func (cp *ColorPicker) hexRect() Rect {
	sv := cp.svRect()
	return Rect{X: sv.X, Y: sv.Y + pickerHexOffset, W: pickerHexW, H: pickerHexH}
}

func (cp *ColorPicker) presetRect(i int) Rect {
	pr := cp.PopupRect()
	return Rect{
		X: pr.X + pickerInset + int32(i)*(pickerPresetSize+pickerPresetGap),
		Y: pr.Y + pickerPopupH - pickerPresetSize - pickerPresetGap,
		W: pickerPresetSize,
		H: pickerPresetSize,
	}
}

func (cp *ColorPicker) setSV(p Point) {
	sv := cp.svRect()
	cp.sat = internal.Clamp(float64(p.X-sv.X)/float64(sv.W), 0, 1)
	cp.val = internal.Clamp(1-float64(p.Y-sv.Y)/float64(sv.H), 0, 1)
	cp.applyHSV()
}

func (cp *ColorPicker) setHue(p Point) {
	hr := cp.hueRect()
	cp.hue = internal.Clamp(float64(p.Y-hr.Y)/float64(hr.H)*360, 0, 360)
	cp.applyHSV()
}

func (cp *ColorPicker) open() {
	cp.syncHSV()
	cp.expand()
	logger().Debug("color picker opened", "label", cp.label)
}

func (cp *ColorPicker) CloseExpanded() {
	cp.editingHex = false
	cp.drag = pickerDragNone
	cp.collapse()
}

func (cp *ColorPicker) SetFocused(f bool) {
	cp.focused = f
	if !f && cp.IsExpanded() {
		cp.CloseExpanded()
	}
}

func (cp *ColorPicker) Render(c Canvas, p Point, _ time.Duration) {
	if !cp.beginRender(p) {
		return
	}
	cp.renderRow(c)

	th := cp.theme()
	sw := cp.SwatchRect()
	value := cp.binding.Get()

	c.FillRect(sw, value)
	border := th.ButtonBorder
	if cp.focused {
		border = th.InputBorderFocused
	}
	c.StrokeRect(sw, border)
	c.DrawText(value.Hex(), sw.Right()+pickerTextGap, cp.lineY(c), cp.textColor())
}

func (cp *ColorPicker) RenderOverlay(c Canvas, _ Point, _ time.Duration) {
	if !cp.Visible() || !cp.IsExpanded() {
		return
	}

	th := cp.theme()
	pr := cp.PopupRect()
	c.FillRect(pr, th.Background.Opaque())
	c.StrokeRect(pr, th.TooltipBorder)

	sv := cp.svRect()
	for y := int32(0); y < sv.H; y += pickerSVCell {
		for x := int32(0); x < sv.W; x += pickerSVCell {
			s := float64(x) / float64(sv.W)
			v := 1 - float64(y)/float64(sv.H)
			c.FillRect(Rect{X: sv.X + x, Y: sv.Y + y, W: pickerSVCell, H: pickerSVCell}, theme.FromHSV(cp.hue, s, v, 0xFF))
		}
	}
	markX := sv.X + int32(cp.sat*float64(sv.W))
	markY := sv.Y + int32((1-cp.val)*float64(sv.H))
	c.StrokeRect(Rect{X: markX - 2, Y: markY - 2, W: 5, H: 5}, theme.White)

	hr := cp.hueRect()
	for y := int32(0); y < hr.H; y += pickerSVCell {
		h := float64(y) / float64(hr.H) * 360
		c.FillRect(Rect{X: hr.X, Y: hr.Y + y, W: hr.W, H: pickerSVCell}, theme.FromHSV(h, 1, 1, 0xFF))
	}
	hueY := hr.Y + int32(cp.hue/360*float64(hr.H))
	c.FillRect(Rect{X: hr.X - 1, Y: hueY, W: hr.W + 2, H: 1}, theme.White)

	hex := cp.hexRect()
	c.FillRect(hex, th.InputBackground)
	hexBorder := th.InputBorder
	text := cp.binding.Get().Hex()
	if cp.editingHex {
		hexBorder = th.InputBorderFocused
		text = cp.hexText
	}
	c.StrokeRect(hex, hexBorder)
	c.DrawText(text, hex.X+2, textY(c, hex), th.TextPrimary)
	if cp.editingHex {
		cursorX := hex.X + 2 + c.TextWidth(cp.hexText[:cp.hexCursor])
		c.FillRect(Rect{X: cursorX, Y: hex.Y + 2, W: 1, H: hex.H - 4}, th.TextPrimary)
	}

	for i, preset := range cp.presets {
		r := cp.presetRect(i)
		c.FillRect(r, preset)
		c.StrokeRect(r, th.ButtonBorder)
	}
}

func (cp *ColorPicker) HandlePointerDown(p Point, button constants.MouseButton) bool {
	if !cp.interactive() || button != constants.MouseButtonLeft || !cp.contains(p) {
		return false
	}
	cp.focused = true
	if !cp.ControlRegion().Contains(p) {
		return true
	}
	if cp.IsExpanded() {
		return false
	}
	cp.open()
	return true
}

func (cp *ColorPicker) HandleExpandedClick(p Point, button constants.MouseButton) bool {
	if !cp.interactive() || !cp.IsExpanded() || button != constants.MouseButtonLeft {
		return false
	}
	if !cp.PopupRect().Contains(p) {
		return false
	}

	if cp.hexRect().Contains(p) {
		cp.editingHex = true
		cp.hexText = cp.binding.Get().Hex()
		cp.hexCursor = len(cp.hexText)
		return true
	}
	cp.editingHex = false

	switch {
	case cp.svRect().Contains(p):
		cp.drag = pickerDragSV
		cp.setSV(p)
	case cp.hueRect().Contains(p):
		cp.drag = pickerDragHue
		cp.setHue(p)
	default:
		for i, preset := range cp.presets {
			if cp.presetRect(i).Contains(p) {
				cp.SetValue(preset)
				cp.syncHSV()
				break
			}
		}
	}
	return true
}

func (cp *ColorPicker) HandlePointerDrag(p Point, _ constants.MouseButton, _, _ int32) bool {
	if !cp.interactive() {
		cp.drag = pickerDragNone
		return false
	}
	switch cp.drag {
	case pickerDragSV:
		if cp.svRect().Grow(pickerDragSlack).Contains(p) {
			cp.setSV(p)
		}
		return true
	case pickerDragHue:
		if cp.hueRect().Grow(pickerDragSlack).Contains(p) {
			cp.setHue(p)
		}
		return true
	}
	return false
}

func (cp *ColorPicker) HandlePointerUp(Point, constants.MouseButton) bool {
	was := cp.drag != pickerDragNone
	cp.drag = pickerDragNone
	return was
}

func (cp *ColorPicker) HandleKey(key constants.Key, _ constants.Modifier) bool {
	if !cp.interactive() {
		return false
	}
	if cp.editingHex {
		return cp.handleHexKey(key)
	}
	if !cp.focused {
		return false
	}
	switch key {
	case constants.KeyEnter, constants.KeySpace:
		if cp.IsExpanded() {
			cp.CloseExpanded()
		} else {
			cp.open()
		}
		return true
	case constants.KeyEscape:
		if cp.IsExpanded() {
			cp.CloseExpanded()
			return true
		}
	}
	return false
}

func (cp *ColorPicker) handleHexKey(key constants.Key) bool {
	switch key {
	case constants.KeyEnter:
		cp.commitHex()
	case constants.KeyEscape:
		cp.editingHex = false
	case constants.KeyBackspace:
		if cp.hexCursor > 0 {
			cp.hexText = cp.hexText[:cp.hexCursor-1] + cp.hexText[cp.hexCursor:]
			cp.hexCursor--
		}
	case constants.KeyDelete:
		if cp.hexCursor < len(cp.hexText) {
			cp.hexText = cp.hexText[:cp.hexCursor] + cp.hexText[cp.hexCursor+1:]
		}
	case constants.KeyLeft:
		cp.hexCursor = max(0, cp.hexCursor-1)
	case constants.KeyRight:
		cp.hexCursor = min(len(cp.hexText), cp.hexCursor+1)
	case constants.KeyHome:
		cp.hexCursor = 0
	case constants.KeyEnd:
		cp.hexCursor = len(cp.hexText)
	}
	return true
}

// commitHex applies the hex text. Text that does not parse leaves the color unchanged.
func (cp *ColorPicker) commitHex() {
	cp.editingHex = false
	c, err := theme.ParseHex(cp.hexText)
	if err != nil {
		logger().Debug("ignoring invalid hex", "label", cp.label, "text", cp.hexText)
		return
	}
	cp.SetValue(c)
	cp.syncHSV()
}

func (cp *ColorPicker) HandleChar(r rune) bool {
	if !cp.editingHex {
		return false
	}
	if len(cp.hexText) >= pickerHexMaxLen || !strings.ContainsRune("0123456789abcdefABCDEF#", r) {
		return true
	}
	cp.hexText = cp.hexText[:cp.hexCursor] + string(r) + cp.hexText[cp.hexCursor:]
	cp.hexCursor++
	return true
}
