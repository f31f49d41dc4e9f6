package confkit

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
)

// DropdownOptions configures a choice among a fixed list of values.
type DropdownOptions[T comparable] struct {
	Label           string
	Description     string
	Values          []T
	Default         T
	Binding         Binding[T]
	Names           func(T) string // Display text per value; default DisplayName
	RequiresRestart bool
	LabelRatio      int
	OnChange        func(T)
}

// DisplayName turns a value into menu text: "FULL_SCREEN" becomes "Full screen".
func DisplayName(v any) string {
	s := strings.ReplaceAll(fmt.Sprint(v), "_", " ")
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// Dropdown shows the selected value on a button that opens a menu of all
// values. The menu opens downward unless it would run off the bottom of
// the screen, in which case it opens upward.
type Dropdown[T comparable] struct {
	optionRow

	values   []T
	names    func(T) string
	binding  Binding[T]
	def      T
	onChange func(T)

	highlighted int
}

const (
	dropdownButtonH        int32 = 16
	dropdownItemH          int32 = 14
	dropdownVanillaButtonH int32 = 20
	dropdownVanillaItemH   int32 = 20
)

func NewDropdown[T comparable](opts DropdownOptions[T]) *Dropdown[T] {
	names := opts.Names
	if names == nil {
		names = func(v T) string { return DisplayName(v) }
	}
	d := &Dropdown[T]{
		optionRow: newOptionRow(rowOptions{
			label:           opts.Label,
			description:     opts.Description,
			requiresRestart: opts.RequiresRestart,
			labelRatio:      opts.LabelRatio,
		}),
		values:   append([]T(nil), opts.Values...),
		names:    names,
		binding:  opts.Binding.orLocal(opts.Default),
		def:      opts.Default,
		onChange: opts.OnChange,
	}
	d.highlighted = d.SelectedIndex()
	return d
}

func (d *Dropdown[T]) Kind() Kind { return KindDropdown }

// Values returns the choices in menu order.
func (d *Dropdown[T]) Values() []T { return d.values }

// Value returns the bound value.
func (d *Dropdown[T]) Value() T { return d.binding.Get() }

// SelectedIndex is the menu position of the bound value, or -1 when the
// bound value is not among Values.
func (d *Dropdown[T]) SelectedIndex() int {
	current := d.binding.Get()
	for i, v := range d.values {
		if v == current {
			return i
		}
	}
	return -1
}

// Highlighted is the menu item keyboard selection would pick.
func (d *Dropdown[T]) Highlighted() int { return d.highlighted }

func (d *Dropdown[T]) SetValue(v T) {
	if v == d.binding.Get() {
		return
	}
	d.binding.Set(v)
	d.changed()
	if d.onChange != nil {
		d.onChange(v)
	}
}

func (d *Dropdown[T]) selectIndex(i int) {
	if i < 0 || i >= len(d.values) {
		return
	}
	d.highlighted = i
	d.SetValue(d.values[i])
}

func (d *Dropdown[T]) ResetToDefault() {
	d.binding.Set(d.def)
	d.modified = false
	d.highlighted = d.SelectedIndex()
}

func (d *Dropdown[T]) metrics() (buttonH, itemH int32) {
	if d.theme().Vanilla {
		return dropdownVanillaButtonH, dropdownVanillaItemH
	}
	return dropdownButtonH, dropdownItemH
}

// ButtonRect is the clickable area showing the current value.
func (d *Dropdown[T]) ButtonRect() Rect {
	cr := d.ControlRegion()
	h, _ := d.metrics()
	return Rect{X: cr.X, Y: d.bounds.CenterY() - h/2, W: max(0, cr.W-constants.ControlGutter), H: h}
}

// Flipped reports whether the menu opens above the button.
func (d *Dropdown[T]) Flipped() bool {
	b := d.ButtonRect()
	_, itemH := d.metrics()
	return b.Bottom()+int32(len(d.values))*itemH > d.context().ScreenH-constants.FlipMargin
}

// MenuRect is the area of the open menu.
func (d *Dropdown[T]) MenuRect() Rect {
	b := d.ButtonRect()
	_, itemH := d.metrics()
	h := int32(len(d.values)) * itemH
	if d.Flipped() {
		return Rect{X: b.X, Y: b.Y - h, W: b.W, H: h}
	}
	return Rect{X: b.X, Y: b.Bottom(), W: b.W, H: h}
}

func (d *Dropdown[T]) itemAt(p Point) int {
	menu := d.MenuRect()
	if !menu.Contains(p) {
		return -1
	}
	_, itemH := d.metrics()
	i := int((p.Y - menu.Y) / itemH)
	if i >= len(d.values) {
		return -1
	}
	return i
}

func (d *Dropdown[T]) open() {
	if len(d.values) == 0 {
		return
	}
	d.highlighted = max(0, d.SelectedIndex())
	d.expand()
	logger().Debug("dropdown opened", "label", d.label, "flipped", d.Flipped())
}

func (d *Dropdown[T]) CloseExpanded() {
	d.collapse()
}

// SetFocused closes the menu when focus moves elsewhere.
func (d *Dropdown[T]) SetFocused(f bool) {
	d.focused = f
	if !f && d.IsExpanded() {
		d.CloseExpanded()
	}
}

func (d *Dropdown[T]) currentText() string {
	i := d.SelectedIndex()
	if i < 0 {
		return constants.NoValue
	}
	return d.names(d.values[i])
}

func (d *Dropdown[T]) Render(c Canvas, p Point, _ time.Duration) {
	if !d.beginRender(p) {
		return
	}
	d.renderRow(c)

	th := d.theme()
	b := d.ButtonRect()

	bg := th.ButtonBackground
	if b.Contains(p) || d.IsExpanded() {
		bg = th.ButtonBackgroundHover
	}
	c.FillRect(b, bg)
	border := th.ButtonBorder
	if d.focused {
		border = th.InputBorderFocused
	}
	c.StrokeRect(b, border)

	arrow := constants.ArrowDown
	if d.IsExpanded() && d.Flipped() {
		arrow = constants.ArrowUp
	}
	arrowW := c.TextWidth(arrow)
	text := Ellipsize(c, d.currentText(), b.W-arrowW-12)
	c.DrawText(text, b.X+4, textY(c, b), d.textColor())
	c.DrawText(arrow, b.Right()-arrowW-4, textY(c, b), th.TextSecondary)
}

func (d *Dropdown[T]) RenderOverlay(c Canvas, p Point, _ time.Duration) {
	if !d.Visible() || !d.IsExpanded() {
		return
	}

	th := d.theme()
	menu := d.MenuRect()
	_, itemH := d.metrics()

	if hover := d.itemAt(p); hover >= 0 {
		d.highlighted = hover
	}

	c.FillRect(menu, th.BackgroundSecondary)
	selected := d.SelectedIndex()
	for i, v := range d.values {
		item := Rect{X: menu.X, Y: menu.Y + int32(i)*itemH, W: menu.W, H: itemH}
		color := th.TextPrimary
		switch {
		case i == d.highlighted:
			c.FillRect(item, th.AccentPrimary)
		case i == selected:
			color = th.AccentPrimary
		}
		c.DrawText(Ellipsize(c, d.names(v), item.W-8), item.X+4, textY(c, item), color)
	}
	c.StrokeRect(menu, th.ButtonBorder)
}

func (d *Dropdown[T]) HandlePointerDown(p Point, button constants.MouseButton) bool {
	if !d.interactive() || button != constants.MouseButtonLeft || !d.contains(p) {
		return false
	}
	d.focused = true
	if !d.ButtonRect().Contains(p) {
		return true
	}
	if d.IsExpanded() {
		// The owning list closes the menu.
		return false
	}
	d.open()
	return true
}

func (d *Dropdown[T]) HandleExpandedClick(p Point, button constants.MouseButton) bool {
	if !d.interactive() || !d.IsExpanded() || button != constants.MouseButtonLeft {
		return false
	}
	i := d.itemAt(p)
	if i < 0 {
		return false
	}
	d.selectIndex(i)
	d.CloseExpanded()
	return true
}

func (d *Dropdown[T]) HandleKey(key constants.Key, _ constants.Modifier) bool {
	if !d.focused || !d.interactive() || len(d.values) == 0 {
		return false
	}

	if d.IsExpanded() {
		switch key {
		case constants.KeyUp:
			d.highlighted = max(0, d.highlighted-1)
			return true
		case constants.KeyDown:
			d.highlighted = min(len(d.values)-1, d.highlighted+1)
			return true
		case constants.KeyEnter, constants.KeySpace:
			d.selectIndex(d.highlighted)
			d.CloseExpanded()
			return true
		case constants.KeyEscape:
			d.CloseExpanded()
			return true
		}
		return false
	}

	n := len(d.values)
	switch key {
	case constants.KeyLeft:
		d.selectIndex((max(0, d.SelectedIndex()) - 1 + n) % n)
		return true
	case constants.KeyRight:
		d.selectIndex((d.SelectedIndex() + 1) % n)
		return true
	case constants.KeyEnter, constants.KeySpace:
		d.open()
		return true
	}
	return false
}
