package confkit

import (
	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
	"github.com/BrandonKowalski/confkit/pkg/confkit/theme"
	"go.uber.org/atomic"
)

// Kind identifies a concrete option control.
type Kind int

const (
	KindToggle Kind = iota
	KindSlider
	KindDropdown
	KindColorPicker
	KindTextField
	KindLabel
	KindSeparator
)

func (k Kind) String() string {
	switch k {
	case KindToggle:
		return "toggle"
	case KindSlider:
		return "slider"
	case KindDropdown:
		return "dropdown"
	case KindColorPicker:
		return "color_picker"
	case KindTextField:
		return "text_field"
	case KindLabel:
		return "label"
	case KindSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// OptionControl is one row of an option list. The set of implementations is
// closed: use the constructors in this package.
type OptionControl interface {
	Widget

	Kind() Kind
	Label() string
	Description() string

	// IsModified latches true on the first value change and stays set until
	// SetModified(false) or ResetToDefault.
	IsModified() bool
	SetModified(m bool)
	RequiresRestart() bool
	// ResetToDefault writes the default through the binding and clears the modified flag.
	ResetToDefault()

	LabelRegion() Rect
	ControlRegion() Rect

	// IsExpanded reports whether the control shows an overlay (menu, popup).
	IsExpanded() bool
	CloseExpanded()
	// HandleExpandedClick hit-tests the overlay, which may extend past the row.
	HandleExpandedClick(p Point, button constants.MouseButton) bool

	// SetVisibleWhen ties the row's visibility to a flag another option may flip.
	SetVisibleWhen(flag *atomic.Bool)

	attach(host expansionHost, ctx *Context, index int)
}

// expansionHost is the list a row lives in. It owns the single expanded index.
type expansionHost interface {
	expandedIndex() int
	requestExpand(index int)
	releaseExpand(index int)
}

// rowOptions are the fields every control's options share.
type rowOptions struct {
	label           string
	description     string
	requiresRestart bool
	labelRatio      int
}

// optionRow implements the OptionControl plumbing and draws the row chrome:
// hover fill, label, modified marker and restart glyph.
type optionRow struct {
	BaseWidget

	ctx   *Context
	host  expansionHost
	index int

	label           string
	description     string
	requiresRestart bool
	labelRatio      int
	modified        bool

	visibleWhen *atomic.Bool
	// expanded stands in for the host when the control is used outside a list.
	expanded bool
}

func newOptionRow(o rowOptions) optionRow {
	ratio := o.labelRatio
	if ratio <= 0 || ratio >= 100 {
		ratio = constants.LabelRatio
	}
	return optionRow{
		label:           o.label,
		description:     o.description,
		requiresRestart: o.requiresRestart,
		labelRatio:      ratio,
		index:           -1,
	}
}

func (r *optionRow) attach(host expansionHost, ctx *Context, index int) {
	r.host = host
	r.ctx = ctx
	r.index = index
}

func (r *optionRow) context() *Context {
	if r.ctx == nil {
		return fallbackContext
	}
	return r.ctx
}

func (r *optionRow) theme() *theme.Theme {
	return r.context().Theme
}

func (r *optionRow) Label() string         { return r.label }
func (r *optionRow) Description() string   { return r.description }
func (r *optionRow) IsModified() bool      { return r.modified }
func (r *optionRow) SetModified(m bool)    { r.modified = m }
func (r *optionRow) RequiresRestart() bool { return r.requiresRestart }

func (r *optionRow) SetVisibleWhen(flag *atomic.Bool) {
	r.visibleWhen = flag
}

// Visible combines the explicit visibility with the VisibleWhen flag.
func (r *optionRow) Visible() bool {
	if r.hidden {
		return false
	}
	return r.visibleWhen == nil || r.visibleWhen.Load()
}

func (r *optionRow) interactive() bool {
	return r.Visible() && r.Enabled()
}

func (r *optionRow) beginRender(p Point) bool {
	if !r.Visible() {
		r.hovered = false
		return false
	}
	r.hovered = r.bounds.Contains(p)
	return true
}

// LabelRegion is the left share of the row.
func (r *optionRow) LabelRegion() Rect {
	b := r.bounds
	return Rect{X: b.X, Y: b.Y, W: b.W * int32(r.labelRatio) / 100, H: b.H}
}

// ControlRegion is the rest of the row after the label and the gutter.
func (r *optionRow) ControlRegion() Rect {
	b := r.bounds
	labelW := b.W * int32(r.labelRatio) / 100
	return Rect{
		X: b.X + labelW + constants.ControlGutter,
		Y: b.Y,
		W: max(0, b.W-labelW-constants.ControlGutter),
		H: b.H,
	}
}

func (r *optionRow) IsExpanded() bool {
	if r.host == nil {
		return r.expanded
	}
	return r.host.expandedIndex() == r.index
}

func (r *optionRow) CloseExpanded() {
	r.collapse()
}

func (r *optionRow) HandleExpandedClick(Point, constants.MouseButton) bool {
	return false
}

func (r *optionRow) expand() {
	if r.host == nil {
		r.expanded = true
		return
	}
	r.host.requestExpand(r.index)
}

func (r *optionRow) collapse() {
	if r.host == nil {
		r.expanded = false
		return
	}
	r.host.releaseExpand(r.index)
}

// changed latches the modified flag after a value write.
func (r *optionRow) changed() {
	if !r.modified {
		logger().Debug("option modified", "label", r.label)
	}
	r.modified = true
}

// renderRow draws the row background and label. Controls draw their value
// into ControlRegion afterwards.
func (r *optionRow) renderRow(c Canvas) {
	t := r.theme()
	b := r.bounds

	if r.hovered && r.Enabled() {
		c.FillRect(b, t.RowHover())
	}
	if r.focused {
		c.StrokeRect(b, t.AccentPrimary)
	}

	labelColor := t.TextPrimary
	if !r.Enabled() {
		labelColor = t.TextDisabled
	}

	labelX := b.X + 4
	if r.modified {
		c.DrawText(constants.ModifiedMarker, b.X+2, textY(c, b), t.AccentPrimary)
		labelX = b.X + 12
	}

	lr := r.LabelRegion()
	label := Ellipsize(c, r.label, lr.Right()-labelX)
	c.DrawText(label, labelX, textY(c, b), labelColor)

	if r.requiresRestart {
		c.DrawText(constants.RestartWarning, b.Right()-12, textY(c, b), t.Warning)
	}
}

// Render-time helpers shared by the concrete controls.

func (r *optionRow) lineY(c Canvas) int32 {
	return textY(c, r.bounds)
}

func (r *optionRow) textColor() theme.Color {
	if !r.Enabled() {
		return r.theme().TextDisabled
	}
	return r.theme().TextPrimary
}

var (
	_ OptionControl = (*Toggle)(nil)
	_ OptionControl = (*Slider)(nil)
	_ OptionControl = (*Dropdown[string])(nil)
	_ OptionControl = (*ColorPicker)(nil)
	_ OptionControl = (*TextField)(nil)
	_ OptionControl = (*Label)(nil)
	_ OptionControl = (*Separator)(nil)

	_ Widget = (*OptionList)(nil)
	_ Widget = (*CategoryList)(nil)
	_ Widget = (*Button)(nil)
	_ Widget = (*Confirmation)(nil)
)
