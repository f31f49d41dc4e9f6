package confkit

import (
	"strings"
	"time"
	"unicode"

	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
	"github.com/rivo/uniseg"
)

// DefaultMaxLength caps text fields that set no MaxLength, in grapheme clusters.
const DefaultMaxLength = 256

// TextFieldOptions configures a single-line text option.
type TextFieldOptions struct {
	Label           string
	Description     string
	Default         string
	Binding         Binding[string]
	Placeholder     string // Shown while empty and unfocused
	MaxLength       int    // In grapheme clusters; default 256
	Validator       func(string) error
	RequiresRestart bool
	LabelRatio      int
	OnChange        func(string)
}

// TextField edits a string in place. Every edit is validated; valid text is
// written through the binding immediately, invalid text stays on screen
// with an error border and is not written.
type TextField struct {
	optionRow

	binding     Binding[string]
	def         string
	placeholder string
	maxLength   int
	validator   func(string) error
	onChange    func(string)

	text      string
	cursor    int // Grapheme index
	selectAll bool
	err       error
	blink     time.Duration
	scrollX   int32
}

const (
	textFieldH        int32 = 16
	textFieldVanillaH int32 = 20
	textFieldPad      int32 = 3
)

func NewTextField(opts TextFieldOptions) *TextField {
	maxLen := opts.MaxLength
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}
	f := &TextField{
		optionRow: newOptionRow(rowOptions{
			label:           opts.Label,
			description:     opts.Description,
			requiresRestart: opts.RequiresRestart,
			labelRatio:      opts.LabelRatio,
		}),
		binding:     opts.Binding.orLocal(opts.Default),
		def:         opts.Default,
		placeholder: opts.Placeholder,
		maxLength:   maxLen,
		validator:   opts.Validator,
		onChange:    opts.OnChange,
	}
	f.text = f.binding.Get()
	f.cursor = graphemeCount(f.text)
	return f
}

func (f *TextField) Kind() Kind { return KindTextField }

// Value returns the bound value.
func (f *TextField) Value() string { return f.binding.Get() }

// Text is what the field displays, which differs from Value while invalid.
func (f *TextField) Text() string { return f.text }

// Cursor is the insertion point in grapheme clusters.
func (f *TextField) Cursor() int { return f.cursor }

// Err is the validator's complaint about the displayed text, or nil.
func (f *TextField) Err() error { return f.err }

// Description appends the validation error to the tooltip text.
func (f *TextField) Description() string {
	if f.err == nil {
		return f.description
	}
	if f.description == "" {
		return f.err.Error()
	}
	return f.description + "\n" + f.err.Error()
}

func (f *TextField) ResetToDefault() {
	f.binding.Set(f.def)
	f.text = f.def
	f.cursor = graphemeCount(f.text)
	f.err = nil
	f.selectAll = false
	f.modified = false
}

// SetFocused starts or ends editing. Gaining focus reloads the bound value
// unless invalid text is pending.
func (f *TextField) SetFocused(focused bool) {
	if focused && !f.focused {
		if f.err == nil {
			f.text = f.binding.Get()
		}
		f.cursor = graphemeCount(f.text)
		f.blink = 0
	}
	if !focused {
		f.selectAll = false
	}
	f.focused = focused
}

func graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

func graphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// edit replaces the text, validates it and writes it through when valid.
func (f *TextField) edit(text string, cursor int) {
	f.text = text
	f.cursor = max(0, min(cursor, graphemeCount(text)))
	f.selectAll = false
	f.blink = 0

	if f.validator != nil {
		if err := f.validator(text); err != nil {
			f.err = err
			return
		}
	}
	f.err = nil

	if text == f.binding.Get() {
		return
	}
	f.binding.Set(text)
	f.changed()
	if f.onChange != nil {
		f.onChange(text)
	}
}

// insert puts s at the cursor, dropping control characters and anything
// past the length limit.
func (f *TextField) insert(s string) {
	var clean strings.Builder
	for _, r := range s {
		if !unicode.IsControl(r) {
			clean.WriteRune(r)
		}
	}

	gs := graphemes(f.text)
	cursor := f.cursor
	if f.selectAll {
		gs, cursor = nil, 0
	}

	room := f.maxLength - len(gs)
	add := graphemes(clean.String())
	if len(add) > room {
		add = add[:max(0, room)]
	}
	if len(add) == 0 && !f.selectAll {
		return
	}

	text := strings.Join(gs[:cursor], "") + strings.Join(add, "") + strings.Join(gs[cursor:], "")
	f.edit(text, cursor+len(add))
}

// FieldRect is the input box inside the control region.
func (f *TextField) FieldRect() Rect {
	cr := f.ControlRegion()
	h := textFieldH
	if f.theme().Vanilla {
		h = textFieldVanillaH
	}
	return Rect{X: cr.X, Y: f.bounds.CenterY() - h/2, W: max(0, cr.W-constants.ControlGutter), H: h}
}

// cursorAt returns the grapheme boundary nearest to x.
func (f *TextField) cursorAt(m TextMetrics, x int32) int {
	field := f.FieldRect()
	rel := x - (field.X + textFieldPad - f.scrollX)

	best, bestDist := 0, abs32(rel)
	var prefix strings.Builder
	for i, g := range graphemes(f.text) {
		prefix.WriteString(g)
		if d := abs32(rel - m.TextWidth(prefix.String())); d < bestDist {
			best, bestDist = i+1, d
		}
	}
	return best
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func (f *TextField) Render(c Canvas, p Point, dt time.Duration) {
	if !f.beginRender(p) {
		return
	}
	if !f.focused && f.err == nil {
		f.text = f.binding.Get()
	}
	f.cursor = min(f.cursor, graphemeCount(f.text))
	f.blink += dt
	f.renderRow(c)

	th := f.theme()
	field := f.FieldRect()
	c.FillRect(field, th.InputBackground)

	border := th.InputBorder
	switch {
	case f.err != nil:
		border = th.InputError
	case f.focused:
		border = th.InputBorderFocused
	}
	c.StrokeRect(field, border)

	inner := Rect{X: field.X + textFieldPad, Y: field.Y, W: max(0, field.W-2*textFieldPad), H: field.H}
	prefixW := c.TextWidth(strings.Join(graphemes(f.text)[:f.cursor], ""))
	switch {
	case prefixW-f.scrollX > inner.W:
		f.scrollX = prefixW - inner.W
	case prefixW < f.scrollX:
		f.scrollX = prefixW
	}
	if !f.focused {
		f.scrollX = 0
	}

	c.PushClip(inner)
	defer c.PopClip()

	if f.text == "" && !f.focused {
		c.DrawText(f.placeholder, inner.X, textY(c, inner), th.TextDisabled)
		return
	}

	textX := inner.X - f.scrollX
	if f.selectAll && f.text != "" {
		c.FillRect(Rect{X: textX, Y: inner.Y + 2, W: c.TextWidth(f.text), H: inner.H - 4}, th.AccentSecondary)
	}
	c.DrawText(f.text, textX, textY(c, inner), f.textColor())

	if f.focused && (f.blink/constants.CursorBlink)%2 == 0 {
		c.FillRect(Rect{X: textX + prefixW, Y: inner.Y + 2, W: 1, H: inner.H - 4}, th.TextPrimary)
	}
}

func (f *TextField) HandlePointerDown(p Point, button constants.MouseButton) bool {
	if !f.interactive() || button != constants.MouseButtonLeft || !f.contains(p) {
		return false
	}
	f.SetFocused(true)
	if f.FieldRect().Contains(p) {
		f.cursor = f.cursorAt(f.context().Metrics, p.X)
		f.selectAll = false
	}
	return true
}

func (f *TextField) HandleKey(key constants.Key, mods constants.Modifier) bool {
	if !f.interactive() || !f.focused {
		return false
	}

	n := graphemeCount(f.text)
	if mods.Has(constants.ModCtrl) {
		switch key {
		case constants.KeyA:
			f.selectAll = true
			return true
		case constants.KeyC:
			f.context().Clipboard.Set(f.text)
			return true
		case constants.KeyV:
			f.insert(f.context().Clipboard.Get())
			return true
		}
	}

	switch key {
	case constants.KeyBackspace:
		if f.selectAll {
			f.edit("", 0)
		} else if f.cursor > 0 {
			gs := graphemes(f.text)
			f.edit(strings.Join(gs[:f.cursor-1], "")+strings.Join(gs[f.cursor:], ""), f.cursor-1)
		}
	case constants.KeyDelete:
		if f.selectAll {
			f.edit("", 0)
		} else if f.cursor < n {
			gs := graphemes(f.text)
			f.edit(strings.Join(gs[:f.cursor], "")+strings.Join(gs[f.cursor+1:], ""), f.cursor)
		}
	case constants.KeyLeft:
		f.cursor = max(0, f.cursor-1)
		f.selectAll = false
	case constants.KeyRight:
		f.cursor = min(n, f.cursor+1)
		f.selectAll = false
	case constants.KeyHome:
		f.cursor = 0
		f.selectAll = false
	case constants.KeyEnd:
		f.cursor = n
		f.selectAll = false
	case constants.KeyEnter, constants.KeyEscape:
		f.SetFocused(false)
	default:
		return false
	}
	f.blink = 0
	return true
}

func (f *TextField) HandleChar(r rune) bool {
	if !f.interactive() || !f.focused {
		return false
	}
	if unicode.IsControl(r) {
		return true
	}
	f.insert(string(r))
	return true
}
