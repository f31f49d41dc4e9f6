package confkit

import (
	"time"

	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
)

// LabelStyle selects how a Label row is drawn.
type LabelStyle int

const (
	LabelStyleNormal LabelStyle = iota
	LabelStyleHeader            // Accent colored, underlined in the flat style
	LabelStyleMuted             // Secondary text color
)

// Label is a non-interactive text row, used for section headers and notes.
type Label struct {
	optionRow
	style LabelStyle
}

func NewLabel(text string, style LabelStyle) *Label {
	return &Label{
		optionRow: newOptionRow(rowOptions{label: text}),
		style:     style,
	}
}

func (l *Label) Kind() Kind        { return KindLabel }
func (l *Label) Style() LabelStyle { return l.style }
func (l *Label) ResetToDefault()   {}
func (l *Label) SetModified(bool)  {}
func (l *Label) SetText(s string)  { l.label = s }

func (l *Label) Render(c Canvas, p Point, _ time.Duration) {
	if !l.beginRender(p) {
		return
	}
	th := l.theme()
	b := l.bounds

	color := th.TextPrimary
	switch l.style {
	case LabelStyleHeader:
		color = th.AccentPrimary
	case LabelStyleMuted:
		color = th.TextSecondary
	}

	text := Ellipsize(c, l.label, b.W-8)
	c.DrawText(text, b.X+4, textY(c, b), color)

	if l.style == LabelStyleHeader && !th.Vanilla {
		c.FillRect(Rect{X: b.X + 4, Y: b.Bottom() - 1, W: b.W - 8, H: 1}, th.Divider)
	}
}

// HandlePointerDown never consumes; labels are not focusable.
func (l *Label) HandlePointerDown(Point, constants.MouseButton) bool { return false }
