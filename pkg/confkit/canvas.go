package confkit

import (
	"strings"

	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
	"github.com/BrandonKowalski/confkit/pkg/confkit/locale"
	"github.com/BrandonKowalski/confkit/pkg/confkit/theme"
	"github.com/rivo/uniseg"
)

// TextMetrics measures text in the font the canvas draws with.
type TextMetrics interface {
	TextWidth(s string) int32
	LineHeight() int32
}

// Canvas is the drawing surface widgets render to. Clip rectangles nest:
// PushClip intersects with the current clip and PopClip restores the previous one.
type Canvas interface {
	TextMetrics
	FillRect(r Rect, c theme.Color)
	StrokeRect(r Rect, c theme.Color)
	DrawText(s string, x, y int32, c theme.Color)
	DrawIcon(icon Icon, r Rect)
	PushClip(r Rect)
	PopClip()
}

// Icon is an SVG image drawn scaled to its destination rectangle. Hosts
// cache rasterized icons by Name.
type Icon struct {
	Name string
	SVG  []byte
}

// FixedMetrics measures every grapheme cluster as one fixed-width cell.
type FixedMetrics struct {
	CharWidth int32
	Height    int32
}

func (m FixedMetrics) TextWidth(s string) int32 {
	return int32(uniseg.GraphemeClusterCount(s)) * m.CharWidth
}

func (m FixedMetrics) LineHeight() int32 {
	return m.Height
}

// Clipboard is the system clipboard as seen by text fields.
type Clipboard interface {
	Get() string
	Set(text string)
}

// MemoryClipboard is a process-local clipboard for hosts without one.
type MemoryClipboard struct {
	text string
}

func (c *MemoryClipboard) Get() string     { return c.text }
func (c *MemoryClipboard) Set(text string) { c.text = text }

// Translator resolves message IDs to display text. *locale.Translator implements it.
type Translator interface {
	T(id string) string
}

// Context is the state every widget of a screen shares: palette, text
// metrics, clipboard, translator and the screen size overlays flip against.
type Context struct {
	Theme      *theme.Theme
	Metrics    TextMetrics
	Clipboard  Clipboard
	Translator Translator
	ScreenW    int32
	ScreenH    int32
}

// NewContext returns a context with the modern palette, a 6x9 fixed-width
// font and an 854x480 screen. Callers replace what their host provides.
func NewContext() *Context {
	t := theme.Modern()
	return &Context{
		Theme:      &t,
		Metrics:    FixedMetrics{CharWidth: 6, Height: 9},
		Clipboard:  &MemoryClipboard{},
		Translator: locale.Default(),
		ScreenW:    854,
		ScreenH:    480,
	}
}

var fallbackContext = NewContext()

// withDefaults fills unset fields from NewContext.
func (c *Context) withDefaults() *Context {
	if c == nil {
		return fallbackContext
	}
	if c.Theme == nil {
		c.Theme = fallbackContext.Theme
	}
	if c.Metrics == nil {
		c.Metrics = fallbackContext.Metrics
	}
	if c.Clipboard == nil {
		c.Clipboard = &MemoryClipboard{}
	}
	if c.Translator == nil {
		c.Translator = fallbackContext.Translator
	}
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		c.ScreenW, c.ScreenH = fallbackContext.ScreenW, fallbackContext.ScreenH
	}
	return c
}

// alignX returns the x at which text of width w starts inside r.
func alignX(r Rect, w int32, align constants.TextAlign) int32 {
	switch align {
	case constants.TextAlignCenter:
		return r.X + (r.W-w)/2
	case constants.TextAlignRight:
		return r.Right() - w
	default:
		return r.X
	}
}

// textY vertically centers one line inside r.
func textY(m TextMetrics, r Rect) int32 {
	return r.Y + (r.H-m.LineHeight())/2
}

// drawTextIn draws s vertically centered in r with the given alignment.
func drawTextIn(c Canvas, s string, r Rect, align constants.TextAlign, color theme.Color) {
	c.DrawText(s, alignX(r, c.TextWidth(s), align), textY(c, r), color)
}

// WrapText breaks s into lines no wider than width, splitting at spaces.
// Words wider than width are broken between grapheme clusters. Explicit
// newlines start a new line.
func WrapText(m TextMetrics, s string, width int32) []string {
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		lines = append(lines, wrapParagraph(m, paragraph, width)...)
	}
	return lines
}

func wrapParagraph(m TextMetrics, s string, width int32) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if m.TextWidth(candidate) <= width {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
		for m.TextWidth(current) > width {
			head, tail := splitToWidth(m, current, width)
			if head == "" {
				break
			}
			lines = append(lines, head)
			current = tail
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// splitToWidth returns the longest grapheme prefix of s that fits width, and the rest.
func splitToWidth(m TextMetrics, s string, width int32) (string, string) {
	gr := uniseg.NewGraphemes(s)
	end := 0
	for gr.Next() {
		_, to := gr.Positions()
		if m.TextWidth(s[:to]) > width {
			break
		}
		end = to
	}
	return s[:end], s[end:]
}

// Ellipsize shortens s with a trailing "..." so it fits width.
func Ellipsize(m TextMetrics, s string, width int32) string {
	if m.TextWidth(s) <= width {
		return s
	}
	const dots = "..."
	head, _ := splitToWidth(m, s, width-m.TextWidth(dots))
	return head + dots
}
