package confkit

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/BrandonKowalski/confkit/pkg/confkit/internal"
	"github.com/BrandonKowalski/confkit/pkg/confkit/theme"
)

func TestMain(m *testing.M) {
	internal.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

const frame = time.Second / 60

type drawCall struct {
	op    string
	rect  Rect
	text  string
	color theme.Color
}

// recordCanvas records draw calls and measures text as 6x9 cells.
type recordCanvas struct {
	FixedMetrics
	calls []drawCall
	clips []Rect
}

func newRecordCanvas() *recordCanvas {
	return &recordCanvas{FixedMetrics: FixedMetrics{CharWidth: 6, Height: 9}}
}

func (c *recordCanvas) FillRect(r Rect, col theme.Color) {
	c.calls = append(c.calls, drawCall{op: "fill", rect: r, color: col})
}

func (c *recordCanvas) StrokeRect(r Rect, col theme.Color) {
	c.calls = append(c.calls, drawCall{op: "stroke", rect: r, color: col})
}

func (c *recordCanvas) DrawText(s string, x, y int32, col theme.Color) {
	c.calls = append(c.calls, drawCall{op: "text", rect: Rect{X: x, Y: y}, text: s, color: col})
}

func (c *recordCanvas) DrawIcon(icon Icon, r Rect) {
	c.calls = append(c.calls, drawCall{op: "icon", rect: r, text: icon.Name})
}

func (c *recordCanvas) PushClip(r Rect) { c.clips = append(c.clips, r) }

func (c *recordCanvas) PopClip() {
	if len(c.clips) > 0 {
		c.clips = c.clips[:len(c.clips)-1]
	}
}

func (c *recordCanvas) reset() { c.calls = nil }

// texts returns every string drawn since the last reset.
func (c *recordCanvas) texts() []string {
	var out []string
	for _, call := range c.calls {
		if call.op == "text" {
			out = append(out, call.text)
		}
	}
	return out
}

func (c *recordCanvas) drew(text string) bool {
	for _, t := range c.texts() {
		if t == text {
			return true
		}
	}
	return false
}

func testContext() *Context {
	return NewContext()
}

// standalone places a control in a 200x22 row at the top left.
func standalone[T interface{ SetBounds(Rect) }](w T) T {
	w.SetBounds(Rect{X: 0, Y: 0, W: 200, H: 22})
	return w
}

func toggles(n int) []OptionControl {
	out := make([]OptionControl, n)
	for i := range out {
		out[i] = NewToggle(ToggleOptions{Label: "Option"})
	}
	return out
}
