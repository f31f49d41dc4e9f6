package confkit

import (
	"math"
	"time"

	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
	"github.com/charmbracelet/harmonica"
)

const (
	categoryItemH   int32 = 24
	categoryIconS   int32 = 16
	categoryPadding int32 = 4
	categoryBarW    int32 = 3

	// Frames the highlight may catch up in one render after a stall.
	maxSpringSteps = 10
)

// CategoryEntry is one sidebar item.
type CategoryEntry struct {
	Name        string
	Icon        *Icon
	Description string
}

// CategoryList is the sidebar. Clicking an entry selects it; Up and Down
// move the selection while the sidebar has focus. The selection highlight
// glides to its row on a spring.
type CategoryList struct {
	BaseWidget

	ctx      *Context
	entries  []CategoryEntry
	selected int

	// OnSelect is called with the new index whenever the selection changes.
	OnSelect func(index int)

	spring      harmonica.Spring
	highlightY  float64
	highlightV  float64
	accumulated time.Duration
	placed      bool
}

func NewCategoryList(ctx *Context, entries []CategoryEntry) *CategoryList {
	return &CategoryList{
		ctx:     ctx.withDefaults(),
		entries: entries,
		spring:  harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9),
	}
}

func (cl *CategoryList) Entries() []CategoryEntry { return cl.entries }
func (cl *CategoryList) Selected() int            { return cl.selected }

// Select changes the selection and fires OnSelect if it changed.
func (cl *CategoryList) Select(i int) bool {
	if i < 0 || i >= len(cl.entries) {
		return false
	}
	if i == cl.selected {
		return true
	}
	cl.selected = i
	logger().Debug("category selected", "index", i, "name", cl.entries[i].Name)
	if cl.OnSelect != nil {
		cl.OnSelect(i)
	}
	return true
}

func (cl *CategoryList) itemRect(i int) Rect {
	b := cl.bounds
	return Rect{X: b.X, Y: b.Y + int32(i)*categoryItemH, W: b.W, H: categoryItemH}
}

// IndexAt returns the entry under p, or -1.
func (cl *CategoryList) IndexAt(p Point) int {
	if !cl.contains(p) {
		return -1
	}
	i := int((p.Y - cl.bounds.Y) / categoryItemH)
	if i < 0 || i >= len(cl.entries) {
		return -1
	}
	return i
}

// HighlightY is the animated top of the selection highlight.
func (cl *CategoryList) HighlightY() float64 { return cl.highlightY }

func (cl *CategoryList) animate(dt time.Duration) {
	target := float64(cl.itemRect(cl.selected).Y)
	if !cl.placed {
		cl.highlightY, cl.highlightV = target, 0
		cl.placed = true
		return
	}

	frame := constants.ReferenceFrame
	cl.accumulated += dt
	steps := 0
	for cl.accumulated >= frame && steps < maxSpringSteps {
		cl.highlightY, cl.highlightV = cl.spring.Update(cl.highlightY, cl.highlightV, target)
		cl.accumulated -= frame
		steps++
	}
	if steps == maxSpringSteps {
		cl.accumulated = 0
	}
	if math.Abs(cl.highlightY-target) < constants.ScrollSnap && math.Abs(cl.highlightV) < 1 {
		cl.highlightY, cl.highlightV = target, 0
	}
}

func (cl *CategoryList) SetBounds(r Rect) {
	cl.bounds = r
	cl.placed = false
}

func (cl *CategoryList) Render(c Canvas, p Point, dt time.Duration) {
	if !cl.beginRender(p) {
		return
	}
	cl.animate(dt)

	th := cl.ctx.Theme
	b := cl.bounds
	c.FillRect(b, th.CategoryBackground)

	c.PushClip(b)
	defer c.PopClip()

	hover := cl.IndexAt(p)
	highlight := Rect{X: b.X, Y: int32(math.Round(cl.highlightY)), W: b.W, H: categoryItemH}
	if th.Vanilla {
		c.FillRect(highlight, th.CategorySelected)
	} else {
		c.FillRect(highlight, th.CategoryHover)
		c.FillRect(Rect{X: b.X, Y: highlight.Y, W: categoryBarW, H: categoryItemH}, th.CategorySelected)
	}

	for i, e := range cl.entries {
		item := cl.itemRect(i)
		if i == hover && i != cl.selected {
			c.FillRect(item, th.CategoryHover)
		}

		color := th.TextSecondary
		if i == cl.selected {
			color = th.TextPrimary
		}

		textX := item.X + categoryPadding
		if !th.Vanilla {
			textX += categoryBarW
		}
		if e.Icon != nil {
			c.DrawIcon(*e.Icon, Rect{X: textX, Y: item.CenterY() - categoryIconS/2, W: categoryIconS, H: categoryIconS})
			textX += categoryIconS + categoryPadding
		}

		name := Ellipsize(c, e.Name, item.Right()-textX-categoryPadding)
		if th.Vanilla && e.Icon == nil {
			drawTextIn(c, name, item, constants.TextAlignCenter, color)
		} else {
			c.DrawText(name, textX, textY(c, item), color)
		}
	}

	if cl.focused {
		c.StrokeRect(cl.itemRect(cl.selected), th.AccentPrimary)
	}
	if !th.Vanilla {
		c.FillRect(Rect{X: b.Right() - 1, Y: b.Y, W: 1, H: b.H}, th.Divider)
	}
}

func (cl *CategoryList) HandlePointerDown(p Point, button constants.MouseButton) bool {
	if !cl.interactive() || button != constants.MouseButtonLeft || !cl.contains(p) {
		return false
	}
	cl.focused = true
	if i := cl.IndexAt(p); i >= 0 {
		cl.Select(i)
	}
	return true
}

func (cl *CategoryList) HandleKey(key constants.Key, _ constants.Modifier) bool {
	if !cl.focused || !cl.interactive() || len(cl.entries) == 0 {
		return false
	}
	switch key {
	case constants.KeyUp:
		cl.Select(max(0, cl.selected-1))
		return true
	case constants.KeyDown:
		cl.Select(min(len(cl.entries)-1, cl.selected+1))
		return true
	}
	return false
}
