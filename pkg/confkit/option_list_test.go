package confkit

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
	"go.uber.org/atomic"
)

func newTestList(n int) *OptionList {
	l := NewOptionList(testContext())
	l.SetBounds(Rect{X: 100, Y: 50, W: 300, H: 200})
	l.Add(toggles(n)...)
	return l
}

func TestOptionListMaxScroll(t *testing.T) {
	l := newTestList(50)
	if got := l.MaxScroll(); got != 1000 {
		t.Fatalf("MaxScroll = %v, want 1000", got)
	}

	short := newTestList(3)
	if got := short.MaxScroll(); got != 0 {
		t.Errorf("MaxScroll of short list = %v, want 0", got)
	}
	if short.HandleScroll(Point{X: 150, Y: 60}, -1) {
		t.Error("wheel without scrollbar should not be consumed")
	}
}

func TestOptionListWheelAnimatesWithoutOvershoot(t *testing.T) {
	l := newTestList(50)
	c := newRecordCanvas()
	inside := Point{X: 150, Y: 60}

	if !l.HandleScroll(inside, -1) {
		t.Fatal("wheel inside a scrollable list should be consumed")
	}
	if got := l.ScrollTarget(); got != 20 {
		t.Fatalf("ScrollTarget = %v, want 20", got)
	}

	for i := 0; i < 120; i++ {
		l.Render(c, inside, frame)
		if cur := l.ScrollCurrent(); cur > 20 || cur < 0 {
			t.Fatalf("frame %d: ScrollCurrent = %v, outside [0, 20]", i, cur)
		}
	}
	if got := l.ScrollCurrent(); got != 20 {
		t.Errorf("ScrollCurrent = %v, want settled at 20", got)
	}

	l.HandleScroll(inside, 10)
	if got := l.ScrollTarget(); got != 0 {
		t.Errorf("ScrollTarget after scrolling up past the top = %v, want 0", got)
	}
	l.HandleScroll(inside, -1000)
	if got := l.ScrollTarget(); got != 1000 {
		t.Errorf("ScrollTarget after scrolling past the end = %v, want 1000", got)
	}

	if l.HandleScroll(Point{X: 10, Y: 10}, -1) {
		t.Error("wheel outside the list should not be consumed")
	}
}

func TestOptionListLayout(t *testing.T) {
	l := newTestList(50)
	c := newRecordCanvas()

	l.ScrollTo(30)
	l.Render(c, Point{}, time.Second)

	opts := l.Options()
	if got := opts[0].Bounds(); got != (Rect{X: 102, Y: 20, W: 290, H: 22}) {
		t.Errorf("row 0 bounds = %+v", got)
	}
	if got := opts[3].Bounds().Y; got != 50+3*24-30 {
		t.Errorf("row 3 y = %d, want %d", got, 50+3*24-30)
	}

	if len(c.clips) != 0 {
		t.Errorf("clip stack not balanced: %v", c.clips)
	}
}

func TestOptionListTargetReclampedWhenContentShrinks(t *testing.T) {
	l := newTestList(50)
	l.ScrollTo(1000)

	flag := atomic.NewBool(true)
	for _, o := range l.Options()[5:] {
		o.SetVisibleWhen(flag)
	}
	flag.Store(false)
	l.Render(newRecordCanvas(), Point{}, frame)

	if got := l.ScrollTarget(); got != 0 {
		t.Errorf("ScrollTarget = %v, want 0 after content shrank below the view", got)
	}
}

func TestOptionListHiddenRowsTakeNoSlot(t *testing.T) {
	l := newTestList(3)
	flag := atomic.NewBool(false)
	l.Options()[1].SetVisibleWhen(flag)

	l.Render(newRecordCanvas(), Point{}, frame)
	if got := l.Options()[2].Bounds().Y; got != 50+24 {
		t.Errorf("row after hidden row y = %d, want %d", got, 50+24)
	}

	flag.Store(true)
	l.Render(newRecordCanvas(), Point{}, frame)
	if got := l.Options()[2].Bounds().Y; got != 50+48 {
		t.Errorf("row y after showing = %d, want %d", got, 50+48)
	}
}

func TestOptionListScrollbarDrag(t *testing.T) {
	l := newTestList(50)
	column := l.Bounds().Right() - constants.ScrollbarWidth - 1 + 2

	if !l.HandlePointerDown(Point{X: column, Y: 55}, constants.MouseButtonLeft) {
		t.Fatal("click on the scrollbar should be consumed")
	}

	thumbH := l.thumbRect().H
	travel := l.Bounds().H - thumbH

	l.HandlePointerDrag(Point{X: column, Y: 55 + travel}, constants.MouseButtonLeft, 0, travel)
	if got := l.ScrollCurrent(); got != 1000 {
		t.Errorf("ScrollCurrent after dragging to the end = %v, want 1000", got)
	}
	if l.ScrollTarget() != l.ScrollCurrent() {
		t.Error("scrollbar drag should move target and current together")
	}

	l.HandlePointerDrag(Point{X: column, Y: 0}, constants.MouseButtonLeft, 0, -300)
	if got := l.ScrollCurrent(); got != 0 {
		t.Errorf("ScrollCurrent after dragging above = %v, want 0", got)
	}

	l.HandlePointerUp(Point{X: column, Y: 0}, constants.MouseButtonLeft)
	if l.draggingScrollbar {
		t.Error("pointer up should end the scrollbar drag")
	}
}

func TestOptionListClickFocusesRow(t *testing.T) {
	l := newTestList(3)
	opts := l.Options()

	if !l.HandlePointerDown(Point{X: 150, Y: 55}, constants.MouseButtonLeft) {
		t.Fatal("click on row 0 should be consumed")
	}
	if !l.HandlePointerDown(Point{X: 150, Y: 55 + 24}, constants.MouseButtonLeft) {
		t.Fatal("click on row 1 should be consumed")
	}
	if opts[0].Focused() || !opts[1].Focused() {
		t.Errorf("focus = %v %v, want only row 1", opts[0].Focused(), opts[1].Focused())
	}

	if !opts[0].(*Toggle).Value() || !opts[1].(*Toggle).Value() {
		t.Error("clicked toggles should be on")
	}

	if l.HandlePointerDown(Point{X: 150, Y: 240}, constants.MouseButtonLeft) {
		t.Error("click on empty list space should not be consumed")
	}
	if l.FocusedOption() != nil {
		t.Error("click on empty space should defocus all rows")
	}
}

func TestOptionListKeysGoToFocusedRow(t *testing.T) {
	l := newTestList(3)
	opts := l.Options()
	opts[1].SetFocused(true)

	if !l.HandleKey(constants.KeyEnter, constants.ModNone) {
		t.Fatal("Enter on a focused toggle should be consumed")
	}
	if opts[0].(*Toggle).Value() || !opts[1].(*Toggle).Value() || opts[2].(*Toggle).Value() {
		t.Error("only the focused toggle should flip")
	}

	if l.HandleKey(constants.KeyDown, constants.ModNone) {
		t.Error("the list should leave Down to its parent")
	}
	if !opts[1].Focused() {
		t.Error("an unconsumed key should not move focus")
	}

	if !l.MoveFocus(1) {
		t.Fatal("MoveFocus(1) should move focus")
	}
	if !opts[2].Focused() || opts[1].Focused() {
		t.Error("focus should move to row 2")
	}
	if l.MoveFocus(1) {
		t.Error("MoveFocus past the last row should fail")
	}
}

func TestOptionListExclusiveExpansion(t *testing.T) {
	l := NewOptionList(testContext())
	l.SetBounds(Rect{X: 100, Y: 50, W: 300, H: 200})

	first := NewDropdown(DropdownOptions[string]{Label: "First", Values: []string{"a", "b"}})
	second := NewDropdown(DropdownOptions[string]{Label: "Second", Values: []string{"c", "d"}})
	l.Add(first, second)

	first.SetFocused(true)
	first.HandleKey(constants.KeyEnter, constants.ModNone)
	if !first.IsExpanded() {
		t.Fatal("first dropdown should be open")
	}

	second.SetFocused(true)
	second.HandleKey(constants.KeyEnter, constants.ModNone)
	if first.IsExpanded() || !second.IsExpanded() {
		t.Errorf("expanded = %v %v, want only the second", first.IsExpanded(), second.IsExpanded())
	}
	if l.Expanded() != OptionControl(second) {
		t.Error("list should track the second dropdown as expanded")
	}
}

func TestOptionListClickOutsideClosesOverlay(t *testing.T) {
	l := NewOptionList(testContext())
	l.SetBounds(Rect{X: 100, Y: 50, W: 300, H: 200})
	d := NewDropdown(DropdownOptions[string]{Label: "Mode", Values: []string{"a", "b", "c"}, Default: "a"})
	l.Add(d, NewToggle(ToggleOptions{Label: "Other"}))
	l.Render(newRecordCanvas(), Point{}, frame)

	if !l.HandlePointerDown(Point{X: d.ButtonRect().X + 2, Y: d.ButtonRect().Y + 2}, constants.MouseButtonLeft) {
		t.Fatal("click on the dropdown button should be consumed")
	}
	if !d.IsExpanded() {
		t.Fatal("dropdown should be open")
	}

	if !l.HandlePointerDown(Point{X: 5, Y: 5}, constants.MouseButtonLeft) {
		t.Error("click outside while expanded should be consumed")
	}
	if d.IsExpanded() || l.HasExpanded() {
		t.Error("click outside should close the overlay")
	}

	// The same click on the button while open closes instead of reopening.
	l.HandlePointerDown(Point{X: d.ButtonRect().X + 2, Y: d.ButtonRect().Y + 2}, constants.MouseButtonLeft)
	l.HandlePointerDown(Point{X: d.ButtonRect().X + 2, Y: d.ButtonRect().Y + 2}, constants.MouseButtonLeft)
	if d.IsExpanded() {
		t.Error("clicking the button of an open dropdown should close it")
	}
}

func TestOptionListResetAndModified(t *testing.T) {
	l := newTestList(3)
	opts := l.Options()

	opts[0].(*Toggle).SetValue(true)
	if !l.HasModifiedOptions() {
		t.Fatal("a changed value should mark the list modified")
	}

	l.ClearModified()
	if l.HasModifiedOptions() {
		t.Error("ClearModified should clear every flag")
	}
	if !opts[0].(*Toggle).Value() {
		t.Error("ClearModified must not touch values")
	}

	opts[1].(*Toggle).SetValue(true)
	l.ResetAllToDefaults()
	if l.HasModifiedOptions() {
		t.Error("reset should clear modified flags")
	}
	for i, o := range opts {
		if o.(*Toggle).Value() {
			t.Errorf("row %d still on after reset", i)
		}
	}
}

func TestOptionListClear(t *testing.T) {
	l := newTestList(50)
	l.ScrollTo(500)
	l.Clear()

	if len(l.Options()) != 0 || l.ScrollTarget() != 0 || l.ScrollCurrent() != 0 || l.HasExpanded() {
		t.Error("Clear should drop rows and reset scroll and expansion")
	}
}

func TestOptionListScrollIntoView(t *testing.T) {
	l := newTestList(50)
	l.Options()[0].SetFocused(true)

	for i := 0; i < 10; i++ {
		l.MoveFocus(1)
	}

	// Row 10 spans content [240, 264); a 200 px view must start at 64.
	if got := l.ScrollTarget(); got != 64 {
		t.Errorf("ScrollTarget = %v, want 64", got)
	}
}

func TestOptionListDropsOverlayOfInactiveRow(t *testing.T) {
	t.Run("hidden", func(t *testing.T) {
		l := NewOptionList(testContext())
		l.SetBounds(Rect{X: 100, Y: 50, W: 300, H: 200})
		shown := atomic.NewBool(true)
		cp := NewColorPicker(ColorPickerOptions{Label: "Accent", Default: 0xFF000000})
		cp.SetVisibleWhen(shown)
		l.Add(cp, NewToggle(ToggleOptions{Label: "Other"}))

		cp.SetFocused(true)
		cp.HandleKey(constants.KeyEnter, constants.ModNone)
		if !l.HasExpanded() {
			t.Fatal("Enter should open the picker")
		}
		popup := cp.PopupRect()

		shown.Store(false)
		if l.HasExpanded() || cp.IsExpanded() {
			t.Error("hiding the expanded row should close its overlay")
		}

		l.HandlePointerDown(Point{X: popup.X + 50, Y: popup.Y + 40}, constants.MouseButtonLeft)
		if cp.Value() != 0xFF000000 {
			t.Errorf("value = %s, want unchanged", cp.Value())
		}
	})

	t.Run("disabled", func(t *testing.T) {
		l := NewOptionList(testContext())
		l.SetBounds(Rect{X: 100, Y: 50, W: 300, H: 200})
		d := NewDropdown(DropdownOptions[string]{Label: "Mode", Values: []string{"a", "b", "c"}, Default: "a"})
		l.Add(d)
		l.Render(newRecordCanvas(), Point{}, frame)

		l.HandlePointerDown(Point{X: d.ButtonRect().X + 2, Y: d.ButtonRect().Y + 2}, constants.MouseButtonLeft)
		if !d.IsExpanded() {
			t.Fatal("click on the button should open the menu")
		}
		menu := d.MenuRect()

		d.SetEnabled(false)
		l.HandlePointerDown(Point{X: menu.X + 2, Y: menu.Y + 14 + 2}, constants.MouseButtonLeft)
		if d.Value() != "a" {
			t.Errorf("value = %q, want a", d.Value())
		}
		if d.IsExpanded() || l.HasExpanded() {
			t.Error("a disabled row should not stay expanded")
		}
	})
}

func TestInactiveContainersIgnorePointerDown(t *testing.T) {
	for _, disable := range []bool{false, true} {
		l := newTestList(3)
		sidebar := NewCategoryList(testContext(), []CategoryEntry{{Name: "Video"}, {Name: "Audio"}})
		sidebar.SetBounds(Rect{X: 0, Y: 30, W: 120, H: 410})
		if disable {
			l.SetEnabled(false)
			sidebar.SetEnabled(false)
		} else {
			l.SetVisible(false)
			sidebar.SetVisible(false)
		}

		if l.HandlePointerDown(Point{X: 150, Y: 55}, constants.MouseButtonLeft) {
			t.Errorf("disabled=%v: list consumed a click", disable)
		}
		if l.Options()[0].(*Toggle).Value() || l.FocusedOption() != nil {
			t.Errorf("disabled=%v: click reached a row of an inactive list", disable)
		}

		if sidebar.HandlePointerDown(Point{X: 20, Y: 60}, constants.MouseButtonLeft) {
			t.Errorf("disabled=%v: sidebar consumed a click", disable)
		}
		if sidebar.Selected() != 0 || sidebar.Focused() {
			t.Errorf("disabled=%v: selected = %d, focused = %v", disable, sidebar.Selected(), sidebar.Focused())
		}
	}
}
