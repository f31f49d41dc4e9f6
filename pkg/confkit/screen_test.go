package confkit

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
)

type fakeStore struct {
	saves, resets int
	err           error
}

func (s *fakeStore) Load() error { return nil }

func (s *fakeStore) Save() error {
	s.saves++
	return s.err
}

func (s *fakeStore) ResetToDefaults() error {
	s.resets++
	return s.err
}

type screenFixture struct {
	screen  *Screen
	store   *fakeStore
	vsync   *Toggle
	scale   *Slider
	quality *Dropdown[string]
	closes  []ScreenResult
}

func newScreenFixture(t *testing.T, opts ScreenOptions) *screenFixture {
	t.Helper()
	f := &screenFixture{store: &fakeStore{}}

	f.vsync = NewToggle(ToggleOptions{Label: "Vsync", Description: "Sync to the display"})
	f.quality = NewDropdown(DropdownOptions[string]{
		Label:  "Quality",
		Values: []string{"low", "high"},
	})
	f.scale = NewSlider(SliderOptions{Label: "Scale", Min: 1, Max: 4, Step: 1, Default: 2, RequiresRestart: true})

	opts.Store = f.store
	opts.OnClose = func(r ScreenResult) { f.closes = append(f.closes, r) }

	s, err := NewScreen(opts, []Category{
		{Name: "Video", Description: "Display options", Options: []OptionControl{f.vsync, f.quality}},
		{Name: "System", Options: []OptionControl{f.scale}},
	})
	if err != nil {
		t.Fatalf("NewScreen error = %v", err)
	}
	f.screen = s
	return f
}

func TestNewScreenRequiresCategories(t *testing.T) {
	if _, err := NewScreen(ScreenOptions{}, nil); !errors.Is(err, ErrNoCategories) {
		t.Errorf("error = %v, want ErrNoCategories", err)
	}
}

func TestScreenLayout(t *testing.T) {
	f := newScreenFixture(t, ScreenOptions{})
	s := f.screen

	if got := s.Sidebar().Bounds(); got != (Rect{X: 0, Y: 30, W: 120, H: 410}) {
		t.Errorf("sidebar = %+v", got)
	}
	if got := s.List().Bounds(); got != (Rect{X: 128, Y: 38, W: 718, H: 394}) {
		t.Errorf("list = %+v", got)
	}

	var xs []int32
	for _, b := range s.Buttons() {
		xs = append(xs, b.Bounds().X)
		if b.Bounds().Y != 450 {
			t.Errorf("button %q y = %d, want 450", b.Text, b.Bounds().Y)
		}
	}
	if len(xs) != 3 || xs[0] != 766 || xs[1] != 678 || xs[2] != 590 {
		t.Errorf("button x positions = %v", xs)
	}
	if s.Title() != "Settings" {
		t.Errorf("Title = %q", s.Title())
	}

	s.Resize(640, 480)
	if got := s.List().Bounds().W; got != 640-136 {
		t.Errorf("list width after resize = %d", got)
	}
}

func TestScreenHiddenButtons(t *testing.T) {
	f := newScreenFixture(t, ScreenOptions{HideSaveButton: true, HideResetButton: true})
	if n := len(f.screen.Buttons()); n != 1 {
		t.Errorf("buttons = %d, want only Done", n)
	}
}

func TestScreenSave(t *testing.T) {
	f := newScreenFixture(t, ScreenOptions{})
	s := f.screen

	f.vsync.SetValue(true)
	f.scale.SetValue(3)
	if !s.HasModified() {
		t.Fatal("screen should report pending changes")
	}

	if err := s.Save(); err != nil {
		t.Fatalf("Save error = %v", err)
	}
	if f.store.saves != 1 {
		t.Errorf("store saves = %d", f.store.saves)
	}
	if s.HasModified() || f.vsync.IsModified() || f.scale.IsModified() {
		t.Error("save should clear modified flags in every category")
	}
	r := s.Result()
	if !r.Saved || !r.RestartRequired || r.Err != nil {
		t.Errorf("result = %+v", r)
	}
}

func TestScreenSaveFailure(t *testing.T) {
	f := newScreenFixture(t, ScreenOptions{})
	errDisk := errors.New("disk full")
	f.store.err = errDisk

	f.vsync.SetValue(true)
	if err := f.screen.Save(); !errors.Is(err, errDisk) {
		t.Fatalf("Save error = %v, want disk full", err)
	}
	if !f.vsync.IsModified() {
		t.Error("failed save should keep modified flags")
	}
	if r := f.screen.Result(); r.Saved || !errors.Is(r.Err, errDisk) {
		t.Errorf("result = %+v", r)
	}
}

func TestScreenOnSaveError(t *testing.T) {
	errHook := errors.New("hook failed")
	f := newScreenFixture(t, ScreenOptions{OnSave: func() error { return errHook }})

	f.vsync.SetValue(true)
	if err := f.screen.Save(); !errors.Is(err, errHook) {
		t.Errorf("Save error = %v", err)
	}
	if !f.screen.HasModified() {
		t.Error("failed OnSave should keep modified flags")
	}
}

func TestScreenSaveButton(t *testing.T) {
	f := newScreenFixture(t, ScreenOptions{})
	f.vsync.SetValue(true)

	p := Point{X: 600, Y: 455}
	f.screen.HandlePointerDown(p, constants.MouseButtonLeft)
	f.screen.HandlePointerUp(p, constants.MouseButtonLeft)
	if f.store.saves != 1 || f.screen.HasModified() {
		t.Errorf("saves = %d, modified = %v after clicking Save", f.store.saves, f.screen.HasModified())
	}
}

func TestScreenReset(t *testing.T) {
	resets := 0
	f := newScreenFixture(t, ScreenOptions{OnReset: func() { resets++ }})

	f.vsync.SetValue(true)
	f.scale.SetValue(4)
	f.screen.Reset()

	if f.vsync.Value() || f.scale.Value() != 2 {
		t.Errorf("values after reset = %v, %v", f.vsync.Value(), f.scale.Value())
	}
	if f.screen.HasModified() {
		t.Error("reset should clear modified flags")
	}
	if f.store.resets != 1 || resets != 1 {
		t.Errorf("store resets = %d, OnReset calls = %d", f.store.resets, resets)
	}
}

func TestScreenCloseWithoutChanges(t *testing.T) {
	f := newScreenFixture(t, ScreenOptions{})

	f.screen.HandleKey(constants.KeyEscape, constants.ModNone)
	if !f.screen.Closed() || f.screen.Modal() != nil {
		t.Fatal("closing without changes should not ask")
	}
	if len(f.closes) != 1 || f.closes[0].Action != ScreenActionClosed {
		t.Errorf("OnClose results = %+v", f.closes)
	}
	if f.screen.HandleKey(constants.KeyEscape, constants.ModNone) {
		t.Error("closed screen should ignore input")
	}
}

func TestScreenConfirmDiscard(t *testing.T) {
	f := newScreenFixture(t, ScreenOptions{})
	s := f.screen
	f.vsync.SetValue(true)

	s.HandleKey(constants.KeyEscape, constants.ModNone)
	if s.Modal() == nil || s.Closed() {
		t.Fatal("pending changes should open the confirmation")
	}
	if s.Modal().Title() != "Unsaved Changes" {
		t.Errorf("modal title = %q", s.Modal().Title())
	}
	if !s.HandlePointerDown(Point{X: 10, Y: 100}, constants.MouseButtonLeft) || s.SelectedCategory() != 0 {
		t.Error("modal should swallow clicks on the sidebar")
	}

	s.HandleKey(constants.KeyEscape, constants.ModNone)
	if s.Modal() != nil || s.Closed() {
		t.Fatal("Escape should dismiss the confirmation and keep the screen open")
	}

	s.HandleKey(constants.KeyEscape, constants.ModNone)
	s.HandleKey(constants.KeyEnter, constants.ModNone)
	if !s.Closed() {
		t.Fatal("confirming should close the screen")
	}
	r := s.Result()
	if r.Action != ScreenActionDiscarded || !errors.Is(r.Cancelled(), ErrCancelled) {
		t.Errorf("result = %+v", r)
	}
	if len(f.closes) != 1 {
		t.Errorf("OnClose calls = %d", len(f.closes))
	}
}

func TestScreenDisableConfirm(t *testing.T) {
	f := newScreenFixture(t, ScreenOptions{DisableConfirm: true})
	f.vsync.SetValue(true)

	f.screen.RequestClose()
	if !f.screen.Closed() || f.screen.Result().Action != ScreenActionDiscarded {
		t.Errorf("result = %+v", f.screen.Result())
	}
}

func TestScreenSidebarSwitchesCategory(t *testing.T) {
	f := newScreenFixture(t, ScreenOptions{})
	s := f.screen

	if got := s.List().Options(); len(got) != 2 || got[0] != OptionControl(f.vsync) {
		t.Fatalf("initial options = %v", got)
	}

	// Second sidebar item spans y 54..78.
	if !s.HandlePointerDown(Point{X: 20, Y: 60}, constants.MouseButtonLeft) {
		t.Fatal("sidebar click should be consumed")
	}
	if s.SelectedCategory() != 1 || !s.Sidebar().Focused() {
		t.Errorf("selected = %d, focused = %v", s.SelectedCategory(), s.Sidebar().Focused())
	}
	if got := s.List().Options(); len(got) != 1 || got[0] != OptionControl(f.scale) {
		t.Errorf("options after switching = %v", got)
	}

	if err := s.SelectCategory(5); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("SelectCategory(5) error = %v", err)
	}
}

func TestScreenOverlayClickOnlyCloses(t *testing.T) {
	f := newScreenFixture(t, ScreenOptions{})
	s := f.screen

	// Second row: y 62..84, dropdown button at x 488, y 65.
	if !s.HandlePointerDown(Point{X: 500, Y: 70}, constants.MouseButtonLeft) || !f.quality.IsExpanded() {
		t.Fatal("clicking the dropdown button should open it")
	}
	if !s.HandlePointerDown(Point{X: 20, Y: 60}, constants.MouseButtonLeft) {
		t.Fatal("click while a menu is open should be consumed")
	}
	if f.quality.IsExpanded() {
		t.Error("menu should close")
	}
	if s.SelectedCategory() != 0 {
		t.Error("the click that closed the menu should not reach the sidebar")
	}
}

func TestScreenKeyboardFocus(t *testing.T) {
	f := newScreenFixture(t, ScreenOptions{})
	s := f.screen

	s.HandleKey(constants.KeyDown, constants.ModNone)
	if !s.Sidebar().Focused() {
		t.Fatal("first arrow should focus the sidebar")
	}

	s.HandleKey(constants.KeyRight, constants.ModNone)
	if s.Sidebar().Focused() || !f.vsync.Focused() {
		t.Fatal("Right should move focus into the list")
	}

	s.HandleKey(constants.KeyEnter, constants.ModNone)
	if !f.vsync.Value() {
		t.Error("Enter on a focused toggle should flip it")
	}

	s.HandleKey(constants.KeyLeft, constants.ModNone)
	if !s.Sidebar().Focused() || f.vsync.Focused() {
		t.Error("Left should move focus back to the sidebar")
	}

	s.HandleKey(constants.KeyDown, constants.ModNone)
	if s.SelectedCategory() != 1 {
		t.Errorf("Down in the sidebar selected %d", s.SelectedCategory())
	}
}

func TestScreenTooltip(t *testing.T) {
	f := newScreenFixture(t, ScreenOptions{})
	s := f.screen

	if got := s.TooltipText(Point{X: 200, Y: 45}); got != "Sync to the display" {
		t.Errorf("row tooltip = %q", got)
	}
	if got := s.TooltipText(Point{X: 20, Y: 35}); got != "Display options" {
		t.Errorf("sidebar tooltip = %q", got)
	}

	s.SelectCategory(1)
	if got := s.TooltipText(Point{X: 200, Y: 45}); got != "Requires restart" {
		t.Errorf("restart tooltip = %q", got)
	}

	if got := s.TooltipRect(Point{X: 850, Y: 470}, 100, 20); got != (Rect{X: 754, Y: 460, W: 100, H: 20}) {
		t.Errorf("clamped tooltip = %+v", got)
	}
	if got := s.TooltipRect(Point{X: 10, Y: 10}, 100, 20); got.X != 22 || got.Y != 22 {
		t.Errorf("tooltip = %+v, want offset by 12", got)
	}
}

func TestScreenRender(t *testing.T) {
	f := newScreenFixture(t, ScreenOptions{Title: "Emulator"})
	c := newRecordCanvas()

	f.screen.Render(c, Point{X: 200, Y: 45}, frame)
	for _, want := range []string{"Emulator", "Video", "System", "Vsync", "Done", "Save", "Reset", "Sync to the display"} {
		if !c.drew(want) {
			t.Errorf("screen did not draw %q; drew %q", want, c.texts())
		}
	}
	if len(c.clips) != 0 {
		t.Errorf("unbalanced clips: %v", c.clips)
	}

	f.vsync.SetValue(true)
	f.screen.RequestClose()
	c.reset()
	f.screen.Render(c, Point{X: 200, Y: 45}, frame)
	if !c.drew("Discard unsaved changes?") || !c.drew("Yes") {
		t.Errorf("modal texts missing; drew %q", c.texts())
	}
	if c.drew("Sync to the display") {
		t.Error("tooltip should hide behind the modal")
	}
}

func TestScreenArrowsStepBetweenRows(t *testing.T) {
	f := newScreenFixture(t, ScreenOptions{})
	s := f.screen

	s.HandleKey(constants.KeyDown, constants.ModNone)
	s.HandleKey(constants.KeyRight, constants.ModNone)
	if !f.vsync.Focused() {
		t.Fatal("Right should focus the first row")
	}

	if !s.HandleKey(constants.KeyDown, constants.ModNone) || !f.quality.Focused() || f.vsync.Focused() {
		t.Fatal("Down should move focus to the next row")
	}
	if s.HandleKey(constants.KeyDown, constants.ModNone) {
		t.Error("Down on the last row should not be consumed")
	}
	if !s.HandleKey(constants.KeyUp, constants.ModNone) || !f.vsync.Focused() {
		t.Error("Up should move focus back to the first row")
	}
	if s.Sidebar().Focused() {
		t.Error("stepping between rows should leave the sidebar unfocused")
	}
}

func TestScreenButtonClickDefocusesList(t *testing.T) {
	f := newScreenFixture(t, ScreenOptions{})
	s := f.screen

	f.vsync.SetFocused(true)
	if !s.HandlePointerDown(Point{X: 600, Y: 455}, constants.MouseButtonLeft) {
		t.Fatal("click on Save should be consumed")
	}
	if f.vsync.Focused() || s.List().FocusedOption() != nil {
		t.Error("clicking a footer button should take focus from the list")
	}
}
