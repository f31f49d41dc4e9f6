package confkit_test

import (
	"fmt"

	"github.com/BrandonKowalski/confkit/pkg/confkit"
	"github.com/BrandonKowalski/confkit/pkg/confkit/constants"
)

type settings struct {
	Vsync   bool
	Volume  int
	Display string
}

func Example() {
	s := settings{Volume: 80, Display: "WINDOWED"}

	video := confkit.NewBuilder(confkit.ScreenOptions{Title: "Emulator"}).
		Category("Video").
		Toggle(confkit.ToggleOptions{Label: "Vsync", Binding: confkit.Bind(&s.Vsync)})

	screen, err := confkit.AddDropdown(video, confkit.DropdownOptions[string]{
		Label:   "Display",
		Values:  []string{"WINDOWED", "FULL_SCREEN"},
		Binding: confkit.Bind(&s.Display),
	}).
		Category("Audio").
		Slider(confkit.SliderOptions{
			Label:   "Volume",
			Max:     100,
			Step:    5,
			Default: 80,
			Suffix:  "%",
			Binding: confkit.IntBinding(confkit.Bind(&s.Volume)),
		}).
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}

	vsync := screen.List().Options()[0]
	vsync.SetFocused(true)
	screen.HandleKey(constants.KeyEnter, constants.ModNone)

	fmt.Println(screen.Title(), s.Vsync, screen.HasModified())
	fmt.Println(confkit.DisplayName(s.Display))
	if err := screen.Save(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(screen.HasModified(), screen.Result().Saved)

	screen.HandleKey(constants.KeyEscape, constants.ModNone)
	fmt.Println(screen.Result().Action)
	// Output:
	// Emulator true true
	// Windowed
	// false true
	// closed
}
