// Package theme holds the color data model widgets read while drawing, the
// built-in palettes, and loading of custom palettes from TOML files.
package theme

// Theme defines the visual appearance of a configuration screen.
// Widgets only read it; swapping themes at runtime is a matter of handing
// the screen a different value.
type Theme struct {
	Vanilla bool `toml:"vanilla"` // Boxy bordered widgets instead of the flat style

	Background          Color `toml:"background"`           // Popup and screen background
	BackgroundSecondary Color `toml:"background_secondary"` // Header and footer bars

	TextPrimary   Color `toml:"text_primary"`
	TextSecondary Color `toml:"text_secondary"`
	TextDisabled  Color `toml:"text_disabled"`

	ButtonBackground         Color `toml:"button_background"`
	ButtonBackgroundHover    Color `toml:"button_background_hover"`
	ButtonBackgroundDisabled Color `toml:"button_background_disabled"`
	ButtonBorder             Color `toml:"button_border"`

	AccentPrimary   Color `toml:"accent_primary"`   // Focus borders, header labels, modified markers
	AccentSecondary Color `toml:"accent_secondary"` // Pressed states

	ToggleOn     Color `toml:"toggle_on"`
	ToggleOff    Color `toml:"toggle_off"`
	ToggleHandle Color `toml:"toggle_handle"`

	SliderTrack  Color `toml:"slider_track"`
	SliderFilled Color `toml:"slider_filled"`
	SliderHandle Color `toml:"slider_handle"`

	InputBackground    Color `toml:"input_background"`
	InputBorder        Color `toml:"input_border"`
	InputBorderFocused Color `toml:"input_border_focused"`
	InputError         Color `toml:"input_error"` // Border of a text field holding invalid text

	ScrollbarTrack      Color `toml:"scrollbar_track"`
	ScrollbarThumb      Color `toml:"scrollbar_thumb"`
	ScrollbarThumbHover Color `toml:"scrollbar_thumb_hover"`

	CategoryBackground Color `toml:"category_background"`
	CategorySelected   Color `toml:"category_selected"`
	CategoryHover      Color `toml:"category_hover"`

	TooltipBackground Color `toml:"tooltip_background"`
	TooltipBorder     Color `toml:"tooltip_border"`
	Divider           Color `toml:"divider"`
	Shadow            Color `toml:"shadow"`  // Dimming behind modal dialogs
	Warning           Color `toml:"warning"` // Restart-required glyph
}

// RowHover is the fill drawn behind a hovered option row.
func (t Theme) RowHover() Color {
	if t.Vanilla {
		return 0x40FFFFFF
	}
	return t.CategoryHover
}
