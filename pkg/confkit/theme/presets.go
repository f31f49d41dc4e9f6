package theme

// Modern returns the flat cyan palette. It is also the base for custom themes.
func Modern() Theme {
	return Theme{
		Background:               0xFF1A1A1A,
		BackgroundSecondary:      0xFF2D2D2D,
		TextPrimary:              0xFFFFFFFF,
		TextSecondary:            0xFFAAAAAA,
		TextDisabled:             0xFF666666,
		ButtonBackground:         0xFF3A3A3A,
		ButtonBackgroundHover:    0xFF4A4A4A,
		ButtonBackgroundDisabled: 0xFF2A2A2A,
		ButtonBorder:             0xFF5A5A5A,
		AccentPrimary:            0xFF00BCD4,
		AccentSecondary:          0xFF0097A7,
		ToggleOn:                 0xFF00BCD4,
		ToggleOff:                0xFF5A5A5A,
		ToggleHandle:             0xFFFFFFFF,
		SliderTrack:              0xFF3A3A3A,
		SliderFilled:             0xFF00BCD4,
		SliderHandle:             0xFFFFFFFF,
		InputBackground:          0xFF2A2A2A,
		InputBorder:              0xFF4A4A4A,
		InputBorderFocused:       0xFF00BCD4,
		InputError:               0xFFFF5555,
		ScrollbarTrack:           0xFF2A2A2A,
		ScrollbarThumb:           0xFF5A5A5A,
		ScrollbarThumbHover:      0xFF7A7A7A,
		CategoryBackground:       0xFF252525,
		CategorySelected:         0xFF00BCD4,
		CategoryHover:            0xFF353535,
		TooltipBackground:        0xF0101018,
		TooltipBorder:            0xFF00BCD4,
		Divider:                  0xFF3A3A3A,
		Shadow:                   0x80000000,
		Warning:                  0xFFFFAA00,
	}
}

// Faithful returns the palette for the boxy bordered widget style.
func Faithful() Theme {
	return Theme{
		Vanilla:                  true,
		Background:               0xC0101010,
		BackgroundSecondary:      0xFF1A1A1A,
		TextPrimary:              0xFFFFFFFF,
		TextSecondary:            0xFFB0B0B0,
		TextDisabled:             0xFF606060,
		ButtonBackground:         0xFF404040,
		ButtonBackgroundHover:    0xFF505050,
		ButtonBackgroundDisabled: 0xFF303030,
		ButtonBorder:             0xFF606060,
		AccentPrimary:            0xFF6A8CFF,
		AccentSecondary:          0xFF4A6CD9,
		ToggleOn:                 0xFF6AFF6A,
		ToggleOff:                0xFFFF6A6A,
		ToggleHandle:             0xFFFFFFFF,
		SliderTrack:              0xFF404040,
		SliderFilled:             0xFF6A8CFF,
		SliderHandle:             0xFFFFFFFF,
		InputBackground:          0xFF000000,
		InputBorder:              0xFFA0A0A0,
		InputBorderFocused:       0xFFFFFFFF,
		InputError:               0xFFFF5555,
		ScrollbarTrack:           0xFF000000,
		ScrollbarThumb:           0xFF808080,
		ScrollbarThumbHover:      0xFFC0C0C0,
		CategoryBackground:       0xC0101010,
		CategorySelected:         0xFF6A8CFF,
		CategoryHover:            0xFF2A2A2A,
		TooltipBackground:        0xF0100010,
		TooltipBorder:            0xFF6A8CFF,
		Divider:                  0xFF3A3A3A,
		Shadow:                   0x80000000,
		Warning:                  0xFFFFAA00,
	}
}
