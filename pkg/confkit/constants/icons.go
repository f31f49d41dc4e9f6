package constants

// Glyphs drawn by option rows and controls.
const (
	ModifiedMarker = "*"   // Drawn left of a label whose value changed since load or save
	RestartWarning = "⚠"   // Drawn at the row's right edge for options that need a restart
	ArrowDown      = "▼"   // Closed dropdown indicator
	ArrowUp        = "▲"   // Open dropdown indicator
	NoValue        = "---" // Dropdown text when the bound value is not among its values
)
