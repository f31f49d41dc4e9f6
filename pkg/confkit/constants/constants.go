// Package constants defines shared constants, input identifiers, and layout
// metrics used throughout the confkit widget toolkit.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by the host.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	FontPathEnvVar     = "CONFKIT_FONT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Modifier is a bit set of held keyboard modifiers.
type Modifier int

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Has reports whether all bits of m2 are set in m.
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}

// Key is a host-independent key code. Only keys the widgets react to are named;
// everything else arrives as KeyUnknown and is ignored.
type Key int

const (
	KeyUnknown Key = iota
	KeyEnter
	KeyEscape
	KeySpace
	KeyTab
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyA
	KeyC
	KeyV
)

func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyA:
		return "A"
	case KeyC:
		return "C"
	case KeyV:
		return "V"
	default:
		return "Unknown"
	}
}

// VirtualButton represents an abstract gamepad button, mapped from physical hardware.
// The host turns these into Key events so controllers can drive the same widgets.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonStart
)

// Key returns the key a virtual button stands in for.
func (vb VirtualButton) Key() Key {
	switch vb {
	case VirtualButtonUp:
		return KeyUp
	case VirtualButtonDown:
		return KeyDown
	case VirtualButtonLeft:
		return KeyLeft
	case VirtualButtonRight:
		return KeyRight
	case VirtualButtonA:
		return KeyEnter
	case VirtualButtonB:
		return KeyEscape
	case VirtualButtonStart:
		return KeySpace
	default:
		return KeyUnknown
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Option row metrics.
const (
	RowHeight        int32 = 24 // Vertical slot per option row
	RowPadding       int32 = 2  // Gap below each row inside its slot
	ScrollbarWidth   int32 = 6
	ScrollbarMinSize int32 = 20 // Minimum scrollbar thumb height
	WheelStep              = 20.0
	LabelRatio             = 50 // Default label share of a row, in percent
	ControlGutter    int32 = 4  // Space between label and control regions
	FlipMargin       int32 = 10 // Distance overlays keep from the screen bottom
)

// Screen chrome metrics.
const (
	SidebarWidth  int32 = 120
	HeaderHeight  int32 = 30
	FooterHeight  int32 = 40
	ScreenPadding int32 = 8
	ButtonWidth   int32 = 80
	ButtonHeight  int32 = 20
	TooltipWidth  int32 = 200
)

// Animation timing.
const (
	ReferenceFrame    = time.Second / 60      // Frame length the damping factors were tuned for
	ScrollDamping     = 0.3                   // Fraction of remaining scroll distance covered per reference frame
	ScrollSnap        = 0.5                   // Pixels below which scrolling snaps to its target
	ToggleSlideTime   = 84 * time.Millisecond // Full toggle handle travel
	CursorBlink       = 300 * time.Millisecond
	DefaultInputDelay = 20 * time.Millisecond // Debounce delay between gamepad repeat events
)
