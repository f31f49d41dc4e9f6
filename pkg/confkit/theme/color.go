package theme

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a string is not a #RRGGBB or #AARRGGBB color.
var ErrInvalidHex = errors.New("invalid hex color")

// Color is a 32-bit ARGB color, 0xAARRGGBB.
type Color uint32

// Common colors.
const (
	White       Color = 0xFFFFFFFF
	Black       Color = 0xFF000000
	Transparent Color = 0x00000000
)

// ARGB assembles a color from its four channels.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB assembles a fully opaque color.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00FFFFFF | Color(a)<<24
}

// Opaque returns c with alpha forced to 0xFF.
func (c Color) Opaque() Color {
	return c.WithAlpha(0xFF)
}

// Blend mixes c toward other. A factor of 0 returns c, 1 returns other.
func (c Color) Blend(other Color, factor float64) Color {
	if factor <= 0 {
		return c
	}
	if factor >= 1 {
		return other
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-factor) + float64(b)*factor)
	}
	return ARGB(mix(c.A(), other.A()), mix(c.R(), other.R()), mix(c.G(), other.G()), mix(c.B(), other.B()))
}

// Lighten blends c toward white.
func (c Color) Lighten(factor float64) Color {
	return c.Blend(White, factor)
}

// Darken blends c toward black.
func (c Color) Darken(factor float64) Color {
	return c.Blend(Black, factor)
}

// Hex formats c as #AARRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ParseHex parses #RRGGBB (opaque) or #AARRGGBB. The leading # is optional.
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(digits) != 6 && len(digits) != 8 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	if len(digits) == 6 {
		return Color(v) | 0xFF000000, nil
	}
	return Color(v), nil
}

// HSV returns hue in degrees [0,360) and saturation and value in [0,1].
func (c Color) HSV() (h, s, v float64) {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}.Hsv()
}

// FromHSV converts hue in degrees and saturation/value in [0,1] to a color
// with the given alpha. A hue of 360 wraps to 0.
func FromHSV(h, s, v float64, alpha uint8) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsv(h, clamp01(s), clamp01(v)).Clamped().RGB255()
	return ARGB(alpha, r, g, b)
}

// MarshalText implements encoding.TextMarshaler so themes serialize as hex strings.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) String() string {
	return c.Hex()
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
