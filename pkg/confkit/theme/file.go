package theme

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// themeHeader is decoded first so a file can pick which palette it overrides.
type themeHeader struct {
	Base string `toml:"base"`
}

// Decode reads a TOML palette. Keys override the palette named by the
// optional top-level "base" key (default modern); absent keys keep the base color.
//
//	base = "faithful"
//	accent_primary = "#FF00FF88"
func Decode(data string) (Theme, error) {
	var header themeHeader
	if _, err := toml.Decode(data, &header); err != nil {
		return Theme{}, fmt.Errorf("theme: decode: %w", err)
	}

	style, err := ParseStyle(header.Base)
	if err != nil {
		return Theme{}, err
	}

	var t Theme
	switch style {
	case StyleFaithful:
		t = Faithful()
	default:
		t = Modern()
	}

	md, err := toml.Decode(data, &t)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: decode: %w", err)
	}

	var unknown []string
	for _, key := range md.Undecoded() {
		if key.String() != "base" {
			unknown = append(unknown, key.String())
		}
	}
	if len(unknown) > 0 {
		return Theme{}, fmt.Errorf("theme: unknown keys: %s", strings.Join(unknown, ", "))
	}

	return t, nil
}

// LoadFile reads a palette from a TOML file.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return Decode(string(data))
}

// Encode writes t as TOML with colors in #AARRGGBB form.
func Encode(w io.Writer, t Theme) error {
	if err := toml.NewEncoder(w).Encode(t); err != nil {
		return fmt.Errorf("theme: encode: %w", err)
	}
	return nil
}
