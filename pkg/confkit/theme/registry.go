package theme

import (
	"fmt"
	"strings"
	"sync"
)

// Style selects one of the registered palettes.
type Style int

const (
	StyleFaithful Style = iota // Boxy bordered widgets
	StyleModern                // Flat cyan widgets
	StyleCustom                // Caller-supplied palette, falling back to Modern
)

func (s Style) String() string {
	switch s {
	case StyleFaithful:
		return "faithful"
	case StyleModern:
		return "modern"
	case StyleCustom:
		return "custom"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle parses a style name as written in settings files.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "faithful", "vanilla":
		return StyleFaithful, nil
	case "modern", "flat", "":
		return StyleModern, nil
	case "custom":
		return StyleCustom, nil
	}
	return StyleModern, fmt.Errorf("theme: unknown style %q", name)
}

// Registry maps styles to palettes.
type Registry struct {
	mu     sync.RWMutex
	themes map[Style]Theme
	custom *Theme
}

// NewRegistry creates a registry holding the built-in palettes.
func NewRegistry() *Registry {
	return &Registry{
		themes: map[Style]Theme{
			StyleFaithful: Faithful(),
			StyleModern:   Modern(),
		},
	}
}

// Get returns the palette for a style. StyleCustom without a custom palette,
// and unknown styles, resolve to Modern.
func (r *Registry) Get(style Style) Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if style == StyleCustom {
		if r.custom != nil {
			return *r.custom
		}
		return r.themes[StyleModern]
	}
	if t, ok := r.themes[style]; ok {
		return t
	}
	return r.themes[StyleModern]
}

// SetCustom installs the palette returned for StyleCustom.
func (r *Registry) SetCustom(t Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.custom = &t
}

// Custom returns the custom palette, if one was set.
func (r *Registry) Custom() (Theme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.custom == nil {
		return Theme{}, false
	}
	return *r.custom, true
}

var defaultRegistry = NewRegistry()

// Get returns a palette from the process-wide registry.
func Get(style Style) Theme {
	return defaultRegistry.Get(style)
}

// SetCustom installs the custom palette in the process-wide registry.
func SetCustom(t Theme) {
	defaultRegistry.SetCustom(t)
}
