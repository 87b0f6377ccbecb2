package theme

import (
	"github.com/rs/zerolog"
)

// Themeable is anything that repaints itself from a palette
type Themeable interface {
	ApplyPalette(p Palette)
}

// ThemeableFunc adapts a function to Themeable
type ThemeableFunc func(p Palette)

// ApplyPalette calls f(p)
func (f ThemeableFunc) ApplyPalette(p Palette) {
	f(p)
}

// Registry holds the themeable widgets of a window and the palette they
// currently show.
type Registry struct {
	items   []Themeable
	current Palette
	logger  zerolog.Logger
}

// NewRegistry creates a registry showing the light palette
func NewRegistry() *Registry {
	return &Registry{current: LightPalette, logger: zerolog.Nop()}
}

// SetLogger configures the logger for theme changes
func (r *Registry) SetLogger(l zerolog.Logger) {
	r.logger = l
}

// Register adds t and paints it with the current palette
func (r *Registry) Register(t Themeable) {
	r.items = append(r.items, t)
	t.ApplyPalette(r.current)
}

// Current returns the palette last applied
func (r *Registry) Current() Palette {
	return r.current
}

// Apply paints every registered widget with the palette called name. An
// unknown name changes nothing and returns false.
func (r *Registry) Apply(name string) bool {
	p, ok := Lookup(name)
	if !ok {
		r.logger.Warn().Str("theme", name).Msg("unknown theme ignored")
		return false
	}
	r.current = p
	for _, t := range r.items {
		t.ApplyPalette(p)
	}
	r.logger.Info().Str("theme", name).Int("widgets", len(r.items)).Msg("theme applied")
	return true
}
