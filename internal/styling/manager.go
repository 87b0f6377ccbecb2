package styling

import (
	"image/color"

	"github.com/rs/zerolog"

	"github.com/ispapp/styledit/pkg/styledtext"
)

// Surface is the editable text the overlays are applied to
type Surface interface {
	SelectionRange() (styledtext.Range, bool)
	ApplyRangeStyle(id styledtext.StyleID, r styledtext.Range, style styledtext.Style)
	StylesCovering(pos int) []styledtext.StyleID
}

// ColorPicker asks the user for a colour. onPicked is only called when the
// user confirms; cancelling never calls it.
type ColorPicker interface {
	PickColor(initial color.Color, onPicked func(color.Color))
}

// FontPicker asks the user for a font. onPicked is only called when the
// user confirms; cancelling never calls it.
type FontPicker interface {
	PickFont(initial Font, onPicked func(Font))
}

// StatusView displays the effective style
type StatusView interface {
	ShowColor(c color.Color)
	ShowFont(f Font)
}

// Manager owns the append-only overlay list. It is used from the UI
// goroutine only.
type Manager struct {
	surface Surface
	colors  ColorPicker
	fonts   FontPicker
	status  StatusView

	overlays []Overlay
	byID     map[styledtext.StyleID]int
	nextID   styledtext.StyleID

	defaultColor color.NRGBA
	defaultFont  Font
	logger       zerolog.Logger
}

// NewManager creates a manager over surface. status may be nil.
func NewManager(surface Surface, colors ColorPicker, fonts FontPicker, status StatusView) *Manager {
	return &Manager{
		surface:      surface,
		colors:       colors,
		fonts:        fonts,
		status:       status,
		byID:         make(map[styledtext.StyleID]int),
		nextID:       1,
		defaultColor: DefaultColor,
		defaultFont:  DefaultFont,
		logger:       zerolog.Nop(),
	}
}

// SetLogger configures the logger for overlay events
func (m *Manager) SetLogger(l zerolog.Logger) {
	m.logger = l
}

// SetDefaults replaces the style reported where no overlay applies. An
// invalid font keeps the current default font.
func (m *Manager) SetDefaults(c color.Color, f Font) {
	if c != nil {
		m.defaultColor = toNRGBA(c)
	}
	if f.Validate() == nil {
		m.defaultFont = f
	}
}

// Defaults returns the style reported where no overlay applies
func (m *Manager) Defaults() (color.NRGBA, Font) {
	return m.defaultColor, m.defaultFont
}

// Overlays returns a copy of the overlays in creation order
func (m *Manager) Overlays() []Overlay {
	out := make([]Overlay, len(m.overlays))
	copy(out, m.overlays)
	return out
}

// EffectiveAt returns the colour and font of the most recently created
// overlays of each kind covering pos, or the defaults.
func (m *Manager) EffectiveAt(pos int) (color.NRGBA, Font) {
	c, f := m.defaultColor, m.defaultFont
	for _, id := range m.surface.StylesCovering(pos) {
		i, ok := m.byID[id]
		if !ok {
			continue
		}
		switch o := m.overlays[i]; o.Kind {
		case KindColor:
			c = o.Color
		case KindFont:
			f = o.Font
		}
	}
	return c, f
}

// Effective returns the effective style at the selection anchor, or the
// defaults when nothing is selected.
func (m *Manager) Effective() (color.NRGBA, Font) {
	r, ok := m.surface.SelectionRange()
	if !ok {
		return m.defaultColor, m.defaultFont
	}
	return m.EffectiveAt(r.Start)
}

// RequestColorChange opens the colour picker seeded with the effective
// colour and applies the confirmed colour to the selection.
func (m *Manager) RequestColorChange() {
	initial, _ := m.Effective()
	m.colors.PickColor(initial, func(c color.Color) {
		if _, err := m.ApplyColor(c); err != nil {
			m.logger.Debug().Err(err).Msg("colour not applied")
		}
	})
}

// RequestFontChange opens the font picker seeded with the effective font and
// applies the confirmed font to the selection.
func (m *Manager) RequestFontChange() {
	_, initial := m.Effective()
	m.fonts.PickFont(initial, func(f Font) {
		if _, err := m.ApplyFont(f); err != nil {
			m.logger.Debug().Err(err).Msg("font not applied")
		}
	})
}

// OnSelectionChanged refreshes the status displays from the selection
func (m *Manager) OnSelectionChanged() {
	if m.status == nil {
		return
	}
	c, f := m.Effective()
	m.status.ShowColor(c)
	m.status.ShowFont(f)
}

// ApplyColor records a colour overlay over the current selection
func (m *Manager) ApplyColor(c color.Color) (Overlay, error) {
	if c == nil {
		return Overlay{}, ErrInvalidColor
	}
	o, err := m.add(Overlay{Kind: KindColor, Color: toNRGBA(c)})
	if err != nil {
		return o, err
	}
	if m.status != nil {
		m.status.ShowColor(o.Color)
	}
	return o, nil
}

// ApplyFont records a font overlay over the current selection
func (m *Manager) ApplyFont(f Font) (Overlay, error) {
	if err := f.Validate(); err != nil {
		return Overlay{}, err
	}
	o, err := m.add(Overlay{Kind: KindFont, Font: f})
	if err != nil {
		return o, err
	}
	if m.status != nil {
		m.status.ShowFont(o.Font)
	}
	return o, nil
}

// add binds o to the selection, appends it and hands it to the surface
func (m *Manager) add(o Overlay) (Overlay, error) {
	r, ok := m.surface.SelectionRange()
	if !ok {
		return Overlay{}, ErrEmptySelection
	}
	o.ID = m.nextID
	o.Range = r
	m.nextID++

	m.byID[o.ID] = len(m.overlays)
	m.overlays = append(m.overlays, o)
	m.surface.ApplyRangeStyle(o.ID, o.Range, o.style())

	m.logger.Debug().
		Int("id", int(o.ID)).
		Str("kind", o.Kind.String()).
		Int("start", r.Start).
		Int("end", r.End).
		Msg("overlay applied")
	return o, nil
}
