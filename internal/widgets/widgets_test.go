package widgets

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ispapp/styledit/internal/data"
	"github.com/ispapp/styledit/internal/settings"
	"github.com/ispapp/styledit/internal/styling"
	"github.com/ispapp/styledit/internal/ui/theme"
)

func TestStatusPanelShowsDefaults(t *testing.T) {
	_ = test.NewApp()
	p := NewStatusPanel()

	if p.ColorText() != "Color: #000000" {
		t.Errorf("Unexpected colour line %q", p.ColorText())
	}
	if got, _ := data.FontStatus.Get(); got != "Font: JetBrains Mono, Size: 12, Weight: normal, Slant: roman" {
		t.Errorf("Unexpected font line %q", got)
	}
}

func TestStatusPanelRecolours(t *testing.T) {
	_ = test.NewApp()
	p := NewStatusPanel()
	green := color.NRGBA{G: 200, A: 255}

	p.ShowColor(green)
	p.ShowFont(styling.Font{Family: "Serif", Size: 20, Weight: styling.WeightBold, Slant: styling.SlantItalic})

	if p.ColorText() != "Color: #00c800" || p.colorText.Color != green {
		t.Errorf("Colour line not updated: %q %v", p.ColorText(), p.colorText.Color)
	}
	if got, _ := data.ColorStatus.Get(); got != "Color: #00c800" {
		t.Errorf("Colour binding not updated: %q", got)
	}
	if got, _ := data.FontStatus.Get(); got != "Font: Serif, Size: 20, Weight: bold, Slant: italic" {
		t.Errorf("Font binding not updated: %q", got)
	}

	p.ApplyPalette(theme.DarkPalette)
	if p.Background() != theme.DarkPalette.Color(theme.RolePanel) {
		t.Error("Panel background should follow the palette")
	}
	if p.ColorTextColor() != green {
		t.Error("A chosen colour should survive a palette change")
	}
	if p.fontText.Color != theme.DarkPalette.Color(theme.RolePanelText) {
		t.Errorf("Font line should use the panel text colour, got %v", p.fontText.Color)
	}
}

func TestStatusPanelDefaultColourReadableOnDarkPanel(t *testing.T) {
	_ = test.NewApp()
	p := NewStatusPanel()
	p.ApplyPalette(theme.DarkPalette)

	p.ShowColor(styling.DefaultColor)
	if p.ColorText() != "Color: #000000" {
		t.Errorf("Unexpected colour line %q", p.ColorText())
	}
	if p.ColorTextColor() != theme.DarkPalette.Color(theme.RolePanelText) {
		t.Errorf("The default colour should be drawn in panel text, got %v", p.ColorTextColor())
	}

	p.ApplyPalette(theme.LightPalette)
	if p.ColorTextColor() != theme.LightPalette.Color(theme.RolePanelText) {
		t.Error("Switching palettes should recolour the default colour line")
	}

	blue := color.NRGBA{B: 255, A: 255}
	p.SetDefaultColor(blue)
	p.ShowColor(color.NRGBA{A: 255})
	if p.ColorTextColor() != (color.NRGBA{A: 255}) {
		t.Error("Black is an overlay colour once the default changes")
	}
	p.ShowColor(blue)
	if p.ColorTextColor() != theme.LightPalette.Color(theme.RolePanelText) {
		t.Error("The configured default should be drawn in panel text")
	}
}

func TestStatusPanelShowStats(t *testing.T) {
	_ = test.NewApp()
	p := NewStatusPanel()
	p.ShowStats("5 characters")

	if p.statsText.Text != "5 characters" {
		t.Errorf("Stats line not updated: %q", p.statsText.Text)
	}
	if got, _ := data.DocumentStats.Get(); got != "5 characters" {
		t.Errorf("Stats binding not updated: %q", got)
	}
}

func TestSettingsFieldsStore(t *testing.T) {
	_ = test.NewApp()
	fields := newSettingsFields()
	s := settings.DefaultSettings()
	fields.load(s)

	if errs := fields.store(s); len(errs) != 0 {
		t.Fatalf("Unchanged defaults should store cleanly, got %v", errs)
	}

	fields.fontSize.SetText("huge")
	fields.width.SetText("-1")
	fields.theme.SetSelected("dark")
	fields.wordWrap.SetChecked(false)
	fields.tabSize.SetText("8")
	errs := fields.store(s)
	if len(errs) != 2 {
		t.Errorf("Expected a parse error and a validation error, got %v", errs)
	}
	if s.Theme != "dark" || s.WordWrap || s.TabSize != 8 {
		t.Errorf("Form values should be copied, got %+v", s)
	}

	fields.load(settings.DefaultSettings())
	fields.tabSize.SetText("0")
	if errs := fields.store(s); len(errs) != 1 {
		t.Errorf("A zero tab size should be rejected, got %v", errs)
	}
}
