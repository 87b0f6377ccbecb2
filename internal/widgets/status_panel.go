package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ispapp/styledit/internal/data"
	"github.com/ispapp/styledit/internal/styling"
	"github.com/ispapp/styledit/internal/ui/theme"
)

// StatusPanel shows the effective colour and font of the selection. The
// colour line is drawn in the colour it names unless that is the default
// colour, which uses the palette's panel text colour like the other lines.
type StatusPanel struct {
	widget.BaseWidget

	colorText  *canvas.Text
	fontText   *canvas.Text
	statsText  *canvas.Text
	background *canvas.Rectangle

	shown        color.Color
	defaultColor color.Color
	panelText    color.Color
}

// NewStatusPanel creates a panel showing the default style
func NewStatusPanel() *StatusPanel {
	if data.ColorStatus == nil {
		data.Init()
	}
	text := theme.LightPalette.Color(theme.RolePanelText)
	p := &StatusPanel{
		colorText:    canvas.NewText("", text),
		fontText:     canvas.NewText("", text),
		statsText:    canvas.NewText("", text),
		background:   canvas.NewRectangle(theme.LightPalette.Color(theme.RolePanel)),
		defaultColor: styling.DefaultColor,
		panelText:    text,
	}
	p.colorText.TextStyle = fyne.TextStyle{Bold: true}
	p.ExtendBaseWidget(p)

	p.ShowColor(styling.DefaultColor)
	p.ShowFont(styling.DefaultFont)
	return p
}

// SetDefaultColor tells the panel which colour applies to unstyled text
func (p *StatusPanel) SetDefaultColor(c color.Color) {
	p.defaultColor = c
	if p.shown != nil {
		p.ShowColor(p.shown)
	}
}

// ShowColor publishes the colour line and recolours it
func (p *StatusPanel) ShowColor(c color.Color) {
	text := styling.FormatColorStatus(c)
	data.SetColorStatus(text)
	p.shown = c
	p.colorText.Text = text
	p.colorText.Color = p.colorLineColor()
	p.colorText.Refresh()
}

// ShowFont publishes the font line
func (p *StatusPanel) ShowFont(f styling.Font) {
	text := styling.FormatFontStatus(f)
	data.SetFontStatus(text)
	p.fontText.Text = text
	p.fontText.Refresh()
}

// ShowStats publishes the document statistics line
func (p *StatusPanel) ShowStats(stats string) {
	data.SetDocumentStats(stats)
	p.statsText.Text = stats
	p.statsText.Refresh()
}

// ColorText returns the colour status line as displayed
func (p *StatusPanel) ColorText() string {
	return p.colorText.Text
}

// ColorTextColor returns the colour the colour line is drawn in
func (p *StatusPanel) ColorTextColor() color.Color {
	return p.colorText.Color
}

// ApplyPalette repaints the panel background and its text
func (p *StatusPanel) ApplyPalette(pal theme.Palette) {
	p.background.FillColor = pal.Color(theme.RolePanel)
	p.background.Refresh()

	p.panelText = pal.Color(theme.RolePanelText)
	for _, t := range []*canvas.Text{p.fontText, p.statsText} {
		t.Color = p.panelText
		t.Refresh()
	}
	p.colorText.Color = p.colorLineColor()
	p.colorText.Refresh()
}

// Background returns the panel background colour
func (p *StatusPanel) Background() color.Color {
	return p.background.FillColor
}

// CreateRenderer implements fyne.Widget
func (p *StatusPanel) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewStack(
		p.background,
		container.NewPadded(container.NewVBox(p.colorText, p.fontText, p.statsText)),
	)
	return widget.NewSimpleRenderer(content)
}

func (p *StatusPanel) colorLineColor() color.Color {
	if p.shown == nil || sameColor(p.shown, p.defaultColor) {
		return p.panelText
	}
	return p.shown
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
