package main

import (
	"image/color"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ispapp/styledit/internal/dialogs"
	"github.com/ispapp/styledit/internal/logging"
	"github.com/ispapp/styledit/internal/styling"
	"github.com/ispapp/styledit/internal/widgets"
	"github.com/ispapp/styledit/pkg/styledtext"
)

const sample = `package main

import "fmt"

func main() {
	fmt.Println("hello, styled world")
}
`

func main() {
	logger := logging.New(os.Stderr, "debug")

	myApp := app.New()
	myWindow := myApp.NewWindow("Styled Text Demo")
	myWindow.Resize(fyne.NewSize(640, 420))

	editor := styledtext.NewEditor()
	editor.SetText(sample)

	status := widgets.NewStatusPanel()
	library := dialogs.NewFontLibrary(nil)
	manager := styling.NewManager(editor,
		dialogs.NewColorPicker(myWindow),
		dialogs.NewFontPicker(myWindow, library),
		status)
	manager.SetLogger(logging.Component(logger, "styling"))
	editor.SetOnSelectionChanged(manager.OnSelectionChanged)

	// Pre-applied overlays: keywords, the string literal and a bold call
	overlays := []struct {
		word  string
		color color.Color
		font  *styling.Font
	}{
		{word: "package", color: color.NRGBA{R: 0x00, G: 0x33, B: 0xb3, A: 255}},
		{word: "import", color: color.NRGBA{R: 0x00, G: 0x33, B: 0xb3, A: 255}},
		{word: "func", color: color.NRGBA{R: 0x00, G: 0x33, B: 0xb3, A: 255}},
		{word: `"hello, styled world"`, color: color.NRGBA{R: 0x06, G: 0x7d, B: 0x17, A: 255}},
		{word: "Println", font: &styling.Font{Family: "JetBrains Mono", Size: 14, Weight: styling.WeightBold, Slant: styling.SlantItalic}},
	}
	for _, o := range overlays {
		start := runeIndex(sample, o.word)
		if start < 0 {
			continue
		}
		editor.Select(styledtext.Range{Start: start, End: start + len([]rune(o.word))})
		if o.color != nil {
			manager.ApplyColor(o.color)
		}
		if o.font != nil {
			manager.ApplyFont(*o.font)
		}
	}
	editor.SetCursorPosition(0)

	buttons := container.NewVBox(
		widget.NewButton("Choose Font", manager.RequestFontChange),
		widget.NewButton("Choose Color", manager.RequestColorChange),
		widget.NewCheck("Dark", func(on bool) {
			if on {
				editor.SetTheme(styledtext.GetDarkTheme())
			} else {
				editor.SetTheme(styledtext.GetDefaultTheme())
			}
		}),
	)
	content := container.NewBorder(nil, container.NewBorder(nil, nil, nil, buttons, status), nil, nil,
		container.NewScroll(editor))

	myWindow.SetContent(content)
	myWindow.Canvas().Focus(editor)
	myWindow.ShowAndRun()
}

// runeIndex returns the rune offset of the first occurrence of sub in s, or -1
func runeIndex(s, sub string) int {
	rs, subs := []rune(s), []rune(sub)
	for i := 0; i+len(subs) <= len(rs); i++ {
		if string(rs[i:i+len(subs)]) == sub {
			return i
		}
	}
	return -1
}
