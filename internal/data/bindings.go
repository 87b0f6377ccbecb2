package data

import (
	"fyne.io/fyne/v2/data/binding"
)

// Global data bindings
var (
	// ColorStatus holds the "Color: #rrggbb" status line
	ColorStatus binding.String

	// FontStatus holds the "Font: ..." status line
	FontStatus binding.String

	// DocumentStats holds the character and selection counts
	DocumentStats binding.String
)

// Init creates all global bindings
func Init() {
	ColorStatus = binding.NewString()
	FontStatus = binding.NewString()
	DocumentStats = binding.NewString()
}

// SetColorStatus updates the colour status line
func SetColorStatus(text string) {
	ensure()
	ColorStatus.Set(text)
}

// SetFontStatus updates the font status line
func SetFontStatus(text string) {
	ensure()
	FontStatus.Set(text)
}

// SetDocumentStats updates the document statistics line
func SetDocumentStats(text string) {
	ensure()
	DocumentStats.Set(text)
}

func ensure() {
	if ColorStatus == nil {
		Init()
	}
}
