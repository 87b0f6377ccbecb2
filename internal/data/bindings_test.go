package data

import "testing"

func TestStatusBindings(t *testing.T) {
	ColorStatus = nil
	SetColorStatus("Color: #ff0000")
	SetFontStatus("Font: Sans, Size: 12, Weight: normal, Slant: roman")
	SetDocumentStats("5 chars")

	if got, _ := ColorStatus.Get(); got != "Color: #ff0000" {
		t.Errorf("Unexpected colour status %q", got)
	}
	if got, _ := FontStatus.Get(); got != "Font: Sans, Size: 12, Weight: normal, Slant: roman" {
		t.Errorf("Unexpected font status %q", got)
	}
	if got, _ := DocumentStats.Get(); got != "5 chars" {
		t.Errorf("Unexpected stats %q", got)
	}
}
