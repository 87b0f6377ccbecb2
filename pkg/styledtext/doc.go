// Package styledtext provides an editable Fyne text widget whose ranges can
// carry their own foreground colour and font.
//
// The widget owns the text, the caret and the selection. Styles are applied
// to ranges with ApplyRangeStyle and are identified by a caller supplied
// StyleID; the widget keeps every applied range in creation order, moves the
// ranges along as text is inserted or deleted, and renders overlapping styles
// so that the most recently applied one wins.
//
// Basic Usage:
//
//	editor := styledtext.NewEditor()
//	editor.SetText("hello, world")
//	editor.Select(styledtext.Range{Start: 0, End: 5})
//	editor.ApplyRangeStyle(1, styledtext.Range{Start: 0, End: 5}, styledtext.Style{Color: color.NRGBA{R: 255, A: 255}})
//
// Positions are rune offsets into the text. Ranges are half-open.
package styledtext
