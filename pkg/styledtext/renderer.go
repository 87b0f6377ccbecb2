package styledtext

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

const caretWidth float32 = 2

// editorRenderer implements the renderer for the styled text editor
type editorRenderer struct {
	editor     *Editor
	background *canvas.Rectangle
	caret      *canvas.Rectangle
	selection  []fyne.CanvasObject
	texts      []fyne.CanvasObject
	objects    []fyne.CanvasObject
	width      float32 // width the wrapped layout was built for
}

// newEditorRenderer creates a new renderer for the editor
func newEditorRenderer(editor *Editor) *editorRenderer {
	r := &editorRenderer{
		editor:     editor,
		background: canvas.NewRectangle(editor.theme.Background),
		caret:      canvas.NewRectangle(editor.theme.Caret),
	}
	r.refresh()
	return r
}

// Layout positions all the visual elements
func (r *editorRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	if r.editor.wrap && (r.editor.layout == nil || r.width != size.Width) {
		r.width = size.Width
		r.refresh()
		canvas.Refresh(r.editor)
	}
}

// MinSize returns the size needed to show the whole content
func (r *editorRenderer) MinSize() fyne.Size {
	if r.editor.layout == nil {
		return fyne.NewSize(200, 100)
	}
	size := r.editor.layout.size
	if r.editor.wrap {
		// wrapped text takes the width it is given
		size.Width = 0
	}
	return size.Max(fyne.NewSize(200, 100))
}

// Refresh updates the visual representation
func (r *editorRenderer) Refresh() {
	r.refresh()
	canvas.Refresh(r.editor)
}

// Objects returns all canvas objects that make up the widget
func (r *editorRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up the renderer
func (r *editorRenderer) Destroy() {
}

// refresh rebuilds the canvas objects from the current content and styles
func (r *editorRenderer) refresh() {
	e := r.editor
	r.width = e.Size().Width
	layout := buildLayout(e)
	e.layout = layout

	r.background.FillColor = e.theme.Background
	r.background.Refresh()

	r.selection = r.selection[:0]
	if sel, ok := e.SelectionRange(); ok {
		for _, box := range layout.selectionRects(sel) {
			rect := canvas.NewRectangle(e.theme.Selection)
			rect.Move(box.min)
			rect.Resize(fyne.NewSize(box.max.X-box.min.X, box.max.Y-box.min.Y))
			r.selection = append(r.selection, rect)
		}
	}

	r.texts = r.texts[:0]
	for _, line := range layout.lines {
		for _, run := range line.runs {
			r.texts = append(r.texts, newRunText(run))
		}
	}

	x, y, h := layout.caret(e.cursor)
	r.caret.FillColor = e.theme.Caret
	r.caret.Move(fyne.NewPos(x, y))
	r.caret.Resize(fyne.NewSize(caretWidth, h))
	if e.focused {
		r.caret.Show()
	} else {
		r.caret.Hide()
	}

	objects := make([]fyne.CanvasObject, 0, len(r.selection)+len(r.texts)+2)
	objects = append(objects, r.background)
	objects = append(objects, r.selection...)
	objects = append(objects, r.texts...)
	objects = append(objects, r.caret)
	r.objects = objects
}

// newRunText creates the canvas text for one styled run
func newRunText(run glyphRun) *canvas.Text {
	c := run.color
	if c == nil {
		c = color.Black
	}
	text := canvas.NewText(run.text, c)
	text.TextSize = run.font.Size
	text.TextStyle = textStyle(run.font)
	text.FontSource = run.source
	text.Move(run.pos)
	text.Resize(run.size)
	return text
}
