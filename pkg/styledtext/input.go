package styledtext

import (
	"unicode"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

var (
	_ fyne.Focusable     = (*Editor)(nil)
	_ fyne.Shortcutable  = (*Editor)(nil)
	_ fyne.Tappable      = (*Editor)(nil)
	_ fyne.Draggable     = (*Editor)(nil)
	_ desktop.Keyable    = (*Editor)(nil)
	_ desktop.Cursorable = (*Editor)(nil)
)

// FocusGained is called when the editor receives keyboard focus
func (e *Editor) FocusGained() {
	e.focused = true
	e.Refresh()
}

// FocusLost is called when the editor loses keyboard focus
func (e *Editor) FocusLost() {
	e.focused = false
	e.shift = false
	e.Refresh()
}

// TypedRune handles typed characters
func (e *Editor) TypedRune(r rune) {
	if unicode.IsPrint(r) {
		e.InsertText(string(r))
	}
}

// TypedKey handles special key presses
func (e *Editor) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyBackspace:
		if e.DeleteSelection() {
			return
		}
		if e.cursor > 0 {
			e.replace(Range{Start: e.cursor - 1, End: e.cursor}, nil)
		}
	case fyne.KeyDelete:
		if e.DeleteSelection() {
			return
		}
		if e.cursor < len(e.content) {
			e.replace(Range{Start: e.cursor, End: e.cursor + 1}, nil)
		}
	case fyne.KeyReturn, fyne.KeyEnter:
		e.InsertText("\n")
	case fyne.KeyTab:
		e.InsertText(e.tab())
	case fyne.KeyLeft:
		e.moveCursor(e.cursor-1, e.shift)
	case fyne.KeyRight:
		e.moveCursor(e.cursor+1, e.shift)
	case fyne.KeyUp:
		e.moveCursor(e.cursorUp(), e.shift)
	case fyne.KeyDown:
		e.moveCursor(e.cursorDown(), e.shift)
	case fyne.KeyHome:
		e.moveCursor(e.lineStart(e.cursor), e.shift)
	case fyne.KeyEnd:
		e.moveCursor(e.lineEnd(e.cursor), e.shift)
	}
}

// KeyDown tracks the shift modifier for selection extension
func (e *Editor) KeyDown(key *fyne.KeyEvent) {
	if key.Name == desktop.KeyShiftLeft || key.Name == desktop.KeyShiftRight {
		e.shift = true
	}
}

// KeyUp tracks the shift modifier for selection extension
func (e *Editor) KeyUp(key *fyne.KeyEvent) {
	if key.Name == desktop.KeyShiftLeft || key.Name == desktop.KeyShiftRight {
		e.shift = false
	}
}

// TypedShortcut handles clipboard and select-all shortcuts and passes the
// rest to the handlers added with AddShortcut
func (e *Editor) TypedShortcut(shortcut fyne.Shortcut) {
	switch s := shortcut.(type) {
	case *fyne.ShortcutCopy:
		if text := e.SelectedText(); text != "" && s.Clipboard != nil {
			s.Clipboard.SetContent(text)
		}
	case *fyne.ShortcutCut:
		if text := e.SelectedText(); text != "" && s.Clipboard != nil {
			s.Clipboard.SetContent(text)
			e.DeleteSelection()
		}
	case *fyne.ShortcutPaste:
		if s.Clipboard != nil {
			if text := s.Clipboard.Content(); text != "" {
				e.InsertText(text)
			}
		}
	case *fyne.ShortcutSelectAll:
		e.SelectAll()
	default:
		e.shortcuts.TypedShortcut(shortcut)
	}
}

// Tapped places the caret under the pointer and takes focus
func (e *Editor) Tapped(ev *fyne.PointEvent) {
	e.requestFocus()
	pos := e.offsetAt(ev.Position)
	e.moveCursor(pos, e.shift)
}

// Dragged extends the selection from where the drag started to the pointer
func (e *Editor) Dragged(ev *fyne.DragEvent) {
	if !e.dragging {
		e.dragging = true
		e.requestFocus()
		start := ev.Position.Subtract(fyne.NewPos(ev.Dragged.DX, ev.Dragged.DY))
		e.anchor = e.offsetAt(start)
	}
	e.setSelection(e.anchor, e.offsetAt(ev.Position))
}

// DragEnd finishes a drag selection
func (e *Editor) DragEnd() {
	e.dragging = false
}

// Cursor shows the text cursor over the editor
func (e *Editor) Cursor() desktop.Cursor {
	return desktop.TextCursor
}

func (e *Editor) requestFocus() {
	if c := fyne.CurrentApp().Driver().CanvasForObject(e); c != nil {
		c.Focus(e)
	}
}

// offsetAt maps a widget-relative position to a rune offset
func (e *Editor) offsetAt(pos fyne.Position) int {
	if e.layout == nil {
		return len(e.content)
	}
	return e.layout.hit(pos)
}
