package styledtext

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// FontResolver returns the font resource for a family, or nil when the
// family should be drawn with the theme font.
type FontResolver func(family string) fyne.Resource

// Editor is an editable text widget with per-range styling
type Editor struct {
	widget.BaseWidget

	content []rune
	cursor  int
	anchor  int // equals cursor when nothing is selected
	spans   []span

	theme    *Theme
	font     TextFont
	tabSize  int
	wrap     bool
	resolver FontResolver

	focused  bool
	shift    bool
	dragging bool
	layout   *textLayout

	shortcuts          fyne.ShortcutHandler
	onChanged          func(string)
	onSelectionChanged func()
}

// NewEditor creates a new styled text editor
func NewEditor() *Editor {
	editor := &Editor{
		theme:   GetDefaultTheme(),
		font:    TextFont{Family: "JetBrains Mono", Size: 12},
		tabSize: 4,
	}
	editor.ExtendBaseWidget(editor)
	return editor
}

// CreateRenderer creates the renderer for the editor
func (e *Editor) CreateRenderer() fyne.WidgetRenderer {
	return newEditorRenderer(e)
}

// SetText replaces the whole content. Existing style ranges collapse to
// empty ranges at the start of the text.
func (e *Editor) SetText(text string) {
	e.replace(Range{Start: 0, End: len(e.content)}, []rune(text))
}

// Text returns the current content
func (e *Editor) Text() string {
	return string(e.content)
}

// Len returns the content length in runes
func (e *Editor) Len() int {
	return len(e.content)
}

// SetTheme sets the editor colours
func (e *Editor) SetTheme(theme *Theme) {
	if theme == nil {
		return
	}
	e.theme = theme
	e.Refresh()
}

// GetTheme returns the current editor colours
func (e *Editor) GetTheme() *Theme {
	return e.theme
}

// SetDefaultFont sets the font used for text no range style overrides
func (e *Editor) SetDefaultFont(font TextFont) {
	e.font = font
	e.Refresh()
}

// DefaultFont returns the font used for unstyled text
func (e *Editor) DefaultFont() TextFont {
	return e.font
}

// SetFontResolver installs the lookup used to load font files by family
func (e *Editor) SetFontResolver(resolver FontResolver) {
	e.resolver = resolver
	e.Refresh()
}

// SetTabSize sets how many spaces the tab key inserts
func (e *Editor) SetTabSize(size int) {
	if size > 0 {
		e.tabSize = size
	}
}

// SetWordWrap breaks lines at word boundaries to fit the widget width. A
// word wider than the widget keeps a row of its own.
func (e *Editor) SetWordWrap(wrap bool) {
	if e.wrap == wrap {
		return
	}
	e.wrap = wrap
	e.Refresh()
}

// WordWrap reports whether lines are wrapped to the widget width
func (e *Editor) WordWrap() bool {
	return e.wrap
}

// SetOnChanged sets the callback invoked after the content changes
func (e *Editor) SetOnChanged(callback func(string)) {
	e.onChanged = callback
}

// AddShortcut registers a handler for a shortcut the editor does not handle
// itself. Window shortcuts do not reach the canvas while the editor has focus.
func (e *Editor) AddShortcut(shortcut fyne.Shortcut, handler func(fyne.Shortcut)) {
	e.shortcuts.AddShortcut(shortcut, handler)
}

// SetOnSelectionChanged sets the callback invoked whenever the selection or
// caret moves, including when the selection collapses to a caret.
func (e *Editor) SetOnSelectionChanged(callback func()) {
	e.onSelectionChanged = callback
}

// SelectionRange returns the selected range, or false when the selection is
// empty.
func (e *Editor) SelectionRange() (Range, bool) {
	r := Range{Start: e.anchor, End: e.cursor}.normalized()
	if r.Empty() {
		return Range{}, false
	}
	return r, true
}

// SelectedText returns the selected text, or "" if nothing is selected
func (e *Editor) SelectedText() string {
	r, ok := e.SelectionRange()
	if !ok {
		return ""
	}
	return string(e.content[r.Start:r.End])
}

// Select selects r, clamped to the content. The caret ends at r.End.
func (e *Editor) Select(r Range) {
	r = r.clamp(len(e.content))
	e.setSelection(r.Start, r.End)
}

// SelectAll selects the whole content
func (e *Editor) SelectAll() {
	e.setSelection(0, len(e.content))
}

// CursorPosition returns the caret offset
func (e *Editor) CursorPosition() int {
	return e.cursor
}

// SetCursorPosition moves the caret to pos and clears the selection
func (e *Editor) SetCursorPosition(pos int) {
	pos = clampInt(pos, 0, len(e.content))
	e.setSelection(pos, pos)
}

// ApplyRangeStyle records style over r under id and re-renders the text.
// Ranges outside the content are clamped; an empty range is ignored.
func (e *Editor) ApplyRangeStyle(id StyleID, r Range, style Style) {
	r = r.clamp(len(e.content))
	if r.Empty() {
		return
	}
	e.spans = append(e.spans, span{id: id, rng: r, style: style})
	e.Refresh()
}

// StylesCovering returns the IDs of the styles whose range covers pos, in the
// order they were applied.
func (e *Editor) StylesCovering(pos int) []StyleID {
	var ids []StyleID
	for _, s := range e.spans {
		if s.rng.Contains(pos) {
			ids = append(ids, s.id)
		}
	}
	return ids
}

// StyleRange returns the current, remapped range of the style with id.
func (e *Editor) StyleRange(id StyleID) (Range, bool) {
	for _, s := range e.spans {
		if s.id == id {
			return s.rng, true
		}
	}
	return Range{}, false
}

// CaretScreenPosition returns the top of the caret as an absolute canvas
// position, along with the caret height.
func (e *Editor) CaretScreenPosition() (fyne.Position, float32) {
	origin := fyne.CurrentApp().Driver().AbsolutePositionForObject(e)
	if e.layout == nil {
		return origin, 0
	}
	x, y, h := e.layout.caret(e.cursor)
	return origin.Add(fyne.NewPos(x, y)), h
}

// ScreenBounds returns the widget's absolute position and size on the canvas.
func (e *Editor) ScreenBounds() (fyne.Position, fyne.Size) {
	return fyne.CurrentApp().Driver().AbsolutePositionForObject(e), e.Size()
}

// InsertText inserts text at the caret, replacing any selection
func (e *Editor) InsertText(text string) {
	r, ok := e.SelectionRange()
	if !ok {
		r = Range{Start: e.cursor, End: e.cursor}
	}
	e.replace(r, []rune(text))
}

// DeleteSelection removes the selected text, if any
func (e *Editor) DeleteSelection() bool {
	r, ok := e.SelectionRange()
	if !ok {
		return false
	}
	e.replace(r, nil)
	return true
}

// replace swaps the runes in r for ins, remaps every style range and leaves
// the caret after the inserted text.
func (e *Editor) replace(r Range, ins []rune) {
	r = r.clamp(len(e.content))

	next := make([]rune, 0, len(e.content)-r.Len()+len(ins))
	next = append(next, e.content[:r.Start]...)
	next = append(next, ins...)
	next = append(next, e.content[r.End:]...)
	e.content = next

	for i := range e.spans {
		if !r.Empty() {
			e.spans[i].remapDelete(r)
		}
		if len(ins) > 0 {
			e.spans[i].remapInsert(r.Start, len(ins))
		}
	}

	pos := r.Start + len(ins)
	e.anchor, e.cursor = pos, pos
	// refresh first so listeners see the new layout
	e.Refresh()
	if e.onChanged != nil {
		e.onChanged(string(e.content))
	}
	if e.onSelectionChanged != nil {
		e.onSelectionChanged()
	}
}

// setSelection moves anchor and caret, refreshes and notifies.
func (e *Editor) setSelection(anchor, cursor int) {
	e.anchor = anchor
	e.cursor = cursor
	e.Refresh()
	if e.onSelectionChanged != nil {
		e.onSelectionChanged()
	}
}

// moveCursor moves the caret to pos, extending the selection when extend is
// set and collapsing it otherwise.
func (e *Editor) moveCursor(pos int, extend bool) {
	pos = clampInt(pos, 0, len(e.content))
	anchor := pos
	if extend {
		anchor = e.anchor
	}
	e.setSelection(anchor, pos)
}

// lineStart returns the offset of the start of the line containing pos
func (e *Editor) lineStart(pos int) int {
	for pos > 0 && e.content[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the offset of the newline ending the line containing pos
func (e *Editor) lineEnd(pos int) int {
	for pos < len(e.content) && e.content[pos] != '\n' {
		pos++
	}
	return pos
}

// cursorUp returns the offset one line above the caret, keeping the column
func (e *Editor) cursorUp() int {
	start := e.lineStart(e.cursor)
	if start == 0 {
		return 0
	}
	col := e.cursor - start
	prevStart := e.lineStart(start - 1)
	return minInt(prevStart+col, start-1)
}

// cursorDown returns the offset one line below the caret, keeping the column
func (e *Editor) cursorDown() int {
	end := e.lineEnd(e.cursor)
	if end == len(e.content) {
		return len(e.content)
	}
	col := e.cursor - e.lineStart(e.cursor)
	nextStart := end + 1
	return minInt(nextStart+col, e.lineEnd(nextStart))
}

// tab returns the text inserted by the tab key
func (e *Editor) tab() string {
	return strings.Repeat(" ", e.tabSize)
}

// resolve computes the colour and font the rune at pos is drawn with.
// Later spans win over earlier ones for each attribute independently.
func (e *Editor) resolve(pos int) (color.Color, TextFont) {
	c, f := e.theme.Foreground, e.font
	for _, s := range e.spans {
		if !s.rng.Contains(pos) {
			continue
		}
		if s.style.Color != nil {
			c = s.style.Color
		}
		if s.style.Font != nil {
			f = *s.style.Font
		}
	}
	return c, f
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
