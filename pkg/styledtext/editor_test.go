package styledtext

import (
	"image/color"
	"os"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
)

func TestMain(m *testing.M) {
	// Fixed-width metrics keep hit testing deterministic.
	measureText = func(text string, font TextFont, _ fyne.Resource) (fyne.Size, float32) {
		n := float32(len([]rune(text)))
		return fyne.NewSize(n*font.Size*0.6, font.Size+4), font.Size
	}
	os.Exit(m.Run())
}

type memClipboard struct {
	content string
}

func (c *memClipboard) Content() string           { return c.content }
func (c *memClipboard) SetContent(content string) { c.content = content }

var red = color.NRGBA{R: 255, A: 255}

func newTestEditor(t *testing.T, text string) *Editor {
	t.Helper()
	_ = test.NewApp()
	editor := NewEditor()
	editor.SetText(text)
	return editor
}

func TestNewEditor(t *testing.T) {
	editor := newTestEditor(t, "")

	if editor.Text() != "" {
		t.Errorf("Expected empty content, got '%s'", editor.Text())
	}
	if _, ok := editor.SelectionRange(); ok {
		t.Error("Expected no selection on a new editor")
	}
	if editor.DefaultFont().Size != 12 {
		t.Errorf("Expected default font size 12, got %f", editor.DefaultFont().Size)
	}
	if editor.GetTheme().Name != "Light" {
		t.Errorf("Expected light theme, got %s", editor.GetTheme().Name)
	}
}

func TestSelectionRange(t *testing.T) {
	editor := newTestEditor(t, "hello world")

	editor.Select(Range{Start: 8, End: 2})
	r, ok := editor.SelectionRange()
	if !ok {
		t.Fatal("Expected a selection")
	}
	if r != (Range{Start: 2, End: 8}) {
		t.Errorf("Expected normalized range [2,8), got %v", r)
	}
	if editor.SelectedText() != "llo wo" {
		t.Errorf("Unexpected selected text '%s'", editor.SelectedText())
	}

	editor.SetCursorPosition(4)
	if _, ok := editor.SelectionRange(); ok {
		t.Error("Collapsed selection should report no range")
	}

	editor.Select(Range{Start: -5, End: 100})
	r, _ = editor.SelectionRange()
	if r != (Range{Start: 0, End: 11}) {
		t.Errorf("Expected selection clamped to content, got %v", r)
	}
}

func TestSelectionChangedCallback(t *testing.T) {
	editor := newTestEditor(t, "abc")
	calls := 0
	editor.SetOnSelectionChanged(func() { calls++ })

	editor.Select(Range{Start: 0, End: 2})
	editor.SetCursorPosition(1)
	test.Type(editor, "x")

	if calls != 3 {
		t.Errorf("Expected 3 selection notifications, got %d", calls)
	}
}

func TestStylesCoveringOrder(t *testing.T) {
	editor := newTestEditor(t, "0123456789abcdef")

	editor.ApplyRangeStyle(1, Range{Start: 5, End: 10}, Style{Color: red})
	editor.ApplyRangeStyle(2, Range{Start: 7, End: 12}, Style{Color: color.Black})
	editor.ApplyRangeStyle(3, Range{Start: 3, End: 3}, Style{Color: red})

	got := editor.StylesCovering(8)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Expected [1 2] at 8, got %v", got)
	}
	if got := editor.StylesCovering(5); len(got) != 1 || got[0] != 1 {
		t.Errorf("Expected [1] at 5, got %v", got)
	}
	if got := editor.StylesCovering(12); len(got) != 0 {
		t.Errorf("Range end is exclusive, got %v", got)
	}
	if _, ok := editor.StyleRange(3); ok {
		t.Error("Empty range must not be recorded")
	}
}

func TestStyleRangeRemapping(t *testing.T) {
	tests := []struct {
		name string
		edit func(e *Editor)
		want Range
		text string
	}{
		{
			name: "insert before shifts",
			edit: func(e *Editor) { e.SetCursorPosition(0); e.InsertText("ab") },
			want: Range{Start: 7, End: 12},
			text: "ab0123456789",
		},
		{
			name: "insert at start shifts",
			edit: func(e *Editor) { e.SetCursorPosition(5); e.InsertText("x") },
			want: Range{Start: 6, End: 11},
			text: "01234x56789",
		},
		{
			name: "insert inside extends",
			edit: func(e *Editor) { e.SetCursorPosition(7); e.InsertText("xy") },
			want: Range{Start: 5, End: 12},
			text: "0123456xy789",
		},
		{
			name: "insert at end leaves range",
			edit: func(e *Editor) { e.SetCursorPosition(10); e.InsertText("!") },
			want: Range{Start: 5, End: 10},
			text: "0123456789!",
		},
		{
			name: "delete before shifts back",
			edit: func(e *Editor) { e.Select(Range{Start: 0, End: 2}); e.DeleteSelection() },
			want: Range{Start: 3, End: 8},
			text: "23456789",
		},
		{
			name: "delete overlapping start trims",
			edit: func(e *Editor) { e.Select(Range{Start: 3, End: 7}); e.DeleteSelection() },
			want: Range{Start: 3, End: 6},
			text: "012789",
		},
		{
			name: "delete covering collapses",
			edit: func(e *Editor) { e.Select(Range{Start: 4, End: 10}); e.DeleteSelection() },
			want: Range{Start: 4, End: 4},
			text: "0123",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			editor := newTestEditor(t, "0123456789")
			editor.ApplyRangeStyle(1, Range{Start: 5, End: 10}, Style{Color: red})

			tc.edit(editor)

			if editor.Text() != tc.text {
				t.Errorf("Expected text '%s', got '%s'", tc.text, editor.Text())
			}
			got, ok := editor.StyleRange(1)
			if !ok {
				t.Fatal("Style range disappeared")
			}
			if got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestTyping(t *testing.T) {
	editor := newTestEditor(t, "")
	changed := ""
	editor.SetOnChanged(func(s string) { changed = s })

	test.Type(editor, "hello")
	editor.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	test.Type(editor, "world")

	if editor.Text() != "hello\nworld" {
		t.Errorf("Unexpected content '%s'", editor.Text())
	}
	if changed != editor.Text() {
		t.Errorf("OnChanged saw '%s'", changed)
	}

	editor.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	if editor.Text() != "hello\nworl" {
		t.Errorf("Backspace failed, got '%s'", editor.Text())
	}

	editor.TypedKey(&fyne.KeyEvent{Name: fyne.KeyHome})
	editor.TypedKey(&fyne.KeyEvent{Name: fyne.KeyDelete})
	if editor.Text() != "hello\norl" {
		t.Errorf("Delete failed, got '%s'", editor.Text())
	}

	editor.Select(Range{Start: 0, End: 5})
	test.Type(editor, "J")
	if editor.Text() != "J\norl" {
		t.Errorf("Typing over a selection should replace it, got '%s'", editor.Text())
	}
}

func TestCursorNavigation(t *testing.T) {
	editor := newTestEditor(t, "abcdef\nxy\nlonger line")
	editor.SetCursorPosition(4)

	editor.TypedKey(&fyne.KeyEvent{Name: fyne.KeyDown})
	if editor.CursorPosition() != 9 {
		t.Errorf("Down should clamp to the short line end, got %d", editor.CursorPosition())
	}
	editor.TypedKey(&fyne.KeyEvent{Name: fyne.KeyDown})
	if editor.CursorPosition() != 12 {
		t.Errorf("Down should keep column 2, got %d", editor.CursorPosition())
	}
	editor.TypedKey(&fyne.KeyEvent{Name: fyne.KeyUp})
	editor.TypedKey(&fyne.KeyEvent{Name: fyne.KeyUp})
	if editor.CursorPosition() != 2 {
		t.Errorf("Up twice should land on column 2 of line 1, got %d", editor.CursorPosition())
	}
	editor.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEnd})
	if editor.CursorPosition() != 6 {
		t.Errorf("End should move to line end, got %d", editor.CursorPosition())
	}
}

func TestShiftSelection(t *testing.T) {
	editor := newTestEditor(t, "abcdef")
	editor.SetCursorPosition(1)

	editor.KeyDown(&fyne.KeyEvent{Name: "LeftShift"})
	editor.TypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	editor.TypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	editor.KeyUp(&fyne.KeyEvent{Name: "LeftShift"})

	if got := editor.SelectedText(); got != "bc" {
		t.Errorf("Expected 'bc' selected, got '%s'", got)
	}

	editor.TypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	if _, ok := editor.SelectionRange(); ok {
		t.Error("Moving without shift should collapse the selection")
	}
}

func TestClipboardShortcuts(t *testing.T) {
	editor := newTestEditor(t, "copy me")
	clip := &memClipboard{}

	editor.TypedShortcut(&fyne.ShortcutSelectAll{})
	editor.TypedShortcut(&fyne.ShortcutCopy{Clipboard: clip})
	if clip.content != "copy me" {
		t.Errorf("Copy stored '%s'", clip.content)
	}

	editor.Select(Range{Start: 0, End: 5})
	editor.TypedShortcut(&fyne.ShortcutCut{Clipboard: clip})
	if editor.Text() != "me" || clip.content != "copy " {
		t.Errorf("Cut left '%s', clipboard '%s'", editor.Text(), clip.content)
	}

	editor.SetCursorPosition(2)
	editor.TypedShortcut(&fyne.ShortcutPaste{Clipboard: clip})
	if editor.Text() != "mecopy " {
		t.Errorf("Paste produced '%s'", editor.Text())
	}
}

func TestUnhandledShortcutsAreForwarded(t *testing.T) {
	editor := newTestEditor(t, "text")
	export := &desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: fyne.KeyModifierShortcutDefault}

	fired := 0
	editor.AddShortcut(export, func(fyne.Shortcut) { fired++ })
	editor.TypedShortcut(export)
	editor.TypedShortcut(&fyne.ShortcutSelectAll{})

	if fired != 1 {
		t.Errorf("Expected the custom shortcut to fire once, got %d", fired)
	}
}

func TestTapAndDrag(t *testing.T) {
	editor := newTestEditor(t, "abcdef\nghijkl")
	w := test.NewWindow(editor)
	defer w.Close()
	w.Resize(fyne.NewSize(400, 200))

	// 12pt fixed width: each rune is 7.2 wide, each line 16 high.
	test.TapAt(editor, fyne.NewPos(padding+7.2*3, padding+2))
	if editor.CursorPosition() != 3 {
		t.Errorf("Tap should place caret at 3, got %d", editor.CursorPosition())
	}

	editor.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(padding+7.2*2, padding+16+2)},
		Dragged:    fyne.NewDelta(-7.2, 16),
	})
	editor.DragEnd()

	r, ok := editor.SelectionRange()
	if !ok {
		t.Fatal("Drag should select text")
	}
	if r != (Range{Start: 3, End: 9}) {
		t.Errorf("Expected drag selection [3,9), got %v", r)
	}
}

func TestResolveLastStyleWins(t *testing.T) {
	editor := newTestEditor(t, "0123456789")
	bold := &TextFont{Family: "Sans", Size: 20, Bold: true}

	editor.ApplyRangeStyle(1, Range{Start: 0, End: 6}, Style{Color: red})
	editor.ApplyRangeStyle(2, Range{Start: 4, End: 8}, Style{Font: bold})
	editor.ApplyRangeStyle(3, Range{Start: 5, End: 6}, Style{Color: color.NRGBA{B: 255, A: 255}})

	c, f := editor.resolve(4)
	if !sameColor(c, red) || f != *bold {
		t.Errorf("Position 4 should be red and bold, got %v %v", c, f)
	}
	c, _ = editor.resolve(5)
	if ColorToHex(c) != "#0000ff" {
		t.Errorf("Position 5 should be blue, got %s", ColorToHex(c))
	}
	c, f = editor.resolve(9)
	if !sameColor(c, editor.GetTheme().Foreground) || f != editor.DefaultFont() {
		t.Error("Unstyled text should use the defaults")
	}
}

func TestLayoutRuns(t *testing.T) {
	editor := newTestEditor(t, "aaabbb\ncc")
	editor.ApplyRangeStyle(1, Range{Start: 3, End: 6}, Style{Color: red})

	layout := buildLayout(editor)
	if len(layout.lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(layout.lines))
	}
	if n := len(layout.lines[0].runs); n != 2 {
		t.Fatalf("Expected 2 runs on the first line, got %d", n)
	}
	if layout.lines[0].runs[1].text != "bbb" {
		t.Errorf("Second run should be 'bbb', got '%s'", layout.lines[0].runs[1].text)
	}

	rects := layout.selectionRects(Range{Start: 4, End: 8})
	if len(rects) != 2 {
		t.Errorf("Selection across a newline should span 2 lines, got %d", len(rects))
	}
}

func TestWordWrap(t *testing.T) {
	editor := newTestEditor(t, "aaaa bbbb cccc")

	// 12pt runes are 7.2 wide; 88 leaves 80 for text, room for two words
	editor.Resize(fyne.NewSize(88+newlineWidth, 100))
	if n := len(buildLayout(editor).lines); n != 1 {
		t.Fatalf("Without wrap the text should stay on one row, got %d", n)
	}

	editor.SetWordWrap(true)
	layout := buildLayout(editor)
	if len(layout.lines) != 2 {
		t.Fatalf("Expected 2 wrapped rows, got %d", len(layout.lines))
	}
	if layout.lines[1].start != 10 || layout.lines[1].runs[0].text != "cccc" {
		t.Errorf("Second row should start at 'cccc', got %d %q", layout.lines[1].start, layout.lines[1].runs[0].text)
	}
	if layout.lines[1].y <= layout.lines[0].y {
		t.Error("Wrapped rows should stack vertically")
	}

	editor.SetText("abcdefghijklmnopqrstuvwxyz")
	if n := len(buildLayout(editor).lines); n != 1 {
		t.Errorf("A word wider than the widget keeps one row, got %d", n)
	}

	rows := wrapRows(editor, 0, editor.Len(), 0)
	if len(rows) != 1 || rows[0] != (Range{Start: 0, End: 26}) {
		t.Errorf("Zero width should not wrap, got %v", rows)
	}
}

func TestCaretScreenPosition(t *testing.T) {
	editor := newTestEditor(t, "ab\ncd")
	w := test.NewWindow(editor)
	defer w.Close()

	editor.SetCursorPosition(4)
	origin, size := editor.ScreenBounds()
	if size != editor.Size() {
		t.Errorf("ScreenBounds should report the widget size, got %v", size)
	}

	pos, h := editor.CaretScreenPosition()
	x, y, lineHeight := editor.layout.caret(4)
	if pos != origin.AddXY(x, y) || h != lineHeight {
		t.Errorf("Caret at %v (%f), want %v (%f)", pos, h, origin.AddXY(x, y), lineHeight)
	}
	if h != 16 || pos.Y-origin.Y <= padding {
		t.Errorf("Caret should sit on the second line, got %v %f", pos, h)
	}
}

func TestColorToHex(t *testing.T) {
	if hex := ColorToHex(color.NRGBA{R: 255, A: 255}); hex != "#ff0000" {
		t.Errorf("ColorToHex = %s, expected #ff0000", hex)
	}
	if hex := ColorToHex(nil); hex != "#000000" {
		t.Errorf("A nil colour should print as black, got %s", hex)
	}
	if hex := ColorToHex(color.NRGBA{R: 18, G: 52, B: 86, A: 255}); hex != "#123456" {
		t.Errorf("ColorToHex = %s, expected #123456", hex)
	}
}
