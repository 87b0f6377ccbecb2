package styledtext

import (
	"image/color"
	"strings"
	"unicode"

	"fyne.io/fyne/v2"
)

const (
	padding      float32 = 4
	newlineWidth float32 = 4
)

// measureText returns the rendered size and baseline of text. Tests replace
// it with a fixed-width approximation.
var measureText = func(text string, font TextFont, source fyne.Resource) (fyne.Size, float32) {
	return fyne.CurrentApp().Driver().RenderedTextSize(text, font.Size, textStyle(font), source)
}

// textStyle maps a font description to the Fyne text style it renders with
func textStyle(font TextFont) fyne.TextStyle {
	return fyne.TextStyle{
		Bold:      font.Bold,
		Italic:    font.Italic,
		Monospace: IsMonospace(font.Family),
	}
}

// IsMonospace reports whether a family name denotes a fixed-width font
func IsMonospace(family string) bool {
	f := strings.ToLower(family)
	for _, hint := range []string{"mono", "courier", "consol", "code", "fixed"} {
		if strings.Contains(f, hint) {
			return true
		}
	}
	return false
}

// glyphRun is a stretch of one line drawn with a single colour and font
type glyphRun struct {
	start    int
	text     string
	color    color.Color
	font     TextFont
	source   fyne.Resource
	pos      fyne.Position
	size     fyne.Size
	baseline float32
	offsets  []float32 // x of each rune boundary, relative to pos
}

func (r *glyphRun) end() int {
	return r.start + len(r.offsets) - 1
}

// textLine is one row of the content: a newline-terminated line, or part of
// one when word wrap is on
type textLine struct {
	start    int
	end      int // offset of the terminating newline, the row break, or the content length
	y        float32
	height   float32
	baseline float32
	runs     []glyphRun
}

// textLayout positions every rune of the content
type textLayout struct {
	lines []textLine
	size  fyne.Size
}

// buildLayout lays the editor content out line by line
func buildLayout(e *Editor) *textLayout {
	l := &textLayout{}
	y, width := padding, float32(0)

	wrapWidth := float32(0)
	if e.wrap {
		wrapWidth = e.Size().Width - 2*padding - newlineWidth
	}

	lineStart := 0
	for i := 0; i <= len(e.content); i++ {
		if i < len(e.content) && e.content[i] != '\n' {
			continue
		}
		for _, row := range wrapRows(e, lineStart, i, wrapWidth) {
			line := layoutLine(e, row.Start, row.End, y)
			l.lines = append(l.lines, line)
			y += line.height
			for _, r := range line.runs {
				if right := r.pos.X + r.size.Width; right > width {
					width = right
				}
			}
		}
		lineStart = i + 1
	}

	l.size = fyne.NewSize(width+padding+newlineWidth, y+padding)
	return l
}

// wrapRows splits the line [start, end) into rows no wider than maxWidth,
// breaking after runs of spaces. A maxWidth of zero or less keeps one row.
func wrapRows(e *Editor, start, end int, maxWidth float32) []Range {
	if maxWidth <= 0 || end-start < 2 {
		return []Range{{Start: start, End: end}}
	}

	var rows []Range
	rowStart, x := start, float32(0)
	for i := start; i < end; {
		// a word and the spaces after it
		j := i
		for j < end && !unicode.IsSpace(e.content[j]) {
			j++
		}
		for j < end && unicode.IsSpace(e.content[j]) {
			j++
		}

		_, f := e.resolve(i)
		w, _ := measureText(string(e.content[i:j]), f, e.fontSource(f.Family))
		if x+w.Width > maxWidth && i > rowStart {
			rows = append(rows, Range{Start: rowStart, End: i})
			rowStart, x = i, 0
		}
		x += w.Width
		i = j
	}
	return append(rows, Range{Start: rowStart, End: end})
}

// layoutLine splits the runes in [start, end) into runs of equal style and
// aligns them on a shared baseline.
func layoutLine(e *Editor, start, end int, y float32) textLine {
	line := textLine{start: start, end: end, y: y}

	for i := start; i < end; {
		c, f := e.resolve(i)
		j := i + 1
		for j < end {
			nc, nf := e.resolve(j)
			if nf != f || !sameColor(nc, c) {
				break
			}
			j++
		}
		line.runs = append(line.runs, measureRun(e, i, string(e.content[i:j]), c, f))
		i = j
	}

	if len(line.runs) == 0 {
		size, baseline := measureText("M", e.font, e.fontSource(e.font.Family))
		line.height, line.baseline = size.Height, baseline
	}
	for _, r := range line.runs {
		if r.size.Height > line.height {
			line.height = r.size.Height
		}
		if r.baseline > line.baseline {
			line.baseline = r.baseline
		}
	}

	x := padding
	for i := range line.runs {
		r := &line.runs[i]
		r.pos = fyne.NewPos(x, y+line.baseline-r.baseline)
		x += r.size.Width
	}
	return line
}

func measureRun(e *Editor, start int, text string, c color.Color, f TextFont) glyphRun {
	source := e.fontSource(f.Family)
	size, baseline := measureText(text, f, source)

	runes := []rune(text)
	offsets := make([]float32, len(runes)+1)
	for k := 1; k < len(runes); k++ {
		prefix, _ := measureText(string(runes[:k]), f, source)
		offsets[k] = prefix.Width
	}
	offsets[len(runes)] = size.Width

	return glyphRun{
		start:    start,
		text:     text,
		color:    c,
		font:     f,
		source:   source,
		size:     size,
		baseline: baseline,
		offsets:  offsets,
	}
}

func (e *Editor) fontSource(family string) fyne.Resource {
	if e.resolver == nil {
		return nil
	}
	return e.resolver(family)
}

// lineFor returns the line containing offset
func (l *textLayout) lineFor(offset int) *textLine {
	for i := range l.lines {
		if offset <= l.lines[i].end {
			return &l.lines[i]
		}
	}
	return &l.lines[len(l.lines)-1]
}

// xAt returns the x coordinate of the boundary before offset
func (ln *textLine) xAt(offset int) float32 {
	for _, r := range ln.runs {
		if offset >= r.start && offset <= r.end() {
			return r.pos.X + r.offsets[offset-r.start]
		}
	}
	if n := len(ln.runs); n > 0 && offset > ln.runs[n-1].end() {
		last := ln.runs[n-1]
		return last.pos.X + last.size.Width
	}
	return padding
}

// caret returns the caret position and height for offset
func (l *textLayout) caret(offset int) (x, y, height float32) {
	if len(l.lines) == 0 {
		return padding, padding, 0
	}
	ln := l.lineFor(offset)
	return ln.xAt(offset), ln.y, ln.height
}

// hit maps a widget-relative position to the nearest rune boundary
func (l *textLayout) hit(p fyne.Position) int {
	if len(l.lines) == 0 {
		return 0
	}
	ln := &l.lines[len(l.lines)-1]
	for i := range l.lines {
		if p.Y < l.lines[i].y+l.lines[i].height {
			ln = &l.lines[i]
			break
		}
	}

	best, bestDist := ln.start, abs32(padding-p.X)
	for _, r := range ln.runs {
		for k, off := range r.offsets {
			if d := abs32(r.pos.X + off - p.X); d < bestDist {
				best, bestDist = r.start+k, d
			}
		}
	}
	return best
}

// rect is an axis aligned box in widget coordinates
type rect struct {
	min, max fyne.Position
}

// selectionRects returns the highlight rectangles for sel, one per line
func (l *textLayout) selectionRects(sel Range) []rect {
	var rects []rect
	for i := range l.lines {
		ln := &l.lines[i]
		if sel.End <= ln.start || sel.Start > ln.end {
			continue
		}
		x1 := ln.xAt(maxInt(sel.Start, ln.start))
		x2 := ln.xAt(minInt(sel.End, ln.end))
		if sel.End > ln.end {
			x2 += newlineWidth
		}
		if x2 <= x1 {
			continue
		}
		rects = append(rects, rect{min: fyne.NewPos(x1, ln.y), max: fyne.NewPos(x2, ln.y+ln.height)})
	}
	return rects
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return color.NRGBAModel.Convert(a) == color.NRGBAModel.Convert(b)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
