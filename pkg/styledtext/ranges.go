package styledtext

import (
	"image/color"
)

// Range is a half-open span [Start, End) of rune offsets.
type Range struct {
	Start int
	End   int
}

// Empty reports whether the range covers no text.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Len returns the number of runes covered by the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start
}

// Contains reports whether the rune at pos lies inside the range.
func (r Range) Contains(pos int) bool {
	return pos >= r.Start && pos < r.End
}

// normalized returns the range with Start <= End.
func (r Range) normalized() Range {
	if r.Start > r.End {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

func (r Range) clamp(length int) Range {
	r = r.normalized()
	if r.Start < 0 {
		r.Start = 0
	}
	if r.End > length {
		r.End = length
	}
	if r.Start > r.End {
		r.Start = r.End
	}
	return r
}

// StyleID identifies a style applied through ApplyRangeStyle.
type StyleID int

// TextFont describes how a run of text is drawn.
type TextFont struct {
	Family string
	Size   float32
	Bold   bool
	Italic bool
}

// Style holds the attributes applied to a range. A nil field leaves that
// attribute to earlier styles or the editor default.
type Style struct {
	Color color.Color
	Font  *TextFont
}

// span is one applied style over one range.
type span struct {
	id    StyleID
	rng   Range
	style Style
}

// remapInsert moves the span to account for n runes inserted at pos.
// Text inserted strictly inside the span extends it; text inserted at or
// before its start pushes it along.
func (s *span) remapInsert(pos, n int) {
	switch {
	case s.rng.Start >= pos:
		s.rng.Start += n
		s.rng.End += n
	case s.rng.End > pos:
		s.rng.End += n
	}
}

// remapDelete moves the span to account for the runes in del being removed.
func (s *span) remapDelete(del Range) {
	s.rng.Start = shiftForDelete(s.rng.Start, del)
	s.rng.End = shiftForDelete(s.rng.End, del)
}

func shiftForDelete(pos int, del Range) int {
	switch {
	case pos <= del.Start:
		return pos
	case pos < del.End:
		return del.Start
	default:
		return pos - del.Len()
	}
}
