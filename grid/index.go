// SPDX-License-Identifier: MIT

// Package grid - index resolution.
//
// Purpose:
//   - Normalize caller-supplied indexes into canonical forms:
//     0D → Point, 1D → Line (line number + span on the opposite axis),
//     2D → Rect (one Range per axis).
//   - Every shape resolves two ways: Checked* validates and reports false on
//     violation; Unchecked* trusts the caller and may yield invalid ranges.
//
// Accepted shapes:
//   - 1D: At(i) (whole opposite axis), AtSpan(i, r), Line{...}.
//   - 2D: All (whole grid), Area(x, y), Rect{...}.
//   - Ranges: Range (canonical, exclusive end) and Bounds (open/closed/unbounded).
//
// Notes:
//   - Checked resolution also fails when resolving an inclusive end or an
//     exclusive start would overflow int.
//   - Negative values are out of bounds on every checked path.
package grid

import "math"

// BoundKind selects how a Bound value is interpreted.
type BoundKind uint8

const (
	// Unbounded resolves to 0 for a start bound and to the axis length for an end bound.
	Unbounded BoundKind = iota
	// Included keeps Value inside the range.
	Included
	// Excluded keeps Value outside the range.
	Excluded
)

// Bound is one end of a Bounds.
type Bound struct {
	Kind  BoundKind
	Value int
}

// Incl returns an inclusive bound at v.
func Incl(v int) Bound { return Bound{Kind: Included, Value: v} }

// Excl returns an exclusive bound at v.
func Excl(v int) Bound { return Bound{Kind: Excluded, Value: v} }

// Open returns an unbounded bound.
func Open() Bound { return Bound{} }

// Bounds is a caller-supplied range that may be open, inclusive or exclusive
// at either end. The zero value is the full range.
type Bounds struct {
	Start, End Bound
}

// Between builds Bounds from two explicit bounds.
func Between(start, end Bound) Bounds { return Bounds{Start: start, End: end} }

// Span is [start, end).
func Span(start, end int) Bounds { return Bounds{Start: Incl(start), End: Excl(end)} }

// SpanIncl is [start, end].
func SpanIncl(start, end int) Bounds { return Bounds{Start: Incl(start), End: Incl(end)} }

// From is [start, length).
func From(start int) Bounds { return Bounds{Start: Incl(start)} }

// To is [0, end).
func To(end int) Bounds { return Bounds{End: Excl(end)} }

// ToIncl is [0, end].
func ToIncl(end int) Bounds { return Bounds{End: Incl(end)} }

// Full is [0, length).
func Full() Bounds { return Bounds{} }

// RangeIndex resolves into a canonical Range along an axis of the given length.
type RangeIndex interface {
	// CheckedRange guarantees 0 ≤ Start ≤ End ≤ length when it reports true.
	CheckedRange(length int) (Range, bool)
	// UncheckedRange never fails; the result may be invalid.
	UncheckedRange(length int) Range
}

// UncheckedRange returns r unchanged.
func (r Range) UncheckedRange(int) Range { return r }

// CheckedRange returns r if 0 ≤ r.Start ≤ r.End ≤ length.
func (r Range) CheckedRange(length int) (Range, bool) {
	if r.Start < 0 || r.Start > r.End || r.End > length {
		return Range{}, false
	}

	return r, true
}

// UncheckedRange resolves the bounds; Excluded starts and Included ends wrap on overflow.
func (b Bounds) UncheckedRange(length int) Range {
	var r Range
	switch b.Start.Kind {
	case Included:
		r.Start = b.Start.Value
	case Excluded:
		r.Start = b.Start.Value + 1
	}
	switch b.End.Kind {
	case Included:
		r.End = b.End.Value + 1
	case Excluded:
		r.End = b.End.Value
	default:
		r.End = length
	}

	return r
}

// CheckedRange resolves the bounds and validates the result against length.
func (b Bounds) CheckedRange(length int) (Range, bool) {
	if b.Start.Kind == Excluded && b.Start.Value == math.MaxInt {
		return Range{}, false
	}
	if b.End.Kind == Included && b.End.Value == math.MaxInt {
		return Range{}, false
	}

	return b.UncheckedRange(length).CheckedRange(length)
}

// Line is the canonical 1D index: a line number and a span on the opposite axis.
type Line struct {
	Index int
	Span  Range
}

// Index1D resolves into a Line. lines is the number of lines that exist,
// length the extent of each line.
type Index1D interface {
	// CheckedLine guarantees 0 ≤ Index < lines and 0 ≤ Span.Start ≤ Span.End ≤ length.
	CheckedLine(lines, length int) (Line, bool)
	// UncheckedLine never fails; the result may be invalid.
	UncheckedLine(length int) Line
}

// UncheckedLine returns l unchanged.
func (l Line) UncheckedLine(int) Line { return l }

// CheckedLine validates l.
func (l Line) CheckedLine(lines, length int) (Line, bool) {
	if l.Index < 0 || l.Index >= lines {
		return Line{}, false
	}
	if _, ok := l.Span.CheckedRange(length); !ok {
		return Line{}, false
	}

	return l, true
}

// At is a bare line number; it implies the whole opposite axis.
type At int

// UncheckedLine spans the whole line.
func (a At) UncheckedLine(length int) Line {
	return Line{Index: int(a), Span: Range{Start: 0, End: length}}
}

// CheckedLine validates the line number.
func (a At) CheckedLine(lines, length int) (Line, bool) {
	if a < 0 || int(a) >= lines {
		return Line{}, false
	}

	return a.UncheckedLine(length), true
}

type atSpan struct {
	i    int
	span RangeIndex
}

// AtSpan indexes line i restricted to span.
func AtSpan(i int, span RangeIndex) Index1D {
	return atSpan{i: i, span: span}
}

func (a atSpan) UncheckedLine(length int) Line {
	return Line{Index: a.i, Span: a.span.UncheckedRange(length)}
}

func (a atSpan) CheckedLine(lines, length int) (Line, bool) {
	if a.i < 0 || a.i >= lines {
		return Line{}, false
	}
	r, ok := a.span.CheckedRange(length)
	if !ok {
		return Line{}, false
	}

	return Line{Index: a.i, Span: r}, true
}

// Row and column conventions: a row index is bounded by the height and its
// span by the width; a column index is bounded by the width and its span by
// the height.

func rowLine(idx Index1D, s Size) (Line, bool) { return idx.CheckedLine(s.Y, s.X) }
func colLine(idx Index1D, s Size) (Line, bool) { return idx.CheckedLine(s.X, s.Y) }
func rowLineUnchecked(idx Index1D, s Size) Line { return idx.UncheckedLine(s.X) }
func colLineUnchecked(idx Index1D, s Size) Line { return idx.UncheckedLine(s.Y) }

// Index2D resolves into a Rect.
type Index2D interface {
	// CheckedRect guarantees each axis range lies within the matching size axis.
	CheckedRect(size Size) (Rect, bool)
	// UncheckedRect never fails; the result may be invalid.
	UncheckedRect(size Size) Rect
}

// UncheckedRect returns r unchanged.
func (r Rect) UncheckedRect(Size) Rect { return r }

// CheckedRect validates both axes of r against size.
func (r Rect) CheckedRect(size Size) (Rect, bool) {
	if _, ok := r.X.CheckedRange(size.X); !ok {
		return Rect{}, false
	}
	if _, ok := r.Y.CheckedRange(size.Y); !ok {
		return Rect{}, false
	}

	return r, true
}

type whole struct{}

// All selects the whole grid.
var All Index2D = whole{}

func (whole) UncheckedRect(size Size) Rect { return size.Rect() }

func (whole) CheckedRect(size Size) (Rect, bool) {
	if size.X < 0 || size.Y < 0 {
		return Rect{}, false
	}

	return size.Rect(), true
}

type area struct {
	x, y RangeIndex
}

// Area selects the rectangle x × y, each resolved against its own axis.
func Area(x, y RangeIndex) Index2D {
	return area{x: x, y: y}
}

func (a area) UncheckedRect(size Size) Rect {
	return Rect{X: a.x.UncheckedRange(size.X), Y: a.y.UncheckedRange(size.Y)}
}

func (a area) CheckedRect(size Size) (Rect, bool) {
	x, ok := a.x.CheckedRange(size.X)
	if !ok {
		return Rect{}, false
	}
	y, ok := a.y.CheckedRange(size.Y)
	if !ok {
		return Rect{}, false
	}

	return Rect{X: x, Y: y}, true
}
