// SPDX-License-Identifier: MIT

// Package grid - major/minor axis algebra.
//
// Purpose:
//   - Unify row-major and column-major storage behind one offset formula:
//     offset(p) = minor(p)*MajorLen + major(p).
//   - The Order tag decides which logical axis (x or y) is the contiguous
//     "major" axis; every accessor is written once against major/minor and
//     never against x/y directly.
//
// Complexity quicksheet:
//   - NewMajor, Size, Split, Join, Index, Span: O(1).
package grid

import "fmt"

// Order tags the storage layout of a flat buffer.
type Order uint8

const (
	// RowMajor stores each row contiguously: x is the major axis.
	RowMajor Order = iota
	// ColMajor stores each column contiguously: y is the major axis.
	ColMajor
)

// String returns "row-major" or "col-major".
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// Major pairs a layout tag with the lengths of the major (contiguous) and
// minor (strided) axes. It is a lossless re-encoding of a Size.
type Major struct {
	order Order
	major int // contiguous axis length
	minor int // strided axis length
}

// NewMajor encodes size s under layout o.
// Complexity: O(1).
func NewMajor(o Order, s Size) Major {
	if o == ColMajor {
		return Major{order: ColMajor, major: s.Y, minor: s.X}
	}

	return Major{order: RowMajor, major: s.X, minor: s.Y}
}

// MajorOf builds a Major directly from axis lengths.
func MajorOf(o Order, majorLen, minorLen int) Major {
	return Major{order: o, major: majorLen, minor: minorLen}
}

// Order returns the layout tag.
func (m Major) Order() Order { return m.order }

// MajorLen returns the length of the contiguous axis (the stride of a minor step).
func (m Major) MajorLen() int { return m.major }

// MinorLen returns the length of the strided axis (the number of major lines).
func (m Major) MinorLen() int { return m.minor }

// Size decodes m back into a logical Size. NewMajor(o, s).Size() == s.
func (m Major) Size() Size {
	p := m.Join(m.major, m.minor)

	return Size{X: p.X, Y: p.Y}
}

// Split returns the (major, minor) components of a logical point.
func (m Major) Split(p Point) (major, minor int) {
	if m.order == ColMajor {
		return p.Y, p.X
	}

	return p.X, p.Y
}

// Join is the inverse of Split.
func (m Major) Join(major, minor int) Point {
	if m.order == ColMajor {
		return Point{X: minor, Y: major}
	}

	return Point{X: major, Y: minor}
}

// SplitRect returns the rectangle's ranges along the major and minor axes.
func (m Major) SplitRect(r Rect) (major, minor Range) {
	if m.order == ColMajor {
		return r.Y, r.X
	}

	return r.X, r.Y
}

// IndexUnchecked returns the flat offset of p without bounds checking.
// Precondition: p.In(m.Size()); otherwise the offset is meaningless.
// Complexity: O(1).
func (m Major) IndexUnchecked(p Point) int {
	major, minor := m.Split(p)

	return minor*m.major + major
}

// Index returns the flat offset of p, or false if p is outside the size.
// Complexity: O(1).
func (m Major) Index(p Point) (int, bool) {
	if !p.In(m.Size()) {
		return 0, false
	}

	return m.IndexUnchecked(p), true
}

// SpanUnchecked returns the flat range covered by a major line: l.Index is
// the line's minor coordinate and l.Span runs along the major axis.
// Precondition: l.Index < MinorLen and l.Span.Start ≤ l.Span.End ≤ MajorLen.
func (m Major) SpanUnchecked(l Line) Range {
	base := l.Index * m.major

	return Range{Start: base + l.Span.Start, End: base + l.Span.End}
}

// Span resolves idx against the major lines and returns their flat range.
func (m Major) Span(idx Index1D) (Range, bool) {
	l, ok := idx.CheckedLine(m.minor, m.major)
	if !ok {
		return Range{}, false
	}

	return m.SpanUnchecked(l), true
}

// String renders "row-major 4x3".
func (m Major) String() string {
	return fmt.Sprintf("%v %v", m.order, m.Size())
}
