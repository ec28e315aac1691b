// SPDX-License-Identifier: MIT

// Package grid: geometry types shared by every grid, view and iterator.
// This file contains ONLY plain value types (Size, Point, Range, Rect) and
// their arithmetic. Index resolution lives in index.go, layout math in major.go.
package grid

import (
	"fmt"
	"math"
)

// Size holds grid dimensions: X is the width, Y is the height.
type Size struct {
	X, Y int
}

// Point is a logical (x, y) coordinate into a grid.
type Point struct {
	X, Y int
}

// Range is a half-open interval [Start, End) along one axis.
type Range struct {
	Start, End int
}

// Rect is a sub-rectangle expressed as one Range per axis.
type Rect struct {
	X, Y Range
}

// Area returns X*Y, or false if either side is negative or the product
// overflows int.
// Complexity: O(1).
func (s Size) Area() (int, bool) {
	if s.X < 0 || s.Y < 0 {
		return 0, false
	}
	if s.X != 0 && s.Y > math.MaxInt/s.X {
		return 0, false
	}

	return s.X * s.Y, true
}

// Rect returns the rectangle covering the whole size.
func (s Size) Rect() Rect {
	return Rect{X: Range{0, s.X}, Y: Range{0, s.Y}}
}

// String renders the size as "WxH".
func (s Size) String() string { return fmt.Sprintf("%dx%d", s.X, s.Y) }

// In reports whether p lies inside s: 0 ≤ p.X < s.X and 0 ≤ p.Y < s.Y.
// Complexity: O(1).
func (p Point) In(s Size) bool {
	return p.X >= 0 && p.X < s.X && p.Y >= 0 && p.Y < s.Y
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// String renders the point as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Len returns End-Start. Invalid ranges (Start > End) report 0.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}

	return r.End - r.Start
}

// Shift returns r moved by d on both ends.
func (r Range) Shift(d int) Range {
	return Range{Start: r.Start + d, End: r.End + d}
}

// Contains reports whether Start ≤ i < End.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// String renders the range as "a..b".
func (r Range) String() string { return fmt.Sprintf("%d..%d", r.Start, r.End) }

// Min returns the top-left corner of the rectangle.
func (r Rect) Min() Point {
	return Point{X: r.X.Start, Y: r.Y.Start}
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() Size {
	return Size{X: r.X.Len(), Y: r.Y.Len()}
}

// Area returns the number of cells covered by the rectangle.
// Precondition: r.Size().Area() reports true; use it when the product may overflow.
func (r Rect) Area() int {
	return r.X.Len() * r.Y.Len()
}

// Shift returns r translated by p.
func (r Rect) Shift(p Point) Rect {
	return Rect{X: r.X.Shift(p.X), Y: r.Y.Shift(p.Y)}
}

// String renders the rectangle as "[x0..x1, y0..y1]".
func (r Rect) String() string { return fmt.Sprintf("[%v, %v]", r.X, r.Y) }
