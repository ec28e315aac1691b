// SPDX-License-Identifier: MIT

// Package grid - read-only iterator adapters.
//
// Purpose:
//   - Iter is the one cursor contract shared by grids and views: Next yields
//     the following element, Len reports how many remain.
//   - Along the major axis a line is a contiguous slice (SliceIter).
//   - Along the minor axis a line is a strided cursor (Minor):
//     {current, step = MajorLen, remaining}.
//   - 2D iteration (lines) walks an outer Range and delegates each step to a
//     1D accessor with a fixed inner Range.
//
// Behavior highlights:
//   - Iterators are one-shot; once Len()==0 they stay exhausted.
//   - Construction is validated by the caller; Next can only run out, never fail.
//
// Complexity:
//   - Next: O(1) for every adapter in this file (flatten amortized).
package grid

import "iter"

// Iter is a finite, one-shot cursor.
type Iter[T any] interface {
	// Next returns the next element, or false once the cursor is exhausted.
	Next() (T, bool)
	// Len returns the number of elements left.
	Len() int
}

// Collect drains it into a new slice.
func Collect[T any](it Iter[T]) []T {
	out := make([]T, 0, it.Len())
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}

	return out
}

// CollectLines drains a 2D iterator into nested slices.
func CollectLines[T any](it Iter[Iter[T]]) [][]T {
	out := make([][]T, 0, it.Len())
	for line, ok := it.Next(); ok; line, ok = it.Next() {
		out = append(out, Collect(line))
	}

	return out
}

// Seq adapts it to a range-over-func sequence. The sequence shares the
// cursor: ranging over it twice yields the remaining elements only once.
func Seq[T any](it Iter[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Seq2D adapts a 2D iterator: each step yields the line number (counted from
// zero) and the line as a sequence.
func Seq2D[T any](it Iter[Iter[T]]) iter.Seq2[int, iter.Seq[T]] {
	return func(yield func(int, iter.Seq[T]) bool) {
		i := 0
		for line, ok := it.Next(); ok; line, ok = it.Next() {
			if !yield(i, Seq(line)) {
				return
			}
			i++
		}
	}
}

// SliceIter walks a contiguous line.
type SliceIter[T any] struct {
	items []T
}

// NewSliceIter returns a cursor over items.
func NewSliceIter[T any](items []T) *SliceIter[T] {
	return &SliceIter[T]{items: items}
}

// Next implements Iter.
func (s *SliceIter[T]) Next() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	v := s.items[0]
	s.items = s.items[1:]

	return v, true
}

// Len implements Iter.
func (s *SliceIter[T]) Len() int { return len(s.items) }

// Rest returns the unvisited part of the line without copying.
func (s *SliceIter[T]) Rest() []T { return s.items }

// Minor walks a line across the minor axis: every step jumps one major stride.
type Minor[T any] struct {
	items     []T
	current   int // flat offset of the next element
	step      int // MajorLen
	remaining int
}

// newMinor builds the cursor for line l (l.Index on the major axis, l.Span
// on the minor axis). Precondition: l is valid for m and len(items) matches m.
func newMinor[T any](items []T, m Major, l Line) *Minor[T] {
	return &Minor[T]{
		items:     items,
		current:   l.Span.Start*m.MajorLen() + l.Index,
		step:      m.MajorLen(),
		remaining: l.Span.Len(),
	}
}

// Next implements Iter.
func (m *Minor[T]) Next() (T, bool) {
	if m.remaining == 0 {
		var zero T
		return zero, false
	}
	v := m.items[m.current]
	m.current += m.step
	m.remaining--

	return v, true
}

// Len implements Iter.
func (m *Minor[T]) Len() int { return m.remaining }

// lines walks outer one unit at a time, producing line(Line{i, inner}).
type lines[T any] struct {
	outer Range
	inner Range
	line  func(Line) Iter[T]
}

func newLines[T any](outer, inner Range, line func(Line) Iter[T]) *lines[T] {
	return &lines[T]{outer: outer, inner: inner, line: line}
}

func (ls *lines[T]) Next() (Iter[T], bool) {
	if ls.outer.Start >= ls.outer.End {
		return nil, false
	}
	l := Line{Index: ls.outer.Start, Span: ls.inner}
	ls.outer.Start++

	return ls.line(l), true
}

func (ls *lines[T]) Len() int { return ls.outer.Len() }

// flatten chains the lines of a 2D iterator. remaining is known up front
// (the rectangle area), so Len stays O(1).
type flatten[T any] struct {
	outer     Iter[Iter[T]]
	cur       Iter[T]
	remaining int
}

func newFlatten[T any](outer Iter[Iter[T]], total int) *flatten[T] {
	return &flatten[T]{outer: outer, remaining: total}
}

func (f *flatten[T]) Next() (T, bool) {
	for {
		if f.cur != nil {
			if v, ok := f.cur.Next(); ok {
				f.remaining--
				return v, true
			}
		}
		next, ok := f.outer.Next()
		if !ok {
			f.remaining = 0
			var zero T
			return zero, false
		}
		f.cur = next
	}
}

func (f *flatten[T]) Len() int { return f.remaining }

// mapIter applies fn to every element of inner.
type mapIter[S, T any] struct {
	inner Iter[S]
	fn    func(S) T
}

func (m *mapIter[S, T]) Next() (T, bool) {
	v, ok := m.inner.Next()
	if !ok {
		var zero T
		return zero, false
	}

	return m.fn(v), true
}

func (m *mapIter[S, T]) Len() int { return m.inner.Len() }

// MapIter returns a cursor yielding fn(v) for every v of it.
func MapIter[S, T any](it Iter[S], fn func(S) T) Iter[T] {
	return &mapIter[S, T]{inner: it, fn: fn}
}

// repeatIter yields the same value n times.
type repeatIter[T any] struct {
	item      T
	remaining int
}

func (r *repeatIter[T]) Next() (T, bool) {
	if r.remaining <= 0 {
		var zero T
		return zero, false
	}
	r.remaining--

	return r.item, true
}

func (r *repeatIter[T]) Len() int {
	if r.remaining < 0 {
		return 0
	}

	return r.remaining
}

// pointLine calls fn for every coordinate of one line, in span order.
// alongX selects rows (x varies) versus columns (y varies).
type pointLine[T any] struct {
	fn     func(Point) T
	index  int
	span   Range
	alongX bool
}

func (p *pointLine[T]) Next() (T, bool) {
	if p.span.Start >= p.span.End {
		var zero T
		return zero, false
	}
	c := p.span.Start
	p.span.Start++
	if p.alongX {
		return p.fn(Point{X: c, Y: p.index}), true
	}

	return p.fn(Point{X: p.index, Y: c}), true
}

func (p *pointLine[T]) Len() int { return p.span.Len() }

// Majors yields consecutive major lines restricted to span, as sub-slices.
type Majors[T any] struct {
	items []T
	m     Major
	outer Range // minor coordinates still to visit
	span  Range // along the major axis
}

func newMajors[T any](items []T, m Major, major, minor Range) *Majors[T] {
	return &Majors[T]{items: items, m: m, outer: minor, span: major}
}

// Next implements Iter.
func (ms *Majors[T]) Next() ([]T, bool) {
	if ms.outer.Start >= ms.outer.End {
		return nil, false
	}
	r := ms.m.SpanUnchecked(Line{Index: ms.outer.Start, Span: ms.span})
	ms.outer.Start++

	return ms.items[r.Start:r.End:r.End], true
}

// Len implements Iter.
func (ms *Majors[T]) Len() int { return ms.outer.Len() }
