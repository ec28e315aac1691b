// SPDX-License-Identifier: MIT

// Package grid - Grid[T]: a flat buffer viewed as a 2D grid.
//
// Purpose:
//   - Own (or borrow) one contiguous []T and a Major size; be the sole
//     authority translating 2D requests onto 1D storage.
//   - Provide every accessor twice: a checked form returning (value, ok)
//     and a trusting ...Unchecked form with a documented precondition.
//
// Behavior highlights:
//   - Lines along the major axis are zero-copy sub-slices of the buffer.
//   - Lines along the minor axis are strided cursors (Minor / MinorMut).
//   - Mutable accessors yield *T (or capacity-capped []T) with pairwise
//     disjoint targets, see iter_mut.go.
//   - Checked accessors never panic.
//
// Complexity quicksheet:
//   - New/NewUnchecked: O(1); Make: O(W*H); Item/Slice/Row/Col creation: O(1);
//     Clone/Relayout/String: O(W*H).
package grid

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Grid is a 2D view over a flat buffer stored in row- or column-major order.
// Invariant: len(items) == Size().X * Size().Y.
type Grid[T any] struct {
	size  Major
	items []T
}

// Compile-time assertions.
var (
	_ Reader[int]  = (*Grid[int])(nil)
	_ Reader[*int] = Ptrs[int]{}
	_ fmt.Stringer = (*Grid[int])(nil)
)

// New wraps items as a grid of the given size.
// The buffer is borrowed, not copied: writes through the grid are visible
// in items and vice versa.
//
// Errors:
//   - *ShapeError wrapping ErrNegativeSize, ErrOverflow or ErrLengthMismatch;
//     the error carries items back to the caller.
//
// Complexity: O(1).
func New[T any](size Size, items []T, opts ...Option) (*Grid[T], error) {
	if err := checkShape(size, len(items)); err != nil {
		return nil, &ShapeError[T]{Size: size, Items: items, Err: err}
	}

	return NewUnchecked(size, items, opts...), nil
}

// NewUnchecked wraps items without validating the shape.
// Precondition: size.X, size.Y ≥ 0 and len(items) == size.X*size.Y.
func NewUnchecked[T any](size Size, items []T, opts ...Option) *Grid[T] {
	o := gatherOptions(opts...)

	return &Grid[T]{size: NewMajor(o.order, size), items: items}
}

// Make allocates a zero-filled grid of the given size.
func Make[T any](size Size, opts ...Option) (*Grid[T], error) {
	if size.X < 0 || size.Y < 0 {
		return nil, fmt.Errorf("grid: Make(%v): %w", size, ErrNegativeSize)
	}
	n, ok := size.Area()
	if !ok {
		return nil, fmt.Errorf("grid: Make(%v): %w", size, ErrOverflow)
	}

	return NewUnchecked(size, make([]T, n), opts...), nil
}

// FromRows copies nested rows (rows[y][x]) into a new grid laid out per opts.
//
// Errors:
//   - ErrEmpty when rows has no lines.
//   - ErrJagged (wrapped with the offending row index) when lengths differ.
func FromRows[T any](rows [][]T, opts ...Option) (*Grid[T], error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("grid: FromRows: row %d has %d items, want %d: %w", y, len(row), w, ErrJagged)
		}
	}
	size := Size{X: w, Y: len(rows)}
	if _, ok := size.Area(); !ok {
		return nil, fmt.Errorf("grid: FromRows(%v): %w", size, ErrOverflow)
	}
	g, err := Make[T](size, opts...)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, v := range row {
			g.items[g.size.IndexUnchecked(Point{X: x, Y: y})] = v
		}
	}

	return g, nil
}

// Size returns width and height.
func (g *Grid[T]) Size() Size { return g.size.Size() }

// Major returns the layout-aware size.
func (g *Grid[T]) Major() Major { return g.size }

// Order returns the storage layout.
func (g *Grid[T]) Order() Order { return g.size.Order() }

// Buffer returns the backing slice in storage order (no copy).
func (g *Grid[T]) Buffer() []T { return g.items }

// ---------- 0D ----------

// ItemUnchecked returns the element at p.
// Precondition: p.In(g.Size()).
func (g *Grid[T]) ItemUnchecked(p Point) T {
	return g.items[g.size.IndexUnchecked(p)]
}

// Item returns the element at p, or false if p is out of bounds.
func (g *Grid[T]) Item(p Point) (T, bool) { return Item[T](g, p) }

// ItemMutUnchecked returns a pointer to the element at p.
// Precondition: p.In(g.Size()).
func (g *Grid[T]) ItemMutUnchecked(p Point) *T {
	return &g.items[g.size.IndexUnchecked(p)]
}

// ItemMut returns a pointer to the element at p, or false if p is out of bounds.
func (g *Grid[T]) ItemMut(p Point) (*T, bool) {
	i, ok := g.size.Index(p)
	if !ok {
		return nil, false
	}

	return &g.items[i], true
}

// Set stores v at p. It reports false, leaving the grid untouched, if p is
// out of bounds.
func (g *Grid[T]) Set(p Point, v T) bool {
	ptr, ok := g.ItemMut(p)
	if !ok {
		return false
	}
	*ptr = v

	return true
}

// ---------- major / minor lines ----------

// SliceUnchecked returns a major line as a sub-slice of the buffer: a row of
// a row-major grid, a column of a column-major grid.
// Precondition: idx resolves through Major().Span.
func (g *Grid[T]) SliceUnchecked(idx Index1D) []T {
	r := g.size.SpanUnchecked(idx.UncheckedLine(g.size.MajorLen()))

	return g.items[r.Start:r.End:r.End]
}

// Slice returns a major line as a sub-slice, or false if idx is out of bounds.
func (g *Grid[T]) Slice(idx Index1D) ([]T, bool) {
	r, ok := g.size.Span(idx)
	if !ok {
		return nil, false
	}

	return g.items[r.Start:r.End:r.End], true
}

// MinorUnchecked returns a strided cursor over a minor line: a column of a
// row-major grid, a row of a column-major grid.
// Precondition: line index < MajorLen and span within [0, MinorLen].
func (g *Grid[T]) MinorUnchecked(idx Index1D) *Minor[T] {
	return newMinor(g.items, g.size, idx.UncheckedLine(g.size.MinorLen()))
}

// Minor returns a strided cursor over a minor line, or false if idx is out of bounds.
func (g *Grid[T]) Minor(idx Index1D) (*Minor[T], bool) {
	l, ok := idx.CheckedLine(g.size.MajorLen(), g.size.MinorLen())
	if !ok {
		return nil, false
	}

	return newMinor(g.items, g.size, l), true
}

// MinorMutUnchecked is the mutable counterpart of MinorUnchecked.
func (g *Grid[T]) MinorMutUnchecked(idx Index1D) *MinorMut[T] {
	return newMinorMut(g.items, g.size, idx.UncheckedLine(g.size.MinorLen()))
}

// MinorMut is the mutable counterpart of Minor.
func (g *Grid[T]) MinorMut(idx Index1D) (*MinorMut[T], bool) {
	l, ok := idx.CheckedLine(g.size.MajorLen(), g.size.MinorLen())
	if !ok {
		return nil, false
	}

	return newMinorMut(g.items, g.size, l), true
}

// MajorsUnchecked returns the major lines crossing the rectangle, each as a
// sub-slice. Precondition: the rectangle lies within Size().
func (g *Grid[T]) MajorsUnchecked(idx Index2D) *Majors[T] {
	major, minor := g.size.SplitRect(idx.UncheckedRect(g.Size()))

	return newMajors(g.items, g.size, major, minor)
}

// Majors is the checked form of MajorsUnchecked.
func (g *Grid[T]) Majors(idx Index2D) (*Majors[T], bool) {
	r, ok := idx.CheckedRect(g.Size())
	if !ok {
		return nil, false
	}

	return g.MajorsUnchecked(r), true
}

// MajorsMutUnchecked returns the major lines crossing the rectangle as
// pairwise disjoint, capacity-capped sub-slices.
// Precondition: the rectangle lies within Size().
func (g *Grid[T]) MajorsMutUnchecked(idx Index2D) *MajorsMut[T] {
	major, minor := g.size.SplitRect(idx.UncheckedRect(g.Size()))

	return newMajorsMut(g.items, g.size, major, minor)
}

// MajorsMut is the checked form of MajorsMutUnchecked.
func (g *Grid[T]) MajorsMut(idx Index2D) (*MajorsMut[T], bool) {
	r, ok := idx.CheckedRect(g.Size())
	if !ok {
		return nil, false
	}

	return g.MajorsMutUnchecked(r), true
}

// ---------- rows / columns ----------

// RowUnchecked returns row idx. Precondition: row index < height, span within width.
func (g *Grid[T]) RowUnchecked(idx Index1D) Iter[T] {
	l := rowLineUnchecked(idx, g.Size())
	if g.size.Order() == RowMajor {
		return NewSliceIter(g.SliceUnchecked(l))
	}

	return g.MinorUnchecked(l)
}

// Row returns row idx, or false if idx is out of bounds.
func (g *Grid[T]) Row(idx Index1D) (Iter[T], bool) { return Row[T](g, idx) }

// ColUnchecked returns column idx. Precondition: column index < width, span within height.
func (g *Grid[T]) ColUnchecked(idx Index1D) Iter[T] {
	l := colLineUnchecked(idx, g.Size())
	if g.size.Order() == ColMajor {
		return NewSliceIter(g.SliceUnchecked(l))
	}

	return g.MinorUnchecked(l)
}

// Col returns column idx, or false if idx is out of bounds.
func (g *Grid[T]) Col(idx Index1D) (Iter[T], bool) { return Col[T](g, idx) }

// RowMutUnchecked is the mutable counterpart of RowUnchecked.
func (g *Grid[T]) RowMutUnchecked(idx Index1D) Iter[*T] {
	l := rowLineUnchecked(idx, g.Size())
	if g.size.Order() == RowMajor {
		return NewSliceMut(g.SliceUnchecked(l))
	}

	return g.MinorMutUnchecked(l)
}

// RowMut is the mutable counterpart of Row.
func (g *Grid[T]) RowMut(idx Index1D) (Iter[*T], bool) {
	l, ok := rowLine(idx, g.Size())
	if !ok {
		return nil, false
	}

	return g.RowMutUnchecked(l), true
}

// ColMutUnchecked is the mutable counterpart of ColUnchecked.
func (g *Grid[T]) ColMutUnchecked(idx Index1D) Iter[*T] {
	l := colLineUnchecked(idx, g.Size())
	if g.size.Order() == ColMajor {
		return NewSliceMut(g.SliceUnchecked(l))
	}

	return g.MinorMutUnchecked(l)
}

// ColMut is the mutable counterpart of Col.
func (g *Grid[T]) ColMut(idx Index1D) (Iter[*T], bool) {
	l, ok := colLine(idx, g.Size())
	if !ok {
		return nil, false
	}

	return g.ColMutUnchecked(l), true
}

// RowsUnchecked returns the rows of the rectangle, each restricted to its x range.
// Precondition: the rectangle lies within Size().
func (g *Grid[T]) RowsUnchecked(idx Index2D) Iter[Iter[T]] {
	r := idx.UncheckedRect(g.Size())

	return newLines(r.Y, r.X, func(l Line) Iter[T] { return g.RowUnchecked(l) })
}

// Rows is the checked form of RowsUnchecked.
func (g *Grid[T]) Rows(idx Index2D) (Iter[Iter[T]], bool) { return Rows[T](g, idx) }

// ColsUnchecked returns the columns of the rectangle, each restricted to its y range.
// Precondition: the rectangle lies within Size().
func (g *Grid[T]) ColsUnchecked(idx Index2D) Iter[Iter[T]] {
	r := idx.UncheckedRect(g.Size())

	return newLines(r.X, r.Y, func(l Line) Iter[T] { return g.ColUnchecked(l) })
}

// Cols is the checked form of ColsUnchecked.
func (g *Grid[T]) Cols(idx Index2D) (Iter[Iter[T]], bool) { return Cols[T](g, idx) }

// RowsMutUnchecked yields the rows of the rectangle as mutable cursors.
// Rows of a row-major grid come from one MajorsMut split; rows of a
// column-major grid are minor lines with distinct y.
// Precondition: the rectangle lies within Size().
func (g *Grid[T]) RowsMutUnchecked(idx Index2D) Iter[Iter[*T]] {
	r := idx.UncheckedRect(g.Size())
	if g.size.Order() == RowMajor {
		return MapIter[[]T, Iter[*T]](g.MajorsMutUnchecked(r), asSliceMut[T])
	}

	return newLines(r.Y, r.X, func(l Line) Iter[*T] { return g.MinorMutUnchecked(l) })
}

// RowsMut is the checked form of RowsMutUnchecked.
func (g *Grid[T]) RowsMut(idx Index2D) (Iter[Iter[*T]], bool) {
	r, ok := idx.CheckedRect(g.Size())
	if !ok {
		return nil, false
	}

	return g.RowsMutUnchecked(r), true
}

// ColsMutUnchecked yields the columns of the rectangle as mutable cursors.
// Precondition: the rectangle lies within Size().
func (g *Grid[T]) ColsMutUnchecked(idx Index2D) Iter[Iter[*T]] {
	r := idx.UncheckedRect(g.Size())
	if g.size.Order() == ColMajor {
		return MapIter[[]T, Iter[*T]](g.MajorsMutUnchecked(r), asSliceMut[T])
	}

	return newLines(r.X, r.Y, func(l Line) Iter[*T] { return g.MinorMutUnchecked(l) })
}

// ColsMut is the checked form of ColsMutUnchecked.
func (g *Grid[T]) ColsMut(idx Index2D) (Iter[Iter[*T]], bool) {
	r, ok := idx.CheckedRect(g.Size())
	if !ok {
		return nil, false
	}

	return g.ColsMutUnchecked(r), true
}

// ---------- flattened ----------

// ItemsUnchecked returns the elements of the rectangle in storage order.
// Precondition: the rectangle lies within Size().
func (g *Grid[T]) ItemsUnchecked(idx Index2D) Iter[T] {
	r := idx.UncheckedRect(g.Size())
	majors := MapIter[[]T, Iter[T]](g.MajorsUnchecked(r), asSliceIter[T])

	return newFlatten(majors, r.Area())
}

// Items is the checked form of ItemsUnchecked.
func (g *Grid[T]) Items(idx Index2D) (Iter[T], bool) { return Items[T](g, idx) }

// ItemsMutUnchecked yields a pointer to every element of the rectangle in
// storage order. Precondition: the rectangle lies within Size().
func (g *Grid[T]) ItemsMutUnchecked(idx Index2D) Iter[*T] {
	r := idx.UncheckedRect(g.Size())
	majors := MapIter[[]T, Iter[*T]](g.MajorsMutUnchecked(r), asSliceMut[T])

	return newFlatten(majors, r.Area())
}

// ItemsMut is the checked form of ItemsMutUnchecked.
func (g *Grid[T]) ItemsMut(idx Index2D) (Iter[*T], bool) {
	r, ok := idx.CheckedRect(g.Size())
	if !ok {
		return nil, false
	}

	return g.ItemsMutUnchecked(r), true
}

// ---------- views & copies ----------

// Crop returns a view of the rectangle idx, or false if it exceeds the grid.
func (g *Grid[T]) Crop(idx Index2D) (*Crop[T], bool) { return NewCrop[T](g, idx) }

// Ptrs returns the grid as a Reader of element pointers, the input of
// NewCloned and of mutable crops.
func (g *Grid[T]) Ptrs() Ptrs[T] { return Ptrs[T]{g: g} }

// Clone returns a deep copy with its own buffer and the same layout.
// Complexity: O(W*H).
func (g *Grid[T]) Clone() *Grid[T] {
	cp := make([]T, len(g.items))
	copy(cp, g.items)

	return &Grid[T]{size: g.size, items: cp}
}

// Relayout copies the grid into a new buffer stored in order o.
// Complexity: O(W*H).
func (g *Grid[T]) Relayout(o Order) *Grid[T] {
	if o == g.size.Order() {
		return g.Clone()
	}
	size := g.Size()
	dst := NewMajor(o, size)
	out := make([]T, len(g.items))
	var x, y int
	for y = 0; y < size.Y; y++ {
		for x = 0; x < size.X; x++ {
			p := Point{X: x, Y: y}
			out[dst.IndexUnchecked(p)] = g.items[g.size.IndexUnchecked(p)]
		}
	}

	return &Grid[T]{size: dst, items: out}
}

// String renders one bracketed line per row, independent of storage order.
func (g *Grid[T]) String() string {
	var b strings.Builder
	rows := g.RowsUnchecked(All)
	for row, ok := rows.Next(); ok; row, ok = rows.Next() {
		b.WriteString(_fmtRowOpen)
		for v, more := row.Next(); more; v, more = row.Next() {
			fmt.Fprintf(&b, "%v", v)
			if row.Len() > 0 {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

func asSliceIter[T any](s []T) Iter[T] { return NewSliceIter(s) }

func asSliceMut[T any](s []T) Iter[*T] { return NewSliceMut(s) }
