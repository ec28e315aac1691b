// SPDX-License-Identifier: MIT

// Package grid - bufferless generator views.
//
// Purpose:
//   - Repeat: every cell holds the same value.
//   - RepeatWith: every cell is computed from its coordinate on demand.
//
// Behavior highlights:
//   - No storage is allocated; Size may be arbitrarily large. Lines work at
//     any size, while the checked Items refuses rectangles whose area
//     overflows int.
//   - RepeatWith calls fn once per coordinate per access, in the order the
//     coordinates are yielded. Items follow the declared storage Order.
//
// Complexity:
//   - O(1) per element (plus the cost of fn for RepeatWith).
package grid

// Repeat is a grid of one value.
type Repeat[T any] struct {
	size Size
	item T
}

// RepeatWith is a grid whose cells are fn(point).
type RepeatWith[T any] struct {
	size  Size
	order Order
	fn    func(Point) T
}

// Compile-time assertions.
var (
	_ Reader[int] = (*Repeat[int])(nil)
	_ Reader[int] = (*RepeatWith[int])(nil)
)

// NewRepeat returns a view of size where every cell is item.
func NewRepeat[T any](size Size, item T) *Repeat[T] {
	return &Repeat[T]{size: size, item: item}
}

// Size implements Reader.
func (r *Repeat[T]) Size() Size { return r.size }

// ItemUnchecked implements Reader.
func (r *Repeat[T]) ItemUnchecked(Point) T { return r.item }

// RowUnchecked implements Reader.
func (r *Repeat[T]) RowUnchecked(idx Index1D) Iter[T] {
	return r.line(rowLineUnchecked(idx, r.size))
}

// ColUnchecked implements Reader.
func (r *Repeat[T]) ColUnchecked(idx Index1D) Iter[T] {
	return r.line(colLineUnchecked(idx, r.size))
}

// RowsUnchecked implements Reader.
func (r *Repeat[T]) RowsUnchecked(idx Index2D) Iter[Iter[T]] {
	rect := idx.UncheckedRect(r.size)

	return newLines(rect.Y, rect.X, r.line)
}

// ColsUnchecked implements Reader.
func (r *Repeat[T]) ColsUnchecked(idx Index2D) Iter[Iter[T]] {
	rect := idx.UncheckedRect(r.size)

	return newLines(rect.X, rect.Y, r.line)
}

// ItemsUnchecked implements Reader.
func (r *Repeat[T]) ItemsUnchecked(idx Index2D) Iter[T] {
	return &repeatIter[T]{item: r.item, remaining: idx.UncheckedRect(r.size).Area()}
}

func (r *Repeat[T]) line(l Line) Iter[T] {
	return &repeatIter[T]{item: r.item, remaining: l.Span.Len()}
}

// NewRepeatWith returns a view of size computing each cell as fn(p).
// WithOrder selects the order ItemsUnchecked walks the cells in.
func NewRepeatWith[T any](size Size, fn func(Point) T, opts ...Option) *RepeatWith[T] {
	o := gatherOptions(opts...)

	return &RepeatWith[T]{size: size, order: o.order, fn: fn}
}

// Size implements Reader.
func (r *RepeatWith[T]) Size() Size { return r.size }

// Order returns the order ItemsUnchecked follows.
func (r *RepeatWith[T]) Order() Order { return r.order }

// ItemUnchecked implements Reader.
func (r *RepeatWith[T]) ItemUnchecked(p Point) T { return r.fn(p) }

// RowUnchecked implements Reader.
func (r *RepeatWith[T]) RowUnchecked(idx Index1D) Iter[T] {
	return r.row(rowLineUnchecked(idx, r.size))
}

// ColUnchecked implements Reader.
func (r *RepeatWith[T]) ColUnchecked(idx Index1D) Iter[T] {
	return r.col(colLineUnchecked(idx, r.size))
}

// RowsUnchecked implements Reader.
func (r *RepeatWith[T]) RowsUnchecked(idx Index2D) Iter[Iter[T]] {
	rect := idx.UncheckedRect(r.size)

	return newLines(rect.Y, rect.X, r.row)
}

// ColsUnchecked implements Reader.
func (r *RepeatWith[T]) ColsUnchecked(idx Index2D) Iter[Iter[T]] {
	rect := idx.UncheckedRect(r.size)

	return newLines(rect.X, rect.Y, r.col)
}

// ItemsUnchecked implements Reader: row by row for RowMajor, column by
// column for ColMajor.
func (r *RepeatWith[T]) ItemsUnchecked(idx Index2D) Iter[T] {
	rect := idx.UncheckedRect(r.size)
	if r.order == ColMajor {
		return newFlatten(r.ColsUnchecked(rect), rect.Area())
	}

	return newFlatten(r.RowsUnchecked(rect), rect.Area())
}

func (r *RepeatWith[T]) row(l Line) Iter[T] {
	return &pointLine[T]{fn: r.fn, index: l.Index, span: l.Span, alongX: true}
}

func (r *RepeatWith[T]) col(l Line) Iter[T] {
	return &pointLine[T]{fn: r.fn, index: l.Index, span: l.Span}
}
