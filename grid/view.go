// SPDX-License-Identifier: MIT

// Package grid - the capability interface shared by grids and views.
//
// Purpose:
//   - Reader is the trusting core every grid-like value implements: each
//     method assumes its index was already validated.
//   - The package-level functions Item, Row, Col, Rows, Cols and Items are
//     the validating wrappers: they resolve the index once against Size()
//     and only then delegate. They never panic.
//
// Composition:
//   - Crop, Map/Cloned, Repeat and RepeatWith implement Reader by forwarding
//     or transforming calls, so views stack freely:
//     NewCloned(NewCropUnchecked(g.Ptrs(), rect)).
package grid

// Reader is the read capability of a grid or view.
//
// Every method is unchecked: calling it with an index that does not resolve
// through the matching Checked* method for Size() yields unspecified
// elements or panics. Use the package-level wrappers for checked access.
type Reader[T any] interface {
	// Size returns width and height.
	Size() Size
	// ItemUnchecked requires p.In(Size()).
	ItemUnchecked(p Point) T
	// RowUnchecked requires row index < Size().Y and span within [0, Size().X].
	RowUnchecked(idx Index1D) Iter[T]
	// ColUnchecked requires column index < Size().X and span within [0, Size().Y].
	ColUnchecked(idx Index1D) Iter[T]
	// RowsUnchecked requires the rectangle to lie within Size().
	RowsUnchecked(idx Index2D) Iter[Iter[T]]
	// ColsUnchecked requires the rectangle to lie within Size().
	ColsUnchecked(idx Index2D) Iter[Iter[T]]
	// ItemsUnchecked requires the rectangle to lie within Size() and its
	// area to fit in an int.
	ItemsUnchecked(idx Index2D) Iter[T]
}

// Item returns the element at p, or false if p is outside v.
func Item[T any](v Reader[T], p Point) (T, bool) {
	if !p.In(v.Size()) {
		var zero T
		return zero, false
	}

	return v.ItemUnchecked(p), true
}

// Row returns the row at idx, or false if idx is out of bounds.
func Row[T any](v Reader[T], idx Index1D) (Iter[T], bool) {
	l, ok := rowLine(idx, v.Size())
	if !ok {
		return nil, false
	}

	return v.RowUnchecked(l), true
}

// Col returns the column at idx, or false if idx is out of bounds.
func Col[T any](v Reader[T], idx Index1D) (Iter[T], bool) {
	l, ok := colLine(idx, v.Size())
	if !ok {
		return nil, false
	}

	return v.ColUnchecked(l), true
}

// Rows returns the rows of the rectangle idx, or false if it exceeds v.
func Rows[T any](v Reader[T], idx Index2D) (Iter[Iter[T]], bool) {
	r, ok := idx.CheckedRect(v.Size())
	if !ok {
		return nil, false
	}

	return v.RowsUnchecked(r), true
}

// Cols returns the columns of the rectangle idx, or false if it exceeds v.
func Cols[T any](v Reader[T], idx Index2D) (Iter[Iter[T]], bool) {
	r, ok := idx.CheckedRect(v.Size())
	if !ok {
		return nil, false
	}

	return v.ColsUnchecked(r), true
}

// Items returns the elements of the rectangle idx, or false if it exceeds v
// or its area does not fit in an int (bufferless views may be that large).
// The order is the reader's natural order (storage order for a Grid).
func Items[T any](v Reader[T], idx Index2D) (Iter[T], bool) {
	r, ok := idx.CheckedRect(v.Size())
	if !ok {
		return nil, false
	}
	if _, ok := r.Size().Area(); !ok {
		return nil, false
	}

	return v.ItemsUnchecked(r), true
}

// Equal reports whether a and b have the same size and the same element at
// every point, independent of their storage layouts.
// Complexity: O(W*H).
func Equal[T comparable](a, b Reader[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	ra, rb := a.RowsUnchecked(All), b.RowsUnchecked(All)
	for la, ok := ra.Next(); ok; la, ok = ra.Next() {
		lb, _ := rb.Next()
		for x, ok := la.Next(); ok; x, ok = la.Next() {
			if y, _ := lb.Next(); x != y {
				return false
			}
		}
	}

	return true
}
