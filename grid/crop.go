// SPDX-License-Identifier: MIT

// Package grid - Crop: a rectangular window onto another reader.
//
// Purpose:
//   - Expose a sub-rectangle of any Reader as a Reader of its own, with
//     coordinates relative to the window's top-left corner.
//
// Implementation:
//   - Stage 1: NewCrop resolves the window once against the inner size.
//   - Stage 2: every access is translated by rect.Min() and forwarded.
//     Lines move their index and both ends of their span; rectangles move
//     both axes.
//
// Nesting a crop in a crop composes the offsets (Crop.Crop keeps one level).
package grid

// Crop is a translated, clipped view of inner.
type Crop[T any] struct {
	rect  Rect
	inner Reader[T]
}

// Compile-time assertion.
var _ Reader[int] = (*Crop[int])(nil)

// NewCrop resolves idx against inner and returns the window, or false if
// idx exceeds inner.
func NewCrop[T any](inner Reader[T], idx Index2D) (*Crop[T], bool) {
	r, ok := idx.CheckedRect(inner.Size())
	if !ok {
		return nil, false
	}

	return &Crop[T]{rect: r, inner: inner}, true
}

// NewCropUnchecked builds the window without validation.
// Precondition: idx resolves to a rectangle within inner.Size().
func NewCropUnchecked[T any](inner Reader[T], idx Index2D) *Crop[T] {
	return &Crop[T]{rect: idx.UncheckedRect(inner.Size()), inner: inner}
}

// Rect returns the window in inner coordinates.
func (c *Crop[T]) Rect() Rect { return c.rect }

// Inner returns the wrapped reader.
func (c *Crop[T]) Inner() Reader[T] { return c.inner }

// Size implements Reader.
func (c *Crop[T]) Size() Size { return c.rect.Size() }

// ItemUnchecked implements Reader.
func (c *Crop[T]) ItemUnchecked(p Point) T {
	return c.inner.ItemUnchecked(p.Add(c.rect.Min()))
}

// RowUnchecked implements Reader.
func (c *Crop[T]) RowUnchecked(idx Index1D) Iter[T] {
	l := rowLineUnchecked(idx, c.Size())

	return c.inner.RowUnchecked(Line{
		Index: l.Index + c.rect.Y.Start,
		Span:  l.Span.Shift(c.rect.X.Start),
	})
}

// ColUnchecked implements Reader.
func (c *Crop[T]) ColUnchecked(idx Index1D) Iter[T] {
	l := colLineUnchecked(idx, c.Size())

	return c.inner.ColUnchecked(Line{
		Index: l.Index + c.rect.X.Start,
		Span:  l.Span.Shift(c.rect.Y.Start),
	})
}

// RowsUnchecked implements Reader.
func (c *Crop[T]) RowsUnchecked(idx Index2D) Iter[Iter[T]] {
	return c.inner.RowsUnchecked(c.outer(idx))
}

// ColsUnchecked implements Reader.
func (c *Crop[T]) ColsUnchecked(idx Index2D) Iter[Iter[T]] {
	return c.inner.ColsUnchecked(c.outer(idx))
}

// ItemsUnchecked implements Reader. The order is the inner reader's order.
func (c *Crop[T]) ItemsUnchecked(idx Index2D) Iter[T] {
	return c.inner.ItemsUnchecked(c.outer(idx))
}

// Crop narrows the window further. The result wraps the same inner reader,
// so chains of crops cost one translation per access.
func (c *Crop[T]) Crop(idx Index2D) (*Crop[T], bool) {
	r, ok := idx.CheckedRect(c.Size())
	if !ok {
		return nil, false
	}

	return &Crop[T]{rect: r.Shift(c.rect.Min()), inner: c.inner}, true
}

// outer maps a window-relative rectangle to inner coordinates.
func (c *Crop[T]) outer(idx Index2D) Rect {
	return idx.UncheckedRect(c.Size()).Shift(c.rect.Min())
}
