// SPDX-License-Identifier: MIT

// Package grid - value-mapping views.
//
//   - Map applies a function to every element a reader yields.
//   - NewCloned is the Map that dereferences pointers: it turns a view of
//     *T (Grid.Ptrs, or a crop of it) back into a view of T copies.
//   - Ptrs is the grid seen through its mutable accessors.
package grid

// Map is a view yielding fn(v) for every element v of inner.
// fn runs once per element per access; nothing is cached.
type Map[S, T any] struct {
	inner Reader[S]
	fn    func(S) T
}

// Compile-time assertion.
var _ Reader[int] = (*Map[*int, int])(nil)

// NewMap wraps inner so every element is passed through fn.
func NewMap[S, T any](inner Reader[S], fn func(S) T) *Map[S, T] {
	return &Map[S, T]{inner: inner, fn: fn}
}

// NewCloned dereferences every pointer inner yields. The copy is a plain Go
// assignment: pointers or slices inside T are shared, not duplicated.
func NewCloned[T any](inner Reader[*T]) *Map[*T, T] {
	return NewMap(inner, deref[T])
}

func deref[T any](p *T) T { return *p }

// Size implements Reader.
func (m *Map[S, T]) Size() Size { return m.inner.Size() }

// ItemUnchecked implements Reader.
func (m *Map[S, T]) ItemUnchecked(p Point) T { return m.fn(m.inner.ItemUnchecked(p)) }

// RowUnchecked implements Reader.
func (m *Map[S, T]) RowUnchecked(idx Index1D) Iter[T] {
	return MapIter(m.inner.RowUnchecked(idx), m.fn)
}

// ColUnchecked implements Reader.
func (m *Map[S, T]) ColUnchecked(idx Index1D) Iter[T] {
	return MapIter(m.inner.ColUnchecked(idx), m.fn)
}

// RowsUnchecked implements Reader.
func (m *Map[S, T]) RowsUnchecked(idx Index2D) Iter[Iter[T]] {
	return MapIter(m.inner.RowsUnchecked(idx), m.line)
}

// ColsUnchecked implements Reader.
func (m *Map[S, T]) ColsUnchecked(idx Index2D) Iter[Iter[T]] {
	return MapIter(m.inner.ColsUnchecked(idx), m.line)
}

// ItemsUnchecked implements Reader.
func (m *Map[S, T]) ItemsUnchecked(idx Index2D) Iter[T] {
	return MapIter(m.inner.ItemsUnchecked(idx), m.fn)
}

func (m *Map[S, T]) line(l Iter[S]) Iter[T] { return MapIter(l, m.fn) }

// Ptrs is a Grid read through its mutable accessors: every element is a
// pointer into the grid's buffer. Within one iterator the pointers are
// pairwise distinct.
type Ptrs[T any] struct {
	g *Grid[T]
}

// Size implements Reader.
func (p Ptrs[T]) Size() Size { return p.g.Size() }

// ItemUnchecked implements Reader.
func (p Ptrs[T]) ItemUnchecked(pt Point) *T { return p.g.ItemMutUnchecked(pt) }

// RowUnchecked implements Reader.
func (p Ptrs[T]) RowUnchecked(idx Index1D) Iter[*T] { return p.g.RowMutUnchecked(idx) }

// ColUnchecked implements Reader.
func (p Ptrs[T]) ColUnchecked(idx Index1D) Iter[*T] { return p.g.ColMutUnchecked(idx) }

// RowsUnchecked implements Reader.
func (p Ptrs[T]) RowsUnchecked(idx Index2D) Iter[Iter[*T]] { return p.g.RowsMutUnchecked(idx) }

// ColsUnchecked implements Reader.
func (p Ptrs[T]) ColsUnchecked(idx Index2D) Iter[Iter[*T]] { return p.g.ColsMutUnchecked(idx) }

// ItemsUnchecked implements Reader.
func (p Ptrs[T]) ItemsUnchecked(idx Index2D) Iter[*T] { return p.g.ItemsMutUnchecked(idx) }
