// SPDX-License-Identifier: MIT

// Package grid - mutable iterator adapters.
//
// Purpose:
//   - Hand out pointers (or sub-slices) into one buffer such that no two
//     values yielded by the same iterator alias each other.
//
// Disjointness argument:
//   - Each adapter keeps only the unvisited tail of the buffer. A step splits
//     the tail into a head it yields from and a new tail it retains; the head
//     is never seen again by the iterator.
//   - Yielded sub-slices are capacity-capped (full slice expressions), so an
//     append on a yielded line reallocates instead of writing into the next one.
//   - Distinct minor lines (columns of a row-major grid) differ in their major
//     coordinate, so their strides never touch the same offset.
//
// Complexity:
//   - Next: O(1).
package grid

// SliceMut yields a pointer to every element of a contiguous line.
type SliceMut[T any] struct {
	items []T
}

// NewSliceMut returns a mutable cursor over items.
func NewSliceMut[T any](items []T) *SliceMut[T] {
	return &SliceMut[T]{items: items}
}

// Next implements Iter.
func (s *SliceMut[T]) Next() (*T, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	head, tail := s.items[:1:1], s.items[1:]
	s.items = tail

	return &head[0], true
}

// Len implements Iter.
func (s *SliceMut[T]) Len() int { return len(s.items) }

// MinorMut yields a pointer to one element per major stride.
type MinorMut[T any] struct {
	items     []T // tail starting at the next stride
	i         int // major coordinate inside each stride
	step      int // MajorLen
	remaining int
}

// newMinorMut positions the tail at the first stride of interest.
// Precondition: l is valid for m and len(items) matches m.
func newMinorMut[T any](items []T, m Major, l Line) *MinorMut[T] {
	step := m.MajorLen()
	n := l.Span.Len()
	if n == 0 {
		return &MinorMut[T]{}
	}

	return &MinorMut[T]{
		items:     items[l.Span.Start*step:],
		i:         l.Index,
		step:      step,
		remaining: n,
	}
}

// Next implements Iter.
func (m *MinorMut[T]) Next() (*T, bool) {
	if m.remaining == 0 {
		return nil, false
	}
	head, tail := m.items[:m.step:m.step], m.items[m.step:]
	m.items = tail
	m.remaining--
	if m.remaining == 0 {
		m.items = nil
	}

	return &head[m.i], true
}

// Len implements Iter.
func (m *MinorMut[T]) Len() int { return m.remaining }

// MajorsMut yields consecutive major lines restricted to span, each as a
// capacity-capped sub-slice.
type MajorsMut[T any] struct {
	items     []T
	span      Range // along the major axis
	step      int   // MajorLen
	remaining int
}

// newMajorsMut positions the tail at the first major line of minor.
// Precondition: major ⊆ [0, MajorLen), minor ⊆ [0, MinorLen).
func newMajorsMut[T any](items []T, m Major, major, minor Range) *MajorsMut[T] {
	step := m.MajorLen()
	n := minor.Len()
	if n == 0 {
		return &MajorsMut[T]{}
	}

	return &MajorsMut[T]{
		items:     items[minor.Start*step:],
		span:      major,
		step:      step,
		remaining: n,
	}
}

// Next implements Iter.
func (m *MajorsMut[T]) Next() ([]T, bool) {
	if m.remaining == 0 {
		return nil, false
	}
	head, tail := m.items[:m.step:m.step], m.items[m.step:]
	m.items = tail
	m.remaining--
	if m.remaining == 0 {
		m.items = nil
	}

	return head[m.span.Start:m.span.End:m.span.End], true
}

// Len implements Iter.
func (m *MajorsMut[T]) Len() int { return m.remaining }
