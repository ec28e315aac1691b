// Package grid provides strided 2D views over flat buffers.
//
// A Grid[T] wraps one contiguous []T together with a storage order
// (RowMajor or ColMajor). Rows and columns, sub-rectangles and flattened
// item sequences are all produced as lightweight iterators over that one
// buffer; nothing is copied unless asked for (Clone, Relayout, Collect).
//
// What is inside:
//
//   - Geometry: Size, Point, Range, Rect.
//   - Layout math: Major, the single source of the offset formula
//     offset = minor*MajorLen + major.
//   - Index resolution: Point (0D); At, AtSpan, Line (1D); All, Area, Rect
//     (2D); Range and Bounds for per-axis ranges. Every accessor comes in a
//     checked form returning (value, ok) and a trusting ...Unchecked form.
//   - Iterators: Iter[T] with SliceIter, Minor and their mutable
//     counterparts SliceMut, MinorMut and MajorsMut. Mutable iterators hand
//     out pairwise disjoint pointers and capacity-capped slices.
//   - Views: anything implementing Reader[T]. Crop (window), Map and
//     NewCloned (value mapping), Repeat and RepeatWith (generators) stack on
//     top of a Grid or of each other.
//
// Errors:
//
//	Only construction fails with an error (ErrOverflow, ErrLengthMismatch,
//	ErrNegativeSize, ErrEmpty, ErrJagged). Out-of-range access reports
//	ok == false and never panics on a checked path.
//
// Quick example:
//
//	g, _ := grid.New(grid.Size{X: 4, Y: 3}, []rune("abcdefghijkl"))
//	row, _ := g.Row(grid.At(1))  // e f g h
//	col, _ := g.Col(grid.At(2))  // c g k
//
// Concurrency: a Grid is not synchronized. Concurrent readers are safe;
// writers need external locking.
package grid
