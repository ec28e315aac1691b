// Package lvgrid is an in-memory toolkit for rectangular grids: one flat
// buffer, two storage orders, and cheap views stacked on top.
//
// What is in the box?
//
//	A small, dependency-light set of packages that brings together:
//		• Layout algebra: row-major / column-major addressing (Major)
//		• Index shapes: bounds, lines and rectangles, checked or trusted
//		• Iterators: contiguous and strided, read-only and mutable
//		• Views: Crop, Map / Cloned, Repeat and RepeatWith
//		• Numeric bridge: gonum mat.Dense in and out, column statistics
//		• Grid graphs: islands and minimal bridges over any int view
//
// Why lvgrid?
//
//   - Zero-copy: rows, columns and crops never duplicate the buffer
//   - Safe mutation: mutable iterators never alias two cells
//   - Layout-independent: Row and Col mean the same thing in both orders
//   - Composable: every view is itself a grid.Reader
//
// Packages:
//
//	grid/        Grid, Major, index shapes, iterators and views
//	matrix/      gonum bridge and per-row / per-column statistics
//	gridgraph/   connected components and 0-1 BFS expansions on int grids
//	cmd/gridcat  print a text block by rows, columns or items
//
// Quick ASCII example (4×3, column-major storage):
//
//	a b c d        buffer: a e i b f j c g k d h l
//	e f g h        Row(At(1))  → e f g h   (strided)
//	i j k l        Col(At(2))  → c g k     (contiguous)
//
//	go get github.com/katalvlaran/lvgrid/grid
package lvgrid
