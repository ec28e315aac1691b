// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgrid/grid"
)

// NewGridGraph constructs a GridGraph from any non-empty grid view.
// It copies the values into a private row-major grid to ensure immutability,
// so crops, generators and column-major grids are all accepted.
// Returns ErrEmptyGrid if cells is nil (including a nil *grid.Grid) or has
// no rows or no columns.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(cells grid.Reader[int], opts GridOptions) (*GridGraph, error) {
	if cells == nil {
		return nil, ErrEmptyGrid
	}
	if g, ok := cells.(*grid.Grid[int]); ok && g == nil {
		return nil, ErrEmptyGrid
	}
	size := cells.Size()
	if size.X <= 0 || size.Y <= 0 {
		return nil, ErrEmptyGrid
	}
	g, err := grid.Make[int](size)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: NewGridGraph: %w", err)
	}

	// Copy row by row into storage order (row-major, so the orders agree).
	dst := g.ItemsMutUnchecked(grid.All)
	rows := cells.RowsUnchecked(grid.All)
	for row, ok := rows.Next(); ok; row, ok = rows.Next() {
		for v, ok := row.Next(); ok; v, ok = row.Next() {
			p, _ := dst.Next()
			*p = v
		}
	}

	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}
	gg := &GridGraph{
		Width:           size.X,
		Height:          size.Y,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		cells:           g,
		neighborOffsets: offsets,
	}
	gg.land = grid.NewMap[int, bool](g, gg.isLand)

	return gg, nil
}

// FromRows builds a GridGraph from a rectangular 2D slice (values[y][x]).
// Returns ErrEmptyGrid for no rows or no columns, ErrNonRectangular if any
// row length differs.
func FromRows(values [][]int, opts GridOptions) (*GridGraph, error) {
	g, err := grid.FromRows(values)
	switch {
	case errors.Is(err, grid.ErrEmpty):
		return nil, ErrEmptyGrid
	case errors.Is(err, grid.ErrJagged):
		return nil, ErrNonRectangular
	case err != nil:
		return nil, fmt.Errorf("gridgraph: FromRows: %w", err)
	}

	return NewGridGraph(g, opts)
}

// From2D is FromRows with the default land threshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return FromRows(values, opts)
}

// Options returns the options the graph was built with.
func (gg *GridGraph) Options() GridOptions {
	return GridOptions{LandThreshold: gg.LandThreshold, Conn: gg.Conn}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return grid.Point{X: x, Y: y}.In(gg.cells.Size())
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Value returns the original value at (x,y), or false when out of bounds.
func (gg *GridGraph) Value(x, y int) (int, bool) {
	return gg.cells.Item(grid.Point{X: x, Y: y})
}

// Values exposes the cell values as a read-only view.
func (gg *GridGraph) Values() grid.Reader[int] {
	return grid.NewCloned[int](gg.cells.Ptrs())
}

// Land exposes the land mask (value ≥ LandThreshold) as a view.
func (gg *GridGraph) Land() grid.Reader[bool] { return gg.land }

// Cells iterates all cells in row-major order.
// Complexity: O(1) per step.
func (gg *GridGraph) Cells() grid.Iter[Cell] {
	i := -1

	return grid.MapIter(gg.cells.ItemsUnchecked(grid.All), func(v int) Cell {
		i++
		x, y := gg.Coordinate(i)

		return Cell{X: x, Y: y, Value: v}
	})
}

// Sub returns a new GridGraph over the region idx, with the same options.
// Coordinates in the result are relative to the region's top-left corner.
// Returns ErrRegion if idx does not fit.
func (gg *GridGraph) Sub(idx grid.Index2D) (*GridGraph, error) {
	c, ok := gg.cells.Crop(idx)
	if !ok {
		return nil, ErrRegion
	}

	return NewGridGraph(c, gg.Options())
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return gg.cells.Major().IndexUnchecked(grid.Point{X: x, Y: y})
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

func (gg *GridGraph) isLand(v int) bool { return v >= gg.LandThreshold }

// landMask walks the land view once; entry i is cell i in row-major order.
func (gg *GridGraph) landMask() []bool {
	return grid.Collect(gg.land.ItemsUnchecked(grid.All))
}

// eachNeighbor calls visit with the row-major index of every in-bounds
// neighbor of cell i, in NeighborOffsets order.
func (gg *GridGraph) eachNeighbor(i int, visit func(j int)) {
	x, y := gg.Coordinate(i)
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if gg.InBounds(nx, ny) {
			visit(gg.Index(nx, ny))
		}
	}
}
