// SPDX-License-Identifier: MIT

// Package matrix: row and column statistics over grid views.
//
// Purpose:
//   - Reduce every row or column of any grid.Reader[float64] with gonum's
//     floats/stat kernels.
//   - Transform a *grid.Grid in place through its mutable line iterators
//     (CenterColumns, NormalizeRows).
//
// Implementation:
//   - Stage 1: walk the lines of the view (Rows or Cols).
//   - Stage 2: contiguous lines are handed to gonum as the grid's own
//     sub-slice; strided lines are gathered into one reused scratch buffer.
//   - Stage 3: apply the kernel per line.
//
// Determinism:
//   - Fixed line order (top to bottom, left to right).
//
// Complexity:
//   - Time O(r*c); extra space O(max(r, c)).
package matrix

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvgrid/grid"
)

const (
	opRowSums       = "RowSums"
	opColSums       = "ColSums"
	opColMeans      = "ColMeans"
	opColStdDevs    = "ColStdDevs"
	opCenterColumns = "CenterColumns"
	opNormalizeRows = "NormalizeRows"
)

// RowSums returns Σ_x r[x, y] for every row y.
func RowSums(r grid.Reader[float64]) ([]float64, error) {
	if r == nil {
		return nil, matrixErrorf(opRowSums, ErrNilMatrix)
	}

	return reduceLines(r.RowsUnchecked(grid.All), floats.Sum), nil
}

// ColSums returns Σ_y r[x, y] for every column x.
func ColSums(r grid.Reader[float64]) ([]float64, error) {
	if r == nil {
		return nil, matrixErrorf(opColSums, ErrNilMatrix)
	}

	return reduceLines(r.ColsUnchecked(grid.All), floats.Sum), nil
}

// ColMeans returns the arithmetic mean of every column.
//
// Errors:
//   - ErrNilMatrix; ErrEmpty when the view has no rows.
func ColMeans(r grid.Reader[float64]) ([]float64, error) {
	if r == nil {
		return nil, matrixErrorf(opColMeans, ErrNilMatrix)
	}
	if r.Size().Y == 0 {
		return nil, matrixErrorf(opColMeans, ErrEmpty)
	}

	return reduceLines(r.ColsUnchecked(grid.All), mean), nil
}

// ColStdDevs returns the standard deviation of every column: the sample
// deviation by default, the population deviation under WithPopulation.
//
// Errors:
//   - ErrNilMatrix; ErrEmpty when the view has no rows.
//   - ErrTooFewRows for a sample deviation over a single row.
func ColStdDevs(r grid.Reader[float64], opts ...Option) ([]float64, error) {
	if r == nil {
		return nil, matrixErrorf(opColStdDevs, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	h := r.Size().Y
	switch {
	case h == 0:
		return nil, matrixErrorf(opColStdDevs, ErrEmpty)
	case h < 2 && !o.population:
		return nil, matrixErrorf(opColStdDevs, ErrTooFewRows)
	}

	kernel := sampleStdDev
	if o.population {
		kernel = popStdDev
	}

	return reduceLines(r.ColsUnchecked(grid.All), kernel), nil
}

// CenterColumns subtracts each column's mean from the column in place and
// returns the means, so the caller can undo the shift.
//
// Behavior highlights:
//   - Zero rows: no-op, returns zero means (len = width).
//   - Works for both storage orders; columns of a row-major grid are walked
//     through strided mutable cursors.
//
// Errors:
//   - ErrNilMatrix for a nil grid.
func CenterColumns(g *grid.Grid[float64]) ([]float64, error) {
	if g == nil {
		return nil, matrixErrorf(opCenterColumns, ErrNilMatrix)
	}
	s := g.Size()
	if s.Y == 0 {
		return make([]float64, s.X), nil
	}

	means := reduceLines(g.ColsUnchecked(grid.All), mean)
	cols := g.ColsMutUnchecked(grid.All)
	for x := 0; ; x++ {
		col, ok := cols.Next()
		if !ok {
			break
		}
		for p, ok := col.Next(); ok; p, ok = col.Next() {
			*p -= means[x]
		}
	}

	return means, nil
}

// NormalizeRows scales every row to unit L2 norm in place and returns the
// original norms. Rows whose norm is ≤ eps (WithEpsilon) are left unchanged.
//
// Errors:
//   - ErrNilMatrix for a nil grid.
func NormalizeRows(g *grid.Grid[float64], opts ...Option) ([]float64, error) {
	if g == nil {
		return nil, matrixErrorf(opNormalizeRows, ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	norms := reduceLines(g.RowsUnchecked(grid.All), l2)
	rows := g.RowsMutUnchecked(grid.All)
	for y := 0; ; y++ {
		row, ok := rows.Next()
		if !ok {
			break
		}
		if norms[y] <= o.eps {
			continue
		}
		inv := 1 / norms[y]
		for p, ok := row.Next(); ok; p, ok = row.Next() {
			*p *= inv
		}
	}

	return norms, nil
}

// reduceLines applies fn to every line. Contiguous lines are passed as the
// grid's own sub-slice; fn must not retain or modify its argument.
func reduceLines(lines grid.Iter[grid.Iter[float64]], fn func([]float64) float64) []float64 {
	out := make([]float64, 0, lines.Len())
	var buf []float64
	for line, ok := lines.Next(); ok; line, ok = lines.Next() {
		if s, contiguous := line.(*grid.SliceIter[float64]); contiguous {
			out = append(out, fn(s.Rest()))
			continue
		}
		buf = buf[:0]
		for v, ok := line.Next(); ok; v, ok = line.Next() {
			buf = append(buf, v)
		}
		out = append(out, fn(buf))
	}

	return out
}

func mean(x []float64) float64 { return stat.Mean(x, nil) }

func sampleStdDev(x []float64) float64 { return stat.StdDev(x, nil) }

func popStdDev(x []float64) float64 {
	_, std := stat.PopMeanStdDev(x, nil)
	return std
}

func l2(x []float64) float64 { return floats.Norm(x, 2) }
