// SPDX-License-Identifier: MIT

// Package matrix: gonum mat.Dense ⇄ grid views.
//
// Purpose:
//   - View a gonum matrix as a grid without copying whenever its rows are
//     adjacent in memory, and fall back to a generator view otherwise.
//   - Materialize any float64 grid view back into a mat.Dense.
//
// Layout:
//   - mat.Dense is row-major with a row stride ≥ column count. When stride ==
//     cols the raw buffer is exactly a row-major grid of cols×rows.
//   - Grid coordinates are (x = column, y = row); gonum's At takes (row, col).
//
// Complexity:
//   - View/FromDense: O(1) plus O(r*c) when NaN/Inf validation is enabled.
//   - ToDense: O(r*c).
package matrix

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvgrid/grid"
)

// Operation names for error wrapping.
const (
	opView      = "View"
	opFromDense = "FromDense"
	opToDense   = "ToDense"
)

// View wraps d as a row-major grid sharing d's storage.
// Writes through the grid are visible in d and vice versa.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty, ErrNaNInf (when validation is enabled).
//   - ErrStrided when d is a slice of a wider matrix; use FromDense.
func View(d *mat.Dense, opts ...Option) (*grid.Grid[float64], error) {
	raw, err := rawOf(d, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opView, err)
	}
	if raw.Stride != raw.Cols {
		return nil, matrixErrorf(opView, ErrStrided)
	}

	g, err := grid.New(grid.Size{X: raw.Cols, Y: raw.Rows}, raw.Data[:raw.Rows*raw.Cols])
	if err != nil {
		return nil, matrixErrorf(opView, err)
	}

	return g, nil
}

// FromDense returns a read view of d: the zero-copy grid of View when
// possible, otherwise a generator reading through d.At.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty, ErrNaNInf (when validation is enabled).
func FromDense(d *mat.Dense, opts ...Option) (grid.Reader[float64], error) {
	raw, err := rawOf(d, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opFromDense, err)
	}
	size := grid.Size{X: raw.Cols, Y: raw.Rows}
	if raw.Stride == raw.Cols {
		return grid.NewUnchecked(size, raw.Data[:raw.Rows*raw.Cols]), nil
	}

	return grid.NewRepeatWith(size, func(p grid.Point) float64 {
		return d.At(p.Y, p.X)
	}), nil
}

// ToDense copies r into a new rows×cols mat.Dense (rows = height).
// A row-major *grid.Grid is copied in one block; any other reader row by row.
//
// Errors:
//   - ErrNilMatrix for a nil reader; ErrEmpty when either side is zero
//     (gonum has no empty constructor); grid.ErrOverflow for absurd sizes.
func ToDense(r grid.Reader[float64]) (*mat.Dense, error) {
	if r == nil {
		return nil, matrixErrorf(opToDense, ErrNilMatrix)
	}
	s := r.Size()
	if s.X == 0 || s.Y == 0 {
		return nil, matrixErrorf(opToDense, ErrEmpty)
	}
	n, ok := s.Area()
	if !ok {
		return nil, matrixErrorf(opToDense, grid.ErrOverflow)
	}

	data := make([]float64, n)
	if g, ok := r.(*grid.Grid[float64]); ok && g.Order() == grid.RowMajor {
		copy(data, g.Buffer())
	} else {
		rows := r.RowsUnchecked(grid.All)
		dst := data
		for row, ok := rows.Next(); ok; row, ok = rows.Next() {
			for v, ok := row.Next(); ok; v, ok = row.Next() {
				dst[0] = v
				dst = dst[1:]
			}
		}
	}

	return mat.NewDense(s.Y, s.X, data), nil
}

// rawOf validates d and returns its raw storage.
func rawOf(d *mat.Dense, o Options) (blas64.General, error) {
	if d == nil {
		return blas64.General{}, ErrNilMatrix
	}
	if d.IsEmpty() {
		return blas64.General{}, ErrEmpty
	}
	raw := d.RawMatrix()
	if o.validateNaNInf {
		for i := 0; i < raw.Rows; i++ {
			base := i * raw.Stride
			for _, v := range raw.Data[base : base+raw.Cols] {
				if isNonFinite(v) {
					return blas64.General{}, ErrNaNInf
				}
			}
		}
	}

	return raw, nil
}
