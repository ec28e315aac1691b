// SPDX-License-Identifier: MIT

// Package matrix bridges gonum dense matrices and grid views.
//
// The matrix package provides:
//
//   - View / FromDense: a *mat.Dense seen as a grid.Reader[float64]. Rows of
//     a dense matrix are contiguous, so a matrix whose stride equals its
//     column count becomes a zero-copy row-major grid; a sliced matrix is
//     read through a generator view.
//   - ToDense: any float64 grid view materialized into a new *mat.Dense.
//   - Row/column statistics (RowSums, ColSums, ColMeans, ColStdDevs) computed
//     with gonum floats/stat over the line iterators of any view, including
//     crops and generators.
//   - In-place transforms (CenterColumns, NormalizeRows) through the mutable
//     line iterators of a *grid.Grid.
//
// Coordinates: grid points are (x = column, y = row); gonum indexes (row, col).
//
// Errors are package sentinels (ErrNilMatrix, ErrEmpty, ErrStrided,
// ErrNaNInf, ErrTooFewRows) wrapped with the operation name; match them with
// errors.Is.
package matrix
