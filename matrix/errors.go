// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Functions return these sentinels (optionally wrapped with the
// operation name by matrixErrorf) and tests match them via errors.Is.
// No function panics on user-triggered error conditions; option
// constructors panic on programmer error only.
package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil *mat.Dense or nil reader was passed in.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmpty indicates a matrix (or grid) with zero rows or zero columns
	// where at least one element is required.
	ErrEmpty = errors.New("matrix: empty matrix")

	// ErrStrided indicates a sliced *mat.Dense whose rows are not adjacent in
	// memory, so it cannot be wrapped without copying.
	ErrStrided = errors.New("matrix: row stride differs from column count")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrTooFewRows indicates a sample statistic over fewer than two rows.
	ErrTooFewRows = errors.New("matrix: sample statistic needs at least two rows")
)

// matrixErrorf wraps err with the public operation name. errors.Is still
// matches the sentinel.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("matrix.%s: %w", op, err)
}
