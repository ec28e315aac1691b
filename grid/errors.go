// SPDX-License-Identifier: MIT

// Package grid: sentinel error set.
// Construction is the only fallible operation in this package; per-access
// bounds violations are reported as a false "ok" result, never as an error
// and never as a panic. Callers match sentinels with errors.Is.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow indicates that width*height does not fit in an int.
	ErrOverflow = errors.New("grid: width*height overflows int")

	// ErrLengthMismatch indicates that the buffer length differs from width*height.
	ErrLengthMismatch = errors.New("grid: buffer length does not match size")

	// ErrNegativeSize indicates a negative width or height.
	ErrNegativeSize = errors.New("grid: negative size")

	// ErrEmpty indicates that nested input has no lines.
	ErrEmpty = errors.New("grid: no lines")

	// ErrJagged indicates nested input whose lines differ in length.
	ErrJagged = errors.New("grid: lines differ in length")
)

// ShapeError reports a rejected construction. Items is the buffer that was
// passed in, handed back untouched so the caller loses no data.
type ShapeError[T any] struct {
	Size  Size
	Items []T
	Err   error // one of ErrOverflow, ErrLengthMismatch, ErrNegativeSize
}

// Error implements error.
func (e *ShapeError[T]) Error() string {
	return fmt.Sprintf("grid: size %v, %d items: %v", e.Size, len(e.Items), e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ShapeError[T]) Unwrap() error { return e.Err }

// checkShape validates size against a buffer of n items.
func checkShape(size Size, n int) error {
	if size.X < 0 || size.Y < 0 {
		return ErrNegativeSize
	}
	area, ok := size.Area()
	if !ok {
		return ErrOverflow
	}
	if area != n {
		return ErrLengthMismatch
	}

	return nil
}
