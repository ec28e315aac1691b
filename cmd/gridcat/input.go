// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/lvgrid/grid"
)

var (
	errMode      = errors.New("unknown mode")
	errOrder     = errors.New("unknown order")
	errCropSpec  = errors.New("malformed crop, want x0:x1,y0:y1")
	errCropRange = errors.New("crop exceeds grid")
)

// readGrid loads one grid row per input line. A trailing carriage return is
// dropped so CRLF files read the same as LF ones.
func readGrid(r io.Reader, opts ...grid.Option) (*grid.Grid[rune], error) {
	var rows [][]rune
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, []rune(strings.TrimSuffix(sc.Text(), "\r")))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return grid.FromRows(rows, opts...)
}

func parseOrder(s string) (grid.Order, error) {
	switch s {
	case "row", "rows":
		return grid.RowMajor, nil
	case "col", "cols":
		return grid.ColMajor, nil
	default:
		return 0, fmt.Errorf("gridcat: %w: %q", errOrder, s)
	}
}

// parseCrop reads "x0:x1,y0:y1". Each side is a half-open span; an empty
// start or end leaves that end unbounded, so "2:,:" keeps every column from 2.
func parseCrop(s string) (grid.Index2D, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("gridcat: %w: %q", errCropSpec, s)
	}
	x, err := parseBounds(xs)
	if err != nil {
		return nil, fmt.Errorf("gridcat: %w: %q", errCropSpec, s)
	}
	y, err := parseBounds(ys)
	if err != nil {
		return nil, fmt.Errorf("gridcat: %w: %q", errCropSpec, s)
	}

	return grid.Area(x, y), nil
}

func parseBounds(s string) (grid.Bounds, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return grid.Bounds{}, errCropSpec
	}
	var b grid.Bounds
	if lo != "" {
		v, err := strconv.Atoi(lo)
		if err != nil || v < 0 {
			return grid.Bounds{}, errCropSpec
		}
		b.Start = grid.Incl(v)
	}
	if hi != "" {
		v, err := strconv.Atoi(hi)
		if err != nil || v < 0 {
			return grid.Bounds{}, errCropSpec
		}
		b.End = grid.Excl(v)
	}

	return b, nil
}

// upperAll rewrites every cell in place, row by row.
func upperAll(g *grid.Grid[rune]) {
	rows := g.RowsMutUnchecked(grid.All)
	for row, ok := rows.Next(); ok; row, ok = rows.Next() {
		for p, ok := row.Next(); ok; p, ok = row.Next() {
			*p = unicode.ToUpper(*p)
		}
	}
}
