// SPDX-License-Identifier: MIT

package grid_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrid/grid"
)

//----------------------------------------------------------------------------//
// Crop
//----------------------------------------------------------------------------//

// TestCrop_Translates checks that every accessor is shifted by the window's
// corner, both ends of a span included.
func TestCrop_Translates(t *testing.T) {
	for _, lt := range layouts {
		t.Run(lt.name, func(t *testing.T) {
			g := numbered(t, lt.opt)
			c, ok := g.Crop(grid.Area(grid.Span(1, 3), grid.Span(1, 3)))
			require.True(t, ok)
			require.Equal(t, grid.Size{X: 2, Y: 2}, c.Size())
			line := liner[int](t)

			v, ok := grid.Item[int](c, grid.Point{})
			require.True(t, ok)
			require.Equal(t, 11, v)
			_, ok = grid.Item[int](c, grid.Point{X: 2, Y: 0})
			require.False(t, ok)

			diff(t, []int{21, 22}, line(grid.Row[int](c, grid.At(1))))
			diff(t, []int{11, 21}, line(grid.Col[int](c, grid.At(0))))
			diff(t, []int{12}, line(grid.Row[int](c, grid.AtSpan(0, grid.Span(1, 2)))))
			diff(t, []int{22}, line(grid.Col[int](c, grid.AtSpan(1, grid.From(1)))))
			diff(t, [][]int{{11, 12}, {21, 22}}, nested[int](t)(grid.Rows[int](c, grid.All)))
			diff(t, [][]int{{11, 21}, {12, 22}}, nested[int](t)(grid.Cols[int](c, grid.All)))

			_, ok = grid.Row[int](c, grid.At(2))
			require.False(t, ok)
			_, ok = grid.Row[int](c, grid.AtSpan(0, grid.To(3)))
			require.False(t, ok)
		})
	}
}

// TestCrop_ItemsFollowInnerOrder checks that a crop of a grid walks items in
// the grid's storage order.
func TestCrop_ItemsFollowInnerOrder(t *testing.T) {
	line := liner[int](t)
	area := grid.Area(grid.Span(1, 3), grid.Span(1, 3))

	rm, _ := numbered(t, grid.WithOrder(grid.RowMajor)).Crop(area)
	diff(t, []int{11, 12, 21, 22}, line(grid.Items[int](rm, grid.All)))

	cm, _ := numbered(t, grid.WithColMajor()).Crop(area)
	diff(t, []int{11, 21, 12, 22}, line(grid.Items[int](cm, grid.All)))
}

// TestCrop_Rejects checks that a window exceeding the reader is refused.
func TestCrop_Rejects(t *testing.T) {
	g := numbered(t, grid.WithOrder(grid.RowMajor))

	_, ok := grid.NewCrop[int](g, grid.Area(grid.Span(3, 5), grid.Full()))
	require.False(t, ok)
	_, ok = grid.NewCrop[int](g, grid.Area(grid.Full(), grid.ToIncl(3)))
	require.False(t, ok)

	c, ok := g.Crop(grid.Area(grid.From(2), grid.Full()))
	require.True(t, ok)
	_, ok = c.Crop(grid.Area(grid.To(3), grid.Full()))
	require.False(t, ok)
}

// TestCrop_Nested checks that nested windows compose their offsets whether
// flattened by Crop.Crop or stacked by NewCrop.
func TestCrop_Nested(t *testing.T) {
	g := numbered(t, grid.WithColMajor())
	outer, ok := g.Crop(grid.Area(grid.From(1), grid.From(1)))
	require.True(t, ok)

	flat, ok := outer.Crop(grid.Area(grid.From(1), grid.Full()))
	require.True(t, ok)
	require.Equal(t, grid.Rect{X: grid.Range{Start: 2, End: 4}, Y: grid.Range{Start: 1, End: 3}}, flat.Rect())

	stacked, ok := grid.NewCrop[int](outer, grid.Area(grid.From(1), grid.Full()))
	require.True(t, ok)

	require.True(t, grid.Equal[int](flat, stacked))
	diff(t, [][]int{{12, 13}, {22, 23}}, nested[int](t)(grid.Rows[int](stacked, grid.All)))
	diff(t, []int{13, 23}, liner[int](t)(grid.Col[int](stacked, grid.At(1))))
}

// TestCrop_Mutable writes through a cropped view of the grid's pointers.
func TestCrop_Mutable(t *testing.T) {
	for _, lt := range layouts {
		t.Run(lt.name, func(t *testing.T) {
			g := numbered(t, lt.opt)
			c := grid.NewCropUnchecked[*int](g.Ptrs(), grid.Rect{
				X: grid.Range{Start: 1, End: 3},
				Y: grid.Range{Start: 0, End: 2},
			})

			rows, ok := grid.Rows[*int](c, grid.All)
			require.True(t, ok)
			for row, ok := rows.Next(); ok; row, ok = rows.Next() {
				for p, ok := row.Next(); ok; p, ok = row.Next() {
					*p = -*p
				}
			}

			diff(t, [][]int{
				{0, -1, -2, 3},
				{10, -11, -12, 13},
				{20, 21, 22, 23},
			}, nested[int](t)(g.Rows(grid.All)))

			cl := grid.NewCloned[int](c)
			diff(t, [][]int{{-1, -11}, {-2, -12}}, nested[int](t)(grid.Cols[int](cl, grid.All)))
		})
	}
}

//----------------------------------------------------------------------------//
// Map / Cloned
//----------------------------------------------------------------------------//

func TestMap(t *testing.T) {
	g := numbered(t, grid.WithColMajor())
	m := grid.NewMap[int, string](g, strconv.Itoa)

	require.Equal(t, g.Size(), m.Size())
	v, ok := grid.Item[string](m, grid.Point{X: 3, Y: 2})
	require.True(t, ok)
	require.Equal(t, "23", v)
	diff(t, []string{"2", "12", "22"}, liner[string](t)(grid.Col[string](m, grid.At(2))))
	diff(t, []string{"0", "10", "20", "1"}, grid.Collect(grid.MapIter(
		grid.NewSliceIter([]int{0, 10, 20, 1}), strconv.Itoa)))
}

// TestCloned_Copies checks that the cloned view reads values, not pointers,
// and reflects later writes to the grid.
func TestCloned_Copies(t *testing.T) {
	g := numbered(t, grid.WithOrder(grid.RowMajor))
	cl := grid.NewCloned[int](g.Ptrs())

	require.True(t, grid.Equal[int](g, cl))
	got := liner[int](t)(grid.Items[int](cl, grid.Area(grid.To(2), grid.To(2))))
	diff(t, []int{0, 1, 10, 11}, got)

	got[0] = 99
	v, _ := g.Item(grid.Point{})
	require.Zero(t, v)

	g.Set(grid.Point{}, 5)
	v, _ = grid.Item[int](cl, grid.Point{})
	require.Equal(t, 5, v)
}

//----------------------------------------------------------------------------//
// Repeat / RepeatWith
//----------------------------------------------------------------------------//

func TestRepeat(t *testing.T) {
	r := grid.NewRepeat(grid.Size{X: 5, Y: 5}, 0)

	_, ok := grid.Item[int](r, grid.Point{X: 9, Y: 9})
	require.False(t, ok)
	v, ok := grid.Item[int](r, grid.Point{X: 2, Y: 2})
	require.True(t, ok)
	require.Zero(t, v)

	diff(t, []int{0, 0, 0, 0, 0}, liner[int](t)(grid.Row[int](r, grid.At(2))))
	diff(t, []int{0, 0}, liner[int](t)(grid.Col[int](r, grid.AtSpan(4, grid.Span(1, 3)))))
	diff(t, [][]int{{0, 0, 0}, {0, 0, 0}}, nested[int](t)(grid.Cols[int](r, grid.Area(grid.To(2), grid.To(3)))))

	items, ok := grid.Items[int](r, grid.All)
	require.True(t, ok)
	require.Equal(t, 25, items.Len())
	require.Len(t, grid.Collect(items), 25)
}

// TestRepeat_Huge checks that a generator view allocates nothing per cell.
func TestRepeat_Huge(t *testing.T) {
	r := grid.NewRepeat(grid.Size{X: 1 << 30, Y: 1 << 20}, 'x')
	row, ok := grid.Row[rune](r, grid.AtSpan(1<<19, grid.Span(1<<29, 1<<29+3)))
	require.True(t, ok)
	require.Equal(t, "xxx", string(grid.Collect(row)))
}

// TestRepeat_ItemsAreaOverflow checks that Items refuses a rectangle whose
// cell count does not fit in an int, while lines of the same view still work.
func TestRepeat_ItemsAreaOverflow(t *testing.T) {
	size := grid.Size{X: math.MaxInt, Y: 2}

	r := grid.NewRepeat(size, 7)
	_, ok := grid.Items[int](r, grid.All)
	require.False(t, ok)
	_, ok = grid.Items[int](r, grid.Area(grid.Full(), grid.To(1)))
	require.True(t, ok)
	items, ok := grid.Items[int](r, grid.Area(grid.To(2), grid.Full()))
	require.True(t, ok)
	require.Equal(t, 4, items.Len())
	diff(t, []int{7, 7, 7, 7}, grid.Collect(items))

	rw := grid.NewRepeatWith(size, func(p grid.Point) int { return p.Y })
	_, ok = grid.Items[int](rw, grid.All)
	require.False(t, ok)
	_, ok = grid.Items[int](grid.NewCropUnchecked[int](rw, grid.Rect{
		X: grid.Range{Start: 1, End: math.MaxInt},
		Y: grid.Range{Start: 0, End: 2},
	}), grid.All)
	require.False(t, ok)

	row, ok := grid.Row[int](rw, grid.AtSpan(1, grid.Span(10, 13)))
	require.True(t, ok)
	diff(t, []int{1, 1, 1}, grid.Collect(row))
}

// TestRepeatWith_CallOrder checks that fn is called lazily, once per yielded
// coordinate, in yield order.
func TestRepeatWith_CallOrder(t *testing.T) {
	var calls []grid.Point
	fn := func(p grid.Point) int {
		calls = append(calls, p)
		return p.X*10 + p.Y
	}
	size := grid.Size{X: 3, Y: 2}

	rw := grid.NewRepeatWith(size, fn)
	require.Equal(t, grid.RowMajor, rw.Order())
	row, ok := grid.Row[int](rw, grid.At(1))
	require.True(t, ok)
	require.Empty(t, calls)
	diff(t, []int{1, 11, 21}, grid.Collect(row))
	diff(t, []grid.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, calls)

	calls = nil
	diff(t, []int{20, 21}, liner[int](t)(grid.Col[int](rw, grid.At(2))))
	diff(t, []grid.Point{{X: 2, Y: 0}, {X: 2, Y: 1}}, calls)

	calls = nil
	diff(t, []int{0, 10, 20, 1, 11, 21}, liner[int](t)(grid.Items[int](rw, grid.All)))
	require.Len(t, calls, 6)
	require.Equal(t, grid.Point{X: 1, Y: 0}, calls[1])

	calls = nil
	cm := grid.NewRepeatWith(size, fn, grid.WithColMajor())
	diff(t, []int{0, 1, 10, 11, 20, 21}, liner[int](t)(grid.Items[int](cm, grid.All)))
	diff(t, []grid.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 2, Y: 1}}, calls)
}

// TestRepeatWith_Crop composes a generator with a window.
func TestRepeatWith_Crop(t *testing.T) {
	rw := grid.NewRepeatWith(grid.Size{X: 100, Y: 100}, func(p grid.Point) int { return p.X + 100*p.Y })
	c, ok := grid.NewCrop[int](rw, grid.Area(grid.Span(10, 12), grid.Span(50, 52)))
	require.True(t, ok)
	diff(t, [][]int{{5010, 5011}, {5110, 5111}}, nested[int](t)(grid.Rows[int](c, grid.All)))
}

func TestEqual_Sizes(t *testing.T) {
	a := grid.NewRepeat(grid.Size{X: 2, Y: 3}, 1)
	b := grid.NewRepeat(grid.Size{X: 3, Y: 2}, 1)
	require.False(t, grid.Equal[int](a, b))
	require.True(t, grid.Equal[int](a, grid.NewRepeatWith(grid.Size{X: 2, Y: 3}, func(grid.Point) int { return 1 })))
}
