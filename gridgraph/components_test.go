// SPDX-License-Identifier: MIT

package gridgraph

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = land, 0 = water):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 islands of sizes 4 and 2.
//
// Complexity: O(W·H·4) time, O(W·H) memory.
func TestConnectedComponents_Simple4(t *testing.T) {
	gg, err := From2D([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}, Conn4)
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	require.Equal(t, []int{2, 4}, sizes)

	// Components are ordered by their first cell in row-major order.
	require.Equal(t, gg.Index(1, 0), comps[0][0])
	require.Equal(t, gg.Index(2, 2), comps[1][0])
}

// TestConnectedComponents_Diagonal8 tests ConnectedComponents on a 5×5 grid
// using diagonal connectivity (Conn8) to catch “touching corners” islands.
//
// Grid:
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
//
// With Conn8, all 9 ones connect through diagonal hops into a single island;
// with Conn4 every one is its own island.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	values := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	gg, err := From2D(values, Conn8)
	require.NoError(t, err)
	comps := gg.ConnectedComponents()
	require.Len(t, comps, 1)
	require.Len(t, comps[0], 9)

	gg4, err := From2D(values, Conn4)
	require.NoError(t, err)
	require.Len(t, gg4.ConnectedComponents(), 9)
}

// TestConnectedComponents_EmptyAndAllWater tests edge cases:
//   - completely water grid → zero components
//   - single‐cell land grid → one component of size 1
func TestConnectedComponents_EmptyAndAllWater(t *testing.T) {
	gg1, err := From2D([][]int{{0, 0}, {0, 0}}, Conn4)
	require.NoError(t, err)
	require.Empty(t, gg1.ConnectedComponents())

	gg2, err := From2D([][]int{{0, 1}}, Conn4)
	require.NoError(t, err)
	comps := gg2.ConnectedComponents()
	require.Len(t, comps, 1)
	require.Equal(t, []int{1}, comps[0])
}

// TestConnectedComponents_InvalidRects ensures From2D rejects bad inputs.
func TestConnectedComponents_InvalidRects(t *testing.T) {
	_, err := From2D(nil, Conn4)
	require.ErrorIs(t, err, ErrEmptyGrid)
	_, err = From2D([][]int{{1}, {}}, Conn4)
	require.ErrorIs(t, err, ErrNonRectangular)
}
