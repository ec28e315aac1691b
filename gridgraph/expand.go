// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/list"
	"math"
	"slices"
)

// ExpandIsland finds a minimum‐conversion path of “water” cells
// (value < LandThreshold) to connect any cell in component srcComp to any
// cell in component dstComp, as identified by ConnectedComponents().
// Each water‐cell conversion costs 1; crossing land is free.
// Returns the sequence of cell‐indices (row‐major) representing the path
// (including the start and end land cells) and the total conversion cost.
//
// The search is a multi-source 0-1 BFS over the same land mask and neighbor
// walk ConnectedComponents uses: land neighbors go to the front of the
// deque, water neighbors to the back, and the first dstComp cell dequeued
// ends the search.
//
// srcComp == dstComp yields a single-cell path at cost 0.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if !validComponent(srcComp, len(comps)) || !validComponent(dstComp, len(comps)) {
		return nil, 0, ErrComponentIndex
	}

	land := gg.landMask()
	inDst := make([]bool, len(land))
	for _, i := range comps[dstComp] {
		inDst[i] = true
	}
	dist := make([]int, len(land))
	prev := make([]int, len(land))
	for i := range dist {
		dist[i], prev[i] = math.MaxInt, -1
	}

	dq := list.New()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.PushBack(i)
	}
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if inDst[u] {
			return trace(prev, u), dist[u], nil
		}
		gg.eachNeighbor(u, func(v int) {
			step := 1
			if land[v] {
				step = 0
			}
			if dist[u]+step >= dist[v] {
				return
			}
			dist[v], prev[v] = dist[u]+step, u
			if step == 0 {
				dq.PushFront(v)
			} else {
				dq.PushBack(v)
			}
		})
	}

	return nil, 0, ErrNoPath
}

func validComponent(c, n int) bool { return c >= 0 && c < n }

// trace follows predecessor links back from cell to a source.
func trace(prev []int, cell int) []int {
	var path []int
	for at := cell; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	slices.Reverse(path)

	return path
}
