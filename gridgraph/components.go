// SPDX-License-Identifier: MIT

package gridgraph

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// (value ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components in row-major order of their first cell;
// each component is a slice of cell‐indices (row‐major) in BFS order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for the land mask, visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	land := gg.landMask()
	seen := make([]bool, len(land))
	var comps [][]int

	for i, isLand := range land {
		if !isLand || seen[i] {
			continue
		}
		seen[i] = true
		queue := []int{i}
		for qi := 0; qi < len(queue); qi++ {
			gg.eachNeighbor(queue[qi], func(j int) {
				if land[j] && !seen[j] {
					seen[j] = true
					queue = append(queue, j)
				}
			})
		}
		comps = append(comps, queue)
	}

	return comps
}
