package algorithms

import "github.com/dd0wney/cluso-routefinder/pkg/graph"

// ShortestPath returns the smallest total weight of a walk of at least one
// edge from src to dst.
//
// The source is not seeded with distance 0 and is not finalized up front, so
// it is treated like any other destination: ShortestPath(g, x, x) is the
// weight of the cheapest cycle through x. Tentative distances start from the
// source's own outgoing edges; each round finalizes the closest unfinalized
// node and relaxes its edges. With a dense table the minimum is found by a
// linear scan, giving O(V²) overall.
func ShortestPath(g *graph.Graph, src, dst int) (int64, error) {
	if !g.Contains(src) || !g.Contains(dst) {
		return 0, ErrNoRoute
	}

	n := g.NodeCount()
	distances := make([]int64, n)
	finalized := make([]bool, n)
	copy(distances, g.Row(src))

	for {
		// Extract min (linear search)
		current := -1
		for node := 0; node < n; node++ {
			if finalized[node] || distances[node] == graph.NoEdge {
				continue
			}
			if current == -1 || distances[node] < distances[current] {
				current = node
			}
		}
		if current == -1 {
			break
		}

		finalized[current] = true
		if current == dst {
			return distances[dst], nil
		}

		for neighbor, weight := range g.Row(current) {
			if weight == graph.NoEdge || finalized[neighbor] {
				continue
			}
			if candidate := distances[current] + weight; candidate < distances[neighbor] {
				distances[neighbor] = candidate
			}
		}
	}

	return 0, ErrNoRoute
}
