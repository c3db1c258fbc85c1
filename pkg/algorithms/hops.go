package algorithms

import (
	"math/bits"

	"github.com/dd0wney/cluso-routefinder/pkg/graph"
)

// CountByHops counts walks from src to dst by number of hops.
//
// With exact set, only walks of exactly hopLimit hops are counted. Otherwise
// every walk of 1..hopLimit hops that ends at dst is counted, so a walk that
// passes through dst and comes back later is counted at each arrival.
//
// The expansion is level-order with two alternating frontiers. Each frontier
// holds, per node, the number of walks that reach it at the current depth,
// which counts the same walks as keeping one queue entry per walk. Frontier
// cells saturate at maxCount, and overflow is only reported once a saturated
// or overflowing count is added for dst.
func CountByHops(g *graph.Graph, src, dst, hopLimit int, exact bool) (int64, error) {
	if !g.Contains(src) || !g.Contains(dst) || hopLimit <= 0 {
		return 0, ErrNoRoute
	}

	n := g.NodeCount()
	current := make([]uint64, n)
	next := make([]uint64, n)
	current[src] = 1

	var routes uint64
	for hops := 1; hops <= hopLimit; hops++ {
		clear(next)
		reachable := false

		for node, walks := range current {
			if walks == 0 {
				continue
			}
			for neighbor, weight := range g.Row(node) {
				if weight == graph.NoEdge {
					continue
				}
				next[neighbor] = saturatingAdd(next[neighbor], walks)
				reachable = true
			}
		}

		if !exact || hops == hopLimit {
			sum, carry := bits.Add64(routes, next[dst], 0)
			if next[dst] >= maxCount || carry != 0 || sum > maxCount {
				return 0, ErrCountOverflow
			}
			routes = sum
		}

		// Nothing left to expand, deeper levels cannot add walks
		if !reachable {
			break
		}
		current, next = next, current
	}

	return nonZero(int64(routes))
}

const maxCount = uint64(1<<63 - 1)

func saturatingAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 || sum > maxCount {
		return maxCount
	}
	return sum
}
