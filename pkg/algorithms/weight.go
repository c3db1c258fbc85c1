package algorithms

import "github.com/dd0wney/cluso-routefinder/pkg/graph"

// CountByWeight counts walks from src whose accumulated weight stays strictly
// below maxWeight, counting every arrival at dst after at least one edge.
//
// Cycles are cut by the visited set: a node is added when it is entered and
// removed when its branch returns. Meeting a visited neighbour before the walk
// has reached dst abandons the whole current node, discarding what its
// earlier neighbours counted. Once dst has been reached, visited nodes may be
// entered again.
//
// Zero-weight cycles additionally need the accumulated weight to have grown
// since a node still on the stack was last entered. Positive-weight cycles
// always satisfy this, so it only changes walks that would never end.
func CountByWeight(g *graph.Graph, src, dst int, maxWeight int64) (int64, error) {
	if !g.Contains(src) || !g.Contains(dst) {
		return 0, ErrNoRoute
	}

	n := g.NodeCount()
	w := &weightWalker{
		g:         g,
		dst:       dst,
		maxWeight: maxWeight,
		visited:   make([]bool, n),
		onStack:   make([]int, n),
		enteredAt: make([]int64, n),
	}

	count, err := w.walk(src, 0, false, false)
	if err != nil {
		return 0, err
	}
	return nonZero(count)
}

// weightWalker holds the state shared across one CountByWeight enumeration
type weightWalker struct {
	g         *graph.Graph
	dst       int
	maxWeight int64

	// visited is a plain set: leaving a branch clears the node even when an
	// outer frame entered it too.
	visited []bool

	// onStack counts the frames currently inside each node, enteredAt is the
	// accumulated weight of the innermost one.
	onStack   []int
	enteredAt []int64
}

// walk counts the arrivals at dst on every walk continuing from node.
// entered is false only for the starting node, which has not taken an edge.
func (w *weightWalker) walk(node int, travelled int64, entered, dstReached bool) (int64, error) {
	if travelled >= w.maxWeight {
		return 0, nil
	}

	var routes int64
	if entered && node == w.dst {
		routes++
		dstReached = true
	}

	for neighbor, weight := range w.g.Row(node) {
		if weight == graph.NoEdge {
			continue
		}
		if w.visited[neighbor] && !dstReached {
			return 0, nil
		}

		next := travelled + weight
		if w.onStack[neighbor] > 0 && next <= w.enteredAt[neighbor] {
			continue
		}

		prevEntered := w.enteredAt[neighbor]
		w.visited[neighbor] = true
		w.onStack[neighbor]++
		w.enteredAt[neighbor] = next

		sub, err := w.walk(neighbor, next, true, dstReached)

		w.visited[neighbor] = false
		w.onStack[neighbor]--
		w.enteredAt[neighbor] = prevEntered

		if err != nil {
			return 0, err
		}
		if routes > maxCountInt64-sub {
			return 0, ErrCountOverflow
		}
		routes += sub
	}

	return routes, nil
}

const maxCountInt64 = int64(1<<63 - 1)
