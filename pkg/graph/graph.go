package graph

import "math"

const (
	// MaxWeight is the largest edge weight the builder accepts
	MaxWeight int64 = math.MaxInt32

	// NoEdge marks an absent edge. Valid weights never exceed MaxWeight, so
	// they cannot collide with it.
	NoEdge int64 = math.MaxInt64
)

// Graph is a dense weighted adjacency table over node indices.
// It is populated by Build and read-only afterwards.
type Graph struct {
	n       int
	weights []int64 // row-major n*n
	edges   int
}

// newGraph allocates an n-node graph with no edges
func newGraph(n int) *Graph {
	weights := make([]int64, n*n)
	for i := range weights {
		weights[i] = NoEdge
	}
	return &Graph{n: n, weights: weights}
}

// setMin stores weight for (src, dst) unless a cheaper edge is already present
func (g *Graph) setMin(src, dst int, weight int64) {
	cell := &g.weights[src*g.n+dst]
	if *cell == NoEdge {
		g.edges++
	}
	if weight < *cell {
		*cell = weight
	}
}

// NodeCount returns the number of nodes
func (g *Graph) NodeCount() int {
	return g.n
}

// EdgeCount returns the number of stored edges after parallel-edge resolution
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Contains reports whether idx is a valid node index
func (g *Graph) Contains(idx int) bool {
	return idx >= 0 && idx < g.n
}

// Weight returns the weight of the edge src->dst, or NoEdge when there is
// none or either index is out of range.
func (g *Graph) Weight(src, dst int) int64 {
	if !g.Contains(src) || !g.Contains(dst) {
		return NoEdge
	}
	return g.weights[src*g.n+dst]
}

// HasEdge reports whether an edge src->dst exists. A zero-weight edge exists.
func (g *Graph) HasEdge(src, dst int) bool {
	return g.Weight(src, dst) != NoEdge
}

// Row returns the outgoing weights of src indexed by destination.
// The slice aliases the graph and must not be modified.
func (g *Graph) Row(src int) []int64 {
	if !g.Contains(src) {
		return nil
	}
	return g.weights[src*g.n : (src+1)*g.n]
}
