package algorithms

import "github.com/dd0wney/cluso-routefinder/pkg/graph"

// RouteDistance returns the total weight of following path edge by edge.
// A single-node path has distance 0; an empty path or any missing edge is
// ErrNoRoute.
func RouteDistance(g *graph.Graph, path []int) (int64, error) {
	if len(path) == 0 || !g.Contains(path[0]) {
		return 0, ErrNoRoute
	}

	var distance int64
	for i := 1; i < len(path); i++ {
		weight := g.Weight(path[i-1], path[i])
		if weight == graph.NoEdge {
			return 0, ErrNoRoute
		}
		distance += weight
	}

	return distance, nil
}
