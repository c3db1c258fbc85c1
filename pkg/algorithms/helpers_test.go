package algorithms

import (
	"testing"

	"github.com/dd0wney/cluso-routefinder/pkg/graph"
)

// referenceGraph is the classic nine-edge town graph
const referenceGraph = "AB5, BC4, CD8, DC8, DE6, AD5, CE2, EB3, AE7"

type testGraph struct {
	*graph.Graph
	labels *graph.LabelRegistry
}

func buildTestGraph(t *testing.T, description string) testGraph {
	t.Helper()
	g, labels, err := graph.Build(description)
	if err != nil {
		t.Fatalf("Build(%q) failed: %v", description, err)
	}
	return testGraph{Graph: g, labels: labels}
}

// idx resolves a label, failing the test when it is unknown
func (tg testGraph) idx(t *testing.T, label string) int {
	t.Helper()
	i, ok := tg.labels.Lookup(label)
	if !ok {
		t.Fatalf("label %q not in graph", label)
	}
	return i
}

func (tg testGraph) path(t *testing.T, labels ...string) []int {
	t.Helper()
	out := make([]int, len(labels))
	for i, l := range labels {
		out[i] = tg.idx(t, l)
	}
	return out
}
