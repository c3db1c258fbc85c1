package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "routefinder_graph_nodes",
			Help: "Number of nodes in the loaded graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "routefinder_graph_edges",
			Help: "Number of edges in the loaded graph after parallel edges are merged",
		},
	)

	r.GraphBuildDuration = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "routefinder_graph_build_duration_seconds",
			Help: "Time spent parsing the graph description",
		},
	)
}

func (r *Registry) initRunMetrics() {
	r.InputLinesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "routefinder_input_lines_total",
			Help: "Input lines processed, by kind",
		},
		[]string{"kind"},
	)

	r.RunDurationSeconds = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "routefinder_run_duration_seconds",
			Help: "Wall time of the last completed run",
		},
	)
}
