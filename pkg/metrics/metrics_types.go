package metrics

import "github.com/prometheus/client_golang/prometheus"

// Query status label values
const (
	StatusOK      = "ok"
	StatusNoRoute = "no_route"
	StatusError   = "error"
)

// VerbUnknown labels commands whose verb could not be recognised
const VerbUnknown = "unknown"

// Input line kinds
const (
	LineGraph   = "graph"
	LineCommand = "command"
	LineInvalid = "invalid"
)

// Registry holds all metrics for one routefinder process
type Registry struct {
	// Query Metrics
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec

	// Graph Metrics
	GraphNodes         prometheus.Gauge
	GraphEdges         prometheus.Gauge
	GraphBuildDuration prometheus.Gauge

	// Run Metrics
	InputLinesTotal    *prometheus.CounterVec
	RunDurationSeconds prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initQueryMetrics()
	r.initGraphMetrics()
	r.initRunMetrics()

	return r
}
