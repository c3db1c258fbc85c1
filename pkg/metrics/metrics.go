package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RecordQuery records a query evaluation
func (r *Registry) RecordQuery(verb, status string, duration time.Duration) {
	r.QueriesTotal.WithLabelValues(verb, status).Inc()
	r.QueryDuration.WithLabelValues(verb).Observe(duration.Seconds())
}

// RecordGraph records the size of a freshly built graph
func (r *Registry) RecordGraph(nodes, edges int, buildTime time.Duration) {
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
	r.GraphBuildDuration.Set(buildTime.Seconds())
}

// RecordLine counts one input line of the given kind
func (r *Registry) RecordLine(kind string) {
	r.InputLinesTotal.WithLabelValues(kind).Inc()
}

// RecordRun records the wall time of a completed run
func (r *Registry) RecordRun(duration time.Duration) {
	r.RunDurationSeconds.Set(duration.Seconds())
}

// WriteTextfile writes all metrics in the text exposition format, suitable
// for the node exporter textfile collector. The file is replaced atomically.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
