package session

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dd0wney/cluso-routefinder/pkg/graph"
	"github.com/dd0wney/cluso-routefinder/pkg/logging"
	"github.com/dd0wney/cluso-routefinder/pkg/metrics"
	"github.com/dd0wney/cluso-routefinder/pkg/query"
	"github.com/dd0wney/cluso-routefinder/pkg/render"
	"github.com/google/uuid"
)

// ErrNotLoaded is returned by Handle before a graph has been loaded
var ErrNotLoaded = errors.New("session has no graph loaded")

// Session evaluates command lines against one graph and numbers the outputs
type Session struct {
	runID    string
	graph    *graph.Graph
	labels   *graph.LabelRegistry
	executor *query.Executor
	renderer *render.Renderer
	logger   logging.Logger
	metrics  *metrics.Registry
	limits   query.Limits

	line     int // input lines consumed, graph line included
	outputNo int
	failed   int
}

// Option configures a Session
type Option func(*Session)

// WithRunID tags every log entry of the session; a random id is used otherwise
func WithRunID(id string) Option {
	return func(s *Session) { s.runID = id }
}

// WithLogger sets the logger
func WithLogger(l logging.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithMetrics sets the metrics registry; nothing is recorded otherwise
func WithMetrics(r *metrics.Registry) Option {
	return func(s *Session) { s.metrics = r }
}

// WithRenderer sets where and how output lines are written; plain text on
// stdout otherwise
func WithRenderer(r *render.Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

// WithLimits bounds command arguments
func WithLimits(l query.Limits) Option {
	return func(s *Session) { s.limits = l }
}

// New creates an empty session. Call Load before handling commands.
func New(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.runID == "" {
		s.runID = uuid.NewString()
	}
	if s.logger == nil {
		s.logger = logging.DefaultLogger()
	}
	if s.renderer == nil {
		s.renderer = render.New(os.Stdout, false)
	}
	s.logger = s.logger.With(logging.Component("session"), logging.RunID(s.runID))
	return s
}

// RunID returns the id attached to this session's log entries
func (s *Session) RunID() string {
	return s.runID
}

// Load builds the graph from a description line and resets output numbering
func (s *Session) Load(description string) error {
	s.line = 1
	s.outputNo = 0
	s.failed = 0

	start := time.Now()
	g, labels, err := graph.Build(description)
	elapsed := time.Since(start)
	if err != nil {
		s.recordLine(metrics.LineInvalid)
		s.logger.Error("graph rejected", logging.Line(s.line), logging.Error(err))
		return err
	}

	s.graph = g
	s.labels = labels
	s.executor = query.NewExecutor(g, labels,
		query.WithLimits(s.limits),
		query.WithLogger(s.logger),
		query.WithMetrics(s.metrics),
	)

	s.recordLine(metrics.LineGraph)
	if s.metrics != nil {
		s.metrics.RecordGraph(g.NodeCount(), g.EdgeCount(), elapsed)
	}
	s.logger.Info("graph loaded",
		logging.NodeCount(g.NodeCount()),
		logging.EdgeCount(g.EdgeCount()),
		logging.Latency(elapsed),
	)
	return nil
}

// Loaded reports whether a graph is available
func (s *Session) Loaded() bool {
	return s.executor != nil
}

// Handle evaluates one command line and writes its numbered output line.
// Every call consumes an output number, whether or not the line is valid;
// only a missing graph or a failed write is returned.
func (s *Session) Handle(line string) error {
	if !s.Loaded() {
		return ErrNotLoaded
	}

	s.line++
	s.outputNo++

	res, err := s.executor.ExecuteLine(line)
	if err != nil {
		s.failed++
		s.recordLine(metrics.LineInvalid)
		s.logger.Warn("command rejected",
			logging.Line(s.line),
			logging.Verb(verbOf(err)),
			logging.Error(err),
		)
		return s.written(s.renderer.Error(s.outputNo, err))
	}

	s.recordLine(metrics.LineCommand)
	return s.written(s.renderer.Result(s.outputNo, res))
}

// Run loads the graph from the first line and writes one output line for
// each remaining line. Setup failures are written as fatal messages and
// returned; per-line failures are written and do not stop the run.
func (s *Session) Run(lines []string) error {
	timer := logging.StartTimer(s.logger, "run finished")

	description := ""
	if len(lines) > 0 {
		description = lines[0]
	}

	if err := s.Load(description); err != nil {
		if werr := s.renderer.Fatal(err); werr != nil {
			return werr
		}
		return err
	}

	for _, line := range lines[1:] {
		if err := s.Handle(line); err != nil {
			return err
		}
	}

	elapsed := timer.End(
		logging.Int("outputs", s.outputNo),
		logging.Int("rejected", s.failed),
	)
	if s.metrics != nil {
		s.metrics.RecordRun(elapsed)
	}
	return nil
}

func (s *Session) written(err error) error {
	if err != nil {
		return fmt.Errorf("write output #%d: %w", s.outputNo, err)
	}
	return nil
}

// Stats summarises the session so far
type Stats struct {
	Nodes    int
	Edges    int
	Labels   []string
	Outputs  int
	Rejected int
}

// Stats returns the graph size and output counts
func (s *Session) Stats() Stats {
	st := Stats{Outputs: s.outputNo, Rejected: s.failed}
	if s.Loaded() {
		st.Nodes = s.graph.NodeCount()
		st.Edges = s.graph.EdgeCount()
		st.Labels = s.labels.Labels()
	}
	return st
}

func (s *Session) recordLine(kind string) {
	if s.metrics != nil {
		s.metrics.RecordLine(kind)
	}
}

func verbOf(err error) string {
	var cmdErr *query.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Verb != "" {
		return cmdErr.Verb
	}
	return metrics.VerbUnknown
}
