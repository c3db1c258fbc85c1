package query

import (
	"errors"
	"time"

	"github.com/dd0wney/cluso-routefinder/pkg/algorithms"
	"github.com/dd0wney/cluso-routefinder/pkg/graph"
	"github.com/dd0wney/cluso-routefinder/pkg/logging"
	"github.com/dd0wney/cluso-routefinder/pkg/metrics"
)

// Limits bounds command arguments. Zero disables a limit.
type Limits struct {
	MaxHopLimit   int64 // largest stop count for maxStops/exactStops
	MaxPathLength int   // most labels in a route command
}

// Executor evaluates commands against a frozen graph
type Executor struct {
	graph   *graph.Graph
	labels  *graph.LabelRegistry
	limits  Limits
	logger  logging.Logger
	metrics *metrics.Registry
}

// Option configures an Executor
type Option func(*Executor)

// WithLimits sets argument limits
func WithLimits(l Limits) Option {
	return func(e *Executor) { e.limits = l }
}

// WithLogger sets the logger; the default logger is used otherwise
func WithLogger(l logging.Logger) Option {
	return func(e *Executor) { e.logger = l }
}

// WithMetrics sets the metrics registry; metrics are not recorded otherwise
func WithMetrics(r *metrics.Registry) Option {
	return func(e *Executor) { e.metrics = r }
}

// NewExecutor creates a new query executor
func NewExecutor(g *graph.Graph, labels *graph.LabelRegistry, opts ...Option) *Executor {
	e := &Executor{
		graph:  g,
		labels: labels,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.DefaultLogger()
	}
	e.logger = e.logger.With(logging.Component("query"))
	return e
}

// ExecuteLine parses and evaluates one command line
func (e *Executor) ExecuteLine(line string) (Result, error) {
	cmd, err := ParseLine(line)
	if err != nil {
		e.record(verbOf(err), metrics.StatusError, 0)
		return Result{}, err
	}
	return e.Execute(cmd)
}

// Execute evaluates a parsed command. Unknown labels and empty answers are
// returned as a Result with Found false; errors are per-line input errors.
func (e *Executor) Execute(cmd Command) (Result, error) {
	start := time.Now()
	result, err := e.evaluate(cmd)
	elapsed := time.Since(start)

	switch {
	case err != nil:
		e.record(string(cmd.Verb), metrics.StatusError, elapsed)
	case result.Found:
		e.record(string(cmd.Verb), metrics.StatusOK, elapsed)
	default:
		e.record(string(cmd.Verb), metrics.StatusNoRoute, elapsed)
	}

	e.logger.Debug("query evaluated",
		logging.Verb(string(cmd.Verb)),
		logging.String("result", result.String()),
		logging.Latency(elapsed),
	)
	return result, err
}

func (e *Executor) evaluate(cmd Command) (Result, error) {
	switch cmd.Verb {
	case VerbRoute:
		return e.route(cmd)
	case VerbMaxStops, VerbExactStops:
		return e.countByHops(cmd)
	case VerbShortest:
		return e.shortest(cmd)
	case VerbMaxDistance:
		return e.countByWeight(cmd)
	default:
		return Result{}, &CommandError{Verb: string(cmd.Verb), Kind: ErrUnknownCommand}
	}
}

func (e *Executor) route(cmd Command) (Result, error) {
	if e.limits.MaxPathLength > 0 && len(cmd.Path) > e.limits.MaxPathLength {
		return Result{}, commandError(string(cmd.Verb), ErrRouteTooLong,
			"%d labels, limit is %d", len(cmd.Path), e.limits.MaxPathLength)
	}

	path, missing, ok := e.labels.Resolve(cmd.Path...)
	if !ok {
		e.unknownLabel(cmd.Verb, missing)
		return noRoute(cmd.Verb), nil
	}

	distance, err := algorithms.RouteDistance(e.graph, path)
	return e.outcome(cmd.Verb, distance, err)
}

func (e *Executor) countByHops(cmd Command) (Result, error) {
	if e.limits.MaxHopLimit > 0 && cmd.Limit > e.limits.MaxHopLimit {
		return Result{}, commandError(string(cmd.Verb), ErrLimitExceeded,
			"%d stops, limit is %d", cmd.Limit, e.limits.MaxHopLimit)
	}

	src, dst, ok := e.endpoints(cmd)
	if !ok {
		return noRoute(cmd.Verb), nil
	}

	count, err := algorithms.CountByHops(e.graph, src, dst, int(cmd.Limit), cmd.Verb == VerbExactStops)
	return e.outcome(cmd.Verb, count, err)
}

func (e *Executor) shortest(cmd Command) (Result, error) {
	src, dst, ok := e.endpoints(cmd)
	if !ok {
		return noRoute(cmd.Verb), nil
	}

	distance, err := algorithms.ShortestPath(e.graph, src, dst)
	return e.outcome(cmd.Verb, distance, err)
}

func (e *Executor) countByWeight(cmd Command) (Result, error) {
	src, dst, ok := e.endpoints(cmd)
	if !ok {
		return noRoute(cmd.Verb), nil
	}

	count, err := algorithms.CountByWeight(e.graph, src, dst, cmd.Limit)
	return e.outcome(cmd.Verb, count, err)
}

// endpoints resolves Src and Dst, logging the first unknown label
func (e *Executor) endpoints(cmd Command) (int, int, bool) {
	indices, missing, ok := e.labels.Resolve(cmd.Src, cmd.Dst)
	if !ok {
		e.unknownLabel(cmd.Verb, missing)
		return 0, 0, false
	}
	return indices[0], indices[1], true
}

func (e *Executor) unknownLabel(verb Verb, label string) {
	e.logger.Debug("unknown node label", logging.Verb(string(verb)), logging.Label(label))
}

// outcome converts an algorithm return into a Result
func (e *Executor) outcome(verb Verb, value int64, err error) (Result, error) {
	switch {
	case err == nil:
		return found(verb, value), nil
	case errors.Is(err, algorithms.ErrNoRoute):
		return noRoute(verb), nil
	case errors.Is(err, algorithms.ErrCountOverflow):
		return Result{}, commandError(string(verb), ErrLimitExceeded, "%v", err)
	default:
		return Result{}, err
	}
}

func (e *Executor) record(verb, status string, elapsed time.Duration) {
	if e.metrics == nil {
		return
	}
	e.metrics.RecordQuery(verb, status, elapsed)
}

// verbOf extracts the verb of a parse error for metric labelling
func verbOf(err error) string {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		if _, known := minTokens[Verb(cmdErr.Verb)]; known {
			return cmdErr.Verb
		}
	}
	return metrics.VerbUnknown
}
