package query

import (
	"strings"

	"github.com/dd0wney/cluso-routefinder/pkg/graph"
)

// Verb names a query command
type Verb string

const (
	VerbRoute       Verb = "route"
	VerbMaxStops    Verb = "maxStops"
	VerbExactStops  Verb = "exactStops"
	VerbShortest    Verb = "shortest"
	VerbMaxDistance Verb = "maxDistance"
)

// PathSeparator joins labels in a route argument, as in A-B-C
const PathSeparator = "-"

// Verbs lists every supported verb in help order
var Verbs = []Verb{VerbRoute, VerbMaxStops, VerbExactStops, VerbShortest, VerbMaxDistance}

// minTokens is the token count each verb needs, verb included
var minTokens = map[Verb]int{
	VerbRoute:       2,
	VerbMaxStops:    4,
	VerbExactStops:  4,
	VerbShortest:    3,
	VerbMaxDistance: 4,
}

// Command is one parsed query line
type Command struct {
	Verb Verb

	// Path holds the route labels for VerbRoute
	Path []string

	// Src and Dst are the endpoint labels for every other verb
	Src string
	Dst string

	// Limit is the stop count for maxStops/exactStops and the distance
	// bound for maxDistance
	Limit int64
}

// Usage returns the argument synopsis of a verb
func (v Verb) Usage() string {
	switch v {
	case VerbRoute:
		return "route <label>-<label>[-<label>...]"
	case VerbMaxStops, VerbExactStops:
		return string(v) + " <src> <dst> <stops>"
	case VerbShortest:
		return "shortest <src> <dst>"
	case VerbMaxDistance:
		return "maxDistance <src> <dst> <distance>"
	default:
		return string(v)
	}
}

// ParseLine splits a command line on whitespace and parses it
func ParseLine(line string) (Command, error) {
	return Parse(strings.Fields(line))
}

// Parse turns command tokens into a Command. Verbs are case-sensitive.
// Any line with fewer than two tokens is ErrTooFewTokens, even when the
// verb is unknown; extra trailing tokens are ignored.
func Parse(tokens []string) (Command, error) {
	if len(tokens) == 0 {
		return Command{}, &CommandError{Kind: ErrEmptyCommand}
	}
	if len(tokens) < 2 {
		return Command{}, commandError(tokens[0], ErrTooFewTokens, "got %d tokens", len(tokens))
	}

	verb := Verb(tokens[0])
	need, known := minTokens[verb]
	if !known {
		return Command{}, &CommandError{Verb: tokens[0], Kind: ErrUnknownCommand}
	}
	if len(tokens) < need {
		return Command{}, commandError(tokens[0], ErrTooFewTokens, "usage: %s", verb.Usage())
	}

	cmd := Command{Verb: verb}
	switch verb {
	case VerbRoute:
		cmd.Path = splitPath(tokens[1])
	case VerbShortest:
		cmd.Src, cmd.Dst = tokens[1], tokens[2]
	default:
		limit, err := graph.ParseInteger(tokens[3])
		if err != nil {
			return Command{}, commandError(tokens[0], ErrInvalidInteger, "%q", tokens[3])
		}
		cmd.Src, cmd.Dst, cmd.Limit = tokens[1], tokens[2], limit
	}

	return cmd, nil
}

// splitPath splits a route on PathSeparator, dropping trailing empty labels
// so "A-B-" names the same route as "A-B". Interior empty labels are kept and
// never resolve.
func splitPath(route string) []string {
	labels := strings.Split(route, PathSeparator)
	for len(labels) > 0 && labels[len(labels)-1] == "" {
		labels = labels[:len(labels)-1]
	}
	return labels
}
