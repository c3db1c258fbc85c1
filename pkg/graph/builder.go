package graph

import (
	"fmt"
	"strings"
)

// EntrySeparator separates edge entries in a graph description
const EntrySeparator = ","

// minEntryLength is two labels plus at least one weight digit
const minEntryLength = 3

// Edge is a single parsed entry of a graph description
type Edge struct {
	Src    string
	Dst    string
	Weight int64
}

// ParseEdge parses one `<src><dst><weight>` entry. Surrounding whitespace is
// ignored; labels are exactly one character each.
func ParseEdge(raw string) (Edge, error) {
	runes := []rune(strings.TrimSpace(raw))
	if len(runes) < minEntryLength {
		return Edge{}, ErrEntryTooShort
	}

	weight, err := ParseInteger(string(runes[2:]))
	if err != nil {
		return Edge{}, fmt.Errorf("%w: %q", ErrInvalidWeight, string(runes[2:]))
	}

	return Edge{
		Src:    string(runes[0]),
		Dst:    string(runes[1]),
		Weight: weight,
	}, nil
}

// splitEntries splits a description on EntrySeparator, dropping trailing
// empty entries. Empty entries elsewhere are kept so they get rejected.
func splitEntries(description string) []string {
	entries := strings.Split(description, EntrySeparator)
	for len(entries) > 0 && entries[len(entries)-1] == "" {
		entries = entries[:len(entries)-1]
	}
	return entries
}

// Build parses a comma-separated edge list such as "AB5, BC4, CD8" into a
// graph and its label registry. Parallel edges keep their minimum weight.
// Nothing is returned when the description is rejected.
func Build(description string) (*Graph, *LabelRegistry, error) {
	if description == "" {
		return nil, nil, &BuildError{Cause: ErrEmptyDescription}
	}

	entries := splitEntries(description)
	if len(entries) == 0 {
		return nil, nil, &BuildError{Cause: ErrNoEdges}
	}

	type indexedEdge struct {
		src, dst int
		weight   int64
	}

	registry := NewLabelRegistry()
	parsed := make([]indexedEdge, 0, len(entries))

	for i, raw := range entries {
		edge, err := ParseEdge(raw)
		if err != nil {
			return nil, nil, &BuildError{Entry: i + 1, Raw: raw, Cause: err}
		}
		parsed = append(parsed, indexedEdge{
			src:    registry.Intern(edge.Src),
			dst:    registry.Intern(edge.Dst),
			weight: edge.Weight,
		})
	}

	// The table can only be sized once every label has been seen
	g := newGraph(registry.Len())
	for _, e := range parsed {
		g.setMin(e.src, e.dst, e.weight)
	}

	return g, registry, nil
}
