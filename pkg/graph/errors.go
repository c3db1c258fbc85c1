package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by Build and ParseInteger
var (
	ErrEmptyDescription = errors.New("graph description is empty")
	ErrNoEdges          = errors.New("graph description has no edges")
	ErrEntryTooShort    = errors.New("edge entry is shorter than 3 characters")
	ErrInvalidWeight    = errors.New("edge weight is not a valid integer")
	ErrInvalidInteger   = errors.New("not a valid non-negative integer")
)

// BuildError describes why a graph description was rejected.
type BuildError struct {
	Entry int    // 1-based position of the offending entry, 0 if not entry-specific
	Raw   string // offending entry text
	Cause error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Entry > 0 {
		return fmt.Sprintf("build graph: entry %d %q: %v", e.Entry, e.Raw, e.Cause)
	}
	return fmt.Sprintf("build graph: %v", e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *BuildError) Unwrap() error {
	return e.Cause
}

// IsInvalidWeight reports whether err was caused by a malformed edge weight
func IsInvalidWeight(err error) bool {
	return errors.Is(err, ErrInvalidWeight)
}
