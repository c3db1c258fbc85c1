package query

import (
	"errors"
	"fmt"
)

// Kinds of per-line command errors. Each is reported for its line only.
var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrTooFewTokens   = errors.New("too few arguments")
	ErrInvalidInteger = errors.New("invalid integer argument")
	ErrUnknownCommand = errors.New("unknown command")
	ErrLimitExceeded  = errors.New("argument exceeds configured limit")
	ErrRouteTooLong   = errors.New("route has more labels than allowed")
)

// CommandError reports why a command line could not be evaluated.
type CommandError struct {
	Verb   string // command verb as typed, empty for a blank line
	Kind   error  // one of the Err* kinds above
	Detail string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	switch {
	case e.Verb == "" && e.Detail == "":
		return e.Kind.Error()
	case e.Detail == "":
		return fmt.Sprintf("%s: %v", e.Verb, e.Kind)
	case e.Verb == "":
		return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
	default:
		return fmt.Sprintf("%s: %v: %s", e.Verb, e.Kind, e.Detail)
	}
}

// Unwrap returns the error kind for errors.Is matching.
func (e *CommandError) Unwrap() error {
	return e.Kind
}

func commandError(verb string, kind error, format string, args ...any) *CommandError {
	return &CommandError{Verb: verb, Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
