package render

import (
	"errors"

	"github.com/dd0wney/cluso-routefinder/pkg/graph"
	"github.com/dd0wney/cluso-routefinder/pkg/input"
	"github.com/dd0wney/cluso-routefinder/pkg/query"
)

// Per-line messages, printed after the output number
const (
	MsgInvalidInput   = "Invalid input. Please double check the input."
	MsgInvalidInteger = "Invalid input. Please double check the integer."
	MsgInvalidCommand = "Invalid input. Please double check the input command."
)

// Fatal messages, printed unnumbered before the program exits
const (
	MsgFileRequired  = "Valid text file required as the first argument."
	MsgFileNotFound  = "File not found / invalid file name."
	MsgInvalidGraph  = "Invalid graph input."
	MsgInvalidWeight = "One or more edge weights are not valid integers."
	MsgIOException   = "IO exception. Please restart the program."
)

// LineMessage maps a per-line command error to its user-facing message
func LineMessage(err error) string {
	switch {
	case errors.Is(err, query.ErrInvalidInteger), errors.Is(err, query.ErrLimitExceeded):
		return MsgInvalidInteger
	case errors.Is(err, query.ErrUnknownCommand):
		return MsgInvalidCommand
	default:
		return MsgInvalidInput
	}
}

// FatalMessages maps a setup error to the lines printed before exit
func FatalMessages(err error) []string {
	switch {
	case errors.Is(err, input.ErrFileUnreadable):
		return []string{MsgFileNotFound}
	case errors.Is(err, input.ErrReadFailed):
		return []string{MsgIOException}
	case graph.IsInvalidWeight(err):
		return []string{MsgInvalidWeight, MsgInvalidGraph}
	default:
		return []string{MsgInvalidGraph}
	}
}
