package algorithms

import "errors"

var (
	// ErrNoRoute means no route satisfies the query. It is a normal outcome:
	// an unreachable destination, an unknown node, or a count of zero.
	ErrNoRoute = errors.New("no such route")

	// ErrCountOverflow means the number of routes does not fit in an int64
	ErrCountOverflow = errors.New("route count overflows int64")
)

// nonZero maps a zero count to ErrNoRoute
func nonZero(count int64) (int64, error) {
	if count == 0 {
		return 0, ErrNoRoute
	}
	return count, nil
}
