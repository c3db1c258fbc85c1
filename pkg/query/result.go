package query

import "strconv"

// NoRouteText is how a result without a route is rendered
const NoRouteText = "NO SUCH ROUTE"

// Result is the outcome of one successfully evaluated command. A command
// that finds no route is still a result, with Found false.
type Result struct {
	Verb  Verb
	Value int64
	Found bool
}

func found(verb Verb, value int64) Result {
	return Result{Verb: verb, Value: value, Found: true}
}

func noRoute(verb Verb) Result {
	return Result{Verb: verb}
}

// String renders the value, or NoRouteText
func (r Result) String() string {
	if !r.Found {
		return NoRouteText
	}
	return strconv.FormatInt(r.Value, 10)
}
