// Package search options and error definitions.
package search

import "errors"

// Sentinel errors for traversal execution.
var (
	// ErrNilGraph is returned if a nil graph view is passed.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrStartNotFound is returned when the start node is absent from the view.
	ErrStartNotFound = errors.New("search: start node not found")
)

// Option configures a breadth-first traversal via functional arguments.
type Option func(*traversalOptions)

// traversalOptions holds parameters customizing a traversal.
type traversalOptions struct {
	// reverse walks predecessor edges instead of successor edges.
	reverse bool
}

// WithReverse makes the traversal follow edges against their direction,
// i.e. explore the nodes that can reach the start rather than the nodes the
// start can reach.
func WithReverse() Option {
	return func(o *traversalOptions) { o.reverse = true }
}
