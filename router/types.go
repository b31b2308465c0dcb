// Package router option and error definitions.
package router

import (
	"errors"
	"fmt"

	"github.com/jenshnielsen/stationgraph/core"
)

// Sentinel errors for routing execution.
var (
	// ErrRouting is the base kind of every routing-search failure; all
	// routing sentinels below wrap it, so errors.Is(err, ErrRouting)
	// distinguishes "no route exists" from programming errors.
	ErrRouting = errors.New("router: routing failed")

	// ErrNoEligibleSources is returned when no source combination scores
	// positively under the supplied appraiser.
	ErrNoEligibleSources = fmt.Errorf("%w: no eligible sources", ErrRouting)

	// ErrNoRouteFound is returned when every candidate path combination
	// collides on at least one node.
	ErrNoRouteFound = fmt.Errorf("%w: no disjoint route", ErrRouting)

	// ErrSourceCountMismatch is returned when the number of sources in a
	// group differs from the number of terminal groups.
	ErrSourceCountMismatch = fmt.Errorf("%w: source count does not match terminal group count", ErrRouting)

	// ErrClaimUnderflow is returned when releasing a claim that was never
	// taken: a caller bug or a double Vacate. Deliberately not an ErrRouting.
	ErrClaimUnderflow = errors.New("router: claim underflow")

	// ErrOptionViolation is returned by NewRouter for an invalid Option.
	ErrOptionViolation = errors.New("router: invalid option supplied")
)

// Group is one terminal group (or one source group): a set of node ids that
// must share a single routed source.
type Group []core.NodeId

// Option configures a Router via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation by NewRouter.
type Option func(*routerOptions)

// routerOptions holds Router configuration.
type routerOptions struct {
	// warn receives non-fatal routing diagnostics, e.g. ambiguous joint
	// routes. Defaults to a no-op.
	warn func(msg string)

	// maxPaths bounds how many simple paths are enumerated per
	// (source, terminal) pair; 0 means unbounded.
	maxPaths int

	// internal error recorded during option parsing.
	err error
}

func defaultOptions() routerOptions {
	return routerOptions{
		warn:     func(string) {},
		maxPaths: 0,
	}
}

// WithWarnFunc registers a sink for non-fatal routing diagnostics.
func WithWarnFunc(fn func(msg string)) Option {
	return func(o *routerOptions) {
		if fn != nil {
			o.warn = fn
		}
	}
}

// WithMaxPaths bounds the simple-path enumeration per (source, terminal)
// pair, protecting against pathologically dense graphs.
//
//	n > 0: enumerate at most n paths per pair
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPaths(n int) Option {
	return func(o *routerOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.maxPaths = n
	}
}
