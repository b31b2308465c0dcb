package appraise

import "github.com/jenshnielsen/stationgraph/core"

// Appraiser scores a combination of candidate source nodes, one node per
// terminal group. Positive means eligible, higher means preferred.
type Appraiser func(nodes ...core.Node) int

// Predicate is a boolean check on a single node.
type Predicate func(core.Node) bool

// AlwaysEligible accepts any combination with the minimal positive score.
func AlwaysEligible(...core.Node) int { return 1 }

// FromPredicate lifts p into an Appraiser: score 1 when every candidate
// satisfies p, 0 otherwise.
func FromPredicate(p Predicate) Appraiser {
	return func(nodes ...core.Node) int {
		for _, n := range nodes {
			if !p(n) {
				return 0
			}
		}

		return 1
	}
}

// And combines predicates conjunctively.
func And(ps ...Predicate) Predicate {
	return func(n core.Node) bool {
		for _, p := range ps {
			if !p(n) {
				return false
			}
		}

		return true
	}
}

// Not negates a predicate.
func Not(p Predicate) Predicate {
	return func(n core.Node) bool { return !p(n) }
}
