// Package appraise defines the scoring contract the router uses to rank
// candidate source combinations, plus the stock node predicates a
// measurement station needs: is this node a drivable source, a meter, a
// ground, does it speak the right unit.
//
// An Appraiser receives one candidate node per terminal group and returns an
// integer score: positive means the combination is eligible, higher is
// preferred, and zero or below rejects it. Predicates are single-node
// boolean checks; FromPredicate lifts one into an Appraiser that demands
// every candidate satisfy it.
//
// The constant-source and constant-meter predicates follow the fixed
// quantity naming convention used by station hardware: quantities named
// "ground", "ground_force", "highz" or "float" mark permanently wired
// sources, "ground_sense" marks a permanently wired meter.
package appraise
