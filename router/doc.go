// Package router allocates disjoint signal paths between eligible source
// nodes and the terminals that requested them, tracking per-terminal claims
// on every node and edge so routes can be torn down safely later.
//
// What
//
//   - Adapter: wraps a core.StationGraph with reference-count claim tables;
//     a node or edge stays active exactly as long as at least one terminal
//     claims it.
//   - Router: the facade. Connect commits explicit source→terminal-group
//     assignments; Route ranks candidate sources with a caller-supplied
//     appraiser first; RouteToSource/Meter/Ground/Float/HighZ wrap Route
//     with the stock predicates; Vacate releases one terminal's claims in
//     reverse breadth-first order.
//   - Partition: a union-find variant that keeps the contributed keys per
//     part, used to fuse path groups that share terminals before the global
//     disjointness check.
//
// How a request is served
//
//  1. Per terminal group, a reverse breadth-first search over the free part
//     of the graph enumerates eligible sources in ascending distance.
//  2. The Cartesian product of per-group candidates is scored by the
//     appraiser; combinations are tried in descending score, ties broken by
//     total hop distance.
//  3. For the winning combination, shortest simple paths are enumerated per
//     (source, terminal) pair; groups with intersecting terminal sets are
//     merged, and the first globally node-disjoint path combination in
//     canonical product order is committed.
//  4. Commitment activates edges round-robin across paths (first hops of
//     every path, then second hops, and so on) and finally lets each
//     terminal claim itself.
//
// Concurrency
//
//	A Router is single-threaded and non-reentrant: exactly one structural
//	mutation (Connect/Route/Vacate) may be in flight. Callers needing
//	concurrent access must serialize externally. The search phase is free of
//	side effects; the commit phase is not transactional, so an error midway
//	through activation leaves a partially activated graph.
//
// Errors
//
//   - ErrRouting              base kind for all routing-search failures.
//   - ErrNoEligibleSources    no positively scored source combination.
//   - ErrNoRouteFound         no node-disjoint path combination.
//   - ErrSourceCountMismatch  sources do not map 1:1 onto terminal groups.
//   - ErrClaimUnderflow       releasing a claim that was never taken
//     (caller bug or double Vacate); not an ErrRouting.
//   - ErrOptionViolation      invalid Router option.
//
// Overlapping eligible-source sets in JointRoutePerSameEligibleSources are a
// warning, not an error; they surface through the WithWarnFunc hook.
package router
