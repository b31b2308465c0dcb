// Package search provides traversal primitives over a core.GraphView:
// breadth-first enumeration of nodes and edges, hop distances, and lazy
// enumeration of simple paths in ascending length order.
//
// What
//
//   - BreadthFirstNodes / BreadthFirstEdges: finite breadth-first traversal
//     from a start node, forward over successors or (WithReverse) backward
//     over predecessors. The start node is always yielded first.
//   - ShortestPaths: a PathIterator producing the simple paths between two
//     nodes in non-decreasing hop count (Yen's algorithm on an unweighted
//     graph); consumption is lazy, so callers pay only for the paths they
//     pull. The number of simple paths can be exponential in dense graphs;
//     bound consumption accordingly.
//   - Distance: hop count of one shortest path.
//
// Why
//
//   - The router ranks candidate sources by breadth-first distance from the
//     terminals and needs successive disjoint path alternatives when the
//     shortest ones collide; both reduce to these two primitives.
//
// Determinism
//
//	core.GraphView adjacency is sorted, traversal follows it in order, and
//	equal-length paths are tie-broken lexicographically, so every sequence
//	produced here is reproducible.
//
// Errors
//
//   - ErrNilGraph       a nil view was supplied.
//   - ErrStartNotFound  the start node is not part of the view.
package search
