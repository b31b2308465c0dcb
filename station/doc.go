// Package station declares measurement-setup topologies as composable
// constructors and assembles them into a core.StationGraph.
//
// What
//
//   - Build(cons...) creates an empty graph and applies the constructors in
//     order, stopping at the first error.
//   - Node constructors: Module, Connector, Endpoint, and the stock constant
//     sources Ground, Float and HighZ.
//   - Edge constructors: Wire (bidirectional inactive electrical), Link and
//     ActiveLink (directed electrical), Capacitive (bidirectional parasitic
//     coupling). Endpoint additionally records a structural part-of edge
//     towards its parent.
//
// Why
//
//	A station is wired up once, at session start, from a flat declaration of
//	instruments and cables. Constructors keep that declaration readable and
//	validate it eagerly: referencing an undeclared node or redeclaring a name
//	fails at Build time, not at first routing.
//
// Determinism
//
//	Constructors are applied strictly in argument order, so the same
//	declaration always produces the same graph.
//
// Errors
//
//   - ErrDuplicateNode  a node name was declared twice.
//   - ErrUnknownNode    an edge constructor referenced an undeclared node.
package station
