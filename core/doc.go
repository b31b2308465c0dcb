// Package core defines the station graph: a directed graph of measurement
// hardware endpoints (nodes) and the electrical or structural links between
// them (edges), with one attached domain value per node and per edge.
//
// What
//
//   - NodeId / EdgeId identifiers; EdgeId is an ordered pair, so the reverse
//     direction is a distinct edge that must be inserted separately.
//   - Node: the activation contract of an endpoint — activation status,
//     upstream-source set, and an enumerable set of controllable quantities.
//   - Edge: the activation contract of a link — a status out of
//     {active electrical, inactive electrical, part-of, capacitive coupling};
//     only electrical edges may transition between active and inactive.
//   - StationGraph: the container. Lookup, deterministic iteration,
//     successor/predecessor adjacency, Compose, Prune and SubgraphOf.
//   - GraphView: the read-only view contract shared by StationGraph and
//     Subgraph, consumed by the search and router packages.
//   - Concrete node implementations: ConnectorNode, InstrumentModuleNode,
//     EndpointNode, mirroring the roles found in a real measurement setup
//     (junctions, instrument channels, device terminals).
//
// Why
//
//   - The routing layer needs a stable, deterministic topology model whose
//     activation state can be flipped per node/edge without hardware I/O;
//     translating activation into real hardware state is the caller's job.
//
// Determinism
//
//	NodeIDs, EdgeIDs, SuccessorsOf, PredecessorsOf and NeighborsOf return
//	sorted results, so every traversal built on top of them is reproducible.
//
// Concurrency
//
//	StationGraph is not internally synchronized. Topology is declared once at
//	station setup; afterwards only activation flags and the router's claim
//	tables change, under the router's single-writer discipline. Callers that
//	mutate from multiple goroutines must serialize externally.
//
// Errors
//
//   - ErrEmptyNodeID        empty identifier passed to a mutator.
//   - ErrNodeNotFound       operation referenced a non-existent node.
//   - ErrEdgeNotFound       operation referenced a non-existent edge.
//   - ErrInvalidTransition  activate/deactivate on a non-electrical edge.
//   - ErrNotASource         removing an upstream source that was never added.
package core
