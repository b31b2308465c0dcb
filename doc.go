// Package stationgraph models the interconnect topology of a laboratory
// measurement setup as a directed graph and allocates node-disjoint signal
// routes on it.
//
// Instruments, cables, connectors and device contacts become nodes; the
// electrical, structural and parasitic links between them become edges. On
// top of that topology the router connects "source" nodes (grounds, voltage
// outputs, floats) to "terminal" nodes, reference-counting every node and
// edge a route touches so shared segments stay up until the last user
// vacates them.
//
// The module is organized into five subpackages:
//
//	core/     — StationGraph container, Node/Edge activation contracts,
//	            subgraph views, composition and pruning
//	search/   — breadth-first traversal and lazy shortest-simple-path
//	            enumeration over any graph view
//	appraise/ — predicates and scoring functions for ranking candidate
//	            source nodes
//	router/   — claim-tracking adapter, disjoint-path search and the
//	            Router facade (Connect, Route, Vacate)
//	station/  — declarative topology construction
//
// Minimal example:
//
//	g, err := station.Build(
//		station.Ground("gnd", "V"),
//		station.Connector("bus"),
//		station.Module("dac.ch01"),
//		station.Wire("gnd", "bus"),
//		station.Wire("bus", "dac.ch01"),
//	)
//	if err != nil { ... }
//	r, err := router.NewRouter(g)
//	if err != nil { ... }
//	if err := r.RouteToGround(router.Group{"dac.ch01"}, "V"); err != nil { ... }
//	defer r.Vacate("dac.ch01")
//
// All iteration in the module is deterministically ordered, so identical
// requests on identical topologies always commit identical routes.
package stationgraph
