package core

// Compose unions the nodes and edges of the given graphs into a fresh
// StationGraph; when the same identifier appears in several graphs, the value
// from the later graph wins.
//
// After the union, every edge found in the active electrical connection
// status re-establishes the destination node's upstream link to the origin,
// so activation state declared piecewise (per instrument, per connector)
// survives composition.
func Compose(graphs ...GraphView) *StationGraph {
	composed := New()
	for _, g := range graphs {
		if g == nil {
			continue
		}
		for _, id := range g.NodeIDs() {
			composed.intern(id)
			if v := g.Node(id); v != nil {
				composed.values[composed.index[id]] = v
			}
		}
		for _, id := range g.EdgeIDs() {
			_ = composed.SetEdge(id, g.Edge(id))
		}
	}

	for _, id := range composed.EdgeIDs() {
		e := composed.Edge(id)
		if e == nil || !e.Status().Active() {
			continue
		}
		src, dst := composed.Node(id.From), composed.Node(id.To)
		if src == nil || dst == nil {
			continue
		}
		dst.AddSource(src)
	}

	return composed
}

// Prune copies g without its placeholder nodes (nodes carrying no attached
// value); edges incident to a dropped node are dropped with it.
func Prune(g GraphView) *StationGraph {
	pruned := New()
	for _, id := range g.NodeIDs() {
		if v := g.Node(id); v != nil {
			_ = pruned.SetNode(id, v)
		}
	}
	for _, id := range g.EdgeIDs() {
		if pruned.HasNode(id.From) && pruned.HasNode(id.To) {
			_ = pruned.SetEdge(id, g.Edge(id))
		}
	}

	return pruned
}
