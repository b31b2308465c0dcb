package core

import "sort"

// NodePredicate decides node membership in a Subgraph.
type NodePredicate func(NodeId) bool

// EdgePredicate decides edge membership in a Subgraph.
type EdgePredicate func(EdgeId) bool

// Subgraph is a live, read-only filtered view over a parent GraphView.
// It copies no attached values; membership is re-evaluated on every call,
// so claim-table changes in the router are visible immediately.
//
// An edge is part of the view iff both endpoints pass the node predicate and
// the edge passes the edge predicate.
type Subgraph struct {
	parent GraphView
	nodeOK NodePredicate
	edgeOK EdgePredicate
}

// SubgraphOf builds a filtered view of g. A nil predicate includes everything.
func SubgraphOf(g GraphView, nodeOK NodePredicate, edgeOK EdgePredicate) *Subgraph {
	if nodeOK == nil {
		nodeOK = func(NodeId) bool { return true }
	}
	if edgeOK == nil {
		edgeOK = func(EdgeId) bool { return true }
	}

	return &Subgraph{parent: g, nodeOK: nodeOK, edgeOK: edgeOK}
}

// HasNode reports whether id is present and passes the node predicate.
func (s *Subgraph) HasNode(id NodeId) bool {
	return s.parent.HasNode(id) && s.nodeOK(id)
}

// hasEdge reports view membership of an edge both of whose endpoints are
// already known to exist in the parent.
func (s *Subgraph) hasEdge(id EdgeId) bool {
	return s.nodeOK(id.From) && s.nodeOK(id.To) && s.edgeOK(id)
}

// Node returns the attached value when id is part of the view, else nil.
func (s *Subgraph) Node(id NodeId) Node {
	if !s.HasNode(id) {
		return nil
	}

	return s.parent.Node(id)
}

// Edge returns the attached value when id is part of the view, else nil.
func (s *Subgraph) Edge(id EdgeId) Edge {
	if !s.hasEdge(id) {
		return nil
	}

	return s.parent.Edge(id)
}

// NodeIDs lists the included node identifiers, preserving the parent's
// sorted order.
func (s *Subgraph) NodeIDs() []NodeId {
	var out []NodeId
	for _, id := range s.parent.NodeIDs() {
		if s.nodeOK(id) {
			out = append(out, id)
		}
	}

	return out
}

// EdgeIDs lists the included edge identifiers, preserving the parent's
// sorted order.
func (s *Subgraph) EdgeIDs() []EdgeId {
	var out []EdgeId
	for _, id := range s.parent.EdgeIDs() {
		if s.hasEdge(id) {
			out = append(out, id)
		}
	}

	return out
}

// SuccessorsOf lists included successors of id, preserving sorted order.
// Nodes outside the view yield nil.
func (s *Subgraph) SuccessorsOf(id NodeId) []NodeId {
	if !s.HasNode(id) {
		return nil
	}
	var out []NodeId
	for _, to := range s.parent.SuccessorsOf(id) {
		if s.hasEdge(EdgeId{From: id, To: to}) {
			out = append(out, to)
		}
	}

	return out
}

// PredecessorsOf lists included predecessors of id, preserving sorted order.
// Nodes outside the view yield nil.
func (s *Subgraph) PredecessorsOf(id NodeId) []NodeId {
	if !s.HasNode(id) {
		return nil
	}
	var out []NodeId
	for _, from := range s.parent.PredecessorsOf(id) {
		if s.hasEdge(EdgeId{From: from, To: id}) {
			out = append(out, from)
		}
	}

	return out
}

// NeighborsOf lists the sorted union of included successors and predecessors.
func (s *Subgraph) NeighborsOf(id NodeId) []NodeId {
	succ := s.SuccessorsOf(id)
	pred := s.PredecessorsOf(id)
	if len(pred) == 0 {
		return succ
	}
	seen := make(map[NodeId]struct{}, len(succ)+len(pred))
	merged := make([]NodeId, 0, len(succ)+len(pred))
	for _, lst := range [][]NodeId{succ, pred} {
		for _, id := range lst {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			merged = append(merged, id)
		}
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i] < merged[j] })

	return merged
}
