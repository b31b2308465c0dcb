// StationGraph container. Node identifiers are interned into a small integer
// arena at the boundary; adjacency and edge values are index-keyed, so the
// hot search paths never re-hash identifier strings.
package core

import "sort"

// edgeKey is the arena-indexed form of an EdgeId.
type edgeKey struct {
	from int
	to   int
}

// StationGraph is a directed graph of Node values keyed by NodeId and Edge
// values keyed by ordered (From, To) pairs.
//
// Setting an edge implicitly creates its endpoints; such placeholder nodes
// carry no value until SetNode attaches one, and Prune removes them.
type StationGraph struct {
	index  map[NodeId]int
	ids    []NodeId
	values []Node
	succ   []map[int]struct{}
	pred   []map[int]struct{}
	edges  map[edgeKey]Edge
}

// New creates an empty StationGraph.
func New() *StationGraph {
	return &StationGraph{
		index: make(map[NodeId]int),
		edges: make(map[edgeKey]Edge),
	}
}

// intern returns the arena index of id, creating a placeholder entry when the
// node is new.
func (g *StationGraph) intern(id NodeId) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	i := len(g.ids)
	g.index[id] = i
	g.ids = append(g.ids, id)
	g.values = append(g.values, nil)
	g.succ = append(g.succ, make(map[int]struct{}))
	g.pred = append(g.pred, make(map[int]struct{}))

	return i
}

// SetNode attaches value to id, inserting the node if absent and replacing
// any previous value. A nil value is permitted and marks a placeholder.
func (g *StationGraph) SetNode(id NodeId, value Node) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.values[g.intern(id)] = value

	return nil
}

// SetEdge attaches value to the directed edge id, inserting both endpoints
// as placeholders when absent and replacing any previous edge value.
func (g *StationGraph) SetEdge(id EdgeId, value Edge) error {
	if id.From == "" || id.To == "" {
		return ErrEmptyNodeID
	}
	from, to := g.intern(id.From), g.intern(id.To)
	g.succ[from][to] = struct{}{}
	g.pred[to][from] = struct{}{}
	g.edges[edgeKey{from: from, to: to}] = value

	return nil
}

// HasNode reports whether id is present (with or without an attached value).
func (g *StationGraph) HasNode(id NodeId) bool {
	_, ok := g.index[id]

	return ok
}

// Node returns the value attached to id, or nil when id is absent or is a
// placeholder.
func (g *StationGraph) Node(id NodeId) Node {
	i, ok := g.index[id]
	if !ok {
		return nil
	}

	return g.values[i]
}

// HasEdge reports whether the directed edge id is present.
func (g *StationGraph) HasEdge(id EdgeId) bool {
	from, ok := g.index[id.From]
	if !ok {
		return false
	}
	to, ok := g.index[id.To]
	if !ok {
		return false
	}
	_, ok = g.edges[edgeKey{from: from, to: to}]

	return ok
}

// Edge returns the value attached to the directed edge id, or nil.
func (g *StationGraph) Edge(id EdgeId) Edge {
	from, ok := g.index[id.From]
	if !ok {
		return nil
	}
	to, ok := g.index[id.To]
	if !ok {
		return nil
	}

	return g.edges[edgeKey{from: from, to: to}]
}

// NodeIDs lists all node identifiers, sorted ascending.
func (g *StationGraph) NodeIDs() []NodeId {
	out := make([]NodeId, len(g.ids))
	copy(out, g.ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// EdgeIDs lists all edge identifiers, sorted by (From, To) ascending.
func (g *StationGraph) EdgeIDs() []EdgeId {
	out := make([]EdgeId, 0, len(g.edges))
	for k := range g.edges {
		out = append(out, EdgeId{From: g.ids[k.from], To: g.ids[k.to]})
	}
	sortEdgeIDs(out)

	return out
}

// SuccessorsOf lists the nodes reachable from id over one outgoing edge,
// sorted ascending. Unknown ids yield nil.
func (g *StationGraph) SuccessorsOf(id NodeId) []NodeId {
	i, ok := g.index[id]
	if !ok {
		return nil
	}

	return g.sortedIDs(g.succ[i])
}

// PredecessorsOf lists the nodes with an edge into id, sorted ascending.
// Unknown ids yield nil.
func (g *StationGraph) PredecessorsOf(id NodeId) []NodeId {
	i, ok := g.index[id]
	if !ok {
		return nil
	}

	return g.sortedIDs(g.pred[i])
}

// NeighborsOf lists the sorted union of successors and predecessors of id.
func (g *StationGraph) NeighborsOf(id NodeId) []NodeId {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	union := make(map[int]struct{}, len(g.succ[i])+len(g.pred[i]))
	for j := range g.succ[i] {
		union[j] = struct{}{}
	}
	for j := range g.pred[i] {
		union[j] = struct{}{}
	}

	return g.sortedIDs(union)
}

// sortedIDs converts a set of arena indices to sorted NodeIds.
func (g *StationGraph) sortedIDs(set map[int]struct{}) []NodeId {
	out := make([]NodeId, 0, len(set))
	for i := range set {
		out = append(out, g.ids[i])
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// sortEdgeIDs orders edge identifiers by From, then To.
func sortEdgeIDs(ids []EdgeId) {
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].From != ids[j].From {
			return ids[i].From < ids[j].From
		}

		return ids[i].To < ids[j].To
	})
}
