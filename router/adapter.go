package router

import (
	"fmt"
	"sort"

	"github.com/jenshnielsen/stationgraph/core"
)

// terminalSet is the set of terminal ids currently claiming a resource.
type terminalSet map[core.NodeId]struct{}

// Adapter wraps a StationGraph with per-node and per-edge claim tables.
// A resource is active iff its claim set is non-empty; removing the last
// claim deactivates it. Claim sets are created explicitly on first write,
// never implicitly on read, which keeps the reference-count invariant
// auditable: every entry in the tables was put there by an activation.
type Adapter struct {
	graph      *core.StationGraph
	nodeClaims map[core.NodeId]terminalSet
	edgeClaims map[core.EdgeId]terminalSet
}

// NewAdapter wraps g with empty claim tables.
func NewAdapter(g *core.StationGraph) *Adapter {
	return &Adapter{
		graph:      g,
		nodeClaims: make(map[core.NodeId]terminalSet),
		edgeClaims: make(map[core.EdgeId]terminalSet),
	}
}

// Graph exposes the wrapped graph for read access.
func (a *Adapter) Graph() *core.StationGraph { return a.graph }

// ActivateNode activates the node and records terminal's claim on it.
func (a *Adapter) ActivateNode(id, terminal core.NodeId) error {
	node := a.graph.Node(id)
	if node == nil {
		return fmt.Errorf("%w: %q", core.ErrNodeNotFound, id)
	}
	node.Activate()
	claims, ok := a.nodeClaims[id]
	if !ok {
		claims = make(terminalSet)
		a.nodeClaims[id] = claims
	}
	claims[terminal] = struct{}{}

	return nil
}

// DeactivateNode removes terminal's claim on the node; when the last claim
// goes, the node is deactivated. Removing an absent claim is
// ErrClaimUnderflow.
func (a *Adapter) DeactivateNode(id, terminal core.NodeId) error {
	claims := a.nodeClaims[id]
	if _, ok := claims[terminal]; !ok {
		return fmt.Errorf("%w: node %q holds no claim for terminal %q", ErrClaimUnderflow, id, terminal)
	}
	delete(claims, terminal)
	if len(claims) == 0 {
		delete(a.nodeClaims, id)
		if node := a.graph.Node(id); node != nil {
			node.Deactivate()
		}
	}

	return nil
}

// ActivateEdge links the destination node to the origin as an upstream
// source, records terminal's claim on the edge, and activates the edge.
func (a *Adapter) ActivateEdge(id core.EdgeId, terminal core.NodeId) error {
	edge := a.graph.Edge(id)
	if edge == nil {
		return fmt.Errorf("%w: %v", core.ErrEdgeNotFound, id)
	}
	src, dst := a.graph.Node(id.From), a.graph.Node(id.To)
	if src == nil || dst == nil {
		return fmt.Errorf("%w: endpoint of %v carries no value", core.ErrNodeNotFound, id)
	}
	dst.AddSource(src)
	claims, ok := a.edgeClaims[id]
	if !ok {
		claims = make(terminalSet)
		a.edgeClaims[id] = claims
	}
	claims[terminal] = struct{}{}

	return edge.Activate()
}

// DeactivateEdge removes terminal's claim on the edge; when the last claim
// goes, the upstream link is dropped and the edge deactivated. Removing an
// absent claim is ErrClaimUnderflow.
func (a *Adapter) DeactivateEdge(id core.EdgeId, terminal core.NodeId) error {
	claims := a.edgeClaims[id]
	if _, ok := claims[terminal]; !ok {
		return fmt.Errorf("%w: edge %v holds no claim for terminal %q", ErrClaimUnderflow, id, terminal)
	}
	delete(claims, terminal)
	if len(claims) > 0 {
		return nil
	}
	delete(a.edgeClaims, id)

	src, dst := a.graph.Node(id.From), a.graph.Node(id.To)
	if src != nil && dst != nil {
		if err := dst.RemoveSource(src); err != nil {
			return err
		}
	}
	edge := a.graph.Edge(id)
	if edge == nil {
		return fmt.Errorf("%w: %v", core.ErrEdgeNotFound, id)
	}

	return edge.Deactivate()
}

// ClaimsOnNode lists the terminals currently claiming the node, sorted.
func (a *Adapter) ClaimsOnNode(id core.NodeId) []core.NodeId {
	return sortedTerminals(a.nodeClaims[id])
}

// ClaimsOnEdge lists the terminals currently claiming the edge, sorted.
func (a *Adapter) ClaimsOnEdge(id core.EdgeId) []core.NodeId {
	return sortedTerminals(a.edgeClaims[id])
}

// RoutedSubgraphOf views the edges claimed by terminal; Vacate walks it in
// reverse breadth-first order from the terminal.
func (a *Adapter) RoutedSubgraphOf(terminal core.NodeId) *core.Subgraph {
	return core.SubgraphOf(a.graph, nil, func(id core.EdgeId) bool {
		_, ok := a.edgeClaims[id][terminal]

		return ok
	})
}

// SearchGraphFor views the resources available to a routing request for the
// given terminals: every edge that is unclaimed or already claimed by one of
// those same terminals. Edges dedicated to unrelated terminals are invisible,
// so in-flight routing can reuse its own segments without stealing anyone
// else's. Nodes are never hidden: a junction carrying another terminal's
// signal may still be traversed over free edges, which is what lets several
// routes fan out through a shared connector.
func (a *Adapter) SearchGraphFor(terminals []core.NodeId) *core.Subgraph {
	allowed := make(terminalSet, len(terminals))
	for _, t := range terminals {
		allowed[t] = struct{}{}
	}

	return core.SubgraphOf(a.graph, nil, func(id core.EdgeId) bool {
		claims := a.edgeClaims[id]
		if len(claims) == 0 {
			return true
		}
		for t := range claims {
			if _, ok := allowed[t]; ok {
				return true
			}
		}

		return false
	})
}

// resetClaims drops every claim without touching activation state. Used once
// at Router construction, after pre-active edges and dynamic nodes have been
// brought up, so that those resources remain routable.
func (a *Adapter) resetClaims() {
	a.nodeClaims = make(map[core.NodeId]terminalSet)
	a.edgeClaims = make(map[core.EdgeId]terminalSet)
}

// sortedTerminals converts a claim set to a sorted slice.
func sortedTerminals(set terminalSet) []core.NodeId {
	if len(set) == 0 {
		return nil
	}
	out := make([]core.NodeId, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
