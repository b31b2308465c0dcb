package search

import "github.com/jenshnielsen/stationgraph/core"

// BreadthFirstNodes traverses g breadth-first from start and returns the
// visited nodes in ascending hop distance, start first. With WithReverse the
// traversal follows predecessor edges.
func BreadthFirstNodes(g core.GraphView, start core.NodeId, opts ...Option) ([]core.NodeId, error) {
	order, _, err := breadthFirst(g, start, opts)

	return order, err
}

// BreadthFirstEdges traverses g breadth-first from start and returns the
// tree edges in traversal order, each in its actual graph orientation (for a
// reverse traversal the discovered predecessor is the edge's From side).
func BreadthFirstEdges(g core.GraphView, start core.NodeId, opts ...Option) ([]core.EdgeId, error) {
	_, edges, err := breadthFirst(g, start, opts)

	return edges, err
}

func breadthFirst(g core.GraphView, start core.NodeId, opts []Option) ([]core.NodeId, []core.EdgeId, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	var o traversalOptions
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(start) {
		return nil, nil, ErrStartNotFound
	}

	next := g.SuccessorsOf
	if o.reverse {
		next = g.PredecessorsOf
	}

	order := []core.NodeId{start}
	var edges []core.EdgeId
	visited := map[core.NodeId]struct{}{start: {}}
	for head := 0; head < len(order); head++ {
		curr := order[head]
		for _, nbr := range next(curr) {
			if _, seen := visited[nbr]; seen {
				continue
			}
			visited[nbr] = struct{}{}
			order = append(order, nbr)
			if o.reverse {
				edges = append(edges, core.EdgeId{From: nbr, To: curr})
			} else {
				edges = append(edges, core.EdgeId{From: curr, To: nbr})
			}
		}
	}

	return order, edges, nil
}

// Distance returns the hop count of a shortest path from from to to,
// or ok=false when to is unreachable.
func Distance(g core.GraphView, from, to core.NodeId) (int, bool) {
	path, ok := shortestPathAvoiding(g, from, to, nil, nil)
	if !ok {
		return 0, false
	}

	return len(path) - 1, true
}
