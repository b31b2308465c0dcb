package search

import (
	"container/heap"
	"strings"

	"github.com/jenshnielsen/stationgraph/core"
)

// PathIterator lazily enumerates the simple paths between two nodes in
// non-decreasing hop count. Equal-length paths are produced in lexicographic
// order. A PathIterator is single-use and not safe for concurrent use.
type PathIterator struct {
	g        core.GraphView
	from, to core.NodeId

	accepted  [][]core.NodeId
	pending   candidateHeap
	queued    map[string]struct{}
	primed    bool
	exhausted bool
}

// ShortestPaths returns a PathIterator over the simple paths from from to to
// in g. No search happens until Next is called; callers must bound how many
// paths they pull, as the space of simple paths can be exponential.
func ShortestPaths(g core.GraphView, from, to core.NodeId) *PathIterator {
	return &PathIterator{g: g, from: from, to: to, queued: make(map[string]struct{})}
}

// Next returns the next simple path, or ok=false when the space is exhausted
// (including the case where no path exists at all).
func (it *PathIterator) Next() ([]core.NodeId, bool) {
	if it.exhausted {
		return nil, false
	}
	if !it.primed {
		it.primed = true
		first, ok := shortestPathAvoiding(it.g, it.from, it.to, nil, nil)
		if !ok {
			it.exhausted = true

			return nil, false
		}

		return it.accept(first), true
	}

	it.spurFromLastAccepted()
	if it.pending.Len() == 0 {
		it.exhausted = true

		return nil, false
	}

	return it.accept(heap.Pop(&it.pending).(candidate).path), true
}

// accept records path as produced and returns a caller-owned copy.
func (it *PathIterator) accept(path []core.NodeId) []core.NodeId {
	it.accepted = append(it.accepted, path)
	out := make([]core.NodeId, len(path))
	copy(out, path)

	return out
}

// spurFromLastAccepted grows the candidate heap with deviations from the most
// recently produced path, one spur node at a time (Yen's algorithm).
func (it *PathIterator) spurFromLastAccepted() {
	prev := it.accepted[len(it.accepted)-1]
	for i := 0; i < len(prev)-1; i++ {
		spur := prev[i]
		root := prev[:i+1]

		// Edges already consumed by accepted paths sharing this root prefix
		// must not be reused by the spur search.
		bannedEdges := make(map[core.EdgeId]struct{})
		for _, p := range it.accepted {
			if len(p) > i+1 && pathsEqual(p[:i+1], root) {
				bannedEdges[core.EdgeId{From: p[i], To: p[i+1]}] = struct{}{}
			}
		}
		// Root nodes before the spur must not reappear, or the joined path
		// would not be simple.
		bannedNodes := make(map[core.NodeId]struct{}, i)
		for _, id := range root[:i] {
			bannedNodes[id] = struct{}{}
		}

		spurPath, ok := shortestPathAvoiding(it.g, spur, it.to, bannedNodes, bannedEdges)
		if !ok {
			continue
		}

		total := make([]core.NodeId, 0, len(root)+len(spurPath)-1)
		total = append(total, root...)
		total = append(total, spurPath[1:]...)
		it.push(total)
	}
}

// push queues a candidate path unless an identical one is already pending or
// was produced before.
func (it *PathIterator) push(path []core.NodeId) {
	key := pathKey(path)
	if _, ok := it.queued[key]; ok {
		return
	}
	it.queued[key] = struct{}{}
	heap.Push(&it.pending, candidate{path: path})
}

// shortestPathAvoiding finds one shortest path from from to to by hop count,
// never entering a banned node and never traversing a banned edge.
// Determinism follows from the sorted successor order of core.GraphView.
func shortestPathAvoiding(
	g core.GraphView,
	from, to core.NodeId,
	bannedNodes map[core.NodeId]struct{},
	bannedEdges map[core.EdgeId]struct{},
) ([]core.NodeId, bool) {
	if !g.HasNode(from) || !g.HasNode(to) {
		return nil, false
	}
	if from == to {
		return []core.NodeId{from}, true
	}

	parent := map[core.NodeId]core.NodeId{from: from}
	queue := []core.NodeId{from}
	for head := 0; head < len(queue); head++ {
		curr := queue[head]
		for _, nbr := range g.SuccessorsOf(curr) {
			if _, banned := bannedNodes[nbr]; banned {
				continue
			}
			if _, banned := bannedEdges[core.EdgeId{From: curr, To: nbr}]; banned {
				continue
			}
			if _, seen := parent[nbr]; seen {
				continue
			}
			parent[nbr] = curr
			if nbr == to {
				return reconstruct(parent, from, to), true
			}
			queue = append(queue, nbr)
		}
	}

	return nil, false
}

// reconstruct follows parent links back from to and reverses the result.
func reconstruct(parent map[core.NodeId]core.NodeId, from, to core.NodeId) []core.NodeId {
	path := []core.NodeId{to}
	for curr := to; curr != from; {
		curr = parent[curr]
		path = append(path, curr)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// pathsEqual reports element-wise equality of two paths.
func pathsEqual(a, b []core.NodeId) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// pathKey serializes a path for duplicate detection.
func pathKey(path []core.NodeId) string {
	var sb strings.Builder
	for i, id := range path {
		if i > 0 {
			sb.WriteByte(0x1f)
		}
		sb.WriteString(string(id))
	}

	return sb.String()
}

// candidate is a pending path in the Yen heap.
type candidate struct {
	path []core.NodeId
}

// candidateHeap is a min-heap of candidate paths ordered by hop count,
// then lexicographically for reproducible tie-breaking.
type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	a, b := h[i].path, h[j].path
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for k := range a {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}

	return false
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }

func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
