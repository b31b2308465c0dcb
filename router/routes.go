package router

import (
	"fmt"
	"sort"

	"github.com/jenshnielsen/stationgraph/core"
	"github.com/jenshnielsen/stationgraph/search"
)

// routeFinder searches for node-disjoint simple paths from chosen sources to
// their terminal groups.
type routeFinder struct {
	adapter  *Adapter
	maxPaths int
}

// pathDim wraps the lazy shortest-simple-path stream from from to to as a
// replayable product dimension, bounded by maxPaths when configured.
func (r *routeFinder) pathDim(view core.GraphView, from, to core.NodeId) *replay[[]core.NodeId] {
	it := search.ShortestPaths(view, from, to)
	remaining := r.maxPaths

	return replayOf(func() ([]core.NodeId, bool) {
		if r.maxPaths > 0 {
			if remaining == 0 {
				return nil, false
			}
			remaining--
		}

		return it.Next()
	})
}

// findPaths returns the first globally node-disjoint set of paths serving
// every terminal group from its positionally assigned source.
//
// Terminal groups that share a terminal id cannot be node-disjoint from each
// other by construction, so their path streams are merged into one part first
// and disjointness is only required across parts.
func (r *routeFinder) findPaths(sources []core.NodeId, groups []Group) ([][]core.NodeId, error) {
	pairDims := make([][]*replay[[]core.NodeId], len(groups))
	partition := NewPartition()
	for i, group := range groups {
		view := r.adapter.SearchGraphFor(group)
		dims := make([]*replay[[]core.NodeId], 0, len(group))
		for _, terminal := range group {
			dims = append(dims, r.pathDim(view, sources[i], terminal))
		}
		pairDims[i] = dims
		partition.Insert(group, i)
	}

	parts := partition.Parts()
	outerDims := make([]*replay[[][]core.NodeId], len(parts))
	for pi, part := range parts {
		keys := append([]int(nil), part.Keys...)
		sort.Ints(keys)
		var dims []*replay[[]core.NodeId]
		for _, k := range keys {
			dims = append(dims, pairDims[k]...)
		}
		inner := productOf(dims...)
		outerDims[pi] = replayOf(inner.next)
	}

	combos := productOf(outerDims...)
	for tuple, ok := combos.next(); ok; tuple, ok = combos.next() {
		if paths, ok := disjointUnion(tuple); ok {
			return paths, nil
		}
	}

	return nil, fmt.Errorf("%w: every path combination collides", ErrNoRouteFound)
}

// disjointUnion flattens the per-part path tuples if no node is shared
// across parts. Paths within one part may overlap; they were merged exactly
// because they must share terminals (and always share their source).
func disjointUnion(parts [][][]core.NodeId) ([][]core.NodeId, bool) {
	owner := make(map[core.NodeId]int)
	var flat [][]core.NodeId
	for pi, paths := range parts {
		for _, path := range paths {
			for _, id := range path {
				if prev, ok := owner[id]; ok && prev != pi {
					return nil, false
				}
				owner[id] = pi
			}
			flat = append(flat, path)
		}
	}

	return flat, true
}
