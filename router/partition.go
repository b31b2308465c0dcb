package router

import (
	"sort"

	"github.com/jenshnielsen/stationgraph/core"
)

// Partition maintains a partition of element sets such that the union held
// by each part is disjoint from every other part, with the number of parts
// maximal under that constraint.
//
// It behaves like a union-find forest over the insertions, with one
// difference that matters to the route finder: each part remembers the keys
// of the insertions merged into it, so the caller can reconstruct which
// terminal groups were fused together.
type Partition struct {
	parent []int
	rank   []int

	// keys and elems are populated at root indices only.
	keys  [][]int
	elems []map[core.NodeId]struct{}

	// owner maps each element to the insertion index that currently holds it.
	owner map[core.NodeId]int
}

// Part is one element of the resulting partition.
type Part struct {
	// Keys are the insertion keys merged into this part, newest first.
	Keys []int

	// Elements is the sorted union of the merged element sets.
	Elements []core.NodeId
}

// NewPartition creates an empty partition.
func NewPartition() *Partition {
	return &Partition{owner: make(map[core.NodeId]int)}
}

// Insert adds an element set under the given key, merging it with every
// existing part it intersects.
func (p *Partition) Insert(elements []core.NodeId, key int) {
	idx := len(p.parent)
	p.parent = append(p.parent, idx)
	p.rank = append(p.rank, 0)
	p.keys = append(p.keys, []int{key})
	set := make(map[core.NodeId]struct{}, len(elements))
	for _, e := range elements {
		set[e] = struct{}{}
	}
	p.elems = append(p.elems, set)

	for _, e := range elements {
		if prev, ok := p.owner[e]; ok {
			idx = p.union(idx, prev)
		}
		p.owner[e] = idx
	}
}

// find resolves the root of i with path compression.
func (p *Partition) find(i int) int {
	for p.parent[i] != i {
		p.parent[i] = p.parent[p.parent[i]]
		i = p.parent[i]
	}

	return i
}

// union merges the parts of a and b and returns the surviving root.
// Key order is preserved with the newer contribution first.
func (p *Partition) union(a, b int) int {
	ra, rb := p.find(a), p.find(b)
	if ra == rb {
		return ra
	}
	// Keep ra as the designated survivor for key ordering, but attach the
	// shallower tree below the deeper one to bound find depth.
	winner, loser := ra, rb
	if p.rank[ra] < p.rank[rb] {
		p.parent[ra] = rb
		winner, loser = rb, ra
	} else {
		p.parent[rb] = ra
		if p.rank[ra] == p.rank[rb] {
			p.rank[ra]++
		}
	}
	if winner != ra {
		// The newer insertion lost the rank race; move its metadata so the
		// surviving root still lists newest keys first.
		p.keys[winner] = append(p.keys[loser], p.keys[winner]...)
	} else {
		p.keys[winner] = append(p.keys[winner], p.keys[loser]...)
	}
	for e := range p.elems[loser] {
		p.elems[winner][e] = struct{}{}
	}
	p.keys[loser] = nil
	p.elems[loser] = nil

	return winner
}

// Parts returns the maximal partition, ordered by each part's smallest
// contributed key so the result is independent of merge history.
func (p *Partition) Parts() []Part {
	var out []Part
	for i := range p.parent {
		if p.find(i) != i {
			continue
		}
		elements := make([]core.NodeId, 0, len(p.elems[i]))
		for e := range p.elems[i] {
			elements = append(elements, e)
		}
		sort.Slice(elements, func(a, b int) bool { return elements[a] < elements[b] })
		keys := make([]int, len(p.keys[i]))
		copy(keys, p.keys[i])
		out = append(out, Part{Keys: keys, Elements: elements})
	}
	sort.Slice(out, func(a, b int) bool { return minKey(out[a].Keys) < minKey(out[b].Keys) })

	return out
}

// minKey returns the smallest key in a non-empty key list.
func minKey(keys []int) int {
	m := keys[0]
	for _, k := range keys[1:] {
		if k < m {
			m = k
		}
	}

	return m
}
