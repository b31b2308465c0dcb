package router

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jenshnielsen/stationgraph/appraise"
	"github.com/jenshnielsen/stationgraph/core"
	"github.com/jenshnielsen/stationgraph/search"
)

// sourceCandidate is one eligible source for a terminal group, with its
// summed shortest-path hop distance to the group's terminals.
type sourceCandidate struct {
	id   core.NodeId
	dist int
}

// sourceCombo assigns one source per terminal group, positionally.
type sourceCombo struct {
	ids   []core.NodeId
	score int
	dist  int
}

// sourceFinder ranks candidate source combinations for terminal groups.
type sourceFinder struct {
	adapter *Adapter
}

// candidatesOf enumerates the eligible sources that can reach terminal, by
// reverse breadth-first search over view, in ascending hop distance.
func (f *sourceFinder) candidatesOf(view core.GraphView, terminal core.NodeId) ([]sourceCandidate, error) {
	order, err := search.BreadthFirstNodes(view, terminal, search.WithReverse())
	if errors.Is(err, search.ErrStartNotFound) {
		// Terminal hidden behind a foreign claim: nothing is reachable.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out []sourceCandidate
	for _, id := range order {
		src, ok := view.Node(id).(core.SourceNode)
		if !ok || !src.EligibleSource() {
			continue
		}
		dist, ok := search.Distance(view, id, terminal)
		if !ok {
			continue
		}
		out = append(out, sourceCandidate{id: id, dist: dist})
	}

	return out, nil
}

// groupCandidatesOf intersects the per-terminal candidate lists of a group
// and orders the survivors by summed distance to every terminal. A group's
// search subgraph admits resources that are free or already claimed by the
// group's own terminals.
func (f *sourceFinder) groupCandidatesOf(group Group) ([]sourceCandidate, error) {
	if len(group) == 0 {
		return nil, nil
	}
	view := f.adapter.SearchGraphFor(group)
	merged, err := f.candidatesOf(view, group[0])
	if err != nil {
		return nil, err
	}
	for _, terminal := range group[1:] {
		next, err := f.candidatesOf(view, terminal)
		if err != nil {
			return nil, err
		}
		dists := make(map[core.NodeId]int, len(next))
		for _, c := range next {
			dists[c.id] = c.dist
		}
		kept := merged[:0]
		for _, c := range merged {
			if d, ok := dists[c.id]; ok {
				c.dist += d
				kept = append(kept, c)
			}
		}
		merged = kept
	}
	if len(group) > 1 {
		// Stable, so equal sums keep the first terminal's BFS order.
		sort.SliceStable(merged, func(i, j int) bool { return merged[i].dist < merged[j].dist })
	}

	return merged, nil
}

// rankedCombos scores the Cartesian product of per-group candidates with the
// appraiser and returns the positively scored combinations in descending
// score, ties broken by total hop distance.
func (f *sourceFinder) rankedCombos(groups []Group, appraiser appraise.Appraiser) ([]sourceCombo, error) {
	dims := make([]*replay[sourceCandidate], len(groups))
	for i, group := range groups {
		cands, err := f.groupCandidatesOf(group)
		if err != nil {
			return nil, err
		}
		if len(cands) == 0 {
			return nil, fmt.Errorf("%w: no source reaches terminal group %v", ErrNoEligibleSources, group)
		}
		dims[i] = replayOfSlice(cands)
	}

	var combos []sourceCombo
	iter := productOf(dims...)
	for tuple, ok := iter.next(); ok; tuple, ok = iter.next() {
		ids := make([]core.NodeId, len(tuple))
		nodes := make([]core.Node, len(tuple))
		total := 0
		for i, c := range tuple {
			ids[i] = c.id
			nodes[i] = f.adapter.Graph().Node(c.id)
			total += c.dist
		}
		score := appraiser(nodes...)
		if score <= 0 {
			continue
		}
		combos = append(combos, sourceCombo{ids: ids, score: score, dist: total})
	}
	if len(combos) == 0 {
		return nil, fmt.Errorf("%w: appraiser rejected every combination", ErrNoEligibleSources)
	}
	sort.SliceStable(combos, func(i, j int) bool {
		if combos[i].score != combos[j].score {
			return combos[i].score > combos[j].score
		}

		return combos[i].dist < combos[j].dist
	})

	return combos, nil
}
