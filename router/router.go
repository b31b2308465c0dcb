package router

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jenshnielsen/stationgraph/appraise"
	"github.com/jenshnielsen/stationgraph/core"
	"github.com/jenshnielsen/stationgraph/search"
)

// Router allocates and releases disjoint signal routes on a station graph.
// See the package documentation for the request lifecycle.
type Router struct {
	adapter *Adapter
	opts    routerOptions
}

// NewRouter wraps g and brings the claim tables in line with its pre-wired
// state: edges already active are claimed on behalf of their destination, and
// dynamic nodes are routed to every source they can currently reach. The
// claims taken during this bootstrap are then cleared so the pre-wired
// resources stay routable.
func NewRouter(g *core.StationGraph, opts ...Option) (*Router, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &Router{adapter: NewAdapter(g), opts: o}
	if err := r.initializeActiveEdges(); err != nil {
		return nil, err
	}
	if err := r.activateDynamicNodes(); err != nil {
		return nil, err
	}
	r.adapter.resetClaims()

	return r, nil
}

// Graph exposes the underlying station graph for read access.
func (r *Router) Graph() *core.StationGraph { return r.adapter.Graph() }

// initializeActiveEdges claims every edge that was declared active in the
// topology, so its endpoints' upstream links reflect the static wiring.
func (r *Router) initializeActiveEdges() error {
	g := r.adapter.Graph()
	for _, id := range g.EdgeIDs() {
		if !g.Edge(id).Status().Active() {
			continue
		}
		if err := r.adapter.ActivateEdge(id, id.To); err != nil {
			return err
		}
		if err := r.adapter.ActivateNode(id.From, id.To); err != nil {
			return err
		}
	}

	return nil
}

// activateDynamicNodes routes every dynamic node to all sources it can reach,
// establishing the startup source links of instruments that switch their own
// output path.
func (r *Router) activateDynamicNodes() error {
	g := r.adapter.Graph()
	for _, id := range g.NodeIDs() {
		dyn, ok := g.Node(id).(core.DynamicNode)
		if !ok || !dyn.ActivatesToSource() {
			continue
		}
		sources, err := r.EligibleSourcesOf(id, nil)
		if err != nil {
			return err
		}
		for _, source := range sources {
			if err := r.connect([]core.NodeId{source}, []Group{{id}}); err != nil {
				return err
			}
		}
	}

	return nil
}

// Connect routes each source to the positionally matching terminal group:
// the first source serves every terminal of the first group, and so on.
// The source count must equal the group count; a mismatch fails before any
// activation occurs.
func (r *Router) Connect(sources Group, terminalGroups ...Group) error {
	return r.connect(sources, terminalGroups)
}

// ConnectByMap routes each source (key) to its terminal group (value).
// Sources are processed in sorted order so allocation is reproducible.
func (r *Router) ConnectByMap(connections map[core.NodeId]Group) error {
	sources := make(Group, 0, len(connections))
	for source := range connections {
		sources = append(sources, source)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })
	groups := make([]Group, len(sources))
	for i, source := range sources {
		groups[i] = connections[source]
	}

	return r.connect(sources, groups)
}

// Route picks sources for the terminal groups itself: candidate combinations
// are ranked by the appraiser and tried best-first until one admits a set of
// node-disjoint paths, which is then committed.
func (r *Router) Route(appraiser appraise.Appraiser, terminalGroups ...Group) error {
	finder := &sourceFinder{adapter: r.adapter}
	combos, err := finder.rankedCombos(terminalGroups, appraiser)
	if err != nil {
		return err
	}

	rf := &routeFinder{adapter: r.adapter, maxPaths: r.opts.maxPaths}
	for _, combo := range combos {
		paths, err := rf.findPaths(combo.ids, terminalGroups)
		if errors.Is(err, ErrNoRouteFound) {
			continue
		}
		if err != nil {
			return err
		}

		return r.commit(paths, terminalGroups)
	}

	return fmt.Errorf("%w: no eligible source combination admits disjoint paths to %v",
		ErrNoRouteFound, terminalGroups)
}

// RouteToSource routes the terminals to the nearest non-constant source
// carrying a quantity in the given unit ("" matches any unit).
func (r *Router) RouteToSource(terminals Group, unit string) error {
	p := appraise.And(
		appraise.NodeIsSource,
		appraise.Not(appraise.NodeIsConstantSource),
		appraise.NodeHasUnit(unit),
	)

	return r.Route(appraise.FromPredicate(p), terminals)
}

// RouteToMeter routes the terminals to the nearest non-constant meter
// carrying a quantity in the given unit ("" matches any unit).
func (r *Router) RouteToMeter(terminals Group, unit string) error {
	p := appraise.And(
		appraise.NodeIsMeter,
		appraise.Not(appraise.NodeIsConstantMeter),
		appraise.NodeHasUnit(unit),
	)

	return r.Route(appraise.FromPredicate(p), terminals)
}

// RouteToGround routes the terminals to a general ground in the given unit.
func (r *Router) RouteToGround(terminals Group, unit string) error {
	return r.Route(appraise.FromPredicate(appraise.NodeIsGeneralGround(unit)), terminals)
}

// RouteToFloat routes the terminals to a floating source in the given unit.
func (r *Router) RouteToFloat(terminals Group, unit string) error {
	return r.Route(appraise.FromPredicate(appraise.NodeIsSourceNamed("float", unit)), terminals)
}

// RouteToHighZ routes the terminals to a high-impedance source in the given
// unit.
func (r *Router) RouteToHighZ(terminals Group, unit string) error {
	return r.Route(appraise.FromPredicate(appraise.NodeIsSourceNamed("highz", unit)), terminals)
}

// EligibleSourcesOf lists the sources the terminal could be routed to,
// ranked the way Route would try them. A nil appraiser accepts every source.
func (r *Router) EligibleSourcesOf(terminal core.NodeId, appraiser appraise.Appraiser) ([]core.NodeId, error) {
	if appraiser == nil {
		appraiser = appraise.AlwaysEligible
	}
	finder := &sourceFinder{adapter: r.adapter}
	combos, err := finder.rankedCombos([]Group{{terminal}}, appraiser)
	if err != nil {
		return nil, err
	}
	out := make([]core.NodeId, len(combos))
	for i, combo := range combos {
		out[i] = combo.ids[0]
	}

	return out, nil
}

// JointRoutePerSameEligibleSources groups the terminals by identical
// eligible-source sets and routes each group in one request, so terminals
// that can only be served by the same sources share a route. Distinct groups
// whose eligible sets overlap are reported through the warn hook; routing
// proceeds, but allocation then depends on search order.
func (r *Router) JointRoutePerSameEligibleSources(terminals Group, appraiser appraise.Appraiser) error {
	type bucket struct {
		sources   []core.NodeId
		terminals Group
	}
	var order []string
	buckets := make(map[string]*bucket)
	seen := make(map[core.NodeId]struct{}, len(terminals))
	for _, terminal := range terminals {
		if _, dup := seen[terminal]; dup {
			continue
		}
		seen[terminal] = struct{}{}
		sources, err := r.EligibleSourcesOf(terminal, appraiser)
		if err != nil {
			return err
		}
		key, sorted := sourceSetKey(sources)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{sources: sorted}
			buckets[key] = b
			order = append(order, key)
		}
		b.terminals = append(b.terminals, terminal)
	}

	if len(order) > 1 {
		count := make(map[core.NodeId]int)
		for _, key := range order {
			for _, s := range buckets[key].sources {
				count[s]++
			}
		}
		var shared []core.NodeId
		for s, n := range count {
			if n == len(order) {
				shared = append(shared, s)
			}
		}
		if len(shared) > 0 {
			sort.Slice(shared, func(i, j int) bool { return shared[i] < shared[j] })
			r.opts.warn(fmt.Sprintf(
				"terminals %v have overlapping eligible sources %v across groups; routing may not succeed",
				terminals, shared))
		}
	}

	for _, key := range order {
		if err := r.Route(appraiser, buckets[key].terminals); err != nil {
			return err
		}
	}

	return nil
}

// Vacate releases every claim the terminal holds. The routed subgraph is
// walked breadth-first in reverse from the terminal; node claims are dropped
// first, then the claims on the edges feeding each node, mirroring the
// activation order of Connect.
func (r *Router) Vacate(terminal core.NodeId) error {
	view := r.adapter.RoutedSubgraphOf(terminal)
	order, err := search.BreadthFirstNodes(view, terminal, search.WithReverse())
	if err != nil {
		return err
	}
	for _, node := range order {
		if err := r.adapter.DeactivateNode(node, terminal); err != nil {
			return err
		}
	}
	for _, node := range order {
		for _, pred := range view.PredecessorsOf(node) {
			if err := r.adapter.DeactivateEdge(core.EdgeId{From: pred, To: node}, terminal); err != nil {
				return err
			}
		}
	}

	return nil
}

// connect validates the source/group alignment, finds disjoint paths and
// commits them.
func (r *Router) connect(sources Group, groups []Group) error {
	if len(sources) != len(groups) {
		return fmt.Errorf("%w: %d source(s) for %d terminal group(s)",
			ErrSourceCountMismatch, len(sources), len(groups))
	}

	rf := &routeFinder{adapter: r.adapter, maxPaths: r.opts.maxPaths}
	paths, err := rf.findPaths(sources, groups)
	if err != nil {
		return err
	}

	return r.commit(paths, groups)
}

// commit activates the found paths and lets every terminal claim itself.
// Not transactional: an activation error leaves earlier steps committed.
func (r *Router) commit(paths [][]core.NodeId, groups []Group) error {
	if err := r.activateOrderedPaths(orderPathsForActivation(paths)); err != nil {
		return err
	}

	seen := make(map[core.NodeId]struct{})
	var terminals []core.NodeId
	for _, group := range groups {
		for _, t := range group {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			terminals = append(terminals, t)
		}
	}
	sort.Slice(terminals, func(i, j int) bool { return terminals[i] < terminals[j] })
	for _, t := range terminals {
		if err := r.adapter.ActivateNode(t, t); err != nil {
			return err
		}
	}

	return nil
}

// edgeStep is one edge of an activation sequence together with the terminal
// that will claim it: the last node of the edge's path.
type edgeStep struct {
	edge     core.EdgeId
	terminal core.NodeId
}

// orderPathsForActivation converts node paths to per-path edge sequences,
// tagging every edge with its path's terminal.
func orderPathsForActivation(paths [][]core.NodeId) [][]edgeStep {
	ordered := make([][]edgeStep, 0, len(paths))
	for _, path := range paths {
		if len(path) == 0 {
			continue
		}
		terminal := path[len(path)-1]
		steps := make([]edgeStep, 0, len(path)-1)
		for i := 0; i+1 < len(path); i++ {
			steps = append(steps, edgeStep{
				edge:     core.EdgeId{From: path[i], To: path[i+1]},
				terminal: terminal,
			})
		}
		ordered = append(ordered, steps)
	}

	return ordered
}

// activateOrderedPaths walks the paths in lock-step: the first edge of every
// path, then the second of every path, and so on. Each step activates the
// edge and claims its origin node for the path's terminal.
func (r *Router) activateOrderedPaths(ordered [][]edgeStep) error {
	for k := 0; ; k++ {
		progressed := false
		for _, steps := range ordered {
			if k >= len(steps) {
				continue
			}
			progressed = true
			step := steps[k]
			if err := r.adapter.ActivateEdge(step.edge, step.terminal); err != nil {
				return err
			}
			if err := r.adapter.ActivateNode(step.edge.From, step.terminal); err != nil {
				return err
			}
		}
		if !progressed {
			return nil
		}
	}
}

// sourceSetKey canonicalizes a source set for grouping, returning the key and
// the sorted, deduplicated set.
func sourceSetKey(sources []core.NodeId) (string, []core.NodeId) {
	sorted := make([]core.NodeId, len(sources))
	copy(sorted, sources)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	unique := sorted[:0]
	var sb strings.Builder
	for i, s := range sorted {
		if i > 0 && s == sorted[i-1] {
			continue
		}
		unique = append(unique, s)
		if sb.Len() > 0 {
			sb.WriteByte(0x1f)
		}
		sb.WriteString(string(s))
	}

	return sb.String(), unique
}
