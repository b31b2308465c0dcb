// Concrete Node implementations: ConnectorNode, InstrumentModuleNode and
// EndpointNode. All three share the same idempotent activation semantics and
// differ in how they expose quantities and resolve upstream sources.
package core

import (
	"fmt"
	"sort"
)

// sourceSet tracks the upstream nodes a node currently draws from.
type sourceSet map[Node]struct{}

func (s sourceSet) add(n Node) { s[n] = struct{}{} }

func (s sourceSet) remove(n Node) bool {
	if _, ok := s[n]; !ok {
		return false
	}
	delete(s, n)

	return true
}

// sorted returns the members ordered by node name for reproducible output.
func (s sourceSet) sorted() []Node {
	out := make([]Node, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })

	return out
}

// upstreamOf flattens the transitive upstream sets of the given sources,
// sorted by name.
func upstreamOf(s sourceSet) []Node {
	var out []Node
	for _, src := range s.sorted() {
		out = append(out, src.Upstream()...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })

	return out
}

// ConnectorNode is a passive junction: a cable line, a pin, a daughterboard
// trace. It owns no quantities of its own; it exposes the quantities of
// whatever currently feeds it.
type ConnectorNode struct {
	name    string
	status  NodeStatus
	sources sourceSet
}

// NewConnectorNode builds an inactive connector with the given name.
func NewConnectorNode(name string) *ConnectorNode {
	return &ConnectorNode{name: name, status: NodeInactive, sources: make(sourceSet)}
}

// Name returns the connector's unique dotted name.
func (n *ConnectorNode) Name() string { return n.name }

// Quantities aggregates the quantities of all current upstream sources.
func (n *ConnectorNode) Quantities() []Quantity {
	var out []Quantity
	for _, src := range n.sources.sorted() {
		out = append(out, src.Quantities()...)
	}

	return out
}

// Activate sets the connector ACTIVE; repeated calls are no-ops.
func (n *ConnectorNode) Activate() { n.status = NodeActive }

// Deactivate sets the connector INACTIVE; repeated calls are no-ops.
func (n *ConnectorNode) Deactivate() { n.status = NodeInactive }

// AddSource registers source as feeding this connector.
func (n *ConnectorNode) AddSource(source Node) { n.sources.add(source) }

// RemoveSource unregisters source; ErrNotASource if it was never added.
func (n *ConnectorNode) RemoveSource(source Node) error {
	if !n.sources.remove(source) {
		return fmt.Errorf("%w: %q is not a source of %q", ErrNotASource, source.Name(), n.name)
	}

	return nil
}

// Upstream resolves the originating nodes through all current sources.
func (n *ConnectorNode) Upstream() []Node { return upstreamOf(n.sources) }

// Status reports the current activation state.
func (n *ConnectorNode) Status() NodeStatus { return n.status }

// InstrumentModuleNode is an addressable instrument channel or submodule.
// It owns its quantities and is the only concrete node that can be marked
// as an eligible source or as dynamically routed.
type InstrumentModuleNode struct {
	name       string
	status     NodeStatus
	quantities []Quantity
	sources    sourceSet
	eligible   bool
	dynamic    bool
}

// ModuleOption configures an InstrumentModuleNode at construction time.
type ModuleOption func(*InstrumentModuleNode)

// WithQuantities attaches controllable quantities to the module.
func WithQuantities(qs ...Quantity) ModuleOption {
	return func(n *InstrumentModuleNode) { n.quantities = append(n.quantities, qs...) }
}

// AsEligibleSource marks the module as a node where a source search may end.
func AsEligibleSource() ModuleOption {
	return func(n *InstrumentModuleNode) { n.eligible = true }
}

// AsDynamicSource marks the module for eager routing at Router construction.
func AsDynamicSource() ModuleOption {
	return func(n *InstrumentModuleNode) { n.dynamic = true }
}

// NewInstrumentModuleNode builds an inactive instrument module.
func NewInstrumentModuleNode(name string, opts ...ModuleOption) *InstrumentModuleNode {
	n := &InstrumentModuleNode{name: name, status: NodeInactive, sources: make(sourceSet)}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Name returns the module's unique dotted name.
func (n *InstrumentModuleNode) Name() string { return n.name }

// Quantities returns the module's own quantities.
func (n *InstrumentModuleNode) Quantities() []Quantity { return n.quantities }

// Activate sets the module ACTIVE; repeated calls are no-ops.
func (n *InstrumentModuleNode) Activate() { n.status = NodeActive }

// Deactivate sets the module INACTIVE; repeated calls are no-ops.
func (n *InstrumentModuleNode) Deactivate() { n.status = NodeInactive }

// AddSource registers source as feeding this module.
func (n *InstrumentModuleNode) AddSource(source Node) { n.sources.add(source) }

// RemoveSource unregisters source; ErrNotASource if it was never added.
func (n *InstrumentModuleNode) RemoveSource(source Node) error {
	if !n.sources.remove(source) {
		return fmt.Errorf("%w: %q is not a source of %q", ErrNotASource, source.Name(), n.name)
	}

	return nil
}

// Upstream returns the module itself: an instrument module originates its
// own signal rather than relaying another node's.
func (n *InstrumentModuleNode) Upstream() []Node { return []Node{n} }

// Status reports the current activation state.
func (n *InstrumentModuleNode) Status() NodeStatus { return n.status }

// EligibleSource reports whether the module may terminate a source search.
func (n *InstrumentModuleNode) EligibleSource() bool { return n.eligible }

// ActivatesToSource reports whether the module is routed at Router startup.
func (n *InstrumentModuleNode) ActivatesToSource() bool { return n.dynamic }

// EndpointNode is a terminal point of the signal chain, typically a device
// contact. It owns no quantities; its parent, when set, records which
// instrument or sample the endpoint belongs to.
type EndpointNode struct {
	name    string
	parent  Node
	status  NodeStatus
	sources sourceSet
}

// NewEndpointNode builds an inactive endpoint; parent may be nil.
func NewEndpointNode(name string, parent Node) *EndpointNode {
	return &EndpointNode{name: name, parent: parent, status: NodeInactive, sources: make(sourceSet)}
}

// Name returns the endpoint's unique dotted name.
func (n *EndpointNode) Name() string { return n.name }

// Parent returns the owning node, or nil.
func (n *EndpointNode) Parent() Node { return n.parent }

// Quantities returns nil: an endpoint exposes nothing controllable.
func (n *EndpointNode) Quantities() []Quantity { return nil }

// Activate sets the endpoint ACTIVE; repeated calls are no-ops.
func (n *EndpointNode) Activate() { n.status = NodeActive }

// Deactivate sets the endpoint INACTIVE; repeated calls are no-ops.
func (n *EndpointNode) Deactivate() { n.status = NodeInactive }

// AddSource registers source as feeding this endpoint.
func (n *EndpointNode) AddSource(source Node) { n.sources.add(source) }

// RemoveSource unregisters source; ErrNotASource if it was never added.
func (n *EndpointNode) RemoveSource(source Node) error {
	if !n.sources.remove(source) {
		return fmt.Errorf("%w: %q is not a source of %q", ErrNotASource, source.Name(), n.name)
	}

	return nil
}

// Upstream resolves the originating nodes through all current sources.
func (n *EndpointNode) Upstream() []Node { return upstreamOf(n.sources) }

// Status reports the current activation state.
func (n *EndpointNode) Status() NodeStatus { return n.status }
