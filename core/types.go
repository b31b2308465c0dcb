// Package core types: identifiers, statuses, the Node/Edge activation
// contracts, the GraphView read contract, and sentinel errors.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates an empty identifier was passed to a mutator.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidTransition indicates an activate/deactivate attempt on an
	// edge whose type or current status forbids the transition.
	ErrInvalidTransition = errors.New("core: invalid edge transition")

	// ErrNotASource indicates removal of an upstream source that is not a
	// member of the node's source set.
	ErrNotASource = errors.New("core: node is not a registered source")
)

// NodeId uniquely identifies a node within a StationGraph.
// Identifiers are stable for the lifetime of the graph; by convention they
// are dotted hardware names such as "dac.ch01" or "matrix[A3]".
type NodeId string

// EdgeId identifies a directed edge as an ordered (From, To) pair.
// The reverse pair names a distinct edge.
type EdgeId struct {
	From NodeId
	To   NodeId
}

// NodeStatus is the activation state of a node.
type NodeStatus string

const (
	// NodeActive marks a node that has been activated and not deactivated since.
	NodeActive NodeStatus = "active"

	// NodeInactive marks a node that is not part of any live route.
	NodeInactive NodeStatus = "inactive"
)

// EdgeStatus is the activation/classification state of an edge.
type EdgeStatus string

const (
	// EdgeActiveElectrical is an electrical connection currently carrying signal.
	EdgeActiveElectrical EdgeStatus = "active_electrical_connection"

	// EdgeInactiveElectrical is an electrical connection that may be activated.
	EdgeInactiveElectrical EdgeStatus = "inactive_electrical_connection"

	// EdgePartOf is a structural parent/child relation, never activatable.
	EdgePartOf EdgeStatus = "part_of"

	// EdgeCapacitiveCoupling is a parasitic coupling, never activatable.
	EdgeCapacitiveCoupling EdgeStatus = "capacitive_coupling"
)

// ElectricalConnection reports whether s is one of the two electrical
// connection statuses. This is the single canonical predicate deciding
// whether an edge may transition between active and inactive.
func (s EdgeStatus) ElectricalConnection() bool {
	return s == EdgeActiveElectrical || s == EdgeInactiveElectrical
}

// Active reports whether s is the active electrical connection status.
func (s EdgeStatus) Active() bool {
	return s == EdgeActiveElectrical
}

// EdgeType classifies an edge independently of its momentary status.
type EdgeType string

const (
	// EdgeTypeElectrical marks an edge that may carry signal.
	EdgeTypeElectrical EdgeType = "electrical_connection"

	// EdgeTypePartOf marks a structural parent/child edge.
	EdgeTypePartOf EdgeType = "part_of"

	// EdgeTypeCapacitive marks a parasitic coupling edge.
	EdgeTypeCapacitive EdgeType = "capacitive_coupling"
)

// Quantity is one controllable quantity of a hardware port: a voltage,
// a current, a measured value. The core treats quantities as opaque beyond
// enumerability; the appraise package inspects them to rank sources.
type Quantity interface {
	// Name is the short name of the quantity, e.g. "voltage" or "ground".
	Name() string

	// Unit is the physical unit, e.g. "V"; empty when unitless.
	Unit() string

	// Settable reports whether the quantity can be driven.
	Settable() bool

	// Gettable reports whether the quantity can be read back.
	Gettable() bool
}

// Node is the activation contract of a graph vertex: an instrument endpoint,
// a connector junction, or an abstract source/sink.
//
// Activate and Deactivate are idempotent. AddSource/RemoveSource maintain the
// set of upstream nodes this node currently draws signal from; RemoveSource
// of a non-member fails with ErrNotASource.
type Node interface {
	// Name is the stable, globally-unique dotted name of the port.
	Name() string

	// Quantities enumerates the controllable quantities owned by the node.
	Quantities() []Quantity

	// Activate sets the node ACTIVE. Repeated calls are no-ops.
	Activate()

	// Deactivate sets the node INACTIVE. Repeated calls are no-ops.
	Deactivate()

	// AddSource registers source as an upstream node.
	AddSource(source Node)

	// RemoveSource unregisters a previously added upstream node.
	RemoveSource(source Node) error

	// Upstream resolves the transitive set of originating nodes,
	// sorted by name.
	Upstream() []Node

	// Status reports the current activation state.
	Status() NodeStatus
}

// SourceNode is implemented by nodes that can originate a signal (grounds,
// floats, voltage outputs). The router's breadth-first source search
// recognizes candidates through this optional capability.
type SourceNode interface {
	Node

	// EligibleSource reports whether the node may terminate a source search.
	EligibleSource() bool
}

// DynamicNode is implemented by nodes whose source links must be established
// eagerly when a Router is constructed, before any explicit routing request.
type DynamicNode interface {
	Node

	// ActivatesToSource reports whether the node is routed at startup.
	ActivatesToSource() bool
}

// Edge is the activation contract of a directed arc.
//
// Only edges of electrical type in an electrical connection status may
// transition; any other Activate/Deactivate fails with ErrInvalidTransition.
type Edge interface {
	// Type classifies the edge.
	Type() EdgeType

	// Status reports the current edge status.
	Status() EdgeStatus

	// Activate moves an electrical edge to EdgeActiveElectrical.
	Activate() error

	// Deactivate moves an electrical edge to EdgeInactiveElectrical.
	Deactivate() error
}

// GraphView is the read-only contract shared by StationGraph and Subgraph.
// All iteration methods return deterministically ordered results.
type GraphView interface {
	// HasNode reports whether id is present in the view.
	HasNode(id NodeId) bool

	// Node returns the value attached to id, or nil when id is absent or
	// carries no value.
	Node(id NodeId) Node

	// Edge returns the value attached to id, or nil when id is absent.
	Edge(id EdgeId) Edge

	// NodeIDs lists the node identifiers in the view, sorted ascending.
	NodeIDs() []NodeId

	// EdgeIDs lists the edge identifiers, sorted by (From, To) ascending.
	EdgeIDs() []EdgeId

	// SuccessorsOf lists nodes reachable over one outgoing edge, sorted.
	SuccessorsOf(id NodeId) []NodeId

	// PredecessorsOf lists nodes with an edge into id, sorted.
	PredecessorsOf(id NodeId) []NodeId

	// NeighborsOf is the sorted union of successors and predecessors.
	NeighborsOf(id NodeId) []NodeId
}
