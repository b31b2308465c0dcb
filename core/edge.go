package core

import "fmt"

// BasicEdge is the canonical Edge implementation. Electrical edges flip
// between the two electrical connection statuses; part-of and capacitive
// edges refuse every transition.
type BasicEdge struct {
	edgeType EdgeType
	status   EdgeStatus
}

// NewElectricalEdge builds an electrical connection edge; active selects the
// initial status.
func NewElectricalEdge(active bool) *BasicEdge {
	status := EdgeInactiveElectrical
	if active {
		status = EdgeActiveElectrical
	}

	return &BasicEdge{edgeType: EdgeTypeElectrical, status: status}
}

// NewPartOfEdge builds a structural parent/child edge.
func NewPartOfEdge() *BasicEdge {
	return &BasicEdge{edgeType: EdgeTypePartOf, status: EdgePartOf}
}

// NewCapacitiveEdge builds a parasitic coupling edge.
func NewCapacitiveEdge() *BasicEdge {
	return &BasicEdge{edgeType: EdgeTypeCapacitive, status: EdgeCapacitiveCoupling}
}

// Type classifies the edge.
func (e *BasicEdge) Type() EdgeType { return e.edgeType }

// Status reports the current edge status.
func (e *BasicEdge) Status() EdgeStatus { return e.status }

// Activate moves an electrical edge to EdgeActiveElectrical. Activating an
// already-active edge is a no-op; non-electrical edges fail with
// ErrInvalidTransition.
func (e *BasicEdge) Activate() error {
	if e.edgeType != EdgeTypeElectrical || !e.status.ElectricalConnection() {
		return fmt.Errorf("%w: cannot activate edge with status %q", ErrInvalidTransition, e.status)
	}
	e.status = EdgeActiveElectrical

	return nil
}

// Deactivate moves an electrical edge to EdgeInactiveElectrical. Deactivating
// an already-inactive edge is a no-op; non-electrical edges fail with
// ErrInvalidTransition.
func (e *BasicEdge) Deactivate() error {
	if e.edgeType != EdgeTypeElectrical || !e.status.ElectricalConnection() {
		return fmt.Errorf("%w: cannot deactivate edge with status %q", ErrInvalidTransition, e.status)
	}
	e.status = EdgeInactiveElectrical

	return nil
}
