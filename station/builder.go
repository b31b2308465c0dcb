package station

import (
	"errors"
	"fmt"

	"github.com/jenshnielsen/stationgraph/core"
)

// Sentinel errors for station declaration.
var (
	// ErrDuplicateNode indicates a node name was declared twice.
	ErrDuplicateNode = errors.New("station: node already declared")

	// ErrUnknownNode indicates an edge constructor referenced a node that
	// carries no declared value.
	ErrUnknownNode = errors.New("station: unknown node referenced")
)

// Constructor applies one topology mutation to the graph under construction.
type Constructor func(g *core.StationGraph) error

// Build creates an empty StationGraph and applies the constructors in order.
// The first failing constructor aborts the build.
func Build(cons ...Constructor) (*core.StationGraph, error) {
	g := core.New()
	for i, con := range cons {
		if err := con(g); err != nil {
			return nil, fmt.Errorf("station.Build: constructor %d: %w", i, err)
		}
	}

	return g, nil
}

// Module declares an instrument module node.
func Module(name core.NodeId, opts ...core.ModuleOption) Constructor {
	return func(g *core.StationGraph) error {
		if err := declared(g, name); err == nil {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, name)
		}

		return g.SetNode(name, core.NewInstrumentModuleNode(string(name), opts...))
	}
}

// Connector declares a passive junction node: a cable line, a pin, a
// breakout-box lane.
func Connector(name core.NodeId) Constructor {
	return func(g *core.StationGraph) error {
		if err := declared(g, name); err == nil {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, name)
		}

		return g.SetNode(name, core.NewConnectorNode(string(name)))
	}
}

// Endpoint declares a terminal contact owned by parent and records the
// structural part-of edge from the endpoint to its parent.
func Endpoint(name, parent core.NodeId) Constructor {
	return func(g *core.StationGraph) error {
		if err := declared(g, name); err == nil {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, name)
		}
		if err := declared(g, parent); err != nil {
			return err
		}
		if err := g.SetNode(name, core.NewEndpointNode(string(name), g.Node(parent))); err != nil {
			return err
		}

		return g.SetEdge(core.EdgeId{From: name, To: parent}, core.NewPartOfEdge())
	}
}

// Ground declares a permanently wired ground source in the given unit.
func Ground(name core.NodeId, unit string) Constructor {
	return constantSource(name, "ground", unit)
}

// Float declares a permanently wired floating source in the given unit.
func Float(name core.NodeId, unit string) Constructor {
	return constantSource(name, "float", unit)
}

// HighZ declares a permanently wired high-impedance source in the given unit.
func HighZ(name core.NodeId, unit string) Constructor {
	return constantSource(name, "highz", unit)
}

// Wire declares an inactive electrical connection in both directions,
// modelling an ordinary cable between a and b.
func Wire(a, b core.NodeId) Constructor {
	return func(g *core.StationGraph) error {
		if err := declared(g, a, b); err != nil {
			return err
		}
		if err := g.SetEdge(core.EdgeId{From: a, To: b}, core.NewElectricalEdge(false)); err != nil {
			return err
		}

		return g.SetEdge(core.EdgeId{From: b, To: a}, core.NewElectricalEdge(false))
	}
}

// Link declares a single directed inactive electrical connection.
func Link(from, to core.NodeId) Constructor {
	return electricalLink(from, to, false)
}

// ActiveLink declares a directed electrical connection that is already
// carrying signal when the station comes up; the Router claims it during
// initialization.
func ActiveLink(from, to core.NodeId) Constructor {
	return electricalLink(from, to, true)
}

// Capacitive declares a parasitic coupling in both directions.
func Capacitive(a, b core.NodeId) Constructor {
	return func(g *core.StationGraph) error {
		if err := declared(g, a, b); err != nil {
			return err
		}
		if err := g.SetEdge(core.EdgeId{From: a, To: b}, core.NewCapacitiveEdge()); err != nil {
			return err
		}

		return g.SetEdge(core.EdgeId{From: b, To: a}, core.NewCapacitiveEdge())
	}
}

func electricalLink(from, to core.NodeId, active bool) Constructor {
	return func(g *core.StationGraph) error {
		if err := declared(g, from, to); err != nil {
			return err
		}

		return g.SetEdge(core.EdgeId{From: from, To: to}, core.NewElectricalEdge(active))
	}
}

func constantSource(name core.NodeId, quantity, unit string) Constructor {
	return func(g *core.StationGraph) error {
		if err := declared(g, name); err == nil {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, name)
		}
		node := core.NewInstrumentModuleNode(
			string(name),
			core.WithQuantities(core.Settable(quantity, unit)),
			core.AsEligibleSource(),
		)

		return g.SetNode(name, node)
	}
}

// declared fails with ErrUnknownNode unless every id carries a node value.
func declared(g *core.StationGraph, ids ...core.NodeId) error {
	for _, id := range ids {
		if g.Node(id) == nil {
			return fmt.Errorf("%w: %q", ErrUnknownNode, id)
		}
	}

	return nil
}
