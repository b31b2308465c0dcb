package core_test

import (
	"errors"
	"testing"

	"github.com/jenshnielsen/stationgraph/core"
)

// TestNodeActivationIdempotent verifies repeated activation/deactivation is
// a no-op for every concrete node kind.
func TestNodeActivationIdempotent(t *testing.T) {
	nodes := []core.Node{
		core.NewConnectorNode("bus"),
		core.NewInstrumentModuleNode("dac.ch01"),
		core.NewEndpointNode("sample.gate", nil),
	}
	for _, n := range nodes {
		if n.Status() != core.NodeInactive {
			t.Errorf("%s: new node should be inactive, got %v", n.Name(), n.Status())
		}
		n.Activate()
		n.Activate()
		if n.Status() != core.NodeActive {
			t.Errorf("%s: want active after double activate, got %v", n.Name(), n.Status())
		}
		n.Deactivate()
		n.Deactivate()
		if n.Status() != core.NodeInactive {
			t.Errorf("%s: want inactive after double deactivate, got %v", n.Name(), n.Status())
		}
	}
}

// TestRemoveSourceNotAMember verifies source-set membership errors.
func TestRemoveSourceNotAMember(t *testing.T) {
	bus := core.NewConnectorNode("bus")
	gnd := core.NewInstrumentModuleNode("gnd")

	if err := bus.RemoveSource(gnd); !errors.Is(err, core.ErrNotASource) {
		t.Errorf("remove before add: want ErrNotASource, got %v", err)
	}
	bus.AddSource(gnd)
	if err := bus.RemoveSource(gnd); err != nil {
		t.Errorf("remove member: unexpected error %v", err)
	}
	if err := bus.RemoveSource(gnd); !errors.Is(err, core.ErrNotASource) {
		t.Errorf("double remove: want ErrNotASource, got %v", err)
	}
}

// TestConnectorRelaysUpstream checks that connectors expose the quantities
// and origins of whatever feeds them.
func TestConnectorRelaysUpstream(t *testing.T) {
	gnd := core.NewInstrumentModuleNode("gnd",
		core.WithQuantities(core.Settable("ground", "V")),
		core.AsEligibleSource(),
	)
	bus := core.NewConnectorNode("bus")

	if got := bus.Quantities(); len(got) != 0 {
		t.Fatalf("unfed connector should expose no quantities, got %d", len(got))
	}

	bus.AddSource(gnd)
	qs := bus.Quantities()
	if len(qs) != 1 || qs[0].Name() != "ground" || qs[0].Unit() != "V" {
		t.Errorf("fed connector quantities = %v; want the ground quantity", qs)
	}
	up := bus.Upstream()
	if len(up) != 1 || up[0].Name() != "gnd" {
		t.Errorf("Upstream = %v; want [gnd]", up)
	}
}

// TestUpstreamFlattensChains checks transitive upstream resolution across
// chained connectors, sorted by name.
func TestUpstreamFlattensChains(t *testing.T) {
	a := core.NewInstrumentModuleNode("src.a")
	b := core.NewInstrumentModuleNode("src.b")
	mid := core.NewConnectorNode("mid")
	end := core.NewConnectorNode("end")

	mid.AddSource(b)
	mid.AddSource(a)
	end.AddSource(mid)

	up := end.Upstream()
	if len(up) != 2 || up[0].Name() != "src.a" || up[1].Name() != "src.b" {
		t.Errorf("Upstream = %v; want [src.a src.b]", up)
	}
}

// TestModuleCapabilities checks the source capability flags.
func TestModuleCapabilities(t *testing.T) {
	plain := core.NewInstrumentModuleNode("plain")
	if plain.EligibleSource() || plain.ActivatesToSource() {
		t.Error("plain module should carry no capability flags")
	}

	src := core.NewInstrumentModuleNode("src", core.AsEligibleSource(), core.AsDynamicSource())
	if !src.EligibleSource() {
		t.Error("AsEligibleSource not applied")
	}
	if !src.ActivatesToSource() {
		t.Error("AsDynamicSource not applied")
	}

	// A module originates its own signal.
	if up := src.Upstream(); len(up) != 1 || up[0] != core.Node(src) {
		t.Errorf("module Upstream = %v; want itself", up)
	}
}

// TestEndpointParent checks parent bookkeeping and the empty quantity set.
func TestEndpointParent(t *testing.T) {
	sample := core.NewInstrumentModuleNode("sample")
	gate := core.NewEndpointNode("sample.gate", sample)
	if gate.Parent() != core.Node(sample) {
		t.Error("endpoint parent not retained")
	}
	if gate.Quantities() != nil {
		t.Error("endpoint should expose no quantities")
	}
}
