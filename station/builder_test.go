package station_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jenshnielsen/stationgraph/core"
	"github.com/jenshnielsen/stationgraph/station"
)

// TestBuildDeclaresTopology assembles a small station and checks the
// resulting nodes and edge statuses.
func TestBuildDeclaresTopology(t *testing.T) {
	g, err := station.Build(
		station.Ground("gnd", "V"),
		station.Connector("bus"),
		station.Module("dac.ch01", core.WithQuantities(core.Settable("voltage", "V"))),
		station.Wire("gnd", "bus"),
		station.Link("bus", "dac.ch01"),
	)
	require.NoError(t, err)

	require.IsType(t, &core.InstrumentModuleNode{}, g.Node("gnd"))
	require.IsType(t, &core.ConnectorNode{}, g.Node("bus"))

	// Wire is bidirectional, Link is not.
	require.Equal(t, core.EdgeInactiveElectrical, g.Edge(core.EdgeId{From: "gnd", To: "bus"}).Status())
	require.Equal(t, core.EdgeInactiveElectrical, g.Edge(core.EdgeId{From: "bus", To: "gnd"}).Status())
	require.NotNil(t, g.Edge(core.EdgeId{From: "bus", To: "dac.ch01"}))
	require.Nil(t, g.Edge(core.EdgeId{From: "dac.ch01", To: "bus"}))
}

// TestConstantSources declares eligible sources with the stock quantities.
func TestConstantSources(t *testing.T) {
	g, err := station.Build(
		station.Ground("gnd", "V"),
		station.Float("flt", "V"),
		station.HighZ("hz", "V"),
	)
	require.NoError(t, err)

	for id, quantity := range map[core.NodeId]string{"gnd": "ground", "flt": "float", "hz": "highz"} {
		node := g.Node(id)
		src, ok := node.(core.SourceNode)
		require.True(t, ok, string(id))
		require.True(t, src.EligibleSource(), string(id))
		qs := node.Quantities()
		require.Len(t, qs, 1, string(id))
		require.Equal(t, quantity, qs[0].Name())
		require.Equal(t, "V", qs[0].Unit())
		require.True(t, qs[0].Settable())
	}
}

// TestEndpointRecordsPartOf links the endpoint to its parent structurally.
func TestEndpointRecordsPartOf(t *testing.T) {
	g, err := station.Build(
		station.Module("sample"),
		station.Endpoint("sample.gate", "sample"),
	)
	require.NoError(t, err)

	edge := g.Edge(core.EdgeId{From: "sample.gate", To: "sample"})
	require.NotNil(t, edge)
	require.Equal(t, core.EdgeTypePartOf, edge.Type())

	gate, ok := g.Node("sample.gate").(*core.EndpointNode)
	require.True(t, ok)
	require.Equal(t, g.Node("sample"), gate.Parent())
}

// TestCapacitiveIsSymmetric declares the coupling in both directions.
func TestCapacitiveIsSymmetric(t *testing.T) {
	g, err := station.Build(
		station.Connector("a"),
		station.Connector("b"),
		station.Capacitive("a", "b"),
	)
	require.NoError(t, err)

	require.Equal(t, core.EdgeCapacitiveCoupling, g.Edge(core.EdgeId{From: "a", To: "b"}).Status())
	require.Equal(t, core.EdgeCapacitiveCoupling, g.Edge(core.EdgeId{From: "b", To: "a"}).Status())
}

// TestActiveLinkStartsActive models statically wired connections.
func TestActiveLinkStartsActive(t *testing.T) {
	g, err := station.Build(
		station.Ground("gnd", "V"),
		station.Connector("bus"),
		station.ActiveLink("gnd", "bus"),
	)
	require.NoError(t, err)
	require.True(t, g.Edge(core.EdgeId{From: "gnd", To: "bus"}).Status().Active())
}

// TestDeclarationErrors rejects duplicates and unknown references with the
// failing constructor's index in the message.
func TestDeclarationErrors(t *testing.T) {
	_, err := station.Build(
		station.Connector("bus"),
		station.Connector("bus"),
	)
	require.ErrorIs(t, err, station.ErrDuplicateNode)
	require.Contains(t, err.Error(), "constructor 1")

	_, err = station.Build(
		station.Connector("bus"),
		station.Wire("bus", "ghost"),
	)
	require.ErrorIs(t, err, station.ErrUnknownNode)

	_, err = station.Build(
		station.Endpoint("gate", "missing"),
	)
	require.ErrorIs(t, err, station.ErrUnknownNode)
}
