package router

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jenshnielsen/stationgraph/core"
)

// lineGraph builds gnd -> bus -> dev with inactive electrical edges.
func lineGraph(t *testing.T) *core.StationGraph {
	t.Helper()
	g := core.New()
	require.NoError(t, g.SetNode("gnd", core.NewInstrumentModuleNode("gnd",
		core.WithQuantities(core.Settable("ground", "V")),
		core.AsEligibleSource(),
	)))
	require.NoError(t, g.SetNode("bus", core.NewConnectorNode("bus")))
	require.NoError(t, g.SetNode("dev", core.NewInstrumentModuleNode("dev")))
	require.NoError(t, g.SetEdge(core.EdgeId{From: "gnd", To: "bus"}, core.NewElectricalEdge(false)))
	require.NoError(t, g.SetEdge(core.EdgeId{From: "bus", To: "dev"}, core.NewElectricalEdge(false)))

	return g
}

// TestNodeClaimRefcount verifies nodes stay active until the last claim goes.
func TestNodeClaimRefcount(t *testing.T) {
	a := NewAdapter(lineGraph(t))

	require.NoError(t, a.ActivateNode("bus", "t1"))
	require.NoError(t, a.ActivateNode("bus", "t2"))
	require.Equal(t, []core.NodeId{"t1", "t2"}, a.ClaimsOnNode("bus"))
	require.Equal(t, core.NodeActive, a.Graph().Node("bus").Status())

	require.NoError(t, a.DeactivateNode("bus", "t1"))
	require.Equal(t, core.NodeActive, a.Graph().Node("bus").Status())

	require.NoError(t, a.DeactivateNode("bus", "t2"))
	require.Equal(t, core.NodeInactive, a.Graph().Node("bus").Status())
	require.Empty(t, a.ClaimsOnNode("bus"))
}

// TestClaimUnderflow rejects releasing claims that were never taken.
func TestClaimUnderflow(t *testing.T) {
	a := NewAdapter(lineGraph(t))

	err := a.DeactivateNode("bus", "t1")
	require.ErrorIs(t, err, ErrClaimUnderflow)

	require.NoError(t, a.ActivateEdge(core.EdgeId{From: "gnd", To: "bus"}, "t1"))
	err = a.DeactivateEdge(core.EdgeId{From: "gnd", To: "bus"}, "t2")
	require.ErrorIs(t, err, ErrClaimUnderflow)
}

// TestEdgeClaimMaintainsSourceLink checks the upstream link follows the
// edge's claim lifecycle.
func TestEdgeClaimMaintainsSourceLink(t *testing.T) {
	a := NewAdapter(lineGraph(t))
	edge := core.EdgeId{From: "gnd", To: "bus"}

	require.NoError(t, a.ActivateEdge(edge, "t1"))
	require.NoError(t, a.ActivateEdge(edge, "t2"))
	require.True(t, a.Graph().Edge(edge).Status().Active())

	up := a.Graph().Node("bus").Upstream()
	require.Len(t, up, 1)
	require.Equal(t, "gnd", up[0].Name())

	require.NoError(t, a.DeactivateEdge(edge, "t1"))
	require.True(t, a.Graph().Edge(edge).Status().Active(), "edge should stay up for t2")

	require.NoError(t, a.DeactivateEdge(edge, "t2"))
	require.False(t, a.Graph().Edge(edge).Status().Active())
	require.Empty(t, a.Graph().Node("bus").Upstream())
}

// TestUnknownResources surface the core sentinels.
func TestUnknownResources(t *testing.T) {
	a := NewAdapter(lineGraph(t))

	require.ErrorIs(t, a.ActivateNode("ghost", "t1"), core.ErrNodeNotFound)
	require.ErrorIs(t, a.ActivateEdge(core.EdgeId{From: "bus", To: "gnd"}, "t1"), core.ErrEdgeNotFound)
}

// TestSearchGraphHidesForeignEdges checks per-terminal visibility: foreign
// edge claims hide the edge, node claims never hide the node.
func TestSearchGraphHidesForeignEdges(t *testing.T) {
	a := NewAdapter(lineGraph(t))
	edge := core.EdgeId{From: "gnd", To: "bus"}
	require.NoError(t, a.ActivateEdge(edge, "t1"))
	require.NoError(t, a.ActivateNode("bus", "t1"))

	mine := a.SearchGraphFor([]core.NodeId{"t1"})
	require.NotNil(t, mine.Edge(edge))

	other := a.SearchGraphFor([]core.NodeId{"t2"})
	require.Nil(t, other.Edge(edge))
	require.True(t, other.HasNode("bus"), "claimed nodes stay traversable")
	require.NotNil(t, other.Edge(core.EdgeId{From: "bus", To: "dev"}), "free edges stay visible")
}

// TestRoutedSubgraph contains exactly the edges claimed by the terminal.
func TestRoutedSubgraph(t *testing.T) {
	a := NewAdapter(lineGraph(t))
	first := core.EdgeId{From: "gnd", To: "bus"}
	second := core.EdgeId{From: "bus", To: "dev"}
	require.NoError(t, a.ActivateEdge(first, "dev"))
	require.NoError(t, a.ActivateEdge(second, "dev"))
	require.NoError(t, a.ActivateEdge(first, "other"))

	routed := a.RoutedSubgraphOf("dev")
	require.Equal(t, []core.EdgeId{second, first}, routed.EdgeIDs(), "sorted by (From, To)")

	other := a.RoutedSubgraphOf("other")
	require.Equal(t, []core.EdgeId{first}, other.EdgeIDs())
}
