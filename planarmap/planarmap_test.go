package planarmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eldruin/geomap/geompoly"
	"github.com/eldruin/geomap/planarmap"
)

// triangleDescription builds the S1 scenario: three nodes at (0,0),
// (10,0), (5,8), joined by three straight edges, forming one finite
// triangular face and the infinite face around it.
func triangleDescription() *planarmap.Description {
	pts := []geompoly.Point{{}, {X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}
	present := []bool{false, true, true, true}

	edges := []planarmap.EdgeSpec{
		{},
		{Present: true, StartNode: 1, EndNode: 2, Points: []geompoly.Point{pts[1], pts[2]}},
		{Present: true, StartNode: 2, EndNode: 3, Points: []geompoly.Point{pts[2], pts[3]}},
		{Present: true, StartNode: 3, EndNode: 1, Points: []geompoly.Point{pts[3], pts[1]}},
	}
	return &planarmap.Description{
		NodePositions: pts,
		NodePresent:   present,
		Edges:         edges,
		ImageWidth:    10,
		ImageHeight:   8,
	}
}

func TestNewFromDescriptionTriangle(t *testing.T) {
	require := require.New(t)

	m, err := planarmap.NewFromDescription(triangleDescription())
	require.NoError(err)
	require.Equal(3, m.NodeCount())
	require.Equal(3, m.EdgeCount())
	require.Equal(2, m.FaceCount(), "want finite + infinite face")
	require.NoError(m.CheckConsistency())

	infinite, err := m.Face(0)
	require.NoError(err)
	require.True(infinite.IsInfinite(), "label 0 must always be the infinite face")

	var finite *planarmap.Face
	for _, l := range m.FaceLabels() {
		f, _ := m.Face(l)
		if !f.IsInfinite() {
			finite = f
			require.NotEqual(planarmap.CellLabel(0), f.Label(), "finite face must not be label 0")
		}
	}
	require.NotNil(finite, "no finite face discovered")

	area := finite.Area()
	if area < 0 {
		area = -area
	}
	require.Equal(40.0, area)
}

func TestMergeFacesTriangleSurvivesAsInfinite(t *testing.T) {
	require := require.New(t)

	m, err := planarmap.NewFromDescription(triangleDescription())
	require.NoError(err)

	edge, err := m.Edge(1)
	require.NoError(err)
	require.False(edge.IsBridge(), "edge 1 separates the finite and infinite faces, it is not a bridge")

	survivor, err := m.MergeFaces(edge.Dart())
	require.NoError(err)
	require.Equal(planarmap.CellLabel(0), survivor, "the infinite face must always survive mergeFaces")
	require.Equal(1, m.FaceCount())
	require.NoError(m.CheckConsistency())

	f, err := m.Face(0)
	require.NoError(err)
	area := f.Area()
	if area < 0 {
		area = -area
	}
	require.Equal(40.0, area, "the merged infinite face should still carry the triangle's boundary area")
}

func TestMergeFacesRejectsBridge(t *testing.T) {
	require := require.New(t)

	desc := triangleDescription()
	desc.NodePositions = append(desc.NodePositions, geompoly.Point{X: 12, Y: 0})
	desc.NodePresent = append(desc.NodePresent, true)
	desc.Edges = append(desc.Edges, planarmap.EdgeSpec{
		Present: true, StartNode: 2, EndNode: 4,
		Points: []geompoly.Point{{X: 10, Y: 0}, {X: 12, Y: 0}},
	})
	m, err := planarmap.NewFromDescription(desc)
	require.NoError(err)

	edge4, err := m.Edge(4)
	require.NoError(err)
	require.True(edge4.IsBridge())

	_, err = m.MergeFaces(edge4.Dart())
	require.Error(err, "mergeFaces on a bridge must fail")
}

func TestRemoveBridgeRejectsNonBridge(t *testing.T) {
	require := require.New(t)

	m, err := planarmap.NewFromDescription(triangleDescription())
	require.NoError(err)

	edge, err := m.Edge(1)
	require.NoError(err)
	require.False(edge.IsBridge())
	require.Error(m.RemoveBridge(edge.Dart()), "removeBridge on a non-bridge must fail")
}

func TestRemoveBridgePendantRemovesNodeAndPreservesAnchorCount(t *testing.T) {
	require := require.New(t)

	desc := triangleDescription()
	desc.NodePositions = append(desc.NodePositions, geompoly.Point{X: 12, Y: 0})
	desc.NodePresent = append(desc.NodePresent, true)
	desc.Edges = append(desc.Edges, planarmap.EdgeSpec{
		Present: true, StartNode: 2, EndNode: 4,
		Points: []geompoly.Point{{X: 10, Y: 0}, {X: 12, Y: 0}},
	})

	m, err := planarmap.NewFromDescription(desc)
	require.NoError(err)
	require.Equal(4, m.NodeCount())
	require.Equal(4, m.EdgeCount())

	infiniteBefore, err := m.Face(0)
	require.NoError(err)
	anchorsBefore := len(infiniteBefore.Anchors())

	edge4, err := m.Edge(4)
	require.NoError(err)
	require.True(edge4.IsBridge())

	require.NoError(m.RemoveBridge(edge4.Dart()))
	require.Equal(3, m.NodeCount(), "pendant node 4 should be removed along with its bridge")
	require.Equal(3, m.EdgeCount())
	require.Equal(2, m.FaceCount(), "removing a bridge never changes the face count")

	_, err = m.Node(4)
	require.Error(err, "node 4 should no longer be live")

	infiniteAfter, err := m.Face(0)
	require.NoError(err)
	require.Len(infiniteAfter.Anchors(), anchorsBefore, "bridge removal must not change the boundary's anchor cardinality")
	require.NoError(m.CheckConsistency())
}

func TestRemoveEdgeDispatchesByBridgeness(t *testing.T) {
	require := require.New(t)

	desc := triangleDescription()
	desc.NodePositions = append(desc.NodePositions, geompoly.Point{X: 12, Y: 0})
	desc.NodePresent = append(desc.NodePresent, true)
	desc.Edges = append(desc.Edges, planarmap.EdgeSpec{
		Present: true, StartNode: 2, EndNode: 4,
		Points: []geompoly.Point{{X: 10, Y: 0}, {X: 12, Y: 0}},
	})
	m, err := planarmap.NewFromDescription(desc)
	require.NoError(err)

	edge4, err := m.Edge(4)
	require.NoError(err)
	require.NoError(m.RemoveEdge(edge4.Dart()), "removeEdge should route a bridge to removeBridge")
	require.Equal(3, m.NodeCount())

	edge1, err := m.Edge(1)
	require.NoError(err)
	require.NoError(m.RemoveEdge(edge1.Dart()), "removeEdge should route a non-bridge to mergeFaces")
	require.Equal(1, m.FaceCount())
}

func TestMergeEdgesRejectsWrongDegree(t *testing.T) {
	require := require.New(t)

	desc := triangleDescription()
	desc.NodePositions = append(desc.NodePositions, geompoly.Point{X: 12, Y: 0})
	desc.NodePresent = append(desc.NodePresent, true)
	desc.Edges = append(desc.Edges, planarmap.EdgeSpec{
		Present: true, StartNode: 2, EndNode: 4,
		Points: []geompoly.Point{{X: 10, Y: 0}, {X: 12, Y: 0}},
	})
	m, err := planarmap.NewFromDescription(desc)
	require.NoError(err)

	node2, err := m.Node(2)
	require.NoError(err)
	require.Equal(3, node2.Degree(), "node 2 now carries three edges")
	dart, err := node2.Anchor()
	require.NoError(err)

	_, err = m.MergeEdges(dart)
	require.Error(err, "mergeEdges on a node of degree != 2 must fail")
}

func TestRemoveEdgeWithEndsSelfLoopRemovesOneNode(t *testing.T) {
	require := require.New(t)

	m := planarmap.New()
	a := m.AddNode(geompoly.Point{X: 0, Y: 0})
	loop := []geompoly.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}
	_, err := m.AddEdge(a, a, loop)
	require.NoError(err)
	m.SortEdgesDirectly()
	require.NoError(m.InitContours())
	require.NoError(m.EmbedFaces())
	require.Equal(1, m.NodeCount())

	edge1, err := m.Edge(1)
	require.NoError(err)
	require.NoError(m.RemoveEdgeWithEnds(edge1.Dart()))
	require.Equal(0, m.NodeCount(), "a self-loop's two ends are the same node: exactly one node is removed")
	require.Equal(0, m.EdgeCount())
}

func TestRemoveIsolatedNode(t *testing.T) {
	require := require.New(t)

	m := planarmap.New()
	label := m.AddNode(geompoly.Point{X: 1, Y: 1})
	require.NoError(m.RemoveIsolatedNode(label))
	require.Equal(0, m.NodeCount())

	_, err := m.Node(label)
	require.Error(err, "expected removed node to be invalid")
}

func TestRemoveIsolatedNodePreconditionViolated(t *testing.T) {
	require := require.New(t)

	m := planarmap.New()
	a := m.AddNode(geompoly.Point{X: 0, Y: 0})
	b := m.AddNode(geompoly.Point{X: 1, Y: 0})
	_, err := m.AddEdge(a, b, []geompoly.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	require.NoError(err)

	err = m.RemoveIsolatedNode(a)
	require.Error(err, "expected precondition violation removing a non-isolated node")
}

func TestMergeEdgesChain(t *testing.T) {
	require := require.New(t)

	pts := []geompoly.Point{{}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	present := []bool{false, true, true, true}
	edges := []planarmap.EdgeSpec{
		{},
		{Present: true, StartNode: 1, EndNode: 2, Points: []geompoly.Point{pts[1], pts[2]}},
		{Present: true, StartNode: 2, EndNode: 3, Points: []geompoly.Point{pts[2], pts[3]}},
	}
	m, err := planarmap.NewFromDescription(&planarmap.Description{
		NodePositions: pts, NodePresent: present, Edges: edges,
	})
	require.NoError(err)

	midNode, err := m.Node(2)
	require.NoError(err)
	dart, err := midNode.Anchor()
	require.NoError(err)

	survivor, err := m.MergeEdges(dart)
	require.NoError(err)
	require.Equal(1, m.EdgeCount())
	require.Equal(2, m.NodeCount())

	pts2 := survivor.Edge().Points()
	ends := map[geompoly.Point]bool{pts2[0]: true, pts2[len(pts2)-1]: true}
	require.True(ends[geompoly.Point{X: 0, Y: 0}], "merged edge should connect (0,0): %v", pts2)
	require.True(ends[geompoly.Point{X: 2, Y: 0}], "merged edge should connect (2,0): %v", pts2)
	require.NoError(m.CheckConsistency())
}

// TestMergeEdgesPreservesFaceSidesAndAnchor merges the triangle's two edges
// at node 2, deliberately starting from edge 2's dart so that the edge
// mergeEdges deletes (edge 1) is the one every preliminary face anchored
// on during construction: InitContours always seeds both of a contour's
// faces from the lowest-labeled edge it first walks. This exercises the
// finite/infinite face-label bookkeeping and the anchor advancement past
// the deleted edge with two distinct faces on the edge's sides, which the
// chain-shaped TestMergeEdgesChain (both sides one zero-area face) cannot
// reach.
func TestMergeEdgesPreservesFaceSidesAndAnchor(t *testing.T) {
	require := require.New(t)

	m, err := planarmap.NewFromDescription(triangleDescription())
	require.NoError(err)
	require.Equal(2, m.FaceCount())

	edge2, err := m.Edge(2)
	require.NoError(err)
	dart := edge2.Dart()
	require.Equal(planarmap.CellLabel(2), dart.StartNode().Label(), "edge 2 must start at node 2 to drive the merge from there")

	survivor, err := m.MergeEdges(dart)
	require.NoError(err)
	require.Equal(2, m.EdgeCount())
	require.Equal(2, m.NodeCount())
	require.Equal(2, m.FaceCount(), "merging two edges must not change the face count")
	require.False(survivor.Edge().IsBridge(), "the triangle's finite and infinite faces must stay distinct across the merge")
	require.NoError(m.CheckConsistency())
}
