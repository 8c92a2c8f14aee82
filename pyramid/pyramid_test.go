package pyramid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eldruin/geomap/geompoly"
	"github.com/eldruin/geomap/planarmap"
	"github.com/eldruin/geomap/pyramid"
)

func chainMap(t *testing.T) *planarmap.Map {
	t.Helper()
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
	require.NoError(t, err)
	return m
}

func mergeMidDart(t *testing.T, m *planarmap.Map) planarmap.Dart {
	t.Helper()
	mid, err := m.Node(2)
	require.NoError(t, err)
	dart, err := mid.Anchor()
	require.NoError(t, err)
	return dart
}

func TestGotoLevelRoundTrip(t *testing.T) {
	require := require.New(t)

	m := chainMap(t)
	p := pyramid.New(m)
	dart := mergeMidDart(t, m)

	require.NoError(p.MergeEdges(dart))
	require.Equal(1, p.CurrentLevel())
	require.Equal(1, p.Map().EdgeCount(), "want 1 edge after merge")

	require.NoError(p.GotoLevel(0))
	require.Equal(2, p.Map().EdgeCount(), "want 2 edges after rollback to level 0")

	require.NoError(p.GotoLevel(1))
	require.Equal(1, p.Map().EdgeCount(), "want 1 edge after replaying to level 1")
}

func TestGetLevelDoesNotDisturbWorkingMap(t *testing.T) {
	require := require.New(t)

	m := chainMap(t)
	p := pyramid.New(m)
	dart := mergeMidDart(t, m)
	require.NoError(p.MergeEdges(dart))

	snap, err := p.GetLevel(0)
	require.NoError(err)
	require.Equal(2, snap.EdgeCount(), "snapshot should see pre-merge state")
	require.Equal(1, p.Map().EdgeCount(), "working map must not be disturbed by GetLevel")
}

func TestCompositeFlattensSingleOp(t *testing.T) {
	require := require.New(t)

	m := chainMap(t)
	p := pyramid.New(m)
	dart := mergeMidDart(t, m)

	require.NoError(p.BeginComposite())
	require.NoError(p.MergeEdges(dart))
	require.NoError(p.EndComposite())
	require.Equal(1, p.CurrentLevel(), "single-op composite should flatten")
	require.Equal(pyramid.KindMergeEdges, p.History()[0].Kind, "single-op composite should be stored as its primitive")
}

func TestAbortCompositeRollsBack(t *testing.T) {
	require := require.New(t)

	m := chainMap(t)
	p := pyramid.New(m)
	dart := mergeMidDart(t, m)

	require.NoError(p.BeginComposite())
	require.NoError(p.MergeEdges(dart))
	require.NoError(p.AbortComposite())
	require.Equal(0, p.CurrentLevel())
	require.Equal(2, p.Map().EdgeCount(), "abort should restore pre-composite state")
}

func triangleWithPendant(t *testing.T) *planarmap.Map {
	t.Helper()
	pts := []geompoly.Point{{}, {X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}, {X: 12, Y: 0}}
	present := []bool{false, true, true, true, true}
	edges := []planarmap.EdgeSpec{
		{},
		{Present: true, StartNode: 1, EndNode: 2, Points: []geompoly.Point{pts[1], pts[2]}},
		{Present: true, StartNode: 2, EndNode: 3, Points: []geompoly.Point{pts[2], pts[3]}},
		{Present: true, StartNode: 3, EndNode: 1, Points: []geompoly.Point{pts[3], pts[1]}},
		{Present: true, StartNode: 2, EndNode: 4, Points: []geompoly.Point{pts[2], pts[4]}},
	}
	m, err := planarmap.NewFromDescription(&planarmap.Description{
		NodePositions: pts, NodePresent: present, Edges: edges,
		ImageWidth: 12, ImageHeight: 8,
	})
	require.NoError(t, err)
	return m
}

func TestRemoveEdgeReplaysAcrossLevels(t *testing.T) {
	require := require.New(t)

	m := triangleWithPendant(t)
	p := pyramid.New(m)

	edge4, err := p.Map().Edge(4)
	require.NoError(err)
	require.NoError(p.RemoveEdge(edge4.Dart()))
	require.Equal(1, p.CurrentLevel())
	require.Equal(3, p.Map().NodeCount(), "removeEdge on the pendant's bridge should remove node 4 too")

	require.NoError(p.GotoLevel(0))
	require.Equal(4, p.Map().NodeCount())

	require.NoError(p.GotoLevel(1))
	require.Equal(3, p.Map().NodeCount())
}

func TestRemoveEdgeWithEndsReplaysAcrossLevels(t *testing.T) {
	require := require.New(t)

	m := triangleWithPendant(t)
	p := pyramid.New(m)

	edge1, err := p.Map().Edge(1)
	require.NoError(err)
	require.NoError(p.RemoveEdgeWithEnds(edge1.Dart()))
	require.Equal(1, p.CurrentLevel())
	require.Equal(1, p.Map().FaceCount(), "removing the non-bridge edge merges the triangle into the infinite face")

	require.NoError(p.GotoLevel(0))
	require.Equal(2, p.Map().FaceCount())

	require.NoError(p.GotoLevel(1))
	require.Equal(1, p.Map().FaceCount())
}

func TestLevelCountAndHistoryTrackCommittedOps(t *testing.T) {
	require := require.New(t)

	m := chainMap(t)
	p := pyramid.New(m)
	require.Equal(1, p.LevelCount())
	require.Empty(p.History())

	dart := mergeMidDart(t, m)
	require.NoError(p.MergeEdges(dart))
	require.Equal(2, p.LevelCount())

	hist := p.History()
	require.Len(hist, 1)
	require.Equal(pyramid.KindMergeEdges, hist[0].Kind)

	hist[0].Kind = pyramid.KindRemoveIsolatedNode
	require.Equal(pyramid.KindMergeEdges, p.History()[0].Kind, "History() must return an independent copy")
}

func TestCutAboveTruncatesHistory(t *testing.T) {
	require := require.New(t)

	m := chainMap(t)
	p := pyramid.New(m)
	dart := mergeMidDart(t, m)
	require.NoError(p.MergeEdges(dart))

	require.NoError(p.CutAbove(0))
	require.Equal(0, p.MaxLevel())
	require.Equal(2, p.Map().EdgeCount(), "want 2 edges after CutAbove(0)")

	_, err := p.GetLevel(1)
	require.Error(err, "expected GetLevel(1) to fail after CutAbove(0)")
}
