package planarmap

import (
	"fmt"

	"github.com/eldruin/geomap/geompoly"
)

// RemoveIsolatedNode deletes a degree-0 node. It is the only Euler
// operator that does not touch any dart.
func (m *Map) RemoveIsolatedNode(nodeLabel CellLabel) error {
	node, err := m.Node(nodeLabel)
	if err != nil {
		return fmt.Errorf("removeIsolatedNode: %w", err)
	}
	if node.Degree() != 0 {
		return fmt.Errorf("removeIsolatedNode: node %d has nonzero degree: %w", nodeLabel, ErrPreconditionViolated)
	}
	if !m.fireRemoveNodePre(m, nodeLabel) {
		return ErrHookVetoed
	}

	node.live = false
	m.nodeCount--
	pos := node.position
	m.nodeIndex.RemoveFunc(pos.X, pos.Y, 1e-9, func(l CellLabel) bool { return l == nodeLabel })

	m.fireRemoveNodePost(m, nodeLabel)
	return nil
}

// removeEndIfIsolated removes nodeLabel if it is still live and has
// degree 0. A hook veto or an already-removed node is silently ignored:
// this is cleanup the caller does not depend on succeeding.
func (m *Map) removeEndIfIsolated(nodeLabel CellLabel) {
	n := m.node(nodeLabel)
	if n == nil || !n.live || n.Degree() != 0 {
		return
	}
	_ = m.RemoveIsolatedNode(nodeLabel)
}

// MergeEdges merges the two edges incident to dart's start node (which
// must have degree exactly 2, and the two incident darts must belong to
// distinct edges) into a single edge, removing the node. Returns the
// surviving edge's positive dart, oriented away from the node that used
// to be dart's other endpoint.
func (m *Map) MergeEdges(dart Dart) (Dart, error) {
	node := dart.StartNode()
	if node.Degree() != 2 {
		return Dart{}, fmt.Errorf("mergeEdges: node %d has degree %d, want 2: %w", node.label, node.Degree(), ErrPreconditionViolated)
	}
	other, err := dart.Sigma(1)
	if err != nil {
		return Dart{}, fmt.Errorf("mergeEdges: %w", err)
	}
	if other.EdgeLabel() == dart.EdgeLabel() {
		return Dart{}, fmt.Errorf("mergeEdges: node %d carries a self-loop, not mergeable: %w", node.label, ErrPreconditionViolated)
	}
	e1, e2 := dart.Edge(), other.Edge()
	if e1.protection != 0 || e2.protection != 0 {
		return Dart{}, fmt.Errorf("mergeEdges: protected edge: %w", ErrPreconditionViolated)
	}
	if !m.fireMergeEdgesPre(m, dart) {
		return Dart{}, ErrHookVetoed
	}

	origE1Points := e1.poly.Points()
	origE2Points := e2.poly.Points()

	far1 := dart.Alpha() // points from e1's far endpoint back toward node
	farNode1 := far1.StartNode()
	farNode2 := other.EndNode()

	n1, n2 := far1.Len(), other.Len()
	merged := make([]geompoly.Point, 0, n1+n2-1)
	for i := 0; i < n1; i++ {
		merged = append(merged, far1.At(i))
	}
	for i := 1; i < n2; i++ {
		merged = append(merged, other.At(i))
	}

	// Capture the faces adjacent to the edge being deleted, and the phi
	// step past it, before anything is mutated: once e2 is uninitialized
	// and node's darts are spliced away, neither can be computed anymore.
	otherAlpha := other.Alpha()
	otherLeftFace, otherRightFace := other.LeftFace(), other.RightFace()
	otherRepl, otherOK := safeNextPhi(other, e2.label)
	otherAlphaRepl, otherAlphaOK := safeNextPhi(otherAlpha, e2.label)

	survivingLabel := e1.label
	newLeft, newRight := far1.LeftFaceLabel(), far1.RightFaceLabel()
	e1.startNodeLabel = farNode1.label
	e1.endNodeLabel = farNode2.label
	e1.leftFaceLabel = newLeft
	e1.rightFaceLabel = newRight
	e1.poly = geompoly.NewPolygon(merged)

	replaceDartInNode(farNode1, far1.signedLabel, int64(survivingLabel))
	replaceDartInNode(farNode2, otherAlpha.signedLabel, -int64(survivingLabel))

	advanceAnchorPastEdge(otherLeftFace, other, otherRepl, otherOK)
	advanceAnchorPastEdge(otherRightFace, otherAlpha, otherAlphaRepl, otherAlphaOK)
	// If dart ran along e1's stored direction, e1 is now reversed: flip every
	// anchor on e1 (including the ones just advanced onto it) to keep its side.
	if dart.Positive() {
		for fi, f := range [2]*Face{otherLeftFace, otherRightFace} {
			if f == nil || (fi == 1 && f == otherLeftFace) {
				continue
			}
			for i, a := range f.anchors {
				if a.EdgeLabel() == survivingLabel {
					f.anchors[i] = a.Alpha()
				}
			}
		}
	}

	e2.live = false
	m.edgeCount--
	node.live = false
	m.nodeCount--
	pos := node.position
	m.nodeIndex.RemoveFunc(pos.X, pos.Y, 1e-9, func(l CellLabel) bool { return l == node.label })

	if lf := m.face(e1.leftFaceLabel); lf != nil {
		lf.invalidateCaches()
	}
	if rf := m.face(e1.rightFaceLabel); rf != nil {
		rf.invalidateCaches()
	}

	if sink := m.pixelSink(); sink != nil {
		for _, pc := range rasterizeLine(origE1Points) {
			sink.ClearPixel(pc.X, pc.Y)
		}
		for _, pc := range rasterizeLine(origE2Points) {
			sink.ClearPixel(pc.X, pc.Y)
		}
		for _, pc := range rasterizeLine(merged) {
			sink.ClearPixel(pc.X, pc.Y)
		}
	}

	m.fireMergeEdgesPost(m, survivingLabel)
	return e1.Dart(), nil
}

// RemoveBridge deletes an edge whose two sides already belong to the same
// face (IsBridge()), splitting that face's single boundary component that
// contained the edge into two sub-anchors, one per side. Either endpoint
// node left isolated by the removal is also removed.
func (m *Map) RemoveBridge(dart Dart) error {
	e := dart.Edge()
	if !e.IsBridge() {
		return fmt.Errorf("removeBridge: edge %d is not a bridge: %w", e.label, ErrPreconditionViolated)
	}
	if e.protection != 0 {
		return fmt.Errorf("removeBridge: protected edge: %w", ErrPreconditionViolated)
	}
	if !m.fireRemoveBridgePre(m, dart) {
		return ErrHookVetoed
	}

	faceLabel := dart.LeftFaceLabel()
	face := m.face(faceLabel)
	alpha := dart.Alpha()
	edgePoints := e.Points()
	startLabel, endLabel := dart.StartNode().label, dart.EndNode().label

	repl1, ok1 := safeNextPhi(dart, e.label)
	repl2, ok2 := safeNextPhi(alpha, e.label)
	face.anchors = splitAnchor(face.anchors, e.label, repl1, ok1, repl2, ok2)
	face.invalidateCaches()

	removeDartFromNode(dart.StartNode(), dart.signedLabel)
	removeDartFromNode(dart.EndNode(), alpha.signedLabel)

	e.live = false
	m.edgeCount--

	var reclaimed []PixelCoord
	sink := m.pixelSink()
	if sink != nil {
		for _, pc := range rasterizeLine(edgePoints) {
			if lbl, ok := sink.PixelAt(pc.X, pc.Y); !ok || lbl != faceLabel {
				sink.SetPixel(pc.X, pc.Y, faceLabel)
				reclaimed = append(reclaimed, pc)
			}
		}
		face.pixelArea += len(reclaimed)
	}

	m.removeEndIfIsolated(startLabel)
	m.removeEndIfIsolated(endLabel)

	m.fireRemoveBridgePost(m, faceLabel)
	if sink != nil {
		m.fireAssociatePixels(m, faceLabel, reclaimed)
	}
	return nil
}

// MergeFaces deletes an edge whose two sides belong to different faces
// (i.e. not a bridge), merging those two faces into one. The larger-area
// side survives, unless one side is the infinite face, which always
// survives regardless of area. Returns the surviving face's label; the
// other face's label remains resolvable to it through the map's
// face-label LUT. Either endpoint node left isolated by the removal is
// also removed.
func (m *Map) MergeFaces(dart Dart) (CellLabel, error) {
	e := dart.Edge()
	if e.IsBridge() {
		return 0, fmt.Errorf("mergeFaces: edge %d is a bridge, use removeBridge: %w", e.label, ErrPreconditionViolated)
	}
	if e.protection != 0 {
		return 0, fmt.Errorf("mergeFaces: protected edge: %w", ErrPreconditionViolated)
	}
	if dart.LeftFace().protection != 0 || dart.RightFace().protection != 0 {
		return 0, fmt.Errorf("mergeFaces: protected face: %w", ErrPreconditionViolated)
	}
	if !m.fireMergeFacesPre(m, dart) {
		return 0, ErrHookVetoed
	}

	d := chooseMergeFacesSurvivor(dart)
	survivingLabel := d.LeftFaceLabel()
	dyingLabel := d.RightFaceLabel()
	survivingFace := m.face(survivingLabel)
	dyingFace := m.face(dyingLabel)
	alpha := d.Alpha()
	edgePoints := e.Points()
	startLabel, endLabel := d.StartNode().label, d.EndNode().label

	survReplacement, survOK := safeNextPhi(d, e.label)
	dyingReplacement, dyingOK := safeNextPhi(alpha, e.label)
	if !survOK {
		survReplacement, survOK = dyingReplacement, dyingOK
	}

	// d's and alpha's contours join into one: only the survivor's anchor for it stays.
	alphaContour := map[DartLabel]bool{}
	for c := alpha; !alphaContour[c.signedLabel]; _ = c.NextPhi() {
		alphaContour[c.signedLabel] = true
	}
	merged := spliceAnchors(survivingFace.anchors, e.label, survReplacement, survOK)
	for _, a := range dyingFace.anchors {
		if !alphaContour[a.signedLabel] {
			merged = append(merged, a)
		}
	}
	survivingFace.anchors = merged
	survivingFace.pixelArea += dyingFace.pixelArea
	survivingFace.invalidateCaches()

	removeDartFromNode(d.StartNode(), d.signedLabel)
	removeDartFromNode(d.EndNode(), alpha.signedLabel)

	e.live = false
	m.edgeCount--

	dyingFace.live = false
	dyingFace.anchors = nil
	m.faceCount--
	if m.faceLUT != nil {
		_ = m.faceLUT.Relabel(dyingLabel, survivingLabel)
	}

	var reclaimed []PixelCoord
	sink := m.pixelSink()
	if sink != nil {
		for _, pc := range rasterizeLine(edgePoints) {
			if lbl, ok := sink.PixelAt(pc.X, pc.Y); !ok || lbl != survivingLabel {
				sink.SetPixel(pc.X, pc.Y, survivingLabel)
				reclaimed = append(reclaimed, pc)
			}
		}
		survivingFace.pixelArea += len(reclaimed)
	}

	m.removeEndIfIsolated(startLabel)
	m.removeEndIfIsolated(endLabel)

	m.fireMergeFacesPost(m, survivingLabel)
	if sink != nil {
		m.fireAssociatePixels(m, survivingLabel, reclaimed)
	}
	return survivingLabel, nil
}

// chooseMergeFacesSurvivor reorients dart so that its left face is the one
// mergeFaces should keep: the larger-|area| side, unless the other side is
// the infinite face, in which case the infinite face always survives.
func chooseMergeFacesSurvivor(dart Dart) Dart {
	d := dart
	if absArea(d.LeftFace()) < absArea(d.RightFace()) {
		d = d.Alpha()
	}
	if d.RightFaceLabel() == 0 {
		d = d.Alpha()
	}
	return d
}

func absArea(f *Face) float64 {
	a := f.Area()
	if a < 0 {
		return -a
	}
	return a
}

// RemoveEdge removes dart's edge via RemoveBridge or MergeFaces, whichever
// applies; both already remove any endpoint node the removal leaves
// isolated.
func (m *Map) RemoveEdge(dart Dart) error {
	if dart.Edge().IsBridge() {
		return m.RemoveBridge(dart)
	}
	_, err := m.MergeFaces(dart)
	return err
}

// RemoveEdgeWithEnds removes dart's edge via RemoveEdge. Named separately
// to mirror the operation union's RemoveEdgeWithEnds variant; RemoveBridge
// and MergeFaces already remove any endpoint node the removal leaves
// isolated, so this is equivalent to RemoveEdge plus a defensive sweep in
// case either end survived (e.g. a hook vetoed its removal).
func (m *Map) RemoveEdgeWithEnds(dart Dart) error {
	n1, n2 := dart.StartNode().label, dart.EndNode().label
	if err := m.RemoveEdge(dart); err != nil {
		return err
	}
	for _, nl := range [2]CellLabel{n1, n2} {
		m.removeEndIfIsolated(nl)
	}
	return nil
}

func safeNextPhi(d Dart, excludeEdge CellLabel) (Dart, bool) {
	nd := d
	if err := nd.NextPhi(); err != nil {
		return Dart{}, false
	}
	if nd.EdgeLabel() == excludeEdge {
		return Dart{}, false
	}
	return nd, true
}

// advanceAnchorPastEdge replaces f's anchor entry matching old (by exact
// signed dart, since a face can be anchored on either of an edge's two
// darts) with repl, one phi step forward — or drops it if ok is false,
// the degenerate case where that step would land back on the edge being
// deleted. f may be nil (a face with no live anchor on this side, e.g. a
// dart whose orbit never seeded a preliminary anchor).
func advanceAnchorPastEdge(f *Face, old, repl Dart, ok bool) {
	if f == nil {
		return
	}
	for i, a := range f.anchors {
		if a.signedLabel != old.signedLabel {
			continue
		}
		if ok {
			f.anchors[i] = repl
		} else {
			f.anchors = append(f.anchors[:i], f.anchors[i+1:]...)
		}
		return
	}
}

// spliceAnchors returns anchors with every entry naming edgeLabel either
// replaced by replacement (if ok) or dropped (if !ok).
func spliceAnchors(anchors []Dart, edgeLabel CellLabel, replacement Dart, ok bool) []Dart {
	out := make([]Dart, 0, len(anchors))
	for _, a := range anchors {
		if a.EdgeLabel() == edgeLabel {
			if ok {
				out = append(out, replacement)
			}
			continue
		}
		out = append(out, a)
	}
	return out
}

// splitAnchor replaces anchors' single entry naming edgeLabel with up to
// two replacements: removeBridge turns one boundary component into two. A
// side whose component collapsed to an isolated node (ok false) is simply
// dropped rather than replaced.
func splitAnchor(anchors []Dart, edgeLabel CellLabel, repl1 Dart, ok1 bool, repl2 Dart, ok2 bool) []Dart {
	out := make([]Dart, 0, len(anchors)+1)
	for _, a := range anchors {
		if a.EdgeLabel() == edgeLabel {
			if ok1 {
				out = append(out, repl1)
			}
			if ok2 {
				out = append(out, repl2)
			}
			continue
		}
		out = append(out, a)
	}
	return out
}

func removeDartFromNode(n *Node, signedLabel DartLabel) {
	for i, l := range n.darts {
		if l == signedLabel {
			n.darts = append(n.darts[:i], n.darts[i+1:]...)
			return
		}
	}
}

func replaceDartInNode(n *Node, from, to DartLabel) {
	for i, l := range n.darts {
		if l == from {
			n.darts[i] = to
			return
		}
	}
}
