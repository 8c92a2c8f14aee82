package planarmap

import (
	"math"

	"github.com/eldruin/geomap/geompoly"
)

// CellLabel identifies a node, edge or face within a Map. Node and Edge
// labels are 1-based (label 0 is the reserved "hole" slot of the
// construction input); Face label 0 is always the infinite face.
type CellLabel = uint32

// Uninitialized marks a not-yet-assigned face label during construction.
const Uninitialized CellLabel = math.MaxUint32

// DartLabel is a signed edge reference: its absolute value is an edge
// label, and its sign selects which of the edge's two darts it names.
// DartLabel 0 is the sentinel "no dart" value.
type DartLabel = int64

// Node is a 0-cell: a position plus the ordered sigma-orbit of darts
// (signed edge labels) leaving it in counter-clockwise order.
type Node struct {
	m        *Map
	label    CellLabel
	position geompoly.Point
	darts    []DartLabel
	live     bool
}

// Label returns the node's label.
func (n *Node) Label() CellLabel { return n.label }

// Position returns the node's embedding position.
func (n *Node) Position() geompoly.Point { return n.position }

// Degree returns the number of darts incident at the node (a self-loop
// contributes two).
func (n *Node) Degree() int { return len(n.darts) }

// Initialized reports whether the node is still live in its map.
func (n *Node) Initialized() bool { return n != nil && n.live }

// Darts returns the node's sigma-orbit (signed dart labels), read-only.
func (n *Node) Darts() []DartLabel { return n.darts }

// Anchor returns the node's first dart. Requires Degree() > 0.
func (n *Node) Anchor() (Dart, error) {
	if len(n.darts) == 0 {
		return Dart{}, ErrPreconditionViolated
	}
	return Dart{m: n.m, signedLabel: n.darts[0]}, nil
}

// SetPosition moves the node to p: it re-indexes the node in the map's
// spatial index and re-pins every incident edge's polygon endpoint
// (first point for a dart leaving the node, last point for one arriving)
// to p, keeping edge embeddings consistent with the new position. It does
// not touch face caches; callers that move a node after EmbedFaces has
// run should invalidate the affected faces themselves.
func (n *Node) SetPosition(p geompoly.Point) {
	old := n.position
	n.m.nodeIndex.RemoveFunc(old.X, old.Y, 1e-9, func(l CellLabel) bool { return l == n.label })
	n.position = p
	n.m.nodeIndex.Insert(p.X, p.Y, n.label)

	for _, sl := range n.darts {
		d := Dart{m: n.m, signedLabel: sl}
		e := d.Edge()
		if d.Positive() {
			e.poly.SetPoint(0, p)
		} else {
			e.poly.SetPoint(e.poly.Len()-1, p)
		}
	}
}

// Edge is a 1-cell: an oriented polygonal arc between two nodes, with the
// faces that lie to its left and right.
type Edge struct {
	m                             *Map
	label                         CellLabel
	startNodeLabel, endNodeLabel  CellLabel
	leftFaceLabel, rightFaceLabel CellLabel
	poly                          *geompoly.Polygon
	protection                    int
	live                          bool
}

// Label returns the edge's label.
func (e *Edge) Label() CellLabel { return e.label }

// Initialized reports whether the edge is still live in its map.
func (e *Edge) Initialized() bool { return e != nil && e.live }

// StartNodeLabel returns the label of the edge's start node.
func (e *Edge) StartNodeLabel() CellLabel { return e.startNodeLabel }

// EndNodeLabel returns the label of the edge's end node.
func (e *Edge) EndNodeLabel() CellLabel { return e.endNodeLabel }

// LeftFaceLabel returns the label of the face to the left of the positive
// dart, resolved through the map's face-label LUT.
func (e *Edge) LeftFaceLabel() CellLabel { return e.m.resolveFace(e.leftFaceLabel) }

// RightFaceLabel returns the label of the face to the right of the
// positive dart, resolved through the map's face-label LUT.
func (e *Edge) RightFaceLabel() CellLabel { return e.m.resolveFace(e.rightFaceLabel) }

// IsLoop reports whether the edge's two endpoints are the same node.
func (e *Edge) IsLoop() bool { return e.startNodeLabel == e.endNodeLabel }

// IsBridge reports whether the edge's two sides belong to the same face.
func (e *Edge) IsBridge() bool { return e.LeftFaceLabel() == e.RightFaceLabel() }

// Points returns the edge's embedding polygon points, read-only.
func (e *Edge) Points() []geompoly.Point { return e.poly.Points() }

// Polygon returns the edge's embedding polygon.
func (e *Edge) Polygon() *geompoly.Polygon { return e.poly }

// BoundingBox returns the edge's cached bounding box.
func (e *Edge) BoundingBox() geompoly.BoundingBox { return e.poly.BoundingBox() }

// Protection returns the edge's protection level; a non-zero value makes
// the edge immune to Euler operators that would remove or merge it.
func (e *Edge) Protection() int { return e.protection }

// SetProtection sets the edge's protection level.
func (e *Edge) SetProtection(level int) { e.protection = level }

// Dart returns the edge's positive dart.
func (e *Edge) Dart() Dart { return Dart{m: e.m, signedLabel: int64(e.label)} }

// Face is a 2-cell: a (possibly multiply-connected) region bounded by one
// anchor dart per boundary component.
type Face struct {
	m          *Map
	label      CellLabel
	anchors    []Dart
	bbox       geompoly.BoundingBox
	bboxValid  bool
	area       float64
	areaValid  bool
	pixelArea  int
	protection int
	live       bool
}

// Label returns the face's label.
func (f *Face) Label() CellLabel { return f.label }

// Initialized reports whether the face is still live in its map.
func (f *Face) Initialized() bool { return f != nil && f.live }

// IsInfinite reports whether this is the outer (infinite) face.
func (f *Face) IsInfinite() bool { return f.label == 0 }

// Anchors returns the face's boundary-component anchor darts, read-only.
func (f *Face) Anchors() []Dart { return f.anchors }

// PixelArea returns the number of raster pixels attributed to the face.
func (f *Face) PixelArea() int { return f.pixelArea }

// AddPixelArea adds n to the face's raster pixel count. Callers outside
// this package rasterizing a face (imagelabel's fill) use this to keep
// PixelArea in sync with what actually got painted.
func (f *Face) AddPixelArea(n int) { f.pixelArea += n }

// Protection returns the face's protection level.
func (f *Face) Protection() int { return f.protection }

// SetProtection sets the face's protection level.
func (f *Face) SetProtection(level int) { f.protection = level }
