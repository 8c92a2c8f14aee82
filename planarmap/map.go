package planarmap

import (
	"fmt"

	"github.com/eldruin/geomap/geompoly"
	"github.com/eldruin/geomap/labellut"
	"github.com/eldruin/geomap/spatialindex"
)

// PixelClassifier answers "which face owns this point" from a raster
// label image, letting FaceAt skip the geometric fallback. imagelabel's
// LabelImage implements this; Map never imports imagelabel directly.
type PixelClassifier interface {
	FaceLabelAt(x, y float64) (CellLabel, bool)
}

// Map is a planar subdivision of nodes, edges and faces. It owns every
// cell exclusively in label-indexed arenas; label 0 is a permanently
// reserved hole in the node and edge arenas, and is the infinite face's
// label in the face arena.
type Map struct {
	Hooks

	nodes []Node
	edges []Edge
	faces []Face

	nodeCount, edgeCount, faceCount int

	nodeIndex *spatialindex.Index[CellLabel]

	faceLUT *labellut.LUT

	pixelClassifier PixelClassifier

	imageWidth, imageHeight int

	contoursInitialized bool
	facesEmbedded       bool
}

// Option configures a Map at construction time.
type Option func(*Map)

// WithImageSize records the raster dimensions the map's construction
// input was digitized against, as reported by ImageSize.
func WithImageSize(width, height int) Option {
	return func(m *Map) {
		m.imageWidth, m.imageHeight = width, height
	}
}

// WithCapacity preallocates arena space for the given number of nodes and
// edges, avoiding reallocation during bulk construction.
func WithCapacity(nodes, edges int) Option {
	return func(m *Map) {
		m.nodes = make([]Node, 1, nodes+1)
		m.edges = make([]Edge, 1, edges+1)
	}
}

// New returns an empty Map ready for AddNode/AddEdge construction calls.
func New(opts ...Option) *Map {
	m := &Map{
		nodes:     make([]Node, 1), // label 0 is a hole
		edges:     make([]Edge, 1),
		faces:     nil,
		nodeIndex: spatialindex.New[CellLabel](),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *Map) node(label CellLabel) *Node {
	if int(label) >= len(m.nodes) {
		return nil
	}
	return &m.nodes[label]
}

func (m *Map) edge(label CellLabel) *Edge {
	if int(label) >= len(m.edges) {
		return nil
	}
	return &m.edges[label]
}

// resolveFace walks label through the face-label LUT, returning the
// label it currently resolves to after any mergeFaces absorbed it. Before
// embedFaces populates the LUT, labels resolve to themselves.
func (m *Map) resolveFace(label CellLabel) CellLabel {
	if m.faceLUT == nil {
		return label
	}
	resolved, err := m.faceLUT.At(label)
	if err != nil {
		return label
	}
	return resolved
}

func (m *Map) face(label CellLabel) *Face {
	if int(label) >= len(m.faces) {
		return nil
	}
	return &m.faces[label]
}

// Node returns the node with the given label, or ErrInvalidHandle if it
// does not exist or is no longer live.
func (m *Map) Node(label CellLabel) (*Node, error) {
	n := m.node(label)
	if !n.Initialized() {
		return nil, fmt.Errorf("planarmap: node %d: %w", label, ErrInvalidHandle)
	}
	return n, nil
}

// Edge returns the edge with the given label, or ErrInvalidHandle if it
// does not exist or is no longer live.
func (m *Map) Edge(label CellLabel) (*Edge, error) {
	e := m.edge(label)
	if !e.Initialized() {
		return nil, fmt.Errorf("planarmap: edge %d: %w", label, ErrInvalidHandle)
	}
	return e, nil
}

// Face returns the face with the given label, or ErrInvalidHandle if it
// does not exist or is no longer live.
func (m *Map) Face(label CellLabel) (*Face, error) {
	f := m.face(label)
	if !f.Initialized() {
		return nil, fmt.Errorf("planarmap: face %d: %w", label, ErrInvalidHandle)
	}
	return f, nil
}

// NodeCount returns the number of live nodes.
func (m *Map) NodeCount() int { return m.nodeCount }

// EdgeCount returns the number of live edges.
func (m *Map) EdgeCount() int { return m.edgeCount }

// FaceCount returns the number of live faces, including the infinite face.
func (m *Map) FaceCount() int { return m.faceCount }

// MaxNodeLabel returns the highest node label ever assigned.
func (m *Map) MaxNodeLabel() CellLabel { return CellLabel(len(m.nodes) - 1) }

// MaxEdgeLabel returns the highest edge label ever assigned.
func (m *Map) MaxEdgeLabel() CellLabel { return CellLabel(len(m.edges) - 1) }

// MaxFaceLabel returns the highest face label ever assigned.
func (m *Map) MaxFaceLabel() CellLabel {
	if len(m.faces) == 0 {
		return 0
	}
	return CellLabel(len(m.faces) - 1)
}

// NodeLabels returns the labels of every live node, in label order.
func (m *Map) NodeLabels() []CellLabel {
	out := make([]CellLabel, 0, m.nodeCount)
	for l := CellLabel(1); l < CellLabel(len(m.nodes)); l++ {
		if m.nodes[l].live {
			out = append(out, l)
		}
	}
	return out
}

// EdgeLabels returns the labels of every live edge, in label order.
func (m *Map) EdgeLabels() []CellLabel {
	out := make([]CellLabel, 0, m.edgeCount)
	for l := CellLabel(1); l < CellLabel(len(m.edges)); l++ {
		if m.edges[l].live {
			out = append(out, l)
		}
	}
	return out
}

// FaceLabels returns the labels of every live face (including the
// infinite face), in label order.
func (m *Map) FaceLabels() []CellLabel {
	out := make([]CellLabel, 0, m.faceCount)
	for l := CellLabel(0); l < CellLabel(len(m.faces)); l++ {
		if m.faces[l].live {
			out = append(out, l)
		}
	}
	return out
}

// AddNode creates a new isolated node at position and returns its label.
// AddNode is a construction primitive: it bypasses Euler-operator
// invariant checks and must only be used before sortEdgesEventually /
// initContours establish the map's sigma- and phi-orbits.
func (m *Map) AddNode(position geompoly.Point) CellLabel {
	label := CellLabel(len(m.nodes))
	m.nodes = append(m.nodes, Node{m: m, label: label, position: position, live: true})
	m.nodeCount++
	m.nodeIndex.Insert(position.X, position.Y, label)
	return label
}

// AddEdge creates a new edge between startLabel and endLabel embedded
// along points (points[0] must equal the start node's position and
// points[len-1] the end node's) and returns its label. Like AddNode, this
// is a pre-sort construction primitive: it appends to each endpoint's
// dart list in insertion order, not yet in sigma order, and leaves
// left/right face labels unset (Uninitialized) for initContours to fill.
func (m *Map) AddEdge(startLabel, endLabel CellLabel, points []geompoly.Point) (CellLabel, error) {
	start, end := m.node(startLabel), m.node(endLabel)
	if !start.Initialized() || !end.Initialized() {
		return 0, fmt.Errorf("planarmap: AddEdge: %w", ErrInvalidHandle)
	}
	label := CellLabel(len(m.edges))
	poly := geompoly.NewPolygon(append([]geompoly.Point(nil), points...))
	m.edges = append(m.edges, Edge{
		m:              m,
		label:          label,
		startNodeLabel: startLabel,
		endNodeLabel:   endLabel,
		leftFaceLabel:  Uninitialized,
		rightFaceLabel: Uninitialized,
		poly:           poly,
		live:           true,
	})
	m.edgeCount++
	start.darts = append(start.darts, int64(label))
	end.darts = append(end.darts, -int64(label))
	return label, nil
}

// NearestNode returns the live node closest to (x, y) within maxSqDist
// squared distance.
func (m *Map) NearestNode(x, y, maxSqDist float64) (*Node, error) {
	label, ok := m.nodeIndex.Nearest(x, y, maxSqDist)
	if !ok {
		return nil, fmt.Errorf("planarmap: NearestNode: %w", ErrInvalidHandle)
	}
	return m.node(label), nil
}

// SetPixelClassifier installs pc as FaceAt's fast path. Passing nil
// reverts FaceAt to its geometric fallback.
func (m *Map) SetPixelClassifier(pc PixelClassifier) { m.pixelClassifier = pc }

// FaceAt returns the live face containing point p: the raster-backed
// PixelClassifier if one is installed, otherwise a geometric scan over
// every live face's contains test.
func (m *Map) FaceAt(p geompoly.Point) (*Face, error) {
	if m.pixelClassifier != nil {
		if label, ok := m.pixelClassifier.FaceLabelAt(p.X, p.Y); ok {
			return m.Face(m.resolveFace(label))
		}
	}
	for l := CellLabel(len(m.faces)); l > 0; l-- {
		f := &m.faces[l-1]
		if f.live && f.Contains(p) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("planarmap: FaceAt %v: %w", p, ErrInvalidHandle)
}

// ImageSize returns the raster dimensions this map was constructed
// against, as supplied via WithImageSize.
func (m *Map) ImageSize() (width, height int) { return m.imageWidth, m.imageHeight }
