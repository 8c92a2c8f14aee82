package planarmap

import "github.com/eldruin/geomap/spatialindex"

// Clone returns an independent deep copy of m.
func (m *Map) Clone() *Map {
	clone := &Map{}
	clone.RestoreFrom(m)
	return clone
}

// RestoreFrom overwrites m's entire state with a deep copy of other's,
// preserving m's own identity so existing *Map holders keep working. It
// is the pyramid package's primitive for checkpoint restore: rather than
// swapping pointers, the working map is reset in place.
func (m *Map) RestoreFrom(other *Map) {
	m.nodes = make([]Node, len(other.nodes))
	m.edges = make([]Edge, len(other.edges))
	m.faces = make([]Face, len(other.faces))
	m.nodeCount = other.nodeCount
	m.edgeCount = other.edgeCount
	m.faceCount = other.faceCount
	m.imageWidth = other.imageWidth
	m.imageHeight = other.imageHeight
	m.contoursInitialized = other.contoursInitialized
	m.facesEmbedded = other.facesEmbedded
	m.nodeIndex = spatialindex.New[CellLabel]()
	m.pixelClassifier = nil

	for i := range other.nodes {
		n := other.nodes[i]
		n.m = m
		n.darts = append([]DartLabel(nil), other.nodes[i].darts...)
		m.nodes[i] = n
		if n.live {
			m.nodeIndex.Insert(n.position.X, n.position.Y, n.label)
		}
	}

	for i := range other.edges {
		e := other.edges[i]
		e.m = m
		if e.poly != nil {
			e.poly = e.poly.Clone()
		}
		m.edges[i] = e
	}

	for i := range other.faces {
		f := other.faces[i]
		f.m = m
		f.anchors = make([]Dart, len(other.faces[i].anchors))
		for j, a := range other.faces[i].anchors {
			f.anchors[j] = Dart{m: m, signedLabel: a.signedLabel}
		}
		m.faces[i] = f
	}

	if other.faceLUT != nil {
		m.faceLUT = other.faceLUT.Clone()
	} else {
		m.faceLUT = nil
	}
}
