package planarmap

import (
	"fmt"

	"github.com/eldruin/geomap/geompoly"
)

// EdgeSpec is one entry of a Description's edge list.
type EdgeSpec struct {
	Present   bool
	StartNode CellLabel
	EndNode   CellLabel
	Points    []geompoly.Point
}

// Description is the two-parallel-list construction input for a Map:
// node positions and edge specs, both 1-based with index 0 reserved as a
// hole so that a label always indexes directly into either list.
type Description struct {
	NodePositions []geompoly.Point
	NodePresent   []bool
	Edges         []EdgeSpec
	ImageWidth    int
	ImageHeight   int
}

// NewFromDescription builds a fully embedded Map from desc: it creates
// every present node and edge, sorts each node's sigma-orbit, discovers
// faces by walking phi-orbits, and warms every face's geometric caches.
func NewFromDescription(desc *Description) (*Map, error) {
	if len(desc.NodePositions) != len(desc.NodePresent) {
		return nil, fmt.Errorf("geomap: description node lists have mismatched length: %w", ErrPreconditionViolated)
	}

	m := New(WithImageSize(desc.ImageWidth, desc.ImageHeight))

	for label := 1; label < len(desc.NodePresent); label++ {
		if !desc.NodePresent[label] {
			m.nodes = append(m.nodes, Node{m: m, label: CellLabel(label), live: false})
			continue
		}
		got := m.AddNode(desc.NodePositions[label])
		if int(got) != label {
			return nil, fmt.Errorf("geomap: node label mismatch at %d: %w", label, ErrInvariantBroken)
		}
	}

	for label := 1; label < len(desc.Edges); label++ {
		spec := desc.Edges[label]
		if !spec.Present {
			m.edges = append(m.edges, Edge{m: m, label: CellLabel(label), live: false,
				leftFaceLabel: Uninitialized, rightFaceLabel: Uninitialized})
			continue
		}
		got, err := m.AddEdge(spec.StartNode, spec.EndNode, spec.Points)
		if err != nil {
			return nil, fmt.Errorf("geomap: edge %d: %w", label, err)
		}
		if int(got) != label {
			return nil, fmt.Errorf("geomap: edge label mismatch at %d: %w", label, ErrInvariantBroken)
		}
	}

	if err := m.SortEdgesEventually(); err != nil {
		return nil, err
	}
	if err := m.InitContours(); err != nil {
		return nil, err
	}
	if err := m.EmbedFaces(); err != nil {
		return nil, err
	}
	return m, nil
}
