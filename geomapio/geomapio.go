package geomapio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/eldruin/geomap/geompoly"
	"github.com/eldruin/geomap/planarmap"
)

type nodeDoc struct {
	Present bool    `json:"present"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

type edgeDoc struct {
	Present bool         `json:"present"`
	Start   uint32       `json:"start"`
	End     uint32       `json:"end"`
	Points  [][2]float64 `json:"points"`
}

type descriptionDoc struct {
	Nodes       []nodeDoc `json:"nodes"`
	Edges       []edgeDoc `json:"edges"`
	ImageWidth  int       `json:"imageWidth"`
	ImageHeight int       `json:"imageHeight"`
}

// LoadDescription decodes a planarmap.Description from r.
func LoadDescription(r io.Reader) (*planarmap.Description, error) {
	var doc descriptionDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("geomapio: decode: %w", err)
	}

	desc := &planarmap.Description{
		NodePositions: make([]geompoly.Point, len(doc.Nodes)),
		NodePresent:   make([]bool, len(doc.Nodes)),
		Edges:         make([]planarmap.EdgeSpec, len(doc.Edges)),
		ImageWidth:    doc.ImageWidth,
		ImageHeight:   doc.ImageHeight,
	}
	for i, n := range doc.Nodes {
		desc.NodePresent[i] = n.Present
		desc.NodePositions[i] = geompoly.Point{X: n.X, Y: n.Y}
	}
	for i, e := range doc.Edges {
		spec := planarmap.EdgeSpec{Present: e.Present, StartNode: e.Start, EndNode: e.End}
		if e.Present {
			spec.Points = make([]geompoly.Point, len(e.Points))
			for j, p := range e.Points {
				spec.Points[j] = geompoly.Point{X: p[0], Y: p[1]}
			}
		}
		desc.Edges[i] = spec
	}
	return desc, nil
}

// SaveDescription encodes desc to w in the same format LoadDescription
// reads.
func SaveDescription(w io.Writer, desc *planarmap.Description) error {
	doc := descriptionDoc{
		Nodes:       make([]nodeDoc, len(desc.NodePresent)),
		Edges:       make([]edgeDoc, len(desc.Edges)),
		ImageWidth:  desc.ImageWidth,
		ImageHeight: desc.ImageHeight,
	}
	for i, present := range desc.NodePresent {
		doc.Nodes[i] = nodeDoc{Present: present, X: desc.NodePositions[i].X, Y: desc.NodePositions[i].Y}
	}
	for i, spec := range desc.Edges {
		ed := edgeDoc{Present: spec.Present, Start: spec.StartNode, End: spec.EndNode}
		if spec.Present {
			ed.Points = make([][2]float64, len(spec.Points))
			for j, p := range spec.Points {
				ed.Points[j] = [2]float64{p.X, p.Y}
			}
		}
		doc.Edges[i] = ed
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("geomapio: encode: %w", err)
	}
	return nil
}
