package geomapio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/eldruin/geomap/geomapio"
	"github.com/eldruin/geomap/planarmap"
)

const triangleJSON = `{
  "nodes": [
    {"present": false, "x": 0, "y": 0},
    {"present": true, "x": 0, "y": 0},
    {"present": true, "x": 10, "y": 0},
    {"present": true, "x": 5, "y": 8}
  ],
  "edges": [
    {"present": false, "start": 0, "end": 0, "points": []},
    {"present": true, "start": 1, "end": 2, "points": [[0,0],[10,0]]},
    {"present": true, "start": 2, "end": 3, "points": [[10,0],[5,8]]},
    {"present": true, "start": 3, "end": 1, "points": [[5,8],[0,0]]}
  ],
  "imageWidth": 10,
  "imageHeight": 8
}`

func TestLoadDescriptionBuildsMap(t *testing.T) {
	desc, err := geomapio.LoadDescription(strings.NewReader(triangleJSON))
	if err != nil {
		t.Fatalf("LoadDescription: %v", err)
	}
	m, err := planarmap.NewFromDescription(desc)
	if err != nil {
		t.Fatalf("NewFromDescription: %v", err)
	}
	if m.NodeCount() != 3 || m.EdgeCount() != 3 {
		t.Fatalf("got %d nodes, %d edges, want 3 and 3", m.NodeCount(), m.EdgeCount())
	}
	if err := m.CheckConsistency(); err != nil {
		t.Fatalf("CheckConsistency: %v", err)
	}
}

func TestSaveDescriptionRoundTrip(t *testing.T) {
	desc, err := geomapio.LoadDescription(strings.NewReader(triangleJSON))
	if err != nil {
		t.Fatalf("LoadDescription: %v", err)
	}
	var buf bytes.Buffer
	if err := geomapio.SaveDescription(&buf, desc); err != nil {
		t.Fatalf("SaveDescription: %v", err)
	}
	again, err := geomapio.LoadDescription(&buf)
	if err != nil {
		t.Fatalf("LoadDescription(round-trip): %v", err)
	}
	if diff := cmp.Diff(desc, again); diff != "" {
		t.Fatalf("round-trip description differs:\n%s", diff)
	}
}
