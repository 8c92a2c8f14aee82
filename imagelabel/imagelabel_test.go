package imagelabel_test

import (
	"testing"

	"github.com/eldruin/geomap/geompoly"
	"github.com/eldruin/geomap/imagelabel"
	"github.com/eldruin/geomap/planarmap"
)

func TestLabelImageSetAtOutOfBounds(t *testing.T) {
	li := imagelabel.New(4, 4)
	if _, ok := li.At(0, 0); ok {
		t.Fatalf("fresh LabelImage should report unlabeled pixels")
	}
	li.Set(1, 2, 7)
	got, ok := li.At(1, 2)
	if !ok || got != 7 {
		t.Fatalf("At(1,2) = %v, %v, want 7, true", got, ok)
	}
	li.Set(-1, 0, 9)
	if _, ok := li.At(-1, 0); ok {
		t.Fatalf("out-of-bounds Set should be ignored")
	}
}

func TestLabelImageFaceLabelAtFloors(t *testing.T) {
	li := imagelabel.New(4, 4)
	li.Set(2, 3, 5)
	got, ok := li.FaceLabelAt(2.9, 3.1)
	if !ok || got != 5 {
		t.Fatalf("FaceLabelAt(2.9,3.1) = %v, %v, want 5, true", got, ok)
	}
}

func TestLabelImageClear(t *testing.T) {
	li := imagelabel.New(2, 2)
	li.Set(0, 0, 3)
	li.Clear()
	if _, ok := li.At(0, 0); ok {
		t.Fatalf("Clear should unlabel every pixel")
	}
}

func triangleMap(t *testing.T) *planarmap.Map {
	desc := &planarmap.Description{
		NodePositions: []geompoly.Point{{}, {X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}},
		NodePresent:   []bool{false, true, true, true},
		Edges: []planarmap.EdgeSpec{
			{},
			{Present: true, StartNode: 1, EndNode: 2, Points: []geompoly.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}},
			{Present: true, StartNode: 2, EndNode: 3, Points: []geompoly.Point{{X: 10, Y: 0}, {X: 5, Y: 8}}},
			{Present: true, StartNode: 3, EndNode: 1, Points: []geompoly.Point{{X: 5, Y: 8}, {X: 0, Y: 0}}},
		},
		ImageWidth:  10,
		ImageHeight: 8,
	}
	m, err := planarmap.NewFromDescription(desc)
	if err != nil {
		t.Fatalf("NewFromDescription: %v", err)
	}
	return m
}

func TestRenderMapFillsInteriorNotExterior(t *testing.T) {
	m := triangleMap(t)
	li := imagelabel.RenderMap(m)

	if got, ok := li.At(5, 3); !ok || got == 0 {
		t.Fatalf("interior pixel (5,3) = %v, %v, want a finite face label", got, ok)
	}
	if _, ok := li.At(0, 7); ok {
		t.Fatalf("exterior pixel (0,7) should stay unlabeled, PixelClassifier handles it")
	}
}

func TestRenderMapInstallsPixelClassifier(t *testing.T) {
	m := triangleMap(t)
	imagelabel.RenderMap(m)

	f, err := m.FaceAt(geompoly.Point{X: 5, Y: 3})
	if err != nil {
		t.Fatalf("FaceAt interior point: %v", err)
	}
	if f.IsInfinite() {
		t.Fatalf("FaceAt(5,3) resolved to the infinite face")
	}
}
