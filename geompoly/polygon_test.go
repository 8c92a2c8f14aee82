package geompoly_test

import (
	"testing"

	"github.com/eldruin/geomap/geompoly"
)

func TestPartialAreaTriangle(t *testing.T) {
	// Half of the triangle contour (0,0)->(10,0)->(5,8): one side of S1.
	p := geompoly.NewPolygon([]geompoly.Point{{0, 0}, {10, 0}})
	area := p.PartialArea()
	want := (0*0 - 10*0) / 2.0
	if area != want {
		t.Fatalf("PartialArea = %v, want %v", area, want)
	}
}

func TestContourAreaViaSum(t *testing.T) {
	sides := [][2]geompoly.Point{
		{{0, 0}, {10, 0}},
		{{10, 0}, {5, 8}},
		{{5, 8}, {0, 0}},
	}
	var total float64
	for _, s := range sides {
		total += geompoly.NewPolygon([]geompoly.Point{s[0], s[1]}).PartialArea()
	}
	if total != 40 {
		t.Fatalf("triangle contour area = %v, want 40", total)
	}
}

func TestBoundingBoxCacheInvalidation(t *testing.T) {
	p := geompoly.NewPolygon([]geompoly.Point{{0, 0}, {1, 1}})
	b := p.BoundingBox()
	if b.Max != (geompoly.Point{1, 1}) {
		t.Fatalf("BoundingBox().Max = %v, want (1,1)", b.Max)
	}
	p.Append(geompoly.Point{5, 5})
	b = p.BoundingBox()
	if b.Max != (geompoly.Point{5, 5}) {
		t.Fatalf("BoundingBox().Max after Append = %v, want (5,5)", b.Max)
	}
}

func TestReverse(t *testing.T) {
	p := geompoly.NewPolygon([]geompoly.Point{{0, 0}, {1, 0}, {2, 0}})
	p.Reverse()
	if p.First() != (geompoly.Point{2, 0}) || p.Last() != (geompoly.Point{0, 0}) {
		t.Fatalf("Reverse() did not flip endpoints: %v", p.Points())
	}
}

func TestExtend(t *testing.T) {
	a := geompoly.NewPolygon([]geompoly.Point{{0, 0}, {1, 0}})
	b := geompoly.NewPolygon([]geompoly.Point{{1, 0}, {2, 0}})
	a.Extend(b)
	if a.Len() != 4 {
		t.Fatalf("Extend: Len() = %d, want 4", a.Len())
	}
}

func TestBoundingBoxUnion(t *testing.T) {
	a := geompoly.EmptyBoundingBox().Extend(geompoly.Point{0, 0}).Extend(geompoly.Point{1, 1})
	b := geompoly.EmptyBoundingBox().Extend(geompoly.Point{5, 5})
	u := a.Union(b)
	if u.Max != (geompoly.Point{5, 5}) {
		t.Fatalf("Union().Max = %v, want (5,5)", u.Max)
	}
}
