package spatialindex_test

import (
	"testing"

	"github.com/eldruin/geomap/spatialindex"
)

func TestNearestBasic(t *testing.T) {
	idx := spatialindex.New[int]()
	idx.Insert(0, 0, 1)
	idx.Insert(10, 0, 2)
	idx.Insert(5, 8, 3)

	got, ok := idx.Nearest(5.1, 0.1, 100)
	if !ok {
		t.Fatal("Nearest: expected a match")
	}
	if got != 2 {
		t.Fatalf("Nearest = %d, want 2 (closest to (10,0))", got)
	}
}

func TestNearestRadiusExcludes(t *testing.T) {
	idx := spatialindex.New[int]()
	idx.Insert(0, 0, 1)
	_, ok := idx.Nearest(100, 100, 1)
	if ok {
		t.Fatal("Nearest: expected no match within radius 1")
	}
}

func TestRemoveFunc(t *testing.T) {
	idx := spatialindex.New[int]()
	idx.Insert(1, 1, 42)
	if !idx.RemoveFunc(1, 1, 1e-9, func(p int) bool { return p == 42 }) {
		t.Fatal("RemoveFunc: expected removal")
	}
	if idx.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", idx.Len())
	}
}

func TestRemoveFuncNoMatch(t *testing.T) {
	idx := spatialindex.New[int]()
	idx.Insert(1, 1, 42)
	if idx.RemoveFunc(1, 1, 1e-9, func(p int) bool { return p == 99 }) {
		t.Fatal("RemoveFunc: expected no removal for mismatched payload")
	}
	if idx.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", idx.Len())
	}
}

func TestManyPointsFindsClosest(t *testing.T) {
	idx := spatialindex.New[int]()
	for i := 0; i < 50; i++ {
		idx.Insert(float64(i), float64(i)*float64(i%3), i)
	}
	got, ok := idx.Nearest(24.4, 0, 10)
	if !ok {
		t.Fatal("expected a match")
	}
	if got != 24 {
		t.Fatalf("Nearest = %d, want 24", got)
	}
}
