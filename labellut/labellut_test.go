package labellut_test

import (
	"testing"

	"github.com/eldruin/geomap/labellut"
)

func collect(it *labellut.MergedIter) []labellut.Label {
	var out []labellut.Label
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

func mustEqual(t *testing.T, got, want []labellut.Label) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %v want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestIdentity(t *testing.T) {
	l := labellut.New(5)
	for i := labellut.Label(0); i < 5; i++ {
		got, err := l.At(i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if got != i {
			t.Fatalf("At(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestRelabelSingle(t *testing.T) {
	l := labellut.New(4)
	if err := l.Relabel(2, 1); err != nil {
		t.Fatal(err)
	}
	got, _ := l.At(2)
	if got != 1 {
		t.Fatalf("At(2) = %d, want 1", got)
	}
	mustEqual(t, collect(l.MergedBegin(1)), []labellut.Label{1, 2})
}

func TestRelabelChain(t *testing.T) {
	l := labellut.New(5)
	// Fold 3 into 1, then 4 into 1: history should be newest-merge-first.
	if err := l.Relabel(3, 1); err != nil {
		t.Fatal(err)
	}
	if err := l.Relabel(4, 1); err != nil {
		t.Fatal(err)
	}
	for _, i := range []labellut.Label{3, 4} {
		got, _ := l.At(i)
		if got != 1 {
			t.Fatalf("At(%d) = %d, want 1", i, got)
		}
	}
	mustEqual(t, collect(l.MergedBegin(1)), []labellut.Label{1, 4, 3})
}

func TestRelabelOutOfRange(t *testing.T) {
	l := labellut.New(2)
	if err := l.Relabel(5, 0); err != labellut.ErrOutOfRange {
		t.Fatalf("Relabel(5,0) = %v, want ErrOutOfRange", err)
	}
}

func TestAppendOne(t *testing.T) {
	l := labellut.New(2)
	lbl := l.AppendOne()
	if lbl != 2 {
		t.Fatalf("AppendOne() = %d, want 2", lbl)
	}
	if l.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", l.Size())
	}
}

func TestRelabelNoOpSameLabel(t *testing.T) {
	l := labellut.New(3)
	if err := l.Relabel(1, 1); err != nil {
		t.Fatal(err)
	}
	mustEqual(t, collect(l.MergedBegin(1)), []labellut.Label{1})
}
