package planarmap

import (
	"fmt"
	"math"
	"sort"

	"github.com/eldruin/geomap/geompoly"
	"github.com/eldruin/geomap/labellut"
)

const sortAngleEpsilon = 1e-9

// SortEdgesDirectly orders every node's sigma-orbit by the tangent angle
// of each incident dart's first segment only. It is fast but gives
// incorrect results when several darts leave a node along the same
// initial direction; SortEdgesEventually resolves those cases.
func (m *Map) SortEdgesDirectly() {
	for l := CellLabel(1); l < CellLabel(len(m.nodes)); l++ {
		n := &m.nodes[l]
		if !n.live {
			continue
		}
		sort.SliceStable(n.darts, func(i, j int) bool {
			di := Dart{m: m, signedLabel: n.darts[i]}
			dj := Dart{m: m, signedLabel: n.darts[j]}
			return dartAngleAt(di, 1) < dartAngleAt(dj, 1)
		})
	}
}

// SortEdgesEventually orders every node's sigma-orbit by tangent angle,
// resolving ties between darts that leave in the same initial direction
// by recursively comparing the angle to each dart's next point in turn.
// A group of darts that cannot be separated before all of them run out
// of points makes the node unsortable.
func (m *Map) SortEdgesEventually() error {
	for l := CellLabel(1); l < CellLabel(len(m.nodes)); l++ {
		n := &m.nodes[l]
		if !n.live || len(n.darts) < 2 {
			continue
		}
		darts := make([]Dart, len(n.darts))
		for i, sl := range n.darts {
			darts[i] = Dart{m: m, signedLabel: sl}
		}
		sorted, err := sortDartsEventually(darts)
		if err != nil {
			return fmt.Errorf("sortEdgesEventually: node %d: %w", n.label, err)
		}
		for i, d := range sorted {
			n.darts[i] = d.signedLabel
		}
	}
	return nil
}

func dartAngleAt(d Dart, idx int) float64 {
	n := d.Len()
	if idx >= n {
		idx = n - 1
	}
	p0, p1 := d.At(0), d.At(idx)
	return math.Atan2(p1.Y-p0.Y, p1.X-p0.X)
}

func sortDartsEventually(darts []Dart) ([]Dart, error) {
	return sortDartsByAngle(darts, 1)
}

func sortDartsByAngle(darts []Dart, depth int) ([]Dart, error) {
	type keyed struct {
		d     Dart
		angle float64
	}
	ks := make([]keyed, len(darts))
	for i, d := range darts {
		ks[i] = keyed{d, dartAngleAt(d, depth)}
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].angle < ks[j].angle })

	out := make([]Dart, len(ks))
	for i := range ks {
		out[i] = ks[i].d
	}

	i := 0
	for i < len(out) {
		j := i + 1
		for j < len(ks) && math.Abs(ks[j].angle-ks[i].angle) < sortAngleEpsilon {
			j++
		}
		if j-i > 1 {
			maxLen := 0
			for _, d := range out[i:j] {
				if d.Len() > maxLen {
					maxLen = d.Len()
				}
			}
			if depth+1 >= maxLen {
				return nil, ErrUnsortable
			}
			resolved, err := sortDartsByAngle(out[i:j], depth+1)
			if err != nil {
				return nil, err
			}
			copy(out[i:j], resolved)
		}
		i = j
	}
	return out, nil
}

// InitContours pre-creates the infinite face (label 0, no anchor), then
// walks every dart's phi-orbit to discover the map's remaining boundary
// components, assigning each one a preliminary face label starting at 1.
// EmbedFaces later decides which of these preliminary faces are real and
// which are holes to be folded into a surrounding face.
// SortEdgesEventually or SortEdgesDirectly must already have been called.
func (m *Map) InitContours() error {
	if m.contoursInitialized {
		return ErrAlreadyInitialized
	}

	m.faces = append(m.faces, Face{m: m, label: 0, live: true})
	m.faceCount++

	var order []Dart
	for l := CellLabel(1); l < CellLabel(len(m.edges)); l++ {
		e := &m.edges[l]
		if !e.live {
			continue
		}
		order = append(order, Dart{m: m, signedLabel: int64(l)}, Dart{m: m, signedLabel: -int64(l)})
	}

	for _, d := range order {
		e := d.Edge()
		var already bool
		if d.Positive() {
			already = e.leftFaceLabel != Uninitialized
		} else {
			already = e.rightFaceLabel != Uninitialized
		}
		if already {
			continue
		}

		label := CellLabel(len(m.faces))
		face := Face{m: m, label: label, live: true, anchors: []Dart{d}}

		cur := d
		for {
			cur.setLeftFaceLabel(label)
			next := cur
			if err := next.NextPhi(); err != nil {
				return fmt.Errorf("initContours: %w", ErrInvariantBroken)
			}
			cur = next
			if cur.Equal(d) {
				break
			}
		}
		m.faces = append(m.faces, face)
		m.faceCount++
	}

	m.faceLUT = labellut.New(len(m.faces))
	m.contoursInitialized = true
	return nil
}

// EmbedFaces finalizes construction: it sorts InitContours' preliminary
// faces (every label but 0) by decreasing |area|, ties preferring the
// negative (hole) side first. A non-negative-area contour becomes a real
// face. A negative-area contour is a hole or exterior boundary: it is
// folded into the face that actually owns that region, found by sampling
// a point just inside the contour's own left side (its true owner, by the
// left-face convention InitContours built it with) against, in order, an
// installed pixel classifier, a linear Face.Contains scan over the real
// faces already accepted (smallest/most-nested first), and finally the
// infinite face. EmbedFaces must run after InitContours.
func (m *Map) EmbedFaces() error {
	if !m.contoursInitialized {
		return fmt.Errorf("embedFaces: %w", ErrPreconditionViolated)
	}
	if m.facesEmbedded {
		return ErrAlreadyInitialized
	}

	var prelim []CellLabel
	for l := CellLabel(1); l < CellLabel(len(m.faces)); l++ {
		if m.faces[l].live {
			prelim = append(prelim, l)
		}
	}
	sort.SliceStable(prelim, func(i, j int) bool {
		ai, aj := m.faces[prelim[i]].Area(), m.faces[prelim[j]].Area()
		absI, absJ := math.Abs(ai), math.Abs(aj)
		if absI != absJ {
			return absI > absJ
		}
		return ai < aj // tie: negative (hole) first
	})

	real := []CellLabel{0}
	for _, l := range prelim {
		f := &m.faces[l]
		if f.Area() >= 0 {
			real = append(real, l)
			continue
		}
		parent := m.findHoleOwner(f, real)
		m.embedHoleInto(f, parent)
	}

	for l := CellLabel(0); l < CellLabel(len(m.faces)); l++ {
		f := &m.faces[l]
		if !f.live {
			continue
		}
		f.invalidateCaches()
		f.Area()
		f.BoundingBox()
	}
	m.facesEmbedded = true
	return nil
}

// findHoleOwner locates the face that a negative-area preliminary face's
// boundary actually belongs to, among the already-accepted real faces
// (checked most-nested first) plus the infinite face as a last resort.
func (m *Map) findHoleOwner(hole *Face, realSoFar []CellLabel) CellLabel {
	sample := leftOffsetSample(hole.anchors[0])
	if m.pixelClassifier != nil {
		if label, ok := m.pixelClassifier.FaceLabelAt(sample.X, sample.Y); ok {
			return m.resolveFace(label)
		}
	}
	for i := len(realSoFar) - 1; i >= 0; i-- {
		l := realSoFar[i]
		if l == 0 {
			continue
		}
		if m.faces[l].Contains(sample) {
			return l
		}
	}
	return 0
}

// embedHoleInto folds hole into parent as an additional boundary
// component: its anchor joins parent's, its pixel area carries over, and
// its label resolves to parent's through the face LUT from now on.
func (m *Map) embedHoleInto(hole *Face, parentLabel CellLabel) {
	parent := m.face(parentLabel)
	parent.anchors = append(parent.anchors, hole.anchors...)
	parent.pixelArea += hole.pixelArea
	parent.invalidateCaches()

	if m.faceLUT != nil {
		_ = m.faceLUT.Relabel(hole.label, parentLabel)
	}
	hole.live = false
	hole.anchors = nil
	m.faceCount--
}

// leftOffsetSample returns a point just to the left of anchor's first
// segment: the side InitContours registered as this preliminary face's
// own interior, regardless of the contour's overall winding sign.
func leftOffsetSample(anchor Dart) geompoly.Point {
	p0, p1 := anchor.At(0), anchor.At(1)
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return p0
	}
	eps := length * 0.01
	if eps > 0.25 {
		eps = 0.25
	} else if eps < 1e-6 {
		eps = 1e-6
	}
	nx, ny := -dy/length, dx/length
	mx, my := (p0.X+p1.X)/2, (p0.Y+p1.Y)/2
	return geompoly.Point{X: mx + nx*eps, Y: my + ny*eps}
}
