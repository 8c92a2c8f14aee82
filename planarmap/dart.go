package planarmap

import "github.com/eldruin/geomap/geompoly"

// Dart is an oriented half-edge cursor: a signed edge label plus a
// reference to the map it lives in. It is a small, copyable value type;
// all of its methods are pure cursor moves over the map's existing
// topology and never allocate new cells.
type Dart struct {
	m           *Map
	signedLabel DartLabel
}

// NewDart builds a dart on m naming edgeLabel with the given sign
// (positive==true selects the forward dart). It does not validate that the
// edge exists or is live.
func NewDart(m *Map, edgeLabel CellLabel, positive bool) Dart {
	sl := int64(edgeLabel)
	if !positive {
		sl = -sl
	}
	return Dart{m: m, signedLabel: sl}
}

// Map returns the dart's owning map.
func (d Dart) Map() *Map { return d.m }

// SignedLabel returns the raw signed dart label.
func (d Dart) SignedLabel() DartLabel { return d.signedLabel }

// EdgeLabel returns the underlying edge's label.
func (d Dart) EdgeLabel() CellLabel {
	if d.signedLabel < 0 {
		return CellLabel(-d.signedLabel)
	}
	return CellLabel(d.signedLabel)
}

// Positive reports whether the dart points in the edge's stored direction.
func (d Dart) Positive() bool { return d.signedLabel > 0 }

// Valid reports whether the dart names a non-sentinel, live edge.
func (d Dart) Valid() bool {
	return d.signedLabel != 0 && d.m != nil && d.m.edge(d.EdgeLabel()).Initialized()
}

// Edge returns the dart's underlying edge. Panics via nil dereference of
// an uninitialized edge is never triggered here; callers should check
// Valid() or Initialized() first for the DartReferencesRemovedEdge case.
func (d Dart) Edge() *Edge { return d.m.edge(d.EdgeLabel()) }

// StartNode returns the node this dart originates from.
func (d Dart) StartNode() *Node {
	e := d.Edge()
	if d.Positive() {
		return d.m.node(e.startNodeLabel)
	}
	return d.m.node(e.endNodeLabel)
}

// EndNode returns the node this dart points to.
func (d Dart) EndNode() *Node {
	e := d.Edge()
	if d.Positive() {
		return d.m.node(e.endNodeLabel)
	}
	return d.m.node(e.startNodeLabel)
}

// LeftFaceLabel returns the label of the face to this dart's left,
// resolved through the map's face-label LUT past any prior mergeFaces.
func (d Dart) LeftFaceLabel() CellLabel {
	e := d.Edge()
	if d.Positive() {
		return d.m.resolveFace(e.leftFaceLabel)
	}
	return d.m.resolveFace(e.rightFaceLabel)
}

// RightFaceLabel returns the label of the face to this dart's right,
// resolved through the map's face-label LUT past any prior mergeFaces.
func (d Dart) RightFaceLabel() CellLabel {
	e := d.Edge()
	if d.Positive() {
		return d.m.resolveFace(e.rightFaceLabel)
	}
	return d.m.resolveFace(e.leftFaceLabel)
}

// LeftFace returns the face to this dart's left.
func (d Dart) LeftFace() *Face { return d.m.face(d.LeftFaceLabel()) }

// RightFace returns the face to this dart's right.
func (d Dart) RightFace() *Face { return d.m.face(d.RightFaceLabel()) }

// setLeftFaceLabel rewrites the underlying edge's left- or right-face
// label, whichever this dart's orientation currently addresses.
func (d Dart) setLeftFaceLabel(label CellLabel) {
	e := d.Edge()
	if d.Positive() {
		e.leftFaceLabel = label
	} else {
		e.rightFaceLabel = label
	}
}

// Len returns the number of points in the dart's direction.
func (d Dart) Len() int { return d.Edge().poly.Len() }

// At returns the i-th point of the dart's polygon in dart direction:
// points[i] for positive darts, points[size-1-i] for negative darts.
func (d Dart) At(i int) geompoly.Point {
	e := d.Edge()
	if d.Positive() {
		return e.poly.At(i)
	}
	return e.poly.At(e.poly.Len() - 1 - i)
}

// NextAlpha flips the dart to the opposite side of the same edge (α).
func (d *Dart) NextAlpha() *Dart {
	d.signedLabel = -d.signedLabel
	return d
}

// Alpha returns the opposite dart of the same edge, without mutating d.
func (d Dart) Alpha() Dart {
	return Dart{m: d.m, signedLabel: -d.signedLabel}
}

// NextSigma rotates the dart k positions within its start node's
// sigma-orbit (σ), counter-clockwise for k > 0.
func (d *Dart) NextSigma(k int) error {
	n := d.StartNode()
	idx := indexOfDart(n.darts, d.signedLabel)
	if idx < 0 {
		return ErrInvariantBroken
	}
	deg := len(n.darts)
	idx = ((idx+k)%deg + deg) % deg
	d.signedLabel = n.darts[idx]
	return nil
}

// PrevSigma rotates the dart one position backward (σ⁻¹).
func (d *Dart) PrevSigma() error {
	return d.NextSigma(-1)
}

// NextPhi walks one edge forward along a face contour (φ = α ∘ σ⁻¹).
func (d *Dart) NextPhi() error {
	d.NextAlpha()
	return d.PrevSigma()
}

// Sigma returns the result of rotating d by k positions, without mutating d.
func (d Dart) Sigma(k int) (Dart, error) {
	nd := d
	if err := nd.NextSigma(k); err != nil {
		return Dart{}, err
	}
	return nd, nil
}

// Phi returns the result of one φ step, without mutating d.
func (d Dart) Phi() (Dart, error) {
	nd := d
	if err := nd.NextPhi(); err != nil {
		return Dart{}, err
	}
	return nd, nil
}

func indexOfDart(darts []DartLabel, label DartLabel) int {
	for i, l := range darts {
		if l == label {
			return i
		}
	}
	return -1
}

// Equal reports whether two darts name the same signed edge on the same map.
func (d Dart) Equal(other Dart) bool {
	return d.m == other.m && d.signedLabel == other.signedLabel
}

// Serialize returns an opaque value that survives structural mutations not
// removing this dart's edge, consumable by the map's RehydrateDart.
func (d Dart) Serialize() SerializedDart {
	return SerializedDart{EdgeLabel: d.EdgeLabel(), Positive: d.Positive()}
}

// SerializedDart is the minimal sufficient serialization of a Dart: its
// edge label and sign.
type SerializedDart struct {
	EdgeLabel CellLabel
	Positive  bool
}

// RehydrateDart reconstructs a Dart on m from a SerializedDart.
func RehydrateDart(m *Map, s SerializedDart) Dart {
	return NewDart(m, s.EdgeLabel, s.Positive)
}

// DartPointIter yields a dart's points in the dart's own direction.
type DartPointIter struct {
	d    Dart
	i, n int
}

// NewDartPointIter returns an iterator over dart's points.
func NewDartPointIter(dart Dart) *DartPointIter {
	return &DartPointIter{d: dart, n: dart.Len()}
}

// Next returns the next point and whether it is valid.
func (it *DartPointIter) Next() (geompoly.Point, bool) {
	if it.i >= it.n {
		return geompoly.Point{}, false
	}
	p := it.d.At(it.i)
	it.i++
	return p, true
}

// ContourPointIter chains dart-point iterators around a phi-orbit.
type ContourPointIter struct {
	m           *Map
	cur         Dart
	start       Dart
	inner       *DartPointIter
	repeatStart bool
	emittedOnce bool
	done        bool
	firstLoop   bool
}

// NewContourPointIter returns an iterator walking the phi-orbit starting
// at anchor. If repeatStart, the start point is emitted again at the very
// end (to let closed-polygon consumers see a repeated first/last point).
func NewContourPointIter(anchor Dart, repeatStart bool) *ContourPointIter {
	return &ContourPointIter{
		m:           anchor.m,
		cur:         anchor,
		start:       anchor,
		inner:       NewDartPointIter(anchor),
		repeatStart: repeatStart,
		firstLoop:   true,
	}
}

// Next returns the next contour point and whether it is valid.
func (it *ContourPointIter) Next() (geompoly.Point, bool) {
	for {
		if it.done {
			return geompoly.Point{}, false
		}
		if it.inner != nil {
			if p, ok := it.inner.Next(); ok {
				// Skip the first point of every dart after the first
				// (shared with the previous dart's last point).
				if it.firstLoop || it.inner.i > 1 {
					it.emittedOnce = true
					return p, true
				}
				continue
			}
			it.inner = nil
		}

		next := it.cur
		if err := next.NextPhi(); err != nil {
			it.done = true
			return geompoly.Point{}, false
		}
		it.cur = next
		it.firstLoop = false

		if it.cur.Equal(it.start) {
			it.done = true
			if it.repeatStart {
				return it.start.At(0), true
			}
			return geompoly.Point{}, false
		}
		it.inner = NewDartPointIter(it.cur)
	}
}
