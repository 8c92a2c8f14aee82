package geompoly

import "math"

// Point is a 2-D point with float64 coordinates.
type Point struct {
	X, Y float64
}

// Sub returns p - other.
func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// SquaredDist returns the squared Euclidean distance between p and other.
func (p Point) SquaredDist(other Point) float64 {
	dx, dy := p.X-other.X, p.Y-other.Y
	return dx*dx + dy*dy
}

// Equal reports whether p and other are exactly the same point.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// BoundingBox is an axis-aligned rectangle [Min,Max]. The zero value is
// empty; use Extend to grow it from points or other boxes.
type BoundingBox struct {
	Min, Max Point
	empty    bool
}

// EmptyBoundingBox returns an empty bounding box (Valid() == false).
func EmptyBoundingBox() BoundingBox {
	return BoundingBox{empty: true}
}

// Valid reports whether the box has been extended by at least one point.
func (b BoundingBox) Valid() bool {
	return !b.empty
}

// Extend grows b (in place semantics via return value) to also cover p.
func (b BoundingBox) Extend(p Point) BoundingBox {
	if b.empty {
		return BoundingBox{Min: p, Max: p}
	}
	return BoundingBox{
		Min: Point{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y)},
		Max: Point{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y)},
	}
}

// Union returns the smallest box covering both b and other.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	if other.empty {
		return b
	}
	if b.empty {
		return other
	}
	return BoundingBox{
		Min: Point{math.Min(b.Min.X, other.Min.X), math.Min(b.Min.Y, other.Min.Y)},
		Max: Point{math.Max(b.Max.X, other.Max.X), math.Max(b.Max.Y, other.Max.Y)},
	}
}

// Contains reports whether p lies within the closed box.
func (b BoundingBox) Contains(p Point) bool {
	if b.empty {
		return false
	}
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Polygon is a growable, ordered sequence of points with a cached,
// invalidate-on-mutation bounding box.
type Polygon struct {
	points   []Point
	bbox     BoundingBox
	bboxKnow bool
}

// NewPolygon returns a Polygon seeded with pts (copied).
func NewPolygon(pts []Point) *Polygon {
	p := &Polygon{points: append([]Point(nil), pts...)}
	return p
}

// Len returns the number of points.
func (p *Polygon) Len() int {
	return len(p.points)
}

// At returns the i-th point.
func (p *Polygon) At(i int) Point {
	return p.points[i]
}

// Points returns the underlying point slice (read-only use expected).
func (p *Polygon) Points() []Point {
	return p.points
}

// First returns the first point.
func (p *Polygon) First() Point {
	return p.points[0]
}

// Last returns the last point.
func (p *Polygon) Last() Point {
	return p.points[len(p.points)-1]
}

// SetPoint overwrites the i-th point, invalidating the bounding box cache.
func (p *Polygon) SetPoint(i int, pt Point) {
	p.points[i] = pt
	p.bboxKnow = false
}

// Append adds a point to the end, invalidating the bounding box cache.
func (p *Polygon) Append(pt Point) {
	p.points = append(p.points, pt)
	p.bboxKnow = false
}

// Extend appends other's points after p's own, invalidating the cache.
func (p *Polygon) Extend(other *Polygon) {
	p.points = append(p.points, other.points...)
	p.bboxKnow = false
}

// Reverse reverses the point order in place; the bounding box is unchanged,
// so its cache is kept.
func (p *Polygon) Reverse() {
	for i, j := 0, len(p.points)-1; i < j; i, j = i+1, j-1 {
		p.points[i], p.points[j] = p.points[j], p.points[i]
	}
}

// BoundingBox returns the (cached) bounding box of p's points.
func (p *Polygon) BoundingBox() BoundingBox {
	if !p.bboxKnow {
		b := EmptyBoundingBox()
		for _, pt := range p.points {
			b = b.Extend(pt)
		}
		p.bbox = b
		p.bboxKnow = true
	}
	return p.bbox
}

// PartialArea returns ½ Σ (xᵢyᵢ₊₁ − xᵢ₊₁yᵢ) over consecutive point pairs.
// A Polygon is not closed; a contour's total area sums PartialArea over
// every dart visited in a phi-orbit.
func (p *Polygon) PartialArea() float64 {
	var sum float64
	for i := 0; i+1 < len(p.points); i++ {
		a, b := p.points[i], p.points[i+1]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Clone returns a deep copy of p.
func (p *Polygon) Clone() *Polygon {
	return &Polygon{
		points:   append([]Point(nil), p.points...),
		bbox:     p.bbox,
		bboxKnow: p.bboxKnow,
	}
}
