package planarmap

import "github.com/eldruin/geomap/geompoly"

// BoundingBox returns the face's cached bounding box, the union of every
// boundary-component edge's bounding box. Recomputed lazily after any
// mutation invalidates it.
func (f *Face) BoundingBox() geompoly.BoundingBox {
	if f.bboxValid {
		return f.bbox
	}
	bb := geompoly.EmptyBoundingBox()
	for _, anchor := range f.anchors {
		d := anchor
		for {
			bb = bb.Union(d.Edge().BoundingBox())
			next := d
			if err := next.NextPhi(); err != nil {
				break
			}
			d = next
			if d.Equal(anchor) {
				break
			}
		}
	}
	f.bbox = bb
	f.bboxValid = true
	return f.bbox
}

// Area returns the face's cached signed area, the sum of the shoelace
// area of every boundary component (outer component positive, holes
// negative, by construction of their dart orientation).
func (f *Face) Area() float64 {
	if f.areaValid {
		return f.area
	}
	total := 0.0
	for _, anchor := range f.anchors {
		total += contourArea(anchor)
	}
	f.area = total
	f.areaValid = true
	return f.area
}

func contourArea(anchor Dart) float64 {
	it := NewContourPointIter(anchor, true)
	var prev geompoly.Point
	have := false
	sum := 0.0
	for {
		cur, ok := it.Next()
		if !ok {
			break
		}
		if !have {
			prev = cur
			have = true
			continue
		}
		sum += prev.X*cur.Y - cur.X*prev.Y
		prev = cur
	}
	return sum / 2
}

// Contains reports whether p lies within the face, using an even-odd
// ray-casting test summed across every boundary component so that holes
// correctly exclude their interior. The infinite face contains every
// point not claimed by any finite face; callers scanning FaceAt should
// check finite faces first and fall back to the infinite face.
func (f *Face) Contains(p geompoly.Point) bool {
	if f.IsInfinite() {
		return true
	}
	if !f.BoundingBox().Contains(p) {
		return false
	}
	inside := false
	for _, anchor := range f.anchors {
		if contourContains(anchor, p) {
			inside = !inside
		}
	}
	return inside
}

func contourContains(anchor Dart, p geompoly.Point) bool {
	it := NewContourPointIter(anchor, true)
	var prev geompoly.Point
	have := false
	inside := false
	for {
		cur, ok := it.Next()
		if !ok {
			break
		}
		if !have {
			prev = cur
			have = true
			continue
		}
		if rayCrosses(prev, cur, p) {
			inside = !inside
		}
		prev = cur
	}
	return inside
}

func rayCrosses(a, b, p geompoly.Point) bool {
	if (a.Y > p.Y) == (b.Y > p.Y) {
		return false
	}
	xIntersect := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
	return p.X < xIntersect
}

func (f *Face) invalidateCaches() {
	f.bboxValid = false
	f.areaValid = false
}
