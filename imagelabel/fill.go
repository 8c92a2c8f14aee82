package imagelabel

import (
	"math"
	"sort"

	"github.com/eldruin/geomap/planarmap"
)

// FillFace rasterizes f's boundary (every anchor's contour, even-odd
// combined so holes carve out their interior) into li, claiming each
// covered pixel's center for f's label. A pixel already claimed by an
// earlier FillFace call is overwritten.
func FillFace(li *LabelImage, f *planarmap.Face) {
	bbox := f.BoundingBox()
	minY := int(math.Floor(bbox.Min.Y))
	maxY := int(math.Ceil(bbox.Max.Y))
	if minY < 0 {
		minY = 0
	}
	if maxY > li.height {
		maxY = li.height
	}

	painted := 0
	for y := minY; y < maxY; y++ {
		scanY := float64(y) + 0.5
		xs := scanlineIntersections(f, scanY)
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Ceil(xs[i] - 0.5))
			x1 := int(math.Floor(xs[i+1] - 0.5))
			for x := x0; x <= x1; x++ {
				li.Set(x, y, f.Label())
				painted++
			}
		}
	}
	f.AddPixelArea(painted)
}

// scanlineIntersections returns the x-coordinates at which f's boundary
// crosses the horizontal line y = scanY.
func scanlineIntersections(f *planarmap.Face, scanY float64) []float64 {
	var xs []float64
	for _, anchor := range f.Anchors() {
		it := planarmap.NewContourPointIter(anchor, true)
		var prev struct {
			p    [2]float64
			have bool
		}
		for {
			pt, ok := it.Next()
			cur := [2]float64{pt.X, pt.Y}
			if !ok {
				break
			}
			if prev.have {
				a, b := prev.p, cur
				if (a[1] > scanY) != (b[1] > scanY) {
					x := a[0] + (scanY-a[1])/(b[1]-a[1])*(b[0]-a[0])
					xs = append(xs, x)
				}
			}
			prev.p = cur
			prev.have = true
		}
	}
	return xs
}
