package planarmap

import (
	"math"

	"github.com/eldruin/geomap/geompoly"
)

// PixelCoord names one raster pixel by its integer column and row.
type PixelCoord struct {
	X, Y int
}

// PixelSink is the mutable counterpart of PixelClassifier: a raster that
// Euler operators keep in lockstep with the map's topology as edges are
// rasterized, subtracted, and resolved to a face label. A LabelImage
// installed via Map.SetPixelClassifier satisfies this interface, so the
// lockstep wiring below activates automatically whenever one is present
// and is a silent no-op otherwise.
type PixelSink interface {
	PixelClassifier
	// PixelAt reports the label currently covering pixel (x, y).
	PixelAt(x, y int) (CellLabel, bool)
	// SetPixel assigns label to pixel (x, y).
	SetPixel(x, y int, label CellLabel)
	// ClearPixel marks pixel (x, y) unclaimed.
	ClearPixel(x, y int)
}

// pixelSink returns m's installed raster as a PixelSink, or nil if none is
// installed or the installed PixelClassifier does not support mutation.
func (m *Map) pixelSink() PixelSink {
	ps, _ := m.pixelClassifier.(PixelSink)
	return ps
}

// rasterizeLine returns every pixel a polyline's segments pass through, in
// order, with consecutive duplicates removed. It samples purely by integer
// floor of each point, matching PixelClassifier's FaceLabelAt convention.
func rasterizeLine(points []geompoly.Point) []PixelCoord {
	if len(points) == 0 {
		return nil
	}
	var out []PixelCoord
	add := func(x, y int) {
		pc := PixelCoord{x, y}
		if len(out) == 0 || out[len(out)-1] != pc {
			out = append(out, pc)
		}
	}
	x0, y0 := int(math.Floor(points[0].X)), int(math.Floor(points[0].Y))
	add(x0, y0)
	for i := 1; i < len(points); i++ {
		bresenham(points[i-1], points[i], add)
	}
	return out
}

// bresenham walks the integer pixels on the line from p0 to p1, calling add
// for every pixel including both endpoints.
func bresenham(p0, p1 geompoly.Point, add func(x, y int)) {
	x0, y0 := int(math.Floor(p0.X)), int(math.Floor(p0.Y))
	x1, y1 := int(math.Floor(p1.X)), int(math.Floor(p1.Y))

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x1 < x0 {
		sx = -1
	}
	if y1 < y0 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		add(x, y)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}
