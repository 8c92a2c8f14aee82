package imagelabel

import (
	"errors"
	"fmt"
	"math"

	"github.com/eldruin/geomap/planarmap"
)

// ErrOutOfBounds indicates a pixel coordinate outside the image.
var ErrOutOfBounds = errors.New("imagelabel: pixel coordinate out of bounds")

// unlabeled marks a pixel no face has claimed yet.
const unlabeled int64 = -1

// LabelImage is a dense raster mapping each pixel to the face label that
// owns it. Pixel (0,0) is the image's top-left corner; each pixel covers
// the unit square [x, x+1) x [y, y+1) in map coordinates.
type LabelImage struct {
	width, height int
	pixels        []int64
}

// New returns a width x height LabelImage with every pixel unlabeled.
func New(width, height int) *LabelImage {
	li := &LabelImage{
		width:  width,
		height: height,
		pixels: make([]int64, width*height),
	}
	for i := range li.pixels {
		li.pixels[i] = unlabeled
	}
	return li
}

// Width returns the image width in pixels.
func (li *LabelImage) Width() int { return li.width }

// Height returns the image height in pixels.
func (li *LabelImage) Height() int { return li.height }

func (li *LabelImage) index(x, y int) (int, error) {
	if x < 0 || x >= li.width || y < 0 || y >= li.height {
		return 0, fmt.Errorf("imagelabel: (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	return y*li.width + x, nil
}

// At returns the face label at pixel (x, y), and false if the pixel has
// not been claimed by any face.
func (li *LabelImage) At(x, y int) (planarmap.CellLabel, bool) {
	i, err := li.index(x, y)
	if err != nil || li.pixels[i] == unlabeled {
		return 0, false
	}
	return planarmap.CellLabel(li.pixels[i]), true
}

// Set assigns label to pixel (x, y). Out-of-bounds coordinates are
// silently ignored, matching scanline fill's half-open interval
// clamping at the image edges.
func (li *LabelImage) Set(x, y int, label planarmap.CellLabel) {
	i, err := li.index(x, y)
	if err != nil {
		return
	}
	li.pixels[i] = int64(label)
}

// FaceLabelAt implements planarmap.PixelClassifier: it floors (x, y) to
// the containing pixel and reports that pixel's label.
func (li *LabelImage) FaceLabelAt(x, y float64) (planarmap.CellLabel, bool) {
	return li.At(int(math.Floor(x)), int(math.Floor(y)))
}

// Clear resets every pixel to unlabeled.
func (li *LabelImage) Clear() {
	for i := range li.pixels {
		li.pixels[i] = unlabeled
	}
}

// PixelAt, SetPixel and ClearPixel implement planarmap.PixelSink, letting
// the Euler operators keep a LabelImage installed via SetPixelClassifier
// in lockstep with edits to the map it rasterizes.

// PixelAt returns the face label at pixel (x, y), and false if unclaimed.
func (li *LabelImage) PixelAt(x, y int) (planarmap.CellLabel, bool) { return li.At(x, y) }

// SetPixel assigns label to pixel (x, y).
func (li *LabelImage) SetPixel(x, y int, label planarmap.CellLabel) { li.Set(x, y, label) }

// ClearPixel marks pixel (x, y) unclaimed.
func (li *LabelImage) ClearPixel(x, y int) {
	i, err := li.index(x, y)
	if err != nil {
		return
	}
	li.pixels[i] = unlabeled
}
