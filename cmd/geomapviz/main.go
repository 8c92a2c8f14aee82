// Command geomapviz loads a geomap JSON description, builds the planar
// subdivision it describes, rasterizes its faces, and writes a PNG
// visualization coloring each face by label.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/colornames"

	"github.com/eldruin/geomap/geomapio"
	"github.com/eldruin/geomap/imagelabel"
	"github.com/eldruin/geomap/planarmap"
)

func main() {
	in := flag.String("in", "", "path to a geomap JSON description")
	out := flag.String("out", "geomap.png", "path to write the rendered PNG")
	flag.Parse()

	if *in == "" {
		log.Fatal("geomapviz: -in is required")
	}

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("geomapviz: open %s: %v", *in, err)
	}
	defer f.Close()

	desc, err := geomapio.LoadDescription(f)
	if err != nil {
		log.Fatalf("geomapviz: load description: %v", err)
	}

	m, err := planarmap.NewFromDescription(desc)
	if err != nil {
		log.Fatalf("geomapviz: build map: %v", err)
	}
	if err := m.CheckConsistency(); err != nil {
		log.Fatalf("geomapviz: inconsistent map: %v", err)
	}

	raster := imagelabel.RenderMap(m)
	img := renderPNG(raster)

	of, err := os.Create(*out)
	if err != nil {
		log.Fatalf("geomapviz: create %s: %v", *out, err)
	}
	defer of.Close()

	if err := png.Encode(of, img); err != nil {
		log.Fatalf("geomapviz: encode png: %v", err)
	}
	log.Printf("geomapviz: wrote %s (%dx%d, %d faces)", *out, raster.Width(), raster.Height(), m.FaceCount())
}

var palette = []string{
	"steelblue", "tomato", "goldenrod", "mediumseagreen",
	"orchid", "darkcyan", "sienna", "slateblue",
}

func renderPNG(li *imagelabel.LabelImage) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, li.Width(), li.Height()))
	for y := 0; y < li.Height(); y++ {
		for x := 0; x < li.Width(); x++ {
			label, ok := li.At(x, y)
			if !ok {
				img.Set(x, y, color.White)
				continue
			}
			img.Set(x, y, colornames.Map[palette[int(label)%len(palette)]])
		}
	}
	return img
}
