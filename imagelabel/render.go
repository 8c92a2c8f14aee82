package imagelabel

import "github.com/eldruin/geomap/planarmap"

// RenderMap rasterizes every finite live face of m into a fresh
// LabelImage sized to m's construction image dimensions, installs it as
// m's PixelClassifier, and returns it.
func RenderMap(m *planarmap.Map) *LabelImage {
	w, h := m.ImageSize()
	li := New(w, h)
	for _, label := range m.FaceLabels() {
		f, err := m.Face(label)
		if err != nil || f.IsInfinite() {
			continue
		}
		FillFace(li, f)
	}
	m.SetPixelClassifier(li)
	return li
}
