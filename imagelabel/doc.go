// Package imagelabel rasterizes a planarmap.Map's faces into a pixel
// label image, and answers point-in-face queries against that raster
// instead of the map's geometry directly. A LabelImage satisfies
// planarmap.PixelClassifier, so a constructed Map can be wired back to
// its own raster for fast FaceAt lookups.
package imagelabel
