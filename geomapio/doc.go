// Package geomapio decodes and encodes the JSON construction-input
// format consumed by planarmap.NewFromDescription: two parallel lists of
// nodes and edges, index 0 reserved as a hole on each, plus the raster
// dimensions the input was digitized against.
package geomapio
