// Package geompoly provides Point, BoundingBox and Polygon: a growable
// ordered sequence of 2-D points with a cached, invalidate-on-mutation
// bounding box and a signed partial-area contribution.
//
// A Polygon on its own is not closed; the area of a face contour is the sum
// of PartialArea() over every dart visited in a phi-orbit walk (see
// planarmap). BoundingBox's union operator mirrors the cache-union idiom
// akhenakh-geo's Rect uses for incremental extents.
package geompoly
