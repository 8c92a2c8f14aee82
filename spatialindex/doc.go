// Package spatialindex provides Index, an ordered 2-D point index keyed by
// the first coordinate, supporting nearest-neighbor lookup within a squared
// radius. It backs node de-duplication and nearestNode queries in planarmap.
//
// No ordered-map or B-tree third-party dependency appears anywhere in the
// retrieval pack this module was built from; the teacher itself reaches for
// a sorted slice plus binary search instead of a tree container for
// comparable ordering problems (core's deterministic Vertices()/Edges(),
// builder's ID sequences). Index follows that precedent: a slice of entries
// sorted by X, searched with sort.Search, mutated by slice splice.
package spatialindex
