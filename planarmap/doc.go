// Package planarmap implements GeoMap: a planar subdivision of 0-, 1- and
// 2-cells (Node, Edge, Face) with their geometric embeddings, connected by
// Dart cursors, plus the Euler-like editing operators that keep the
// subdivision's invariants intact while mutating it
// (RemoveIsolatedNode, MergeEdges, RemoveBridge, MergeFaces and the
// composites RemoveEdge, RemoveEdgeWithEnds).
//
// The map owns all cells exclusively; Node, Edge and Face are stored in
// label-indexed arenas (plain slices) rather than linked by pointer, so
// that cross-cell navigation never needs the map to track back-references
// into cell structs — cells and Darts carry a reference to their Map but
// never to another cell, and Dart is a small, copyable value type
// (mirrors core.Graph's label-keyed maps and
// the "cyclic back-references" redesign called for when porting a
// pointer-heavy original to Go).
//
// Handles returned by this package (Node, Edge, Face pointers and Dart
// values) are read-only aliases into the map's arenas: they become
// logically invalid after any Euler operation that touches their cell.
// Initialized() is the only safe liveness check on a held handle.
package planarmap
