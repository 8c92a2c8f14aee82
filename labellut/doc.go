// Package labellut provides LUT, a union-find-like label resolver used to
// keep a face-label raster in sync with face merges without touching every
// pixel on every merge.
//
// LUT maintains two parallel arrays over [0..N):
//
//	label[i]      - current representative ("canonical") label of i
//	prevMerged[i] - previous element in the list of labels merged into
//	                label[i]; a self-loop (prevMerged[i] == i) ends the list
//
// Relabel(from, to) walks the from-list via prevMerged, rewrites every
// element's label to to, then splices the from-list onto the head of to's
// list. The cost of any sequence of relabels is bounded by the number of
// elements that ever move, never by N^2.
package labellut
