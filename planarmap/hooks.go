package planarmap

// Hooks lets external observers (notably the pyramid package's history
// recorder) watch and veto the four Euler operator families before they
// mutate a Map, react to them afterward, and observe raster pixels as
// they are reassigned to a face. Every registration method returns a
// HookHandle that the matching Remove method retires; handles are never
// reused.
//
// Pre-hooks run in registration order and short-circuit on the first veto
// (return false); none of the operation's mutations have happened yet, so
// a veto leaves the map untouched. Post-hooks run in registration order
// after the mutation has fully committed and cannot fail the operation.
type Hooks struct {
	preRemoveNode  []hookEntry[PreRemoveNodeFunc]
	postRemoveNode []hookEntry[PostRemoveNodeFunc]

	preMergeEdges  []hookEntry[PreMergeEdgesFunc]
	postMergeEdges []hookEntry[PostMergeEdgesFunc]

	preRemoveBridge  []hookEntry[PreRemoveBridgeFunc]
	postRemoveBridge []hookEntry[PostRemoveBridgeFunc]

	preMergeFaces  []hookEntry[PreMergeFacesFunc]
	postMergeFaces []hookEntry[PostMergeFacesFunc]

	associatePixels []hookEntry[AssociatePixelsFunc]

	nextHandle HookHandle
}

// HookHandle identifies a registered hook for later removal.
type HookHandle uint64

type hookEntry[F any] struct {
	handle HookHandle
	fn     F
}

// PreRemoveNodeFunc is consulted before removeIsolatedNode; returning
// false vetoes the operation.
type PreRemoveNodeFunc func(m *Map, nodeLabel CellLabel) bool

// PostRemoveNodeFunc runs after removeIsolatedNode has committed.
type PostRemoveNodeFunc func(m *Map, nodeLabel CellLabel)

// PreMergeEdgesFunc is consulted before mergeEdges, given the dart at the
// degree-2 node whose two incident edges are about to merge.
type PreMergeEdgesFunc func(m *Map, dart Dart) bool

// PostMergeEdgesFunc runs after mergeEdges has committed, naming the
// surviving edge's label.
type PostMergeEdgesFunc func(m *Map, survivingEdgeLabel CellLabel)

// PreRemoveBridgeFunc is consulted before removeBridge.
type PreRemoveBridgeFunc func(m *Map, dart Dart) bool

// PostRemoveBridgeFunc runs after removeBridge has committed, naming the
// face both sides of the former bridge now belong to.
type PostRemoveBridgeFunc func(m *Map, survivingFaceLabel CellLabel)

// PreMergeFacesFunc is consulted before mergeFaces.
type PreMergeFacesFunc func(m *Map, dart Dart) bool

// PostMergeFacesFunc runs after mergeFaces has committed, naming the
// surviving face's label.
type PostMergeFacesFunc func(m *Map, survivingFaceLabel CellLabel)

// AssociatePixelsFunc runs after removeBridge or mergeFaces resolves edge
// pixels to a face, naming the face that received them and their
// coordinates. It has no veto counterpart; it only ever observes.
type AssociatePixelsFunc func(m *Map, faceLabel CellLabel, pixels []PixelCoord)

func (h *Hooks) takeHandle() HookHandle {
	h.nextHandle++
	return h.nextHandle
}

// AddPreRemoveNodeHook registers fn to run before every removeIsolatedNode.
func (h *Hooks) AddPreRemoveNodeHook(fn PreRemoveNodeFunc) HookHandle {
	hd := h.takeHandle()
	h.preRemoveNode = append(h.preRemoveNode, hookEntry[PreRemoveNodeFunc]{hd, fn})
	return hd
}

// RemovePreRemoveNodeHook retires a previously registered hook.
func (h *Hooks) RemovePreRemoveNodeHook(hd HookHandle) {
	h.preRemoveNode = removeHook(h.preRemoveNode, hd)
}

// AddPostRemoveNodeHook registers fn to run after every removeIsolatedNode.
func (h *Hooks) AddPostRemoveNodeHook(fn PostRemoveNodeFunc) HookHandle {
	hd := h.takeHandle()
	h.postRemoveNode = append(h.postRemoveNode, hookEntry[PostRemoveNodeFunc]{hd, fn})
	return hd
}

// RemovePostRemoveNodeHook retires a previously registered hook.
func (h *Hooks) RemovePostRemoveNodeHook(hd HookHandle) {
	h.postRemoveNode = removeHook(h.postRemoveNode, hd)
}

// AddPreMergeEdgesHook registers fn to run before every mergeEdges.
func (h *Hooks) AddPreMergeEdgesHook(fn PreMergeEdgesFunc) HookHandle {
	hd := h.takeHandle()
	h.preMergeEdges = append(h.preMergeEdges, hookEntry[PreMergeEdgesFunc]{hd, fn})
	return hd
}

// RemovePreMergeEdgesHook retires a previously registered hook.
func (h *Hooks) RemovePreMergeEdgesHook(hd HookHandle) {
	h.preMergeEdges = removeHook(h.preMergeEdges, hd)
}

// AddPostMergeEdgesHook registers fn to run after every mergeEdges.
func (h *Hooks) AddPostMergeEdgesHook(fn PostMergeEdgesFunc) HookHandle {
	hd := h.takeHandle()
	h.postMergeEdges = append(h.postMergeEdges, hookEntry[PostMergeEdgesFunc]{hd, fn})
	return hd
}

// RemovePostMergeEdgesHook retires a previously registered hook.
func (h *Hooks) RemovePostMergeEdgesHook(hd HookHandle) {
	h.postMergeEdges = removeHook(h.postMergeEdges, hd)
}

// AddPreRemoveBridgeHook registers fn to run before every removeBridge.
func (h *Hooks) AddPreRemoveBridgeHook(fn PreRemoveBridgeFunc) HookHandle {
	hd := h.takeHandle()
	h.preRemoveBridge = append(h.preRemoveBridge, hookEntry[PreRemoveBridgeFunc]{hd, fn})
	return hd
}

// RemovePreRemoveBridgeHook retires a previously registered hook.
func (h *Hooks) RemovePreRemoveBridgeHook(hd HookHandle) {
	h.preRemoveBridge = removeHook(h.preRemoveBridge, hd)
}

// AddPostRemoveBridgeHook registers fn to run after every removeBridge.
func (h *Hooks) AddPostRemoveBridgeHook(fn PostRemoveBridgeFunc) HookHandle {
	hd := h.takeHandle()
	h.postRemoveBridge = append(h.postRemoveBridge, hookEntry[PostRemoveBridgeFunc]{hd, fn})
	return hd
}

// RemovePostRemoveBridgeHook retires a previously registered hook.
func (h *Hooks) RemovePostRemoveBridgeHook(hd HookHandle) {
	h.postRemoveBridge = removeHook(h.postRemoveBridge, hd)
}

// AddPreMergeFacesHook registers fn to run before every mergeFaces.
func (h *Hooks) AddPreMergeFacesHook(fn PreMergeFacesFunc) HookHandle {
	hd := h.takeHandle()
	h.preMergeFaces = append(h.preMergeFaces, hookEntry[PreMergeFacesFunc]{hd, fn})
	return hd
}

// RemovePreMergeFacesHook retires a previously registered hook.
func (h *Hooks) RemovePreMergeFacesHook(hd HookHandle) {
	h.preMergeFaces = removeHook(h.preMergeFaces, hd)
}

// AddPostMergeFacesHook registers fn to run after every mergeFaces.
func (h *Hooks) AddPostMergeFacesHook(fn PostMergeFacesFunc) HookHandle {
	hd := h.takeHandle()
	h.postMergeFaces = append(h.postMergeFaces, hookEntry[PostMergeFacesFunc]{hd, fn})
	return hd
}

// RemovePostMergeFacesHook retires a previously registered hook.
func (h *Hooks) RemovePostMergeFacesHook(hd HookHandle) {
	h.postMergeFaces = removeHook(h.postMergeFaces, hd)
}

// AddAssociatePixelsHook registers fn to run whenever removeBridge or
// mergeFaces resolves a batch of raster pixels to a face.
func (h *Hooks) AddAssociatePixelsHook(fn AssociatePixelsFunc) HookHandle {
	hd := h.takeHandle()
	h.associatePixels = append(h.associatePixels, hookEntry[AssociatePixelsFunc]{hd, fn})
	return hd
}

// RemoveAssociatePixelsHook retires a previously registered hook.
func (h *Hooks) RemoveAssociatePixelsHook(hd HookHandle) {
	h.associatePixels = removeHook(h.associatePixels, hd)
}

func removeHook[F any](entries []hookEntry[F], hd HookHandle) []hookEntry[F] {
	for i, e := range entries {
		if e.handle == hd {
			return append(entries[:i:i], entries[i+1:]...)
		}
	}
	return entries
}

func (h *Hooks) fireRemoveNodePre(m *Map, nodeLabel CellLabel) bool {
	for _, e := range h.preRemoveNode {
		if !e.fn(m, nodeLabel) {
			return false
		}
	}
	return true
}

func (h *Hooks) fireRemoveNodePost(m *Map, nodeLabel CellLabel) {
	for _, e := range h.postRemoveNode {
		e.fn(m, nodeLabel)
	}
}

func (h *Hooks) fireMergeEdgesPre(m *Map, dart Dart) bool {
	for _, e := range h.preMergeEdges {
		if !e.fn(m, dart) {
			return false
		}
	}
	return true
}

func (h *Hooks) fireMergeEdgesPost(m *Map, survivingEdgeLabel CellLabel) {
	for _, e := range h.postMergeEdges {
		e.fn(m, survivingEdgeLabel)
	}
}

func (h *Hooks) fireRemoveBridgePre(m *Map, dart Dart) bool {
	for _, e := range h.preRemoveBridge {
		if !e.fn(m, dart) {
			return false
		}
	}
	return true
}

func (h *Hooks) fireRemoveBridgePost(m *Map, survivingFaceLabel CellLabel) {
	for _, e := range h.postRemoveBridge {
		e.fn(m, survivingFaceLabel)
	}
}

func (h *Hooks) fireMergeFacesPre(m *Map, dart Dart) bool {
	for _, e := range h.preMergeFaces {
		if !e.fn(m, dart) {
			return false
		}
	}
	return true
}

func (h *Hooks) fireMergeFacesPost(m *Map, survivingFaceLabel CellLabel) {
	for _, e := range h.postMergeFaces {
		e.fn(m, survivingFaceLabel)
	}
}

func (h *Hooks) fireAssociatePixels(m *Map, faceLabel CellLabel, pixels []PixelCoord) {
	for _, e := range h.associatePixels {
		e.fn(m, faceLabel, pixels)
	}
}
