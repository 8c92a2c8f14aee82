package planarmap

import "errors"

// Sentinel errors for planarmap operations. Callers branch with errors.Is;
// a handful carry offending-label context via fmt.Errorf("...: %w", ErrX).
var (
	// ErrInvalidHandle indicates an operation referenced an uninitialized
	// or unknown node/edge/face/dart.
	ErrInvalidHandle = errors.New("planarmap: invalid or removed handle")

	// ErrPreconditionViolated indicates an Euler operator's precondition
	// failed (e.g. mergeEdges on a non-degree-2 node, removeBridge on a
	// non-bridge, mergeFaces on a bridge).
	ErrPreconditionViolated = errors.New("planarmap: precondition violated")

	// ErrInvariantBroken indicates an internal "should never happen"
	// inconsistency was detected; fatal to the operation in progress.
	ErrInvariantBroken = errors.New("planarmap: invariant broken")

	// ErrHookVetoed indicates a pre-hook returned false, aborting the
	// operation before any mutation.
	ErrHookVetoed = errors.New("planarmap: operation vetoed by hook")

	// ErrOutOfRange indicates a label or index outside the valid range.
	ErrOutOfRange = errors.New("planarmap: label or index out of range")

	// ErrUnsortable indicates sortEdgesEventually encountered a group of
	// collinear darts whose positions all hit the edge end before angular
	// resolution was achieved.
	ErrUnsortable = errors.New("planarmap: group of edges is unsortable")

	// ErrAlreadyInitialized indicates initContours/embedFaces was called
	// on a map that already has contours/a label image.
	ErrAlreadyInitialized = errors.New("planarmap: already initialized")
)
