package pyramid

import "errors"

// Sentinel errors for pyramid operations.
var (
	// ErrOutOfRange indicates a level index outside [0, MaxLevel()].
	ErrOutOfRange = errors.New("pyramid: level out of range")

	// ErrCompositeAlreadyOpen indicates BeginComposite was called while a
	// composite transaction was already open.
	ErrCompositeAlreadyOpen = errors.New("pyramid: composite transaction already open")

	// ErrNoCompositeOpen indicates EndComposite or AbortComposite was
	// called with no matching BeginComposite.
	ErrNoCompositeOpen = errors.New("pyramid: no composite transaction open")
)
