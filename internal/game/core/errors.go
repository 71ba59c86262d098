package core

import "errors"

// Invariant violations. They are raised with panic, wrapped with context,
// because they can only happen through a logic defect.
var (
	ErrOutOfBounds        = errors.New("coordinate out of bounds")
	ErrPlacementExhausted = errors.New("ship placement attempts exhausted")
	ErrNoTarget           = errors.New("no untargeted cell left")
	ErrUnsupportedEvent   = errors.New("turn event not yet supported")
	ErrInvalidTransition  = errors.New("invalid phase transition")
)
