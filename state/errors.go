package state

import "errors"

// Sentinel errors for Context construction and request dispatch.
var (
	ErrNilState       = errors.New("nil state")
	ErrClosed         = errors.New("context closed")
	ErrUnknownRequest = errors.New("unknown request")
	ErrUnknownVariant = errors.New("unknown state variant")
)
