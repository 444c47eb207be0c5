package state

import (
	"context"

	"github.com/google/uuid"
)

// Operation names a State handler.
type Operation string

const (
	OpHandle1 Operation = "handle1"
	OpHandle2 Operation = "handle2"
)

// State is one phase of a Context's behavior. Handlers run synchronously on
// the caller's goroutine and may call Owner().TransitionTo.
//
// ID, SetContext, and Owner are normally promoted from an embedded Base.
type State interface {
	// ID returns the instance identifier.
	ID() string
	// Name returns the variant name reported in events.
	Name() string
	// Handle1 serves Context.Request1.
	Handle1(ctx context.Context)
	// Handle2 serves Context.Request2.
	Handle2(ctx context.Context)
	// SetContext sets the owner back-reference. The Context calls it on
	// install and again with nil on release.
	SetContext(c *Context)
	// Owner returns the Context the state is installed in, or nil.
	Owner() *Context
}

// Releaser is implemented by states that must tear something down when
// their Context lets go of them. Release is called exactly once.
type Releaser interface {
	Release(ctx context.Context)
}

// Base carries a State's identity and its non-owning reference to the
// Context it is installed in.
type Base struct {
	id    string
	owner *Context
}

// NewBase returns a Base with a fresh UUIDv7 identifier.
func NewBase() Base {
	return Base{id: newID()}
}

func (b *Base) ID() string {
	return b.id
}

func (b *Base) SetContext(c *Context) {
	if b.id == "" {
		b.id = newID()
	}
	b.owner = c
}

func (b *Base) Owner() *Context {
	return b.owner
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
