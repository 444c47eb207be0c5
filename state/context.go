package state

import (
	"context"
	"fmt"
	"time"

	"github.com/tailored-agentic-units/statepattern/config"
	"github.com/tailored-agentic-units/statepattern/observability"
)

// Option configures a Context before its initial state is installed.
type Option func(*Context)

// WithObserver sets the event sink. A nil observer discards events.
func WithObserver(o observability.Observer) Option {
	return func(c *Context) {
		if o == nil {
			o = observability.NoOpObserver{}
		}
		c.observer = o
	}
}

// WithName sets the name reported in events.
func WithName(name string) Option {
	return func(c *Context) { c.name = name }
}

// Context owns one current State and delegates requests to it.
type Context struct {
	id       string
	name     string
	observer observability.Observer

	current     State
	staged      []State
	depth       int
	transitions int
	closed      bool
}

// New creates a Context and installs initial through TransitionTo, so the
// initial install is reported like any other transition.
func New(ctx context.Context, initial State, opts ...Option) (*Context, error) {
	if initial == nil {
		return nil, ErrNilState
	}

	c := &Context{
		id:       newID(),
		name:     "context",
		observer: observability.NoOpObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.TransitionTo(ctx, initial)
	return c, nil
}

// NewFromConfig resolves the initial variant and observers named in cfg and
// creates the Context. Options are applied after the config-derived ones.
func NewFromConfig(ctx context.Context, cfg *config.ContextConfig, opts ...Option) (*Context, error) {
	initial, err := NewVariant(cfg.Initial)
	if err != nil {
		return nil, fmt.Errorf("failed to create initial state: %w", err)
	}

	observer, err := observability.Resolve(cfg.Observers...)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observers: %w", err)
	}

	all := make([]Option, 0, len(opts)+2)
	all = append(all, WithObserver(observer))
	if cfg.Name != "" {
		all = append(all, WithName(cfg.Name))
	}
	all = append(all, opts...)

	return New(ctx, initial, all...)
}

func (c *Context) ID() string {
	return c.id
}

func (c *Context) Name() string {
	return c.name
}

// Current returns the installed state. It is never nil between New and
// Close.
func (c *Context) Current() State {
	return c.current
}

// Transitions counts TransitionTo calls, including the initial install.
func (c *Context) Transitions() int {
	return c.transitions
}

func (c *Context) Closed() bool {
	return c.closed
}

// TransitionTo installs next as the current state and binds it to c.
//
// The outgoing state is released immediately when no handler is running.
// When called from a handler it is staged and released once the outermost
// Request1 or Request2 call returns.
//
// Passing nil, passing a state already installed in a Context, or calling
// TransitionTo after Close is a programming error and panics.
func (c *Context) TransitionTo(ctx context.Context, next State) {
	if next == nil {
		panic("state: TransitionTo with nil state")
	}
	if c.closed {
		panic("state: TransitionTo on closed Context")
	}
	if next.Owner() != nil {
		panic(fmt.Sprintf("state: %s %s is already installed", next.Name(), next.ID()))
	}

	prev := c.current
	c.current = next
	next.SetContext(c)
	c.transitions++

	c.emit(ctx, observability.Event{
		Type:   EventTransition,
		Level:  observability.LevelInfo,
		Source: "state.Context",
		Data: map[string]any{
			"context":  c.name,
			"state":    next.Name(),
			"state_id": next.ID(),
		},
	})

	if prev != nil {
		c.retire(ctx, prev)
	}
}

// Request1 delegates to the current state's Handle1.
func (c *Context) Request1(ctx context.Context) error {
	return c.dispatch(ctx, OpHandle1)
}

// Request2 delegates to the current state's Handle2.
func (c *Context) Request2(ctx context.Context) error {
	return c.dispatch(ctx, OpHandle2)
}

// Request dispatches a request by name: "request1" or "request2".
func (c *Context) Request(ctx context.Context, name string) error {
	switch name {
	case "request1":
		return c.Request1(ctx)
	case "request2":
		return c.Request2(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRequest, name)
	}
}

// Run sends each named request in order and stops at the first error.
func (c *Context) Run(ctx context.Context, requests ...string) error {
	for i, name := range requests {
		if err := c.Request(ctx, name); err != nil {
			return fmt.Errorf("request %d: %w", i+1, err)
		}
	}
	return nil
}

// Report emits a handler event on behalf of s. Variants call it to describe
// what they are doing.
func (c *Context) Report(ctx context.Context, s State, op Operation, note string) {
	c.emit(ctx, observability.Event{
		Type:   EventHandle,
		Level:  observability.LevelInfo,
		Source: "state." + s.Name(),
		Data: map[string]any{
			"context":   c.name,
			"state":     s.Name(),
			"state_id":  s.ID(),
			"operation": string(op),
			"note":      note,
		},
	})
}

// Close releases the current state. Called from inside a handler, the
// release waits until the handler returns. A second Close returns
// ErrClosed and releases nothing.
func (c *Context) Close(ctx context.Context) error {
	if c.closed {
		return ErrClosed
	}

	last := c.current
	c.current = nil
	c.closed = true

	c.emit(ctx, observability.Event{
		Type:   EventClose,
		Level:  observability.LevelVerbose,
		Source: "state.Context",
		Data: map[string]any{
			"context":     c.name,
			"transitions": c.transitions,
		},
	})

	c.retire(ctx, last)
	return nil
}

func (c *Context) dispatch(ctx context.Context, op Operation) error {
	if c.closed {
		return ErrClosed
	}

	s := c.current
	c.depth++
	defer c.settle(ctx)

	switch op {
	case OpHandle1:
		s.Handle1(ctx)
	case OpHandle2:
		s.Handle2(ctx)
	}
	return nil
}

// retire releases s now, or stages it while any handler is on the stack.
func (c *Context) retire(ctx context.Context, s State) {
	if c.depth > 0 {
		c.staged = append(c.staged, s)
		return
	}
	c.release(ctx, s)
}

func (c *Context) settle(ctx context.Context) {
	c.depth--
	if c.depth > 0 {
		return
	}

	staged := c.staged
	c.staged = nil
	for _, s := range staged {
		c.release(ctx, s)
	}
}

func (c *Context) release(ctx context.Context, s State) {
	if r, ok := s.(Releaser); ok {
		r.Release(ctx)
	}
	s.SetContext(nil)

	c.emit(ctx, observability.Event{
		Type:   EventRelease,
		Level:  observability.LevelVerbose,
		Source: "state.Context",
		Data: map[string]any{
			"context":  c.name,
			"state":    s.Name(),
			"state_id": s.ID(),
		},
	})
}

func (c *Context) emit(ctx context.Context, event observability.Event) {
	event.Timestamp = time.Now()
	c.observer.OnEvent(ctx, event)
}
