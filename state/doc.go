// Package state implements the State pattern: a Context delegates each
// request to its current State, and a State's handler may move the Context
// to another State while it is still running.
//
// # Core Components
//
// State - interface every variant implements; embed Base for identity and
// the owner back-reference
//
// Context - owns exactly one current State and forwards Request1/Request2 to
// it
//
// ConcreteStateA, ConcreteStateB - the two demo variants that hand control to
// each other
//
// # Transitions
//
// Transition logic lives in the handlers, not in the Context. A handler
// calls TransitionTo on its owner:
//
//	func (s *ConcreteStateA) Handle1(ctx context.Context) {
//	    c := s.Owner()
//	    c.Report(ctx, s, OpHandle1, "handles request1")
//	    c.TransitionTo(ctx, NewConcreteStateB())
//	}
//
// # Release
//
// A Context releases each State it owned exactly once: when the State is
// replaced or when the Context is closed. A State replaced from inside its
// own handler is staged and released only after control returns to the
// Context, so the running handler never observes its own teardown. Variants
// that hold resources implement Releaser.
//
// # Observability
//
// Every transition, handler report, and release is emitted as an
// observability.Event. ConsoleObserver renders the transition and handler
// events as plain text lines:
//
//	c, _ := state.New(ctx, state.NewConcreteStateA(),
//	    state.WithObserver(state.NewConsoleObserver(os.Stdout)))
//	c.Request1(ctx) // A -> B
//	c.Request2(ctx) // B -> A
//	c.Close(ctx)
//
// A Context is not safe for concurrent use. Callers sharing one across
// goroutines must serialize Request1, Request2, TransitionTo, and Close.
package state
