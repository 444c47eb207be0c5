package state

import "context"

const changeNote = "wants to change the state of the context"

// ConcreteStateA moves its Context to ConcreteStateB on Handle1.
type ConcreteStateA struct {
	Base
}

func NewConcreteStateA() *ConcreteStateA {
	return &ConcreteStateA{Base: NewBase()}
}

func (*ConcreteStateA) Name() string {
	return "ConcreteStateA"
}

func (s *ConcreteStateA) Handle1(ctx context.Context) {
	c := s.Owner()
	c.Report(ctx, s, OpHandle1, "handles request1")
	c.Report(ctx, s, OpHandle1, changeNote)
	c.TransitionTo(ctx, NewConcreteStateB())
}

func (s *ConcreteStateA) Handle2(ctx context.Context) {
	s.Owner().Report(ctx, s, OpHandle2, "handles request2")
}

// ConcreteStateB moves its Context back to ConcreteStateA on Handle2.
type ConcreteStateB struct {
	Base
}

func NewConcreteStateB() *ConcreteStateB {
	return &ConcreteStateB{Base: NewBase()}
}

func (*ConcreteStateB) Name() string {
	return "ConcreteStateB"
}

func (s *ConcreteStateB) Handle1(ctx context.Context) {
	s.Owner().Report(ctx, s, OpHandle1, "handles request1")
}

func (s *ConcreteStateB) Handle2(ctx context.Context) {
	c := s.Owner()
	c.Report(ctx, s, OpHandle2, "handles request2")
	c.Report(ctx, s, OpHandle2, changeNote)
	c.TransitionTo(ctx, NewConcreteStateA())
}
