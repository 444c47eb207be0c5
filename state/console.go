package state

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/tailored-agentic-units/statepattern/observability"
)

func init() {
	observability.RegisterObserver("console", NewConsoleObserver(os.Stdout))
}

// ConsoleObserver prints transition and handler events as text lines:
//
//	Context: Transition to ConcreteStateB.
//	ConcreteStateB handles request2.
//
// Other event types are ignored. It is registered as "console" on stdout.
type ConsoleObserver struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsoleObserver(w io.Writer) *ConsoleObserver {
	return &ConsoleObserver{w: w}
}

func (o *ConsoleObserver) OnEvent(ctx context.Context, event observability.Event) {
	var line string
	switch event.Type {
	case EventTransition:
		line = fmt.Sprintf("Context: Transition to %v.\n", event.Data["state"])
	case EventHandle:
		line = fmt.Sprintf("%v %v.\n", event.Data["state"], event.Data["note"])
	default:
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	io.WriteString(o.w, line)
}
