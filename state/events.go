package state

import "github.com/tailored-agentic-units/statepattern/observability"

const (
	// Context lifecycle
	EventTransition observability.EventType = "context.transition"
	EventClose      observability.EventType = "context.close"

	// State activity
	EventHandle  observability.EventType = "state.handle"
	EventRelease observability.EventType = "state.release"
)
