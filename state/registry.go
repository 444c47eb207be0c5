package state

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Factory builds a fresh, uninstalled state.
type Factory func() State

var (
	variants = map[string]Factory{
		"ConcreteStateA": func() State { return NewConcreteStateA() },
		"ConcreteStateB": func() State { return NewConcreteStateB() },
	}
	variantsMu sync.RWMutex
)

// RegisterVariant adds or replaces a named variant factory.
func RegisterVariant(name string, factory Factory) {
	variantsMu.Lock()
	defer variantsMu.Unlock()

	variants[name] = factory
}

// NewVariant builds a new instance of the named variant.
func NewVariant(name string) (State, error) {
	variantsMu.RLock()
	factory, exists := variants[name]
	variantsMu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, name)
	}
	return factory(), nil
}

// Variants lists registered variant names in sorted order.
func Variants() []string {
	variantsMu.RLock()
	defer variantsMu.RUnlock()

	return slices.Sorted(maps.Keys(variants))
}
