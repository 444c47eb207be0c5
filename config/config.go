// Package config holds the initialization parameters for a state Context
// and the demo driver. Configs are read from JSON or YAML, merged onto
// defaults, and then resolved into live objects by the state package.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultInitial  = "ConcreteStateA"
	DefaultObserver = "console"
)

// ContextConfig describes one Context and the requests to drive it with.
//
// Example YAML:
//
//	name: demo
//	initial: ConcreteStateB
//	observers: [console, slog]
//	requests: [request2, request1]
type ContextConfig struct {
	// Name identifies the Context in emitted events.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Initial is the variant name installed at construction.
	Initial string `json:"initial,omitempty" yaml:"initial,omitempty"`

	// Observers are observability registry names; events fan out to all.
	Observers []string `json:"observers,omitempty" yaml:"observers,omitempty"`

	// Requests is the ordered script of requests ("request1", "request2").
	Requests []string `json:"requests,omitempty" yaml:"requests,omitempty"`
}

// DefaultContextConfig returns the canonical scenario: start in
// ConcreteStateA, print to the console, send request1 then request2.
func DefaultContextConfig() ContextConfig {
	return ContextConfig{
		Name:      "context",
		Initial:   DefaultInitial,
		Observers: []string{DefaultObserver},
		Requests:  []string{"request1", "request2"},
	}
}

// Merge applies non-zero values from source into c. Slices replace rather
// than append.
func (c *ContextConfig) Merge(source *ContextConfig) {
	if source.Name != "" {
		c.Name = source.Name
	}
	if source.Initial != "" {
		c.Initial = source.Initial
	}
	if len(source.Observers) > 0 {
		c.Observers = source.Observers
	}
	if len(source.Requests) > 0 {
		c.Requests = source.Requests
	}
}

// LoadConfig reads filename, decodes it as YAML when the extension is
// .yaml or .yml and as JSON otherwise, and merges it onto the defaults.
func LoadConfig(filename string) (*ContextConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded ContextConfig
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &loaded)
	default:
		err = json.Unmarshal(data, &loaded)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filepath.Base(filename), err)
	}

	cfg := DefaultContextConfig()
	cfg.Merge(&loaded)
	return &cfg, nil
}
