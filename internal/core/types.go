package core

import (
	"sort"

	"mad-life/pkg/life"
)

// Size describes the dimensions of a window or viewport in pixels.
type Size struct {
	W int
	H int
}

// Factory builds a fresh copy of a named pattern.
type Factory func() *life.Grid

var patterns = map[string]Factory{}

// Register adds a pattern factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Patterns exposes the registry of available pattern factories.
func Patterns() map[string]Factory {
	return patterns
}

// PatternNames returns the registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
