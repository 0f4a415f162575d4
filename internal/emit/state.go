package emit

import "strings"

// State accumulates the generated fragments across Generate calls.
// One State serves one run; nothing is shared between runs.
type State struct {
	// Package is the name of the package the artifacts are emitted
	// into. It prefixes guard panic messages.
	Package string

	// Nodes holds record struct definitions, union interfaces and
	// their conformance methods.
	Nodes strings.Builder

	// Hook field declarations, one per node, for each traversal.
	VisitHooks     strings.Builder
	MutateHooks    strings.Builder
	TransformHooks strings.Builder

	// Dispatch methods and free walk functions for each traversal.
	VisitBody     strings.Builder
	MutateBody    strings.Builder
	TransformBody strings.Builder

	// Span accessor functions.
	SpanBody strings.Builder
}

// NewState returns emission state for artifacts in the named package.
func NewState(pkg string) *State {
	return &State{Package: pkg}
}
