// Package render defines the black-box template renderer capability consumed
// by the component lifecycle controller.
//
// The runtime never diffs or reconciles output itself: it rebuilds a
// Fragment on every render cycle and hands it to a Renderer, which is
// expected to apply it to the component's Target idempotently.
package render

import "github.com/google/uuid"

// Fragment is an opaque piece of combined templated output. It is never
// retained between render cycles.
type Fragment struct {
	// Styles is the style template fragment.
	Styles string
	// Markup is the markup template fragment.
	Markup string
}

// IsZero reports whether the fragment carries no output at all.
func (f Fragment) IsZero() bool {
	return f.Styles == "" && f.Markup == ""
}

// Target is an isolated output region (a shadow subtree or equivalent)
// created once per component; every render of that component goes to the
// same target.
type Target interface {
	// ID identifies the target for the renderer's bookkeeping.
	ID() string
}

// Renderer reconciles fragments against targets.
type Renderer interface {
	// CreateTarget allocates a new isolated output region.
	CreateTarget() Target

	// Apply reconciles the fragment against the target. Implementations must
	// be idempotent: applying the same fragment twice leaves the target
	// unchanged.
	Apply(target Target, fragment Fragment) error
}

// memoryTarget is the Target used by MemoryRenderer.
type memoryTarget struct {
	id string
}

func (t *memoryTarget) ID() string { return t.id }

// NewTarget allocates a standalone target with a unique ID. Useful for
// renderer implementations that have no richer handle of their own.
func NewTarget() Target {
	return &memoryTarget{id: uuid.NewString()}
}
