package render

import "sync"

// MemoryRenderer is a Renderer that records the last fragment applied to
// each target. It backs tests and embedding hosts that want to observe
// component output without a real presentation layer.
type MemoryRenderer struct {
	mu      sync.Mutex
	applied map[string]Fragment
	applies int
}

// Compile-time assertion that MemoryRenderer implements Renderer.
var _ Renderer = (*MemoryRenderer)(nil)

// NewMemoryRenderer creates an empty MemoryRenderer.
func NewMemoryRenderer() *MemoryRenderer {
	return &MemoryRenderer{applied: make(map[string]Fragment)}
}

// CreateTarget allocates a fresh in-memory target.
func (r *MemoryRenderer) CreateTarget() Target {
	return NewTarget()
}

// Apply records the fragment as the target's current output.
func (r *MemoryRenderer) Apply(target Target, fragment Fragment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applied[target.ID()] = fragment
	r.applies++
	return nil
}

// Output returns the last fragment applied to the target.
func (r *MemoryRenderer) Output(target Target) (Fragment, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fragment, ok := r.applied[target.ID()]
	return fragment, ok
}

// Applies returns the total number of Apply calls across all targets.
func (r *MemoryRenderer) Applies() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.applies
}
