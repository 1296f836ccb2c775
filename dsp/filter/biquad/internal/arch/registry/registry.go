// Package registry holds the direct-form-1 block kernels available to the
// biquad package, ranked by priority and gated by CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-apm/internal/cpu"
)

// Coefficients mirror biquad.Coefficients: B holds b0..b2, A holds the
// feedback taps a0, a1 of a denominator whose leading 1 is implicit.
type Coefficients struct {
	B [3]float32
	A [2]float32
}

// State is the direct-form-1 delay line: X[0] is x[n-1], X[1] is x[n-2],
// and likewise for Y.
type State struct {
	X [2]float32
	Y [2]float32
}

// ProcessBlockFn filters src into dst with one section and returns the
// updated state. len(dst) == len(src); dst may be src.
type ProcessBlockFn func(c Coefficients, s State, dst, src []float32) State

// OpEntry is one registered kernel implementation.
type OpEntry struct {
	Name         string
	SIMDLevel    cpu.SIMDLevel
	Priority     int
	ProcessBlock ProcessBlockFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features,
// or nil when none qualifies.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority is a stable insertion sort, highest priority first.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)

	return entries
}
