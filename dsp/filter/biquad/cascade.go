package biquad

import "fmt"

// Cascade is an ordered chain of biquad sections processed in series.
// The number of sections is fixed at construction.
type Cascade struct {
	sections []Section
}

// NewCascade creates a cascade with one section per coefficient set, in
// order. An empty table yields an identity filter.
func NewCascade(coeffs []Coefficients) *Cascade {
	c := &Cascade{sections: make([]Section, len(coeffs))}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// Process filters in into out. The slices must have equal length.
//
// The first section reads in and writes out; every later section then works
// in place on out. in is therefore only read during the first pass, and out
// may be the same slice as in.
func (c *Cascade) Process(in, out []float32) {
	if len(in) != len(out) {
		panic(fmt.Sprintf("biquad: cascade input length %d != output length %d", len(in), len(out)))
	}

	if len(c.sections) == 0 {
		copy(out, in)
		return
	}

	c.sections[0].ProcessTo(out, in)
	for k := 1; k < len(c.sections); k++ {
		c.sections[k].ProcessTo(out, out)
	}
}

// ProcessInPlace filters buf in place through every section.
func (c *Cascade) ProcessInPlace(buf []float32) {
	for k := range c.sections {
		c.sections[k].ProcessTo(buf, buf)
	}
}

// ProcessSample cascades one sample through all sections in order.
func (c *Cascade) ProcessSample(x float32) float32 {
	for k := range c.sections {
		x = c.sections[k].ProcessSample(x)
	}

	return x
}

// Reset clears all section states, e.g. after a stream discontinuity.
func (c *Cascade) Reset() {
	for k := range c.sections {
		c.sections[k].Reset()
	}
}

// Order returns the total filter order (2 per section).
func (c *Cascade) Order() int {
	return 2 * len(c.sections)
}

// NumSections returns the number of biquad sections.
func (c *Cascade) NumSections() int {
	return len(c.sections)
}

// Coefficients returns a copy of the i-th section's coefficients.
func (c *Cascade) Coefficients(i int) Coefficients {
	return c.sections[i].Coefficients
}

// State returns a snapshot of all section delay lines.
func (c *Cascade) State() []State {
	states := make([]State, len(c.sections))
	for k := range c.sections {
		states[k] = c.sections[k].State()
	}

	return states
}

// SetState restores previously saved section states.
// The slice length must match NumSections.
func (c *Cascade) SetState(states []State) {
	if len(states) != len(c.sections) {
		panic(fmt.Sprintf("biquad: %d states for %d sections", len(states), len(c.sections)))
	}

	for k := range c.sections {
		c.sections[k].SetState(states[k])
	}
}
