package tone

import (
	"fmt"
	"math"
)

type config struct {
	amplitude float32
	phase     float64
}

// Option configures a Generator.
type Option func(*config)

// WithAmplitude sets the peak amplitude. Default 1.
func WithAmplitude(a float32) Option {
	return func(c *config) {
		c.amplitude = a
	}
}

// WithPhase sets the start phase in radians. Default 0.
func WithPhase(phase float64) Option {
	return func(c *config) {
		c.phase = phase
	}
}

// Generator produces a sine wave in consecutive frames with no phase jump
// between them. It is not safe for concurrent use.
type Generator struct {
	step      float64
	amplitude float32
	phase     float64
	start     float64
}

// NewGenerator returns a generator for freqHz at sampleRate.
func NewGenerator(freqHz, sampleRate float64, opts ...Option) (*Generator, error) {
	if err := validate(freqHz, sampleRate); err != nil {
		return nil, fmt.Errorf("new generator %v Hz @ %v Hz: %w", freqHz, sampleRate, err)
	}

	cfg := config{amplitude: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Generator{
		step:      2 * math.Pi * freqHz / sampleRate,
		amplitude: cfg.amplitude,
		phase:     cfg.phase,
		start:     cfg.phase,
	}, nil
}

// Generate fills dst with the next len(dst) samples.
func (g *Generator) Generate(dst []float32) {
	phase := g.phase
	for i := range dst {
		dst[i] = g.amplitude * float32(math.Sin(phase))
		phase += g.step
	}

	g.phase = math.Mod(phase, 2*math.Pi)
}

// Phase returns the phase of the next sample, reduced modulo 2*pi after
// each frame.
func (g *Generator) Phase() float64 { return g.phase }

// Reset rewinds the generator to its start phase.
func (g *Generator) Reset() { g.phase = g.start }
