// Package testutil holds deterministic float32 signal generators and
// tolerance helpers shared by package tests.
package testutil

import (
	"math"
	"math/rand"
)

// SineFrame fills dst with amplitude*sin(phase), advancing phase by
// 2*pi*freqHz/sampleRate per sample and returning the phase after the last
// sample. Calling it frame after frame yields a phase-continuous tone.
func SineFrame(dst []float32, freqHz, sampleRate float64, amplitude float32, phase float64) float64 {
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range dst {
		dst[i] = amplitude * float32(math.Sin(phase))
		phase += step
	}

	return phase
}

// DeterministicSine generates a sine wave starting at phase 0.
func DeterministicSine(freqHz, sampleRate float64, amplitude float32, length int) []float32 {
	out := make([]float32, length)
	SineFrame(out, freqHz, sampleRate, amplitude, 0)

	return out
}

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude)
// with a fixed seed.
func DeterministicNoise(seed int64, amplitude float32, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float32()*2 - 1) * amplitude
	}

	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float32 {
	out := make([]float32, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// DC generates a constant-valued signal.
func DC(value float32, length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = value
	}

	return out
}

// Ones returns a slice of length n filled with 1.
func Ones(n int) []float32 {
	return DC(1, n)
}

// Ramp returns 0, 1, ..., n-1.
func Ramp(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i)
	}

	return out
}
