package tone

import (
	"fmt"
	"math"
)

// Detector evaluates one DFT bin over every sample fed since the last Reset,
// using the Goertzel recurrence. Leakage is lowest when the block holds an
// integer number of cycles.
type Detector struct {
	coeff  float64
	s0, s1 float64
	n      int
	// edge is set for DC and Nyquist, whose bins have no mirror image.
	edge bool
}

// NewDetector returns a detector for freqHz at sampleRate.
func NewDetector(freqHz, sampleRate float64) (*Detector, error) {
	if err := validate(freqHz, sampleRate); err != nil {
		return nil, fmt.Errorf("new detector %v Hz @ %v Hz: %w", freqHz, sampleRate, err)
	}

	return &Detector{
		coeff: 2 * math.Cos(2*math.Pi*freqHz/sampleRate),
		edge:  freqHz == 0 || freqHz == sampleRate/2,
	}, nil
}

// Process feeds a block of samples.
func (d *Detector) Process(x []float32) {
	s0, s1, coeff := d.s0, d.s1, d.coeff
	for _, v := range x {
		s := float64(v) + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	d.s0, d.s1 = s0, s1
	d.n += len(x)
}

// BinPower returns |X[k]|^2 for the samples processed so far.
func (d *Detector) BinPower() float64 {
	return d.s0*d.s0 + d.s1*d.s1 - d.coeff*d.s0*d.s1
}

// Power returns the mean power of the tone, A*A/2 for a sine of amplitude A.
// At DC and Nyquist it is A*A, the power of a constant or alternating signal.
func (d *Detector) Power() float64 {
	if d.n == 0 {
		return 0
	}

	n := float64(d.n)
	p := d.BinPower() / (n * n)

	if d.edge {
		return p
	}

	return 2 * p
}

// LevelDB returns Power in dB.
func (d *Detector) LevelDB() float64 {
	return LinearToDB(d.Power())
}

// Samples returns the number of samples processed since the last Reset.
func (d *Detector) Samples() int { return d.n }

// Reset clears the accumulated state.
func (d *Detector) Reset() {
	d.s0, d.s1, d.n = 0, 0, 0
}

// LevelDB measures the level of freqHz in x in one shot.
func LevelDB(x []float32, freqHz, sampleRate float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}

	d, err := NewDetector(freqHz, sampleRate)
	if err != nil {
		return 0, err
	}

	d.Process(x)

	return d.LevelDB(), nil
}
