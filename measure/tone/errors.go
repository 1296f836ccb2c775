package tone

import (
	"errors"
	"math"
)

var (
	// ErrInvalidSampleRate is returned for a sample rate that is not a
	// positive finite number.
	ErrInvalidSampleRate = errors.New("tone: sample rate must be > 0")
	// ErrInvalidFrequency is returned for a frequency outside [0, rate/2].
	ErrInvalidFrequency = errors.New("tone: frequency must be between 0 and sampleRate/2")
	// ErrEmptyInput is returned when a measurement gets no samples.
	ErrEmptyInput = errors.New("tone: empty input")
	// ErrShortInput is returned when a spectrum is requested for a block
	// shorter than two samples.
	ErrShortInput = errors.New("tone: spectrum needs at least two samples")
)

func validate(freqHz, sampleRate float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return ErrInvalidSampleRate
	}

	if !(freqHz >= 0 && freqHz <= sampleRate/2) {
		return ErrInvalidFrequency
	}

	return nil
}
