package tone

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/window"
	"gonum.org/v1/gonum/floats"
)

// lobeBins is the half-width of the Hann main lobe that SpectrumLevelDB
// integrates, in bins of the unpadded block.
const lobeBins = 3

// Spectrum holds the one-sided power spectrum of a Hann-windowed block,
// zero-padded to the next power of two.
type Spectrum struct {
	// Power[k] is |X[k]|^2 for bin k, k = 0..FFTSize/2.
	Power      []float64
	SampleRate float64

	size     int
	lobe     int
	windowSq float64
	binWidth float64
}

// Analyze computes the Hann-windowed power spectrum of x. The block is
// zero-padded to the next power of two; x needs at least two samples.
func Analyze(x []float32, sampleRate float64) (*Spectrum, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	if len(x) < 2 {
		return nil, ErrShortInput
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, ErrInvalidSampleRate
	}

	n := len(x)
	ones := make([]float64, n)
	floats.AddConst(1, ones)
	coeffs := window.Hann(ones)

	samples := make([]float64, n)
	for i, v := range x {
		samples[i] = float64(v)
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	fftSize := nextPowerOf2(n)

	in := make([]complex128, fftSize)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("analyze: fft plan of size %d: %w", fftSize, err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("analyze: forward fft: %w", err)
	}

	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)

	for k, c := range out[:half] {
		re[k], im[k] = real(c), imag(c)
	}

	power := make([]float64, half)
	vecmath.Power(power, re, im)

	return &Spectrum{
		Power:      power,
		SampleRate: sampleRate,
		size:       fftSize,
		lobe:       (lobeBins*fftSize + n - 1) / n,
		windowSq:   floats.Dot(coeffs, coeffs),
		binWidth:   sampleRate / float64(fftSize),
	}, nil
}

// FFTSize returns the transform length after zero padding.
func (s *Spectrum) FFTSize() int { return s.size }

// Bin returns the bin index nearest to freqHz.
func (s *Spectrum) Bin(freqHz float64) int {
	k := int(math.Round(freqHz / s.binWidth))

	return min(max(k, 0), len(s.Power)-1)
}

// Frequency returns the center frequency of bin k.
func (s *Spectrum) Frequency(k int) float64 {
	return float64(k) * s.binWidth
}

// PeakFrequency returns the center frequency of the strongest bin.
func (s *Spectrum) PeakFrequency() float64 {
	return s.Frequency(floats.MaxIdx(s.Power))
}

// BandPower returns the mean signal power carried by bins lo..hi inclusive.
func (s *Spectrum) BandPower(lo, hi int) float64 {
	lo = max(lo, 0)
	hi = min(hi, len(s.Power)-1)

	if hi < lo || s.windowSq == 0 {
		return 0
	}

	// One-sided spectrum: every bin but DC and Nyquist has a mirror image.
	var sum float64
	for k := lo; k <= hi; k++ {
		p := s.Power[k]
		if k != 0 && k != s.size/2 {
			p *= 2
		}

		sum += p
	}

	return sum / (float64(s.size) * s.windowSq)
}

// ToneLevelDB returns the level of the tone nearest freqHz, integrating the
// window main lobe around it.
func (s *Spectrum) ToneLevelDB(freqHz float64) float64 {
	k := s.Bin(freqHz)

	return LinearToDB(s.BandPower(k-s.lobe, k+s.lobe))
}

// SpectrumLevelDB measures the level of freqHz in x with a windowed FFT.
func SpectrumLevelDB(x []float32, freqHz, sampleRate float64) (float64, error) {
	if err := validate(freqHz, sampleRate); err != nil {
		return 0, fmt.Errorf("spectrum level: %w", err)
	}

	s, err := Analyze(x, sampleRate)
	if err != nil {
		return 0, fmt.Errorf("spectrum level: %w", err)
	}

	return s.ToneLevelDB(freqHz), nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}

	return p
}
