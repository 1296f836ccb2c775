package postfilter

import (
	"fmt"

	"github.com/cwbudde/algo-apm/dsp/audioview"
	"github.com/cwbudde/algo-apm/dsp/buffer"
	"github.com/cwbudde/algo-apm/dsp/filter/biquad"
)

// Fourth-order Chebyshev type II low-pass, 19.5 kHz at 48 kHz.
var lowPass48k = []biquad.Coefficients{
	{B: [3]float32{0.56142156, 1.11499931, 0.56142156}, A: [2]float32{1.57914249, 0.63379496}},
	{B: [3]float32{1, 1.88944170, 1}, A: [2]float32{1.55130066, 0.68708719}},
	{B: [3]float32{1, 1.76057310, 1}, A: [2]float32{1.53001328, 0.78591224}},
	{B: [3]float32{1, 1.67448535, 1}, A: [2]float32{1.56506670, 0.92096576}},
}

// CoefficientsFor returns the coefficient table for the sample rate, or nil
// when the rate needs no post filtering. The returned slice must not be
// modified.
func CoefficientsFor(sampleRateHz int) []biquad.Coefficients {
	if sampleRateHz == 48000 {
		return lowPass48k
	}

	return nil
}

// PostFilter applies an independent low-pass cascade to each channel.
//
// A PostFilter is not safe for concurrent use.
type PostFilter struct {
	filters []*biquad.Cascade
}

// CreateIfNeeded returns a post filter for the rate, or nil if the rate has
// no coefficient table.
func CreateIfNeeded(sampleRateHz, numChannels int) *PostFilter {
	coeffs := CoefficientsFor(sampleRateHz)
	if coeffs == nil {
		return nil
	}

	return New(coeffs, numChannels)
}

// New returns a post filter running coeffs on numChannels channels. coeffs
// must not be empty.
func New(coeffs []biquad.Coefficients, numChannels int) *PostFilter {
	if len(coeffs) == 0 {
		panic("postfilter: empty coefficient table")
	}

	if numChannels < 0 {
		panic(fmt.Sprintf("postfilter: negative channel count %d", numChannels))
	}

	p := &PostFilter{filters: make([]*biquad.Cascade, numChannels)}
	for c := range p.filters {
		p.filters[c] = biquad.NewCascade(coeffs)
	}

	return p
}

// NumChannels returns the number of channels the filter was built for.
func (p *PostFilter) NumChannels() int {
	return len(p.filters)
}

// Process filters every channel of audio in place. The channel count must
// match NumChannels.
func (p *PostFilter) Process(audio audioview.Deinterleaved[float32]) {
	if audio.NumChannels() != len(p.filters) {
		panic(fmt.Sprintf("postfilter: %d channels, filter built for %d", audio.NumChannels(), len(p.filters)))
	}

	for c, f := range p.filters {
		f.ProcessInPlace(audio.Channel(c))
	}
}

// ProcessBuffer filters an owned buffer in place.
func (p *PostFilter) ProcessBuffer(b *buffer.Buffer) {
	p.Process(b.View())
}

// Reset clears the state of every channel.
func (p *PostFilter) Reset() {
	for _, f := range p.filters {
		f.Reset()
	}
}
