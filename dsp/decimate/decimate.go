package decimate

import (
	"fmt"

	"github.com/cwbudde/algo-apm/dsp/filter/biquad"
)

// BlockSize is the number of input samples consumed per Decimate call.
const BlockSize = 64

// Decimator filters and down-samples one render channel.
//
// A Decimator is not safe for concurrent use.
type Decimator struct {
	factor         int
	antiAliasing   *biquad.Cascade
	noiseReduction *biquad.Cascade
	scratch        [BlockSize]float32
}

// New returns a decimator for factor 4 or 8. Any other factor panics.
func New(factor int) *Decimator {
	aa, nr := Filters(factor)

	return &Decimator{
		factor:         factor,
		antiAliasing:   biquad.NewCascade(aa),
		noiseReduction: biquad.NewCascade(nr),
	}
}

// Factor returns the down-sampling factor.
func (d *Decimator) Factor() int {
	return d.factor
}

// OutputSize returns the number of samples Decimate writes per block.
func (d *Decimator) OutputSize() int {
	return BlockSize / d.factor
}

// Decimate filters one block of BlockSize samples and writes every
// Factor()-th filtered sample to out, starting with the first. in is not
// modified. len(out) must equal OutputSize().
func (d *Decimator) Decimate(in, out []float32) {
	if len(in) != BlockSize {
		panic(fmt.Sprintf("decimate: input length %d != %d", len(in), BlockSize))
	}

	if len(out) != d.OutputSize() {
		panic(fmt.Sprintf("decimate: output length %d != %d", len(out), d.OutputSize()))
	}

	x := d.scratch[:]
	d.antiAliasing.Process(in, x)
	d.noiseReduction.ProcessInPlace(x)

	for j, k := 0, 0; j < len(out); j, k = j+1, k+d.factor {
		out[j] = x[k]
	}
}
