package decimate

import (
	"fmt"

	"github.com/cwbudde/algo-apm/dsp/filter/biquad"
)

// Elliptic low-pass used as the anti-aliasing filter for factor 4.
var lowPassDs4 = []biquad.Coefficients{
	{B: [3]float32{0.0180919877, 0.00320961363, 0.0180919877}, A: [2]float32{-1.5183195, 0.633165865}},
	{B: [3]float32{1, -1.24550459, 1}, A: [2]float32{-1.49784254, 0.853586692}},
	{B: [3]float32{1, -1.4221681, 1}, A: [2]float32{-1.49791282, 0.969572384}},
}

// Chebyshev band-pass used as the anti-aliasing filter for factor 8.
var bandPassDs8 = []biquad.Coefficients{
	{B: [3]float32{0.103304783, 0, -0.103304783}, A: [2]float32{-1.520363, 0.793390435}},
	{B: [3]float32{0.103304783, 0, -0.103304783}, A: [2]float32{-1.520363, 0.793390435}},
	{B: [3]float32{0.103304783, 0, -0.103304783}, A: [2]float32{-1.520363, 0.793390435}},
	{B: [3]float32{0.103304783, 0, -0.103304783}, A: [2]float32{-1.520363, 0.793390435}},
	{B: [3]float32{0.103304783, 0, -0.103304783}, A: [2]float32{-1.520363, 0.793390435}},
}

// Butterworth high-pass removing low-frequency noise after factor-4
// anti-aliasing.
var highPass = []biquad.Coefficients{
	{B: [3]float32{0.757076375, -1.51415275, 0.757076375}, A: [2]float32{-1.45424359, 0.574061915}},
}

// The band-pass already suppresses the low band.
var passThrough = []biquad.Coefficients{}

// Filters returns the anti-aliasing and noise-reduction coefficient tables
// used for factor. The slices must not be modified.
func Filters(factor int) (antiAliasing, noiseReduction []biquad.Coefficients) {
	switch factor {
	case 4:
		return lowPassDs4, highPass
	case 8:
		return bandPassDs8, passThrough
	default:
		panic(fmt.Sprintf("decimate: unsupported factor %d (want 4 or 8)", factor))
	}
}
