//go:build arm64 && !purego

package biquad

import (
	_ "github.com/cwbudde/algo-apm/dsp/filter/biquad/internal/arch/generic" // register generic kernel
	_ "github.com/cwbudde/algo-apm/dsp/filter/biquad/internal/arch/unroll4" // register unrolled kernel
)
