// Package generic registers the portable direct-form-1 kernel.
package generic

import (
	"github.com/cwbudde/algo-apm/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-apm/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "generic",
		SIMDLevel:    cpu.SIMDNone,
		Priority:     0,
		ProcessBlock: ProcessBlock,
	})
}

// ProcessBlock runs one sample at a time:
//
//	y[n] = b0*x[n] + b1*x[n-1] + b2*x[n-2] - a0*y[n-1] - a1*y[n-2]
//
// Every product is converted explicitly so the compiler cannot fuse it into
// a multiply-add; all kernels must round identically.
func ProcessBlock(c registry.Coefficients, s registry.State, dst, src []float32) registry.State {
	b0, b1, b2 := c.B[0], c.B[1], c.B[2]
	a0, a1 := c.A[0], c.A[1]
	x0, x1 := s.X[0], s.X[1]
	y0, y1 := s.Y[0], s.Y[1]

	dst = dst[:len(src)]
	for k, x := range src {
		y := float32(b0*x) + float32(b1*x0) + float32(b2*x1) - float32(a0*y0) - float32(a1*y1)
		dst[k] = y

		x1, x0 = x0, x
		y1, y0 = y0, y
	}

	return registry.State{X: [2]float32{x0, x1}, Y: [2]float32{y0, y1}}
}
