// Package unroll4 registers a 4x-unrolled direct-form-1 kernel. It performs
// exactly the operations of the generic kernel in the same order, so its
// output is bit-identical; the unrolling only removes loop overhead.
package unroll4

import "github.com/cwbudde/algo-apm/dsp/filter/biquad/internal/arch/registry"

// ProcessBlock is the unrolled kernel. All four inputs of a group are read
// before any output is written, so dst may alias src.
func ProcessBlock(c registry.Coefficients, s registry.State, dst, src []float32) registry.State {
	b0, b1, b2 := c.B[0], c.B[1], c.B[2]
	a0, a1 := c.A[0], c.A[1]
	x0, x1 := s.X[0], s.X[1]
	y0, y1 := s.Y[0], s.Y[1]

	n := len(src)
	dst = dst[:n]

	i := 0
	for ; i+3 < n; i += 4 {
		in0, in1, in2, in3 := src[i], src[i+1], src[i+2], src[i+3]

		out0 := float32(b0*in0) + float32(b1*x0) + float32(b2*x1) - float32(a0*y0) - float32(a1*y1)
		out1 := float32(b0*in1) + float32(b1*in0) + float32(b2*x0) - float32(a0*out0) - float32(a1*y0)
		out2 := float32(b0*in2) + float32(b1*in1) + float32(b2*in0) - float32(a0*out1) - float32(a1*out0)
		out3 := float32(b0*in3) + float32(b1*in2) + float32(b2*in1) - float32(a0*out2) - float32(a1*out1)

		dst[i] = out0
		dst[i+1] = out1
		dst[i+2] = out2
		dst[i+3] = out3

		x0, x1 = in3, in2
		y0, y1 = out3, out2
	}

	for ; i < n; i++ {
		x := src[i]
		y := float32(b0*x) + float32(b1*x0) + float32(b2*x1) - float32(a0*y0) - float32(a1*y1)
		dst[i] = y

		x1, x0 = x0, x
		y1, y0 = y0, y
	}

	return registry.State{X: [2]float32{x0, x1}, Y: [2]float32{y0, y1}}
}
