package biquad

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	archregistry "github.com/cwbudde/algo-apm/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-apm/internal/cpu"
)

// Coefficients describe one second-order section.
//
// B holds the numerator b0, b1, b2. A holds the feedback taps a0, a1 of the
// denominator 1 + a0*z^-1 + a1*z^-2; its leading 1 is not stored.
type Coefficients struct {
	B [3]float32
	A [2]float32
}

// State is a section's delay line. X[0] and Y[0] are the most recent input
// and output, X[1] and Y[1] the ones before.
type State struct {
	X [2]float32
	Y [2]float32
}

// Section is a single direct-form-1 biquad with its delay line.
type Section struct {
	Coefficients

	x, y [2]float32
}

var (
	processBlockImpl     archregistry.ProcessBlockFn
	processBlockInitOnce sync.Once
)

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float32) float32 {
	b, a := s.B, s.A
	y := float32(b[0]*x) + float32(b[1]*s.x[0]) + float32(b[2]*s.x[1]) -
		float32(a[0]*s.y[0]) - float32(a[1]*s.y[1])

	s.x[1], s.x[0] = s.x[0], x
	s.y[1], s.y[0] = s.y[0], y

	return y
}

// ProcessTo filters src into dst. The slices must have equal length; dst may
// be src for in-place processing but must not otherwise overlap it.
// Zero-alloc.
func (s *Section) ProcessTo(dst, src []float32) {
	if len(dst) != len(src) {
		panic(fmt.Sprintf("biquad: output length %d != input length %d", len(dst), len(src)))
	}

	processBlockInitOnce.Do(initProcessBlockKernel)

	st := processBlockImpl(
		archregistry.Coefficients(s.Coefficients),
		archregistry.State{X: s.x, Y: s.y},
		dst, src,
	)
	s.x, s.y = st.X, st.Y
}

// ProcessBlock filters buf in place.
func (s *Section) ProcessBlock(buf []float32) {
	s.ProcessTo(buf, buf)
}

// Reset clears the delay line to zero.
func (s *Section) Reset() {
	s.x = [2]float32{}
	s.y = [2]float32{}
}

// State returns the current delay line.
func (s *Section) State() State {
	return State{X: s.x, Y: s.y}
}

// SetState restores a previously saved delay line.
func (s *Section) SetState(st State) {
	s.x, s.y = st.X, st.Y
}

func initProcessBlockKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("biquad: no ProcessBlock kernel registered (missing generic fallback?)")
	}

	if entry.ProcessBlock == nil {
		panic("biquad: selected kernel missing ProcessBlock")
	}

	logrus.WithFields(logrus.Fields{
		"function": "initProcessBlockKernel",
		"kernel":   entry.Name,
		"simd":     entry.SIMDLevel.String(),
	}).Debug("Selected biquad block kernel")

	processBlockImpl = entry.ProcessBlock
}
