//go:build amd64 && !purego

package unroll4

import (
	"github.com/cwbudde/algo-apm/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-apm/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "unroll4",
		SIMDLevel:    cpu.SIMDSSE2,
		Priority:     10,
		ProcessBlock: ProcessBlock,
	})
}
