// Package cpu reports the instruction set extensions that matter for choosing
// a filter kernel.
//
// Detection runs lazily on the first DetectFeatures call and is cached. Tests
// can pin a feature set with SetForcedFeatures to exercise every kernel on one
// machine.
package cpu

import "sync"

// SIMDLevel names an instruction set extension a kernel may depend on.
type SIMDLevel int

const (
	// SIMDNone requires nothing beyond the Go compiler.
	SIMDNone SIMDLevel = iota
	// SIMDSSE2 is the amd64 baseline.
	SIMDSSE2
	// SIMDAVX2 is x86-64 AVX2.
	SIMDAVX2
	// SIMDNEON is ARM Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// ForceGeneric restricts selection to SIMDNone kernels.
	ForceGeneric bool

	Architecture string
}

var (
	detectMu       sync.Mutex
	detectOnce     sync.Once
	detected       Features
	forcedMu       sync.RWMutex
	forcedFeatures *Features
)

// DetectFeatures returns the features of the running CPU, or the forced set
// when one is installed. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMu.RLock()
	forced := forcedFeatures
	forcedMu.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMu.Lock()
	defer detectMu.Unlock()

	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})

	return detected
}

// SetForcedFeatures overrides hardware detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()

	forcedFeatures = &f
}

// ResetDetection drops any forced features and the cached detection result.
func ResetDetection() {
	forcedMu.Lock()
	forcedFeatures = nil
	forcedMu.Unlock()

	detectMu.Lock()
	detectOnce = sync.Once{}
	detected = Features{}
	detectMu.Unlock()
}

// Supports reports whether features satisfy level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
