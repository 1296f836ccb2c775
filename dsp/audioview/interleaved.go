package audioview

import "fmt"

// Interleaved is a view over frames of side-by-side channel samples.
// The zero value is an empty view.
type Interleaved[T Sample] struct {
	numChannels       int
	samplesPerChannel int
	data              []T
}

// NewInterleaved returns a view over the first numChannels*samplesPerChannel
// elements of data.
//
// It panics if numChannels exceeds [MaxChannels], if exactly one of
// numChannels and samplesPerChannel is zero, or if data is too short.
func NewInterleaved[T Sample](data []T, samplesPerChannel, numChannels int) Interleaved[T] {
	checkShape(samplesPerChannel, numChannels)

	if numChannels > MaxChannels {
		panic(fmt.Sprintf("audioview: %d channels exceeds maximum of %d", numChannels, MaxChannels))
	}

	if (numChannels == 0) != (samplesPerChannel == 0) {
		panic(fmt.Sprintf("audioview: inconsistent shape %d channels x %d samples", numChannels, samplesPerChannel))
	}

	n := numChannels * samplesPerChannel
	if len(data) < n {
		panic(fmt.Sprintf("audioview: buffer holds %d samples, view needs %d", len(data), n))
	}

	return Interleaved[T]{
		numChannels:       numChannels,
		samplesPerChannel: samplesPerChannel,
		data:              data[:n:n],
	}
}

// InterleavedFromSlice views all of data as numChannels interleaved channels.
// len(data) must be a multiple of numChannels.
func InterleavedFromSlice[T Sample](data []T, numChannels int) Interleaved[T] {
	if numChannels <= 0 {
		panic(fmt.Sprintf("audioview: invalid channel count %d", numChannels))
	}

	if len(data)%numChannels != 0 {
		panic(fmt.Sprintf("audioview: %d samples do not divide into %d channels", len(data), numChannels))
	}

	return NewInterleaved(data, len(data)/numChannels, numChannels)
}

func (v Interleaved[T]) NumChannels() int       { return v.numChannels }
func (v Interleaved[T]) SamplesPerChannel() int { return v.samplesPerChannel }
func (v Interleaved[T]) Len() int               { return len(v.data) }
func (v Interleaved[T]) IsInterleaved() bool    { return true }

// Empty reports whether the view holds no samples.
func (v Interleaved[T]) Empty() bool { return len(v.data) == 0 }

// Data returns the viewed samples in interleaved order.
func (v Interleaved[T]) Data() []T { return v.data }

// Frame returns the numChannels samples of frame i.
func (v Interleaved[T]) Frame(i int) []T {
	start := i * v.numChannels
	return v.data[start : start+v.numChannels : start+v.numChannels]
}

// AsMono narrows a single-channel view to [Mono]. It panics for any other
// channel count.
func (v Interleaved[T]) AsMono() Mono[T] {
	if v.numChannels != 1 {
		panic(fmt.Sprintf("audioview: AsMono on %d-channel interleaved view", v.numChannels))
	}

	return Mono[T](v.data)
}

// CopyFrom copies the samples of src, which must have the same shape.
func (v Interleaved[T]) CopyFrom(src Interleaved[T]) {
	CopySamples[T](v, src)
}

func (v Interleaved[T]) numSegments() int { return 1 }
func (v Interleaved[T]) segment(int) []T  { return v.data }

func checkShape(samplesPerChannel, numChannels int) {
	if samplesPerChannel < 0 || numChannels < 0 {
		panic(fmt.Sprintf("audioview: negative shape %d channels x %d samples", numChannels, samplesPerChannel))
	}
}
