package audioview

import "fmt"

type storageKind uint8

const (
	// storageFlat packs channel c at flat[c*samplesPerChannel:].
	storageFlat storageKind = iota
	// storageChannels holds one independently allocated slice per channel.
	storageChannels
)

// Deinterleaved is a view over channels whose samples are each contiguous.
// The zero value is an empty view.
type Deinterleaved[T Sample] struct {
	numChannels       int
	samplesPerChannel int

	kind     storageKind
	flat     []T
	channels [][]T
}

// NewDeinterleaved returns a view whose channels are packed back to back in
// data.
func NewDeinterleaved[T Sample](data []T, samplesPerChannel, numChannels int) Deinterleaved[T] {
	checkShape(samplesPerChannel, numChannels)

	n := numChannels * samplesPerChannel
	if len(data) < n {
		panic(fmt.Sprintf("audioview: buffer holds %d samples, view needs %d", len(data), n))
	}

	return Deinterleaved[T]{
		numChannels:       numChannels,
		samplesPerChannel: samplesPerChannel,
		kind:              storageFlat,
		flat:              data[:n:n],
	}
}

// DeinterleavedFromChannels returns a view over separately allocated
// channels. Each channel must hold at least samplesPerChannel samples.
// The view keeps a reference to channels itself, not a copy.
func DeinterleavedFromChannels[T Sample](channels [][]T, samplesPerChannel int) Deinterleaved[T] {
	checkShape(samplesPerChannel, len(channels))

	for c, ch := range channels {
		if len(ch) < samplesPerChannel {
			panic(fmt.Sprintf("audioview: channel %d holds %d samples, view needs %d", c, len(ch), samplesPerChannel))
		}
	}

	return Deinterleaved[T]{
		numChannels:       len(channels),
		samplesPerChannel: samplesPerChannel,
		kind:              storageChannels,
		channels:          channels,
	}
}

func (v Deinterleaved[T]) NumChannels() int       { return v.numChannels }
func (v Deinterleaved[T]) SamplesPerChannel() int { return v.samplesPerChannel }
func (v Deinterleaved[T]) Len() int               { return v.numChannels * v.samplesPerChannel }
func (v Deinterleaved[T]) IsInterleaved() bool    { return false }

// Empty reports whether the view holds no samples.
func (v Deinterleaved[T]) Empty() bool {
	return v.numChannels == 0 || v.samplesPerChannel == 0
}

// IsFlat reports whether all channels share one backing buffer.
func (v Deinterleaved[T]) IsFlat() bool { return v.kind == storageFlat }

// Channel returns channel c as a [Mono] view. It panics if c is out of range.
func (v Deinterleaved[T]) Channel(c int) Mono[T] {
	if c < 0 || c >= v.numChannels {
		panic(fmt.Sprintf("audioview: channel %d out of range [0, %d)", c, v.numChannels))
	}

	n := v.samplesPerChannel
	switch v.kind {
	case storageChannels:
		return Mono[T](v.channels[c][:n:n])
	default:
		start := c * n
		return Mono[T](v.flat[start : start+n : start+n])
	}
}

// AsMono returns the only channel of a single-channel view. It panics for
// any other channel count.
func (v Deinterleaved[T]) AsMono() Mono[T] {
	if v.numChannels != 1 {
		panic(fmt.Sprintf("audioview: AsMono on %d-channel deinterleaved view", v.numChannels))
	}

	return v.Channel(0)
}

// Clear zeroes every sample in the view.
func (v Deinterleaved[T]) Clear() {
	ClearSamples[T](v)
}

func (v Deinterleaved[T]) numSegments() int {
	if v.kind == storageChannels {
		return v.numChannels
	}

	return 1
}

func (v Deinterleaved[T]) segment(i int) []T {
	if v.kind == storageChannels {
		return v.channels[i][:v.samplesPerChannel]
	}

	return v.flat
}
