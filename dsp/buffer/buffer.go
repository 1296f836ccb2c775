package buffer

import (
	"fmt"

	"github.com/cwbudde/algo-apm/dsp/audioview"
)

// Buffer is a deinterleaved block of float32 audio.
type Buffer struct {
	numChannels int
	numFrames   int
	samples     []float32
	channels    [][]float32
}

// New returns a zero-filled Buffer of numChannels channels with numFrames
// samples each.
func New(numFrames, numChannels int) *Buffer {
	b := &Buffer{}
	b.Resize(numFrames, numChannels)

	return b
}

// FromInterleaved returns a Buffer holding a deinterleaved copy of src.
func FromInterleaved(src audioview.Interleaved[float32]) *Buffer {
	b := New(src.SamplesPerChannel(), src.NumChannels())
	b.CopyFromInterleaved(src)

	return b
}

// NumChannels returns the channel count.
func (b *Buffer) NumChannels() int { return b.numChannels }

// NumFrames returns the number of samples per channel.
func (b *Buffer) NumFrames() int { return b.numFrames }

// Channel returns the samples of channel c. The slice aliases the buffer.
func (b *Buffer) Channel(c int) []float32 {
	if c < 0 || c >= b.numChannels {
		panic(fmt.Sprintf("buffer: channel %d out of range [0, %d)", c, b.numChannels))
	}

	return b.channels[c]
}

// Channels returns one slice per channel, aliasing the buffer.
func (b *Buffer) Channels() [][]float32 { return b.channels }

// Samples returns all channels back to back.
func (b *Buffer) Samples() []float32 { return b.samples }

// View returns a deinterleaved view over the buffer.
func (b *Buffer) View() audioview.Deinterleaved[float32] {
	return audioview.NewDeinterleaved(b.samples, b.numFrames, b.numChannels)
}

// Resize changes the shape, reusing the backing allocation when it is large
// enough. All samples are zero afterwards.
func (b *Buffer) Resize(numFrames, numChannels int) {
	if numFrames < 0 {
		numFrames = 0
	}

	if numChannels < 0 {
		numChannels = 0
	}

	n := numFrames * numChannels
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
		clear(b.samples)
	} else {
		b.samples = make([]float32, n)
	}

	if numChannels <= cap(b.channels) {
		b.channels = b.channels[:numChannels]
	} else {
		b.channels = make([][]float32, numChannels)
	}

	for c := range b.channels {
		start := c * numFrames
		b.channels[c] = b.samples[start : start+numFrames : start+numFrames]
	}

	b.numFrames = numFrames
	b.numChannels = numChannels
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	clear(b.samples)
}

// CopyFromInterleaved deinterleaves src into the buffer. The shapes must
// match.
func (b *Buffer) CopyFromInterleaved(src audioview.Interleaved[float32]) {
	audioview.Deinterleave(b.View(), src)
}

// CopyToInterleaved interleaves the buffer into dst. The shapes must match.
func (b *Buffer) CopyToInterleaved(dst audioview.Interleaved[float32]) {
	audioview.Interleave(dst, b.View())
}

// Copy returns a deep copy of the buffer.
func (b *Buffer) Copy() *Buffer {
	c := New(b.numFrames, b.numChannels)
	copy(c.samples, b.samples)

	return c
}
