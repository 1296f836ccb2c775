package audioview

// MaxChannels is the largest channel count an [Interleaved] view accepts.
const MaxChannels = 24

// Sample is the set of supported sample types.
type Sample interface {
	~int16 | ~float32 | ~float64
}

// View describes the shape of a multi-channel buffer.
type View interface {
	NumChannels() int
	SamplesPerChannel() int
	// Len is NumChannels() * SamplesPerChannel().
	Len() int
	IsInterleaved() bool
}

// SampleView is a View whose samples can be walked in storage order.
//
// The contiguous segments of a view, concatenated, yield exactly Len()
// samples: one segment for [Mono], [Interleaved] and flat [Deinterleaved]
// views, one per channel for channel-slice [Deinterleaved] views.
type SampleView[T Sample] interface {
	View
	numSegments() int
	segment(i int) []T
}

// NumChannels returns the channel count of v.
func NumChannels(v View) int { return v.NumChannels() }

// SamplesPerChannel returns the number of frames in v.
func SamplesPerChannel(v View) int { return v.SamplesPerChannel() }

// IsMono reports whether v holds exactly one channel.
func IsMono(v View) bool { return v.NumChannels() == 1 }

// IsInterleavedView reports whether v uses an interleaved layout. Mono views
// count as interleaved.
func IsInterleavedView(v View) bool { return v.IsInterleaved() }
