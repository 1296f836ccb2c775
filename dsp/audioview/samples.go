package audioview

import "fmt"

// CopySamples copies every sample of src into dst, destination first as with
// the builtin copy.
//
// Both views must have the same channel count and samples per channel, and
// dst must hold at least src.Len() samples. The copy walks the storage order
// of each view, so an interleaved source lands in an interleaved destination
// unchanged; use [Interleave] or [Deinterleave] to change layout.
func CopySamples[T Sample](dst, src SampleView[T]) {
	if dst.NumChannels() != src.NumChannels() {
		panic(fmt.Sprintf("audioview: copy between %d and %d channels", dst.NumChannels(), src.NumChannels()))
	}

	if dst.SamplesPerChannel() != src.SamplesPerChannel() {
		panic(fmt.Sprintf("audioview: copy between %d and %d samples per channel",
			dst.SamplesPerChannel(), src.SamplesPerChannel()))
	}

	if dst.Len() < src.Len() {
		panic(fmt.Sprintf("audioview: destination holds %d samples, source has %d", dst.Len(), src.Len()))
	}

	di, off := 0, 0
	for si := range src.numSegments() {
		s := src.segment(si)
		for len(s) > 0 {
			d := dst.segment(di)
			n := copy(d[off:], s)
			s = s[n:]

			off += n
			if off == len(d) {
				di++
				off = 0
			}
		}
	}
}

// ClearSamples zeroes every sample of v.
func ClearSamples[T Sample](v SampleView[T]) {
	for i := range v.numSegments() {
		clear(v.segment(i))
	}
}

// ClearSamplesN zeroes the first count samples of v in storage order.
// count must not exceed v.Len().
func ClearSamplesN[T Sample](v SampleView[T], count int) {
	if count < 0 || count > v.Len() {
		panic(fmt.Sprintf("audioview: clear %d samples of %d", count, v.Len()))
	}

	for i := 0; count > 0; i++ {
		seg := v.segment(i)
		n := min(count, len(seg))
		clear(seg[:n])
		count -= n
	}
}
