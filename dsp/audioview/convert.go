package audioview

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f32"
)

const (
	s16FullScale  = 32768
	s16ToFloatMul = 1.0 / s16FullScale
)

// Interleave writes the channels of src into dst frame by frame.
func Interleave[T Sample](dst Interleaved[T], src Deinterleaved[T]) {
	checkSameShape(dst, src)

	if dst.numChannels == 2 && interleaveStereoFloat32(dst, src) {
		return
	}

	nch := dst.numChannels
	for c := range nch {
		for i, x := range src.Channel(c) {
			dst.data[i*nch+c] = x
		}
	}
}

// Deinterleave splits the frames of src into the channels of dst.
func Deinterleave[T Sample](dst Deinterleaved[T], src Interleaved[T]) {
	checkSameShape(dst, src)

	if src.numChannels == 2 && deinterleaveStereoFloat32(dst, src) {
		return
	}

	nch := src.numChannels
	for c := range nch {
		ch := dst.Channel(c)
		for i := range ch {
			ch[i] = src.data[i*nch+c]
		}
	}
}

// DownmixToMono averages the channels of src into dst.
func DownmixToMono(dst Mono[float32], src Interleaved[float32]) {
	if len(dst) != src.samplesPerChannel {
		panic(fmt.Sprintf("audioview: downmix of %d frames into %d samples", src.samplesPerChannel, len(dst)))
	}

	nch := src.numChannels
	if nch == 1 {
		copy(dst, src.data)
		return
	}

	n := float32(nch)
	for i := range dst {
		frame := src.data[i*nch : (i+1)*nch]

		sum := frame[0]
		for _, x := range frame[1:] {
			sum += x
		}

		dst[i] = sum / n
	}
}

// S16ToFloat converts 16-bit samples to float in [-1, 1).
func S16ToFloat(dst Mono[float32], src Mono[int16]) {
	checkSameLen(len(dst), len(src))

	for i, x := range src {
		dst[i] = float32(x)
	}

	f32.Scale(dst, dst, s16ToFloatMul)
}

// FloatToS16 converts float samples in [-1, 1] to 16-bit, rounding to
// nearest and saturating values outside the representable range.
func FloatToS16(dst Mono[int16], src Mono[float32]) {
	checkSameLen(len(dst), len(src))

	for i, x := range src {
		v := float64(x) * s16FullScale
		switch {
		case v >= math.MaxInt16:
			dst[i] = math.MaxInt16
		case v <= math.MinInt16:
			dst[i] = math.MinInt16
		default:
			dst[i] = int16(math.Round(v))
		}
	}
}

func interleaveStereoFloat32[T Sample](dst Interleaved[T], src Deinterleaved[T]) bool {
	out, ok := any(dst.data).([]float32)
	if !ok {
		return false
	}

	left, _ := any(src.Channel(0)).(Mono[float32])
	right, _ := any(src.Channel(1)).(Mono[float32])
	f32.Interleave2(out, left, right)

	return true
}

func deinterleaveStereoFloat32[T Sample](dst Deinterleaved[T], src Interleaved[T]) bool {
	in, ok := any(src.data).([]float32)
	if !ok {
		return false
	}

	left, _ := any(dst.Channel(0)).(Mono[float32])
	right, _ := any(dst.Channel(1)).(Mono[float32])
	f32.Deinterleave2(left, right, in)

	return true
}

func checkSameShape(a, b View) {
	if a.NumChannels() != b.NumChannels() || a.SamplesPerChannel() != b.SamplesPerChannel() {
		panic(fmt.Sprintf("audioview: shape mismatch %dx%d vs %dx%d",
			a.NumChannels(), a.SamplesPerChannel(), b.NumChannels(), b.SamplesPerChannel()))
	}
}

func checkSameLen(a, b int) {
	if a != b {
		panic(fmt.Sprintf("audioview: length mismatch %d vs %d", a, b))
	}
}
