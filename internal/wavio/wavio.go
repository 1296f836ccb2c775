// Package wavio moves PCM WAV files in and out of float32 audio buffers.
// Decode also accepts 32-bit IEEE float files; Encode always writes PCM.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-apm/dsp/audioview"
	"github.com/cwbudde/algo-apm/dsp/buffer"
)

var (
	// ErrInvalidFile is returned when the input is not a readable WAV file.
	ErrInvalidFile = errors.New("wavio: invalid WAV file")
	// ErrUnsupportedBitDepth is returned for bit depths other than 16, 24 and 32.
	ErrUnsupportedBitDepth = errors.New("wavio: unsupported bit depth")
)

// WAV format tags understood by Decode.
const (
	formatPCM   = 1
	formatFloat = 3
)

// Format describes the sample layout of a WAV file.
type Format struct {
	SampleRate  int
	NumChannels int
	BitDepth    int
	// Float is set for IEEE float files.
	Float bool
}

func checkBitDepth(bitDepth int) error {
	switch bitDepth {
	case 16, 24, 32:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

// fullScale is the magnitude mapped to 1.0 for a signed PCM bit depth.
func fullScale(bitDepth int) float64 {
	return math.Ldexp(1, bitDepth-1)
}

// Decode reads a whole WAV stream into a new buffer.
func Decode(r io.ReadSeeker) (*buffer.Buffer, Format, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, Format{}, ErrInvalidFile
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, Format{}, fmt.Errorf("wavio: read PCM: %w", err)
	}

	f := Format{
		SampleRate:  int(dec.SampleRate),
		NumChannels: int(dec.NumChans),
		BitDepth:    int(dec.BitDepth),
		Float:       dec.WavAudioFormat == formatFloat,
	}

	switch dec.WavAudioFormat {
	case formatPCM:
		if err := checkBitDepth(f.BitDepth); err != nil {
			return nil, f, err
		}
	case formatFloat:
		if f.BitDepth != 32 {
			return nil, f, fmt.Errorf("%w: %d-bit float", ErrUnsupportedBitDepth, f.BitDepth)
		}
	default:
		return nil, f, fmt.Errorf("%w: format tag %#x", ErrInvalidFile, dec.WavAudioFormat)
	}

	if f.NumChannels <= 0 || f.NumChannels > audioview.MaxChannels {
		return nil, f, fmt.Errorf("%w: %d channels", ErrInvalidFile, f.NumChannels)
	}

	frames := len(pcm.Data) / f.NumChannels
	if frames == 0 {
		return buffer.New(0, f.NumChannels), f, nil
	}

	interleaved := make([]float32, frames*f.NumChannels)

	switch {
	case f.Float:
		// go-audio hands float samples over as their int32 bit patterns.
		for i := range interleaved {
			interleaved[i] = math.Float32frombits(uint32(int32(pcm.Data[i])))
		}
	case f.BitDepth == 16:
		s16 := make([]int16, len(interleaved))
		for i := range s16 {
			s16[i] = int16(pcm.Data[i])
		}

		audioview.S16ToFloat(interleaved, s16)
	default:
		inv := 1 / fullScale(f.BitDepth)
		for i := range interleaved {
			interleaved[i] = float32(float64(pcm.Data[i]) * inv)
		}
	}

	return buffer.FromInterleaved(audioview.NewInterleaved(interleaved, frames, f.NumChannels)), f, nil
}

// Encode writes b as PCM WAV with the given rate and bit depth. Samples
// outside [-1, 1) are clipped.
func Encode(w io.WriteSeeker, b *buffer.Buffer, sampleRate, bitDepth int) error {
	if err := checkBitDepth(bitDepth); err != nil {
		return err
	}

	nch := b.NumChannels()
	interleaved := make([]float32, b.NumFrames()*nch)
	if len(interleaved) > 0 {
		b.CopyToInterleaved(audioview.NewInterleaved(interleaved, b.NumFrames(), nch))
	}

	data := make([]int, len(interleaved))
	if bitDepth == 16 {
		s16 := make([]int16, len(interleaved))
		audioview.FloatToS16(s16, interleaved)

		for i, v := range s16 {
			data[i] = int(v)
		}
	} else {
		scale := fullScale(bitDepth)
		for i, v := range interleaved {
			data[i] = int(math.Round(math.Max(-scale, math.Min(scale-1, float64(v)*scale))))
		}
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, nch, 1)

	pcm := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: nch,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(pcm); err != nil {
		return fmt.Errorf("wavio: write PCM: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finalize: %w", err)
	}

	return nil
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (*buffer.Buffer, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Format{}, fmt.Errorf("wavio: open input: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// WriteFile encodes b into a new WAV file at path.
func WriteFile(path string, b *buffer.Buffer, sampleRate, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: create output: %w", err)
	}

	if err := Encode(f, b, sampleRate, bitDepth); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
