package wavio

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-apm/dsp/buffer"
)

func stereoRamp(frames int) *buffer.Buffer {
	b := buffer.New(frames, 2)
	for i := range frames {
		b.Channel(0)[i] = float32(i)/float32(frames) - 0.5
		b.Channel(1)[i] = 0.25 - float32(i)/float32(2*frames)
	}

	return b
}

func TestRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		bitDepth int
		tol      float64
	}{
		{bitDepth: 16, tol: 1.0 / 32768},
		{bitDepth: 24, tol: 1.0 / 8388608},
		{bitDepth: 32, tol: 1e-7},
	} {
		path := filepath.Join(t.TempDir(), "rt.wav")
		src := stereoRamp(480)

		require.NoError(t, WriteFile(path, src, 48000, tc.bitDepth))

		got, f, err := ReadFile(path)
		require.NoError(t, err)

		assert.Equal(t, Format{SampleRate: 48000, NumChannels: 2, BitDepth: tc.bitDepth}, f)
		require.Equal(t, src.NumFrames(), got.NumFrames())
		require.Equal(t, 2, got.NumChannels())

		for c := range 2 {
			assert.InDeltaSlice(t, src.Channel(c), got.Channel(c), tc.tol, "bit depth %d channel %d", tc.bitDepth, c)
		}
	}
}

func TestEncodeClips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")

	b := buffer.New(2, 1)
	copy(b.Channel(0), []float32{2, -2})
	require.NoError(t, WriteFile(path, b, 16000, 16))

	got, _, err := ReadFile(path)
	require.NoError(t, err)
	assert.InDelta(t, 32767.0/32768, got.Channel(0)[0], 1e-9)
	assert.InDelta(t, -1, got.Channel(0)[1], 1e-9)
}

func TestUnsupportedBitDepth(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "x.wav"), buffer.New(1, 1), 48000, 8)
	require.ErrorIs(t, err, ErrUnsupportedBitDepth)
}

func TestDecodeInvalid(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte("definitely not RIFF data")))
	require.ErrorIs(t, err, ErrInvalidFile)
}

// rawWAV builds a mono 48 kHz WAV stream with the given format tag, holding
// one little-endian word per element of data.
func rawWAV(t *testing.T, formatTag, bitDepth uint16, data []uint32) []byte {
	t.Helper()

	var buf bytes.Buffer

	put := func(v any) { require.NoError(t, binary.Write(&buf, binary.LittleEndian, v)) }

	blockAlign := bitDepth / 8
	dataSize := uint32(len(data)) * uint32(blockAlign)

	buf.WriteString("RIFF")
	put(36 + dataSize)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	put(uint32(16))
	put(formatTag)
	put(uint16(1))
	put(uint32(48000))
	put(48000 * uint32(blockAlign))
	put(blockAlign)
	put(bitDepth)
	buf.WriteString("data")
	put(dataSize)

	for _, v := range data {
		put(v)
	}

	return buf.Bytes()
}

func TestDecodeFloat(t *testing.T) {
	want := []float32{0.5, -0.25, 0.125, 0}

	words := make([]uint32, len(want))
	for i, v := range want {
		words[i] = math.Float32bits(v)
	}

	b, f, err := Decode(bytes.NewReader(rawWAV(t, 3, 32, words)))
	require.NoError(t, err)
	assert.Equal(t, Format{SampleRate: 48000, NumChannels: 1, BitDepth: 32, Float: true}, f)
	assert.Equal(t, want, b.Channel(0))
}

func TestDecodeRejectsUnknownFormat(t *testing.T) {
	_, _, err := Decode(bytes.NewReader(rawWAV(t, 2, 32, []uint32{1, 2, 3, 4})))
	require.ErrorIs(t, err, ErrInvalidFile)
}

func TestReadFileMissing(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "missing.wav"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
