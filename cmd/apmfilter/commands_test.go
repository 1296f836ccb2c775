package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-apm/dsp/buffer"
	"github.com/cwbudde/algo-apm/dsp/postfilter"
	"github.com/cwbudde/algo-apm/internal/config"
	"github.com/cwbudde/algo-apm/internal/wavio"
	"github.com/cwbudde/algo-apm/measure/tone"
)

func writeTone(t *testing.T, path string, freqHz float64, rate, frames, channels int) {
	t.Helper()

	b := buffer.New(frames, channels)
	for c := range channels {
		g, err := tone.NewGenerator(freqHz, float64(rate), tone.WithAmplitude(0.5))
		require.NoError(t, err)
		g.Generate(b.Channel(c))
	}

	require.NoError(t, wavio.WriteFile(path, b, rate, 32))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestPostFilterCommandAttenuatesHighBand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")
	writeTone(t, in, 19800, 48000, 9600, 2)

	_, err := execute(t, "postfilter", in, out)
	require.NoError(t, err)

	got, format, err := wavio.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 48000, format.SampleRate)
	assert.Equal(t, 32, format.BitDepth)
	require.Equal(t, 2, got.NumChannels())

	for c := range 2 {
		level, err := tone.LevelDB(got.Channel(c)[4800:], 19800, 48000)
		require.NoError(t, err)
		assert.Less(t, level, tone.LinearToDB(0.125)-19.5, "channel %d", c)
	}
}

func TestPostFilterCommandCopiesOtherRates(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")
	writeTone(t, in, 7000, 16000, 1600, 1)

	_, err := execute(t, "postfilter", "--bit-depth", "32", in, out)
	require.NoError(t, err)

	want, _, err := wavio.ReadFile(in)
	require.NoError(t, err)
	got, _, err := wavio.ReadFile(out)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want.Channel(0), got.Channel(0), 1e-9)
}

func TestFilterFramesMatchesWholeBuffer(t *testing.T) {
	b := buffer.New(1000, 2)
	for c := range 2 {
		g, err := tone.NewGenerator(float64(1000+5000*c), 48000)
		require.NoError(t, err)
		g.Generate(b.Channel(c))
	}

	whole := b.Copy()
	newPostFilter(t).ProcessBuffer(whole)

	assert.Equal(t, 3, filterFrames(newPostFilter(t), b, 480))
	assert.Equal(t, whole.Samples(), b.Samples())
}

func TestDecimateCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")
	writeTone(t, in, 500, 16000, 1000, 2)

	_, err := execute(t, "decimate", "--factor", "4", "--bit-depth", "16", in, out)
	require.NoError(t, err)

	got, format, err := wavio.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 4000, format.SampleRate)
	assert.Equal(t, 16, format.BitDepth)
	assert.Equal(t, 1, got.NumChannels())
	// 1000 samples round up to 16 blocks of 64.
	assert.Equal(t, 16*16, got.NumFrames())
}

func TestResponseCommand(t *testing.T) {
	out, err := execute(t, "response", "--filter", "post", "--points", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "gain (dB)")
	assert.Contains(t, lines[5], "24000.0")
}

func TestResponseUndefinedRate(t *testing.T) {
	_, err := execute(t, "response", "--filter", "post", "--rate", "16000")
	require.Error(t, err)
}

func TestToneCommand(t *testing.T) {
	out, err := execute(t, "tone", "--filter", "post", "--freq", "16800")
	require.NoError(t, err)
	assert.Contains(t, out, "post @ 16800.0 Hz: ")
	assert.True(t, strings.HasSuffix(out, " dB\n"))
}

func TestToneSilentInput(t *testing.T) {
	_, err := execute(t, "tone", "--freq", "0")
	require.Error(t, err)
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("filter: decimate8\nsample_rate: 16000\npoints: 3\n"), 0o600))

	out, err := execute(t, "--config", path, "response", "--points", "4")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[4], "8000.0")
}

func TestInvalidConfigRejected(t *testing.T) {
	_, err := execute(t, "decimate", "--factor", "5", "a.wav", "b.wav")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func newPostFilter(t *testing.T) *postfilter.PostFilter {
	t.Helper()

	pf := postfilter.CreateIfNeeded(48000, 2)
	require.NotNil(t, pf)

	return pf
}
