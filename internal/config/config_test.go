package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigIsValid(t *testing.T) {
	c := NewConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, DefaultSampleRate, c.SampleRate)
	assert.Equal(t, logrus.InfoLevel, c.Level())
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("factor: 8\nfilter: decimate8\nverbose: true\n"), 0o600))

	c := NewConfig()
	require.NoError(t, c.LoadFile(path))

	assert.Equal(t, 8, c.Factor)
	assert.Equal(t, "decimate8", c.Filter)
	assert.True(t, c.Verbose)
	assert.Equal(t, DefaultSampleRate, c.SampleRate)
	assert.Equal(t, logrus.DebugLevel, c.Level())
	require.NoError(t, c.Validate())
}

func TestLoadFileErrors(t *testing.T) {
	c := NewConfig()
	require.ErrorIs(t, c.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")), os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("factor: [1, 2\n"), 0o600))
	require.Error(t, c.LoadFile(path))
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("APM_SAMPLE_RATE", "16000")
	t.Setenv("APM_LOG_LEVEL", "warn")
	t.Setenv("APM_VERBOSE", "not-a-bool")

	c := NewConfig()
	c.ApplyEnvOverrides()

	assert.Equal(t, 16000, c.SampleRate)
	assert.Equal(t, logrus.WarnLevel, c.Level())
	assert.False(t, c.Verbose)
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"rate":      func(c *Config) { c.SampleRate = 100 },
		"factor":    func(c *Config) { c.Factor = 3 },
		"bit depth": func(c *Config) { c.BitDepth = 12 },
		"frame":     func(c *Config) { c.FrameMs = 0 },
		"points":    func(c *Config) { c.Points = 1 },
		"filter":    func(c *Config) { c.Filter = "lowpass" },
		"frequency": func(c *Config) { c.Frequency = 30000 },
		"frames":    func(c *Config) { c.Frames = 0 },
		"log level": func(c *Config) { c.LogLevel = "chatty" },
	} {
		c := NewConfig()
		mutate(c)
		assert.ErrorIs(t, c.Validate(), ErrInvalidConfig, name)
	}
}
