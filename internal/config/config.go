// Package config holds the apmfilter command-line configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSampleRate = 48000  // Rate for generated signals and responses (Hz)
	DefaultFactor     = 4      // Render decimation factor
	DefaultBitDepth   = 0      // Keep the input bit depth
	DefaultFrameMs    = 10     // Processing frame length
	DefaultPoints     = 24     // Rows printed by the response command
	DefaultFilter     = "post" // Filter measured by tone and response
	DefaultFrequency  = 1000.0 // Tone frequency (Hz)
	DefaultFrames     = 20     // Frames measured by the tone command
	DefaultLogLevel   = "info"
	DefaultVerbosity  = false

	MinSampleRate = 8000
	MaxSampleRate = 192000
)

var (
	// ErrInvalidConfig is wrapped by every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	filters = map[string]bool{"post": true, "decimate4": true, "decimate8": true}
)

// Config holds all runtime options. Flags, a YAML file and APM_* environment
// variables can set it.
type Config struct {
	SampleRate int     `yaml:"sample_rate"`
	Factor     int     `yaml:"factor"`
	BitDepth   int     `yaml:"bit_depth"`
	FrameMs    int     `yaml:"frame_ms"`
	Points     int     `yaml:"points"`
	Filter     string  `yaml:"filter"`
	Frequency  float64 `yaml:"frequency"`
	Frames     int     `yaml:"frames"`
	LogLevel   string  `yaml:"log_level"`
	Verbose    bool    `yaml:"verbose"`
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		SampleRate: DefaultSampleRate,
		Factor:     DefaultFactor,
		BitDepth:   DefaultBitDepth,
		FrameMs:    DefaultFrameMs,
		Points:     DefaultPoints,
		Filter:     DefaultFilter,
		Frequency:  DefaultFrequency,
		Frames:     DefaultFrames,
		LogLevel:   DefaultLogLevel,
		Verbose:    DefaultVerbosity,
	}
}

// LoadFile overlays the YAML file at path onto c. Keys missing from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// ApplyEnvOverrides reads APM_SAMPLE_RATE, APM_LOG_LEVEL and APM_VERBOSE.
// Unparsable values are ignored.
func (c *Config) ApplyEnvOverrides() {
	if val, ok := os.LookupEnv("APM_SAMPLE_RATE"); ok {
		if n, err := strconv.Atoi(val); err == nil {
			c.SampleRate = n
		}
	}

	if val, ok := os.LookupEnv("APM_LOG_LEVEL"); ok {
		c.LogLevel = val
	}

	if val, ok := os.LookupEnv("APM_VERBOSE"); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			c.Verbose = b
		}
	}
}

// Validate reports the first out-of-range option.
func (c *Config) Validate() error {
	switch {
	case c.SampleRate < MinSampleRate || c.SampleRate > MaxSampleRate:
		return fmt.Errorf("%w: sample rate %d outside [%d, %d]", ErrInvalidConfig, c.SampleRate, MinSampleRate, MaxSampleRate)
	case c.Factor != 4 && c.Factor != 8:
		return fmt.Errorf("%w: decimation factor %d (want 4 or 8)", ErrInvalidConfig, c.Factor)
	case c.BitDepth != 0 && c.BitDepth != 16 && c.BitDepth != 24 && c.BitDepth != 32:
		return fmt.Errorf("%w: bit depth %d", ErrInvalidConfig, c.BitDepth)
	case c.FrameMs <= 0:
		return fmt.Errorf("%w: frame length %d ms", ErrInvalidConfig, c.FrameMs)
	case c.Points < 2:
		return fmt.Errorf("%w: %d response points", ErrInvalidConfig, c.Points)
	case !filters[c.Filter]:
		return fmt.Errorf("%w: unknown filter %q", ErrInvalidConfig, c.Filter)
	case !(c.Frequency >= 0 && c.Frequency <= float64(c.SampleRate)/2):
		return fmt.Errorf("%w: frequency %v outside [0, %d]", ErrInvalidConfig, c.Frequency, c.SampleRate/2)
	case c.Frames <= 0:
		return fmt.Errorf("%w: %d frames", ErrInvalidConfig, c.Frames)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Level returns the logrus level to run at. Verbose forces debug.
func (c *Config) Level() logrus.Level {
	if c.Verbose {
		return logrus.DebugLevel
	}

	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}
