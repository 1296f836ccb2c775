package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-apm/internal/config"
)

func newRootCmd(out io.Writer) *cobra.Command {
	options := config.NewConfig()

	var configPath string

	rootCmd := &cobra.Command{
		Use:           "apmfilter",
		Short:         "Run audio-processing filters on WAV files",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := loadConfigFile(cmd, options, configPath); err != nil {
					return err
				}
			}

			options.ApplyEnvOverrides()

			if err := options.Validate(); err != nil {
				return err
			}

			logrus.SetLevel(options.Level())
			logrus.WithFields(logrus.Fields{
				"function": "PersistentPreRunE",
				"command":  cmd.Name(),
				"config":   configPath,
			}).Debug("Configuration loaded")

			return nil
		},
	}

	rootCmd.SetOut(out)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&options.LogLevel, "log-level", config.DefaultLogLevel,
		"Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&options.Verbose, "verbose", "v", config.DefaultVerbosity,
		"Show verbose output")

	rootCmd.AddCommand(
		newPostFilterCmd(options),
		newDecimateCmd(options),
		newResponseCmd(options),
		newToneCmd(options),
	)

	return rootCmd
}

// loadConfigFile overlays path onto options, then restores every flag the
// user set explicitly.
func loadConfigFile(cmd *cobra.Command, options *config.Config, path string) error {
	explicit := map[*pflag.Flag]string{}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		explicit[f] = f.Value.String()
	})

	if err := options.LoadFile(path); err != nil {
		return err
	}

	for f, v := range explicit {
		if err := f.Value.Set(v); err != nil {
			return fmt.Errorf("restore flag --%s: %w", f.Name, err)
		}
	}

	return nil
}

func newPostFilterCmd(options *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "postfilter <in.wav> <out.wav>",
		Short: "Remove content above 19.5 kHz from a 48 kHz recording",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPostFilter(options, args[0], args[1])
		},
	}

	cmd.Flags().IntVar(&options.BitDepth, "bit-depth", config.DefaultBitDepth,
		"Output bit depth (16, 24, 32; 0 keeps the input depth)")
	cmd.Flags().IntVar(&options.FrameMs, "frame-ms", config.DefaultFrameMs,
		"Processing frame length in milliseconds")

	return cmd
}

func newDecimateCmd(options *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decimate <in.wav> <out.wav>",
		Short: "Down-mix to mono and decimate like the echo canceller render path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecimate(options, args[0], args[1])
		},
	}

	cmd.Flags().IntVarP(&options.Factor, "factor", "f", config.DefaultFactor,
		"Decimation factor (4 or 8)")
	cmd.Flags().IntVar(&options.BitDepth, "bit-depth", config.DefaultBitDepth,
		"Output bit depth (16, 24, 32; 0 keeps the input depth)")

	return cmd
}

func newResponseCmd(options *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "response",
		Short: "Print the magnitude response of a filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResponse(cmd.OutOrStdout(), options)
		},
	}

	addFilterFlags(cmd, options)
	cmd.Flags().IntVarP(&options.Points, "points", "n", config.DefaultPoints,
		"Number of frequencies between 0 and Nyquist")

	return cmd
}

func newToneCmd(options *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tone",
		Short: "Measure the gain of a filter for a sine tone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTone(cmd.OutOrStdout(), options)
		},
	}

	addFilterFlags(cmd, options)
	cmd.Flags().Float64Var(&options.Frequency, "freq", config.DefaultFrequency,
		"Tone frequency in Hz")
	cmd.Flags().IntVar(&options.Frames, "frames", config.DefaultFrames,
		"Number of measured frames after one priming frame")
	cmd.Flags().IntVar(&options.FrameMs, "frame-ms", config.DefaultFrameMs,
		"Frame length in milliseconds")

	return cmd
}

func addFilterFlags(cmd *cobra.Command, options *config.Config) {
	cmd.Flags().StringVar(&options.Filter, "filter", config.DefaultFilter,
		"Filter to analyze (post, decimate4, decimate8)")
	cmd.Flags().IntVarP(&options.SampleRate, "rate", "r", config.DefaultSampleRate,
		"Sample rate in Hz")
}
