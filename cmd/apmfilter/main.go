// Command apmfilter runs the capture-path filters on WAV files and prints
// their responses.
//
// Usage:
//
//	apmfilter postfilter in.wav out.wav
//	apmfilter decimate --factor 8 in.wav out.wav
//	apmfilter response --filter decimate4 --rate 16000 --points 32
//	apmfilter tone --filter post --freq 19800
//
// Global flags --config, --log-level and --verbose apply to every command.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "main",
			"error":    err.Error(),
		}).Error("apmfilter failed")
		os.Exit(1)
	}
}
