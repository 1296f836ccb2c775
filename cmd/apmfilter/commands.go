package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-apm/dsp/audioview"
	"github.com/cwbudde/algo-apm/dsp/buffer"
	"github.com/cwbudde/algo-apm/dsp/decimate"
	"github.com/cwbudde/algo-apm/dsp/filter/biquad"
	"github.com/cwbudde/algo-apm/dsp/postfilter"
	"github.com/cwbudde/algo-apm/internal/config"
	"github.com/cwbudde/algo-apm/internal/wavio"
	"github.com/cwbudde/algo-apm/measure/tone"
)

var framePool = buffer.NewPool()

func outputBitDepth(options *config.Config, in wavio.Format) int {
	if options.BitDepth != 0 {
		return options.BitDepth
	}

	return in.BitDepth
}

// runPostFilter filters in frame by frame and writes out. Rates without a
// post filter are copied through unchanged.
func runPostFilter(options *config.Config, inPath, outPath string) error {
	audio, format, err := wavio.ReadFile(inPath)
	if err != nil {
		return err
	}

	log := logrus.WithFields(logrus.Fields{
		"function": "runPostFilter",
		"input":    inPath,
		"rate":     format.SampleRate,
		"channels": format.NumChannels,
	})

	pf := postfilter.CreateIfNeeded(format.SampleRate, format.NumChannels)
	if pf == nil {
		log.Info("No post filter for this rate, copying input")
	} else {
		frameLen := max(format.SampleRate*options.FrameMs/1000, 1)
		frames := filterFrames(pf, audio, frameLen)
		log.WithField("frames", frames).Info("Post filter applied")
	}

	return wavio.WriteFile(outPath, audio, format.SampleRate, outputBitDepth(options, format))
}

// filterFrames runs pf over audio in chunks of frameLen samples and returns
// the number of chunks processed.
func filterFrames(pf *postfilter.PostFilter, audio *buffer.Buffer, frameLen int) int {
	nch := audio.NumChannels()
	frames := 0

	for start := 0; start < audio.NumFrames(); start += frameLen {
		n := min(frameLen, audio.NumFrames()-start)

		frame := framePool.Get(n, nch)
		for c := range nch {
			copy(frame.Channel(c), audio.Channel(c)[start:start+n])
		}

		pf.ProcessBuffer(frame)

		for c := range nch {
			copy(audio.Channel(c)[start:start+n], frame.Channel(c))
		}

		framePool.Put(frame)
		frames++
	}

	return frames
}

// runDecimate down-mixes in to mono, decimates it block by block and writes
// the result at the reduced rate. A trailing partial block is zero padded.
func runDecimate(options *config.Config, inPath, outPath string) error {
	audio, format, err := wavio.ReadFile(inPath)
	if err != nil {
		return err
	}

	mono := downmix(audio)
	d := decimate.New(options.Factor)

	blocks := (len(mono) + decimate.BlockSize - 1) / decimate.BlockSize
	out := buffer.New(blocks*d.OutputSize(), 1)

	block := make([]float32, decimate.BlockSize)
	for b := range blocks {
		clear(block)
		copy(block, mono[b*decimate.BlockSize:])

		d.Decimate(block, out.Channel(0)[b*d.OutputSize():(b+1)*d.OutputSize()])
	}

	outRate := format.SampleRate / options.Factor

	logrus.WithFields(logrus.Fields{
		"function": "runDecimate",
		"input":    inPath,
		"factor":   options.Factor,
		"blocks":   blocks,
		"rate":     outRate,
	}).Info("Render signal decimated")

	return wavio.WriteFile(outPath, out, outRate, outputBitDepth(options, format))
}

func downmix(audio *buffer.Buffer) []float32 {
	mono := make([]float32, audio.NumFrames())
	if audio.NumFrames() == 0 {
		return mono
	}

	if audio.NumChannels() == 1 {
		copy(mono, audio.Channel(0))
		return mono
	}

	interleaved := audioview.NewInterleaved(
		make([]float32, audio.NumFrames()*audio.NumChannels()),
		audio.NumFrames(), audio.NumChannels())
	audio.CopyToInterleaved(interleaved)
	audioview.DownmixToMono(mono, interleaved)

	return mono
}

// filterCascade returns a fresh cascade for the named filter at rate, or nil
// when the filter is not defined there.
func filterCascade(name string, rate int) *biquad.Cascade {
	switch name {
	case "post":
		coeffs := postfilter.CoefficientsFor(rate)
		if coeffs == nil {
			return nil
		}

		return biquad.NewCascade(coeffs)
	case "decimate4", "decimate8":
		factor := 4
		if name == "decimate8" {
			factor = 8
		}

		aa, nr := decimate.Filters(factor)
		all := append(append([]biquad.Coefficients{}, aa...), nr...)

		return biquad.NewCascade(all)
	default:
		return nil
	}
}

func runResponse(w io.Writer, options *config.Config) error {
	c := filterCascade(options.Filter, options.SampleRate)
	if c == nil {
		return fmt.Errorf("filter %q is not defined at %d Hz", options.Filter, options.SampleRate)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "freq (Hz)\tgain (dB)\t\n")

	nyquist := float64(options.SampleRate) / 2
	for i := range options.Points {
		f := nyquist * float64(i) / float64(options.Points-1)
		fmt.Fprintf(tw, "%.1f\t%.2f\t\n", f, c.MagnitudeDB(f, float64(options.SampleRate)))
	}

	return tw.Flush()
}

// runTone feeds a phase-continuous tone through the filter in frames, skips
// one priming frame and prints the measured power gain.
func runTone(w io.Writer, options *config.Config) error {
	c := filterCascade(options.Filter, options.SampleRate)
	if c == nil {
		return fmt.Errorf("filter %q is not defined at %d Hz", options.Filter, options.SampleRate)
	}

	rate := float64(options.SampleRate)

	gen, err := tone.NewGenerator(options.Frequency, rate)
	if err != nil {
		return err
	}

	frame := make([]float32, max(options.SampleRate*options.FrameMs/1000, 1))

	gen.Generate(frame)
	c.ProcessInPlace(frame)

	var inPower, outPower float64
	for range options.Frames {
		gen.Generate(frame)
		inPower += tone.Power(frame)

		c.ProcessInPlace(frame)
		outPower += tone.Power(frame)
	}

	if inPower == 0 {
		return fmt.Errorf("a %.1f Hz tone has no energy at %d Hz", options.Frequency, options.SampleRate)
	}

	gain := tone.LinearToDB(outPower / inPower)

	logrus.WithFields(logrus.Fields{
		"function": "runTone",
		"filter":   options.Filter,
		"freq":     options.Frequency,
		"frames":   options.Frames,
	}).Debug("Tone measured")

	_, err = fmt.Fprintf(w, "%s @ %.1f Hz: %.2f dB\n", options.Filter, options.Frequency, gain)

	return err
}
