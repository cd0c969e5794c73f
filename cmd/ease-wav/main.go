// Command ease-wav applies an eased fade-in and fade-out to a WAV file.
//
// Usage:
//
//	ease-wav -fade-in 0.5 -fade-out 2 input.wav output.wav
//	ease-wav -curve sin_inout -fade-out 3 input.wav output.wav
//	ease-wav -curve exp_out -fade-in 0.05 -v input.wav output.wav
//
// The gain envelope is built from the chosen easing curve: the fade-in rises
// from silence to unity gain over its duration, the fade-out falls back to
// silence at the very last frame. Fades longer than the file are clamped.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/tphakala/go-easing"
)

const (
	// Channel count constants for fast paths
	monoChannels   = 1
	stereoChannels = 2

	// Sample format constants
	bitsPerSample8  = 8
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	maxInt8     = 127.0
	maxInt16    = 32767.0
	maxInt24    = 8388607.0
	maxInt32    = 2147483647.0
	uint8Center = 128 // 8-bit WAV samples are unsigned around this value

	// CLI defaults
	defaultCurve    = "sin_inout"
	defaultFadeIn   = 0.0
	defaultFadeOut  = 0.0
	minRequiredArgs = 2

	// WAV format constants
	wavFormatPCM = 1
)

var errNoFade = errors.New("nothing to do: set -fade-in and/or -fade-out")

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Parse command line flags
	curveName := flag.String("curve", defaultCurve, "Easing curve for both fades (see easing -list)")
	fadeIn := flag.Float64("fade-in", defaultFadeIn, "Fade-in duration in seconds")
	fadeOut := flag.Float64("fade-out", defaultFadeOut, "Fade-out duration in seconds")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -fade-in 0.5 -fade-out 2 in.wav out.wav    # Fade both ends\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -curve exp_out -fade-in 0.05 in.wav out.wav # Soften a hard start\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	curve, err := easing.ParseCurve(*curveName)
	if err != nil {
		return err
	}

	opts := fadeOptions{
		curve:   curve,
		fadeIn:  *fadeIn,
		fadeOut: *fadeOut,
		verbose: *verbose,
	}
	if err := opts.validate(); err != nil {
		return err
	}

	inputPath := args[0]
	outputPath := args[1]

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Curve: %s", curve)
		log.Printf("Fade in: %.3fs, fade out: %.3fs", opts.fadeIn, opts.fadeOut)
	}

	start := time.Now()
	stats, err := fadeWAV(inputPath, outputPath, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	// Print summary
	fmt.Printf("Faded %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz, %d channels, %d-bit, %d frames\n",
		stats.rate, stats.channels, stats.bitDepth, stats.frames)
	fmt.Printf("  Fade in: %d frames, fade out: %d frames (%s)\n",
		stats.fadeInFrames, stats.fadeOutFrames, curve)
	fmt.Printf("  Mean gain: %.4f, duration: %.2fs\n", stats.meanGain, elapsed.Seconds())

	return nil
}

// fadeOptions holds the validated command-line settings.
type fadeOptions struct {
	curve   easing.Curve
	fadeIn  float64
	fadeOut float64
	verbose bool
}

func (o fadeOptions) validate() error {
	if !isFinite(o.fadeIn) || !isFinite(o.fadeOut) {
		return fmt.Errorf("%w: fade durations must be finite", easing.ErrInvalidConfig)
	}
	if o.fadeIn < 0 || o.fadeOut < 0 {
		return fmt.Errorf("%w: fade durations must not be negative", easing.ErrInvalidConfig)
	}
	if o.fadeIn == 0 && o.fadeOut == 0 {
		return errNoFade
	}
	return nil
}

type fadeStats struct {
	rate          int
	channels      int
	bitDepth      int
	frames        int
	fadeInFrames  int
	fadeOutFrames int
	meanGain      float64
}

// fadeWAV reads inputPath, applies the fade envelope and writes outputPath.
func fadeWAV(inputPath, outputPath string, opts fadeOptions) (stats *fadeStats, err error) {
	input, err := openWAVInput(inputPath, opts.verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	buf, err := input.decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}

	frames := len(buf.Data) / input.channels
	fadeInFrames := secondsToFrames(opts.fadeIn, input.rate)
	fadeOutFrames := secondsToFrames(opts.fadeOut, input.rate)

	gains, err := easing.Envelope(frames, fadeInFrames, fadeOutFrames, opts.curve)
	if err != nil {
		return nil, err
	}

	applyEnvelope(buf.Data, gains, input.channels, input.bitDepth)

	output, err := createWAVOutput(outputPath, input.rate, input.bitDepth, input.channels)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := output.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to finalize output file: %w", closeErr)
		}
	}()

	if err := output.Write(buf); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}

	return &fadeStats{
		rate:          input.rate,
		channels:      input.channels,
		bitDepth:      input.bitDepth,
		frames:        frames,
		fadeInFrames:  min(fadeInFrames, frames),
		fadeOutFrames: min(fadeOutFrames, frames),
		meanGain:      meanGain(gains),
	}, nil
}
