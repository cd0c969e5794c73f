package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/go-easing/internal/simdops"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file     *os.File
	decoder  *wav.Decoder
	rate     int
	channels int
	bitDepth int
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	// Open input file
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	// Create WAV decoder
	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	// Read format info
	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)

	if format.NumChannels < monoChannels {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s has no channels", path)
	}

	switch bitDepth {
	case bitsPerSample8, bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		_ = inputFile.Close()
		return nil, fmt.Errorf("unsupported bit depth %d in %s", bitDepth, path)
	}

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, format.NumChannels, bitDepth)
	}

	return &wavInputInfo{
		file:     inputFile,
		decoder:  decoder,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: bitDepth,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// wavOutputWriter wraps the output file and its encoder.
type wavOutputWriter struct {
	file    *os.File
	encoder *wav.Encoder
}

// createWAVOutput creates the output file and a PCM encoder for it.
func createWAVOutput(path string, sampleRate, bitDepth, channels int) (*wavOutputWriter, error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &wavOutputWriter{
		file:    outputFile,
		encoder: wav.NewEncoder(outputFile, sampleRate, bitDepth, channels, wavFormatPCM),
	}, nil
}

// Write encodes a buffer of interleaved samples.
func (w *wavOutputWriter) Write(buf *audio.IntBuffer) error {
	return w.encoder.Write(buf)
}

// Close finalizes the WAV headers and closes the file.
func (w *wavOutputWriter) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}

// secondsToFrames converts a duration to a whole number of frames.
func secondsToFrames(seconds float64, sampleRate int) int {
	if seconds <= 0 || sampleRate <= 0 {
		return 0
	}
	return int(math.Round(seconds * float64(sampleRate)))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample8:
		return maxInt8
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// applyEnvelope scales interleaved integer samples by a per-frame gain in place.
// 8-bit samples are unsigned, so they are scaled around their midpoint.
func applyEnvelope(data []int, gains []float64, numChannels, bitDepth int) {
	maxVal := getMaxValue(bitDepth)
	offset := 0
	if bitDepth == bitsPerSample8 {
		offset = uint8Center
	}

	frames := min(len(data)/numChannels, len(gains))

	// Fast path for mono
	if numChannels == monoChannels {
		for i := range frames {
			data[i] = scaleSample(data[i], gains[i], offset, maxVal)
		}
		return
	}

	// Fast path for stereo
	if numChannels == stereoChannels {
		for i := range frames {
			idx := i * stereoChannels
			data[idx] = scaleSample(data[idx], gains[i], offset, maxVal)
			data[idx+1] = scaleSample(data[idx+1], gains[i], offset, maxVal)
		}
		return
	}

	// General case
	for i := range frames {
		base := i * numChannels
		for ch := range numChannels {
			data[base+ch] = scaleSample(data[base+ch], gains[i], offset, maxVal)
		}
	}
}

// scaleSample applies gain to one sample and clamps it to the bit depth's range.
func scaleSample(sample int, gain float64, offset int, maxVal float64) int {
	v := math.Round(float64(sample-offset) * gain)
	if v > maxVal {
		v = maxVal
	} else if v < -maxVal-1 {
		v = -maxVal - 1
	}
	return int(v) + offset
}

// meanGain returns the average of the envelope, 1 for an empty one.
func meanGain(gains []float64) float64 {
	if len(gains) == 0 {
		return 1
	}
	return simdops.For[float64]().Sum(gains) / float64(len(gains))
}
