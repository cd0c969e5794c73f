package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-easing"
)

// writeTestWAV writes interleaved samples to a new PCM WAV file.
func writeTestWAV(t *testing.T, path string, data []int, rate, bitDepth, channels int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)

	enc := wav.NewEncoder(f, rate, bitDepth, channels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{SampleRate: rate, NumChannels: channels},
		SourceBitDepth: bitDepth,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
}

// readTestWAV reads all samples of a WAV file.
func readTestWAV(t *testing.T, path string) *audio.IntBuffer {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	return buf
}

func constantSignal(n, value int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = value
	}
	return data
}

func TestOpenWAVInput_FileNotFound(t *testing.T) {
	_, err := openWAVInput("/nonexistent/file.wav", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestOpenWAVInput_InvalidWAV(t *testing.T) {
	// Create a temporary file that's not a WAV
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.wav")
	err := os.WriteFile(invalidFile, []byte("not a wav file"), 0o644)
	require.NoError(t, err)

	_, err = openWAVInput(invalidFile, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestOpenWAVInput_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	writeTestWAV(t, path, constantSignal(200, 1000), 8000, 16, 2)

	input, err := openWAVInput(path, false)
	require.NoError(t, err)
	defer func() { _ = input.Close() }()

	assert.Equal(t, 8000, input.rate)
	assert.Equal(t, 2, input.channels)
	assert.Equal(t, 16, input.bitDepth)
}

func TestCreateWAVOutput_InvalidDirectory(t *testing.T) {
	_, err := createWAVOutput(
		"/nonexistent/dir/output.wav",
		48000, // sample rate
		16,    // bit depth
		2,     // channels
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestCreateWAVOutput_Success(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "test_output.wav")

	writer, err := createWAVOutput(outputPath, 48000, 16, 2)
	require.NoError(t, err)
	require.NotNil(t, writer)

	assert.NotNil(t, writer.file)
	assert.NotNil(t, writer.encoder)
	require.NoError(t, writer.Close())

	// Verify file was created
	_, err = os.Stat(outputPath)
	require.NoError(t, err)
}

func TestSecondsToFrames(t *testing.T) {
	assert.Equal(t, 22050, secondsToFrames(0.5, 44100))
	assert.Equal(t, 48, secondsToFrames(0.001, 48000))
	assert.Equal(t, 0, secondsToFrames(0, 44100))
	assert.Equal(t, 0, secondsToFrames(-1, 44100))
	assert.Equal(t, 0, secondsToFrames(1, 0))
}

func TestGetMaxValue(t *testing.T) {
	assert.InDelta(t, maxInt8, getMaxValue(8), 0)
	assert.InDelta(t, maxInt16, getMaxValue(16), 0)
	assert.InDelta(t, maxInt24, getMaxValue(24), 0)
	assert.InDelta(t, maxInt32, getMaxValue(32), 0)
	assert.InDelta(t, maxInt16, getMaxValue(12), 0)
}

func TestApplyEnvelope_Mono(t *testing.T) {
	data := []int{1000, -1000, 1000, -1000}
	applyEnvelope(data, []float64{0.25, 0.5, 1, 0}, 1, 16)
	assert.Equal(t, []int{250, -500, 1000, 0}, data)
}

func TestApplyEnvelope_Stereo(t *testing.T) {
	data := []int{100, 200, 100, 200}
	applyEnvelope(data, []float64{0.5, 0.1}, 2, 16)
	assert.Equal(t, []int{50, 100, 10, 20}, data)
}

func TestApplyEnvelope_Multichannel(t *testing.T) {
	data := constantSignal(6*3, 600)
	applyEnvelope(data, []float64{1, 0.5, 0}, 6, 24)
	for ch := range 6 {
		assert.Equal(t, 600, data[ch])
		assert.Equal(t, 300, data[6+ch])
		assert.Equal(t, 0, data[12+ch])
	}
}

func TestApplyEnvelope_EightBitScalesAroundCenter(t *testing.T) {
	data := []int{228, 28, 128}
	applyEnvelope(data, []float64{0.5, 0.5, 0.5}, 1, 8)
	assert.Equal(t, []int{178, 78, 128}, data)
}

func TestScaleSample_Clamps(t *testing.T) {
	assert.Equal(t, 32767, scaleSample(30000, 2, 0, maxInt16))
	assert.Equal(t, -32768, scaleSample(-30000, 2, 0, maxInt16))
}

func TestMeanGain(t *testing.T) {
	assert.InDelta(t, 0.5, meanGain([]float64{0, 0.5, 1}), 1e-12)
	assert.InDelta(t, 1.0, meanGain(nil), 0)
}

func TestFadeOptions_Validate(t *testing.T) {
	assert.NoError(t, fadeOptions{fadeIn: 1}.validate())
	assert.NoError(t, fadeOptions{fadeOut: 0.5}.validate())
	assert.ErrorIs(t, fadeOptions{}.validate(), errNoFade)
	assert.ErrorIs(t, fadeOptions{fadeIn: -1, fadeOut: 1}.validate(), easing.ErrInvalidConfig)
}

func TestFadeOptions_ValidateRejectsNonFinite(t *testing.T) {
	for _, d := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := fadeOptions{fadeIn: d}.validate()
		require.ErrorIs(t, err, easing.ErrInvalidConfig, "fadeIn=%v", d)
		assert.Contains(t, err.Error(), "finite")

		err = fadeOptions{fadeIn: 1, fadeOut: d}.validate()
		assert.ErrorIs(t, err, easing.ErrInvalidConfig, "fadeOut=%v", d)
	}
}

func TestFadeWAV_MonoFadeIn(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "in.wav")
	outputPath := filepath.Join(tmpDir, "out.wav")
	writeTestWAV(t, inputPath, constantSignal(100, 10000), 1000, 16, 1)

	stats, err := fadeWAV(inputPath, outputPath, fadeOptions{
		curve:  easing.CurveLinear,
		fadeIn: 0.01, // 10 frames at 1 kHz
	})
	require.NoError(t, err)
	assert.Equal(t, 100, stats.frames)
	assert.Equal(t, 10, stats.fadeInFrames)
	assert.Equal(t, 0, stats.fadeOutFrames)

	out := readTestWAV(t, outputPath)
	require.Len(t, out.Data, 100)
	assert.Equal(t, 1000, out.Data[0])
	assert.Equal(t, 5000, out.Data[4])
	assert.Equal(t, 10000, out.Data[9])
	assert.Equal(t, 10000, out.Data[50])
	assert.Equal(t, 10000, out.Data[99])
}

func TestFadeWAV_StereoFadeOut(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "in.wav")
	outputPath := filepath.Join(tmpDir, "out.wav")
	writeTestWAV(t, inputPath, constantSignal(2*50, -8000), 1000, 16, 2)

	stats, err := fadeWAV(inputPath, outputPath, fadeOptions{
		curve:   easing.CurveQuadOut,
		fadeOut: 0.02,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, stats.frames)
	assert.Equal(t, 20, stats.fadeOutFrames)
	assert.Less(t, stats.meanGain, 1.0)

	out := readTestWAV(t, outputPath)
	require.Len(t, out.Data, 100)

	// Untouched before the fade, silent on the last frame.
	assert.Equal(t, -8000, out.Data[0])
	assert.Equal(t, -8000, out.Data[59])
	assert.Equal(t, 0, out.Data[98])
	assert.Equal(t, 0, out.Data[99])

	// Both channels get the same gain and the level only moves toward zero.
	for frame := 30; frame < 50; frame++ {
		assert.Equal(t, out.Data[frame*2], out.Data[frame*2+1])
		if frame > 30 {
			assert.GreaterOrEqual(t, out.Data[frame*2], out.Data[(frame-1)*2])
		}
	}
}

func TestFadeWAV_FadeLongerThanFile(t *testing.T) {
	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "in.wav")
	outputPath := filepath.Join(tmpDir, "out.wav")
	writeTestWAV(t, inputPath, constantSignal(10, 20000), 1000, 16, 1)

	stats, err := fadeWAV(inputPath, outputPath, fadeOptions{
		curve:  easing.CurveSinInOut,
		fadeIn: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, stats.fadeInFrames)

	out := readTestWAV(t, outputPath)
	require.Len(t, out.Data, 10)
	assert.Equal(t, 20000, out.Data[9])
	assert.Less(t, out.Data[0], 20000)
}

func TestFadeWAV_MissingInput(t *testing.T) {
	_, err := fadeWAV("/nonexistent/in.wav", filepath.Join(t.TempDir(), "out.wav"), fadeOptions{fadeIn: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}
