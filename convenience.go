package easing

import (
	"fmt"
)

// Gain levels for fades.
const (
	silentGain = 0.0
	unityGain  = 1.0
)

// FadeIn fills gains with a rise from silence to unity gain following curve c.
// The last element is exactly 1.
func FadeIn[F Float](gains []F, c Curve) error {
	return Fill(gains, c, silentGain, unityGain)
}

// FadeOut fills gains with a fall from unity gain to silence following curve c.
// The last element is exactly 0.
func FadeOut[F Float](gains []F, c Curve) error {
	return Fill(gains, c, unityGain, silentGain)
}

// Envelope returns a gain per frame for a clip of the given length: a fade-in
// over the first fadeIn frames, a fade-out over the last fadeOut frames, and
// unity gain elsewhere. Fades longer than the clip are clamped to it, and
// overlapping fades multiply.
func Envelope(frames, fadeIn, fadeOut int, c Curve) ([]float64, error) {
	if frames < 0 || fadeIn < 0 || fadeOut < 0 {
		return nil, fmt.Errorf("%w: frame counts must not be negative", ErrInvalidConfig)
	}
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %w: %d", ErrInvalidConfig, ErrUnknownCurve, int(c))
	}

	fadeIn = min(fadeIn, frames)
	fadeOut = min(fadeOut, frames)

	gains := make([]float64, frames)
	for i := range gains {
		gains[i] = unityGain
	}

	if fadeIn > 0 {
		if err := FadeIn(gains[:fadeIn], c); err != nil {
			return nil, err
		}
	}

	if fadeOut > 0 {
		out := make([]float64, fadeOut)
		if err := FadeOut(out, c); err != nil {
			return nil, err
		}
		tail := gains[frames-fadeOut:]
		for i := range tail {
			tail[i] *= out[i]
		}
	}

	return gains, nil
}

// ApplyGain multiplies interleaved samples by a per-frame gain. The number of
// frames is len(samples)/channels; frames without a gain are left untouched.
func ApplyGain[F Float](samples []F, gains []F, channels int) {
	if channels < 1 {
		return
	}
	frames := min(len(samples)/channels, len(gains))
	for i := range frames {
		g := gains[i]
		frame := samples[i*channels : (i+1)*channels]
		for ch := range frame {
			frame[ch] *= g
		}
	}
}
