package easing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-easing/internal/testutil"
)

func TestTimeline_ChainsSegments(t *testing.T) {
	tl, err := NewTimeline(0,
		Keyframe{Value: 100, Steps: 4, Curve: CurveLinear},
		Keyframe{Value: 100, Steps: 2, Curve: CurveQuadIn},
		Keyframe{Value: 0, Steps: 4, Curve: CurveLinear},
	)
	require.NoError(t, err)
	assert.Equal(t, 10, tl.Steps())
	assert.Equal(t, 10, tl.Remaining())

	got := tl.Collect()
	expected := []float64{25, 50, 75, 100, 100, 100, 75, 50, 25, 0}
	testutil.AssertSliceInDelta(t, expected, got, testutil.DefaultTolerance)
	assert.Zero(t, tl.Remaining())

	_, ok := tl.Next()
	assert.False(t, ok)
}

func TestTimeline_MatchesSingleSequence(t *testing.T) {
	tl, err := NewTimeline(0, Keyframe{Value: 10000, Steps: 10, Curve: CurveSinInOut})
	require.NoError(t, err)
	testutil.AssertRoundedEqual(t, referenceTables[CurveSinInOut], tl.Collect())
}

func TestTimeline_EndsOnEveryKeyframe(t *testing.T) {
	keyframes := []Keyframe{
		{Value: 3.3, Steps: 7, Curve: CurveExpOut},
		{Value: -1.1, Steps: 5, Curve: CurveCubicInOut},
		{Value: 9.9, Steps: 3, Curve: CurveSinIn},
	}
	tl, err := NewTimeline(0.7, keyframes...)
	require.NoError(t, err)

	got := tl.Collect()
	require.Len(t, got, 15)
	assert.Equal(t, 3.3, got[6])
	assert.Equal(t, -1.1, got[11])
	assert.Equal(t, 9.9, got[14])
}

func TestTimeline_EarlyBreak(t *testing.T) {
	tl, err := NewTimeline(0,
		Keyframe{Value: 1, Steps: 3, Curve: CurveLinear},
		Keyframe{Value: 2, Steps: 3, Curve: CurveLinear},
	)
	require.NoError(t, err)

	for range tl.All() {
		if tl.Remaining() == 2 {
			break
		}
	}
	assert.Len(t, tl.Collect(), 2)
}

func TestTimeline_Invalid(t *testing.T) {
	_, err := NewTimeline(0)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewTimeline(0, Keyframe{Value: 1, Steps: 0, Curve: CurveLinear})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "keyframe 0")

	_, err = NewTimeline(0,
		Keyframe{Value: 1, Steps: 2, Curve: CurveLinear},
		Keyframe{Value: 2, Steps: 2, Curve: Curve(40)},
	)
	assert.ErrorIs(t, err, ErrUnknownCurve)
	assert.Contains(t, err.Error(), "keyframe 1")

	_, err = NewTimeline(0,
		Keyframe{Value: 1, Steps: MaxSteps, Curve: CurveLinear},
		Keyframe{Value: 2, Steps: 1, Curve: CurveLinear},
	)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestTimeline_KeyframesFromJSON(t *testing.T) {
	var keyframes []Keyframe
	raw := `[{"value": 1, "steps": 2, "curve": "quad_out"}, {"value": 0, "steps": 2, "curve": "quad_in"}]`
	require.NoError(t, json.Unmarshal([]byte(raw), &keyframes))

	tl, err := NewTimeline(0, keyframes...)
	require.NoError(t, err)
	testutil.AssertSliceInDelta(t, []float64{0.75, 1, 0.75, 0}, tl.Collect(), testutil.DefaultTolerance)
}

func TestTimeline_CopiesKeyframes(t *testing.T) {
	keyframes := []Keyframe{{Value: 1, Steps: 2, Curve: CurveLinear}}
	tl, err := NewTimeline(0, keyframes...)
	require.NoError(t, err)

	keyframes[0].Value = 50
	assert.Equal(t, []float64{0.5, 1}, tl.Collect())
}
