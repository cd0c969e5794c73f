package easing

import (
	"fmt"
	"iter"
)

// Keyframe is one segment of a Timeline: ease from the previous value to
// Value over Steps steps following Curve.
type Keyframe struct {
	Value float64 `json:"value"`
	Steps int     `json:"steps"`
	Curve Curve   `json:"curve"`
}

// Timeline chains eased segments into a single forward-only sequence.
// Each segment starts where the previous one ended, so the values of a
// segment boundary appear exactly once.
type Timeline struct {
	start     float64
	keyframes []Keyframe
	current   *Sequence
	index     int
	total     int
	produced  int
}

// NewTimeline builds a timeline starting at start and passing through every
// keyframe in order. Keyframes are validated like Config.
func NewTimeline(start float64, keyframes ...Keyframe) (*Timeline, error) {
	if len(keyframes) == 0 {
		return nil, fmt.Errorf("%w: timeline needs at least one keyframe", ErrInvalidConfig)
	}

	total := 0
	from := start
	for i, k := range keyframes {
		config := Config{Curve: k.Curve, Start: from, End: k.Value, Steps: k.Steps}
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("keyframe %d: %w", i, err)
		}
		total += k.Steps
		if total > MaxSteps {
			return nil, fmt.Errorf("%w: timeline too long (max %d steps)", ErrInvalidConfig, MaxSteps)
		}
		from = k.Value
	}

	t := &Timeline{
		start:     start,
		keyframes: append([]Keyframe(nil), keyframes...),
		total:     total,
	}
	t.current = t.segment(0)
	return t, nil
}

// segment returns the sequence for keyframe i.
func (t *Timeline) segment(i int) *Sequence {
	from := t.start
	if i > 0 {
		from = t.keyframes[i-1].Value
	}
	k := t.keyframes[i]
	return k.Curve.Sequence(from, k.Value, k.Steps)
}

// Next returns the next value, moving on to the following keyframe when the
// current segment is exhausted.
func (t *Timeline) Next() (float64, bool) {
	for t.current != nil {
		if v, ok := t.current.Next(); ok {
			t.produced++
			return v, true
		}
		t.index++
		if t.index >= len(t.keyframes) {
			t.current = nil
			break
		}
		t.current = t.segment(t.index)
	}
	return 0, false
}

// All returns an iterator over the remaining values.
func (t *Timeline) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for {
			v, ok := t.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains the timeline and returns every remaining value in order.
func (t *Timeline) Collect() []float64 {
	out := make([]float64, 0, t.Remaining())
	for v := range t.All() {
		out = append(out, v)
	}
	return out
}

// Steps returns the total number of values across all keyframes.
func (t *Timeline) Steps() int {
	return t.total
}

// Remaining returns how many values are left.
func (t *Timeline) Remaining() int {
	return t.total - t.produced
}
