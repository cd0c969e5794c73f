package easing

import (
	"iter"
)

// Func is a shape function. It maps normalized progress x in (0, 1] to a
// dimensionless coefficient, and must return exactly 1 at x = 1.
type Func func(x float64) float64

// Ease evaluates the shape function at progress x.
func (f Func) Ease(x float64) float64 {
	return f(x)
}

// Sequence is a finite, forward-only sequence of interpolated values.
//
// A sequence built with n steps yields exactly n values, at progress
// 1/n, 2/n, ..., n/n, and is then exhausted for good. Values are computed on
// each pull and never cached. A Sequence is not safe for concurrent use;
// independent sequences may run in parallel freely.
type Sequence struct {
	start    float64
	end      float64
	distance float64
	step     int
	steps    int
	fn       Func
}

// New creates a sequence from start to end over steps steps, shaped by fn.
//
// Start and end are not validated: equal values produce a constant sequence.
// A sequence with zero or negative steps, or a nil fn, is exhausted from the
// start.
func New(fn Func, start, end float64, steps int) *Sequence {
	if steps < 0 || fn == nil {
		steps = 0
	}
	return &Sequence{
		start:    start,
		end:      end,
		distance: end - start,
		steps:    steps,
		fn:       fn,
	}
}

// Next returns the next value in the sequence. The boolean is false once the
// sequence is exhausted, and stays false on every later call.
func (s *Sequence) Next() (float64, bool) {
	if s.step > s.steps {
		return 0, false
	}
	s.step++
	if s.step > s.steps {
		return 0, false
	}

	// f(1) = 1 for every shape, so the last value is end itself.
	if s.step == s.steps {
		return s.end, true
	}

	x := float64(s.step) / float64(s.steps)
	return s.fn(x)*s.distance + s.start, true
}

// All returns an iterator over the remaining values. Ranging over it drains
// the sequence; breaking out early leaves the rest available to Next.
func (s *Sequence) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains the sequence and returns every remaining value in order.
func (s *Sequence) Collect() []float64 {
	out := make([]float64, 0, s.Remaining())
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

// Steps returns the total number of values the sequence produces.
func (s *Sequence) Steps() int {
	return s.steps
}

// Remaining returns how many values are left before exhaustion.
func (s *Sequence) Remaining() int {
	return max(s.steps-s.step, 0)
}

// Done reports whether the sequence is exhausted.
func (s *Sequence) Done() bool {
	return s.step >= s.steps
}
