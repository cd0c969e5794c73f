package easing

import (
	"fmt"

	"github.com/tphakala/go-easing/internal/simdops"
)

// Float is the type constraint for Fill.
type Float = simdops.Float

// Fill writes the len(dst)-step sequence of curve c from start to end into
// dst, so dst[i] holds the value at progress (i+1)/len(dst) and the last
// element is end. An empty dst is left untouched.
//
// Fill agrees with the equivalent Sequence to within rounding error; it
// evaluates all coefficients first and then scales and offsets them in bulk.
func Fill[F Float](dst []F, c Curve, start, end F) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCurve, int(c))
	}

	n := len(dst)
	if n == 0 {
		return nil
	}

	fn := curveTable[c].fn
	steps := float64(n)
	for i := range dst {
		dst[i] = F(fn(float64(i+1) / steps))
	}

	ops := simdops.For[F]()
	ops.Scale(dst, dst, end-start)
	ops.AddConst(dst, start)
	dst[n-1] = end

	return nil
}

// Values returns the steps-step sequence of curve c from start to end.
// Unlike the constructors it validates its input like Config does.
func Values(c Curve, start, end float64, steps int) ([]float64, error) {
	config := Config{Curve: c, Start: start, End: end, Steps: steps}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, steps)
	if err := Fill(out, c, start, end); err != nil {
		return nil, err
	}
	return out, nil
}

// Collect is like Values but takes a Config.
func Collect(config *Config) ([]float64, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	return Values(config.Curve, config.Start, config.End, config.Steps)
}
