package easing

import (
	"fmt"
	"strings"

	"github.com/tphakala/go-easing/internal/mathutil"
)

// Curve enumerates the built-in easing curves.
// Use it when the curve is chosen at runtime, for example from a flag or a
// configuration file; it marshals to and from its snake_case name.
type Curve int

const (
	// CurveLinear moves at constant speed.
	CurveLinear Curve = iota

	// CurveQuadIn accelerates from zero velocity (x²).
	CurveQuadIn

	// CurveQuadOut decelerates to zero velocity.
	CurveQuadOut

	// CurveQuadInOut accelerates until halfway, then decelerates.
	CurveQuadInOut

	// CurveCubicIn accelerates from zero velocity (x³).
	CurveCubicIn

	// CurveCubicOut decelerates to zero velocity.
	CurveCubicOut

	// CurveCubicInOut accelerates until halfway, then decelerates.
	CurveCubicInOut

	// CurveQuarticIn accelerates from zero velocity (x⁴).
	CurveQuarticIn

	// CurveQuarticOut decelerates to zero velocity.
	CurveQuarticOut

	// CurveQuarticInOut accelerates until halfway, then decelerates.
	CurveQuarticInOut

	// CurveSinIn follows a quarter sine wave, slow at the start.
	CurveSinIn

	// CurveSinOut follows a quarter sine wave, slow at the end.
	CurveSinOut

	// CurveSinInOut follows two quarter circles, slow at both ends.
	CurveSinInOut

	// CurveExpIn grows exponentially.
	CurveExpIn

	// CurveExpOut approaches the end exponentially.
	CurveExpOut

	// CurveExpInOut grows exponentially until halfway, then decays.
	CurveExpInOut

	numCurves = iota
)

// curveInfo describes one built-in curve.
type curveInfo struct {
	name string
	fn   Func
}

var curveTable = [numCurves]curveInfo{
	CurveLinear:       {"linear", mathutil.Linear},
	CurveQuadIn:       {"quad_in", mathutil.QuadIn},
	CurveQuadOut:      {"quad_out", mathutil.QuadOut},
	CurveQuadInOut:    {"quad_inout", mathutil.QuadInOut},
	CurveCubicIn:      {"cubic_in", mathutil.CubicIn},
	CurveCubicOut:     {"cubic_out", mathutil.CubicOut},
	CurveCubicInOut:   {"cubic_inout", mathutil.CubicInOut},
	CurveQuarticIn:    {"quartic_in", mathutil.QuarticIn},
	CurveQuarticOut:   {"quartic_out", mathutil.QuarticOut},
	CurveQuarticInOut: {"quartic_inout", mathutil.QuarticInOut},
	CurveSinIn:        {"sin_in", mathutil.SinIn},
	CurveSinOut:       {"sin_out", mathutil.SinOut},
	CurveSinInOut:     {"sin_inout", mathutil.SinInOut},
	CurveExpIn:        {"exp_in", mathutil.ExpIn},
	CurveExpOut:       {"exp_out", mathutil.ExpOut},
	CurveExpInOut:     {"exp_inout", mathutil.ExpInOut},
}

// Curves returns every built-in curve in declaration order.
func Curves() []Curve {
	curves := make([]Curve, numCurves)
	for i := range curves {
		curves[i] = Curve(i)
	}
	return curves
}

// Valid reports whether c is one of the built-in curves.
func (c Curve) Valid() bool {
	return c >= 0 && c < numCurves
}

// String returns the curve's snake_case name, such as "quad_inout".
func (c Curve) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Curve(%d)", int(c))
	}
	return curveTable[c].name
}

// Func returns the curve's shape function, or nil for an invalid curve.
func (c Curve) Func() Func {
	if !c.Valid() {
		return nil
	}
	return curveTable[c].fn
}

// Sequence creates a sequence following c from start to end over steps steps.
// An invalid curve yields an exhausted sequence.
func (c Curve) Sequence(start, end float64, steps int) *Sequence {
	if !c.Valid() {
		return New(nil, start, end, 0)
	}
	return New(curveTable[c].fn, start, end, steps)
}

// ParseCurve looks up a curve by name. Matching ignores case and accepts
// '-' in place of '_', so "Quad-InOut" parses as CurveQuadInOut.
func ParseCurve(name string) (Curve, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i := range curveTable {
		if curveTable[i].name == normalized {
			return Curve(i), nil
		}
	}
	return CurveLinear, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}

// MarshalText implements encoding.TextMarshaler.
func (c Curve) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCurve, int(c))
	}
	return []byte(curveTable[c].name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Curve) UnmarshalText(text []byte) error {
	parsed, err := ParseCurve(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Linear creates a sequence moving at constant speed from start to end.
func Linear(start, end float64, steps int) *Sequence {
	return New(mathutil.Linear, start, end, steps)
}

// QuadIn creates a quadratic ease-in sequence.
func QuadIn(start, end float64, steps int) *Sequence {
	return New(mathutil.QuadIn, start, end, steps)
}

// QuadOut creates a quadratic ease-out sequence.
func QuadOut(start, end float64, steps int) *Sequence {
	return New(mathutil.QuadOut, start, end, steps)
}

// QuadInOut creates a quadratic ease-in-out sequence.
func QuadInOut(start, end float64, steps int) *Sequence {
	return New(mathutil.QuadInOut, start, end, steps)
}

// CubicIn creates a cubic ease-in sequence.
func CubicIn(start, end float64, steps int) *Sequence {
	return New(mathutil.CubicIn, start, end, steps)
}

// CubicOut creates a cubic ease-out sequence.
func CubicOut(start, end float64, steps int) *Sequence {
	return New(mathutil.CubicOut, start, end, steps)
}

// CubicInOut creates a cubic ease-in-out sequence.
func CubicInOut(start, end float64, steps int) *Sequence {
	return New(mathutil.CubicInOut, start, end, steps)
}

// QuarticIn creates a quartic ease-in sequence.
func QuarticIn(start, end float64, steps int) *Sequence {
	return New(mathutil.QuarticIn, start, end, steps)
}

// QuarticOut creates a quartic ease-out sequence.
func QuarticOut(start, end float64, steps int) *Sequence {
	return New(mathutil.QuarticOut, start, end, steps)
}

// QuarticInOut creates a quartic ease-in-out sequence.
func QuarticInOut(start, end float64, steps int) *Sequence {
	return New(mathutil.QuarticInOut, start, end, steps)
}

// SinIn creates a sinusoidal ease-in sequence.
func SinIn(start, end float64, steps int) *Sequence {
	return New(mathutil.SinIn, start, end, steps)
}

// SinOut creates a sinusoidal ease-out sequence.
func SinOut(start, end float64, steps int) *Sequence {
	return New(mathutil.SinOut, start, end, steps)
}

// SinInOut creates a circular ease-in-out sequence.
func SinInOut(start, end float64, steps int) *Sequence {
	return New(mathutil.SinInOut, start, end, steps)
}

// ExpIn creates an exponential ease-in sequence.
func ExpIn(start, end float64, steps int) *Sequence {
	return New(mathutil.ExpIn, start, end, steps)
}

// ExpOut creates an exponential ease-out sequence.
func ExpOut(start, end float64, steps int) *Sequence {
	return New(mathutil.ExpOut, start, end, steps)
}

// ExpInOut creates an exponential ease-in-out sequence.
func ExpInOut(start, end float64, steps int) *Sequence {
	return New(mathutil.ExpInOut, start, end, steps)
}
