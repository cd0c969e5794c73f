// Package mathutil provides the shape formulas behind each easing curve.
//
// Every function maps normalized progress x in (0, 1] to a dimensionless
// coefficient. All of them return exactly 1 at x = 1; intermediate values are
// not necessarily inside [0, 1].
package mathutil

import (
	"math"
)

// Linear returns x.
func Linear(x float64) float64 {
	return x
}

// QuadIn returns x².
func QuadIn(x float64) float64 {
	return x * x
}

// QuadOut returns −x(x−2).
func QuadOut(x float64) float64 {
	return -(x * (x - doubledProgress))
}

// QuadInOut returns 2x² below the midpoint and −2x² + 4x − 1 above it.
func QuadInOut(x float64) float64 {
	if x < midpoint {
		return quadInOutScale * x * x
	}
	return (-quadInOutScale * x * x) + (quadInOutLinear * x) - progressEnd
}

// CubicIn returns x³.
func CubicIn(x float64) float64 {
	return x * x * x
}

// CubicOut returns (x−1)³ + 1.
func CubicOut(x float64) float64 {
	y := x - progressEnd
	return y*y*y + progressEnd
}

// CubicInOut returns 4x³ below the midpoint and ½(2x−2)³ + 1 above it.
func CubicInOut(x float64) float64 {
	if x < midpoint {
		return cubicInOutScale * x * x * x
	}
	y := (doubledProgress * x) - doubledProgress
	return inOutHalf*y*y*y + progressEnd
}

// QuarticIn returns x⁴.
func QuarticIn(x float64) float64 {
	return x * x * x * x
}

// QuarticOut returns (x−1)³(1−x) + 1.
func QuarticOut(x float64) float64 {
	y := x - progressEnd
	return y*y*y*(progressEnd-x) + progressEnd
}

// QuarticInOut returns 8x⁴ below the midpoint and −8(x−1)⁴ + 1 above it.
func QuarticInOut(x float64) float64 {
	if x < midpoint {
		return quarticInOutScale * x * x * x * x
	}
	y := x - progressEnd
	return -quarticInOutScale*y*y*y*y + progressEnd
}

// SinIn returns sin((x−1)·π/2) + 1.
func SinIn(x float64) float64 {
	y := (x - progressEnd) * (math.Pi / 2)
	return math.Sin(y) + progressEnd
}

// SinOut returns sin(x·π/2).
func SinOut(x float64) float64 {
	return math.Sin(x * (math.Pi / 2))
}

// SinInOut follows two quarter circles: ½(1 − √(1−4x²)) below the midpoint
// and ½(√(−(2x−3)(2x−1)) + 1) above it.
// It is the circular in-out curve.
func SinInOut(x float64) float64 {
	if x < midpoint {
		return inOutHalf * (progressEnd - math.Sqrt(progressEnd-sinInOutQuadFactor*x*x))
	}
	return inOutHalf * (math.Sqrt(-((doubledProgress*x)-sinInOutOffset)*((doubledProgress*x)-progressEnd)) + progressEnd)
}

// ExpIn returns 2^(10(x−1)), with ExpIn(0) = 0.
func ExpIn(x float64) float64 {
	if x == progressStart {
		return progressStart
	}
	return math.Pow(expBase, expSlope*(x-progressEnd))
}

// ExpOut returns 1 − 2^(−10x), with ExpOut(1) = 1.
func ExpOut(x float64) float64 {
	if x == progressEnd {
		return progressEnd
	}
	return progressEnd - math.Pow(expBase, -expSlope*x)
}

// ExpInOut returns ½·2^(20x−10) below the midpoint and −½·2^(−20x+10) + 1
// above it, pinned to 0 and 1 at the ends.
func ExpInOut(x float64) float64 {
	switch {
	case x == progressEnd:
		return progressEnd
	case x == progressStart:
		return progressStart
	case x < midpoint:
		return inOutHalf * math.Pow(expBase, (expInOutSlope*x)-expInOutOffset)
	default:
		return -inOutHalf*math.Pow(expBase, (-expInOutSlope*x)+expInOutOffset) + progressEnd
	}
}
