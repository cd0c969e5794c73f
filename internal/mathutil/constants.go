package mathutil

// Progress boundaries
const (
	progressStart = 0.0 // x at the start of a curve
	progressEnd   = 1.0 // x at the end of a curve
	midpoint      = 0.5 // Switch point for in-out curves
)

// Polynomial coefficients for the in-out curves
const (
	quadInOutScale     = 2.0 // 2x² for the first half
	quadInOutLinear    = 4.0 // −2x² + 4x − 1 for the second half
	cubicInOutScale    = 4.0 // 4x³ for the first half
	quarticInOutScale  = 8.0 // 8x⁴ for the first half, −8(x−1)⁴ + 1 for the second
	inOutHalf          = 0.5 // Each half of an in-out curve spans half the distance
	doubledProgress    = 2.0 // In-out curves run each half at twice the speed
	sinInOutQuadFactor = 4.0 // 1 − 4x² under the root for the first half of sin_inout
	sinInOutOffset     = 3.0 // −(2x−3)(2x−1) under the root for the second half
)

// Exponential curve constants
const (
	expBase        = 2.0  // All exponential curves are powers of two
	expSlope       = 10.0 // 2^(10(x−1)) and 1 − 2^(−10x)
	expInOutSlope  = 20.0 // 2^(20x−10) for the first half
	expInOutOffset = 10.0
)
