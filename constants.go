package easing

// Step limits
const (
	minSteps = 1       // Smallest step count accepted by Config
	MaxSteps = 1 << 24 // Largest step count accepted by Config (about 16.7M values)
)

// DefaultSteps is the step count used by the commands when none is given.
const DefaultSteps = 10
