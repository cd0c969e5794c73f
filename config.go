package easing

import (
	"errors"
	"fmt"
	"math"
)

// Common errors returned by the easing package.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid easing configuration")

	// ErrUnknownCurve indicates a curve name or value that is not built in.
	ErrUnknownCurve = errors.New("unknown easing curve")
)

// Config describes a sequence by value, so it can be built from flags or a
// serialized document. The zero value is not valid: Steps must be set.
type Config struct {
	// Curve selects the shape of the progression.
	Curve Curve `json:"curve"`

	// Start is the value at progress 0. It is never produced itself.
	Start float64 `json:"start"`

	// End is the value at progress 1, always produced last.
	End float64 `json:"end"`

	// Steps is the number of values produced. Must be in [1, MaxSteps].
	Steps int `json:"steps"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !c.Curve.Valid() {
		return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, ErrUnknownCurve, int(c.Curve))
	}

	if c.Steps < minSteps {
		return fmt.Errorf("%w: steps must be at least %d, got %d", ErrInvalidConfig, minSteps, c.Steps)
	}

	if c.Steps > MaxSteps {
		return fmt.Errorf("%w: too many steps (max %d)", ErrInvalidConfig, MaxSteps)
	}

	if !isFinite(c.Start) || !isFinite(c.End) {
		return fmt.Errorf("%w: start and end must be finite", ErrInvalidConfig)
	}

	return nil
}

// NewSequence creates a sequence from a validated configuration.
func NewSequence(config *Config) (*Sequence, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config.Curve.Sequence(config.Start, config.End, config.Steps), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
