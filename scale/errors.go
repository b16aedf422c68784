package scale

import "errors"

// Sentinel errors returned by the strict-mode constructors only.
// The permissive API (Resolve, the transforms, the wrappers) never
// returns an error; it degrades mathematically instead.
var (
	// ErrNonPositiveSteps indicates steps <= 0; the step fraction would be undefined.
	ErrNonPositiveSteps = errors.New("scale: steps must be positive")
	// ErrInvertedBounds indicates Bounds.Max < Bounds.Min.
	ErrInvertedBounds = errors.New("scale: bounds max must not be below min")
	// ErrPercentRange indicates Linear.Percent outside [0, 100].
	ErrPercentRange = errors.New("scale: linear percent must be within [0, 100]")
	// ErrNegativeMaxLinear indicates Linear.MaxLinear < 0.
	ErrNegativeMaxLinear = errors.New("scale: linear max must not be negative")
)
