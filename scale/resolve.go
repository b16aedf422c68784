package scale

import "math"

// Resolve derives the effective mapping configuration from raw
// parameters. Call it once per distinct (steps, bounds, linear) triple
// and reuse the Config across transform calls.
//
// Resolution rules:
//  1. lin == nil is treated as DefaultLinear() — no linear region.
//  2. Percent is normalized from 0..100 to 0..1.
//  3. LinearAbsolute = min(MaxLinear, round(b.Max·percent)): the linear
//     boundary can never exceed the percentage-implied share of the max
//     bound, even for an oversized MaxLinear.
//  4. Percent == 100 exactly is fully-linear mode: the effective Max
//     becomes MaxLinear itself and the exponential region has zero width.
//
// Resolve is permissive: it never fails. Malformed input (inverted
// bounds, non-positive steps) produces a degenerate Config the
// transforms handle defensively; use ResolveStrict to reject it instead.
//
// Complexity: O(1).
func Resolve(steps int, b Bounds, lin *Linear) Config {
	l := DefaultLinear()
	if lin != nil {
		l = *lin
	}

	percent := l.Percent / 100
	linearAbs := math.Min(l.MaxLinear, math.Round(b.Max*percent))

	max := b.Max
	if l.Percent == 100 {
		max = l.MaxLinear
	}

	return Config{
		Steps:          steps,
		LinearAbsolute: linearAbs,
		Percent:        percent,
		Min:            b.Min,
		Max:            max,
		Range:          max - b.Min,
	}
}

// ResolveStrict validates the raw parameters before resolving them.
// It returns the first violated sentinel (ErrNonPositiveSteps,
// ErrInvertedBounds, ErrPercentRange, ErrNegativeMaxLinear).
//
// The Config it returns on success is identical to Resolve's.
func ResolveStrict(steps int, b Bounds, lin *Linear) (Config, error) {
	if err := validateInputs(steps, b, lin); err != nil {
		return Config{}, err
	}

	return Resolve(steps, b, lin), nil
}

// validateInputs checks raw parameters stage by stage: step count,
// bounds ordering, then the optional linear spec.
func validateInputs(steps int, b Bounds, lin *Linear) error {
	if steps <= 0 {
		return ErrNonPositiveSteps
	}
	if b.Max < b.Min {
		return ErrInvertedBounds
	}
	if lin != nil {
		if lin.Percent < 0 || lin.Percent > 100 {
			return ErrPercentRange
		}
		if lin.MaxLinear < 0 {
			return ErrNegativeMaxLinear
		}
	}

	return nil
}
