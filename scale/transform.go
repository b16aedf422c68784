package scale

import "math"

// StepToModel — step index to model value
//
// Description:
//
//	Maps a discrete step in [0, Steps] onto the model range [Min, Max].
//	The low sub-range is linear, the remainder follows a square law so
//	that a fixed number of steps reaches very large values without the
//	top of the range eating all of the resolution.
//
// Algorithm Outline:
//  1. Clamp step into [0, Steps]; percent = step/Steps.
//  2. Fully-linear mode (LinearAbsolute >= Max): percent·Range + Min.
//  3. Linear region (percent <= Percent):
//     (percent/Percent)·LinearAbsolute + Min, or Min when Percent == 0.
//  4. Exponential region (percent > Percent): pin the linear
//     contribution at LinearAbsolute, normalize the remaining steps
//     into [0,1], scale onto the exponential value width and apply the
//     square-law easing expRange.
//
// The two formulas agree exactly at the seam: at step = Steps·Percent
// the exponential branch's normalized position is 0, so its value is
// LinearAbsolute + Min — the linear branch's value at the same step.
//
// Complexity: O(1).
func (c Config) StepToModel(step float64) float64 {
	if c.Steps <= 0 {
		return c.Min
	}
	steps := float64(c.Steps)
	step = LimitBounds(step, Bounds{Min: 0, Max: steps})
	percent := step / steps

	// Fully-linear mode: the linear boundary covers the whole range.
	if c.LinearAbsolute >= c.Max {
		return percent*c.Range + c.Min
	}

	if percent <= c.Percent {
		if c.Percent == 0 {
			return c.Min
		}

		return (percent/c.Percent)*c.LinearAbsolute + c.Min
	}

	// Past the boundary the linear part is pinned at its maximum.
	var linear float64
	if c.Percent > 0 {
		linear = c.LinearAbsolute
	}

	rangeExp := c.Range - c.LinearAbsolute
	remainder := step - steps*c.Percent
	percentOfMax := remainder / (steps * (1 - c.Percent))

	return linear + expRange(percentOfMax*rangeExp, 0, rangeExp) + c.Min
}

// ModelToStep — model value to step index
//
// Description:
//
//	The mathematical inverse of StepToModel: recovers the step whose
//	model value is closest to the input. The result is rounded to the
//	nearest integer (half away from zero) but returned as float64,
//	matching the continuous nature of the inverse.
//
// Algorithm Outline:
//  1. Clamp model into [Min, Max]; actual = max(model-Min, 0).
//  2. Fully-linear mode: round(actual/Range · Steps).
//  3. Linear region (LinearAbsolute > 0 && actual <= LinearAbsolute):
//     round(actual/LinearAbsolute · Percent · Steps).
//  4. Exponential region: invert the square law with a square root,
//     guarding the radicand against negative floating-point underflow
//     at the seam.
//
// Round-trip: for every integer step in [0, Steps],
// ModelToStep(StepToModel(step)) == step exactly.
//
// Complexity: O(1).
func (c Config) ModelToStep(model float64) float64 {
	if c.Steps <= 0 {
		return 0
	}
	steps := float64(c.Steps)
	model = LimitBounds(model, Bounds{Min: c.Min, Max: c.Max})
	actual := math.Max(model-c.Min, 0)

	if c.LinearAbsolute >= c.Max {
		if c.Range <= 0 {
			return 0
		}

		return math.Round(actual / c.Range * steps)
	}

	if c.LinearAbsolute > 0 && actual <= c.LinearAbsolute {
		return math.Round(actual / c.LinearAbsolute * c.Percent * steps)
	}

	rangeExp := c.Range - c.LinearAbsolute
	if rangeExp <= 0 {
		return math.Round(steps * c.Percent)
	}
	remainder := actual - c.LinearAbsolute
	percentOfMax := math.Sqrt(math.Max(0, remainder) / rangeExp)

	return math.Round(steps*c.Percent + percentOfMax*steps*(1-c.Percent))
}

// StepToModel resolves the configuration and converts a single step in
// one call. Convenient for one-off conversions; prefer NewCalculator
// (or a cached Resolve) when converting repeatedly with the same
// parameters.
func StepToModel(step float64, steps int, b Bounds, lin *Linear) float64 {
	return Resolve(steps, b, lin).StepToModel(step)
}

// ModelToStep resolves the configuration and converts a single model
// value in one call. Same trade-off as the StepToModel wrapper.
func ModelToStep(model float64, steps int, b Bounds, lin *Linear) float64 {
	return Resolve(steps, b, lin).ModelToStep(model)
}
