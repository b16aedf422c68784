// Package scale converts between a discrete step index (0..N) and a
// continuous model value on [Min, Max] using a piecewise scale: linear
// over a configurable low sub-range, square-law exponential over the
// remainder.
//
// What:
//
//   - Resolve derives an immutable Config (effective linear boundary,
//     effective max, range) from raw parameters, once per configuration.
//   - Config.StepToModel maps a step index to its model value.
//   - Config.ModelToStep recovers the step index from a model value.
//   - Calculator bundles a resolved Config for repeated conversions.
//   - LimitBounds is the general-purpose clamp used throughout.
//
// Why:
//
//   - Currency/quantity sliders: cent-level precision near zero while a
//     thousand steps still reach into the millions.
//   - Any UI control where the far end of a wide range must not eat all
//     of the resolution.
//
// Guarantees:
//
//   - Round-trip: for every integer step in [0, Steps],
//     ModelToStep(StepToModel(step)) == step.
//   - Continuity: linear and exponential formulas agree at the seam.
//   - Monotonicity: both directions are non-decreasing.
//   - Clamping: out-of-range steps/values are clamped, never rejected;
//     degenerate divisors (zero steps, zero linear percent) fall back to
//     defined values instead of propagating NaN.
//
// Options:
//
//   - Linear.MaxLinear: absolute model-value cap of the linear region.
//   - Linear.Percent: share of total steps (0..100) spent on it.
//     Percent == 100 collapses the usable range to MaxLinear — the
//     exponential region is elided entirely.
//   - A nil *Linear means no linear region: the whole scale is square-law.
//
// Errors (strict mode only — Resolve itself never fails):
//
//   - ErrNonPositiveSteps: steps ≤ 0.
//   - ErrInvertedBounds: Bounds.Max < Bounds.Min.
//   - ErrPercentRange: Linear.Percent outside [0, 100].
//   - ErrNegativeMaxLinear: Linear.MaxLinear < 0.
//
// Complexity: every operation is O(1) time and memory.
package scale
