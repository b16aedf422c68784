// Package scale - value types and the resolved mapping configuration.
package scale

// Bounds is the inclusive model-value range [Min, Max].
//
// Invariant (caller responsibility, see ResolveStrict): Max >= Min.
// A violated invariant is not rejected by the permissive API; it yields
// a degenerate negative range.
type Bounds struct {
	Min float64
	Max float64
}

// Linear describes the optional linear region near Bounds.Min.
//
// Fields:
//   - MaxLinear — absolute model-value cap of the linear region.
//   - Percent   — share of total steps (0..100) devoted to it.
//
// Example:
//
//	// 75% of the handle travel covers values up to 15_000.
//	lin := &Linear{MaxLinear: 15_000, Percent: 75}
//	cfg := Resolve(1000, Bounds{Min: 500, Max: 1_500_000}, lin)
type Linear struct {
	MaxLinear float64
	Percent   float64
}

// DefaultLinear returns the zero-width linear region used when no
// Linear spec is supplied: MaxLinear=0, Percent=0, i.e. the whole
// mapping is exponential.
func DefaultLinear() Linear {
	return Linear{MaxLinear: 0, Percent: 0}
}

// Config is the resolved, immutable mapping configuration shared by
// both transform directions. Produce it with Resolve (or ResolveStrict)
// and reuse it across calls; it is never mutated after construction.
//
// Fields:
//   - Steps          — number of discrete positions (handle travels 0..Steps).
//   - LinearAbsolute — value-space boundary of the linear region,
//     clamped so it never exceeds the Percent-implied share of the max.
//   - Percent        — linear step share normalized to [0, 1].
//   - Min, Max       — effective model-value bounds. Max collapses to
//     MaxLinear in fully-linear mode (input Percent == 100).
//   - Range          — Max - Min.
//
// Invariant: 0 <= LinearAbsolute <= Max for well-formed input.
type Config struct {
	Steps          int
	LinearAbsolute float64
	Percent        float64
	Min            float64
	Max            float64
	Range          float64
}
