package scale

// LimitBounds clamps v into [b.Min, b.Max].
//
// It is the general-purpose clamp used by both transforms and exported
// because UI callers routinely need the same forgiving behavior for raw
// input (overshoot from drag handlers, wheel deltas, typed values).
func LimitBounds(v float64, b Bounds) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}

	return v
}

// expRange maps v from the span [lo, hi] back onto the same span with a
// square-law easing: the normalized position is squared, compressing
// resolution near lo and expanding it near hi.
//
//	expRange(lo, lo, hi) == lo
//	expRange(hi, lo, hi) == hi
//
// The square is the simplest monotonic convex curve with fixed endpoints,
// which keeps the seam with the linear region continuous. A zero-width
// span returns lo to avoid a 0/0.
func expRange(v, lo, hi float64) float64 {
	span := hi - lo
	if span <= 0 {
		return lo
	}
	p := (v - lo) / span

	return p*p*span + lo
}
