package scale_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepscale/scale"
)

// TestRoundTrip_AllRegimes verifies the core invariant: for every
// integer step in [0, steps], ModelToStep(StepToModel(step)) recovers
// the step exactly, across every boundary regime of the resolver.
func TestRoundTrip_AllRegimes(t *testing.T) {
	tests := []struct {
		name  string
		steps int
		b     scale.Bounds
		lin   *scale.Linear
	}{
		{
			name:  "mixed linear and exponential",
			steps: 1000,
			b:     scale.Bounds{Min: 500, Max: 1_250_000},
			lin:   &scale.Linear{MaxLinear: 15_000, Percent: 75},
		},
		{
			name:  "no linear region",
			steps: 1000,
			b:     scale.Bounds{Min: 500, Max: 1_250_000},
			lin:   nil,
		},
		{
			name:  "fully linear",
			steps: 1000,
			b:     scale.Bounds{Min: 500, Max: 1_500_000},
			lin:   &scale.Linear{MaxLinear: 15_000, Percent: 100},
		},
		{
			name:  "linear clipped by global max",
			steps: 1000,
			b:     scale.Bounds{Min: 500, Max: 1_000_000},
			lin:   &scale.Linear{MaxLinear: 1_000_000, Percent: 75},
		},
		{
			name:  "small step count",
			steps: 7,
			b:     scale.Bounds{Min: 0, Max: 10_000},
			lin:   &scale.Linear{MaxLinear: 100, Percent: 30},
		},
		{
			name:  "zero min bound",
			steps: 500,
			b:     scale.Bounds{Min: 0, Max: 2_000_000},
			lin:   &scale.Linear{MaxLinear: 10_000, Percent: 60},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := scale.Resolve(tt.steps, tt.b, tt.lin)
			for step := 0; step <= tt.steps; step++ {
				model := cfg.StepToModel(float64(step))
				got := cfg.ModelToStep(model)
				require.Equal(t, float64(step), got,
					"round trip broke at step %d (model %f)", step, model)
			}
		})
	}
}

// TestRoundTrip_WrappersMatchCalculator verifies the per-call wrappers
// and the resolve-once calculator are the same algorithm at two
// granularities.
func TestRoundTrip_WrappersMatchCalculator(t *testing.T) {
	b := scale.Bounds{Min: 500, Max: 1_250_000}
	lin := &scale.Linear{MaxLinear: 15_000, Percent: 75}
	calc := scale.NewCalculator(1000, b, lin)

	for step := 0; step <= 1000; step += 25 {
		wrapped := scale.StepToModel(float64(step), 1000, b, lin)
		require.Equal(t, calc.StepToModel(float64(step)), wrapped,
			"wrapper and calculator disagree at step %d", step)
		require.Equal(t, float64(step), scale.ModelToStep(wrapped, 1000, b, lin),
			"wrapper round trip broke at step %d", step)
	}
}
