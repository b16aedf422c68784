package scale

// Calculator binds a resolved Config for repeated conversions — the
// hot-path entry point. Resolution cost is paid once in the
// constructor; each conversion is then a single O(1) method call.
//
// A Calculator is immutable after construction, so it may be shared
// freely across goroutines.
//
// Example:
//
//	calc := NewCalculator(1000, Bounds{Min: 500, Max: 1_500_000},
//		&Linear{MaxLinear: 15_000, Percent: 75})
//	v := calc.StepToModel(750)   // on every slider move
//	s := calc.ModelToStep(6_500) // on every typed value
type Calculator struct {
	// Config is the resolved configuration the conversions are bound to.
	Config Config
}

// NewCalculator resolves the configuration once and returns a
// Calculator bound to it. Permissive, like Resolve.
func NewCalculator(steps int, b Bounds, lin *Linear) *Calculator {
	return &Calculator{Config: Resolve(steps, b, lin)}
}

// NewCalculatorStrict is NewCalculator with ResolveStrict validation.
func NewCalculatorStrict(steps int, b Bounds, lin *Linear) (*Calculator, error) {
	cfg, err := ResolveStrict(steps, b, lin)
	if err != nil {
		return nil, err
	}

	return &Calculator{Config: cfg}, nil
}

// StepToModel converts a step index using the bound configuration.
func (c *Calculator) StepToModel(step float64) float64 {
	return c.Config.StepToModel(step)
}

// ModelToStep converts a model value using the bound configuration.
func (c *Calculator) ModelToStep(model float64) float64 {
	return c.Config.ModelToStep(model)
}
