// Command scaletab prints a step→model→step conversion table for a
// slider scale, taken either from command-line flags or from a named
// preset in a YAML file.
//
// Usage:
//
//	scaletab -steps 1000 -min 500 -max 1250000 -max-linear 15000 -percent 75
//	scaletab -preset presets.yaml -name donations -every 50
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/stepscale/preset"
	"github.com/katalvlaran/stepscale/scale"
)

func main() {
	presetPath := flag.String("preset", "", "YAML preset file (overrides the numeric flags)")
	presetName := flag.String("name", "", "Preset name inside the preset file")
	steps := flag.Int("steps", 1000, "Number of discrete steps")
	min := flag.Float64("min", 0, "Minimum model value")
	max := flag.Float64("max", 1_000_000, "Maximum model value")
	maxLinear := flag.Float64("max-linear", 0, "Linear region value cap (0 disables the linear region)")
	percent := flag.Float64("percent", 0, "Share of steps devoted to the linear region (0..100)")
	every := flag.Int("every", 100, "Print a row every N steps")
	flag.Parse()

	calc, err := buildCalculator(*presetPath, *presetName, *steps, *min, *max, *maxLinear, *percent)
	if err != nil {
		fmt.Fprintln(os.Stderr, "scaletab:", err)
		os.Exit(1)
	}

	printTable(calc, *every)
}

// buildCalculator picks the preset path or the flag path and validates
// the result strictly either way.
func buildCalculator(path, name string, steps int, min, max, maxLinear, percent float64) (*scale.Calculator, error) {
	if path != "" {
		f, err := preset.Load(path)
		if err != nil {
			return nil, err
		}
		p, err := f.Find(name)
		if err != nil {
			return nil, err
		}

		return p.Calculator()
	}

	var lin *scale.Linear
	if maxLinear > 0 || percent > 0 {
		lin = &scale.Linear{MaxLinear: maxLinear, Percent: percent}
	}

	return scale.NewCalculatorStrict(steps, scale.Bounds{Min: min, Max: max}, lin)
}

func printTable(calc *scale.Calculator, every int) {
	if every < 1 {
		every = 1
	}
	cfg := calc.Config

	fmt.Printf("steps=%d min=%.2f max=%.2f linearAbsolute=%.2f percent=%.2f range=%.2f\n\n",
		cfg.Steps, cfg.Min, cfg.Max, cfg.LinearAbsolute, cfg.Percent, cfg.Range)
	fmt.Printf("%10s  %16s  %10s\n", "step", "model", "back")

	for step := 0; step <= cfg.Steps; step += every {
		model := calc.StepToModel(float64(step))
		back := calc.ModelToStep(model)
		fmt.Printf("%10d  %16.2f  %10.0f\n", step, model, back)
	}
	// Always show the last step even when every does not divide Steps.
	if cfg.Steps%every != 0 {
		model := calc.StepToModel(float64(cfg.Steps))
		fmt.Printf("%10d  %16.2f  %10.0f\n", cfg.Steps, model, calc.ModelToStep(model))
	}
}
