// Command sliderdemo is an interactive terminal slider showing the
// piecewise linear/exponential mapping live: move the handle with the
// arrow keys and watch the model value, or type a model value and jump
// the handle to the matching step.
//
// Usage:
//
//	sliderdemo
//	sliderdemo -preset presets.yaml -name donations
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/stepscale/preset"
	"github.com/katalvlaran/stepscale/scale"
)

func main() {
	presetPath := flag.String("preset", "", "YAML preset file")
	presetName := flag.String("name", "", "Preset name inside the preset file")
	flag.Parse()

	calc, err := loadCalculator(*presetPath, *presetName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sliderdemo:", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(newSliderModel(calc)).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "sliderdemo:", err)
		os.Exit(1)
	}
}

// loadCalculator uses the preset file when given, otherwise a built-in
// donation-style scale that shows the mapping off nicely.
func loadCalculator(path, name string) (*scale.Calculator, error) {
	if path == "" {
		return scale.NewCalculatorStrict(1000,
			scale.Bounds{Min: 500, Max: 1_250_000},
			&scale.Linear{MaxLinear: 15_000, Percent: 75})
	}

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
