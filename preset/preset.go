package preset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepscale/scale"
)

var (
	// ErrNoPresets indicates a preset file with an empty presets list.
	ErrNoPresets = errors.New("preset: file contains no presets")
	// ErrUnknownPreset indicates a lookup for a name the file does not define.
	ErrUnknownPreset = errors.New("preset: unknown preset")
)

// LinearSpec mirrors scale.Linear in YAML form.
type LinearSpec struct {
	MaxLinear float64 `yaml:"max_linear"`
	Percent   float64 `yaml:"percent"`
}

// Preset names one reusable slider mapping.
type Preset struct {
	Name   string      `yaml:"name"`
	Steps  int         `yaml:"steps"`
	Min    float64     `yaml:"min"`
	Max    float64     `yaml:"max"`
	Linear *LinearSpec `yaml:"linear,omitempty"` // nil means no linear region
}

// File is a collection of presets as stored on disk.
type File struct {
	Presets []Preset `yaml:"presets"`
}

// Load reads a YAML preset file. It fails on unreadable or unparsable
// files and on files that define no presets at all.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("preset: load %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("preset: parse %s: %w", path, err)
	}
	if len(f.Presets) == 0 {
		return File{}, ErrNoPresets
	}

	return f, nil
}

// Find returns the preset with the given name, or ErrUnknownPreset.
func (f File) Find(name string) (Preset, error) {
	for _, p := range f.Presets {
		if p.Name == name {
			return p, nil
		}
	}

	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Bounds returns the preset's model-value range.
func (p Preset) Bounds() scale.Bounds {
	return scale.Bounds{Min: p.Min, Max: p.Max}
}

// LinearConfig returns the preset's linear region spec, nil when the
// YAML omitted the linear block.
func (p Preset) LinearConfig() *scale.Linear {
	if p.Linear == nil {
		return nil
	}

	return &scale.Linear{MaxLinear: p.Linear.MaxLinear, Percent: p.Linear.Percent}
}

// Resolve produces the scale configuration described by the preset.
func (p Preset) Resolve() scale.Config {
	return scale.Resolve(p.Steps, p.Bounds(), p.LinearConfig())
}

// Calculator builds a resolve-once calculator from the preset,
// validating it strictly: presets come from files, so a loud failure on
// a bad one beats a silently degenerate slider.
func (p Preset) Calculator() (*scale.Calculator, error) {
	calc, err := scale.NewCalculatorStrict(p.Steps, p.Bounds(), p.LinearConfig())
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", p.Name, err)
	}

	return calc, nil
}
