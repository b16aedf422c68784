// Package preset loads named slider-scale configurations from YAML
// files and bridges them into the scale package.
//
// What:
//
//   - File is a YAML document holding one or more named Presets.
//   - Load reads and parses a preset file.
//   - File.Find looks a preset up by name.
//   - Preset.Resolve / Preset.Calculator hand off to scale.
//
// Why:
//
//	UI layers usually ship a handful of tuned scales (donation amounts,
//	quantities, budgets) that product owners tweak without recompiling.
//	A flat YAML file keeps those knobs out of the code.
//
// File format:
//
//	presets:
//	  - name: donations
//	    steps: 1000
//	    min: 500
//	    max: 1500000
//	    linear:
//	      max_linear: 15000
//	      percent: 75
//	  - name: plain
//	    steps: 100
//	    min: 0
//	    max: 1000
//
// The linear block is optional; omitting it yields a fully exponential
// scale, mirroring a nil *scale.Linear.
//
// Errors:
//
//   - ErrNoPresets: the file parsed but holds no presets.
//   - ErrUnknownPreset: Find was given a name the file does not contain.
//   - Read/parse failures are wrapped with the offending path.
package preset
