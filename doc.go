// Package stepscale maps discrete slider steps onto wide numeric ranges
// using a piecewise linear/exponential scale — fine-grained control near
// small values, huge reach near the top, in a fixed number of steps.
//
// 🚀 What is stepscale?
//
//	A small, pure library that converts both ways between a step index
//	(0..N, e.g. a slider handle) and a model value on [min, max]:
//		• Linear region: proportional mapping near the minimum
//		• Exponential region: square-law mapping for the remainder
//		• Exact round-trip: step → value → step recovers the step
//		• Resolve once, convert many times (hot-path Calculator)
//
// ✨ Why choose stepscale?
//
//   - Forgiving by design – out-of-range inputs are clamped, never rejected
//   - Deterministic – stateless pure functions, safe under any concurrency
//   - Pure Go core – the scale package has no hidden deps
//   - Batteries included – YAML presets and demo CLIs on top
//
// Under the hood, everything is organized under these subpackages:
//
//	scale/  — config resolution + StepToModel / ModelToStep transforms
//	preset/ — named scale configurations loaded from YAML files
//	cmd/    — scaletab (conversion tables) & sliderdemo (interactive TUI)
//
// Quick ASCII example:
//
//	steps:  0 ─────── 750 ──────────────── 1000
//	value: 500 ────── 15_500 ──┄┄┄┄┄┄┄──── 1_500_000
//	        (linear 75%)        (square law)
//
//	75% of the handle travel covers the first 15k of a 1.5M range.
//
// Dive into README-less code: scale/doc.go documents the math, and
// examples/ holds runnable walkthroughs.
//
//	go get github.com/katalvlaran/stepscale/scale
package stepscale
