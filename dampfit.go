// Package dampfit characterizes a damper's force-velocity behavior from
// six-point dyno measurements and judges the usefulness of its external
// adjustment knob.
//
// A dyno run captures six (velocity, force) samples twice: once with the
// adjuster fully closed (Adj-only) and once fully open (Full). Each force
// column is fit with a least-squares polynomial of a selectable order
// (linear, quadratic, cubic), and the two fitted curves are compared at a
// reference velocity to produce the adjuster authority percentage. A knob
// in the 15–20% band has a meaningfully useful range; below it the knob
// barely does anything, above it the knob carries too much of the damping
// job.
//
// # Basic Usage
//
//	set, err := dyno.NewMeasurementSet(rows)
//	if err != nil {
//	    return err
//	}
//
//	adj, full, err := dampfit.FitPair(set, fitting.ModelCubic)
//	if err != nil {
//	    return err
//	}
//
//	result, err := authority.Compute(adj, full, 1.0)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Adjuster authority: %.1f%% (%s)\n", result.Percent, result.Rating)
//
// # Package Structure
//
// This package provides convenient wrappers around the most common
// pipeline. For fine-grained control use the dyno, fitting and authority
// packages directly; session logging and archive export live in the
// session and compress packages.
package dampfit

import (
	"github.com/fenianpark/dampfit/authority"
	"github.com/fenianpark/dampfit/dyno"
	"github.com/fenianpark/dampfit/fitting"
)

// FitPair fits both damping states of a measurement set at the same model
// order, which is the only comparison the authority metric accepts.
//
// Returns:
//   - adj: Curve fit against the Adj-only force column
//   - full: Curve fit against the Full force column
//   - err: The first fitting error encountered
func FitPair(set *dyno.MeasurementSet, model fitting.Model, opts ...fitting.Option) (adj, full *fitting.Curve, err error) {
	adj, err = fitting.Fit(set, dyno.StateAdjOnly, model, opts...)
	if err != nil {
		return nil, nil, err
	}
	full, err = fitting.Fit(set, dyno.StateFull, model, opts...)
	if err != nil {
		return nil, nil, err
	}

	return adj, full, nil
}

// Analyze runs the whole pipeline: fits both states at the given order and
// computes the adjuster authority at the reference velocity.
func Analyze(set *dyno.MeasurementSet, model fitting.Model, velocity float64) (authority.Result, error) {
	adj, full, err := FitPair(set, model)
	if err != nil {
		return authority.Result{}, err
	}

	return authority.Compute(adj, full, velocity)
}
