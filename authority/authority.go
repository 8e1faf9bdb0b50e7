package authority

import (
	"errors"
	"fmt"

	"github.com/fenianpark/dampfit/dyno"
	"github.com/fenianpark/dampfit/errs"
	"github.com/fenianpark/dampfit/fitting"
)

// Target band for adjuster authority, in percent. Boundaries are inclusive
// on both ends.
const (
	TargetFloor   = 15.0
	TargetCeiling = 20.0
)

// Rating classifies an authority percentage against the target band.
type Rating int

const (
	// BelowTarget: the adjuster removes less than 15% of the damping force
	// and will have little to no real effect.
	BelowTarget Rating = iota
	// InTarget: authority inside the 15–20% band (inclusive).
	InTarget
	// AboveTarget: the adjuster is doing more than 20% of the damping job.
	AboveTarget
)

// String returns the string representation of the rating.
func (r Rating) String() string {
	switch r {
	case BelowTarget:
		return "below-target"
	case InTarget:
		return "in-target"
	case AboveTarget:
		return "above-target"
	default:
		return "unknown"
	}
}

// Result is the derived adjuster metric. It is owned solely by the caller
// once returned; the package keeps no reference to it.
type Result struct {
	// Percent is the adjuster authority percentage.
	Percent float64
	// Velocity is the shaft velocity the metric was taken at.
	Velocity float64
	// AdjForce and FullForce are the force values the ratio was built from.
	AdjForce  float64
	FullForce float64
	// Rating classifies Percent against the 15–20% target band.
	Rating Rating
}

// String returns a short summary of the result.
func (r Result) String() string {
	return fmt.Sprintf("Result{%.2f%% at %.2f m/s, %s}", r.Percent, r.Velocity, r.Rating)
}

// Compute derives the adjuster authority from two fitted curves at the
// given reference velocity.
//
// Parameters:
//   - adj: Curve fit against the Adj-only force column
//   - full: Curve fit against the Full force column
//   - velocity: Reference shaft velocity to compare the curves at
//
// Returns:
//   - Result: Authority percentage and its classification
//   - error: errs.ErrModelMismatch when the curves were fit at different
//     orders, errs.ErrMetricUndefined when the Full curve evaluates to zero
//     at the reference velocity
//
// The metric is (F_full − F_adj) / F_full × 100: how much force range the
// adjuster removes relative to the fully-open (softest) state. Comparing
// curves of different orders has no consistent physical meaning and is
// rejected outright.
func Compute(adj, full *fitting.Curve, velocity float64) (Result, error) {
	if adj == nil || full == nil {
		return Result{}, errors.New("nil curve")
	}
	if adj.Model() != full.Model() {
		return Result{}, fmt.Errorf("%w: adj-only is %s, full is %s",
			errs.ErrModelMismatch, adj.Model(), full.Model())
	}

	fAdj := adj.Eval(velocity)
	fFull := full.Eval(velocity)
	if fFull == 0 {
		return Result{}, fmt.Errorf("%w: at %.3f m/s", errs.ErrMetricUndefined, velocity)
	}

	percent := (fFull - fAdj) / fFull * 100

	return Result{
		Percent:   percent,
		Velocity:  velocity,
		AdjForce:  fAdj,
		FullForce: fFull,
		Rating:    Classify(percent),
	}, nil
}

// Peak derives the original tool's headline metric from the raw samples:
// the maximum over the six rows of adj_force / full_force × 100.
//
// Returns:
//   - Result: Peak ratio, the velocity of the row it occurred at, and its
//     classification
//   - error: errs.ErrMetricUndefined when any row has zero Full force
func Peak(set *dyno.MeasurementSet) (Result, error) {
	if set == nil {
		return Result{}, errors.New("nil measurement set")
	}

	var peak Result
	for i, s := range set.Samples() {
		if s.FullForce == 0 {
			return Result{}, fmt.Errorf("%w: row %d at %.3f m/s",
				errs.ErrMetricUndefined, i, s.Velocity)
		}
		ratio := s.AdjForce / s.FullForce * 100
		if i == 0 || ratio > peak.Percent {
			peak = Result{
				Percent:   ratio,
				Velocity:  s.Velocity,
				AdjForce:  s.AdjForce,
				FullForce: s.FullForce,
			}
		}
	}
	peak.Rating = Classify(peak.Percent)

	return peak, nil
}

// Classify maps an authority percentage onto the target band:
// < 15 is BelowTarget, 15–20 inclusive is InTarget, > 20 is AboveTarget.
func Classify(percent float64) Rating {
	switch {
	case percent < TargetFloor:
		return BelowTarget
	case percent > TargetCeiling:
		return AboveTarget
	default:
		return InTarget
	}
}
