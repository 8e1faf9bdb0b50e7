package session

import (
	"fmt"
	"time"

	"github.com/fenianpark/dampfit/authority"
	"github.com/fenianpark/dampfit/dyno"
	"github.com/fenianpark/dampfit/fitting"
)

// Record is one completed analysis run as persisted to the session log.
type Record struct {
	// Timestamp is when the run completed, UTC.
	Timestamp time.Time `json:"ts"`
	// Fingerprint is the hex xxHash64 of the measurement set.
	Fingerprint string `json:"fingerprint"`
	// Stroke is the stroke direction ("compression" or "rebound").
	Stroke string `json:"stroke"`
	// Model is the curve model both states were fit at.
	Model string `json:"model"`

	// AdjCoefficients and FullCoefficients are the fitted polynomial
	// coefficients, constant term first.
	AdjCoefficients  []float64 `json:"adj_coefficients"`
	FullCoefficients []float64 `json:"full_coefficients"`
	// AdjRSquared and FullRSquared are the per-state goodness of fit.
	AdjRSquared  float64 `json:"adj_r_squared"`
	FullRSquared float64 `json:"full_r_squared"`

	// ReferenceVelocity is the velocity the authority metric was taken at.
	ReferenceVelocity float64 `json:"reference_velocity"`
	// AdjusterPercent is the curve-based authority metric.
	AdjusterPercent float64 `json:"adjuster_percent"`
	// PeakPercent is the peak per-sample ratio metric.
	PeakPercent float64 `json:"peak_percent"`
	// Rating classifies AdjusterPercent against the 15-20% target band.
	Rating string `json:"rating"`
}

// NewRecord assembles a session record from the outputs of one run.
//
// Parameters:
//   - set: The measurement set the run was fit from
//   - stroke: The stroke direction of the set
//   - adj, full: The fitted Adj-only and Full curves
//   - res: The curve-based authority result
//   - peak: The peak per-sample ratio result
//   - now: Completion time (stored as UTC)
func NewRecord(set *dyno.MeasurementSet, stroke dyno.Stroke, adj, full *fitting.Curve,
	res, peak authority.Result, now time.Time,
) Record {
	return Record{
		Timestamp:         now.UTC(),
		Fingerprint:       fmt.Sprintf("%016x", set.Fingerprint()),
		Stroke:            stroke.String(),
		Model:             adj.Model().String(),
		AdjCoefficients:   adj.Coefficients(),
		FullCoefficients:  full.Coefficients(),
		AdjRSquared:       adj.RSquared(),
		FullRSquared:      full.RSquared(),
		ReferenceVelocity: res.Velocity,
		AdjusterPercent:   res.Percent,
		PeakPercent:       peak.Percent,
		Rating:            res.Rating.String(),
	}
}
