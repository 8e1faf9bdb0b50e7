package dyno

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/fenianpark/dampfit/errs"
	"github.com/fenianpark/dampfit/internal/hash"
)

// SampleCount is the fixed number of rows in a measurement set. The dyno
// protocol captures exactly six velocity points per stroke.
const SampleCount = 6

// Stroke identifies the stroke direction a measurement set was captured on.
type Stroke int

const (
	// StrokeCompression is the compression (bump) stroke.
	StrokeCompression Stroke = iota
	// StrokeRebound is the rebound (extension) stroke.
	StrokeRebound
)

// String returns the string representation of the stroke.
func (s Stroke) String() string {
	switch s {
	case StrokeCompression:
		return "compression"
	case StrokeRebound:
		return "rebound"
	default:
		return "unknown"
	}
}

// DampingState identifies which force column of a measurement set a curve
// is fit against.
type DampingState int

const (
	// StateAdjOnly is the damping state with the external adjuster fully
	// closed, leaving only the adjuster circuit active.
	StateAdjOnly DampingState = iota
	// StateFull is the damping state with the external adjuster fully open
	// (softest reference state).
	StateFull
)

// String returns the string representation of the damping state.
func (s DampingState) String() string {
	switch s {
	case StateAdjOnly:
		return "adj-only"
	case StateFull:
		return "full"
	default:
		return "unknown"
	}
}

// Sample is one dyno row: a shaft velocity and the measured damping force
// in both adjuster states at that velocity.
type Sample struct {
	// Velocity is the shaft velocity in m/s.
	Velocity float64 `json:"velocity"`
	// AdjForce is the measured force in N with the adjuster fully closed.
	AdjForce float64 `json:"adj_force"`
	// FullForce is the measured force in N with the adjuster fully open.
	FullForce float64 `json:"full_force"`
}

// MeasurementSet holds the six samples of one dyno run for one stroke.
// It is immutable after construction; accessors return copies.
type MeasurementSet struct {
	samples [SampleCount]Sample
}

// NewMeasurementSet validates the given rows and builds an immutable
// measurement set.
//
// Parameters:
//   - samples: exactly six dyno rows; every value must be finite
//
// Returns:
//   - *MeasurementSet: The constructed set
//   - error: errs.ErrInvalidSampleCount or errs.ErrNonFiniteSample on
//     invalid input
//
// Pairwise-distinct velocities are not required here; that invariant is
// enforced at fit time, where the requested model order determines how the
// violation is reported.
func NewMeasurementSet(samples []Sample) (*MeasurementSet, error) {
	if len(samples) != SampleCount {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidSampleCount, len(samples))
	}

	set := &MeasurementSet{}
	for i, s := range samples {
		if !isFinite(s.Velocity) || !isFinite(s.AdjForce) || !isFinite(s.FullForce) {
			return nil, fmt.Errorf("%w: row %d (v=%v adj=%v full=%v)",
				errs.ErrNonFiniteSample, i, s.Velocity, s.AdjForce, s.FullForce)
		}
		set.samples[i] = s
	}

	return set, nil
}

// Samples returns a copy of the six rows.
func (m *MeasurementSet) Samples() [SampleCount]Sample {
	return m.samples
}

// Velocities returns the six shaft velocities in input order.
func (m *MeasurementSet) Velocities() [SampleCount]float64 {
	var v [SampleCount]float64
	for i, s := range m.samples {
		v[i] = s.Velocity
	}

	return v
}

// Forces returns the six force readings for the given damping state, in
// input order.
func (m *MeasurementSet) Forces(state DampingState) [SampleCount]float64 {
	var f [SampleCount]float64
	for i, s := range m.samples {
		if state == StateAdjOnly {
			f[i] = s.AdjForce
		} else {
			f[i] = s.FullForce
		}
	}

	return f
}

// VelocityRange returns the smallest and largest measured velocity.
func (m *MeasurementSet) VelocityRange() (minV, maxV float64) {
	minV, maxV = m.samples[0].Velocity, m.samples[0].Velocity
	for _, s := range m.samples[1:] {
		if s.Velocity < minV {
			minV = s.Velocity
		}
		if s.Velocity > maxV {
			maxV = s.Velocity
		}
	}

	return minV, maxV
}

// DistinctVelocities reports whether the six velocities are pairwise
// distinct. Fitting any supported model order requires this to hold.
func (m *MeasurementSet) DistinctVelocities() bool {
	for i := 0; i < SampleCount; i++ {
		for j := i + 1; j < SampleCount; j++ {
			if m.samples[i].Velocity == m.samples[j].Velocity {
				return false
			}
		}
	}

	return true
}

// Fingerprint returns the xxHash64 of the canonical byte encoding of the
// set (18 little-endian float64 values in row order). Two sets with the
// same rows in the same order always produce the same fingerprint, which
// keys session records and detects duplicate submissions.
func (m *MeasurementSet) Fingerprint() uint64 {
	buf := make([]byte, 0, SampleCount*3*8)
	for _, s := range m.samples {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(s.Velocity))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(s.AdjForce))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(s.FullForce))
	}

	return hash.Sum64(buf)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
