package dyno

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenianpark/dampfit/errs"
)

func sixSamples() []Sample {
	return []Sample{
		{Velocity: 0.5, AdjForce: 300, FullForce: 1200},
		{Velocity: 1.0, AdjForce: 600, FullForce: 2400},
		{Velocity: 1.5, AdjForce: 900, FullForce: 3600},
		{Velocity: 2.0, AdjForce: 1200, FullForce: 4800},
		{Velocity: 2.5, AdjForce: 1500, FullForce: 6000},
		{Velocity: 3.0, AdjForce: 1800, FullForce: 7200},
	}
}

func TestNewMeasurementSet(t *testing.T) {
	set, err := NewMeasurementSet(sixSamples())
	require.NoError(t, err)
	require.NotNil(t, set)

	assert.Equal(t, [SampleCount]float64{0.5, 1.0, 1.5, 2.0, 2.5, 3.0}, set.Velocities())
	assert.Equal(t, [SampleCount]float64{300, 600, 900, 1200, 1500, 1800}, set.Forces(StateAdjOnly))
	assert.Equal(t, [SampleCount]float64{1200, 2400, 3600, 4800, 6000, 7200}, set.Forces(StateFull))

	minV, maxV := set.VelocityRange()
	assert.Equal(t, 0.5, minV)
	assert.Equal(t, 3.0, maxV)
	assert.True(t, set.DistinctVelocities())
}

func TestNewMeasurementSetWrongCount(t *testing.T) {
	_, err := NewMeasurementSet(sixSamples()[:5])
	require.ErrorIs(t, err, errs.ErrInvalidSampleCount)

	_, err = NewMeasurementSet(append(sixSamples(), Sample{Velocity: 3.5}))
	require.ErrorIs(t, err, errs.ErrInvalidSampleCount)
}

func TestNewMeasurementSetNonFinite(t *testing.T) {
	rows := sixSamples()
	rows[2].FullForce = math.NaN()
	_, err := NewMeasurementSet(rows)
	require.ErrorIs(t, err, errs.ErrNonFiniteSample)

	rows = sixSamples()
	rows[4].Velocity = math.Inf(1)
	_, err = NewMeasurementSet(rows)
	require.ErrorIs(t, err, errs.ErrNonFiniteSample)
}

func TestDistinctVelocities(t *testing.T) {
	rows := sixSamples()
	rows[3].Velocity = rows[1].Velocity
	set, err := NewMeasurementSet(rows)
	require.NoError(t, err)
	assert.False(t, set.DistinctVelocities())
}

func TestFingerprint(t *testing.T) {
	a, err := NewMeasurementSet(sixSamples())
	require.NoError(t, err)
	b, err := NewMeasurementSet(sixSamples())
	require.NoError(t, err)

	// Same rows, same fingerprint.
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	rows := sixSamples()
	rows[0].AdjForce += 1
	c, err := NewMeasurementSet(rows)
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestStrokeAndStateStrings(t *testing.T) {
	assert.Equal(t, "compression", StrokeCompression.String())
	assert.Equal(t, "rebound", StrokeRebound.String())
	assert.Equal(t, "adj-only", StateAdjOnly.String())
	assert.Equal(t, "full", StateFull.String())
}
