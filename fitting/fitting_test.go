package fitting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenianpark/dampfit/dyno"
	"github.com/fenianpark/dampfit/errs"
)

// setFromPoly builds a measurement set whose Full force column follows the
// given polynomial (constant term first) at the given velocities, with an
// optional per-point perturbation. The Adj-only column is set to half the
// Full force.
func setFromPoly(t *testing.T, velocities []float64, coeffs []float64, noise []float64) *dyno.MeasurementSet {
	t.Helper()
	require.Len(t, velocities, dyno.SampleCount)

	rows := make([]dyno.Sample, dyno.SampleCount)
	for i, v := range velocities {
		f := 0.0
		pow := 1.0
		for _, c := range coeffs {
			f += c * pow
			pow *= v
		}
		if noise != nil {
			f += noise[i]
		}
		rows[i] = dyno.Sample{Velocity: v, AdjForce: f / 2, FullForce: f}
	}

	set, err := dyno.NewMeasurementSet(rows)
	require.NoError(t, err)

	return set
}

var testVelocities = []float64{0.5, 1.0, 1.5, 2.0, 2.5, 3.0}

func TestFitAllModelsFinite(t *testing.T) {
	set := setFromPoly(t, testVelocities, []float64{5, 40, -3, 0.7}, nil)

	for _, model := range []Model{ModelLinear, ModelQuadratic, ModelCubic} {
		t.Run(model.String(), func(t *testing.T) {
			curve, err := Fit(set, dyno.StateFull, model)
			require.NoError(t, err)
			require.Len(t, curve.Coefficients(), model.Degree()+1)

			for _, v := range testVelocities {
				f := curve.Eval(v)
				assert.False(t, math.IsNaN(f) || math.IsInf(f, 0), "Eval(%v) = %v", v, f)
			}
		})
	}
}

func TestFitLinearExact(t *testing.T) {
	// force = a*velocity + b with a=10, b=2.5
	set := setFromPoly(t, testVelocities, []float64{2.5, 10}, nil)

	curve, err := Fit(set, dyno.StateFull, ModelLinear)
	require.NoError(t, err)

	coeffs := curve.Coefficients()
	assert.InDelta(t, 2.5, coeffs[0], 1e-9)
	assert.InDelta(t, 10.0, coeffs[1], 1e-9)

	// Residuals at all six points are ~0 and diagnostics reflect that.
	for _, v := range testVelocities {
		assert.InDelta(t, 2.5+10*v, curve.Eval(v), 1e-9)
	}
	assert.InDelta(t, 0.0, curve.RSS(), 1e-12)
	assert.InDelta(t, 1.0, curve.RSquared(), 1e-12)
}

func TestFitCubicRecoversCoefficients(t *testing.T) {
	gen := []float64{12, -8, 5, 1.5}
	noise := []float64{1e-9, -1e-9, 2e-9, -2e-9, 1e-9, -1e-9}
	set := setFromPoly(t, testVelocities, gen, noise)

	curve, err := Fit(set, dyno.StateFull, ModelCubic)
	require.NoError(t, err)

	coeffs := curve.Coefficients()
	for i, want := range gen {
		assert.InDelta(t, want, coeffs[i], 1e-6, "coefficient %d", i)
	}
}

func TestFitRepeatedVelocity(t *testing.T) {
	velocities := []float64{0.5, 2.0, 1.5, 2.0, 2.5, 3.0}
	rows := make([]dyno.Sample, dyno.SampleCount)
	for i, v := range velocities {
		rows[i] = dyno.Sample{Velocity: v, AdjForce: 10 * v, FullForce: 20 * v}
	}
	set, err := dyno.NewMeasurementSet(rows)
	require.NoError(t, err)

	for _, model := range []Model{ModelLinear, ModelQuadratic, ModelCubic} {
		_, err := Fit(set, dyno.StateFull, model)
		assert.ErrorIs(t, err, errs.ErrDegenerateInput, "model %s", model)
	}
}

func TestFitUnknownModel(t *testing.T) {
	set := setFromPoly(t, testVelocities, []float64{0, 10}, nil)

	_, err := Fit(set, dyno.StateFull, Model(0))
	assert.ErrorIs(t, err, errs.ErrUnknownModel)
	_, err = Fit(set, dyno.StateFull, Model(5))
	assert.ErrorIs(t, err, errs.ErrUnknownModel)
}

func TestFitIdempotent(t *testing.T) {
	set := setFromPoly(t, testVelocities, []float64{3, 7, 2}, nil)

	first, err := Fit(set, dyno.StateAdjOnly, ModelQuadratic)
	require.NoError(t, err)
	second, err := Fit(set, dyno.StateAdjOnly, ModelQuadratic)
	require.NoError(t, err)

	// Pure function: bit-identical coefficients on every invocation.
	assert.Equal(t, first.Coefficients(), second.Coefficients())
}

func TestFitInputOrderIrrelevant(t *testing.T) {
	rows := []dyno.Sample{
		{Velocity: 3.0, AdjForce: 30, FullForce: 60},
		{Velocity: 0.5, AdjForce: 5, FullForce: 10},
		{Velocity: 2.0, AdjForce: 20, FullForce: 40},
		{Velocity: 1.0, AdjForce: 10, FullForce: 20},
		{Velocity: 2.5, AdjForce: 25, FullForce: 50},
		{Velocity: 1.5, AdjForce: 15, FullForce: 30},
	}
	shuffled, err := dyno.NewMeasurementSet(rows)
	require.NoError(t, err)

	curve, err := Fit(shuffled, dyno.StateFull, ModelLinear)
	require.NoError(t, err)

	coeffs := curve.Coefficients()
	assert.InDelta(t, 0.0, coeffs[0], 1e-9)
	assert.InDelta(t, 20.0, coeffs[1], 1e-9)
}

func TestFitOverDeterminedResiduals(t *testing.T) {
	// Quadratic data fit at linear order: residuals must be nonzero but the
	// fit still minimizes them (R² strictly between 0 and 1 here).
	set := setFromPoly(t, testVelocities, []float64{0, 0, 50}, nil)

	curve, err := Fit(set, dyno.StateFull, ModelLinear)
	require.NoError(t, err)
	assert.Greater(t, curve.RSS(), 0.0)
	assert.Greater(t, curve.RSquared(), 0.0)
	assert.Less(t, curve.RSquared(), 1.0)
}

func TestFitWithRidge(t *testing.T) {
	set := setFromPoly(t, testVelocities, []float64{2.5, 10}, nil)

	plain, err := Fit(set, dyno.StateFull, ModelLinear)
	require.NoError(t, err)
	ridged, err := Fit(set, dyno.StateFull, ModelLinear, WithRidge(0.5))
	require.NoError(t, err)

	// Ridge biases coefficients toward zero; it must change the solution.
	assert.NotEqual(t, plain.Coefficients(), ridged.Coefficients())
	for _, c := range ridged.Coefficients() {
		assert.False(t, math.IsNaN(c))
	}
}

func TestCurveSample(t *testing.T) {
	set := setFromPoly(t, testVelocities, []float64{0, 10}, nil)
	curve, err := Fit(set, dyno.StateFull, ModelLinear)
	require.NoError(t, err)

	velocities, forces := curve.Sample(0.5, 3.0, 200)
	require.Len(t, velocities, 200)
	require.Len(t, forces, 200)
	assert.InDelta(t, 0.5, velocities[0], 1e-12)
	assert.InDelta(t, 3.0, velocities[199], 1e-9)
	for i, v := range velocities {
		assert.InDelta(t, 10*v, forces[i], 1e-9)
	}

	// n below 2 is clamped so both endpoints survive.
	velocities, _ = curve.Sample(1, 2, 1)
	assert.Len(t, velocities, 2)
}

func TestCurveEvalExtrapolates(t *testing.T) {
	set := setFromPoly(t, testVelocities, []float64{1, 2, 3, 4}, nil)
	curve, err := Fit(set, dyno.StateFull, ModelCubic)
	require.NoError(t, err)

	// Outside the measured 0.5-3.0 m/s window.
	for _, v := range []float64{-2.0, 0.0, 10.0} {
		f := curve.Eval(v)
		assert.False(t, math.IsNaN(f) || math.IsInf(f, 0))
	}
	assert.InDelta(t, 1+2*10+3*100+4*1000, curve.Eval(10), 1e-6)
}

func TestModelFromString(t *testing.T) {
	tests := []struct {
		name    string
		want    Model
		wantErr bool
	}{
		{"linear", ModelLinear, false},
		{"Quadratic", ModelQuadratic, false},
		{"CUBIC", ModelCubic, false},
		{"quartic", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := ModelFromString(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrUnknownModel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, model)
		})
	}
}

func TestCurveAccessors(t *testing.T) {
	set := setFromPoly(t, testVelocities, []float64{2.5, 10}, nil)
	curve, err := Fit(set, dyno.StateAdjOnly, ModelLinear)
	require.NoError(t, err)

	assert.Equal(t, ModelLinear, curve.Model())
	assert.Equal(t, 1, curve.Degree())
	assert.Equal(t, dyno.StateAdjOnly, curve.State())
	assert.Same(t, set, curve.Source())

	// Coefficients returns a defensive copy.
	coeffs := curve.Coefficients()
	coeffs[0] = 999
	assert.NotEqual(t, coeffs[0], curve.Coefficients()[0])

	assert.Contains(t, curve.Formula(), "F = ")
	assert.Contains(t, curve.String(), "linear")
}
