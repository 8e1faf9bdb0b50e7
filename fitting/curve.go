package fitting

import (
	"fmt"
	"strings"

	"github.com/fenianpark/dampfit/dyno"
)

// Curve is a fitted damping-force model: the coefficients of a polynomial
// in shaft velocity, plus goodness-of-fit diagnostics against the samples
// it was fit from. A Curve is immutable once produced by Fit.
type Curve struct {
	model  Model
	state  dyno.DampingState
	coeffs []float64 // constant term first, highest-order term last
	source *dyno.MeasurementSet

	rss  float64
	rmse float64
	r2   float64
}

// Model returns the model order the curve was fit at.
func (c *Curve) Model() Model {
	return c.model
}

// Degree returns the polynomial degree of the curve.
func (c *Curve) Degree() int {
	return c.model.Degree()
}

// State returns the damping state whose force column the curve was fit
// against.
func (c *Curve) State() dyno.DampingState {
	return c.state
}

// Coefficients returns a copy of the coefficient vector, ordered from the
// constant term to the highest-order term (length Degree()+1).
func (c *Curve) Coefficients() []float64 {
	out := make([]float64, len(c.coeffs))
	copy(out, c.coeffs)

	return out
}

// Source returns the measurement set the curve was fit from. It is kept for
// residual diagnostics, not for re-fitting.
func (c *Curve) Source() *dyno.MeasurementSet {
	return c.source
}

// RSS returns the residual sum of squares at the six input velocities.
func (c *Curve) RSS() float64 {
	return c.rss
}

// RMSE returns the root mean square error at the six input velocities, in
// newtons.
func (c *Curve) RMSE() float64 {
	return c.rmse
}

// RSquared returns the coefficient of determination (0-1, higher is better)
// of the fit against its source samples.
func (c *Curve) RSquared() float64 {
	return c.r2
}

// Eval evaluates the polynomial at the given velocity by direct monomial
// expansion. There is no domain restriction: extrapolation beyond the six
// measured velocities is permitted and is the caller's responsibility to
// interpret.
func (c *Curve) Eval(velocity float64) float64 {
	force := 0.0
	pow := 1.0
	for _, coeff := range c.coeffs {
		force += coeff * pow
		pow *= velocity
	}

	return force
}

// Sample evaluates the curve at n evenly spaced velocities across
// [from, to], returning parallel velocity and force slices for the
// presentation layer to plot. n must be at least 2; smaller values are
// clamped to 2 so both endpoints are always present.
func (c *Curve) Sample(from, to float64, n int) (velocities, forces []float64) {
	if n < 2 {
		n = 2
	}

	velocities = make([]float64, n)
	forces = make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range velocities {
		v := from + float64(i)*step
		velocities[i] = v
		forces[i] = c.Eval(v)
	}

	return velocities, forces
}

// Formula returns a human-readable representation of the fitted polynomial,
// e.g. "F = 12.00 + 3.40*v + 0.25*v^2".
func (c *Curve) Formula() string {
	var sb strings.Builder
	sb.WriteString("F = ")
	for i, coeff := range c.coeffs {
		if i > 0 {
			sb.WriteString(" + ")
		}
		switch i {
		case 0:
			fmt.Fprintf(&sb, "%.2f", coeff)
		case 1:
			fmt.Fprintf(&sb, "%.2f*v", coeff)
		default:
			fmt.Fprintf(&sb, "%.2f*v^%d", coeff, i)
		}
	}

	return sb.String()
}

// String returns a short diagnostic summary of the curve.
func (c *Curve) String() string {
	return fmt.Sprintf("Curve{Model: %s, State: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		c.model, c.state, c.r2, c.rmse, c.Formula())
}
