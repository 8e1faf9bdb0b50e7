package fitting

import (
	"errors"
	"fmt"
	"math"

	"github.com/fenianpark/dampfit/dyno"
	"github.com/fenianpark/dampfit/errs"
	"github.com/fenianpark/dampfit/internal/options"
)

// maxTerms is the largest coefficient count a supported model can request
// (cubic: 4). It bounds the solver's working arrays.
const maxTerms = 4

// Fit computes the least-squares polynomial of the requested model order
// through the six samples of the given damping state.
//
// Parameters:
//   - set: The measurement set to fit (exactly six rows, velocities
//     pairwise distinct)
//   - state: Which force column to fit (dyno.StateAdjOnly or dyno.StateFull)
//   - model: The model order (ModelLinear, ModelQuadratic or ModelCubic)
//   - opts: Optional tunables, e.g. WithRidge
//
// Returns:
//   - *Curve: The fitted curve with coefficients and fit diagnostics
//   - error: errs.ErrUnknownModel for an unsupported model,
//     errs.ErrDegenerateInput when velocities repeat
//
// The returned coefficients minimize the total squared residual for the
// given order. Fit is a pure function: the same set and model always yield
// bit-identical coefficients.
func Fit(set *dyno.MeasurementSet, state dyno.DampingState, model Model, opts ...Option) (*Curve, error) {
	if set == nil {
		return nil, errors.New("nil measurement set")
	}
	if !model.Valid() {
		return nil, fmt.Errorf("%w: degree %d", errs.ErrUnknownModel, int(model))
	}
	if !set.DistinctVelocities() {
		return nil, fmt.Errorf("%w: a %s fit needs at least %d distinct velocities",
			errs.ErrDegenerateInput, model, model.Degree()+1)
	}

	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	velocities := set.Velocities()
	forces := set.Forces(state)

	coeffs, err := solveLeastSquares(velocities[:], forces[:], model.Degree(), cfg.ridge)
	if err != nil {
		// Distinct velocities guarantee full column rank for degree <= 3,
		// so a singular normal matrix still means degenerate input.
		return nil, fmt.Errorf("%w: %s", errs.ErrDegenerateInput, err)
	}

	curve := &Curve{
		model:  model,
		state:  state,
		coeffs: coeffs,
		source: set,
	}
	curve.rss, curve.rmse, curve.r2 = fitStats(velocities[:], forces[:], curve)

	return curve, nil
}

// solveLeastSquares fits force = Σ c_k * v^k (k = 0..degree) by forming the
// normal equations A c = b with
//
//	A[i][j] = Σ v^(i+j)    b[i] = Σ v^i * f
//
// and solving the (degree+1)×(degree+1) system with Gaussian elimination
// under partial pivoting. If ridge > 0 it is added to the diagonal of A.
func solveLeastSquares(velocities, forces []float64, degree int, ridge float64) ([]float64, error) {
	terms := degree + 1

	// Powers of v up to v^(2*degree) are needed for the normal matrix.
	var powerSums [2*maxTerms - 1]float64
	var momentSums [maxTerms]float64
	for i, v := range velocities {
		pow := 1.0
		for k := 0; k < 2*terms-1; k++ {
			powerSums[k] += pow
			if k < terms {
				momentSums[k] += pow * forces[i]
			}
			pow *= v
		}
	}

	a := make([][]float64, terms)
	b := make([]float64, terms)
	for i := 0; i < terms; i++ {
		a[i] = make([]float64, terms)
		for j := 0; j < terms; j++ {
			a[i][j] = powerSums[i+j]
		}
		if ridge != 0 {
			a[i][i] += ridge
		}
		b[i] = momentSums[i]
	}

	return solveLinearSystem(a, b)
}

// solveLinearSystem solves A x = b in place using Gaussian elimination with
// partial pivoting. Returns an error if the matrix is singular.
func solveLinearSystem(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)

	// Forward elimination with partial pivoting.
	for col := 0; col < n; col++ {
		pivot := col
		maxAbs := math.Abs(a[col][col])
		for r := col + 1; r < n; r++ {
			if abs := math.Abs(a[r][col]); abs > maxAbs {
				maxAbs = abs
				pivot = r
			}
		}
		if maxAbs == 0 {
			return nil, errors.New("normal matrix is singular (zero pivot)")
		}
		if pivot != col {
			a[col], a[pivot] = a[pivot], a[col]
			b[col], b[pivot] = b[pivot], b[col]
		}

		for r := col + 1; r < n; r++ {
			factor := a[r][col] / a[col][col]
			for c := col; c < n; c++ {
				a[r][c] -= factor * a[col][c]
			}
			b[r] -= factor * b[col]
		}
	}

	// Back substitution.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := b[i]
		for j := i + 1; j < n; j++ {
			sum -= a[i][j] * x[j]
		}
		x[i] = sum / a[i][i]
	}

	return x, nil
}

// fitStats computes RSS, RMSE and R² of the curve against its source
// samples in a single pass.
func fitStats(velocities, forces []float64, curve *Curve) (rss, rmse, r2 float64) {
	n := len(forces)
	if n == 0 {
		return 0, 0, 0
	}

	meanF := 0.0
	for _, f := range forces {
		meanF += f
	}
	meanF /= float64(n)

	ssTot := 0.0
	for i, v := range velocities {
		residual := forces[i] - curve.Eval(v)
		rss += residual * residual
		ssTot += (forces[i] - meanF) * (forces[i] - meanF)
	}

	rmse = math.Sqrt(rss / float64(n))
	if ssTot == 0 {
		// Constant force data: the fit reproduces it exactly or not at all.
		if rss == 0 {
			r2 = 1
		}

		return rss, rmse, r2
	}
	r2 = 1.0 - rss/ssTot

	return rss, rmse, r2
}
