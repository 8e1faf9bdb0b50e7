// Package fitting converts six (velocity, force) dyno samples into a
// continuous polynomial damping-force model.
//
// The fit is ordinary polynomial least squares: for the requested model
// order d (1, 2, or 3) it minimizes the total squared force residual across
// all six points. With six rows and at most four coefficient columns the
// system is over-determined, which is deliberate — the product requirement
// is a smooth engineering curve of bounded order, never an exact
// pass-through of noisy measurements, so exact interpolation is not offered.
//
// The solver forms the normal equations and solves them with Gaussian
// elimination under partial pivoting. Velocities that are not pairwise
// distinct make the design matrix rank-deficient and are rejected with
// errs.ErrDegenerateInput rather than silently fit at a lower order.
//
// Basic usage:
//
//	set, _ := dyno.NewMeasurementSet(rows)
//	curve, err := fitting.Fit(set, dyno.StateFull, fitting.ModelCubic)
//	if err != nil {
//	    return err
//	}
//	force := curve.Eval(1.3) // N at 1.3 m/s, extrapolation permitted
package fitting
