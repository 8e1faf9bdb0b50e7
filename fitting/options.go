package fitting

import "github.com/fenianpark/dampfit/internal/options"

// fitConfig holds tunables for a single fitting run.
type fitConfig struct {
	ridge float64
}

// defaultFitConfig returns the default config (plain least squares).
func defaultFitConfig() fitConfig {
	return fitConfig{ridge: 0}
}

// Option is a functional option for a fitting run.
type Option = options.Option[*fitConfig]

// WithRidge adds ridge regularization (lambda) to the diagonal of the
// normal matrix to stabilize the solution on near-degenerate data. The
// default of 0 keeps the fit an exact least-squares solution.
func WithRidge(lambda float64) Option {
	return options.NoError(func(cfg *fitConfig) {
		cfg.ridge = lambda
	})
}
