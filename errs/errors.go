// Package errs defines the sentinel errors shared across dampfit packages.
//
// All errors are permanent: the package never retries internally, and a
// failed operation must be corrected by the caller (re-collect measurements,
// re-fit at a consistent model order, or pick a different reference
// velocity). Callers match them with errors.Is; producing packages add
// context by wrapping with fmt.Errorf and %w.
package errs

import "errors"

var (
	// ErrInvalidSampleCount indicates a measurement set that does not contain
	// exactly six velocity/force rows.
	ErrInvalidSampleCount = errors.New("measurement set must contain exactly six samples")

	// ErrNonFiniteSample indicates a velocity or force value that is NaN or
	// infinite.
	ErrNonFiniteSample = errors.New("sample contains a non-finite value")

	// ErrDegenerateInput indicates that fitting was requested on velocities
	// that are not pairwise distinct, so the design matrix is rank-deficient
	// and the least-squares solution is not unique.
	ErrDegenerateInput = errors.New("degenerate input: velocities are not pairwise distinct")

	// ErrUnknownModel indicates a model name or degree outside the supported
	// Linear/Quadratic/Cubic set.
	ErrUnknownModel = errors.New("unknown curve model")

	// ErrModelMismatch indicates an adjuster metric requested across two
	// curves fit at different polynomial degrees.
	ErrModelMismatch = errors.New("curves were fit with different models")

	// ErrMetricUndefined indicates that the fully-open damping force is zero
	// at the requested reference point, leaving the adjuster ratio without a
	// defined value.
	ErrMetricUndefined = errors.New("adjuster metric undefined: full-state force is zero")

	// ErrInvalidGeometry indicates damper geometry that cannot describe a
	// physical unit (non-positive diameters, or a rod at least as large as
	// the piston bore).
	ErrInvalidGeometry = errors.New("invalid damper geometry")
)
