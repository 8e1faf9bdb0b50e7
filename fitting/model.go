package fitting

import (
	"fmt"
	"strings"

	"github.com/fenianpark/dampfit/errs"
)

// Model is the selectable curve model order. It is a closed tagged variant
// rather than an open numeric degree so the fixed Linear/Quadratic/Cubic
// configuration is enforceable at the type level.
type Model int

const (
	// ModelLinear fits F = c0 + c1*v.
	ModelLinear Model = iota + 1
	// ModelQuadratic fits F = c0 + c1*v + c2*v².
	ModelQuadratic
	// ModelCubic fits F = c0 + c1*v + c2*v² + c3*v³.
	ModelCubic
)

// modelNames maps Model to their string representations.
var modelNames = map[Model]string{
	ModelLinear:    "linear",
	ModelQuadratic: "quadratic",
	ModelCubic:     "cubic",
}

// String returns the string representation of the model.
func (m Model) String() string {
	if name, exists := modelNames[m]; exists {
		return name
	}

	return "unknown"
}

// Degree returns the polynomial degree of the model: 1, 2 or 3.
// Unknown models report degree 0.
func (m Model) Degree() int {
	switch m {
	case ModelLinear, ModelQuadratic, ModelCubic:
		return int(m)
	default:
		return 0
	}
}

// Valid reports whether the model is one of the three supported orders.
func (m Model) Valid() bool {
	_, exists := modelNames[m]

	return exists
}

// modelFromString maps string names to Model.
var modelFromString = map[string]Model{
	"linear":    ModelLinear,
	"quadratic": ModelQuadratic,
	"cubic":     ModelCubic,
}

// ModelFromString returns the Model for a given name (case-insensitive).
//
// Returns:
//   - Model: The matching model
//   - error: errs.ErrUnknownModel for names outside linear/quadratic/cubic
func ModelFromString(name string) (Model, error) {
	if model, exists := modelFromString[strings.ToLower(name)]; exists {
		return model, nil
	}

	return 0, fmt.Errorf("%w: %q (supported: linear, quadratic, cubic)", errs.ErrUnknownModel, name)
}
