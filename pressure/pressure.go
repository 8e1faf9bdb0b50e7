// Package pressure converts damper geometry and dyno force into internal
// pressures. Suspension performance is controlled by pressure, but pressure
// is rarely measured directly; this package applies the core principle
// Force = Area × Pressure to turn fitted dyno forces into bar figures for
// the report layer. Geometry is opaque to the curve fitter itself.
package pressure

import (
	"fmt"
	"math"

	"github.com/fenianpark/dampfit/errs"
)

// pascalPerBar converts N/m² to bar.
const pascalPerBar = 1e5

// Geometry is the damper geometry record collected alongside the dyno
// measurements.
type Geometry struct {
	// BaselinePressureBar is the static gas charge P1 in bar.
	BaselinePressureBar float64 `json:"baseline_pressure_bar"`
	// RodDiameterMM is the shaft rod diameter in mm.
	RodDiameterMM float64 `json:"rod_diameter_mm"`
	// PistonDiameterMM is the body / piston bore diameter in mm.
	PistonDiameterMM float64 `json:"piston_diameter_mm"`
}

// Validate checks that the geometry can describe a physical damper.
//
// Returns:
//   - error: errs.ErrInvalidGeometry for non-positive diameters or a rod at
//     least as large as the piston bore
func (g Geometry) Validate() error {
	if g.RodDiameterMM <= 0 || g.PistonDiameterMM <= 0 {
		return fmt.Errorf("%w: diameters must be positive (rod=%.2f piston=%.2f)",
			errs.ErrInvalidGeometry, g.RodDiameterMM, g.PistonDiameterMM)
	}
	if g.RodDiameterMM >= g.PistonDiameterMM {
		return fmt.Errorf("%w: rod (%.2f mm) must be smaller than piston bore (%.2f mm)",
			errs.ErrInvalidGeometry, g.RodDiameterMM, g.PistonDiameterMM)
	}

	return nil
}

// PistonArea returns the full piston face area in m².
func (g Geometry) PistonArea() float64 {
	return circleArea(g.PistonDiameterMM)
}

// RodArea returns the rod cross-section area in m².
func (g Geometry) RodArea() float64 {
	return circleArea(g.RodDiameterMM)
}

// AnnulusArea returns the rod-side working area in m²: the piston face
// minus the rod cross-section.
func (g Geometry) AnnulusArea() float64 {
	return g.PistonArea() - g.RodArea()
}

// PistonPressure converts a compression-side force in N to the pressure in
// bar acting on the full piston face.
func (g Geometry) PistonPressure(force float64) float64 {
	return force / g.PistonArea() / pascalPerBar
}

// AnnulusPressure converts a rebound-side force in N to the pressure in bar
// acting on the rod-side annulus.
func (g Geometry) AnnulusPressure(force float64) float64 {
	return force / g.AnnulusArea() / pascalPerBar
}

// Balance summarizes the internal pressures at a reference velocity
// relative to the static baseline charge.
type Balance struct {
	// BaselineBar is the static gas charge.
	BaselineBar float64 `json:"baseline_bar"`
	// CompressionBar is the dynamic pressure on the piston face.
	CompressionBar float64 `json:"compression_bar"`
	// ReboundBar is the dynamic pressure on the rod-side annulus.
	ReboundBar float64 `json:"rebound_bar"`
}

// Balance computes the pressure balance for the given compression and
// rebound forces (N) at the chosen reference velocity.
func (g Geometry) Balance(compressionForce, reboundForce float64) Balance {
	return Balance{
		BaselineBar:    g.BaselinePressureBar,
		CompressionBar: g.PistonPressure(compressionForce),
		ReboundBar:     g.AnnulusPressure(reboundForce),
	}
}

// circleArea returns the area in m² of a circle given its diameter in mm.
func circleArea(diameterMM float64) float64 {
	d := diameterMM / 1000.0

	return math.Pi * d * d / 4.0
}
