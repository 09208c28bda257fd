package photon

import "math"

// LocalPhoton is the local-hidden-variable model of a photon: its
// polarization angle is a real property fixed at creation, and a
// measurement depends only on that angle and the local detector setting,
// never on anything the partner detector does.
type LocalPhoton struct {
	polarizationAngle float64
}

// NewLocalPhoton creates a photon with a fixed hidden polarization angle
// in radians.
func NewLocalPhoton(polarizationAngle float64) *LocalPhoton {
	return &LocalPhoton{polarizationAngle: polarizationAngle}
}

// PolarizationAngle returns the hidden angle fixed at creation.
func (p *LocalPhoton) PolarizationAngle() float64 {
	return p.polarizationAngle
}

// MeasurePolarization applies Malus's law thresholded at 50%: the photon
// passes iff cos²(polarization − detector) > 0.5. Pure and total over
// the reals; measuring twice with the same angle gives the same outcome.
func (p *LocalPhoton) MeasurePolarization(detectorAngle float64) Outcome {
	return thresholdMalus(p.polarizationAngle - detectorAngle)
}

// thresholdMalus converts an angle difference into a binary outcome.
// cos²(Δ) > 0.5 holds exactly when Δ lies strictly within π/4 of a
// multiple of π; the angular form keeps the π/4 boundary exact instead
// of drifting on float rounding, so the boundary itself is ABSORBED.
func thresholdMalus(angleDifference float64) Outcome {
	d := math.Abs(math.Mod(angleDifference, math.Pi))
	if d > math.Pi/2 {
		d = math.Pi - d
	}
	if d < math.Pi/4 {
		return Passed
	}
	return Absorbed
}
