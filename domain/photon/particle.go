package photon

// Particle is the measurement capability every photon variant offers:
// put a polarizer at an angle in front of it and get a binary outcome.
type Particle interface {
	MeasurePolarization(detectorAngle float64) Outcome
}

var (
	_ Particle = (*LocalPhoton)(nil)
	_ Particle = (*Endpoint)(nil)
)
