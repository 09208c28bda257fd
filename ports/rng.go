// Package ports declares the interfaces through which the application
// services reach randomness and result sinks.
package ports

// AngleSource draws the random angles a single trial needs. One source
// is owned by exactly one run shard, so implementations need no locking.
type AngleSource interface {
	// HiddenAngle draws uniformly from [0, π): the hidden polarization
	// (local model) or shared reference angle (entangled model) fixed at
	// particle creation.
	HiddenAngle() float64

	// DetectorAngle draws uniformly from [0, π/2): the setting of the
	// movable detector B.
	DetectorAngle() float64
}

// RNGPort provides seeded deterministic angle streams so experiment runs
// are reproducible and worker shards never share a generator.
type RNGPort interface {
	// AngleStream returns the deterministic angle source for one shard
	// of a run. The same (shard, baseSeed) always yields the same
	// stream.
	AngleStream(shard int, baseSeed int64) AngleSource
}
