// Package rng provides the seeded math/rand implementation of the
// simulator's randomness ports.
package rng

import (
	"math"
	"math/rand"

	"bellsim/ports"
)

// shardMix spreads consecutive shard indices across the seed space so
// derived streams do not overlap.
const shardMix = 0x9E3779B97F4A7C15

// Streams derives per-shard deterministic generators from a base seed.
type Streams struct{}

// NewStreams creates the seeded stream factory.
func NewStreams() *Streams {
	return &Streams{}
}

// AngleStream returns the angle source for one run shard. The same
// (shard, baseSeed) always produces the same draws.
func (s *Streams) AngleStream(shard int, baseSeed int64) ports.AngleSource {
	mixed := uint64(baseSeed) ^ (uint64(shard+1) * shardMix)
	return &angleSource{rng: rand.New(rand.NewSource(int64(mixed)))}
}

// angleSource adapts one generator into the uniform angle draws a trial
// needs.
type angleSource struct {
	rng *rand.Rand
}

// HiddenAngle draws uniformly from [0, π).
func (a *angleSource) HiddenAngle() float64 {
	return a.rng.Float64() * math.Pi
}

// DetectorAngle draws uniformly from [0, π/2).
func (a *angleSource) DetectorAngle() float64 {
	return a.rng.Float64() * math.Pi / 2
}
