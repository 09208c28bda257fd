package photon

import "math"

// Side identifies one endpoint of an entangled pair.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// decision is the single bit that may cross between the endpoints, plus
// the flag recording that it has been fixed. It lives on the pair so the
// bit set by one endpoint is the bit the other endpoint reads.
type decision struct {
	decided      bool
	useAlternate bool
}

// EntangledPair owns the two endpoints of a one-bit-communication photon
// pair. Both endpoints share a reference angle fixed at entanglement
// time and a one-shot decision channel: the first endpoint to be
// measured derives a strategy bit from its own detector angle and the
// bit becomes visible to the partner immediately, before the partner is
// measured. That single bit is the model's entire budget of
// superluminal signaling.
//
// The decision rule ((Δ − π/8) mod π/2 < π/4) and the two strategies
// follow T. Maudlin's 1992 one-bit model. The π/8 and π/4 constants are
// the model under study, not tunables.
type EntangledPair struct {
	referenceAngle float64
	decision       decision
	endpoints      [2]Endpoint
}

// Endpoint is a non-owning handle to one side of a pair. Its lifetime is
// bound to the pair, not to the other endpoint.
type Endpoint struct {
	pair     *EntangledPair
	side     Side
	measured bool
}

// NewEntangledPair creates a fresh, undecided pair sharing the given
// reference angle in radians.
func NewEntangledPair(referenceAngle float64) *EntangledPair {
	p := &EntangledPair{referenceAngle: referenceAngle}
	p.endpoints[SideA] = Endpoint{pair: p, side: SideA}
	p.endpoints[SideB] = Endpoint{pair: p, side: SideB}
	return p
}

// A returns the handle for endpoint A.
func (p *EntangledPair) A() *Endpoint {
	return &p.endpoints[SideA]
}

// B returns the handle for endpoint B.
func (p *EntangledPair) B() *Endpoint {
	return &p.endpoints[SideB]
}

// ReferenceAngle returns the hidden common cause shared by both
// endpoints, fixed at entanglement time.
func (p *EntangledPair) ReferenceAngle() float64 {
	return p.referenceAngle
}

// Decided reports whether either endpoint has been measured yet.
func (p *EntangledPair) Decided() bool {
	return p.decision.decided
}

// UseAlternate returns the shared strategy bit. Reading it before either
// endpoint has been measured is a caller bug, not a data condition.
func (p *EntangledPair) UseAlternate() bool {
	if !p.decision.decided {
		panic("photon: strategy bit read before either endpoint was measured")
	}
	return p.decision.useAlternate
}

// Side reports which side of the pair this endpoint is.
func (e *Endpoint) Side() Side {
	return e.side
}

// Partner returns the handle for the other endpoint of the same pair.
func (e *Endpoint) Partner() *Endpoint {
	return &e.pair.endpoints[1-e.side]
}

// Decided reports whether the shared strategy bit has been fixed. Once
// either endpoint is measured this is true for both.
func (e *Endpoint) Decided() bool {
	return e.pair.decision.decided
}

// MeasurePolarization measures this endpoint at the given detector
// angle. The first measurement on a pair fixes the shared strategy bit
// from this endpoint's detector angle alone; the second measurement
// skips the decision and applies whatever the first fixed. Measuring the
// same endpoint twice in one trial is a caller bug.
func (e *Endpoint) MeasurePolarization(detectorAngle float64) Outcome {
	if e.measured {
		panic("photon: endpoint " + e.side.String() + " measured twice in one trial")
	}
	e.measured = true

	p := e.pair
	if !p.decision.decided {
		angleDifference := p.referenceAngle - detectorAngle
		p.decision.useAlternate = wrapHalfPi(angleDifference-math.Pi/8) < math.Pi/4
		p.decision.decided = true
	}

	if p.decision.useAlternate {
		return strategyB(p.referenceAngle, detectorAngle)
	}
	return strategyA(p.referenceAngle, detectorAngle)
}

// strategyA thresholds Malus's law against the shared reference angle.
func strategyA(referenceAngle, detectorAngle float64) Outcome {
	return thresholdMalus(referenceAngle - detectorAngle)
}

// strategyB is strategyA shifted by π/4.
func strategyB(referenceAngle, detectorAngle float64) Outcome {
	return thresholdMalus(referenceAngle - detectorAngle - math.Pi/4)
}

// wrapHalfPi reduces x into [0, π/2). Go's math.Mod keeps the sign of
// the dividend, so negative inputs need one extra fold to match the
// mathematical mod in the decision rule.
func wrapHalfPi(x float64) float64 {
	m := math.Mod(x, math.Pi/2)
	if m < 0 {
		m += math.Pi / 2
	}
	return m
}
