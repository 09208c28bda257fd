package bell

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Verdict classifies a run's agreement curve against the Bell-local
// bound.
type Verdict string

const (
	VerdictBellLocal     Verdict = "BELL_LOCAL"
	VerdictBellViolating Verdict = "BELL_VIOLATING"
)

// violationZThreshold is the pooled z-score above which a curve is
// declared Bell-violating. A communication-free model sits at z ≈ 0;
// five sigma keeps sampling noise from ever tripping the verdict.
const violationZThreshold = 5.0

// Assessment summarizes how a run's curve relates to the local bound and
// to the quantum cos² prediction.
type Assessment struct {
	Verdict        Verdict `json:"verdict"`
	BinsTotal      int     `json:"bins_total"`
	BinsAboveBound int     `json:"bins_above_bound"`
	// MaxExcess is the largest agreement − LocalBound over all bins.
	MaxExcess float64 `json:"max_excess"`
	// MeanQuantumAbsDev is the mean |agreement − cos²Δ| over all bins,
	// the measure of how far the model is from empirical reality.
	MeanQuantumAbsDev float64 `json:"mean_quantum_abs_dev"`
	// ExcessZ and ExcessP come from a pooled binomial test of agreement
	// against the local bound over the violation window Δ ∈ [0, π/4],
	// where any one-bit model excess must show up.
	ExcessZ float64 `json:"excess_z"`
	ExcessP float64 `json:"excess_p"`
}

// Assess judges a binned agreement curve. Bins under the local bound are
// expected of any local model; a pooled excess above the bound over the
// Δ ≤ π/4 window beyond five sigma marks the curve Bell-violating.
func Assess(curve Curve) Assessment {
	a := Assessment{Verdict: VerdictBellLocal, BinsTotal: len(curve)}
	if len(curve) == 0 {
		return a
	}

	var observed, expected, variance, quantumDev float64
	for _, bin := range curve {
		bound := LocalBound(bin.AngleDiff)
		excess := bin.Agreement - bound
		if excess > 0 {
			a.BinsAboveBound++
		}
		if excess > a.MaxExcess {
			a.MaxExcess = excess
		}
		quantumDev += math.Abs(bin.Agreement - QuantumAgreement(bin.AngleDiff))

		if bin.AngleDiff < 0 || bin.AngleDiff > math.Pi/4 {
			continue
		}
		n := float64(bin.Trials)
		observed += bin.Agreement * n
		expected += bound * n
		variance += n * bound * (1 - bound)
	}
	a.MeanQuantumAbsDev = quantumDev / float64(len(curve))

	if variance > 0 {
		a.ExcessZ = (observed - expected) / math.Sqrt(variance)
		a.ExcessP = distuv.UnitNormal.Survival(a.ExcessZ)
	} else {
		a.ExcessP = 0.5
	}
	if a.ExcessZ > violationZThreshold {
		a.Verdict = VerdictBellViolating
	}
	return a
}
