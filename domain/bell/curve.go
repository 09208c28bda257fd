// Package bell aggregates trial logs into agreement-vs-angle-difference
// curves and judges them against the Bell-local bound and the quantum
// prediction.
package bell

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"bellsim/domain/trial"
)

// DefaultBinWidth groups trials by their angle difference rounded to two
// decimals, matching the resolution the dashboard charts at.
const DefaultBinWidth = 0.01

// Bin is one point of an agreement curve: the mean agreement of all
// trials whose angle difference rounded onto this grid point.
type Bin struct {
	AngleDiff float64 `json:"angle_diff"`
	Agreement float64 `json:"agreement"`
	Trials    int     `json:"trials"`
}

// Curve is the binned agreement curve of one run, sorted by angle
// difference.
type Curve []Bin

// AgreementCurve bins a series by angle difference rounded to the
// nearest multiple of binWidth and averages agreement per bin.
func AgreementCurve(series trial.Series, binWidth float64) Curve {
	if binWidth <= 0 {
		binWidth = DefaultBinWidth
	}

	grouped := make(map[int][]float64)
	for _, t := range series {
		key := int(math.Round(t.AngleDiff() / binWidth))
		v := 0.0
		if t.Agreement() {
			v = 1.0
		}
		grouped[key] = append(grouped[key], v)
	}

	curve := make(Curve, 0, len(grouped))
	for key, agreements := range grouped {
		mean, err := stats.Mean(agreements)
		if err != nil {
			continue
		}
		curve = append(curve, Bin{
			AngleDiff: float64(key) * binWidth,
			Agreement: mean,
			Trials:    len(agreements),
		})
	}

	sort.Slice(curve, func(i, j int) bool {
		return curve[i].AngleDiff < curve[j].AngleDiff
	})
	return curve
}

// QuantumAgreement is the quantum-mechanical prediction for the
// agreement rate at a given detector angle difference: cos²(Δ).
func QuantumAgreement(angleDiff float64) float64 {
	c := math.Cos(angleDiff)
	return c * c
}

// LocalBound is the highest agreement any communication-free local model
// can sustain at a given angle difference in [0, π/2]: the triangle
// 1 − 2Δ/π.
func LocalBound(angleDiff float64) float64 {
	return 1 - 2*angleDiff/math.Pi
}
