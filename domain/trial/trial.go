// Package trial defines the immutable per-measurement records an
// experiment run accumulates, and the derivations its consumers need.
package trial

// Trial records one paired measurement: both outcomes (true = passed)
// and both detector settings in radians. Purely derived data, immutable
// once recorded.
type Trial struct {
	OutcomeA  bool    `json:"outcome_a"`
	OutcomeB  bool    `json:"outcome_b"`
	DetectorA float64 `json:"detector_a"`
	DetectorB float64 `json:"detector_b"`
}

// Agreement reports whether both detectors saw the same outcome.
func (t Trial) Agreement() bool {
	return t.OutcomeA == t.OutcomeB
}

// AngleDiff is the detector angle difference this trial probed.
func (t Trial) AngleDiff() float64 {
	return t.DetectorB - t.DetectorA
}

// Series is the flat trial log of one experiment run.
type Series []Trial

// AgreementRate is the fraction of trials where both outcomes agree.
func (s Series) AgreementRate() float64 {
	if len(s) == 0 {
		return 0
	}
	agreed := 0
	for _, t := range s {
		if t.Agreement() {
			agreed++
		}
	}
	return float64(agreed) / float64(len(s))
}
