package bell

import (
	"math"
	"testing"

	"bellsim/domain/trial"
)

func TestAgreementCurve_BinsByRoundedAngleDiff(t *testing.T) {
	// 0.104 and 0.096 both round onto the 0.10 grid point.
	series := trial.Series{
		{OutcomeA: true, OutcomeB: true, DetectorA: 0, DetectorB: 0.104},
		{OutcomeA: true, OutcomeB: false, DetectorA: 0, DetectorB: 0.096},
		{OutcomeA: false, OutcomeB: false, DetectorA: 0, DetectorB: 0.50},
	}

	curve := AgreementCurve(series, 0.01)
	if len(curve) != 2 {
		t.Fatalf("Expected 2 bins, got %d", len(curve))
	}

	first := curve[0]
	if math.Abs(first.AngleDiff-0.10) > 1e-12 {
		t.Errorf("First bin at %f, want 0.10", first.AngleDiff)
	}
	if first.Trials != 2 {
		t.Errorf("First bin has %d trials, want 2", first.Trials)
	}
	if first.Agreement != 0.5 {
		t.Errorf("First bin agreement = %f, want 0.5", first.Agreement)
	}

	second := curve[1]
	if math.Abs(second.AngleDiff-0.50) > 1e-12 {
		t.Errorf("Second bin at %f, want 0.50", second.AngleDiff)
	}
	if second.Agreement != 1.0 {
		t.Errorf("Second bin agreement = %f, want 1.0", second.Agreement)
	}
}

func TestAgreementCurve_SortedByAngle(t *testing.T) {
	series := trial.Series{
		{DetectorB: 1.2},
		{DetectorB: 0.3},
		{DetectorB: 0.7},
	}
	curve := AgreementCurve(series, DefaultBinWidth)
	for i := 1; i < len(curve); i++ {
		if curve[i].AngleDiff <= curve[i-1].AngleDiff {
			t.Fatalf("Curve not sorted at index %d", i)
		}
	}
}

func TestAgreementCurve_EmptySeries(t *testing.T) {
	if curve := AgreementCurve(nil, DefaultBinWidth); len(curve) != 0 {
		t.Errorf("Expected empty curve, got %d bins", len(curve))
	}
}

func TestQuantumAgreement(t *testing.T) {
	if got := QuantumAgreement(0); got != 1 {
		t.Errorf("QuantumAgreement(0) = %f, want 1", got)
	}
	if got := QuantumAgreement(math.Pi / 4); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("QuantumAgreement(π/4) = %f, want 0.5", got)
	}
	if got := QuantumAgreement(math.Pi / 2); math.Abs(got) > 1e-12 {
		t.Errorf("QuantumAgreement(π/2) = %f, want 0", got)
	}
}

func TestLocalBound(t *testing.T) {
	if got := LocalBound(0); got != 1 {
		t.Errorf("LocalBound(0) = %f, want 1", got)
	}
	if got := LocalBound(math.Pi / 4); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("LocalBound(π/4) = %f, want 0.5", got)
	}
	if got := LocalBound(math.Pi / 2); math.Abs(got) > 1e-12 {
		t.Errorf("LocalBound(π/2) = %f, want 0", got)
	}
}
