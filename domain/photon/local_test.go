package photon

import (
	"math"
	"testing"
)

func TestLocalPhoton_AlignedDetectorPasses(t *testing.T) {
	p := NewLocalPhoton(0.3)
	if got := p.MeasurePolarization(0.3); got != Passed {
		t.Errorf("Expected PASSED when detector matches polarization, got %s", got)
	}
}

func TestLocalPhoton_QuarterTurnBoundaryAbsorbs(t *testing.T) {
	// cos²(π/4) = 0.5 exactly: the comparison is strict, so the
	// boundary lands on ABSORBED.
	p := NewLocalPhoton(0)
	if got := p.MeasurePolarization(math.Pi / 4); got != Absorbed {
		t.Errorf("Expected ABSORBED at exactly π/4 offset, got %s", got)
	}
	if got := p.MeasurePolarization(-math.Pi / 4); got != Absorbed {
		t.Errorf("Expected ABSORBED at exactly -π/4 offset, got %s", got)
	}
}

func TestLocalPhoton_OrthogonalDetectorAbsorbs(t *testing.T) {
	// cos²(π/2) = 0, not > 0.5.
	p := NewLocalPhoton(0)
	if got := p.MeasurePolarization(math.Pi / 2); got != Absorbed {
		t.Errorf("Expected ABSORBED at π/2 offset, got %s", got)
	}
}

func TestLocalPhoton_JustInsideBoundaryPasses(t *testing.T) {
	p := NewLocalPhoton(0)
	if got := p.MeasurePolarization(math.Pi/4 - 1e-9); got != Passed {
		t.Errorf("Expected PASSED just inside the π/4 boundary, got %s", got)
	}
}

func TestLocalPhoton_Deterministic(t *testing.T) {
	p := NewLocalPhoton(1.1)
	angles := []float64{0, 0.4, 1.1, 2.2, -0.7}
	for _, a := range angles {
		first := p.MeasurePolarization(a)
		second := p.MeasurePolarization(a)
		if first != second {
			t.Errorf("Measurement at %f not deterministic: %s then %s", a, first, second)
		}
	}
}

func TestLocalPhoton_NoSharedState(t *testing.T) {
	// Two photons with the same hidden angle answer identically no
	// matter which one is measured first.
	a := NewLocalPhoton(0.9)
	b := NewLocalPhoton(0.9)

	detector := 0.5
	gotB := b.MeasurePolarization(detector)
	gotA := a.MeasurePolarization(detector)
	if gotA != gotB {
		t.Errorf("Instances with the same angle disagree: a=%s b=%s", gotA, gotB)
	}
}

func TestLocalPhoton_TotalOverReals(t *testing.T) {
	// Malus's law is π-periodic, so any real detector angle is valid
	// and shifted inputs give the same answer.
	p := NewLocalPhoton(0.3)
	for _, a := range []float64{-7.5, -0.2, 0.2, 3.9, 42.0} {
		if p.MeasurePolarization(a) != p.MeasurePolarization(a+math.Pi) {
			t.Errorf("Expected π-periodic outcome at detector angle %f", a)
		}
	}
}
