package app

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bellsim/adapters/rng"
	"bellsim/domain/bell"
	"bellsim/domain/experiment"
	"bellsim/internal/errors"
)

// statTrials is large enough that per-bin sampling noise (~0.015) stays
// well inside the statistical tolerances below.
const statTrials = 200_000

func newService() *ExperimentService {
	return NewExperimentService(rng.NewStreams())
}

func TestRun_RejectsBadRequests(t *testing.T) {
	s := newService()
	ctx := context.Background()

	_, err := s.Run(ctx, experiment.Request{Model: experiment.ModelLocal, Trials: 0})
	require.Error(t, err)
	assert.Equal(t, "INVALID_INPUT", errors.GetCode(err))

	_, err = s.Run(ctx, experiment.Request{Model: "telepathy", Trials: 10})
	require.Error(t, err)
	assert.Equal(t, "INVALID_INPUT", errors.GetCode(err))
}

func TestRun_SeriesShape(t *testing.T) {
	s := newService()
	result, err := s.Run(context.Background(), experiment.Request{
		Model: experiment.ModelLocal, Trials: 500, Seed: 3, Workers: 2,
	})
	require.NoError(t, err)
	require.Len(t, result.Series, 500)
	assert.False(t, result.RunID.String() == "")

	for _, tr := range result.Series {
		assert.Zero(t, tr.DetectorA, "Detector A is fixed at zero")
		assert.GreaterOrEqual(t, tr.DetectorB, 0.0)
		assert.Less(t, tr.DetectorB, math.Pi/2)
	}
}

func TestRun_ReproducibleBySeed(t *testing.T) {
	s := newService()
	ctx := context.Background()
	req := experiment.Request{Model: experiment.ModelOneBit, Trials: 2_000, Seed: 99, Workers: 2}

	first, err := s.Run(ctx, req)
	require.NoError(t, err)
	second, err := s.Run(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first.Series, second.Series, "Same seed and workers must reproduce the series")

	req.Seed = 100
	third, err := s.Run(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, first.Series, third.Series, "Different seeds should diverge")
}

func TestRunLocal_StaysWithinBellLocalBound(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	s := newService()
	result, err := s.Run(context.Background(), experiment.Request{
		Model: experiment.ModelLocal, Trials: statTrials, Seed: 11, Workers: 4,
	})
	require.NoError(t, err)

	// The deterministic local model lands exactly on the triangle
	// 1 − 2Δ/π, so every bin should match it to sampling noise.
	curve := bell.AgreementCurve(result.Series, bell.DefaultBinWidth)
	require.NotEmpty(t, curve)

	var absDev float64
	checked := 0
	for _, bin := range curve {
		if bin.Trials < 300 {
			continue
		}
		dev := bin.Agreement - bell.LocalBound(bin.AngleDiff)
		assert.InDelta(t, 0, dev, 0.1, "bin at %.2f drifted from the local bound", bin.AngleDiff)
		absDev += math.Abs(dev)
		checked++
	}
	require.Greater(t, checked, 100)
	assert.Less(t, absDev/float64(checked), 0.025, "mean deviation from the bound too large")

	assessment := bell.Assess(curve)
	assert.Equal(t, bell.VerdictBellLocal, assessment.Verdict)

	// Averaged over uniform detector angles the triangle integrates to
	// one half.
	assert.InDelta(t, 0.5, result.Series.AgreementRate(), 0.01)
}

// oneBitAgreement is the exact agreement curve of the one-bit protocol
// with detector A fixed at zero: perfect up to Δ=π/8, linear down to
// zero at 3π/8, zero beyond.
func oneBitAgreement(angleDiff float64) float64 {
	v := (3*math.Pi/8 - angleDiff) / (math.Pi / 4)
	return math.Max(0, math.Min(1, v))
}

func TestRunOneBit_ViolatesBellBound(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	s := newService()
	result, err := s.Run(context.Background(), experiment.Request{
		Model: experiment.ModelOneBit, Trials: statTrials, Seed: 13, Workers: 4,
	})
	require.NoError(t, err)

	curve := bell.AgreementCurve(result.Series, bell.DefaultBinWidth)
	require.NotEmpty(t, curve)

	var excessSum float64
	excessBins := 0
	for _, bin := range curve {
		if bin.Trials < 300 {
			continue
		}
		// Skip bins straddling the curve's kinks at π/8 and 3π/8.
		if math.Abs(bin.AngleDiff-math.Pi/8) < 0.02 || math.Abs(bin.AngleDiff-3*math.Pi/8) < 0.02 {
			continue
		}
		assert.InDelta(t, oneBitAgreement(bin.AngleDiff), bin.Agreement, 0.1,
			"bin at %.2f drifted from the one-bit protocol curve", bin.AngleDiff)

		if bin.AngleDiff >= 0.45 && bin.AngleDiff <= 0.75 {
			excessSum += bin.Agreement - bell.LocalBound(bin.AngleDiff)
			excessBins++
		}
	}

	// Mid-range the protocol sits well above anything locality permits.
	require.Greater(t, excessBins, 10)
	assert.Greater(t, excessSum/float64(excessBins), 0.08, "expected a clear Bell violation mid-range")

	assessment := bell.Assess(curve)
	assert.Equal(t, bell.VerdictBellViolating, assessment.Verdict)

	// ...and still misses the quantum cos² curve.
	assert.Greater(t, assessment.MeanQuantumAbsDev, 0.02,
		"one bit of communication should not reproduce quantum statistics")
}

func TestReportService_Generate(t *testing.T) {
	reports := NewReportService(newService(), 0)
	report, err := reports.Generate(context.Background(), experiment.Request{
		Trials: 2_000, Seed: 5, Workers: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 2_000, report.Trials)
	assert.Equal(t, int64(5), report.Seed)
	assert.Equal(t, bell.DefaultBinWidth, report.BinWidth)
	assert.False(t, report.GeneratedAt.IsZero())

	assert.Equal(t, experiment.ModelLocal, report.Local.Model)
	assert.Equal(t, experiment.ModelOneBit, report.OneBit.Model)
	assert.NotEmpty(t, report.Local.Curve)
	assert.NotEmpty(t, report.OneBit.Curve)
	assert.NotEqual(t, report.Local.RunID, report.OneBit.RunID)

	assert.Nil(t, report.ByModel("telepathy"))
	assert.Equal(t, &report.Local, report.ByModel(experiment.ModelLocal))
}
