package app

import (
	"context"
	"log"
	"time"

	"bellsim/domain/bell"
	"bellsim/domain/experiment"
)

// ReportService runs both particle models under identical settings and
// aggregates their trial logs into one comparable report.
type ReportService struct {
	experiments *ExperimentService
	binWidth    float64
}

// NewReportService creates a report service. binWidth ≤ 0 falls back to
// the default two-decimal binning.
func NewReportService(experiments *ExperimentService, binWidth float64) *ReportService {
	if binWidth <= 0 {
		binWidth = bell.DefaultBinWidth
	}
	return &ReportService{experiments: experiments, binWidth: binWidth}
}

// Generate runs the full sweep: trials of the local model, trials of the
// one-bit model, curves and assessments for both.
func (s *ReportService) Generate(ctx context.Context, req experiment.Request) (*experiment.Report, error) {
	local, err := s.runModel(ctx, req, experiment.ModelLocal)
	if err != nil {
		return nil, err
	}
	oneBit, err := s.runModel(ctx, req, experiment.ModelOneBit)
	if err != nil {
		return nil, err
	}

	return &experiment.Report{
		GeneratedAt: time.Now(),
		Trials:      req.Trials,
		Seed:        req.Seed,
		BinWidth:    s.binWidth,
		Local:       *local,
		OneBit:      *oneBit,
	}, nil
}

// runModel executes one model's run and folds the series down to its
// curve and verdict.
func (s *ReportService) runModel(ctx context.Context, req experiment.Request, model experiment.Model) (*experiment.ModelReport, error) {
	req.Model = model
	result, err := s.experiments.Run(ctx, req)
	if err != nil {
		return nil, err
	}

	curve := bell.AgreementCurve(result.Series, s.binWidth)
	assessment := bell.Assess(curve)
	log.Printf("[report] model=%s trials=%d runtime_ms=%d verdict=%s excess_z=%.2f",
		model, req.Trials, result.RuntimeMs, assessment.Verdict, assessment.ExcessZ)

	return &experiment.ModelReport{
		RunID:         result.RunID,
		Model:         model,
		Curve:         curve,
		Assessment:    assessment,
		AgreementRate: result.Series.AgreementRate(),
		RuntimeMs:     result.RuntimeMs,
	}, nil
}
