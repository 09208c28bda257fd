// Package app wires the particle models, randomness ports, and
// aggregation into runnable experiment services.
package app

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/semaphore"

	"bellsim/domain/core"
	"bellsim/domain/experiment"
	"bellsim/domain/photon"
	"bellsim/domain/trial"
	"bellsim/internal/errors"
	"bellsim/ports"
)

// ExperimentService drives Monte Carlo runs of the particle models.
type ExperimentService struct {
	rng ports.RNGPort
}

// NewExperimentService creates an experiment service
func NewExperimentService(rng ports.RNGPort) *ExperimentService {
	return &ExperimentService{rng: rng}
}

// Run executes req.Trials independent trials of the requested model and
// returns the raw trial log.
//
// Trials are sharded across workers; each shard owns a disjoint segment
// of the series and its own seeded angle stream, so no locking is
// needed. Inside a trial the two measurements always happen in A-then-B
// order: in the one-bit model the first measurement is the one that
// fixes the shared strategy bit, and the convention must stay the same
// across all trials.
func (s *ExperimentService) Run(ctx context.Context, req experiment.Request) (*experiment.Result, error) {
	if req.Trials <= 0 {
		return nil, errors.InvalidInput(fmt.Sprintf("trial count must be positive, got %d", req.Trials))
	}
	if !req.Model.Valid() {
		return nil, errors.InvalidInput(fmt.Sprintf("unknown model %q", req.Model))
	}

	workers := req.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > req.Trials {
		workers = req.Trials
	}

	series := make(trial.Series, req.Trials)
	start := time.Now()

	sem := semaphore.NewWeighted(int64(workers))
	shardSize := (req.Trials + workers - 1) / workers
	for shard := 0; shard*shardSize < req.Trials; shard++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, errors.Wrap(err, "experiment run canceled")
		}

		lo := shard * shardSize
		hi := lo + shardSize
		if hi > req.Trials {
			hi = req.Trials
		}
		angles := s.rng.AngleStream(shard, req.Seed)

		go func(lo, hi int, angles ports.AngleSource) {
			defer sem.Release(1)
			for i := lo; i < hi; i++ {
				series[i] = runTrial(req.Model, angles)
			}
		}(lo, hi, angles)
	}

	// Wait for every shard to finish.
	if err := sem.Acquire(ctx, int64(workers)); err != nil {
		return nil, errors.Wrap(err, "experiment run canceled")
	}

	return &experiment.Result{
		RunID:     core.NewRunID(),
		Model:     req.Model,
		Seed:      req.Seed,
		Series:    series,
		RuntimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// RunLocal runs n trials of the local hidden-variable model.
func (s *ExperimentService) RunLocal(ctx context.Context, n int, seed int64) (*experiment.Result, error) {
	return s.Run(ctx, experiment.Request{Model: experiment.ModelLocal, Trials: n, Seed: seed})
}

// RunOneBit runs n trials of the one-bit communication model.
func (s *ExperimentService) RunOneBit(ctx context.Context, n int, seed int64) (*experiment.Result, error) {
	return s.Run(ctx, experiment.Request{Model: experiment.ModelOneBit, Trials: n, Seed: seed})
}

// runTrial constructs fresh particles for one trial, measures A at angle
// zero and then B at a random angle in [0, π/2), and records the four
// result fields. Generation always succeeds.
func runTrial(model experiment.Model, angles ports.AngleSource) trial.Trial {
	const detectorA = 0.0
	detectorB := angles.DetectorAngle()
	hidden := angles.HiddenAngle()

	var outcomeA, outcomeB photon.Outcome
	switch model {
	case experiment.ModelLocal:
		// Both photons carry the same hidden polarization angle.
		a := photon.NewLocalPhoton(hidden)
		b := photon.NewLocalPhoton(hidden)
		outcomeA = a.MeasurePolarization(detectorA)
		outcomeB = b.MeasurePolarization(detectorB)
	case experiment.ModelOneBit:
		pair := photon.NewEntangledPair(hidden)
		outcomeA = pair.A().MeasurePolarization(detectorA)
		outcomeB = pair.B().MeasurePolarization(detectorB)
	}

	return trial.Trial{
		OutcomeA:  outcomeA.Bool(),
		OutcomeB:  outcomeB.Bool(),
		DetectorA: detectorA,
		DetectorB: detectorB,
	}
}
