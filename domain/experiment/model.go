// Package experiment defines the run-level types of the simulator: which
// particle model a run exercises, what a run request looks like, and
// what a finished run or sweep carries.
package experiment

import (
	"bellsim/domain/core"
	"bellsim/domain/trial"
)

// Model selects which particle model a run simulates.
type Model string

const (
	// ModelLocal is the local-hidden-variable photon.
	ModelLocal Model = "local"
	// ModelOneBit is the one-bit superluminal communication pair.
	ModelOneBit Model = "one_bit"
)

// Valid reports whether m names a known model.
func (m Model) Valid() bool {
	return m == ModelLocal || m == ModelOneBit
}

// Label is the human-readable model name used on dashboards and sheets.
func (m Model) Label() string {
	switch m {
	case ModelLocal:
		return "Local hidden variables"
	case ModelOneBit:
		return "1-bit superluminal communication"
	default:
		return string(m)
	}
}

// Request defines one reproducible experiment run.
type Request struct {
	Model  Model `json:"model"`
	Trials int   `json:"trials"`
	Seed   int64 `json:"seed"`
	// Workers bounds trial-level parallelism; 0 means one worker per
	// available CPU.
	Workers int `json:"workers"`
}

// Result is the complete output of one run: the raw trial log plus run
// metadata.
type Result struct {
	RunID     core.RunID   `json:"run_id"`
	Model     Model        `json:"model"`
	Seed      int64        `json:"seed"`
	Series    trial.Series `json:"-"`
	RuntimeMs int64        `json:"runtime_ms"`
}
