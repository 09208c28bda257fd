package experiment

import (
	"time"

	"bellsim/domain/bell"
	"bellsim/domain/core"
)

// ModelReport is the aggregated view of one model's run: its binned
// agreement curve and the verdict against the Bell-local bound.
type ModelReport struct {
	RunID         core.RunID      `json:"run_id"`
	Model         Model           `json:"model"`
	Curve         bell.Curve      `json:"curve"`
	Assessment    bell.Assessment `json:"assessment"`
	AgreementRate float64         `json:"agreement_rate"`
	RuntimeMs     int64           `json:"runtime_ms"`
}

// Report bundles one full simulation sweep: both models run with the
// same trial count and seed, aggregated and assessed. This is the unit
// the dashboard renders and the exporter writes.
type Report struct {
	GeneratedAt time.Time   `json:"generated_at"`
	Trials      int         `json:"trials"`
	Seed        int64       `json:"seed"`
	BinWidth    float64     `json:"bin_width"`
	Local       ModelReport `json:"local"`
	OneBit      ModelReport `json:"one_bit"`
}

// ByModel returns the model report for m, or nil if the report has none.
func (r *Report) ByModel(m Model) *ModelReport {
	switch m {
	case ModelLocal:
		return &r.Local
	case ModelOneBit:
		return &r.OneBit
	default:
		return nil
	}
}
