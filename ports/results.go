package ports

import (
	"bellsim/domain/experiment"
)

// ResultsWriterPort renders a finished report for consumption outside
// the process, e.g. as a spreadsheet for further analysis.
type ResultsWriterPort interface {
	// WriteReport serializes the report and returns the encoded bytes.
	WriteReport(report *experiment.Report) ([]byte, error)
}
