// Package excel renders finished reports as xlsx workbooks.
package excel

import (
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"bellsim/domain/bell"
	"bellsim/domain/experiment"
	"bellsim/internal/errors"
)

// ReportWriter implements ports.ResultsWriterPort with an excelize
// workbook: a summary sheet plus one curve sheet per model.
type ReportWriter struct{}

// NewReportWriter creates a report writer
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// WriteReport produces the workbook bytes for a report.
func (w *ReportWriter) WriteReport(report *experiment.Report) ([]byte, error) {
	if report == nil {
		return nil, errors.InvalidInput("report is nil")
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("[excel] failed to close workbook: %v", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return nil, errors.ExportFailed("failed to create summary sheet", err)
	}
	if err := w.writeSummary(f, report); err != nil {
		return nil, errors.ExportFailed("failed to write summary sheet", err)
	}

	for _, mr := range []*experiment.ModelReport{&report.Local, &report.OneBit} {
		if err := w.writeCurveSheet(f, mr); err != nil {
			return nil, errors.ExportFailed(fmt.Sprintf("failed to write %s sheet", mr.Model), err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.ExportFailed("failed to serialize workbook", err)
	}
	return buf.Bytes(), nil
}

// writeSummary fills the run metadata and per-model verdicts.
func (w *ReportWriter) writeSummary(f *excelize.File, report *experiment.Report) error {
	rows := [][]interface{}{
		{"Generated at", report.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Trials per model", report.Trials},
		{"Seed", report.Seed},
		{"Bin width (rad)", report.BinWidth},
		{},
		{"Model", "Verdict", "Agreement rate", "Max excess over local bound", "Mean |dev| from quantum", "Excess z", "Runtime (ms)"},
	}
	for _, mr := range []*experiment.ModelReport{&report.Local, &report.OneBit} {
		rows = append(rows, []interface{}{
			mr.Model.Label(),
			string(mr.Assessment.Verdict),
			mr.AgreementRate,
			mr.Assessment.MaxExcess,
			mr.Assessment.MeanQuantumAbsDev,
			mr.Assessment.ExcessZ,
			mr.RuntimeMs,
		})
	}
	return writeRows(f, "Summary", rows)
}

// writeCurveSheet fills one model's binned curve next to the two
// reference curves.
func (w *ReportWriter) writeCurveSheet(f *excelize.File, mr *experiment.ModelReport) error {
	sheet := sheetName(mr.Model)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Angle diff (rad)", "Agreement", "Trials", "Quantum cos²", "Bell-local bound"},
	}
	for _, bin := range mr.Curve {
		rows = append(rows, []interface{}{
			bin.AngleDiff,
			bin.Agreement,
			bin.Trials,
			bell.QuantumAgreement(bin.AngleDiff),
			bell.LocalBound(bin.AngleDiff),
		})
	}
	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func sheetName(m experiment.Model) string {
	switch m {
	case experiment.ModelLocal:
		return "Local model"
	case experiment.ModelOneBit:
		return "One-bit model"
	default:
		return string(m)
	}
}
