// Command sweep runs both particle models once and writes the binned
// agreement curves to an xlsx workbook, without serving the dashboard.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"bellsim/adapters/excel"
	"bellsim/adapters/rng"
	"bellsim/app"
	"bellsim/domain/experiment"
	"bellsim/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	trials := flag.Int("trials", appConfig.Simulation.Trials, "trials per model")
	seed := flag.Int64("seed", appConfig.Simulation.Seed, "base RNG seed")
	workers := flag.Int("workers", appConfig.Simulation.Workers, "worker shards (0 = all CPUs)")
	binWidth := flag.Float64("bin-width", appConfig.Simulation.BinWidth, "angle bin width in radians")
	out := flag.String("out", "bell_simulation.xlsx", "output workbook path")
	flag.Parse()

	experiments := app.NewExperimentService(rng.NewStreams())
	reports := app.NewReportService(experiments, *binWidth)

	report, err := reports.Generate(context.Background(), experiment.Request{
		Trials:  *trials,
		Seed:    *seed,
		Workers: *workers,
	})
	if err != nil {
		log.Fatalf("Simulation sweep failed: %v", err)
	}

	for _, mr := range []*experiment.ModelReport{&report.Local, &report.OneBit} {
		log.Printf("%s: verdict=%s agreement=%.4f max_excess=%.4f quantum_dev=%.4f",
			mr.Model.Label(), mr.Assessment.Verdict, mr.AgreementRate,
			mr.Assessment.MaxExcess, mr.Assessment.MeanQuantumAbsDev)
	}

	data, err := excel.NewReportWriter().WriteReport(report)
	if err != nil {
		log.Fatalf("Failed to render workbook: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Printf("Wrote %s (%d bytes)", *out, len(data))
}
