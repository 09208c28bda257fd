package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"bellsim/adapters/excel"
	"bellsim/adapters/rng"
	"bellsim/app"
	"bellsim/domain/experiment"
	"bellsim/internal/config"
	"bellsim/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	experiments := app.NewExperimentService(rng.NewStreams())
	reports := app.NewReportService(experiments, appConfig.Simulation.BinWidth)

	log.Printf("Running simulation sweep: %d trials per model, seed %d",
		appConfig.Simulation.Trials, appConfig.Simulation.Seed)
	report, err := reports.Generate(context.Background(), experiment.Request{
		Trials:  appConfig.Simulation.Trials,
		Seed:    appConfig.Simulation.Seed,
		Workers: appConfig.Simulation.Workers,
	})
	if err != nil {
		log.Fatalf("Simulation sweep failed: %v", err)
	}

	dashboard, err := ui.NewApp(report, excel.NewReportWriter())
	if err != nil {
		log.Fatalf("Failed to initialize dashboard: %v", err)
	}

	addr := ":" + appConfig.Server.Port
	log.Printf("Serving dashboard on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, dashboard.Router()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
