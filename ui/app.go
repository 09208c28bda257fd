// Package ui serves the simulation dashboard: the narrative, both
// agreement charts, the JSON curve API, and the workbook export.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bellsim/domain/experiment"
	"bellsim/ports"
)

//go:embed templates/*.html static/*
var embeddedFiles embed.FS

// App represents the dashboard application
type App struct {
	router    *chi.Mux
	templates *template.Template
	report    *experiment.Report
	writer    ports.ResultsWriterPort
	narrative template.HTML
}

// NewApp creates a dashboard over a finished report.
func NewApp(report *experiment.Report, writer ports.ResultsWriterPort) (*App, error) {
	funcMap := template.FuncMap{
		"pct": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v*100)
		},
		"f3": func(v float64) string {
			return fmt.Sprintf("%.3f", v)
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		templates: templates,
		report:    report,
		writer:    writer,
		narrative: renderNarrative(),
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// Router exposes the HTTP handler for serving.
func (a *App) Router() http.Handler {
	return a.router
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	// Serve static files
	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", http.StripPrefix("/", staticFS))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleDashboard)
	a.router.Get("/healthz", a.handleHealthz)

	// API endpoints
	a.router.Get("/api/curves/{model}", a.handleCurves)
	a.router.Get("/export.xlsx", a.handleExport)
}
