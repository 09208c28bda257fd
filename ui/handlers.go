package ui

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bellsim/domain/experiment"
)

// dashboardView is everything the dashboard template renders.
type dashboardView struct {
	Narrative   template.HTML
	Report      *experiment.Report
	LocalChart  template.HTML
	OneBitChart template.HTML
}

func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	view := dashboardView{
		Narrative:   a.narrative,
		Report:      a.report,
		LocalChart:  RenderCurveSVG(a.report.Local.Curve, a.report.Local.Model.Label()),
		OneBitChart: RenderCurveSVG(a.report.OneBit.Curve, a.report.OneBit.Model.Label()),
	}
	if err := a.templates.ExecuteTemplate(w, "dashboard.html", view); err != nil {
		log.Printf("[ui] failed to render dashboard: %v", err)
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
	}
}

func (a *App) handleCurves(w http.ResponseWriter, r *http.Request) {
	model := experiment.Model(chi.URLParam(r, "model"))
	report := a.report.ByModel(model)
	if report == nil {
		respondError(w, http.StatusNotFound, fmt.Sprintf("unknown model %q", model))
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := a.writer.WriteReport(a.report)
	if err != nil {
		log.Printf("[ui] export failed: %v", err)
		respondError(w, http.StatusInternalServerError, "export failed")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="bell_simulation.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("[ui] failed to stream workbook: %v", err)
	}
}

func (a *App) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[ui] failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
