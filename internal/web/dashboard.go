package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iowah/garagelog/internal/dashboard"
	"github.com/iowah/garagelog/internal/model"
)

// Dashboard handles GET /. The summary numbers always come from the full
// mod collection; only the table reflects the active filters.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	mods, err := s.Mods.GetAll(r.Context())
	if err != nil {
		slog.Error("failed to list mods for dashboard", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	status := q.Get("status")
	if status == "" {
		status = dashboard.All
	}
	category := q.Get("category")
	if category == "" {
		category = dashboard.All
	}
	carID := dashboard.AllCars
	if v := q.Get("car"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			carID = id
		}
	}

	totals := dashboard.Summarize(mods)
	filtered := dashboard.Filter(mods, status, category, carID)

	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		Mods            []model.Mod
		Totals          dashboard.Totals
		PercentComplete int
		Statuses        []string
		Categories      []string
		Cars            []model.Car
		StatusFilter    string
		CategoryFilter  string
		CarFilter       int64
	}{
		PageData:        PageData{Title: "Dashboard"},
		Mods:            filtered,
		Totals:          totals,
		PercentComplete: dashboard.PercentComplete(totals),
		Statuses:        []string{dashboard.All, model.StatusPlanned, model.StatusInProgress, model.StatusComplete},
		Categories:      dashboard.Categories(mods),
		Cars:            dashboard.Cars(mods),
		StatusFilter:    status,
		CategoryFilter:  category,
		CarFilter:       carID,
	})
}
