package handler

import (
	"net/http"

	"github.com/eduplay/console/internal/model"
	"github.com/eduplay/console/internal/store"
)

// StatsHandler serves the console dashboard aggregates.
type StatsHandler struct {
	store *store.Store
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(st *store.Store) *StatsHandler {
	return &StatsHandler{store: st}
}

// Dashboard returns platform-wide counters.
// GET /api/stats/dashboard
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	totalUsers, err := h.store.CountUsers(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute stats: "+err.Error())
		return
	}
	upgraded, err := h.store.CountUsersByPlan(ctx, model.PlanUpgraded)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute stats: "+err.Error())
		return
	}
	totalGames, err := h.store.CountGames(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute stats: "+err.Error())
		return
	}
	totalRevenue, err := h.store.TotalRevenue(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute stats: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, model.DashboardStats{
		TotalUsers:    totalUsers,
		UpgradedUsers: upgraded,
		StandardUsers: totalUsers - upgraded,
		TotalGames:    totalGames,
		TotalRevenue:  totalRevenue,
	})
}
