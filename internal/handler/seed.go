package handler

import (
	"log/slog"
	"net/http"

	"github.com/eduplay/console/internal/service"
	"github.com/eduplay/console/internal/store"
)

// SeedHandler resets the store to a known sample dataset. Intended for demo
// and development environments; the endpoint replaces all existing data.
type SeedHandler struct {
	store   *store.Store
	authSvc *service.AuthService
	logger  *slog.Logger
}

// NewSeedHandler creates a SeedHandler.
func NewSeedHandler(st *store.Store, authSvc *service.AuthService, logger *slog.Logger) *SeedHandler {
	return &SeedHandler{
		store:   st,
		authSvc: authSvc,
		logger:  logger,
	}
}

// seedResponse reports the default credentials created by a seed run.
type seedResponse struct {
	Message          string            `json:"message"`
	AdminCredentials map[string]string `json:"admin_credentials"`
}

// InitSampleData wipes every collection and repopulates it with sample data.
// POST /api/init-sample-data
func (h *SeedHandler) InitSampleData(w http.ResponseWriter, r *http.Request) {
	hash, err := h.authSvc.HashPassword(store.SeedPassword)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to hash seed password")
		return
	}

	if err := h.store.ResetAndSeed(r.Context(), hash); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to seed data: "+err.Error())
		return
	}

	h.logger.Info("sample data initialized")
	writeJSON(w, http.StatusOK, seedResponse{
		Message: "Sample data initialized",
		AdminCredentials: map[string]string{
			"username": store.SeedUsername,
			"password": store.SeedPassword,
		},
	})
}
