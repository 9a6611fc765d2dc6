package handler

import (
	"errors"
	"net/http"

	"github.com/eduplay/console/internal/model"
	"github.com/eduplay/console/internal/service"
	"github.com/eduplay/console/internal/store"
)

// EffectHandler accepts live-effect submissions and exposes the delivery
// audit log.
type EffectHandler struct {
	effects *service.EffectService
	store   *store.Store
}

// NewEffectHandler creates an EffectHandler.
func NewEffectHandler(effects *service.EffectService, st *store.Store) *EffectHandler {
	return &EffectHandler{
		effects: effects,
		store:   st,
	}
}

// effectResponse acknowledges acceptance of a live effect. It says nothing
// about whether the push reached the user; that is fire-and-forget.
type effectResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// SendEffect dispatches a live effect to a connected user. The response is
// 200 whether or not the user is online.
// POST /api/live-effects/send
func (h *EffectHandler) SendEffect(w http.ResponseWriter, r *http.Request) {
	var req model.EffectRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusUnprocessableEntity, "User ID is required")
		return
	}

	receipt, err := h.effects.Dispatch(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownEffectType) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to dispatch effect: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, effectResponse{
		Message: "Effect sent",
		UserID:  receipt.UserID,
	})
}

// ListEffects returns the delivery audit log, newest first.
// GET /api/live-effects
func (h *EffectHandler) ListEffects(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListEffectRecords(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list effects: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, records)
}
