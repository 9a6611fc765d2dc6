package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eduplay/console/internal/model"
	"github.com/eduplay/console/internal/server/middleware"
	"github.com/eduplay/console/internal/service"
	"github.com/eduplay/console/internal/store"
)

// UserHandler manages end-user profiles.
//
// Billing-field redaction applies to single-record fetches only: ListUsers
// returns records as stored. The asymmetry is long-standing console behavior
// that the admin UI depends on.
type UserHandler struct {
	store *store.Store
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{store: st}
}

// ListUsers returns all user profiles.
// GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list users: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// CreateUser creates a new user profile.
// POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.UserCreate
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}
	if req.Email == "" || req.Username == "" {
		writeError(w, http.StatusUnprocessableEntity, "Email and username are required")
		return
	}

	user := model.User{
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
		Plan:     req.Plan,
		Avatar:   req.Avatar,
		Bio:      req.Bio,
		Age:      req.Age,
		School:   req.School,
		Grade:    req.Grade,
	}
	if err := h.store.CreateUser(r.Context(), &user); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create user: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// GetUser returns a single user profile with billing fields redacted unless
// the requesting admin is a super admin. An authenticated caller whose admin
// record has since been deleted gets the redacted view.
// GET /api/users/{userID}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	user, err := h.store.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch user: "+err.Error())
		return
	}

	requester, err := h.store.GetAdmin(r.Context(), middleware.AdminID(r.Context()))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, "Failed to resolve requesting admin: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, service.RedactUser(*user, requester))
}

// UpdateUser applies a partial update to a user profile.
// PUT /api/users/{userID}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var upd model.UserUpdate
	if err := readJSON(r, &upd); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.store.UpdateUser(r.Context(), userID, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update user: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// DeleteUser removes a user profile.
// DELETE /api/users/{userID}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if err := h.store.DeleteUser(r.Context(), userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete user: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "User deleted"})
}
