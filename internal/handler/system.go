package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/eduplay/console/internal/model"
	"github.com/eduplay/console/internal/server/middleware"
	"github.com/eduplay/console/internal/service"
	"github.com/eduplay/console/internal/store"
)

// SystemHandler manages admin accounts: registration, login, and admin CRUD.
type SystemHandler struct {
	store   *store.Store
	authSvc *service.AuthService
	logger  *slog.Logger
}

// NewSystemHandler creates a SystemHandler.
func NewSystemHandler(st *store.Store, authSvc *service.AuthService, logger *slog.Logger) *SystemHandler {
	return &SystemHandler{
		store:   st,
		authSvc: authSvc,
		logger:  logger,
	}
}

// loginRequest is the expected payload for the Login endpoint.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// tokenResponse is the response payload for a successful login.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a new admin account.
// POST /api/admin/register
func (h *SystemHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.AdminCreate
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	if req.Email == "" || req.Username == "" || req.Password == "" {
		writeError(w, http.StatusUnprocessableEntity, "Email, username, and password are required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusUnprocessableEntity, "Invalid email address")
		return
	}
	if req.Role == "" {
		req.Role = model.RoleAdmin
	}

	hash, err := h.authSvc.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	admin := model.Admin{
		Email:        req.Email,
		Username:     req.Username,
		FullName:     req.FullName,
		Role:         req.Role,
		Status:       "active",
		PasswordHash: hash,
	}
	if err := h.store.CreateAdmin(r.Context(), &admin); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			writeError(w, http.StatusBadRequest, "Admin already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create admin: "+err.Error())
		return
	}

	h.logger.Info("admin registered", "admin_id", admin.ID, "username", admin.Username)
	writeJSON(w, http.StatusOK, admin)
}

// Login authenticates an admin by username and password and returns a signed
// bearer token. Unknown username and wrong password respond identically, and
// neither updates last_login.
// POST /api/admin/login
func (h *SystemHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}

	admin, err := h.store.GetAdminByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		writeError(w, http.StatusInternalServerError, "Authentication error")
		return
	}

	if !h.authSvc.VerifyPassword(req.Password, admin.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	if err := h.store.SetAdminLastLogin(r.Context(), admin.ID); err != nil {
		h.logger.Warn("failed to update last login", "admin_id", admin.ID, "error", err)
	}

	token, err := h.authSvc.IssueToken(admin.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	h.logger.Info("admin logged in", "admin_id", admin.ID, "username", admin.Username)
	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me returns the authenticated admin's own record. The token only proves who
// the caller was at issuance, so a 404 here means the account has since been
// deleted.
// GET /api/admin/me
func (h *SystemHandler) Me(w http.ResponseWriter, r *http.Request) {
	adminID := middleware.AdminID(r.Context())

	admin, err := h.store.GetAdmin(r.Context(), adminID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Admin not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch admin: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, admin)
}

// ListAdmins returns all admin accounts, password hashes excluded.
// GET /api/admins
func (h *SystemHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.store.ListAdmins(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list admins: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, admins)
}

// UpdateAdmin applies a partial update to an admin account. A password in
// the payload is re-hashed before persistence.
// PUT /api/admins/{adminID}
func (h *SystemHandler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, "adminID")

	var upd model.AdminUpdate
	if err := readJSON(r, &upd); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}

	var passwordHash *string
	if upd.Password != nil && *upd.Password != "" {
		hash, err := h.authSvc.HashPassword(*upd.Password)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		passwordHash = &hash
	}

	admin, err := h.store.UpdateAdmin(r.Context(), adminID, upd, passwordHash)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "Admin not found")
		case errors.Is(err, store.ErrDuplicate):
			writeError(w, http.StatusBadRequest, "Email or username already taken")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to update admin: "+err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, admin)
}

// DeleteAdmin removes an admin account.
// DELETE /api/admins/{adminID}
func (h *SystemHandler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	adminID := chi.URLParam(r, "adminID")

	if err := h.store.DeleteAdmin(r.Context(), adminID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Admin not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete admin: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Admin deleted"})
}
