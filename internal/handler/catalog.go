package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eduplay/console/internal/model"
	"github.com/eduplay/console/internal/store"
)

// CatalogHandler manages the game catalog and its adjacent collections:
// build records, release notes, and the revenue ledger.
type CatalogHandler struct {
	store *store.Store
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(st *store.Store) *CatalogHandler {
	return &CatalogHandler{store: st}
}

// ListGames returns the full game catalog.
// GET /api/games
func (h *CatalogHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.store.ListGames(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list games: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, games)
}

// CreateGame adds a game to the catalog.
// POST /api/games
func (h *CatalogHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var game model.Game
	if err := readJSON(r, &game); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}
	if game.Name == "" {
		writeError(w, http.StatusUnprocessableEntity, "Game name is required")
		return
	}

	game.ID = ""
	if err := h.store.CreateGame(r.Context(), &game); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create game: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// UpdateGame replaces a game record and stamps updated_at.
// PUT /api/games/{gameID}
func (h *CatalogHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	var game model.Game
	if err := readJSON(r, &game); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.store.ReplaceGame(r.Context(), gameID, game)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Game not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update game: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteGame removes a game from the catalog.
// DELETE /api/games/{gameID}
func (h *CatalogHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	if err := h.store.DeleteGame(r.Context(), gameID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Game not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete game: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Game deleted"})
}

// ListBuilds returns all build records.
// GET /api/builds
func (h *CatalogHandler) ListBuilds(w http.ResponseWriter, r *http.Request) {
	builds, err := h.store.ListBuilds(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list builds: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, builds)
}

// CreateBuild records a new build.
// POST /api/builds
func (h *CatalogHandler) CreateBuild(w http.ResponseWriter, r *http.Request) {
	var build model.Build
	if err := readJSON(r, &build); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}
	if build.GameID == "" || build.Version == "" {
		writeError(w, http.StatusUnprocessableEntity, "Game ID and version are required")
		return
	}

	build.ID = ""
	if err := h.store.CreateBuild(r.Context(), &build); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create build: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, build)
}

// ListReleaseNotes returns all release notes.
// GET /api/updates
func (h *CatalogHandler) ListReleaseNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.store.ListReleaseNotes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list updates: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

// CreateReleaseNote publishes a new release note.
// POST /api/updates
func (h *CatalogHandler) CreateReleaseNote(w http.ResponseWriter, r *http.Request) {
	var note model.ReleaseNote
	if err := readJSON(r, &note); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}
	if note.Title == "" {
		writeError(w, http.StatusUnprocessableEntity, "Title is required")
		return
	}

	note.ID = ""
	if err := h.store.CreateReleaseNote(r.Context(), &note); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create update: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// ListRevenue returns all revenue ledger entries.
// GET /api/revenue
func (h *CatalogHandler) ListRevenue(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListRevenue(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list revenue: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// CreateRevenue records a new revenue ledger entry.
// POST /api/revenue
func (h *CatalogHandler) CreateRevenue(w http.ResponseWriter, r *http.Request) {
	var rev model.Revenue
	if err := readJSON(r, &rev); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return
	}
	if rev.Date == "" || rev.Source == "" {
		writeError(w, http.StatusUnprocessableEntity, "Date and source are required")
		return
	}

	rev.ID = ""
	if err := h.store.CreateRevenue(r.Context(), &rev); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create revenue entry: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rev)
}
