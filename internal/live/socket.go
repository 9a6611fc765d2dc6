package live

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

// Session wraps a websocket connection for registry use. Gorilla permits at
// most one concurrent writer per connection, so writes are serialized here.
type Session struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// NewSession wraps an accepted websocket connection.
func NewSession(conn *websocket.Conn) *Session {
	return &Session{conn: conn}
}

// WriteJSON sends v as a JSON text frame with a write deadline, so a stalled
// peer fails the send instead of blocking the dispatcher.
func (s *Session) WriteJSON(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return s.conn.WriteJSON(v)
}

// Close closes the underlying connection.
func (s *Session) Close() error {
	return s.conn.Close()
}

// Handler is the HTTP endpoint that upgrades a client connection and
// registers it for live-effect delivery. The route is parameterized by the
// user ID; the server only reads (and discards) inbound frames to keep the
// connection alive.
type Handler struct {
	registry *Registry
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler creates a websocket endpoint handler bound to the registry.
func NewHandler(registry *Registry, logger *slog.Logger) *Handler {
	return &Handler{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients connect from the game frontend's origin;
			// access control for effect delivery lives on the admin API.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// ServeHTTP handles GET /ws/{userID}.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		http.Error(w, "missing user id", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.logger.Warn("websocket upgrade failed", "user_id", userID, "error", err)
		return
	}

	sess := NewSession(conn)
	h.registry.Connect(userID, sess)
	h.logger.Info("user connected", "user_id", userID)

	defer func() {
		h.registry.DisconnectChannel(userID, sess)
		sess.Close()
		h.logger.Info("user disconnected", "user_id", userID)
	}()

	// Read and discard inbound frames until the peer goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
