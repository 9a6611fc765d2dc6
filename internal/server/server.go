package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/eduplay/console/internal/handler"
	"github.com/eduplay/console/internal/live"
	"github.com/eduplay/console/internal/server/middleware"
	"github.com/eduplay/console/internal/service"
	"github.com/eduplay/console/internal/store"
)

// Config holds the HTTP server configuration.
type Config struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
	CORSOrigins     []string
	LoginRatePerMin int
}

// DefaultConfig returns a Config with sensible production defaults.
func DefaultConfig() Config {
	return Config{
		Host:            "0.0.0.0",
		Port:            8080,
		ShutdownTimeout: 30 * time.Second,
		CORSOrigins:     []string{"*"},
		LoginRatePerMin: 30,
	}
}

// Server is the top-level HTTP server for the console. It owns the chi
// router, the store, the auth service, and the live connection registry.
type Server struct {
	cfg        Config
	router     chi.Router
	store      *store.Store
	authSvc    *service.AuthService
	registry   *live.Registry
	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a Server with all routes and middleware wired, ready to listen.
func New(cfg Config, st *store.Store, authSvc *service.AuthService, registry *live.Registry, logger *slog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		store:    st,
		authSvc:  authSvc,
		registry: registry,
		logger:   logger,
	}
	s.setupRouter()
	return s
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// --- Global middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// --- Health checks (no auth required) ---
	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)

	effectSvc := service.NewEffectService(s.store, s.registry, s.logger)

	sysHandler := handler.NewSystemHandler(s.store, s.authSvc, s.logger)
	userHandler := handler.NewUserHandler(s.store)
	catalogHandler := handler.NewCatalogHandler(s.store)
	effectHandler := handler.NewEffectHandler(effectSvc, s.store)
	statsHandler := handler.NewStatsHandler(s.store)
	seedHandler := handler.NewSeedHandler(s.store, s.authSvc, s.logger)

	r.Route("/api", func(r chi.Router) {
		// Unauthenticated: registration, login, and the demo seed endpoint.
		r.Post("/admin/register", sysHandler.Register)
		r.With(middleware.RateLimit(s.cfg.LoginRatePerMin)).
			Post("/admin/login", sysHandler.Login)
		r.Post("/init-sample-data", seedHandler.InitSampleData)

		// Everything else requires a valid bearer token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(s.authSvc))

			r.Get("/admin/me", sysHandler.Me)
			r.Get("/admins", sysHandler.ListAdmins)
			r.Put("/admins/{adminID}", sysHandler.UpdateAdmin)
			r.Delete("/admins/{adminID}", sysHandler.DeleteAdmin)

			r.Get("/users", userHandler.ListUsers)
			r.Post("/users", userHandler.CreateUser)
			r.Get("/users/{userID}", userHandler.GetUser)
			r.Put("/users/{userID}", userHandler.UpdateUser)
			r.Delete("/users/{userID}", userHandler.DeleteUser)

			r.Get("/games", catalogHandler.ListGames)
			r.Post("/games", catalogHandler.CreateGame)
			r.Put("/games/{gameID}", catalogHandler.UpdateGame)
			r.Delete("/games/{gameID}", catalogHandler.DeleteGame)

			r.Get("/builds", catalogHandler.ListBuilds)
			r.Post("/builds", catalogHandler.CreateBuild)

			r.Get("/updates", catalogHandler.ListReleaseNotes)
			r.Post("/updates", catalogHandler.CreateReleaseNote)

			r.Get("/revenue", catalogHandler.ListRevenue)
			r.Post("/revenue", catalogHandler.CreateRevenue)

			r.Post("/live-effects/send", effectHandler.SendEffect)
			r.Get("/live-effects", effectHandler.ListEffects)

			r.Get("/stats/dashboard", statsHandler.Dashboard)
		})
	})

	// --- Live channel endpoint ---
	// Game clients connect here; authentication for effect delivery lives on
	// the admin API side.
	r.Get("/ws/{userID}", live.NewHandler(s.registry, s.logger).ServeHTTP)

	s.router = r
}

// handleHealthz is a liveness probe. Returns 200 if the process is running.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// handleReadyz is a readiness probe. Returns 200 when the store is reachable.
func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := s.store.Ping(); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"degraded"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// ListenAndServe starts the HTTP server and blocks until a SIGINT or SIGTERM
// is received, then drains in-flight requests before returning.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	s.httpServer = &http.Server{
		Addr:        addr,
		Handler:     s.router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 120 * time.Second,
		// No WriteTimeout: websocket connections stay open indefinitely.
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server listen: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutdown signal received, draining connections...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// Router returns the underlying chi router, useful for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ServeHTTP implements http.Handler, delegating to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
