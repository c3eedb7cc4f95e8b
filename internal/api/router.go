package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/betdesk/internal/api/handler"
	"github.com/mcoot/betdesk/internal/middleware"
	"github.com/mcoot/betdesk/internal/services/access"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	AccessService *access.Service
}

// NewRouter creates a new API router with all routes configured.
//
// Authorization is not a per-request concern here: the engine holds the one
// process-wide session and gates every operation itself, so the routes map
// straight onto engine operations.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AccessService)
	betHandler := handler.NewBetHandler(cfg.AccessService)
	adminHandler := handler.NewAdminHandler(cfg.AccessService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger, middleware.DefaultPanicHandler)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/session", authHandler.Session).Methods(http.MethodGet)

	// Bet ledger routes (regular sessions only, gated by the engine)
	api.HandleFunc("/bets", betHandler.Place).Methods(http.MethodPost)
	api.HandleFunc("/bets", betHandler.List).Methods(http.MethodGet)

	// Admin routes (admin sessions only, gated by the engine)
	api.HandleFunc("/admin/users", adminHandler.ListRegularUsers).Methods(http.MethodGet)
	api.HandleFunc("/admin/users/{username}/ban", adminHandler.BanUser).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
