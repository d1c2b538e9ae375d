package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/teamhubhq/teamhub/internal/api/handler"
	"github.com/teamhubhq/teamhub/internal/api/middleware"
	"github.com/teamhubhq/teamhub/internal/gateway"
	"github.com/teamhubhq/teamhub/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger   *slog.Logger
	Sessions *session.Manager
	Backend  *gateway.Client
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.Sessions, cfg.Backend)
	teamHandler := handler.NewTeamHandler(cfg.Backend)
	positionHandler := handler.NewPositionHandler()

	// Create middleware
	authMiddleware := middleware.Auth(cfg.Sessions)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.Sessions)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Session routes: create needs no auth, reading resolves whatever
	// session is presented, delete requires one
	api.HandleFunc("/session", sessionHandler.Create).Methods(http.MethodPost)

	sessionRead := api.NewRoute().Subrouter()
	sessionRead.Use(optionalAuthMiddleware)
	sessionRead.HandleFunc("/session", sessionHandler.Get).Methods(http.MethodGet)

	sessionWrite := api.NewRoute().Subrouter()
	sessionWrite.Use(authMiddleware)
	sessionWrite.HandleFunc("/session", sessionHandler.Delete).Methods(http.MethodDelete)

	// League routes (all require auth)
	league := api.NewRoute().Subrouter()
	league.Use(authMiddleware)
	league.HandleFunc("/teams", teamHandler.List).Methods(http.MethodGet)
	league.HandleFunc("/teams/{teamId}/roster", teamHandler.Roster).Methods(http.MethodGet)

	// Position metadata is static and needs no auth
	api.HandleFunc("/positions/{code}/fields", positionHandler.Fields).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
