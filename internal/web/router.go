package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/teamhubhq/teamhub/internal/gateway"
	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/services/session"
	"github.com/teamhubhq/teamhub/internal/web/handler"
	"github.com/teamhubhq/teamhub/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger    *slog.Logger
	Sessions  *session.Manager
	Backend   *gateway.Client
	StaticDir string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	optionalAuth := middleware.OptionalAuth(cfg.Sessions)
	guestOnly := middleware.GuestOnly(cfg.Sessions)
	requireAuth := middleware.Protect(cfg.Sessions)
	directorOnly := middleware.Protect(cfg.Sessions, model.RoleAthleticDirector)
	coachOnly := middleware.Protect(cfg.Sessions, model.RoleCoach)
	playerOnly := middleware.Protect(cfg.Sessions, model.RolePlayer)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	homeHandler := handler.NewHomeHandler()
	authHandler := handler.NewAuthHandler(cfg.Sessions, cfg.Backend)
	dashboardHandler := handler.NewDashboardHandler(cfg.Backend)
	teamsHandler := handler.NewTeamsHandler(cfg.Backend)
	playersHandler := handler.NewPlayersHandler(cfg.Backend)
	gamesHandler := handler.NewGamesHandler(cfg.Backend)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Public routes (optional auth for showing the user in the nav)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuth)
	public.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)

	// Login is guest-only; signed-in users bounce to their dashboard
	login := r.NewRoute().Subrouter()
	login.Use(flashMiddleware)
	login.Use(guestOnly)
	login.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	login.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)

	// Logout needs the session but no role
	logout := r.NewRoute().Subrouter()
	logout.Use(flashMiddleware)
	logout.Use(optionalAuth)
	logout.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// Role dashboards
	director := r.PathPrefix("/athletic-director").Subrouter()
	director.Use(flashMiddleware)
	director.Use(directorOnly)
	director.HandleFunc("/dashboard", dashboardHandler.Director).Methods(http.MethodGet)

	coach := r.PathPrefix("/coach").Subrouter()
	coach.Use(flashMiddleware)
	coach.Use(coachOnly)
	coach.HandleFunc("/dashboard", dashboardHandler.Coach).Methods(http.MethodGet)

	player := r.PathPrefix("/player").Subrouter()
	player.Use(flashMiddleware)
	player.Use(playerOnly)
	player.HandleFunc("/dashboard", dashboardHandler.Player).Methods(http.MethodGet)

	// League administration is athletic-director only. Registered
	// before the shared routes so /players/new wins over /players/{id}.
	admin := r.NewRoute().Subrouter()
	admin.Use(flashMiddleware)
	admin.Use(directorOnly)
	admin.HandleFunc("/teams", teamsHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/players/new", playersHandler.NewForm).Methods(http.MethodGet)
	admin.HandleFunc("/players", playersHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/players/{playerId}", playersHandler.Update).Methods(http.MethodPost)

	// Protected routes shared by every authenticated role
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(requireAuth)
	protected.HandleFunc("/dashboard", dashboardHandler.Generic).Methods(http.MethodGet)
	protected.HandleFunc("/teams", teamsHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/teams/{teamId}", teamsHandler.View).Methods(http.MethodGet)
	protected.HandleFunc("/players/{playerId}", playersHandler.View).Methods(http.MethodGet)
	protected.HandleFunc("/games", gamesHandler.List).Methods(http.MethodGet)

	return r
}
