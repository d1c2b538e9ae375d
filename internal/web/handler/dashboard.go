package handler

import (
	"net/http"

	"github.com/teamhubhq/teamhub/internal/gateway"
	"github.com/teamhubhq/teamhub/internal/services/position"
	"github.com/teamhubhq/teamhub/internal/services/roster"
	"github.com/teamhubhq/teamhub/internal/services/stats"
	"github.com/teamhubhq/teamhub/internal/web/middleware"
	"github.com/teamhubhq/teamhub/internal/web/templates/layout"
	"github.com/teamhubhq/teamhub/internal/web/templates/pages"
)

// DashboardHandler handles the role dashboards
type DashboardHandler struct {
	backend *gateway.Client
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(backend *gateway.Client) *DashboardHandler {
	return &DashboardHandler{backend: backend}
}

func (h *DashboardHandler) pageData(r *http.Request, title string) layout.PageData {
	return layout.PageData{
		Title: title,
		User:  middleware.GetIdentity(r.Context()),
		Flash: middleware.GetFlash(r.Context()),
	}
}

// Director renders the athletic director's league overview
func (h *DashboardHandler) Director(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetStore(r.Context()).Token()
	data := pages.DirectorDashboardData{PageData: h.pageData(r, "Athletic Director")}

	teams, err := h.backend.Teams(r.Context(), token)
	if err != nil {
		data.Error = "Could not load teams right now."
	}
	games, err := h.backend.Games(r.Context(), token)
	if err != nil {
		data.Error = "Could not load the schedule right now."
	}
	data.Teams = teams
	data.Games = games

	renderPage(w, r, pages.DirectorDashboard(data))
}

// Coach renders the coach's own roster grouped by position category
func (h *DashboardHandler) Coach(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())
	token := middleware.GetStore(r.Context()).Token()
	data := pages.CoachDashboardData{PageData: h.pageData(r, "Coach")}

	if identity.TeamID == "" {
		renderPage(w, r, pages.CoachDashboard(data))
		return
	}

	team, err := h.backend.Team(r.Context(), token, identity.TeamID)
	if err != nil {
		data.Error = "Could not load your team right now."
		renderPage(w, r, pages.CoachDashboard(data))
		return
	}
	data.Team = team

	players, err := h.backend.TeamPlayers(r.Context(), token, identity.TeamID)
	if err != nil {
		data.Error = "Could not load your roster right now."
		renderPage(w, r, pages.CoachDashboard(data))
		return
	}

	data.Roster = roster.Categorize(roster.GroupByPosition(players))
	renderPage(w, r, pages.CoachDashboard(data))
}

// Player renders the player's own compact stat card
func (h *DashboardHandler) Player(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())
	token := middleware.GetStore(r.Context()).Token()
	data := pages.PlayerDashboardData{PageData: h.pageData(r, "My Season")}

	if identity.PlayerID == "" {
		renderPage(w, r, pages.PlayerDashboard(data))
		return
	}

	player, err := h.backend.Player(r.Context(), token, identity.PlayerID)
	if err != nil {
		data.Error = "Could not load your stats right now."
		renderPage(w, r, pages.PlayerDashboard(data))
		return
	}

	canonical := position.Normalize(player.Position)
	data.Player = player
	data.Canonical = canonical
	data.Summary = stats.SummaryLines(canonical, player.Stats)

	renderPage(w, r, pages.PlayerDashboard(data))
}

// Generic is the fallback dashboard for roles without a dedicated view
func (h *DashboardHandler) Generic(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, pages.GenericDashboard(h.pageData(r, "Dashboard")))
}
