package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/teamhubhq/teamhub/internal/gateway"
	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/services/roster"
	"github.com/teamhubhq/teamhub/internal/web/middleware"
	"github.com/teamhubhq/teamhub/internal/web/templates/layout"
	"github.com/teamhubhq/teamhub/internal/web/templates/pages"
)

// TeamsHandler handles the team list, team roster and create-team
// pages
type TeamsHandler struct {
	backend *gateway.Client
}

// NewTeamsHandler creates a new TeamsHandler
func NewTeamsHandler(backend *gateway.Client) *TeamsHandler {
	return &TeamsHandler{backend: backend}
}

func (h *TeamsHandler) pageData(r *http.Request, title string) layout.PageData {
	return layout.PageData{
		Title: title,
		User:  middleware.GetIdentity(r.Context()),
		Flash: middleware.GetFlash(r.Context()),
	}
}

// List renders all teams in the league
func (h *TeamsHandler) List(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetStore(r.Context()).Token()
	data := pages.TeamsData{PageData: h.pageData(r, "Teams")}

	teams, err := h.backend.Teams(r.Context(), token)
	if err != nil {
		data.Error = "Could not load teams right now."
	}
	data.Teams = teams

	renderPage(w, r, pages.Teams(data))
}

// View renders one team's roster grouped by position category
func (h *TeamsHandler) View(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetStore(r.Context()).Token()
	teamID := model.TeamID(mux.Vars(r)["teamId"])
	data := pages.TeamData{PageData: h.pageData(r, "Team")}

	team, err := h.backend.Team(r.Context(), token, teamID)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		data.Error = "Could not load the team right now."
		renderPage(w, r, pages.Team(data))
		return
	}
	data.Team = team
	data.PageData.Title = team.City + " " + team.Name

	players, err := h.backend.TeamPlayers(r.Context(), token, teamID)
	if err != nil {
		data.Error = "Could not load the roster right now."
		renderPage(w, r, pages.Team(data))
		return
	}

	data.Roster = roster.Categorize(roster.GroupByPosition(players))
	renderPage(w, r, pages.Team(data))
}

// Create handles the create-team form submission (athletic directors
// only; the guard enforces the role)
func (h *TeamsHandler) Create(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetStore(r.Context()).Token()

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, model.DashboardRoute(model.RoleAthleticDirector), http.StatusSeeOther)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		middleware.SetFlash(w, "error", "Team name is required")
		http.Redirect(w, r, model.DashboardRoute(model.RoleAthleticDirector), http.StatusSeeOther)
		return
	}

	team, err := h.backend.CreateTeam(r.Context(), token, gateway.CreateTeamInput{
		Name:     name,
		City:     strings.TrimSpace(r.FormValue("city")),
		Division: strings.TrimSpace(r.FormValue("division")),
	})
	if err != nil {
		middleware.SetFlash(w, "error", "Could not create the team")
		http.Redirect(w, r, model.DashboardRoute(model.RoleAthleticDirector), http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "success", "Team created")
	http.Redirect(w, r, "/teams/"+string(team.ID), http.StatusSeeOther)
}
