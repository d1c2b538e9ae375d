package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/teamhubhq/teamhub/internal/api/apierr"
	"github.com/teamhubhq/teamhub/internal/api/middleware"
	"github.com/teamhubhq/teamhub/internal/api/response"
	"github.com/teamhubhq/teamhub/internal/gateway"
	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/services/roster"
)

// TeamHandler handles team and roster requests
type TeamHandler struct {
	backend *gateway.Client
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(backend *gateway.Client) *TeamHandler {
	return &TeamHandler{backend: backend}
}

// List handles GET /teams
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetStore(r.Context()).Token()

	teams, err := h.backend.Teams(r.Context(), token)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.NewTeams(teams))
}

// Roster handles GET /teams/{teamId}/roster: the raw backend roster
// grouped by canonical position and categorised into offense, defense
// and special teams
func (h *TeamHandler) Roster(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetStore(r.Context()).Token()
	teamID := model.TeamID(mux.Vars(r)["teamId"])

	players, err := h.backend.TeamPlayers(r.Context(), token, teamID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	cat := roster.Categorize(roster.GroupByPosition(players))
	response.JSON(w, http.StatusOK, response.NewRoster(teamID, cat))
}
