package handler

import (
	"net/http"

	"github.com/teamhubhq/teamhub/internal/gateway"
	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/web/middleware"
	"github.com/teamhubhq/teamhub/internal/web/templates/layout"
	"github.com/teamhubhq/teamhub/internal/web/templates/pages"
)

// GamesHandler handles the league schedule page
type GamesHandler struct {
	backend *gateway.Client
}

// NewGamesHandler creates a new GamesHandler
func NewGamesHandler(backend *gateway.Client) *GamesHandler {
	return &GamesHandler{backend: backend}
}

// List renders the schedule with results for played games
func (h *GamesHandler) List(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetStore(r.Context()).Token()
	data := pages.GamesData{
		PageData: layout.PageData{
			Title: "Games",
			User:  middleware.GetIdentity(r.Context()),
			Flash: middleware.GetFlash(r.Context()),
		},
	}

	games, err := h.backend.Games(r.Context(), token)
	if err != nil {
		data.Error = "Could not load the schedule right now."
		renderPage(w, r, pages.Games(data))
		return
	}
	data.Games = games

	// Team names are best effort; games still render with raw ids when
	// the team list is unavailable
	if teams, err := h.backend.Teams(r.Context(), token); err == nil {
		names := make(map[model.TeamID]string, len(teams))
		for _, t := range teams {
			names[t.ID] = t.City + " " + t.Name
		}
		data.TeamNames = names
	}

	renderPage(w, r, pages.Games(data))
}
