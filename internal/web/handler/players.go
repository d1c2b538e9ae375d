package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/teamhubhq/teamhub/internal/gateway"
	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/services/position"
	"github.com/teamhubhq/teamhub/internal/services/stats"
	"github.com/teamhubhq/teamhub/internal/web/middleware"
	"github.com/teamhubhq/teamhub/internal/web/templates/layout"
	"github.com/teamhubhq/teamhub/internal/web/templates/pages"
)

// PlayersHandler handles the player profile and create-player pages
type PlayersHandler struct {
	backend *gateway.Client
}

// NewPlayersHandler creates a new PlayersHandler
func NewPlayersHandler(backend *gateway.Client) *PlayersHandler {
	return &PlayersHandler{backend: backend}
}

func (h *PlayersHandler) pageData(r *http.Request, title string) layout.PageData {
	return layout.PageData{
		Title: title,
		User:  middleware.GetIdentity(r.Context()),
		Flash: middleware.GetFlash(r.Context()),
	}
}

// View renders a player's profile with the full stat list for the
// player's canonical position
func (h *PlayersHandler) View(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetStore(r.Context()).Token()
	playerID := model.PlayerID(mux.Vars(r)["playerId"])
	data := pages.PlayerData{PageData: h.pageData(r, "Player")}

	player, err := h.backend.Player(r.Context(), token, playerID)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		data.Error = "Could not load the player right now."
		renderPage(w, r, pages.Player(data))
		return
	}

	canonical := position.Normalize(player.Position)
	data.Player = player
	data.Canonical = canonical
	data.Lines = stats.Lines(canonical, player.Stats)
	data.PageData.Title = player.Name
	if identity := middleware.GetIdentity(r.Context()); identity != nil {
		data.CanEdit = identity.Role == model.RoleAthleticDirector
	}

	renderPage(w, r, pages.Player(data))
}

// Update handles the edit-player form submission. Blank fields are
// left out of the patch so the backend keeps its current values.
func (h *PlayersHandler) Update(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetStore(r.Context()).Token()
	playerID := mux.Vars(r)["playerId"]
	playerPath := "/players/" + playerID

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, playerPath, http.StatusSeeOther)
		return
	}

	var in gateway.UpdatePlayerInput
	if raw := strings.TrimSpace(r.FormValue("position")); raw != "" {
		in.Position = &raw
	}
	if raw := r.FormValue("jersey_number"); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil {
			middleware.SetFlash(w, "error", "Jersey number must be a number")
			http.Redirect(w, r, playerPath, http.StatusSeeOther)
			return
		}
		in.JerseyNumber = &number
	}

	if _, err := h.backend.UpdatePlayer(r.Context(), token, model.PlayerID(playerID), in); err != nil {
		middleware.SetFlash(w, "error", "Could not update the player")
		http.Redirect(w, r, playerPath, http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "success", "Player updated")
	http.Redirect(w, r, playerPath, http.StatusSeeOther)
}

// NewForm renders the create-player form with the team picker
func (h *PlayersHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetStore(r.Context()).Token()
	data := pages.NewPlayerData{PageData: h.pageData(r, "Add Player")}

	teams, err := h.backend.Teams(r.Context(), token)
	if err != nil {
		data.Error = "Could not load teams right now."
	}
	data.Teams = teams

	renderPage(w, r, pages.NewPlayer(data))
}

// Create handles the create-player form submission. The raw position
// label is sent as entered; normalization happens on display.
func (h *PlayersHandler) Create(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetStore(r.Context()).Token()

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/players/new", http.StatusSeeOther)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	teamID := r.FormValue("team_id")
	if name == "" || teamID == "" {
		middleware.SetFlash(w, "error", "Player name and team are required")
		http.Redirect(w, r, "/players/new", http.StatusSeeOther)
		return
	}

	in := gateway.CreatePlayerInput{
		TeamID:   model.TeamID(teamID),
		Name:     name,
		Position: strings.TrimSpace(r.FormValue("position")),
	}
	if raw := r.FormValue("jersey_number"); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil {
			middleware.SetFlash(w, "error", "Jersey number must be a number")
			http.Redirect(w, r, "/players/new", http.StatusSeeOther)
			return
		}
		in.JerseyNumber = number
	}

	player, err := h.backend.CreatePlayer(r.Context(), token, in)
	if err != nil {
		middleware.SetFlash(w, "error", "Could not create the player")
		http.Redirect(w, r, "/players/new", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "success", "Player added")
	http.Redirect(w, r, "/players/"+string(player.ID), http.StatusSeeOther)
}
