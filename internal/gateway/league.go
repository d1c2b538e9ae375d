package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/teamhubhq/teamhub/internal/model"
)

// Domain API operations. These are plain request/response lookups; all
// validation and business rules live behind the backend.

// Teams fetches all teams
func (c *Client) Teams(ctx context.Context, token string) ([]model.Team, error) {
	var teams []model.Team
	if err := c.do(ctx, http.MethodGet, "/teams", token, nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// Team fetches a single team by id
func (c *Client) Team(ctx context.Context, token string, id model.TeamID) (*model.Team, error) {
	var team model.Team
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/teams/%s", id), token, nil, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// TeamPlayers fetches the roster for a team
func (c *Client) TeamPlayers(ctx context.Context, token string, id model.TeamID) ([]model.Player, error) {
	var players []model.Player
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/teams/%s/players", id), token, nil, &players); err != nil {
		return nil, err
	}
	return players, nil
}

// Player fetches a single player by id
func (c *Client) Player(ctx context.Context, token string, id model.PlayerID) (*model.Player, error) {
	var player model.Player
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/players/%s", id), token, nil, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// Games fetches the game schedule
func (c *Client) Games(ctx context.Context, token string) ([]model.Game, error) {
	var games []model.Game
	if err := c.do(ctx, http.MethodGet, "/games", token, nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// CreateTeamInput is the create-team request body
type CreateTeamInput struct {
	Name     string `json:"name"`
	City     string `json:"city,omitempty"`
	Division string `json:"division,omitempty"`
}

// CreateTeam proxies a team creation to the backend
func (c *Client) CreateTeam(ctx context.Context, token string, in CreateTeamInput) (*model.Team, error) {
	var team model.Team
	if err := c.do(ctx, http.MethodPost, "/teams", token, in, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// CreatePlayerInput is the create-player request body
type CreatePlayerInput struct {
	Name         string       `json:"name"`
	Position     string       `json:"position"`
	JerseyNumber int          `json:"jerseyNumber"`
	TeamID       model.TeamID `json:"teamId,omitempty"`
}

// CreatePlayer proxies a player creation to the backend
func (c *Client) CreatePlayer(ctx context.Context, token string, in CreatePlayerInput) (*model.Player, error) {
	var player model.Player
	if err := c.do(ctx, http.MethodPost, "/players", token, in, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// UpdatePlayerInput carries the mutable player fields for an update.
// Nil fields are left unchanged by the backend.
type UpdatePlayerInput struct {
	Name         *string `json:"name,omitempty"`
	Position     *string `json:"position,omitempty"`
	JerseyNumber *int    `json:"jerseyNumber,omitempty"`
}

// UpdatePlayer proxies a player update to the backend
func (c *Client) UpdatePlayer(ctx context.Context, token string, id model.PlayerID, in UpdatePlayerInput) (*model.Player, error) {
	var player model.Player
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/players/%s", id), token, in, &player); err != nil {
		return nil, err
	}
	return &player, nil
}
