package response

import (
	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/services/position"
	"github.com/teamhubhq/teamhub/internal/services/roster"
	"github.com/teamhubhq/teamhub/internal/services/stats"
)

// User represents a user in API responses
type User struct {
	ID       model.UserID   `json:"id"`
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Role     model.Role     `json:"role"`
	TeamID   model.TeamID   `json:"teamId,omitempty"`
	PlayerID model.PlayerID `json:"playerId,omitempty"`
}

// NewUser converts a model user to an API user
func NewUser(u *model.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		TeamID:   u.TeamID,
		PlayerID: u.PlayerID,
	}
}

// Session represents the session state in API responses
type Session struct {
	SessionID       model.SessionID `json:"sessionId,omitempty"`
	State           string          `json:"state"`
	IsAuthenticated bool            `json:"isAuthenticated"`
	User            *User           `json:"user,omitempty"`
}

// Team represents a team in API responses
type Team struct {
	ID       model.TeamID `json:"id"`
	Name     string       `json:"name"`
	City     string       `json:"city,omitempty"`
	Division string       `json:"division,omitempty"`
}

// NewTeam converts a model team to an API team
func NewTeam(t model.Team) Team {
	return Team{
		ID:       t.ID,
		Name:     t.Name,
		City:     t.City,
		Division: t.Division,
	}
}

// NewTeams converts a slice of model teams
func NewTeams(teams []model.Team) []Team {
	out := make([]Team, len(teams))
	for i, t := range teams {
		out[i] = NewTeam(t)
	}
	return out
}

// StatLine is one labelled stat value
type StatLine struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// NewStatLines converts presenter lines
func NewStatLines(lines []stats.Line) []StatLine {
	out := make([]StatLine, len(lines))
	for i, l := range lines {
		out[i] = StatLine{Key: l.Key, Label: l.Label, Value: l.Value}
	}
	return out
}

// RosterPlayer is a player entry inside a roster group
type RosterPlayer struct {
	ID           model.PlayerID `json:"id"`
	Name         string         `json:"name"`
	Position     string         `json:"position"`
	JerseyNumber int            `json:"jerseyNumber,omitempty"`
	Summary      []StatLine     `json:"summary"`
}

// PositionGroup is all players sharing one canonical position
type PositionGroup struct {
	Position string         `json:"position"`
	Players  []RosterPlayer `json:"players"`
}

// Roster is a team roster grouped into the three category buckets plus
// the catch-all for unrecognised positions
type Roster struct {
	TeamID       model.TeamID    `json:"teamId"`
	Offense      []PositionGroup `json:"offense"`
	Defense      []PositionGroup `json:"defense"`
	SpecialTeams []PositionGroup `json:"specialTeams"`
	Other        []PositionGroup `json:"other"`
}

// NewRoster converts a categorized roster to the API shape
func NewRoster(teamID model.TeamID, cat roster.Categorized) Roster {
	return Roster{
		TeamID:       teamID,
		Offense:      newGroups(cat.Offense),
		Defense:      newGroups(cat.Defense),
		SpecialTeams: newGroups(cat.SpecialTeams),
		Other:        newGroups(cat.Other),
	}
}

func newGroups(g *roster.Groups) []PositionGroup {
	out := make([]PositionGroup, 0, g.Len())
	for _, code := range g.Codes() {
		players := g.Players(code)
		entries := make([]RosterPlayer, len(players))
		for i, p := range players {
			canonical := position.Normalize(p.Position)
			entries[i] = RosterPlayer{
				ID:           p.ID,
				Name:         p.Name,
				Position:     canonical,
				JerseyNumber: p.JerseyNumber,
				Summary:      NewStatLines(stats.SummaryLines(canonical, p.Stats)),
			}
		}
		out = append(out, PositionGroup{Position: code, Players: entries})
	}
	return out
}

// PositionFields is the stat field list for one position code
type PositionFields struct {
	Position      string   `json:"position"`
	Fields        []string `json:"fields"`
	SummaryFields []string `json:"summaryFields"`
}
