package model

// TeamID uniquely identifies a team in the league backend
type TeamID string

// PlayerID uniquely identifies a player in the league backend
type PlayerID string

// GameID uniquely identifies a game in the league backend
type GameID string

// Team represents a team fetched from the domain API
type Team struct {
	ID       TeamID `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city,omitempty"`
	CoachID  UserID `json:"coachId,omitempty"`
	Division string `json:"division,omitempty"`
}

// Player represents a roster member fetched from the domain API.
// Position is the raw backend string; canonicalisation happens in the
// position registry, never here. Stats keys arrive with inconsistent
// casing and are normalised by the stat presenter before display.
type Player struct {
	ID           PlayerID       `json:"id"`
	Name         string         `json:"name"`
	Position     string         `json:"position"`
	JerseyNumber int            `json:"jerseyNumber"`
	HeightInches int            `json:"height,omitempty"`
	WeightPounds int            `json:"weight,omitempty"`
	Age          int            `json:"age,omitempty"`
	TeamID       TeamID         `json:"teamId,omitempty"`
	Stats        map[string]any `json:"stats,omitempty"`
}

// Game represents a scheduled or completed game
type Game struct {
	ID         GameID `json:"id"`
	HomeTeamID TeamID `json:"homeTeamId"`
	AwayTeamID TeamID `json:"awayTeamId"`
	HomeScore  *int   `json:"homeScore,omitempty"`
	AwayScore  *int   `json:"awayScore,omitempty"`
	Date       string `json:"date"`
	Location   string `json:"location,omitempty"`
}

// Played reports whether the game has a recorded final score
func (g *Game) Played() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}
