package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case []Team:
		o.printTeams(v)
	case Roster:
		o.printRoster(v)
	case PositionFields:
		o.printPositionFields(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	TeamID   string `json:"teamId,omitempty"`
	PlayerID string `json:"playerId,omitempty"`
}

// Session response type
type Session struct {
	SessionID       string `json:"sessionId,omitempty"`
	State           string `json:"state"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	User            *User  `json:"user,omitempty"`
}

// Team response type
type Team struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city,omitempty"`
	Division string `json:"division,omitempty"`
}

// StatLine response type
type StatLine struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// RosterPlayer response type
type RosterPlayer struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Position     string     `json:"position"`
	JerseyNumber int        `json:"jerseyNumber,omitempty"`
	Summary      []StatLine `json:"summary"`
}

// PositionGroup response type
type PositionGroup struct {
	Position string         `json:"position"`
	Players  []RosterPlayer `json:"players"`
}

// Roster response type
type Roster struct {
	TeamID       string          `json:"teamId"`
	Offense      []PositionGroup `json:"offense"`
	Defense      []PositionGroup `json:"defense"`
	SpecialTeams []PositionGroup `json:"specialTeams"`
	Other        []PositionGroup `json:"other"`
}

// PositionFields response type
type PositionFields struct {
	Position      string   `json:"position"`
	Fields        []string `json:"fields"`
	SummaryFields []string `json:"summaryFields"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSession(s Session) {
	fmt.Printf("State: %s\n", s.State)
	if s.User != nil {
		fmt.Printf("User: %s <%s>\n", s.User.Name, s.User.Email)
		fmt.Printf("Role: %s\n", s.User.Role)
		if s.User.TeamID != "" {
			fmt.Printf("Team: %s\n", s.User.TeamID)
		}
	}
}

func (o *Output) printTeams(teams []Team) {
	fmt.Printf("Teams (%d):\n", len(teams))
	for _, t := range teams {
		name := t.Name
		if t.City != "" {
			name = t.City + " " + t.Name
		}
		if t.Division != "" {
			fmt.Printf("  - %s (%s) - %s\n", name, t.ID, t.Division)
		} else {
			fmt.Printf("  - %s (%s)\n", name, t.ID)
		}
	}
}

func (o *Output) printRoster(r Roster) {
	fmt.Printf("Roster for team %s\n", r.TeamID)
	o.printCategory("Offense", r.Offense)
	o.printCategory("Defense", r.Defense)
	o.printCategory("Special Teams", r.SpecialTeams)
	o.printCategory("Other", r.Other)
}

func (o *Output) printCategory(name string, groups []PositionGroup) {
	if len(groups) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", name)
	for _, g := range groups {
		fmt.Printf("  %s:\n", g.Position)
		for _, p := range g.Players {
			if p.JerseyNumber > 0 {
				fmt.Printf("    #%d %s (%s)\n", p.JerseyNumber, p.Name, p.ID)
			} else {
				fmt.Printf("    %s (%s)\n", p.Name, p.ID)
			}
		}
	}
}

func (o *Output) printPositionFields(pf PositionFields) {
	fmt.Printf("Position: %s\n", pf.Position)
	fmt.Println("Fields:")
	for _, f := range pf.Fields {
		fmt.Printf("  - %s\n", f)
	}
	if len(pf.SummaryFields) > 0 {
		fmt.Println("Summary fields:")
		for _, f := range pf.SummaryFields {
			fmt.Printf("  - %s\n", f)
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
