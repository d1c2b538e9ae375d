package stub

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/teamhubhq/teamhub/internal/model"
)

// SeedPassword is the password every seeded account accepts
const SeedPassword = "touchdown1"

// Seeded account emails
const (
	SeedDirectorEmail = "director@teamhub.test"
	SeedCoachEmail    = "coach@teamhub.test"
	SeedPlayerEmail   = "player@teamhub.test"
)

type seededUser struct {
	user         model.User
	passwordHash string
}

func intptr(n int) *int { return &n }

// seed populates the stub with a small league: two teams, rosters
// covering every position category, a short schedule, and one account
// per role. Stat keys are deliberately mixed-case to mirror the real
// backend's inconsistent field naming.
func (s *Server) seed() {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		panic("stub: seeding password hash: " + err.Error())
	}

	users := []model.User{
		{ID: "u_director", Name: "Dana Whitfield", Email: SeedDirectorEmail, Role: model.RoleAthleticDirector, IsAuthenticated: true},
		{ID: "u_coach", Name: "Marcus Bell", Email: SeedCoachEmail, Role: model.RoleCoach, IsAuthenticated: true, TeamID: "t_hawks"},
		{ID: "u_player", Name: "Jalen Price", Email: SeedPlayerEmail, Role: model.RolePlayer, IsAuthenticated: true, TeamID: "t_hawks", PlayerID: "p_price"},
	}
	for _, u := range users {
		s.users[u.ID] = &seededUser{user: u, passwordHash: string(hash)}
		s.emailIndex[u.Email] = u.ID
	}

	teams := []model.Team{
		{ID: "t_hawks", Name: "Hawks", City: "Westfield", CoachID: "u_coach", Division: "North"},
		{ID: "t_bears", Name: "Bears", City: "Northgate", Division: "North"},
	}
	for i := range teams {
		s.teams[teams[i].ID] = &teams[i]
	}

	players := []model.Player{
		{
			ID: "p_price", Name: "Jalen Price", Position: "Quarterback",
			JerseyNumber: 12, HeightInches: 74, WeightPounds: 205, Age: 17, TeamID: "t_hawks",
			Stats: map[string]any{
				"Completions":          142.0,
				"PassingAttempts":      221.0,
				"completionPercentage": 64.3,
				"yardsPerPassAttempt":  8.1,
				"Touchdowns":           19.0,
				"interceptions":        6.0,
				"longestPass":          63.0,
				"sacked":               11.0,
				"rushingYards":         187.0,
			},
		},
		{
			ID: "p_okafor", Name: "Chidi Okafor", Position: "Running Back",
			JerseyNumber: 28, HeightInches: 70, WeightPounds: 198, Age: 16, TeamID: "t_hawks",
			Stats: map[string]any{
				"RushingAttempts": 164.0,
				"rushingYards":    912.0,
				"yardsPerCarry":   5.6,
				"Touchdowns":      11.0,
				"longestRun":      58.0,
				"fumbles":         2.0,
			},
		},
		{
			ID: "p_reyes", Name: "Luis Reyes", Position: "Wide Receiver",
			JerseyNumber: 81, HeightInches: 72, WeightPounds: 182, Age: 17, TeamID: "t_hawks",
			Stats: map[string]any{
				"Receptions":     47.0,
				"receivingYards": 689.0,
				"Touchdowns":     8.0,
			},
		},
		{
			ID: "p_holt", Name: "DeShawn Holt", Position: "Cornerback",
			JerseyNumber: 24, HeightInches: 71, WeightPounds: 178, Age: 17, TeamID: "t_hawks",
			Stats: map[string]any{
				"Tackles":         41.0,
				"interceptions":   4.0,
				"passDeflections": 12.0,
			},
		},
		{
			ID: "p_novak", Name: "Peter Novak", Position: "Linebacker",
			JerseyNumber: 52, HeightInches: 73, WeightPounds: 221, Age: 18, TeamID: "t_hawks",
			Stats: map[string]any{
				"Tackles":         67.0,
				"assistedTackles": 23.0,
				"sacks":           5.5,
			},
		},
		{
			ID: "p_cho", Name: "Minho Cho", Position: "Kicker",
			JerseyNumber: 3, HeightInches: 69, WeightPounds: 165, Age: 16, TeamID: "t_hawks",
			Stats: map[string]any{
				"FieldGoalsMade":      13.0,
				"fieldGoalsAttempted": 16.0,
				"longestFieldGoal":    47.0,
			},
		},
		{
			ID: "p_webb", Name: "Tyree Webb", Position: "Safety",
			JerseyNumber: 30, HeightInches: 72, WeightPounds: 190, Age: 17, TeamID: "t_bears",
			Stats: map[string]any{
				"Tackles":       55.0,
				"interceptions": 2.0,
			},
		},
		{
			ID: "p_andersson", Name: "Erik Andersson", Position: "Tight End",
			JerseyNumber: 87, HeightInches: 76, WeightPounds: 238, Age: 18, TeamID: "t_bears",
			Stats: map[string]any{
				"Receptions":     31.0,
				"receivingYards": 402.0,
				"Touchdowns":     4.0,
			},
		},
		// No position recorded yet; exercises the Unknown bucket
		{
			ID: "p_moss", Name: "Avery Moss",
			JerseyNumber: 45, Age: 15, TeamID: "t_bears",
		},
	}
	for i := range players {
		s.players[players[i].ID] = &players[i]
	}

	s.games = []model.Game{
		{
			ID: "g_1", HomeTeamID: "t_hawks", AwayTeamID: "t_bears",
			HomeScore: intptr(24), AwayScore: intptr(17),
			Date: "2025-09-12", Location: "Westfield Stadium",
		},
		{
			ID: "g_2", HomeTeamID: "t_bears", AwayTeamID: "t_hawks",
			Date: "2025-10-03", Location: "Northgate Field",
		},
	}
}
