package stub

import (
	"sort"

	"github.com/teamhubhq/teamhub/internal/model"
)

// Map iteration order is random; list endpoints sort by id so the
// front end sees stable output.

func sortTeams(teams []model.Team) {
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
}

func sortPlayers(players []model.Player) {
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
}
