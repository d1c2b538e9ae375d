// Package roster groups a fetched player collection by canonical
// position and partitions the groups into the offense, defense,
// special teams and other display buckets.
package roster

import (
	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/services/position"
)

// unknownPosition is the literal bucketed for players with no position.
// It is not a member of any category set, so it always lands in Other.
const unknownPosition = "Unknown"

// Groups maps canonical position codes to the players holding them.
// Bucket order is first-seen order; players within a bucket keep the
// order of the input collection.
type Groups struct {
	order   []string
	players map[string][]model.Player
}

// Codes returns the canonical codes in first-seen order
func (g *Groups) Codes() []string {
	return g.order
}

// Players returns the players for a canonical code
func (g *Groups) Players(code string) []model.Player {
	return g.players[code]
}

// Len returns the total number of players across all buckets
func (g *Groups) Len() int {
	n := 0
	for _, players := range g.players {
		n += len(players)
	}
	return n
}

func (g *Groups) add(code string, p model.Player) {
	if _, ok := g.players[code]; !ok {
		g.order = append(g.order, code)
	}
	g.players[code] = append(g.players[code], p)
}

// Categorized partitions position groups into the four display
// buckets. Every canonical code present in the input appears in
// exactly one bucket.
type Categorized struct {
	Offense      *Groups
	Defense      *Groups
	SpecialTeams *Groups
	Other        *Groups
}

// Category membership sets. The sets are disjoint by construction; if
// a code were ever listed twice, Categorize resolves it offense first,
// then defense, then special teams.
var (
	offenseCodes = map[string]bool{
		"QB": true, "RB": true, "FB": true, "WR": true, "TE": true,
		"C": true, "OG": true, "OT": true, "OL": true,
	}
	defenseCodes = map[string]bool{
		"DT": true, "DE": true, "DL": true,
		"LB": true, "MLB": true, "OLB": true,
		"CB": true, "S": true, "FS": true, "SS": true, "DB": true,
	}
	specialTeamsCodes = map[string]bool{
		"K": true, "P": true, "LS": true, "KR": true, "PR": true,
	}
)

func newGroups() *Groups {
	return &Groups{players: make(map[string][]model.Player)}
}

// GroupByPosition buckets players by canonical position. A player with
// an empty position is bucketed under "Unknown". Never fails on
// malformed input.
func GroupByPosition(players []model.Player) *Groups {
	groups := newGroups()
	for _, p := range players {
		raw := p.Position
		if raw == "" {
			raw = unknownPosition
		}
		groups.add(position.Normalize(raw), p)
	}
	return groups
}

// Categorize partitions groups into offense, defense, special teams
// and other, preserving the input's bucket and player ordering.
func Categorize(groups *Groups) Categorized {
	out := Categorized{
		Offense:      newGroups(),
		Defense:      newGroups(),
		SpecialTeams: newGroups(),
		Other:        newGroups(),
	}

	for _, code := range groups.Codes() {
		var target *Groups
		switch {
		case offenseCodes[code]:
			target = out.Offense
		case defenseCodes[code]:
			target = out.Defense
		case specialTeamsCodes[code]:
			target = out.SpecialTeams
		default:
			target = out.Other
		}
		for _, p := range groups.Players(code) {
			target.add(code, p)
		}
	}

	return out
}
