package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamhubhq/teamhub/internal/model"
)

func player(id, name, pos string) model.Player {
	return model.Player{ID: model.PlayerID(id), Name: name, Position: pos}
}

func TestGroupByPositionNormalizes(t *testing.T) {
	groups := GroupByPosition([]model.Player{
		player("p1", "Price", "Quarterback"),
		player("p2", "Vance", "QB"),
	})

	require.Equal(t, []string{"QB"}, groups.Codes())
	assert.Len(t, groups.Players("QB"), 2)
}

func TestGroupByPositionPreservesOrder(t *testing.T) {
	groups := GroupByPosition([]model.Player{
		player("p1", "Holt", "Cornerback"),
		player("p2", "Price", "Quarterback"),
		player("p3", "Reyes", "Wide Receiver"),
		player("p4", "Vance", "QB"),
	})

	// Bucket order is first-seen; players keep input order within a bucket
	assert.Equal(t, []string{"CB", "QB", "WR"}, groups.Codes())
	qbs := groups.Players("QB")
	require.Len(t, qbs, 2)
	assert.Equal(t, "Price", qbs[0].Name)
	assert.Equal(t, "Vance", qbs[1].Name)
}

func TestGroupByPositionEmptyPositionIsUnknown(t *testing.T) {
	groups := GroupByPosition([]model.Player{
		player("p1", "Moss", ""),
	})

	assert.Equal(t, []string{"Unknown"}, groups.Codes())
	assert.Len(t, groups.Players("Unknown"), 1)
}

func TestGroupByPositionUnrecognisedStringsStayDistinct(t *testing.T) {
	groups := GroupByPosition([]model.Player{
		player("p1", "A", "Mystery Position"),
		player("p2", "B", "Utility"),
	})

	assert.Equal(t, []string{"Mystery Position", "Utility"}, groups.Codes())
}

func TestGroupByPositionEmptyInput(t *testing.T) {
	groups := GroupByPosition(nil)
	assert.Empty(t, groups.Codes())
	assert.Equal(t, 0, groups.Len())
}

func TestCategorizeBuckets(t *testing.T) {
	groups := GroupByPosition([]model.Player{
		player("p1", "Price", "Quarterback"),
		player("p2", "Holt", "Cornerback"),
		player("p3", "Cho", "Kicker"),
		player("p4", "X", "Mystery Position"),
		player("p5", "Moss", ""),
	})

	cat := Categorize(groups)

	assert.Equal(t, []string{"QB"}, cat.Offense.Codes())
	assert.Equal(t, []string{"CB"}, cat.Defense.Codes())
	assert.Equal(t, []string{"K"}, cat.SpecialTeams.Codes())
	assert.Equal(t, []string{"Mystery Position", "Unknown"}, cat.Other.Codes())
}

func TestCategorizeEveryPlayerLandsInExactlyOneBucket(t *testing.T) {
	players := []model.Player{
		player("p1", "A", "Quarterback"),
		player("p2", "B", "Fullback"),
		player("p3", "C", "Middle Linebacker"),
		player("p4", "D", "Free Safety"),
		player("p5", "E", "Punt Returner"),
		player("p6", "F", "Long Snapper"),
		player("p7", "G", "Water Boy"),
		player("p8", "H", ""),
	}

	cat := Categorize(GroupByPosition(players))

	total := cat.Offense.Len() + cat.Defense.Len() + cat.SpecialTeams.Len() + cat.Other.Len()
	assert.Equal(t, len(players), total)
}

func TestCategorizePreservesGroupOrder(t *testing.T) {
	groups := GroupByPosition([]model.Player{
		player("p1", "A", "Wide Receiver"),
		player("p2", "B", "Quarterback"),
		player("p3", "C", "Running Back"),
	})

	cat := Categorize(groups)
	assert.Equal(t, []string{"WR", "QB", "RB"}, cat.Offense.Codes())
}

func TestCategorizeEmptyGroups(t *testing.T) {
	cat := Categorize(GroupByPosition(nil))

	assert.Empty(t, cat.Offense.Codes())
	assert.Empty(t, cat.Defense.Codes())
	assert.Empty(t, cat.SpecialTeams.Codes())
	assert.Empty(t, cat.Other.Codes())
}
