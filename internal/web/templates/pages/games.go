package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/web/templates/layout"
)

// GamesData is the data for the schedule page
type GamesData struct {
	layout.PageData
	Games []model.Game
	// TeamNames resolves team ids for display; unresolved ids fall
	// back to the raw id
	TeamNames map[model.TeamID]string
	Error     string
}

func (d GamesData) teamName(id model.TeamID) string {
	if name, ok := d.TeamNames[id]; ok {
		return name
	}
	return string(id)
}

// Games renders the game schedule with scores where played
func Games(data GamesData) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		if err := writeString(w, `<h1>Games</h1>
`); err != nil {
			return err
		}
		if err := errorBox(w, data.Error); err != nil {
			return err
		}

		if err := writeString(w, `<table class="games">
<thead><tr><th>Date</th><th>Matchup</th><th>Score</th><th>Location</th></tr></thead>
<tbody>
`); err != nil {
			return err
		}
		for _, g := range data.Games {
			score := "&mdash;"
			if g.Played() {
				score = fmt.Sprintf("%d&ndash;%d", *g.HomeScore, *g.AwayScore)
			}
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s vs %s</td><td>%s</td><td>%s</td></tr>
`, esc(g.Date), esc(data.teamName(g.HomeTeamID)), esc(data.teamName(g.AwayTeamID)), score, esc(g.Location)); err != nil {
				return err
			}
		}
		return writeString(w, `</tbody>
</table>
`)
	})
	return layout.Base(data.PageData, body)
}
