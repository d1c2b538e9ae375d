package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/services/roster"
	"github.com/teamhubhq/teamhub/internal/web/templates/layout"
)

// TeamsData is the data for the teams list page
type TeamsData struct {
	layout.PageData
	Teams []model.Team
	Error string
}

// Teams renders the team list
func Teams(data TeamsData) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		if err := writeString(w, `<h1>Teams</h1>
`); err != nil {
			return err
		}
		if err := errorBox(w, data.Error); err != nil {
			return err
		}

		if err := writeString(w, `<table class="teams">
<thead><tr><th>Team</th><th>City</th><th>Division</th></tr></thead>
<tbody>
`); err != nil {
			return err
		}
		for _, t := range data.Teams {
			if _, err := fmt.Fprintf(w, `<tr><td><a href="/teams/%s">%s</a></td><td>%s</td><td>%s</td></tr>
`, esc(string(t.ID)), esc(t.Name), esc(t.City), esc(t.Division)); err != nil {
				return err
			}
		}
		return writeString(w, `</tbody>
</table>
`)
	})
	return layout.Base(data.PageData, body)
}

// TeamData is the data for a single team's roster page
type TeamData struct {
	layout.PageData
	Team   *model.Team
	Roster roster.Categorized
	Error  string
}

// Team renders a team's roster grouped by position category
func Team(data TeamData) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		if data.Team != nil {
			if _, err := fmt.Fprintf(w, `<h1>%s %s</h1>
`, esc(data.Team.City), esc(data.Team.Name)); err != nil {
				return err
			}
		}
		if err := errorBox(w, data.Error); err != nil {
			return err
		}
		if data.Error != "" {
			return nil
		}
		return categorySections(w, data.Roster)
	})
	return layout.Base(data.PageData, body)
}
