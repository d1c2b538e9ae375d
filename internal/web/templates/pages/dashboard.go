package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/services/roster"
	"github.com/teamhubhq/teamhub/internal/services/stats"
	"github.com/teamhubhq/teamhub/internal/web/templates/layout"
)

// DirectorDashboardData is the athletic director's dashboard data
type DirectorDashboardData struct {
	layout.PageData
	Teams []model.Team
	Games []model.Game
	Error string
}

// DirectorDashboard renders the league-wide overview with the
// create-team form
func DirectorDashboard(data DirectorDashboardData) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		if err := writeString(w, `<h1>Athletic Director</h1>
`); err != nil {
			return err
		}
		if err := errorBox(w, data.Error); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<section class="summary-cards">
<div class="card"><span class="stat">%d</span> teams</div>
<div class="card"><span class="stat">%d</span> games</div>
</section>
`, len(data.Teams), len(data.Games)); err != nil {
			return err
		}

		if err := writeString(w, `<h2>Teams</h2>
<ul class="team-list">
`); err != nil {
			return err
		}
		for _, t := range data.Teams {
			if _, err := fmt.Fprintf(w, `<li><a href="/teams/%s">%s %s</a></li>
`, esc(string(t.ID)), esc(t.City), esc(t.Name)); err != nil {
				return err
			}
		}

		return writeString(w, `</ul>
<h2>Add Team</h2>
<form method="post" action="/teams">
<label for="name">Name</label>
<input type="text" id="name" name="name" required>
<label for="city">City</label>
<input type="text" id="city" name="city">
<label for="division">Division</label>
<input type="text" id="division" name="division">
<button type="submit">Create team</button>
</form>
<p><a href="/players/new">Add a player</a></p>
`)
	})
	return layout.Base(data.PageData, body)
}

// CoachDashboardData is the coach's dashboard data
type CoachDashboardData struct {
	layout.PageData
	Team   *model.Team
	Roster roster.Categorized
	Error  string
}

// CoachDashboard renders the coach's team roster grouped by category
func CoachDashboard(data CoachDashboardData) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		if err := writeString(w, `<h1>Coach</h1>
`); err != nil {
			return err
		}
		if err := errorBox(w, data.Error); err != nil {
			return err
		}
		if data.Team == nil {
			return writeString(w, `<p>No team is assigned to your account yet.</p>
`)
		}

		if _, err := fmt.Fprintf(w, `<h2>%s %s Roster</h2>
`, esc(data.Team.City), esc(data.Team.Name)); err != nil {
			return err
		}
		return categorySections(w, data.Roster)
	})
	return layout.Base(data.PageData, body)
}

// PlayerDashboardData is the player's dashboard data
type PlayerDashboardData struct {
	layout.PageData
	Player    *model.Player
	Canonical string
	Summary   []stats.Line
	Error     string
}

// PlayerDashboard renders the player's own summary stat card
func PlayerDashboard(data PlayerDashboardData) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		if err := writeString(w, `<h1>My Season</h1>
`); err != nil {
			return err
		}
		if err := errorBox(w, data.Error); err != nil {
			return err
		}
		if data.Player == nil {
			return writeString(w, `<p>No player profile is linked to your account yet.</p>
`)
		}

		if _, err := fmt.Fprintf(w, `<h2>%s <span class="position-badge">%s</span></h2>
`, esc(data.Player.Name), esc(data.Canonical)); err != nil {
			return err
		}
		if err := playerCard(w, data.Player); err != nil {
			return err
		}
		if err := statTable(w, data.Summary); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<p><a href="/players/%s">Full stats</a></p>
`, esc(string(data.Player.ID))); err != nil {
			return err
		}
		return nil
	})
	return layout.Base(data.PageData, body)
}

// GenericDashboard is the fallback dashboard for unrecognised roles
func GenericDashboard(data layout.PageData) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		return writeString(w, `<h1>Dashboard</h1>
<p>Your role does not have a dedicated dashboard. Browse <a href="/teams">teams</a> or <a href="/games">games</a>.</p>
`)
	})
	return layout.Base(data, body)
}
