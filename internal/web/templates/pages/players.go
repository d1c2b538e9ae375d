package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/services/stats"
	"github.com/teamhubhq/teamhub/internal/web/templates/layout"
)

// PlayerData is the data for a player profile page
type PlayerData struct {
	layout.PageData
	Player    *model.Player
	Canonical string
	Lines     []stats.Line
	CanEdit   bool
	Error     string
}

// Player renders a player's profile with the position's full stat list
func Player(data PlayerData) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		if err := errorBox(w, data.Error); err != nil {
			return err
		}
		if data.Player == nil {
			return nil
		}

		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
<p class="position-badge">%s</p>
`, esc(data.Player.Name), esc(data.Canonical)); err != nil {
			return err
		}
		if err := playerCard(w, data.Player); err != nil {
			return err
		}
		if err := writeString(w, `<h2>Season Stats</h2>
`); err != nil {
			return err
		}
		if err := statTable(w, data.Lines); err != nil {
			return err
		}
		if !data.CanEdit {
			return nil
		}
		_, err := fmt.Fprintf(w, `<h2>Edit Player</h2>
<form method="post" action="/players/%s" class="edit-player">
<label for="position">Position</label>
<input type="text" id="position" name="position" value="%s">
<label for="jersey_number">Jersey number</label>
<input type="number" id="jersey_number" name="jersey_number" value="%d" min="0" max="99">
<button type="submit">Save</button>
</form>
`, esc(string(data.Player.ID)), esc(data.Player.Position), data.Player.JerseyNumber)
		return err
	})
	return layout.Base(data.PageData, body)
}

// NewPlayerData is the data for the create-player form
type NewPlayerData struct {
	layout.PageData
	Teams []model.Team
	Error string
}

// NewPlayer renders the create-player form
func NewPlayer(data NewPlayerData) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		if err := writeString(w, `<h1>Add Player</h1>
`); err != nil {
			return err
		}
		if err := errorBox(w, data.Error); err != nil {
			return err
		}

		if err := writeString(w, `<form method="post" action="/players">
<label for="name">Name</label>
<input type="text" id="name" name="name" required>
<label for="position">Position</label>
<input type="text" id="position" name="position">
<label for="jersey_number">Jersey number</label>
<input type="number" id="jersey_number" name="jersey_number" min="0" max="99">
<label for="team_id">Team</label>
<select id="team_id" name="team_id">
`); err != nil {
			return err
		}
		for _, t := range data.Teams {
			if _, err := fmt.Fprintf(w, `<option value="%s">%s %s</option>
`, esc(string(t.ID)), esc(t.City), esc(t.Name)); err != nil {
				return err
			}
		}
		return writeString(w, `</select>
<button type="submit">Add player</button>
</form>
`)
	})
	return layout.Base(data.PageData, body)
}
