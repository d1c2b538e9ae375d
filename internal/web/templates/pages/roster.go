package pages

import (
	"fmt"
	"io"

	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/services/roster"
	"github.com/teamhubhq/teamhub/internal/services/stats"
)

// categorySections renders the four category buckets in display order
func categorySections(w io.Writer, categorized roster.Categorized) error {
	sections := []struct {
		title  string
		groups *roster.Groups
	}{
		{"Offense", categorized.Offense},
		{"Defense", categorized.Defense},
		{"Special Teams", categorized.SpecialTeams},
		{"Other", categorized.Other},
	}

	for _, section := range sections {
		if section.groups.Len() == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, `<section class="roster-category">
<h2>%s</h2>
`, esc(section.title)); err != nil {
			return err
		}
		if err := positionGroups(w, section.groups); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</section>
`); err != nil {
			return err
		}
	}
	return nil
}

// positionGroups renders one table per canonical position bucket
func positionGroups(w io.Writer, groups *roster.Groups) error {
	for _, code := range groups.Codes() {
		if _, err := fmt.Fprintf(w, `<h3>%s</h3>
<table class="roster">
<thead><tr><th>#</th><th>Name</th><th>Age</th></tr></thead>
<tbody>
`, esc(code)); err != nil {
			return err
		}
		for _, p := range groups.Players(code) {
			if _, err := fmt.Fprintf(w, `<tr><td>%d</td><td><a href="/players/%s">%s</a></td><td>%d</td></tr>
`, p.JerseyNumber, esc(string(p.ID)), esc(p.Name), p.Age); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tbody>
</table>
`); err != nil {
			return err
		}
	}
	return nil
}

// statTable renders labeled stat lines; absent fields show the
// placeholder value
func statTable(w io.Writer, lines []stats.Line) error {
	if len(lines) == 0 {
		return writeString(w, `<p class="no-stats">No stats tracked for this position.</p>
`)
	}

	if err := writeString(w, `<table class="stats">
<tbody>
`); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, `<tr><th>%s</th><td>%s</td></tr>
`, esc(line.Label), esc(line.Value)); err != nil {
			return err
		}
	}
	return writeString(w, `</tbody>
</table>
`)
}

// playerCard renders a player's physical profile line
func playerCard(w io.Writer, p *model.Player) error {
	_, err := fmt.Fprintf(w, `<p class="player-meta">#%d &middot; %s &middot; %d&Prime; &middot; %d lbs &middot; age %d</p>
`, p.JerseyNumber, esc(p.Position), p.HeightInches, p.WeightPounds, p.Age)
	return err
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
