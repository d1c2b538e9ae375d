package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/web/templates/layout"
)

// HomeData is the data for the public landing page
type HomeData struct {
	layout.PageData
}

// Home renders the public landing page
func Home(data HomeData) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="hero">
<h1>TeamHub</h1>
<p>Team and league management for athletic directors, coaches and players.</p>
`); err != nil {
			return err
		}

		if data.User != nil {
			if _, err := fmt.Fprintf(w, `<p><a class="button" href="%s">Go to your dashboard</a></p>
`, esc(model.DashboardRoute(data.User.Role))); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<p><a class="button" href="/login">Log in</a></p>
`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</section>
`)
		return err
	})
	return layout.Base(data.PageData, body)
}
