package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/teamhubhq/teamhub/internal/web/templates/layout"
)

// LoginData is the data for the login page
type LoginData struct {
	layout.PageData
	Email string
	Error string
	Next  string
}

// Login renders the login form. Invalid credentials re-render this
// page with Error set; that is the only place auth failures surface
// as a message rather than a redirect.
func Login(data LoginData) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="login">
<h1>Log in</h1>
`); err != nil {
			return err
		}

		if err := errorBox(w, data.Error); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w, `<form method="post" action="/login">
<input type="hidden" name="next" value="%s">
<label for="email">Email</label>
<input type="email" id="email" name="email" value="%s" required>
<label for="password">Password</label>
<input type="password" id="password" name="password" required>
<button type="submit">Log in</button>
</form>
</section>
`, esc(data.Next), esc(data.Email))
		return err
	})
	return layout.Base(data.PageData, body)
}
