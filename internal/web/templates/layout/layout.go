// Package layout holds the shared page chrome. Views are hand-built
// templ components; there is no generation step in this repo.
package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/teamhubhq/teamhub/internal/model"
)

// FlashMessage is a one-shot notice shown on the next page load
type FlashMessage struct {
	Type    string // "success", "error", "info"
	Message string
}

// PageData is the data every page shares
type PageData struct {
	Title string
	User  *model.User
	Flash *FlashMessage
}

// esc escapes a string for HTML interpolation
func esc(s string) string {
	return templ.EscapeString(s)
}

// Base wraps a page body with the document chrome: head, nav bar with
// the signed-in user's name and dashboard link, and flash notices.
func Base(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s - TeamHub</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
`, esc(data.Title)); err != nil {
			return err
		}

		if err := nav(data.User).Render(ctx, w); err != nil {
			return err
		}

		if data.Flash != nil {
			if _, err := fmt.Fprintf(w, `<div class="flash flash-%s">%s</div>
`, esc(data.Flash.Type), esc(data.Flash.Message)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<main class="content">
`); err != nil {
			return err
		}

		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</main>
</body>
</html>
`)
		return err
	})
}

func nav(user *model.User) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<nav class="navbar">
<a class="brand" href="/">TeamHub</a>
`); err != nil {
			return err
		}

		if user != nil {
			if _, err := fmt.Fprintf(w, `<a href="%s">Dashboard</a>
<a href="/teams">Teams</a>
<a href="/games">Games</a>
<span class="nav-user">%s</span>
<form method="post" action="/logout" class="nav-logout"><button type="submit">Log out</button></form>
`, esc(model.DashboardRoute(user.Role)), esc(user.Name)); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<a href="/login">Log in</a>
`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</nav>
`)
		return err
	})
}
