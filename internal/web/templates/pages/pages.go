// Package pages holds the per-route view components
package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/teamhubhq/teamhub/internal/web/templates/layout"
)

// esc escapes a string for HTML interpolation
func esc(s string) string {
	return templ.EscapeString(s)
}

// component wraps a render function as a templ.Component
func component(render func(ctx context.Context, w io.Writer) error) templ.Component {
	return templ.ComponentFunc(render)
}

// errorBox renders an inline fetch-error notice. Domain fetch errors
// render here rather than crashing the view.
func errorBox(w io.Writer, message string) error {
	if message == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, `<div class="error-box">%s</div>
`, esc(message))
	return err
}

// Loading is the neutral placeholder rendered while a session is
// initializing or logging out. No redirect is issued from this page;
// it refreshes itself so the resolved state takes over.
func Loading(data layout.PageData) templ.Component {
	body := component(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="loading" aria-busy="true">
<p>Loading&hellip;</p>
<meta http-equiv="refresh" content="1">
</div>
`)
		return err
	})
	return layout.Base(data, body)
}
