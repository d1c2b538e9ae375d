package handler

import (
	"net/http"

	"github.com/teamhubhq/teamhub/internal/web/middleware"
	"github.com/teamhubhq/teamhub/internal/web/templates/layout"
	"github.com/teamhubhq/teamhub/internal/web/templates/pages"
)

// HomeHandler handles the public landing page
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home renders the landing page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := pages.HomeData{
		PageData: layout.PageData{
			Title: "Home",
			User:  middleware.GetIdentity(r.Context()),
			Flash: middleware.GetFlash(r.Context()),
		},
	}
	renderPage(w, r, pages.Home(data))
}
