package handler

import (
	"net/http"
	"strings"

	"github.com/teamhubhq/teamhub/internal/gateway"
	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/services/session"
	"github.com/teamhubhq/teamhub/internal/web/middleware"
	"github.com/teamhubhq/teamhub/internal/web/templates/layout"
	"github.com/teamhubhq/teamhub/internal/web/templates/pages"
)

// AuthHandler handles the login page and the login/logout actions
type AuthHandler struct {
	sessions *session.Manager
	backend  *gateway.Client
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(sessions *session.Manager, backend *gateway.Client) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		backend:  backend,
	}
}

// LoginPage renders the login form (guest-only; the guard redirects
// authenticated users to their dashboard before this runs)
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := pages.LoginData{
		PageData: layout.PageData{
			Title: "Log in",
			Flash: middleware.GetFlash(r.Context()),
		},
		Next: r.URL.Query().Get("next"),
	}
	renderPage(w, r, pages.Login(data))
}

// Login handles the login form submission: it exchanges credentials
// with the auth gateway, then completes the local login so the session
// reaches Authenticated before the role redirect is chosen.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "Invalid form data", "", "")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	next := r.FormValue("next")

	if email == "" || password == "" {
		h.renderLoginError(w, r, "Email and password are required", email, next)
		return
	}

	result, err := h.backend.SubmitCredentials(r.Context(), email, password)
	if err != nil {
		// Invalid credentials surface on the form; local state is
		// unchanged
		h.renderLoginError(w, r, "Invalid email or password", email, next)
		return
	}

	store, err := h.sessions.Begin(r.Context(), w, result.Token)
	if err != nil {
		h.renderLoginError(w, r, "Could not start a session, please try again", email, next)
		return
	}
	store.Login(&result.User)

	middleware.SetFlash(w, "success", "Welcome back, "+result.User.Name+"!")

	if next != "" && strings.HasPrefix(next, "/") {
		http.Redirect(w, r, next, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, model.DashboardRoute(result.User.Role), http.StatusSeeOther)
}

// Logout flips the session to logging-out, attempts the backend
// logout, clears the local session and issues the hard redirect to the
// public landing route. Backend failure never leaves the user stuck on
// a protected page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	store := middleware.GetStore(r.Context())
	if store == nil {
		store = h.sessions.Load(r)
	}

	store.Logout(r.Context())
	h.sessions.End(r.Context(), w, r)

	middleware.SetFlash(w, "info", "You have been logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
	store.FinishLogout()
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, errorMsg, email, next string) {
	data := pages.LoginData{
		PageData: layout.PageData{Title: "Log in"},
		Email:    email,
		Error:    errorMsg,
		Next:     next,
	}
	renderPage(w, r, pages.Login(data))
}
