package middleware

import (
	"context"
	"net/http"

	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/services/session"
	"github.com/teamhubhq/teamhub/internal/web/templates/layout"
	"github.com/teamhubhq/teamhub/internal/web/templates/pages"
)

type contextKey string

const (
	identityContextKey contextKey = "identity"
	storeContextKey    contextKey = "store"
)

// GetIdentity retrieves the authenticated identity from the request
// context. Returns nil if no identity is authenticated.
func GetIdentity(ctx context.Context) *model.User {
	user, _ := ctx.Value(identityContextKey).(*model.User)
	return user
}

// GetStore retrieves the session store from the request context
func GetStore(ctx context.Context) *session.Store {
	store, _ := ctx.Value(storeContextKey).(*session.Store)
	return store
}

// LoginRoute is where unauthenticated requests for protected views go
const LoginRoute = "/login"

// resolve loads the request's session store and runs the session
// check if it has not resolved yet. Guard decisions always read the
// live state afterwards; nothing is cached across transitions.
func resolve(sessions *session.Manager, r *http.Request) *session.Store {
	store := sessions.Load(r)
	if store.State() == session.StateInitializing {
		store.CheckSession(r.Context())
	}
	return store
}

// Protect wraps a protected view. While the session is initializing or
// logging out it renders a neutral loading placeholder and performs no
// redirect. Once resolved: unauthenticated requests redirect to the
// login route; authenticated requests whose role is not in the
// allow-list redirect to their own default dashboard; everything else
// renders the view with the identity in context.
func Protect(sessions *session.Manager, roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store := resolve(sessions, r)

			switch store.State() {
			case session.StateInitializing, session.StateLoggingOut:
				renderLoading(w, r)
				return
			}

			if !store.IsAuthenticated() {
				http.Redirect(w, r, LoginRoute+"?next="+r.URL.Path, http.StatusSeeOther)
				return
			}

			identity := store.Identity()
			if len(roles) > 0 && !roleAllowed(identity.Role, roles) {
				// Not a login bounce: send the user to the dashboard
				// their own role belongs on
				http.Redirect(w, r, model.DashboardRoute(identity.Role), http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, identity)
			ctx = context.WithValue(ctx, storeContextKey, store)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GuestOnly wraps views that only make sense logged out (the login
// page). Authenticated users are redirected to their own dashboard
// instead of seeing the view.
func GuestOnly(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store := resolve(sessions, r)

			switch store.State() {
			case session.StateInitializing, session.StateLoggingOut:
				renderLoading(w, r)
				return
			}

			if store.IsAuthenticated() {
				http.Redirect(w, r, model.DashboardRoute(store.Identity().Role), http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), storeContextKey, store)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth resolves the session without gating: public views use
// it to show the signed-in user in the nav
func OptionalAuth(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store := resolve(sessions, r)

			ctx := context.WithValue(r.Context(), storeContextKey, store)
			if store.IsAuthenticated() {
				ctx = context.WithValue(ctx, identityContextKey, store.Identity())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func roleAllowed(role model.Role, allowed []model.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

func renderLoading(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Loading(layout.PageData{Title: "Loading"}).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
