package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/teamhubhq/teamhub/internal/api/apierr"
	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/services/session"
)

type contextKey string

const (
	identityContextKey  contextKey = "identity"
	storeContextKey     contextKey = "store"
	sessionIDContextKey contextKey = "sessionID"
)

// Auth creates authentication middleware. The bearer token is the
// session id issued by POST /session; the backend token never leaves
// the server.
func Auth(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid := extractSessionID(r)
			if sid == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			store := sessions.LoadByID(r.Context(), model.SessionID(sid))
			store.CheckSession(r.Context())
			if !store.IsAuthenticated() {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, sessionIDContextKey, model.SessionID(sid))
			ctx = context.WithValue(ctx, storeContextKey, store)
			ctx = context.WithValue(ctx, identityContextKey, store.Identity())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth resolves the session if a bearer token is present but
// doesn't require it
func OptionalAuth(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sid := extractSessionID(r); sid != "" {
				store := sessions.LoadByID(r.Context(), model.SessionID(sid))
				store.CheckSession(r.Context())
				if store.IsAuthenticated() {
					ctx := r.Context()
					ctx = context.WithValue(ctx, sessionIDContextKey, model.SessionID(sid))
					ctx = context.WithValue(ctx, storeContextKey, store)
					ctx = context.WithValue(ctx, identityContextKey, store.Identity())
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractSessionID extracts the session id from the request
func extractSessionID(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	cookie, err := r.Cookie(session.CookieName)
	if err == nil {
		return cookie.Value
	}

	return ""
}

// GetIdentity returns the authenticated user from the request context
func GetIdentity(ctx context.Context) *model.User {
	user, _ := ctx.Value(identityContextKey).(*model.User)
	return user
}

// GetStore returns the session store from the request context
func GetStore(ctx context.Context) *session.Store {
	store, _ := ctx.Value(storeContextKey).(*session.Store)
	return store
}

// GetSessionID returns the session id from the request context
func GetSessionID(ctx context.Context) model.SessionID {
	sid, _ := ctx.Value(sessionIDContextKey).(model.SessionID)
	return sid
}

// MustGetIdentity returns the authenticated user or panics
func MustGetIdentity(ctx context.Context) *model.User {
	user := GetIdentity(ctx)
	if user == nil {
		panic("no identity in context - auth middleware not applied?")
	}
	return user
}
