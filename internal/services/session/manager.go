package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"github.com/teamhubhq/teamhub/internal/dependencies/clock"
	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/storage"
)

// CookieName is the front-end session cookie
const CookieName = "th_session"

// Config holds configuration for the session manager
type Config struct {
	SessionTTL time.Duration
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		SessionTTL: 7 * 24 * time.Hour,
	}
}

// Manager creates and persists session stores keyed by the session
// cookie. There is one manager per process; each request gets a Store
// built from the persisted record.
type Manager struct {
	storage storage.Storage
	gateway AuthGateway
	clock   clock.Clock
	logger  *slog.Logger

	sessionTTL time.Duration
}

// NewManager creates a session manager
func NewManager(store storage.Storage, gateway AuthGateway, clk clock.Clock, cfg Config, logger *slog.Logger) *Manager {
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = DefaultConfig().SessionTTL
	}
	return &Manager{
		storage:    store,
		gateway:    gateway,
		clock:      clk,
		logger:     logger,
		sessionTTL: cfg.SessionTTL,
	}
}

// Load builds the Store for a request's session cookie. A request with
// no cookie, or whose record is missing or expired, gets a store that
// will resolve Anonymous on its session check. Load never fails.
func (m *Manager) Load(r *http.Request) *Store {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return NewStore(m.gateway, "", m.logger)
	}
	return m.LoadByID(r.Context(), model.SessionID(cookie.Value))
}

// LoadByID builds the Store for a session id (cookie value or API
// bearer token)
func (m *Manager) LoadByID(ctx context.Context, id model.SessionID) *Store {
	rec, err := m.storage.GetSession(ctx, id)
	if err != nil || rec.Expired(m.clock.Now()) {
		return NewStore(m.gateway, "", m.logger)
	}
	return NewStore(m.gateway, rec.BackendToken, m.logger)
}

// Begin creates a new session record carrying a backend token, sets
// the session cookie, and returns the store for it. The caller has
// already exchanged credentials; it completes the login with
// Store.Login so the state reaches Authenticated before any redirect
// decision runs.
func (m *Manager) Begin(ctx context.Context, w http.ResponseWriter, backendToken string) (*Store, error) {
	now := m.clock.Now()
	rec := &model.SessionRecord{
		ID:           model.SessionID(generateID("th_")),
		BackendToken: backendToken,
		CreatedAt:    now,
		ExpiresAt:    now.Add(m.sessionTTL),
	}

	if err := m.storage.SaveSession(ctx, rec); err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(rec.ID),
		Path:     "/",
		MaxAge:   int(m.sessionTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return NewStore(m.gateway, backendToken, m.logger), nil
}

// BeginForToken creates a session record without a cookie (API logins)
func (m *Manager) BeginForToken(ctx context.Context, backendToken string) (*model.SessionRecord, error) {
	now := m.clock.Now()
	rec := &model.SessionRecord{
		ID:           model.SessionID(generateID("th_")),
		BackendToken: backendToken,
		CreatedAt:    now,
		ExpiresAt:    now.Add(m.sessionTTL),
	}
	if err := m.storage.SaveSession(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// End deletes the session record for a request and clears its cookie.
// Storage failure is logged; the cookie is cleared regardless so the
// user is never stuck on a protected page.
func (m *Manager) End(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		if err := m.storage.DeleteSession(ctx, model.SessionID(cookie.Value)); err != nil {
			m.logger.Warn("failed to delete session record", slog.String("error", err.Error()))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// EndByID deletes a session record by id (API logouts)
func (m *Manager) EndByID(ctx context.Context, id model.SessionID) {
	if err := m.storage.DeleteSession(ctx, id); err != nil {
		m.logger.Warn("failed to delete session record", slog.String("error", err.Error()))
	}
}

// generateID generates a random ID with a prefix
func generateID(prefix string) string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return prefix + base64.RawURLEncoding.EncodeToString(b)
}
