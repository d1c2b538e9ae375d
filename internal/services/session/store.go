// Package session owns the front end's only mutable state: the link
// between a browser session and its authenticated identity. A Store is
// one session's state machine; the Manager creates and persists stores
// keyed by the session cookie.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/teamhubhq/teamhub/internal/model"
)

// AuthGateway is the slice of the backend the session layer needs
type AuthGateway interface {
	CurrentIdentity(ctx context.Context, token string) (*model.User, error)
	EndSession(ctx context.Context, token string) error
}

// Store is the state machine for one browser session. It starts in
// StateInitializing and resolves to exactly one of StateAuthenticated
// or StateAnonymous after a session check. It has a single writer path
// (its own operations); every guarded view reads it.
type Store struct {
	gateway AuthGateway
	logger  *slog.Logger

	mu       sync.Mutex
	token    string
	state    State
	identity *model.User
	subs     []func(State)
}

// NewStore creates a store in StateInitializing carrying the opaque
// backend token (empty for a session with no credential)
func NewStore(gateway AuthGateway, token string, logger *slog.Logger) *Store {
	return &Store{
		gateway: gateway,
		logger:  logger,
		token:   token,
		state:   StateInitializing,
	}
}

// State returns the current lifecycle state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Identity returns the authenticated identity, or nil
func (s *Store) Identity() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Token returns the opaque backend credential the session carries
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated is derived, never stored: true only in
// StateAuthenticated and only if the identity marks itself
// authenticated.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateAuthenticated && s.identity != nil && s.identity.IsAuthenticated
}

// Subscribe registers a callback fired after every state transition.
// Redirect decisions must re-evaluate on each change, so guards use
// live reads; subscriptions exist for views that cache derived state.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// CheckSession queries the auth gateway for the current identity and
// resolves the store to Authenticated or Anonymous. Failures of any
// kind (network, auth) resolve to Anonymous and are never returned to
// the caller.
func (s *Store) CheckSession(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	identity, err := s.gateway.CurrentIdentity(ctx, token)
	if err != nil || identity == nil || !identity.IsAuthenticated {
		if err != nil {
			s.logger.Debug("session check resolved anonymous", slog.String("reason", err.Error()))
		}
		s.transition(StateAnonymous, nil)
		return
	}

	s.transition(StateAuthenticated, identity)
}

// Login records an identity the caller already exchanged credentials
// for. It is a local state update only; no network I/O happens here.
func (s *Store) Login(identity *model.User) {
	s.transition(StateAuthenticated, identity)
}

// Logout flips the store to LoggingOut immediately so dependent views
// stop rendering protected content, clears the identity, and attempts
// the backend logout. The backend call is fire-and-forget: its failure
// is logged and never blocks or reverses the local transition.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	s.token = ""
	s.mu.Unlock()

	s.transition(StateLoggingOut, nil)

	if token == "" {
		return
	}
	if err := s.gateway.EndSession(ctx, token); err != nil {
		s.logger.Warn("backend logout failed", slog.String("error", err.Error()))
	}
}

// FinishLogout lands the store in Anonymous once the redirect to the
// public landing route has been issued
func (s *Store) FinishLogout() {
	s.transition(StateAnonymous, nil)
}

// Refresh forces the store back into Initializing so the next session
// check re-resolves it
func (s *Store) Refresh() {
	s.transition(StateInitializing, nil)
}

// SetToken replaces the backend credential (after a fresh login)
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *Store) transition(state State, identity *model.User) {
	s.mu.Lock()
	s.state = state
	s.identity = identity
	subs := make([]func(State), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}
