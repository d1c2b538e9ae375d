package model

import "time"

// SessionID identifies a front-end browser session. It is the value of
// the session cookie and is unrelated to the backend's own credential.
type SessionID string

// SessionRecord is the only state the front end owns: the link between
// a browser session and the opaque backend credential it carries. The
// identity itself is never persisted; it is re-fetched from the auth
// gateway on each session check.
type SessionRecord struct {
	ID           SessionID `json:"id"`
	BackendToken string    `json:"backend_token"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Expired reports whether the record has passed its expiry
func (r *SessionRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
