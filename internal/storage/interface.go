package storage

import (
	"context"

	"github.com/teamhubhq/teamhub/internal/model"
)

// Storage persists front-end session records: the link between a
// session cookie and the opaque backend credential. Domain data is
// never stored here; the league backend is the single source of truth.
type Storage interface {
	SaveSession(ctx context.Context, rec *model.SessionRecord) error
	GetSession(ctx context.Context, id model.SessionID) (*model.SessionRecord, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
}
