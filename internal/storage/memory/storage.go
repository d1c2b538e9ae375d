package memory

import (
	"context"
	"sync"

	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/storage"
)

// Storage is an in-memory implementation of the storage interface,
// suitable for single-process deployments and tests. Expiry is the
// session manager's concern; records are returned as stored.
type Storage struct {
	mu       sync.RWMutex
	sessions map[model.SessionID]*model.SessionRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions: make(map[model.SessionID]*model.SessionRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveSession(ctx context.Context, rec *model.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[rec.ID] = rec
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.SessionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return rec, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
