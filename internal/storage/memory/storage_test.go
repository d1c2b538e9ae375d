package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/teamhubhq/teamhub/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) record(id string) *model.SessionRecord {
	now := time.Now()
	return &model.SessionRecord{
		ID:           model.SessionID(id),
		BackendToken: "backend-token",
		CreatedAt:    now,
		ExpiresAt:    now.Add(time.Hour),
	}
}

func (s *StorageSuite) TestSaveAndGetSession() {
	rec := s.record("th_abc")

	err := s.storage.SaveSession(s.ctx, rec)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "th_abc")
	s.Require().NoError(err)
	s.Equal(rec.ID, retrieved.ID)
	s.Equal(rec.BackendToken, retrieved.BackendToken)
}

func (s *StorageSuite) TestGetMissingSession() {
	_, err := s.storage.GetSession(s.ctx, "th_missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.record("th_abc")))

	s.Require().NoError(s.storage.DeleteSession(s.ctx, "th_abc"))

	_, err := s.storage.GetSession(s.ctx, "th_abc")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteMissingSessionIsNoop() {
	s.NoError(s.storage.DeleteSession(s.ctx, "th_missing"))
}

func (s *StorageSuite) TestOverwriteSession() {
	rec := s.record("th_abc")
	s.Require().NoError(s.storage.SaveSession(s.ctx, rec))

	rec2 := s.record("th_abc")
	rec2.BackendToken = "rotated"
	s.Require().NoError(s.storage.SaveSession(s.ctx, rec2))

	retrieved, err := s.storage.GetSession(s.ctx, "th_abc")
	s.Require().NoError(err)
	s.Equal("rotated", retrieved.BackendToken)
}
