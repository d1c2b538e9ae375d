package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/teamhubhq/teamhub/internal/dependencies/mocks"
	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/storage/memory"
	"github.com/teamhubhq/teamhub/internal/testutil"
)

type ManagerSuite struct {
	suite.Suite
	storage *memory.Storage
	gateway *fakeGateway
	clock   *mocks.MockClock
	manager *Manager
	ctx     context.Context
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func (s *ManagerSuite) SetupTest() {
	s.storage = memory.New()
	s.gateway = newFakeGateway()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.manager = NewManager(s.storage, s.gateway, s.clock, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ManagerSuite) begin(token string) (*Store, *http.Cookie) {
	rr := httptest.NewRecorder()
	store, err := s.manager.Begin(s.ctx, rr, token)
	s.Require().NoError(err)

	cookies := rr.Result().Cookies()
	s.Require().Len(cookies, 1)
	return store, cookies[0]
}

func (s *ManagerSuite) requestWithCookie(cookie *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	return req
}

func (s *ManagerSuite) TestBeginSetsSessionCookie() {
	_, cookie := s.begin("tok")

	s.Equal(CookieName, cookie.Name)
	s.NotEmpty(cookie.Value)
	s.True(cookie.HttpOnly)
}

func (s *ManagerSuite) TestBeginPersistsRecord() {
	_, cookie := s.begin("tok")

	rec, err := s.storage.GetSession(s.ctx, model.SessionID(cookie.Value))
	s.Require().NoError(err)
	s.Equal("tok", rec.BackendToken)
	s.Equal(s.clock.Now(), rec.CreatedAt)
	s.Equal(s.clock.Now().Add(7*24*time.Hour), rec.ExpiresAt)
}

func (s *ManagerSuite) TestLoadRestoresTokenFromCookie() {
	s.gateway.identities["tok"] = coachIdentity()
	_, cookie := s.begin("tok")

	store := s.manager.Load(s.requestWithCookie(cookie))
	s.Equal(StateInitializing, store.State())

	store.CheckSession(s.ctx)
	s.True(store.IsAuthenticated())
}

func (s *ManagerSuite) TestLoadWithoutCookieResolvesAnonymous() {
	store := s.manager.Load(httptest.NewRequest(http.MethodGet, "/", nil))

	store.CheckSession(s.ctx)
	s.Equal(StateAnonymous, store.State())
	s.Empty(store.Token())
}

func (s *ManagerSuite) TestLoadUnknownSessionResolvesAnonymous() {
	store := s.manager.Load(s.requestWithCookie(&http.Cookie{Name: CookieName, Value: "th_bogus"}))

	store.CheckSession(s.ctx)
	s.Equal(StateAnonymous, store.State())
}

func (s *ManagerSuite) TestLoadExpiredSessionResolvesAnonymous() {
	s.gateway.identities["tok"] = coachIdentity()
	_, cookie := s.begin("tok")

	s.clock.Advance(7*24*time.Hour + time.Minute)

	store := s.manager.Load(s.requestWithCookie(cookie))
	store.CheckSession(s.ctx)
	s.Equal(StateAnonymous, store.State())
	s.Empty(store.Token())
}

func (s *ManagerSuite) TestBeginForTokenReturnsRecordWithoutCookie() {
	rec, err := s.manager.BeginForToken(s.ctx, "tok")
	s.Require().NoError(err)
	s.NotEmpty(rec.ID)

	store := s.manager.LoadByID(s.ctx, rec.ID)
	s.Equal("tok", store.Token())
}

func (s *ManagerSuite) TestEndDeletesRecordAndClearsCookie() {
	_, cookie := s.begin("tok")

	rr := httptest.NewRecorder()
	s.manager.End(s.ctx, rr, s.requestWithCookie(cookie))

	_, err := s.storage.GetSession(s.ctx, model.SessionID(cookie.Value))
	s.ErrorIs(err, model.ErrSessionNotFound)

	cleared := rr.Result().Cookies()
	s.Require().Len(cleared, 1)
	s.Equal(CookieName, cleared[0].Name)
	s.Empty(cleared[0].Value)
	s.Negative(cleared[0].MaxAge)
}

func (s *ManagerSuite) TestEndWithoutCookieStillClearsCookie() {
	rr := httptest.NewRecorder()
	s.manager.End(s.ctx, rr, httptest.NewRequest(http.MethodPost, "/logout", nil))

	cleared := rr.Result().Cookies()
	s.Require().Len(cleared, 1)
	s.Negative(cleared[0].MaxAge)
}

func (s *ManagerSuite) TestEndByIDDeletesRecord() {
	rec, err := s.manager.BeginForToken(s.ctx, "tok")
	s.Require().NoError(err)

	s.manager.EndByID(s.ctx, rec.ID)

	_, err = s.storage.GetSession(s.ctx, rec.ID)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ManagerSuite) TestSessionIDsAreUnique() {
	rec1, err := s.manager.BeginForToken(s.ctx, "tok")
	s.Require().NoError(err)
	rec2, err := s.manager.BeginForToken(s.ctx, "tok")
	s.Require().NoError(err)

	s.NotEqual(rec1.ID, rec2.ID)
}
