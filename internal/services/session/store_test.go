package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/testutil"
)

// fakeGateway is a controllable AuthGateway for store tests
type fakeGateway struct {
	identities  map[string]*model.User
	identityErr error
	logoutErr   error

	identityCalls []string
	logoutCalls   []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{identities: make(map[string]*model.User)}
}

func (g *fakeGateway) CurrentIdentity(ctx context.Context, token string) (*model.User, error) {
	g.identityCalls = append(g.identityCalls, token)
	if g.identityErr != nil {
		return nil, g.identityErr
	}
	identity, ok := g.identities[token]
	if !ok {
		return nil, errors.New("unauthenticated")
	}
	return identity, nil
}

func (g *fakeGateway) EndSession(ctx context.Context, token string) error {
	g.logoutCalls = append(g.logoutCalls, token)
	return g.logoutErr
}

func coachIdentity() *model.User {
	return &model.User{
		ID:              "u_coach",
		Name:            "Marcus Bell",
		Email:           "coach@teamhub.test",
		Role:            model.RoleCoach,
		IsAuthenticated: true,
		TeamID:          "t_hawks",
	}
}

type StoreSuite struct {
	suite.Suite
	gateway *fakeGateway
	ctx     context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.gateway = newFakeGateway()
	s.ctx = context.Background()
}

func (s *StoreSuite) newStore(token string) *Store {
	return NewStore(s.gateway, token, testutil.NopLogger())
}

func (s *StoreSuite) TestNewStoreStartsInitializing() {
	store := s.newStore("tok")

	s.Equal(StateInitializing, store.State())
	s.Nil(store.Identity())
	s.False(store.IsAuthenticated())
}

func (s *StoreSuite) TestCheckSessionResolvesAuthenticated() {
	s.gateway.identities["tok"] = coachIdentity()
	store := s.newStore("tok")

	store.CheckSession(s.ctx)

	s.Equal(StateAuthenticated, store.State())
	s.True(store.IsAuthenticated())
	s.Require().NotNil(store.Identity())
	s.Equal(model.RoleCoach, store.Identity().Role)
}

func (s *StoreSuite) TestCheckSessionWithoutTokenResolvesAnonymous() {
	store := s.newStore("")

	store.CheckSession(s.ctx)

	s.Equal(StateAnonymous, store.State())
	s.False(store.IsAuthenticated())
}

func (s *StoreSuite) TestCheckSessionGatewayErrorResolvesAnonymous() {
	s.gateway.identityErr = errors.New("backend down")
	store := s.newStore("tok")

	store.CheckSession(s.ctx)

	s.Equal(StateAnonymous, store.State())
	s.False(store.IsAuthenticated())
	s.Nil(store.Identity())
}

func (s *StoreSuite) TestCheckSessionUnauthenticatedIdentityResolvesAnonymous() {
	identity := coachIdentity()
	identity.IsAuthenticated = false
	s.gateway.identities["tok"] = identity
	store := s.newStore("tok")

	store.CheckSession(s.ctx)

	s.Equal(StateAnonymous, store.State())
	s.False(store.IsAuthenticated())
}

func (s *StoreSuite) TestCheckSessionIsRepeatable() {
	s.gateway.identities["tok"] = coachIdentity()
	store := s.newStore("tok")

	store.CheckSession(s.ctx)
	s.True(store.IsAuthenticated())

	// Token revoked on the backend; the next check resolves anonymous
	delete(s.gateway.identities, "tok")
	store.CheckSession(s.ctx)
	s.Equal(StateAnonymous, store.State())
	s.False(store.IsAuthenticated())
}

func (s *StoreSuite) TestLoginIsLocalOnly() {
	store := s.newStore("tok")

	store.Login(coachIdentity())

	s.Equal(StateAuthenticated, store.State())
	s.True(store.IsAuthenticated())
	s.Empty(s.gateway.identityCalls)
}

func (s *StoreSuite) TestLogoutTransitionsImmediately() {
	store := s.newStore("tok")
	store.Login(coachIdentity())

	store.Logout(s.ctx)

	s.Equal(StateLoggingOut, store.State())
	s.False(store.IsAuthenticated())
	s.Nil(store.Identity())
	s.Equal([]string{"tok"}, s.gateway.logoutCalls)
}

func (s *StoreSuite) TestLogoutSurvivesBackendFailure() {
	s.gateway.logoutErr = errors.New("backend down")
	store := s.newStore("tok")
	store.Login(coachIdentity())

	store.Logout(s.ctx)
	store.FinishLogout()

	s.Equal(StateAnonymous, store.State())
	s.False(store.IsAuthenticated())
	s.Empty(store.Token())
}

func (s *StoreSuite) TestLogoutWithoutTokenSkipsBackendCall() {
	store := s.newStore("")

	store.Logout(s.ctx)

	s.Empty(s.gateway.logoutCalls)
	s.Equal(StateLoggingOut, store.State())
}

func (s *StoreSuite) TestFinishLogoutLandsAnonymous() {
	store := s.newStore("tok")
	store.Login(coachIdentity())
	store.Logout(s.ctx)

	store.FinishLogout()

	s.Equal(StateAnonymous, store.State())
}

func (s *StoreSuite) TestRefreshReturnsToInitializing() {
	s.gateway.identities["tok"] = coachIdentity()
	store := s.newStore("tok")
	store.CheckSession(s.ctx)

	store.Refresh()

	s.Equal(StateInitializing, store.State())
	s.False(store.IsAuthenticated())

	store.CheckSession(s.ctx)
	s.True(store.IsAuthenticated())
}

func (s *StoreSuite) TestSetTokenReplacesCredential() {
	s.gateway.identities["fresh"] = coachIdentity()
	store := s.newStore("stale")

	store.SetToken("fresh")
	store.CheckSession(s.ctx)

	s.True(store.IsAuthenticated())
	s.Equal("fresh", store.Token())
}

func (s *StoreSuite) TestSubscribersSeeEveryTransition() {
	s.gateway.identities["tok"] = coachIdentity()
	store := s.newStore("tok")

	var seen []State
	store.Subscribe(func(state State) { seen = append(seen, state) })

	store.CheckSession(s.ctx)
	store.Logout(s.ctx)
	store.FinishLogout()

	s.Equal([]State{StateAuthenticated, StateLoggingOut, StateAnonymous}, seen)
}

func (s *StoreSuite) TestStateStrings() {
	s.Equal("initializing", StateInitializing.String())
	s.Equal("anonymous", StateAnonymous.String())
	s.Equal("authenticated", StateAuthenticated.String())
	s.Equal("logging_out", StateLoggingOut.String())
}
