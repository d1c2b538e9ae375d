package web_test

import (
	"context"

	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/teamhubhq/teamhub/internal/gateway/stub"
	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/services/session"
)

func TestProtectedRouteRequiresLogin(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/teams")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login?next=/teams", rr.Header().Get("Location"))
}

func TestDashboardRequiresLogin(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/coach/dashboard")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login?next=/coach/dashboard", rr.Header().Get("Location"))
}

func TestRoleMismatchBouncesToOwnDashboard(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAs(stub.SeedPlayerEmail)

	rr := ts.get("/coach/dashboard")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/player/dashboard", rr.Header().Get("Location"))
}

func TestDirectorRoutesClosedToCoach(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAs(stub.SeedCoachEmail)

	rr := ts.get("/players/new")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/coach/dashboard", rr.Header().Get("Location"))
}

func TestSharedRoutesOpenToEveryRole(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAs(stub.SeedPlayerEmail)

	for _, path := range []string{"/dashboard", "/teams", "/games"} {
		rr := ts.get(path)
		assert.Equal(t, http.StatusOK, rr.Code, "expected %s to render for a player", path)
	}
}

func TestLoginPageBouncesAuthenticatedUser(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAs(stub.SeedDirectorEmail)

	rr := ts.get("/login")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/athletic-director/dashboard", rr.Header().Get("Location"))
}

func TestStaleSessionCookieTreatedAsGuest(t *testing.T) {
	ts := newWebTestServer(t)

	// A cookie pointing at a session the server no longer knows
	ts.cookies.cookies[session.CookieName] = &http.Cookie{
		Name:  session.CookieName,
		Value: "th_nosuchsession",
	}

	rr := ts.get("/teams")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login?next=/teams", rr.Header().Get("Location"))
}

func TestRevokedBackendTokenTreatedAsGuest(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAs(stub.SeedCoachEmail)

	// Kill the backend session behind the front end's back. The next
	// guarded request re-checks the token and lands on the login page.
	cookie := ts.cookies.cookies[session.CookieName]
	record, err := ts.app.Storage.GetSession(context.Background(), model.SessionID(cookie.Value))
	assert.NoError(t, err)
	assert.NoError(t, ts.app.Backend.EndSession(context.Background(), record.BackendToken))

	rr := ts.get("/teams")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login?next=/teams", rr.Header().Get("Location"))
}

func TestExpiredSessionTreatedAsGuest(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAs(stub.SeedCoachEmail)

	// Jump past the session TTL
	ts.app.MockClock.Advance(8 * 24 * time.Hour)

	rr := ts.get("/teams")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login?next=/teams", rr.Header().Get("Location"))
}
