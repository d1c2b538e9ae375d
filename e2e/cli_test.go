package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamhubhq/teamhub/internal/api"
	"github.com/teamhubhq/teamhub/internal/factory"
	"github.com/teamhubhq/teamhub/internal/gateway/stub"
	"github.com/teamhubhq/teamhub/internal/web"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath  string
	serverURL   string
	sessionFile string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "teamctl-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/teamctl")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp session file
	sessionFile := filepath.Join(t.TempDir(), "session")

	return &cliRunner{
		binaryPath:  binaryPath,
		serverURL:   serverURL,
		sessionFile: sessionFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--session-file", r.sessionFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// Create application with the in-process stub backend
	app, err := factory.New(factory.Config{
		BackendStub: true,
		Logger:      logger,
	})
	require.NoError(t, err)

	// Create routers
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:   logger,
		Sessions: app.Sessions,
		Backend:  app.Backend,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:   logger,
		Sessions: app.Sessions,
		Backend:  app.Backend,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
			_ = app.Close()
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type sessionResponse struct {
	SessionID       string `json:"sessionId"`
	State           string `json:"state"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	User            *struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Email  string `json:"email"`
		Role   string `json:"role"`
		TeamID string `json:"teamId"`
	} `json:"user"`
}

type teamResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Division string `json:"division"`
}

type rosterResponse struct {
	TeamID  string `json:"teamId"`
	Offense []struct {
		Position string `json:"position"`
		Players  []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"players"`
	} `json:"offense"`
	Defense      []json.RawMessage `json:"defense"`
	SpecialTeams []json.RawMessage `json:"specialTeams"`
	Other        []json.RawMessage `json:"other"`
}

type positionFieldsResponse struct {
	Position      string   `json:"position"`
	Fields        []string `json:"fields"`
	SummaryFields []string `json:"summaryFields"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_SessionLifecycle(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Log in as the seeded athletic director
	output, err := cli.run("login", "--email", stub.SeedDirectorEmail, "--password", stub.SeedPassword)
	require.NoError(t, err, "output: %s", output)

	var loginResp sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &loginResp))
	assert.NotEmpty(t, loginResp.SessionID)
	assert.True(t, loginResp.IsAuthenticated)
	require.NotNil(t, loginResp.User)
	assert.Equal(t, "AthleticDirector", loginResp.User.Role)

	// whoami reads the stored session
	output, err = cli.run("whoami")
	require.NoError(t, err, "output: %s", output)

	var whoResp sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &whoResp))
	assert.True(t, whoResp.IsAuthenticated)
	require.NotNil(t, whoResp.User)
	assert.Equal(t, loginResp.User.ID, whoResp.User.ID)

	// Log out and confirm the session is gone
	output, err = cli.run("logout")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("whoami")
	require.NoError(t, err, "output: %s", output)

	var afterResp sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &afterResp))
	assert.False(t, afterResp.IsAuthenticated)
	assert.Nil(t, afterResp.User)
}

func TestCLI_WrongPassword(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("login", "--email", stub.SeedDirectorEmail, "--password", "nope")
	require.Error(t, err)
	assert.Contains(t, output, "INVALID_CREDENTIALS")
}

func TestCLI_TeamsAndRoster(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("login", "--email", stub.SeedCoachEmail, "--password", stub.SeedPassword)
	require.NoError(t, err, "output: %s", output)

	// List teams
	output, err = cli.run("teams", "list")
	require.NoError(t, err, "output: %s", output)

	var teams []teamResponse
	require.NoError(t, json.Unmarshal([]byte(output), &teams))
	require.Len(t, teams, 2)

	// Roster for the seeded team
	output, err = cli.run("teams", "roster", "t_hawks")
	require.NoError(t, err, "output: %s", output)

	var roster rosterResponse
	require.NoError(t, json.Unmarshal([]byte(output), &roster))
	assert.Equal(t, "t_hawks", roster.TeamID)
	require.Len(t, roster.Offense, 3)
	positions := make([]string, 0, 3)
	for _, g := range roster.Offense {
		positions = append(positions, g.Position)
	}
	assert.Contains(t, positions, "QB")
	assert.Len(t, roster.Defense, 2)
	assert.Len(t, roster.SpecialTeams, 1)
	assert.Empty(t, roster.Other)
}

func TestCLI_TeamsRequireAuth(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("teams", "list")
	require.Error(t, err)
	assert.Contains(t, output, "UNAUTHORIZED")
}

func TestCLI_PositionFields(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Full label resolves through the alias table
	output, err := cli.run("positions", "fields", "Quarterback")
	require.NoError(t, err, "output: %s", output)

	var resp positionFieldsResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "QB", resp.Position)
	require.NotEmpty(t, resp.Fields)
	assert.Equal(t, "completions", resp.Fields[0])
	assert.Len(t, resp.SummaryFields, 4)
}
