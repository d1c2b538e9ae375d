package factory

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"time"

	"github.com/teamhubhq/teamhub/internal/dependencies/mocks"
	"github.com/teamhubhq/teamhub/internal/gateway"
	"github.com/teamhubhq/teamhub/internal/gateway/stub"
	"github.com/teamhubhq/teamhub/internal/services/session"
	"github.com/teamhubhq/teamhub/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks and fixtures for test control
	MockClock   *mocks.MockClock
	StubBackend *httptest.Server
}

// NewTestApp creates an App configured for testing: in-memory
// storage, a controllable clock and the seeded stub backend
func NewTestApp() *TestApp {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	backendServer := httptest.NewServer(stub.New(logger).Handler())
	backend := gateway.NewClient(backendServer.URL)

	app := newWithDependencies(store, mockClock, backend, session.DefaultConfig(), logger)

	return &TestApp{
		App:         app,
		MockClock:   mockClock,
		StubBackend: backendServer,
	}
}

// Close shuts down the stub backend
func (t *TestApp) Close() {
	t.StubBackend.Close()
}
