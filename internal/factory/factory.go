package factory

import (
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/teamhubhq/teamhub/internal/dependencies/clock"
	"github.com/teamhubhq/teamhub/internal/gateway"
	"github.com/teamhubhq/teamhub/internal/gateway/stub"
	"github.com/teamhubhq/teamhub/internal/services/session"
	"github.com/teamhubhq/teamhub/internal/storage"
	"github.com/teamhubhq/teamhub/internal/storage/memory"
	redisstorage "github.com/teamhubhq/teamhub/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Backend gateway and session management
	Backend  *gateway.Client
	Sessions *session.Manager

	stubListener net.Listener
}

// Config holds configuration for the application factory
type Config struct {
	// BackendURL is the base URL of the league backend
	BackendURL string
	// BackendStub runs an in-process stub backend on a loopback
	// listener instead of calling BackendURL
	BackendStub bool
	// SessionConfig holds session settings (optional)
	// If zero value, defaults to session.DefaultConfig()
	SessionConfig session.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Resolve the backend: a stub listener for development, a real
	// URL otherwise
	backendURL := cfg.BackendURL
	var stubListener net.Listener
	if cfg.BackendStub {
		lis, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return nil, err
		}
		stubServer := stub.New(logger)
		go func() { _ = http.Serve(lis, stubServer.Handler()) }()
		stubListener = lis
		backendURL = "http://" + lis.Addr().String()
		logger.Info("stub backend listening", slog.String("addr", backendURL))
	}
	if backendURL == "" {
		return nil, errors.New("BackendURL required unless BackendStub is set")
	}

	clk := clock.New()
	backend := gateway.NewClient(backendURL)

	// Use default session config if not provided
	sessionCfg := cfg.SessionConfig
	if sessionCfg.SessionTTL == 0 {
		sessionCfg = session.DefaultConfig()
	}

	app := newWithDependencies(store, clk, backend, sessionCfg, logger)
	app.stubListener = stubListener
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, backend *gateway.Client, sessionCfg session.Config, logger *slog.Logger) *App {
	sessions := session.NewManager(store, backend, clk, sessionCfg, logger)

	return &App{
		Storage:  store,
		Clock:    clk,
		Backend:  backend,
		Sessions: sessions,
	}
}

// Close releases resources held by the app
func (a *App) Close() error {
	var errs []error

	if a.stubListener != nil {
		if err := a.stubListener.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if closer, ok := a.Storage.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
