package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/teamhubhq/teamhub/internal/model"
	"github.com/teamhubhq/teamhub/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface,
// used when the front end runs as more than one replica
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveSession(ctx context.Context, rec *model.SessionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	ttl := s.cfg.SessionTTL
	if !rec.ExpiresAt.IsZero() {
		if until := time.Until(rec.ExpiresAt); until > 0 && until < ttl {
			ttl = until
		}
	}

	return s.client.Set(ctx, sessionKey(rec.ID), data, ttl).Err()
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.SessionRecord, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var rec model.SessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}
