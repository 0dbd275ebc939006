package tutor

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound reports a session id unknown to the store. It is the
// only caller-visible failure of the tutoring core: callers branch on it
// with errors.Is and start a new session.
var ErrSessionNotFound = errors.New("tutoring session not found")

// ErrInvalidStoreType reports an unrecognized store type in NewStore.
var ErrInvalidStoreType = errors.New("invalid session store type")

// MsgStartNewSession is the guidance text callers surface alongside
// ErrSessionNotFound.
const MsgStartNewSession = "Please start a new tutoring session."

// Store persists tutoring sessions. Sessions are read-modify-written as a
// whole per turn; drivers hand out deep copies so a snapshot never aliases
// stored state.
type Store interface {
	// Create persists a new session, assigning a fresh ID if empty.
	Create(ctx context.Context, s *TutoringSession) error

	// Get returns a copy of the session, or ErrSessionNotFound.
	Get(ctx context.Context, id string) (*TutoringSession, error)

	// Update replaces the stored session. Returns ErrSessionNotFound if
	// the session does not exist.
	Update(ctx context.Context, s *TutoringSession) error

	// Delete removes a session. Returns ErrSessionNotFound if absent.
	Delete(ctx context.Context, id string) error

	// Close releases driver resources.
	Close() error
}

// StoreType selects a session store driver.
type StoreType string

const (
	StoreTypeMemory StoreType = "memory"
	StoreTypeRedis  StoreType = "redis"
)

// defaultRedisTTL is how long an idle session survives in Redis. Reads
// refresh it, so the clock only runs between turns.
const defaultRedisTTL = 24 * time.Hour

// StoreOption configures NewStore.
type StoreOption func(*storeConfig)

type storeConfig struct {
	redisClient *redis.Client
	redisAddr   string
	redisTTL    time.Duration
}

// WithRedisClient supplies an existing Redis client. The store will not
// close a client it did not open.
func WithRedisClient(client *redis.Client) StoreOption {
	return func(c *storeConfig) {
		c.redisClient = client
	}
}

// WithRedisAddr dials a new Redis client at addr when the store opens.
func WithRedisAddr(addr string) StoreOption {
	return func(c *storeConfig) {
		c.redisAddr = addr
	}
}

// WithRedisTTL overrides the idle session TTL for the Redis driver.
func WithRedisTTL(ttl time.Duration) StoreOption {
	return func(c *storeConfig) {
		c.redisTTL = ttl
	}
}

// NewStore creates a session store for the given driver type. The memory
// driver needs no options; the Redis driver needs WithRedisClient or
// WithRedisAddr.
func NewStore(storeType StoreType, opts ...StoreOption) (Store, error) {
	cfg := &storeConfig{redisTTL: defaultRedisTTL}
	for _, opt := range opts {
		opt(cfg)
	}

	switch storeType {
	case StoreTypeMemory:
		return newMemoryStore(), nil
	case StoreTypeRedis:
		return newRedisStore(cfg)
	default:
		return nil, ErrInvalidStoreType
	}
}
