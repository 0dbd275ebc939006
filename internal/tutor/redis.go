package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionKeyPrefix namespaces tutoring sessions in Redis.
const sessionKeyPrefix = "tutoring:"

// redisStore persists sessions as JSON blobs with an idle TTL. It exists for
// multi-instance hosting; single-process deployments use the memory driver.
type redisStore struct {
	client     *redis.Client
	ttl        time.Duration
	ownsClient bool
}

func newRedisStore(cfg *storeConfig) (*redisStore, error) {
	client := cfg.redisClient
	owns := false
	if client == nil {
		if cfg.redisAddr == "" {
			return nil, errors.New("redis store requires WithRedisClient or WithRedisAddr")
		}
		client = redis.NewClient(&redis.Options{Addr: cfg.redisAddr})
		owns = true
	}
	return &redisStore{client: client, ttl: cfg.redisTTL, ownsClient: owns}, nil
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (r *redisStore) Create(ctx context.Context, s *TutoringSession) error {
	if s.ID == "" {
		s.ID = NewSessionID()
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	val, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(s.ID), val, r.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (r *redisStore) Get(ctx context.Context, id string) (*TutoringSession, error) {
	key := sessionKey(id)
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var s TutoringSession
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	// Refresh the idle TTL on read.
	_ = r.client.Expire(ctx, key, r.ttl).Err()

	return &s, nil
}

func (r *redisStore) Update(ctx context.Context, s *TutoringSession) error {
	key := sessionKey(s.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if exists == 0 {
		return ErrSessionNotFound
	}

	s.UpdatedAt = time.Now()
	val, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := r.client.Set(ctx, key, val, r.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (r *redisStore) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *redisStore) Close() error {
	if r.ownsClient {
		return r.client.Close()
	}
	return nil
}
