package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// ErrNotFound is returned when a session token is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Store associates opaque tokens with authenticated user ids. The only
// payload carried by a session is the user id.
type Store interface {
	// Create issues a new token bound to userID.
	Create(ctx context.Context, userID string) (string, error)
	// Get resolves a token to its user id and refreshes the TTL.
	Get(ctx context.Context, token string) (string, error)
	// Destroy invalidates a token. Destroying an unknown token is not an error.
	Destroy(ctx context.Context, token string) error
}

// RedisStore keeps sessions in Redis with a sliding TTL. Unlike the
// directory cache this store does not fail safe: a Redis outage must surface
// as an error, not as a silently anonymous request.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore builds a Redis-backed session store.
func NewRedisStore(addr, password string, db int, ttl time.Duration) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStore{client: client, ttl: ttl}
}

// Ping verifies the Redis connection at startup.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Create(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	key := sessionKeyPrefix + token
	if err := s.client.Set(ctx, key, userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (string, error) {
	key := sessionKeyPrefix + token
	userID, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	// sliding expiration
	_ = s.client.Expire(ctx, key, s.ttl).Err()
	return userID, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
