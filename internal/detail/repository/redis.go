package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/internal/detail/domain"
)

const (
	sessionKeyPrefix = "detailSession:"
	pendingKeyPrefix = "productSelection:"

	// A detail session lives as long as a shopper plausibly keeps the
	// page open; pending selections must survive the login round-trip.
	sessionTTL = 2 * time.Hour
	pendingTTL = 24 * time.Hour
)

// RedisSessionRepository stores detail sessions and pending selections
// in Redis as JSON
type RedisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository creates a new Redis session repository
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Create stores a new session
func (r *RedisSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	return r.set(ctx, session)
}

// Save persists session mutations
func (r *RedisSessionRepository) Save(ctx context.Context, session *domain.Session) error {
	return r.set(ctx, session)
}

func (r *RedisSessionRepository) set(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session failed: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(session.ID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// FindByID returns the session with the given id
func (r *RedisSessionRepository) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session failed: %w", err)
	}
	return &session, nil
}

// Delete removes a session
func (r *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

// Count returns the number of live sessions
func (r *RedisSessionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	iter := r.client.Scan(ctx, 0, sessionKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("redis scan failed: %w", err)
	}
	return count, nil
}

// SavePendingSelection durably stores a guest's pending selection under
// the productSelection key so the post-login flow can consume it
func (r *RedisSessionRepository) SavePendingSelection(ctx context.Context, sessionID string, sel domain.PendingSelection) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("marshal pending selection failed: %w", err)
	}
	if err := r.client.Set(ctx, pendingKeyPrefix+sessionID, data, pendingTTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}
