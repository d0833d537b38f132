package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"weddingplanner/models"

	"github.com/go-redis/redis/v8"
)

// ErrSessionNotFound reports a missing or expired planning session.
var ErrSessionNotFound = errors.New("planning session not found or expired")

// SessionStore persists planning sessions for the lifetime of a run.
type SessionStore interface {
	Save(ctx context.Context, session *models.PlanSession) error
	Get(ctx context.Context, sessionID string) (*models.PlanSession, error)
	Delete(ctx context.Context, sessionID string) error
}

const sessionKeyPrefix = "plansession:"

// RedisSessionStore keeps sessions as JSON under a TTL; an idle run simply
// expires.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore builds a store over client with the given lifetime.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.PlanSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal planning session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+session.SessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store planning session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.PlanSession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load planning session: %w", err)
	}
	var session models.PlanSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse planning session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete planning session: %w", err)
	}
	return nil
}
