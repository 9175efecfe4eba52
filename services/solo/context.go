package solo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	chatContextPrefix = "solo:ctx:"
	historyWindow     = 10
)

// ChatTurn is one message of model context.
type ChatTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// RedisContextStore keeps the rolling conversation window used as model
// context, keyed by session ID. The durable transcript lives in MongoDB.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisContextStore builds a context store with the given entry TTL.
func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

// Get returns the stored context window for a session, empty when none exists.
func (s *RedisContextStore) Get(ctx context.Context, sessionID string) ([]ChatTurn, error) {
	data, err := s.client.Get(ctx, chatContextPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var turns []ChatTurn
	if err := json.Unmarshal([]byte(data), &turns); err != nil {
		return nil, err
	}
	return turns, nil
}

// Append adds turns to a session's window, trimming to the last few messages.
func (s *RedisContextStore) Append(ctx context.Context, sessionID string, turns ...ChatTurn) error {
	existing, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	existing = append(existing, turns...)
	if len(existing) > historyWindow {
		existing = existing[len(existing)-historyWindow:]
	}
	b, err := json.Marshal(existing)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, chatContextPrefix+sessionID, b, s.ttl).Err()
}

// Clear drops a session's context window.
func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, chatContextPrefix+sessionID).Err()
}
