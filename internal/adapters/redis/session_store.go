package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"horizonx-storefront/internal/domain"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "storefront:session:"

type SessionStore struct {
	redis *redis.Client
}

func NewSessionStore(r *redis.Client) *SessionStore {
	return &SessionStore{redis: r}
}

func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := s.redis.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("session get failed: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("session unmarshal failed: %w", err)
	}
	if sess.Values == nil {
		sess.Values = make(map[string]string)
	}

	return &sess, nil
}

func (s *SessionStore) Save(ctx context.Context, sess *domain.Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return s.Delete(ctx, sess.ID)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session marshal failed: %w", err)
	}

	if err := s.redis.Set(ctx, sessionKeyPrefix+sess.ID, data, ttl).Err(); err != nil {
		return fmt.Errorf("session set failed: %w", err)
	}

	return nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("session del failed: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op: keys carry their own TTL.
func (s *SessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}
