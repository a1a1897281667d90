// Package session stores in-progress practice sessions in Redis.
// Each session is one JSON value under "<prefix>:session:<user>:<kind>"
// that expires after the configured TTL of inactivity.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/palipractice-backend/internal/domain"
)

// Store is a Redis-backed practice session store.
type Store struct {
	rdb    goredis.Cmdable
	prefix string
	ttl    time.Duration
}

// New creates a Store. Every Save refreshes the key's TTL.
func New(rdb goredis.Cmdable, prefix string, ttl time.Duration) *Store {
	return &Store{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (s *Store) key(userID uuid.UUID, kind domain.PracticeKind) string {
	return fmt.Sprintf("%s:session:%s:%s", s.prefix, userID, kind)
}

// Get returns the stored session. Returns domain.ErrNotFound when there is
// none or it has expired.
func (s *Store) Get(ctx context.Context, userID uuid.UUID, kind domain.PracticeKind) (*domain.PracticeSession, error) {
	raw, err := s.rdb.Get(ctx, s.key(userID, kind)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("practice session %s/%s: %w", userID, kind, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var sess domain.PracticeSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

// Save writes sess, replacing any previous value.
func (s *Store) Save(ctx context.Context, sess *domain.PracticeSession) error {
	if sess == nil {
		return errors.New("save session: session is nil")
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key(sess.UserID, sess.Kind), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

// Delete removes the session. Returns domain.ErrNotFound when there was none.
func (s *Store) Delete(ctx context.Context, userID uuid.UUID, kind domain.PracticeKind) error {
	n, err := s.rdb.Del(ctx, s.key(userID, kind)).Result()
	if err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("practice session %s/%s: %w", userID, kind, domain.ErrNotFound)
	}
	return nil
}
