package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const lastLoginTTL = 30 * 24 * time.Hour

// LastLoginStore records the most recent successful login per administrator.
// Key format: login:last:<email>. Purely observational: login succeeds even
// when the mark fails.
type LastLoginStore struct {
	client *redis.Client
}

func NewLastLoginStore(client *redis.Client) *LastLoginStore {
	return &LastLoginStore{client: client}
}

// MarkLogin stores the login instant, refreshing the TTL.
func (s *LastLoginStore) MarkLogin(ctx context.Context, email string, at time.Time) error {
	if err := s.client.Set(ctx, s.key(email), at.UTC().Format(time.RFC3339), lastLoginTTL).Err(); err != nil {
		return fmt.Errorf("mark login: %w", err)
	}
	return nil
}

// LastLogin returns the recorded login instant, or the zero time when no
// mark exists.
func (s *LastLoginStore) LastLogin(ctx context.Context, email string) (time.Time, error) {
	raw, err := s.client.Get(ctx, s.key(email)).Result()
	if err != nil {
		if err == redis.Nil {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("last login: %w", err)
	}
	return time.Parse(time.RFC3339, raw)
}

func (s *LastLoginStore) key(email string) string {
	return "login:last:" + email
}
