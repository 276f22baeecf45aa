package redis_store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"userscraper/internal/sessionstore"
)

// Store keeps session blobs in redis under userscraper:session:<username>
// with a TTL, so stale logins age out on their own.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func New(addr, password string, db int, ttl time.Duration) *Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Store{client: rdb, ttl: ttl}
}

func key(username string) string {
	return fmt.Sprintf("userscraper:session:%s", username)
}

func (s *Store) Save(username string, blob []byte) error {
	ctx := context.Background()
	if err := s.client.Set(ctx, key(username), blob, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis save session for %s: %w", username, err)
	}
	return nil
}

func (s *Store) Load(username string) ([]byte, error) {
	ctx := context.Background()
	val, err := s.client.Get(ctx, key(username)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w for %s", sessionstore.ErrNotFound, username)
	}
	if err != nil {
		return nil, fmt.Errorf("redis load session for %s: %w", username, err)
	}
	return val, nil
}
