package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const sectionKeyPrefix = "profile:section:"

// Store caches raw profile section JSON in redis so restarts and
// horizontally scaled instances don't re-fetch the origin on every
// load. Satisfies profile.SectionCache.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func New(addr, password string, db int, ttl time.Duration) *Store {
	return &Store{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: ttl,
	}
}

// GetSection returns the cached document, or (nil, nil) on a miss.
func (s *Store) GetSection(ctx context.Context, name string) ([]byte, error) {
	raw, err := s.client.Get(ctx, sectionKeyPrefix+name).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *Store) SetSection(ctx context.Context, name string, raw []byte) error {
	return s.client.Set(ctx, sectionKeyPrefix+name, raw, s.ttl).Err()
}

// InvalidateSection drops one cached document (used after admin
// updates).
func (s *Store) InvalidateSection(ctx context.Context, name string) error {
	return s.client.Del(ctx, sectionKeyPrefix+name).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
