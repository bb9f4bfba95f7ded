package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore is the redis flavor of the blob store, for deployments that
// keep app state out of the accounts database.
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.Client.Set(ctx, key, value, 0).Err()
}
