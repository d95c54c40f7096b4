package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"travel-booking/internal/domain/draft"
	"travel-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "booking:draft:"

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore keeps one JSON document per draft key with the TTL given on save.
type RedisStore struct {
	client redisClient
}

func NewRedisStore(client redisClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key draft.Key) (*draft.Draft, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to read draft")
	}
	var d draft.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, errs.Wrap(err, "failed to decode draft")
	}
	d.Key = key
	return &d, nil
}

func (s *RedisStore) Save(ctx context.Context, d *draft.Draft, ttl time.Duration) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return errs.Wrap(err, "failed to encode draft")
	}
	if err := s.client.Set(ctx, keyPrefix+d.Key.String(), raw, ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write draft")
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key draft.Key) error {
	if err := s.client.Del(ctx, keyPrefix+key.String()).Err(); err != nil {
		return errs.Wrap(err, "failed to delete draft")
	}
	return nil
}
