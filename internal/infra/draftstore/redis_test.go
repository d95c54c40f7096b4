//go:build unit

package draftstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/draft"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memClient struct {
	data   map[string]string
	ttl    map[string]time.Duration
	getErr error
}

func newMemClient() *memClient {
	return &memClient{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (m *memClient) Get(_ context.Context, key string) *redis.StringCmd {
	if m.getErr != nil {
		return redis.NewStringResult("", m.getErr)
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memClient) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.data[key] = string(value.([]byte))
	m.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (m *memClient) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	client := newMemClient()
	store := NewRedisStore(client)
	ctx := context.Background()
	now := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)

	key, err := draft.NewKey(uuid.New(), booking.KindHotel, uuid.New())
	require.NoError(t, err)
	d := draft.New(key, now)
	require.NoError(t, d.Advance(draft.StepDetails, map[string]any{"rooms": float64(2)}, now))

	require.NoError(t, store.Save(ctx, d, 30*time.Minute))
	assert.Equal(t, 30*time.Minute, client.ttl[keyPrefix+key.String()])

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, key, got.Key)
	assert.Equal(t, draft.StepDetails, got.Step)
	assert.Equal(t, float64(2), got.Data["rooms"])

	require.NoError(t, store.Delete(ctx, key))
	got, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStore_GetFailures(t *testing.T) {
	key, err := draft.NewKey(uuid.New(), booking.KindCar, uuid.New())
	require.NoError(t, err)

	t.Run("connection error", func(t *testing.T) {
		client := newMemClient()
		client.getErr = errors.New("dial tcp: refused")

		_, err := NewRedisStore(client).Get(context.Background(), key)
		assert.ErrorContains(t, err, "failed to read draft")
	})

	t.Run("corrupt payload", func(t *testing.T) {
		client := newMemClient()
		client.data[keyPrefix+key.String()] = "{not json"

		_, err := NewRedisStore(client).Get(context.Background(), key)
		assert.ErrorContains(t, err, "failed to decode draft")
	})
}
