package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memoryStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memoryStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func TestJSONRoundTripThroughStore(t *testing.T) {
	store := &memoryStore{data: map[string][]byte{}}
	ctx := context.Background()

	type row struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	var got []row
	assert.False(t, GetJSON(ctx, store, "catalog:institutions", &got))

	SetJSON(ctx, store, "catalog:institutions", []row{{ID: 1, Name: "Limkokwing"}}, time.Minute)
	require.True(t, GetJSON(ctx, store, "catalog:institutions", &got))
	assert.Equal(t, []row{{ID: 1, Name: "Limkokwing"}}, got)

	store.data["broken"] = []byte("{not json")
	assert.False(t, GetJSON(ctx, store, "broken", &got))
}

func TestNilClientIsAlwaysMiss(t *testing.T) {
	var c *Client
	ctx := context.Background()

	val, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, val)
	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Second))
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.Ping(ctx))

	var out map[string]string
	assert.False(t, GetJSON(ctx, c, "k", &out))
}

func TestUnreachableRedisFailsSafe(t *testing.T) {
	c := New(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	val, err := c.Get(ctx, "catalog:courses")
	assert.NoError(t, err)
	assert.Nil(t, val)
	assert.NoError(t, c.Set(ctx, "catalog:courses", []byte("[]"), time.Second))
	assert.NoError(t, c.Delete(ctx, "catalog:courses"))
	assert.Error(t, c.Ping(ctx))
}
