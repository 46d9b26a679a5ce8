package helpers

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	N int `json:"n"`
}

func TestRedisGetJSON(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb, err := NewRedisClient("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, PingRedis(ctx, rdb))

	var got payload
	ok, err := RedisGetJSON(ctx, rdb, "k", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mr.Set("k", `{"n":3}`))
	ok, err = RedisGetJSON(ctx, rdb, "k", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, got.N)

	require.NoError(t, mr.Set("bad", "not json"))
	ok, err = RedisGetJSON(ctx, rdb, "bad", &got)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewRedisClient_BadURL(t *testing.T) {
	_, err := NewRedisClient("http://nope")
	assert.Error(t, err)
}
