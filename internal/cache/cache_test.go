package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilClientIsEmptyCache(t *testing.T) {
	var c *Client
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, c.Delete(ctx, "k"))
	n, err := c.Incr(ctx, "counter")
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.Error(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestUnreachableRedis(t *testing.T) {
	// Nothing listens on port 1.
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	t.Run("reads and sets degrade to a miss", func(t *testing.T) {
		assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
		data, err := c.Get(ctx, "k")
		assert.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("invalidating writes report failure", func(t *testing.T) {
		assert.Error(t, c.Delete(ctx, "k"))
		_, err := c.Incr(ctx, "counter")
		assert.Error(t, err)
		assert.Error(t, c.Ping(ctx))
	})
}
