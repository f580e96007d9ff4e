package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is a Redis client for data the service can live without.
// Reads treat any failure as a miss. Set swallows failures; Delete and Incr report them
// so callers that depend on a write landing can react. A nil *Client behaves like an
// always-empty cache whose writes all succeed.
type Client struct {
	rdb *redis.Client
}

// New creates a Redis-backed client. No connection is made until the first command.
func New(addr, password string, db int) *Client {
	return &Client{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (c *Client) disabled() bool {
	return c == nil || c.rdb == nil
}

// Get returns the stored value, or nil on a miss or when Redis is unreachable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c.disabled() {
		return nil, nil
	}
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and connection errors alike
		return nil, nil
	}
	return val, nil
}

// Set stores value for ttl. Failures are dropped.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.disabled() {
		return nil
	}
	_ = c.rdb.Set(ctx, key, value, ttl).Err()
	return nil
}

// Delete removes key. A missing key is not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c.disabled() {
		return nil
	}
	return c.rdb.Del(ctx, key).Err()
}

// Incr atomically increments the counter at key and returns the new value.
func (c *Client) Incr(ctx context.Context, key string) (int64, error) {
	if c.disabled() {
		return 0, nil
	}
	return c.rdb.Incr(ctx, key).Result()
}

// Ping reports whether Redis is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c.disabled() {
		return errors.New("redis not configured")
	}
	return c.rdb.Ping(ctx).Err()
}

// Close releases the connection pool.
func (c *Client) Close() error {
	if c.disabled() {
		return nil
	}
	return c.rdb.Close()
}
