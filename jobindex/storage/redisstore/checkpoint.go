// Package redisstore keeps backfill checkpoints in Redis so that a run
// interrupted on one host can be resumed from another.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the key the checkpoint is stored under when none is given.
const DefaultKey = "jobindex:backfill:last_id"

type Options struct {
	Addr     string
	Password string
	DB       int
	// Key overrides DefaultKey.
	Key string
}

// Checkpoint implements ops.CheckpointStore.
type Checkpoint struct {
	client *redis.Client
	key    string
	owned  bool
}

// Dial connects to Redis and verifies the connection.
func Dial(ctx context.Context, opts Options) (*Checkpoint, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	cp := New(client, opts.Key)
	cp.owned = true
	return cp, nil
}

// New wraps an existing client. The caller keeps ownership of client.
func New(client *redis.Client, key string) *Checkpoint {
	if key == "" {
		key = DefaultKey
	}
	return &Checkpoint{client: client, key: key}
}

func (c *Checkpoint) Key() string { return c.key }

func (c *Checkpoint) Load(ctx context.Context) (int64, error) {
	id, err := c.client.Get(ctx, c.key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get %s: %w", c.key, err)
	}
	return id, nil
}

func (c *Checkpoint) Save(ctx context.Context, lastID int64) error {
	if err := c.client.Set(ctx, c.key, lastID, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", c.key, err)
	}
	return nil
}

func (c *Checkpoint) Clear(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", c.key, err)
	}
	return nil
}

// Close closes the client when it was opened by Dial.
func (c *Checkpoint) Close() error {
	if !c.owned {
		return nil
	}
	return c.client.Close()
}
