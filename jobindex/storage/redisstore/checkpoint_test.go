package redisstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestNewDefaultsKey(t *testing.T) {
	cp := New(redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}), "")
	if cp.Key() != DefaultKey {
		t.Fatalf("key = %q", cp.Key())
	}
	if err := cp.Close(); err != nil {
		t.Fatalf("Close on borrowed client: %v", err)
	}
}

// Runs only when REDIS_ADDR points at a disposable server.
func TestCheckpointRoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cp, err := Dial(ctx, Options{Addr: addr, Key: "jobindex:test:" + t.Name()})
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer cp.Close()
	defer cp.Clear(ctx)

	if id, err := cp.Load(ctx); err != nil || id != 0 {
		t.Fatalf("empty Load = %d, %v", id, err)
	}
	if err := cp.Save(ctx, 4242); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id, err := cp.Load(ctx); err != nil || id != 4242 {
		t.Fatalf("Load = %d, %v", id, err)
	}
	if err := cp.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if id, _ := cp.Load(ctx); id != 0 {
		t.Fatalf("after Clear Load = %d", id)
	}
}
