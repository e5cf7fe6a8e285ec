package game

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Runs only against a real server: REDIS_ADDR=localhost:6379 go test ./internal/game
func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { client.Close() })
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis not reachable: %v", err)
	}
	return NewRedisStore(client, time.Minute)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()
	code := "test-" + uuid.NewString()
	t.Cleanup(func() { store.Delete(ctx, code) })

	s := NewState()
	s.Team1[0] = "Alice"
	s.Assignments[1] = &Assignment{Champions: []string{"Ahri", "Zed"}, RerollCount: 1}
	if err := store.Create(ctx, code, s); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Create(ctx, code, s); !errors.Is(err, ErrSessionExists) {
		t.Fatalf("expected ErrSessionExists, got %v", err)
	}

	got, err := store.Load(ctx, code)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Team1[0] != "Alice" || got.Assignments[1].RerollCount != 1 || got.Assignments[1].Champions[1] != "Zed" {
		t.Fatalf("state did not survive the round trip: %+v", got)
	}

	if err := store.Delete(ctx, code); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Save(ctx, code, s); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("save after delete should fail with ErrSessionNotFound, got %v", err)
	}
	if _, err := store.Load(ctx, code); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
