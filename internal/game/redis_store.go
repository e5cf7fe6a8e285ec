package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "champroll:session:"

// RedisStore keeps sessions in Redis. Every write refreshes the key TTL, so idle sessions
// expire without a sweeper.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Create(ctx context.Context, code string, s State) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	ok, err := r.client.SetNX(ctx, redisKeyPrefix+code, b, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("create session %s: %w", code, err)
	}
	if !ok {
		return ErrSessionExists
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context, code string) (State, error) {
	b, err := r.client.GetEx(ctx, redisKeyPrefix+code, r.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		return State{}, ErrSessionNotFound
	}
	if err != nil {
		return State{}, fmt.Errorf("load session %s: %w", code, err)
	}
	var s State
	if err := json.Unmarshal(b, &s); err != nil {
		return State{}, fmt.Errorf("decode session %s: %w", code, err)
	}
	if s.Assignments == nil {
		s.Assignments = make(map[int]*Assignment)
	}
	return s, nil
}

func (r *RedisStore) Save(ctx context.Context, code string, s State) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	// XX: never resurrect a session that expired mid-action
	ok, err := r.client.SetXX(ctx, redisKeyPrefix+code, b, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("save session %s: %w", code, err)
	}
	if !ok {
		return ErrSessionNotFound
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, code string) error {
	n, err := r.client.Del(ctx, redisKeyPrefix+code).Result()
	if err != nil {
		return fmt.Errorf("delete session %s: %w", code, err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}
