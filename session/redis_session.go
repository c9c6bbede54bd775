package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func valueKey(sid, key string) string { return fmt.Sprintf("app:sess:%s:%s", sid, key) }
func flashKey(sid string) string      { return fmt.Sprintf("app:flash:%s", sid) }

func (s *RedisStore) Put(ctx context.Context, sid, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, valueKey(sid, key), b, s.ttl).Err()
}

func (s *RedisStore) Take(ctx context.Context, sid, key string, dst any) (bool, error) {
	pipe := s.rdb.TxPipeline()
	get := pipe.Get(ctx, valueKey(sid, key))
	pipe.Del(ctx, valueKey(sid, key))
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return false, err
	}
	b, err := get.Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisStore) AddFlash(ctx context.Context, sid string, f Flash) error {
	b, _ := json.Marshal(f)
	pipe := s.rdb.TxPipeline()
	pipe.RPush(ctx, flashKey(sid), b)
	pipe.Expire(ctx, flashKey(sid), s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Flashes(ctx context.Context, sid string) ([]Flash, error) {
	pipe := s.rdb.TxPipeline()
	rng := pipe.LRange(ctx, flashKey(sid), 0, -1)
	pipe.Del(ctx, flashKey(sid))
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	raw, err := rng.Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	out := make([]Flash, 0, len(raw))
	for _, r := range raw {
		var f Flash
		if err := json.Unmarshal([]byte(r), &f); err != nil {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}
