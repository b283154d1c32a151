// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/danielhkuo/holiday-vote/models"
)

// Cache holds the most recent tally. The database stays the source of truth:
// a miss or an error only costs a recomputation.
//
// Every Invalidate bumps a generation. A tally computed under generation g is
// stored by Set only while the generation is still g, so a vote that commits
// during a recomputation cannot be overwritten by the older tally.
type Cache interface {
	Get(ctx context.Context) (models.Results, bool, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, gen int64, results models.Results) error
	Invalidate(ctx context.Context) error
}

const (
	resultsKey    = "holiday-vote:results"
	generationKey = "holiday-vote:results:gen"
)

// RedisCache stores the tally as JSON under a single key
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// ConnectRedis parses a redis:// URL and verifies the server answers
func ConnectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func (c *RedisCache) Get(ctx context.Context) (models.Results, bool, error) {
	data, err := c.client.Get(ctx, resultsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Results{}, false, nil
	}
	if err != nil {
		return models.Results{}, false, fmt.Errorf("failed to get cached results: %w", err)
	}

	var results models.Results
	if err := json.Unmarshal(data, &results); err != nil {
		return models.Results{}, false, fmt.Errorf("failed to decode cached results: %w", err)
	}
	return results, true, nil
}

// Generation returns the current invalidation count, 0 before the first vote
func (c *RedisCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get cache generation: %w", err)
	}
	return gen, nil
}

// Set stores results only if the generation is still gen. A stale or raced
// write is dropped silently.
func (c *RedisCache) Set(ctx context.Context, gen int64, results models.Results) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, generationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, resultsKey, data, c.ttl)
			return nil
		})
		return err
	}, generationKey)
	if errors.Is(err, redis.TxFailedErr) {
		// Invalidated while we were writing
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to cache results: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey)
		pipe.Del(ctx, resultsKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate cached results: %w", err)
	}
	return nil
}
