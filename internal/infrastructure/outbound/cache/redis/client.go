package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"blog-service/internal/custom_errors"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 100

type Client struct {
	client  *redis.Client
	log     ports.Logger
	metrics ports.MetricsProvider
}

func NewClient(cfg config.Redis, log ports.Logger, metrics ports.MetricsProvider) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Address, strconv.Itoa(cfg.Port)),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error("Failed to connect to Redis", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("Successfully connected to Redis",
		slog.String("address", cfg.Address),
		slog.Int("port", cfg.Port),
		slog.Int("db", cfg.DB))

	return &Client{
		client:  rdb,
		log:     log,
		metrics: metrics,
	}, nil
}

// Get decodes the JSON value stored at key into dest.
// A missing key yields custom_errors.ErrCacheMiss.
func (c *Client) Get(ctx context.Context, key string, dest interface{}) error {
	defer c.observe("get", time.Now())

	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.metrics.IncrementCacheMisses()
			c.log.Debug("Cache miss", slog.String("key", key))
			return custom_errors.ErrCacheMiss
		}
		c.log.Error("Failed to get from cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to get from cache: %w", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		c.log.Error("Failed to unmarshal cache value",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	c.metrics.IncrementCacheHits()
	c.log.Debug("Cache hit", slog.String("key", key))
	return nil
}

func (c *Client) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	defer c.observe("set", time.Now())

	data, err := json.Marshal(value)
	if err != nil {
		c.log.Error("Failed to marshal value for cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.log.Error("Failed to set cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to set cache: %w", err)
	}

	c.log.Debug("Successfully set cache",
		slog.String("key", key),
		slog.Duration("ttl", ttl))
	return nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	defer c.observe("delete", time.Now())

	result, err := c.client.Del(ctx, key).Result()
	if err != nil {
		c.log.Error("Failed to delete from cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete from cache: %w", err)
	}

	if result == 0 {
		c.log.Debug("Key not found for deletion", slog.String("key", key))
	}
	return nil
}

// DeletePattern removes every key matching pattern. Keys are walked with SCAN
// so large keyspaces do not block the server.
func (c *Client) DeletePattern(ctx context.Context, pattern string) error {
	defer c.observe("delete_pattern", time.Now())

	keys, err := c.scan(ctx, pattern)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		c.log.Debug("No keys found for pattern", slog.String("pattern", pattern))
		return nil
	}

	deleted, err := c.client.Del(ctx, keys...).Result()
	if err != nil {
		c.log.Error("Failed to delete keys by pattern",
			slog.String("pattern", pattern),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete keys by pattern: %w", err)
	}

	c.log.Debug("Successfully deleted keys by pattern",
		slog.String("pattern", pattern),
		slog.Int64("deleted_count", deleted))
	return nil
}

// CountPattern returns the number of keys matching pattern.
func (c *Client) CountPattern(ctx context.Context, pattern string) (int, error) {
	keys, err := c.scan(ctx, pattern)
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

func (c *Client) scan(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := c.client.Scan(ctx, 0, pattern, scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.log.Error("Failed to scan keys by pattern",
			slog.String("pattern", pattern),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to scan keys by pattern: %w", err)
	}
	return keys, nil
}

func (c *Client) observe(operation string, start time.Time) {
	c.metrics.RecordCacheOperationDuration(operation, time.Since(start))
}

func (c *Client) Close() error {
	if err := c.client.Close(); err != nil {
		c.log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		return fmt.Errorf("failed to close Redis connection: %w", err)
	}

	c.log.Info("Redis connection closed")
	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		c.log.Error("Redis ping failed", slog.String("error", err.Error()))
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
