package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	rdb *redis.Client
	ctx = context.Background()
)

// InitRedis connects to REDIS_ADDR (default localhost:6379). The server runs
// fine without redis; callers treat an error here as "cache disabled".
func InitRedis() error {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb = nil
		return fmt.Errorf("redis connect failed: %v", err)
	}

	fmt.Printf("redis connected: %s\n", addr)
	return nil
}

// Enabled reports whether a redis connection is live.
func Enabled() bool {
	return rdb != nil
}

// Set stores a JSON-encoded value with a TTL.
func Set(key string, value interface{}, expiration time.Duration) error {
	if rdb == nil {
		return fmt.Errorf("redis not initialized")
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return rdb.Set(ctx, key, data, expiration).Err()
}

// Get loads and JSON-decodes a value into dest.
func Get(key string, dest interface{}) error {
	if rdb == nil {
		return fmt.Errorf("redis not initialized")
	}

	data, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Delete removes a key.
func Delete(key string) error {
	if rdb == nil {
		return fmt.Errorf("redis not initialized")
	}

	return rdb.Del(ctx, key).Err()
}

// Exists checks whether a key is present.
func Exists(key string) bool {
	if rdb == nil {
		return false
	}

	result, err := rdb.Exists(ctx, key).Result()
	if err != nil {
		return false
	}

	return result > 0
}

// Close shuts the connection down.
func Close() error {
	if rdb != nil {
		return rdb.Close()
	}
	return nil
}

// Provider adapts the package helpers to the catalog.CacheProvider interface.
type Provider struct{}

func (Provider) Get(key string, dest any) error {
	return Get(key, dest)
}

func (Provider) Set(key string, value any, expiration time.Duration) error {
	return Set(key, value, expiration)
}
