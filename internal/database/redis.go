package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/xenia-tech/xenia-backend/internal/config"
)

var Redis *redis.Client
var Ctx = context.Background()

func InitRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       0,
	})

	_, err := Redis.Ping(Ctx).Result()
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Response caching will be disabled.", err)
		Redis = nil
	} else {
		log.Println("Connected to Redis successfully")
	}
}

// CacheSet stores a raw response body under key.
func CacheSet(key string, value []byte, expiration time.Duration) error {
	return Redis.Set(Ctx, key, value, expiration).Err()
}

// CacheGet returns the raw cached body, or an error on miss.
func CacheGet(key string) ([]byte, error) {
	return Redis.Get(Ctx, key).Bytes()
}

// CacheInvalidate removes all keys matching pattern.
func CacheInvalidate(pattern string) error {
	keys, err := Redis.Keys(Ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		return Redis.Del(Ctx, keys...).Err()
	}
	return nil
}
