package redis

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrKeyNotFound is returned by Get for missing keys so callers can tell a
// cache miss from a connectivity failure.
var ErrKeyNotFound = errors.New("key does not exist")

type RedisRepositories struct {
	Client *redis.Client
}

type IRedisRepositories interface {
	Set(key string, data []byte, expiredTime time.Duration, ctx context.Context) error
	Get(key string, ctx context.Context) (string, error)
	Del(key string, ctx context.Context) error
	TTL(key string, ctx context.Context) (time.Duration, error)
}

func NewRedisRepositories(client *redis.Client) *RedisRepositories {
	log.Println("🚀 Initialized Repository : Redis")
	return &RedisRepositories{
		Client: client,
	}
}

func (r *RedisRepositories) Set(key string, data []byte, expiredTime time.Duration, ctx context.Context) error {
	if err := r.Client.Set(ctx, key, string(data), expiredTime).Err(); err != nil {
		log.Printf("Error setting Redis key %s: %v", key, err)
		return err
	}
	return nil
}

func (r *RedisRepositories) Get(key string, ctx context.Context) (string, error) {
	result, err := r.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrKeyNotFound
	} else if err != nil {
		log.Printf("Error getting Redis key %s: %v", key, err)
		return "", err
	}
	return result, nil
}

func (r *RedisRepositories) Del(key string, ctx context.Context) error {
	if _, err := r.Client.Del(ctx, key).Result(); err != nil {
		log.Printf("Error deleting Redis key %s: %v", key, err)
		return err
	}
	return nil
}

func (r *RedisRepositories) TTL(key string, ctx context.Context) (time.Duration, error) {
	duration, err := r.Client.TTL(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	return duration, nil
}
