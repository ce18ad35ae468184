package redis

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

// RedisClient connects to Redis, retrying a few times so the app survives a
// cache container that comes up slightly after it.
func RedisClient(host, port, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(host, port),
		Password:     password,
		DB:           0,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		PoolSize:     10,
		MaxRetries:   3,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		if err = client.Ping(ctx).Err(); err == nil {
			log.Println("✨ Connected to Redis successfully")
			return client, nil
		}
		log.Printf("redis not reachable (attempt %d/%d): %v", attempt, connectAttempts, err)
		time.Sleep(connectBackoff)
	}
	return nil, fmt.Errorf("redis unreachable after %d attempts: %w", connectAttempts, err)
}
