// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"everafter/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (published content).
	CacheClient *redis.Client
	// SessionCacheClient holds inquiry sessions and admin editing workspaces.
	SessionCacheClient *redis.Client
)

func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
	return client
}

// InitRedis connects every Redis client used by the service.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
	SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB, "Sessions")
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
	}
	return CacheClient
}

// GetSessionCacheClient returns the client for inquiry sessions and workspaces.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB, "Sessions")
	}
	return SessionCacheClient
}

// CloseRedis closes the clients opened by InitRedis.
func CloseRedis() {
	for _, c := range []*redis.Client{CacheClient, SessionCacheClient} {
		if c != nil {
			_ = c.Close()
		}
	}
}
