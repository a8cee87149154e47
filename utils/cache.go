package utils

import (
	"context"
	"log"
	"time"

	"github.com/HMkaraman/beauty-center-dashboard-sub004/config"

	"github.com/go-redis/redis/v8"
)

// AvailabilityCacheClient caches public availability responses so the booking
// page does not recompute the full grid on every hit.
var AvailabilityCacheClient *redis.Client

// InitAvailabilityCache initializes the Redis client for availability caching.
func InitAvailabilityCache() {
	AvailabilityCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AvailabilityCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Availability Cache): %v", err)
	}
}

// GetAvailabilityCacheClient returns the availability cache client.
func GetAvailabilityCacheClient() *redis.Client {
	if AvailabilityCacheClient == nil {
		InitAvailabilityCache()
	}
	return AvailabilityCacheClient
}
