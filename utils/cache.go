package utils

import (
	"context"
	"log"
	"time"

	"trustmate/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient mirrors session snapshots for observability.
	SessionCacheClient *redis.Client
	// OTPCacheClient is the dedicated client for password-reset OTPs.
	OTPCacheClient *redis.Client
)

// RedisConfigured reports whether a redis address is set. The application runs
// fully in-process when it is not.
func RedisConfigured() bool {
	return config.AppConfig.RedisAddr != ""
}

// InitSessionCache initializes the Redis client used for session snapshots.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the session snapshot client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitOTPCache initializes the Redis client for password-reset OTPs.
func InitOTPCache() {
	OTPCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisOTPDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := OTPCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (OTP Cache): %v", err)
	}
}

// GetOTPCacheClient returns the Redis client for password-reset OTPs.
func GetOTPCacheClient() *redis.Client {
	if OTPCacheClient == nil {
		InitOTPCache()
	}
	return OTPCacheClient
}
