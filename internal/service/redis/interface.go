package redis

import (
	"context"
	"time"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type ServiceInterface interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error

	// CheckRateLimit implements a fixed-window counter; returns false once
	// the window's budget is exhausted.
	CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)

	CacheExtensionStats(ctx context.Context, userID string, data interface{}, ttl time.Duration) error
	GetExtensionStats(ctx context.Context, userID string, dest interface{}) error

	Health(ctx context.Context) error
	Close() error
}
