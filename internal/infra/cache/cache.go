package cache

import (
	"context"
	"time"
)

type Cache interface {
	// 基本操作
	Ping(ctx context.Context) (string, error)
	Get(ctx context.Context, key string) (any, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// 辅助功能
	Keys(ctx context.Context, pattern string) ([]string, error)
	Clear(ctx context.Context) error
}
