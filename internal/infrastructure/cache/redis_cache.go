package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
)

// SummaryCache cachea el resumen del dashboard (patrón cache-aside).
type SummaryCache interface {
	Get(ctx context.Context, key string) (*dto.DashboardSummaryDTO, bool, error)
	Set(ctx context.Context, key string, value *dto.DashboardSummaryDTO, ttl time.Duration) error
}

// RedisSummaryCache implementación sobre Redis.
type RedisSummaryCache struct {
	client *redis.Client
}

func NewRedisSummaryCache(addr, password string, db int) *RedisSummaryCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisSummaryCache{client: client}
}

func (c *RedisSummaryCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisSummaryCache) Close() error {
	return c.client.Close()
}

func (c *RedisSummaryCache) Get(ctx context.Context, key string) (*dto.DashboardSummaryDTO, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var summary dto.DashboardSummaryDTO
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		return nil, false, err
	}
	return &summary, true, nil
}

func (c *RedisSummaryCache) Set(ctx context.Context, key string, value *dto.DashboardSummaryDTO, ttl time.Duration) error {
	if value == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

// NoopSummaryCache se usa cuando Redis no está configurado: siempre miss.
type NoopSummaryCache struct{}

func (NoopSummaryCache) Get(ctx context.Context, key string) (*dto.DashboardSummaryDTO, bool, error) {
	return nil, false, nil
}

func (NoopSummaryCache) Set(ctx context.Context, key string, value *dto.DashboardSummaryDTO, ttl time.Duration) error {
	return nil
}
