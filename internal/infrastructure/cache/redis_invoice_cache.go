package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/faturango/fatura-api/internal/config"
	"github.com/faturango/fatura-api/internal/domain/entity"
	"github.com/faturango/fatura-api/internal/domain/repository"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "invoice:code:"

// envelope wraps the cached invoice with its save and expiry timestamps. The
// redis key outlives expires_at (see graceFactor) so a lookup shortly after
// expiry can still report "expired" instead of "not found".
type envelope struct {
	Invoice   *entity.Invoice `json:"invoice"`
	SavedAt   time.Time       `json:"saved_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// graceFactor controls how much longer than the logical TTL the redis key is
// kept around.
const graceFactor = 2

// NewRedisClient creates a redis client from configuration and verifies the
// connection.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

type redisInvoiceCache struct {
	client *redis.Client
	clock  func() time.Time
}

// NewRedisInvoiceCache creates a redis-backed invoice cache
func NewRedisInvoiceCache(client *redis.Client) repository.InvoiceCache {
	return &redisInvoiceCache{client: client, clock: time.Now}
}

func (c *redisInvoiceCache) Save(ctx context.Context, code string, invoice *entity.Invoice, ttl time.Duration) error {
	now := c.clock()
	payload, err := json.Marshal(envelope{
		Invoice:   invoice,
		SavedAt:   now,
		ExpiresAt: now.Add(ttl),
	})
	if err != nil {
		return fmt.Errorf("failed to serialize invoice: %w", err)
	}
	return c.client.Set(ctx, keyPrefix+code, payload, ttl*graceFactor).Err()
}

func (c *redisInvoiceCache) Load(ctx context.Context, code string) (*entity.Invoice, error) {
	payload, err := c.client.Get(ctx, keyPrefix+code).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrCodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read invoice cache: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil || env.Invoice == nil {
		return nil, repository.ErrCacheCorrupt
	}
	if c.clock().After(env.ExpiresAt) {
		return nil, repository.ErrCodeExpired
	}
	return env.Invoice, nil
}

func (c *redisInvoiceCache) Delete(ctx context.Context, code string) error {
	return c.client.Del(ctx, keyPrefix+code).Err()
}
