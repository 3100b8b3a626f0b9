package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shariarfaisal/snapshop/internal/config"
)

type Client struct {
	Client *redis.Client
}

// NewClient creates a new Redis client
func NewClient(cfg *config.RedisConfig) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{Client: client}, nil
}

// Get retrieves a value from Redis
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

// Set sets a value in Redis with expiration
func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.Client.Set(ctx, key, value, expiration).Err()
}

// Delete removes keys from Redis
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	return c.Client.Del(ctx, keys...).Err()
}

// Exists checks if a key exists in Redis
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	count, err := c.Client.Exists(ctx, key).Result()
	return count > 0, err
}

// GetStoreID retrieves the cached store id for a subdomain
func (c *Client) GetStoreID(ctx context.Context, subdomain string) (string, error) {
	return c.Get(ctx, subdomainKey(subdomain))
}

// SetStoreID caches the store id for a subdomain
func (c *Client) SetStoreID(ctx context.Context, subdomain, storeID string, expiration time.Duration) error {
	return c.Set(ctx, subdomainKey(subdomain), storeID, expiration)
}

// InvalidateSubdomain removes the cached registry entry for a subdomain
func (c *Client) InvalidateSubdomain(ctx context.Context, subdomain string) error {
	return c.Delete(ctx, subdomainKey(subdomain))
}

// GetSnapshot retrieves a persisted cart/session snapshot by namespace
func (c *Client) GetSnapshot(ctx context.Context, namespace string) (string, error) {
	return c.Get(ctx, snapshotKey(namespace))
}

// SetSnapshot persists a cart/session snapshot under its namespace.
// Snapshots have no expiration; they outlive any single session.
func (c *Client) SetSnapshot(ctx context.Context, namespace, payload string) error {
	return c.Set(ctx, snapshotKey(namespace), payload, 0)
}

// DeleteSnapshot removes a persisted snapshot
func (c *Client) DeleteSnapshot(ctx context.Context, namespace string) error {
	return c.Delete(ctx, snapshotKey(namespace))
}

// Close closes the Redis client
func (c *Client) Close() error {
	return c.Client.Close()
}

func subdomainKey(subdomain string) string {
	return fmt.Sprintf("store:subdomain:%s", subdomain)
}

func snapshotKey(namespace string) string {
	return fmt.Sprintf("session:snapshot:%s", namespace)
}
