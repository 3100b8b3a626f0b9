package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shariarfaisal/snapshop/internal/cache"
)

// RedisPersister keeps the snapshot in Redis, keyed by namespace.
type RedisPersister struct {
	client    *cache.Client
	namespace string
}

func NewRedisPersister(client *cache.Client, namespace string) *RedisPersister {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &RedisPersister{client: client, namespace: namespace}
}

func (p *RedisPersister) Save(ctx context.Context, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := p.client.SetSnapshot(ctx, p.namespace, string(data)); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}
	return nil
}

func (p *RedisPersister) Load(ctx context.Context) (Snapshot, bool, error) {
	payload, err := p.client.GetSnapshot(ctx, p.namespace)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, true, nil
}

func (p *RedisPersister) Clear(ctx context.Context) error {
	return p.client.DeleteSnapshot(ctx, p.namespace)
}
