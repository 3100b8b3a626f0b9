package tenants

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shariarfaisal/snapshop/internal/cache"
	"github.com/shariarfaisal/snapshop/internal/repository"
)

// cacheTTL bounds how long a subdomain lookup is served from Redis
// before the master database is consulted again.
const cacheTTL = 24 * time.Hour

// Registry resolves subdomains against the master store table with a
// Redis cache in front. It implements routing.Registry.
type Registry struct {
	repo  *repository.StoreRepository
	cache *cache.Client
}

func NewRegistry(repo *repository.StoreRepository, cacheClient *cache.Client) *Registry {
	return &Registry{repo: repo, cache: cacheClient}
}

// IsValidSubdomain reports whether the subdomain names a known, active
// store. Lookup failures are treated as "unknown tenant"; the router
// turns that into a not-found redirect, never an error response.
func (g *Registry) IsValidSubdomain(ctx context.Context, subdomain string) bool {
	if subdomain == "" {
		return false
	}

	if g.cache != nil {
		cached, err := g.cache.GetStoreID(ctx, subdomain)
		if err != nil && !errors.Is(err, redis.Nil) {
			log.Printf("redis error resolving subdomain %q: %v", subdomain, err)
		}
		if cached != "" {
			return true
		}
	}

	store, err := g.repo.GetBySubdomain(ctx, subdomain)
	if err != nil {
		if !errors.Is(err, repository.ErrStoreNotFound) {
			log.Printf("error resolving subdomain %q: %v", subdomain, err)
		}
		return false
	}

	if !store.Active {
		return false
	}

	if g.cache != nil {
		if err := g.cache.SetStoreID(ctx, subdomain, strconv.Itoa(store.ID), cacheTTL); err != nil {
			log.Printf("failed to cache subdomain %q: %v", subdomain, err)
		}
	}

	return true
}
