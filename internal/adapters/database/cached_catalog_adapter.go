package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Japacho1/tasky/internal/domain/entities"
	"github.com/Japacho1/tasky/internal/domain/providers"
	"github.com/Japacho1/tasky/internal/domain/repositories"
	"github.com/Japacho1/tasky/internal/infrastructure/observability"
)

// CachedCatalogAdapter wraps a ServiceRepository with read-through caching.
// The catalog is static reference data, so the full list and per-provider
// sets cache well; provider-set writes invalidate the provider's entry.
type CachedCatalogAdapter struct {
	adapter repositories.ServiceRepository
	cache   providers.CacheProvider
}

// NewCachedCatalogAdapter creates a new cached catalog adapter
func NewCachedCatalogAdapter(adapter repositories.ServiceRepository, cache providers.CacheProvider) repositories.ServiceRepository {
	return &CachedCatalogAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Cache TTLs (in seconds)
const (
	serviceListTTL     = 600 // the catalog only changes on reseed
	providerServiceTTL = 120
)

const serviceListCacheKey = "services:list"

func providerServicesCacheKey(providerID string) string {
	return fmt.Sprintf("services:provider:%s", providerID)
}

// List returns the full service catalog with caching
func (a *CachedCatalogAdapter) List(ctx context.Context) ([]entities.Service, error) {
	if cached, err := a.cache.Get(ctx, serviceListCacheKey); err == nil {
		var services []entities.Service
		if err := json.Unmarshal(cached, &services); err == nil {
			return services, nil
		}
	}

	services, err := a.adapter.List(ctx)
	if err != nil {
		return nil, err
	}

	a.store(serviceListCacheKey, services, serviceListTTL)
	return services, nil
}

// ListByProvider returns the services a provider offers with caching
func (a *CachedCatalogAdapter) ListByProvider(ctx context.Context, providerID string) ([]entities.Service, error) {
	cacheKey := providerServicesCacheKey(providerID)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var services []entities.Service
		if err := json.Unmarshal(cached, &services); err == nil {
			return services, nil
		}
	}

	services, err := a.adapter.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	a.store(cacheKey, services, providerServiceTTL)
	return services, nil
}

// ReplaceForProvider delegates to the inner adapter and invalidates the
// provider's cached service set.
func (a *CachedCatalogAdapter) ReplaceForProvider(ctx context.Context, providerID string, serviceIDs []string) error {
	if err := a.adapter.ReplaceForProvider(ctx, providerID, serviceIDs); err != nil {
		return err
	}

	if err := a.cache.Delete(ctx, providerServicesCacheKey(providerID)); err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("provider_id", providerID).
			Msg("failed to invalidate provider service cache")
	}

	return nil
}

// ProviderOffers is a point lookup on the live set; it bypasses the cache so
// request creation never validates against a stale membership.
func (a *CachedCatalogAdapter) ProviderOffers(ctx context.Context, providerID, serviceID string) (bool, error) {
	return a.adapter.ProviderOffers(ctx, providerID, serviceID)
}

func (a *CachedCatalogAdapter) store(key string, services []entities.Service, ttl int) {
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(services); err == nil {
			if err := a.cache.Set(bgCtx, key, data, ttl); err != nil {
				observability.GetLogger().Warn().Err(err).Str("key", key).Msg("failed to cache services")
			}
		}
	}()
}
