package service

import (
	"context"
	"encoding/json"
	"time"

	"cashper-api/internal/domain"
	"cashper-api/pkg/redis"
	"go.uber.org/zap"
)

// CacheService provides cache-aside access to the read-heavy contact data.
// Any cache failure falls back to the store; the cache is never authoritative.
type CacheService struct {
	redis  *redis.Client
	logger *zap.Logger
}

// NewCacheService creates a new cache service
func NewCacheService(redisClient *redis.Client, logger *zap.Logger) *CacheService {
	return &CacheService{
		redis:  redisClient,
		logger: logger,
	}
}

// GetStatisticsWithCache retrieves contact statistics with cache-aside pattern
func (c *CacheService) GetStatisticsWithCache(ctx context.Context, dbFallback func(ctx context.Context) (*domain.ContactStatistics, error)) (*domain.ContactStatistics, error) {
	cacheKey := c.redis.KeyBuilder.KeyContactStats()

	cachedData, err := c.redis.Get(ctx, cacheKey)
	if err == nil && cachedData != "" {
		var stats domain.ContactStatistics
		unmarshalErr := json.Unmarshal([]byte(cachedData), &stats)
		if unmarshalErr == nil {
			c.logger.Debug("Statistics cache hit")
			return &stats, nil
		}
		c.logger.Warn("Statistics cache corrupted, falling back to database",
			zap.Error(unmarshalErr))
	} else if err != nil && err != redis.Nil {
		c.logger.Warn("Statistics cache error, falling back to database",
			zap.Error(err))
	}

	stats, err := dbFallback(ctx)
	if err != nil {
		return nil, err
	}

	go c.cacheAsync(cacheKey, stats, redis.TTLStatistics)

	return stats, nil
}

// InvalidateStatistics drops the cached statistics after a write
func (c *CacheService) InvalidateStatistics(ctx context.Context) {
	if err := c.redis.Delete(ctx, c.redis.KeyBuilder.KeyContactStats()); err != nil {
		c.logger.Warn("Failed to invalidate statistics cache", zap.Error(err))
	}
}

// GetPublicFAQsWithCache retrieves the public FAQ list for a category filter
// with cache-aside pattern. categoryKey is "all" for the unfiltered list.
func (c *CacheService) GetPublicFAQsWithCache(ctx context.Context, categoryKey string, dbFallback func(ctx context.Context) ([]*domain.FAQEntry, error)) ([]*domain.FAQEntry, error) {
	cacheKey := c.redis.KeyBuilder.KeyFAQPublic(categoryKey)

	cachedData, err := c.redis.Get(ctx, cacheKey)
	if err == nil && cachedData != "" {
		var entries []*domain.FAQEntry
		unmarshalErr := json.Unmarshal([]byte(cachedData), &entries)
		if unmarshalErr == nil {
			c.logger.Debug("FAQ cache hit", zap.String("category", categoryKey))
			return entries, nil
		}
		c.logger.Warn("FAQ cache corrupted, falling back to database",
			zap.String("category", categoryKey),
			zap.Error(unmarshalErr))
	} else if err != nil && err != redis.Nil {
		c.logger.Warn("FAQ cache error, falling back to database",
			zap.String("category", categoryKey),
			zap.Error(err))
	}

	entries, err := dbFallback(ctx)
	if err != nil {
		return nil, err
	}

	go c.cacheAsync(cacheKey, entries, redis.TTLFAQList)

	return entries, nil
}

// InvalidateFAQs drops every cached public FAQ list after an FAQ mutation
func (c *CacheService) InvalidateFAQs(ctx context.Context) {
	keys := []string{c.redis.KeyBuilder.KeyFAQPublic("all")}
	for _, category := range []domain.FAQCategory{
		domain.FAQCategoryGeneral,
		domain.FAQCategoryLoans,
		domain.FAQCategoryInsurance,
		domain.FAQCategoryInvestments,
		domain.FAQCategoryTax,
	} {
		keys = append(keys, c.redis.KeyBuilder.KeyFAQPublic(string(category)))
	}

	if err := c.redis.Delete(ctx, keys...); err != nil {
		c.logger.Warn("Failed to invalidate FAQ cache", zap.Error(err))
	}
}

// cacheAsync stores a value in the background so the request never waits on
// the cache write
func (c *CacheService) cacheAsync(key string, value interface{}, ttl time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Failed to marshal value for cache", zap.Error(err))
		return
	}

	if err := c.redis.Set(ctx, key, string(data), ttl); err != nil {
		c.logger.Warn("Failed to cache value", zap.Error(err))
	}
}
