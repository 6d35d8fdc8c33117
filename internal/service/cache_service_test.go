package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cashper-api/internal/domain"
	"cashper-api/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestCache(t *testing.T) (*CacheService, *miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient("redis://"+mr.Addr(), "test", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return NewCacheService(client, zap.NewNop()), mr, client
}

func sampleStatistics() *domain.ContactStatistics {
	return &domain.ContactStatistics{
		Total: 3,
		ByStatus: map[domain.SubmissionStatus]int64{
			domain.StatusNew:        2,
			domain.StatusInProgress: 0,
			domain.StatusResolved:   1,
			domain.StatusClosed:     0,
		},
		Unread: 2,
		Today:  1,
	}
}

func TestGetStatisticsWithCache_MissThenHit(t *testing.T) {
	cache, _, client := newTestCache(t)
	ctx := context.Background()

	calls := 0
	fallback := func(_ context.Context) (*domain.ContactStatistics, error) {
		calls++
		return sampleStatistics(), nil
	}

	stats, err := cache.GetStatisticsWithCache(ctx, fallback)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, 1, calls)

	// The write happens off the request path
	key := client.KeyBuilder.KeyContactStats()
	require.Eventually(t, func() bool {
		val, getErr := client.Get(ctx, key)
		return getErr == nil && val != ""
	}, 2*time.Second, 10*time.Millisecond, "statistics should land in the cache")

	again, err := cache.GetStatisticsWithCache(ctx, fallback)
	require.NoError(t, err)
	assert.Equal(t, int64(3), again.Total)
	assert.Equal(t, 1, calls, "cache hit must not call the fallback")
}

func TestGetStatisticsWithCache_CorruptedFallsBack(t *testing.T) {
	_, mr, client := newTestCache(t)
	core, logs := observer.New(zapcore.WarnLevel)
	cache := NewCacheService(client, zap.New(core))
	ctx := context.Background()

	key := client.KeyBuilder.KeyContactStats()
	require.NoError(t, mr.Set(key, "{not-json"))

	stats, err := cache.GetStatisticsWithCache(ctx, func(_ context.Context) (*domain.ContactStatistics, error) {
		return sampleStatistics(), nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)

	// The warning names the decode failure, not a nil error
	entries := logs.FilterMessage("Statistics cache corrupted, falling back to database").All()
	require.Len(t, entries, 1)
	assert.NotNil(t, entries[0].ContextMap()["error"])
}

func TestGetPublicFAQsWithCache_CorruptedFallsBack(t *testing.T) {
	_, mr, client := newTestCache(t)
	core, logs := observer.New(zapcore.WarnLevel)
	cache := NewCacheService(client, zap.New(core))
	ctx := context.Background()

	key := client.KeyBuilder.KeyFAQPublic("loans")
	require.NoError(t, mr.Set(key, "[broken"))

	entries, err := cache.GetPublicFAQsWithCache(ctx, "loans", func(_ context.Context) ([]*domain.FAQEntry, error) {
		return []*domain.FAQEntry{{ID: "faq-1", Category: domain.FAQCategoryLoans, Question: "Q", Answer: "A", IsActive: true}}, nil
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	logged := logs.FilterMessage("FAQ cache corrupted, falling back to database").All()
	require.Len(t, logged, 1)
	assert.NotNil(t, logged[0].ContextMap()["error"])
}

func TestInvalidateStatistics(t *testing.T) {
	cache, mr, client := newTestCache(t)
	ctx := context.Background()

	key := client.KeyBuilder.KeyContactStats()
	data, err := json.Marshal(sampleStatistics())
	require.NoError(t, err)
	require.NoError(t, mr.Set(key, string(data)))

	cache.InvalidateStatistics(ctx)
	assert.False(t, mr.Exists(key))
}

func TestGetPublicFAQsWithCache_MissThenHit(t *testing.T) {
	cache, _, client := newTestCache(t)
	ctx := context.Background()

	entries := []*domain.FAQEntry{
		{ID: "faq-1", Category: domain.FAQCategoryLoans, Question: "Q", Answer: "A", IsActive: true},
	}

	calls := 0
	fallback := func(_ context.Context) ([]*domain.FAQEntry, error) {
		calls++
		return entries, nil
	}

	got, err := cache.GetPublicFAQsWithCache(ctx, "loans", fallback)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, calls)

	key := client.KeyBuilder.KeyFAQPublic("loans")
	require.Eventually(t, func() bool {
		val, getErr := client.Get(ctx, key)
		return getErr == nil && val != ""
	}, 2*time.Second, 10*time.Millisecond)

	again, err := cache.GetPublicFAQsWithCache(ctx, "loans", fallback)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, "faq-1", again[0].ID)
	assert.Equal(t, 1, calls)
}

func TestInvalidateFAQs_DropsEveryCategory(t *testing.T) {
	cache, mr, client := newTestCache(t)
	ctx := context.Background()

	categories := []string{"all", "general", "loans", "insurance", "investments", "tax"}
	for _, category := range categories {
		require.NoError(t, mr.Set(client.KeyBuilder.KeyFAQPublic(category), "[]"))
	}

	cache.InvalidateFAQs(ctx)

	for _, category := range categories {
		assert.False(t, mr.Exists(client.KeyBuilder.KeyFAQPublic(category)), "category %s should be invalidated", category)
	}
}
