package dashboard

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imobiflow/imobiflow-api/internal/domain"
)

func countingCache(capacity int) (*InsightCache, *int) {
	calls := 0
	cache := NewInsightCache(capacity)
	cache.derive = func(stats domain.DashboardStats) domain.Insights {
		calls++
		return DeriveInsights(stats)
	}
	return cache, &calls
}

func TestInsightCache_Get(t *testing.T) {
	cache, calls := countingCache(4)
	stats := domain.DashboardStats{Total: 10, Available: 6, Sold: 3, Rented: 1, TotalValue: 5000000}

	first := cache.Get(stats)
	second := cache.Get(stats)

	assert.Equal(t, first, second)
	assert.Equal(t, DeriveInsights(stats), first)
	assert.Equal(t, 1, *calls)
	assert.Equal(t, 1, cache.Len())
}

func TestInsightCache_DistinctStats(t *testing.T) {
	cache, calls := countingCache(4)

	cache.Get(domain.DashboardStats{Total: 1})
	cache.Get(domain.DashboardStats{Total: 2})
	cache.Get(domain.DashboardStats{Total: 1, TotalValue: 0.5})

	assert.Equal(t, 3, *calls)
	assert.Equal(t, 3, cache.Len())
}

func TestInsightCache_ResetsWhenFull(t *testing.T) {
	cache, calls := countingCache(2)

	cache.Get(domain.DashboardStats{Total: 1})
	cache.Get(domain.DashboardStats{Total: 2})
	assert.Equal(t, 2, cache.Len())

	cache.Get(domain.DashboardStats{Total: 3})
	assert.Equal(t, 1, cache.Len())

	// a primeira entrada foi descartada e precisa ser recalculada
	cache.Get(domain.DashboardStats{Total: 1})
	assert.Equal(t, 4, *calls)
}

func TestInsightCache_DefaultCapacity(t *testing.T) {
	cache := NewInsightCache(0)
	assert.Equal(t, defaultCacheCapacity, cache.capacity)
}

func TestInsightCache_Concurrent(t *testing.T) {
	cache := NewInsightCache(8)
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			stats := domain.DashboardStats{Total: i % 4, Available: i % 2}
			assert.Equal(t, DeriveInsights(stats), cache.Get(stats))
		}(i)
	}

	wg.Wait()
	assert.LessOrEqual(t, cache.Len(), 8)
}
