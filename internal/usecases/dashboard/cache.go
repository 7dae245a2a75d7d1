package dashboard

import (
	"sync"

	"github.com/imobiflow/imobiflow-api/internal/domain"
)

const defaultCacheCapacity = 256

// InsightCache memoiza DeriveInsights pela própria struct de estatísticas.
// Ao atingir a capacidade o mapa é descartado por inteiro.
type InsightCache struct {
	mu       sync.RWMutex
	entries  map[domain.DashboardStats]domain.Insights
	capacity int
	derive   func(domain.DashboardStats) domain.Insights
}

func NewInsightCache(capacity int) *InsightCache {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}

	return &InsightCache{
		entries:  make(map[domain.DashboardStats]domain.Insights),
		capacity: capacity,
		derive:   DeriveInsights,
	}
}

func (c *InsightCache) Get(stats domain.DashboardStats) domain.Insights {
	c.mu.RLock()
	insights, ok := c.entries[stats]
	c.mu.RUnlock()
	if ok {
		return insights
	}

	insights = c.derive(stats)

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.capacity {
		c.entries = make(map[domain.DashboardStats]domain.Insights)
	}
	c.entries[stats] = insights

	return insights
}

func (c *InsightCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
