package usecase

import (
	"sync"
	"time"

	"github.com/devinvenable/github-stats/internal/domain"
)

// EntityCache stores previously resolved users for the lifetime of the
// owning session. There is no TTL and no eviction: CachedAt is advisory
// staleness metadata only. Raw events are not retained; only the derived
// per-day commit series is kept, so cache hits can serve repository and
// language data but read as zero push activity when re-aggregated.
type EntityCache struct {
	mu      sync.RWMutex
	entries map[string]*domain.CacheEntry
}

// NewEntityCache creates an empty cache.
func NewEntityCache() *EntityCache {
	return &EntityCache{entries: make(map[string]*domain.CacheEntry)}
}

// Get returns the cached entry for a login, if present.
func (c *EntityCache) Get(login string) (*domain.CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[login]
	return entry, ok
}

// Put stores a resolved user. Callers only put users whose profile fetch
// succeeded; a failed re-fetch never reaches the cache and therefore never
// downgrades an existing entry.
func (c *EntityCache) Put(login string, profile *domain.Profile, repos []domain.Repository, series domain.DateSeries) {
	if repos == nil {
		repos = []domain.Repository{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[login] = &domain.CacheEntry{
		Profile:      profile,
		Repositories: repos,
		CommitSeries: series,
		CachedAt:     time.Now(),
	}
}

// Merge combines cache-sourced logins with freshly fetched records into a
// single record map for aggregation. Cached users are synthesized with an
// empty event list — their aggregated commit activity reads as zero, a
// deliberate precision loss since raw events are not retained. When a login
// appears in both inputs, the fresh record wins; the cached entry itself is
// never touched.
func (c *EntityCache) Merge(cachedLogins []string, fresh map[string]*domain.EntityRecord) map[string]*domain.EntityRecord {
	combined := make(map[string]*domain.EntityRecord, len(cachedLogins)+len(fresh))
	for _, login := range cachedLogins {
		entry, ok := c.Get(login)
		if !ok {
			continue
		}
		combined[login] = &domain.EntityRecord{
			Profile:      entry.Profile,
			Repositories: entry.Repositories,
			Events:       []domain.ActivityEvent{},
		}
	}
	for login, rec := range fresh {
		combined[login] = rec
	}
	return combined
}
