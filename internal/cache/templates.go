// Package cache provides TTL-based caching for template metadata.
// It reduces calls to the AtomicAssets API, whose template records change
// rarely relative to how often blend recommendations are computed.
package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/futures-relic/relic-atelier/internal/adapter"
	"github.com/futures-relic/relic-atelier/internal/domain"
	"github.com/futures-relic/relic-atelier/internal/logger"
)

// TemplateCache provides cached access to template metadata keyed by
// template id.
//
//go:generate mockgen -source=templates.go -destination=../mocks/template_cache.go -package=mocks -mock_names=TemplateCache=MockTemplateCache
type TemplateCache interface {
	// Get returns the cached template, or false when absent or expired
	Get(templateID string) (*domain.TemplateInfo, bool)
	// Set stores a template, resetting its expiry
	Set(templateID string, info *domain.TemplateInfo)
	// Sweep evicts expired entries and returns how many were removed
	Sweep(ctx context.Context) int
	// Len returns the number of entries, expired ones included
	Len() int
}

type cacheEntry struct {
	info     *domain.TemplateInfo
	storedAt time.Time
}

// ttlCache implements TemplateCache with per-entry TTL expiry.
// Expiry is lazy: Get treats stale entries as misses, and Sweep reclaims
// the memory behind them.
type ttlCache struct {
	ttl   time.Duration
	clock adapter.Clock

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// NewTTLCache creates a template cache whose entries expire after ttl
func NewTTLCache(ttl time.Duration, clock adapter.Clock) TemplateCache {
	return &ttlCache{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached template if present and fresh
func (c *ttlCache) Get(templateID string) (*domain.TemplateInfo, bool) {
	c.mu.RLock()
	entry, ok := c.entries[templateID]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.clock.Now().Sub(entry.storedAt) >= c.ttl {
		return nil, false
	}
	return entry.info, true
}

// Set stores a template, resetting its expiry
func (c *ttlCache) Set(templateID string, info *domain.TemplateInfo) {
	c.mu.Lock()
	c.entries[templateID] = cacheEntry{
		info:     info,
		storedAt: c.clock.Now(),
	}
	c.mu.Unlock()
}

// Sweep evicts expired entries and returns how many were removed
func (c *ttlCache) Sweep(ctx context.Context) int {
	now := c.clock.Now()

	c.mu.Lock()
	var evicted int
	for templateID, entry := range c.entries {
		if now.Sub(entry.storedAt) >= c.ttl {
			delete(c.entries, templateID)
			evicted++
		}
	}
	remaining := len(c.entries)
	c.mu.Unlock()

	if evicted > 0 {
		logger.DebugCtx(ctx, "swept expired template cache entries",
			zap.Int("evicted", evicted),
			zap.Int("remaining", remaining),
		)
	}
	return evicted
}

// Len returns the number of entries, expired ones included
func (c *ttlCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// nopCache never stores anything. It is useful for tests and for
// deployments that disable caching via configuration.
type nopCache struct{}

// NewNopCache creates a cache that always misses
func NewNopCache() TemplateCache {
	return nopCache{}
}

func (nopCache) Get(string) (*domain.TemplateInfo, bool) { return nil, false }
func (nopCache) Set(string, *domain.TemplateInfo)        {}
func (nopCache) Sweep(context.Context) int               { return 0 }
func (nopCache) Len() int                                { return 0 }
