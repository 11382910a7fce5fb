package trends

import (
	"context"
	"strings"
	"sync"
	"time"

	"tshirtMarketAi/internal/ai"
)

// Provider fetches current fashion trend intelligence for a timeframe.
type Provider interface {
	Current(ctx context.Context, timeframe string) (map[string]any, error)
}

// NewProvider wires the AI-backed provider, cached per timeframe so repeated
// dashboard polls do not burn upstream quota.
func NewProvider(gateway ai.Gateway, ttl time.Duration) Provider {
	base := &gatewayProvider{gateway: gateway}
	if ttl <= 0 {
		return base
	}
	return &cachedProvider{
		base:    base,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

type gatewayProvider struct {
	gateway ai.Gateway
}

func (p *gatewayProvider) Current(ctx context.Context, timeframe string) (map[string]any, error) {
	return p.gateway.CurrentTrends(ctx, timeframe)
}

type cachedProvider struct {
	base    Provider
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	trends  map[string]any
	expires time.Time
}

func (c *cachedProvider) Current(ctx context.Context, timeframe string) (map[string]any, error) {
	key := normalizeTimeframe(timeframe)
	now := time.Now()

	c.mu.RLock()
	if entry, ok := c.entries[key]; ok && entry.expires.After(now) {
		c.mu.RUnlock()
		return entry.trends, nil
	}
	c.mu.RUnlock()

	trends, err := c.base.Current(ctx, timeframe)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{
		trends:  trends,
		expires: now.Add(c.ttl),
	}
	c.mu.Unlock()

	return trends, nil
}

func normalizeTimeframe(timeframe string) string {
	return strings.ToLower(strings.TrimSpace(timeframe))
}
