// Package catalog is the read-only view of rule content: classes,
// subclasses, races, feats, choice options, and infusions, served from an
// explicit read-through cache. Content changes rarely, so the cache holds a
// whole bundle for a bounded interval instead of caching per-key.
package catalog

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/sheetforge/sheetforge/internal/domain/rulebook"
	dnderr "github.com/sheetforge/sheetforge/internal/errors"
	"github.com/sheetforge/sheetforge/internal/repositories/content"
)

const defaultTTL = 24 * time.Hour

// Catalog caches the content bundle and answers keyed lookups.
type Catalog struct {
	repo content.Repository
	ttl  time.Duration
	now  func() time.Time

	group singleflight.Group

	mu        sync.RWMutex
	cached    *rulebook.Content
	fetchedAt time.Time
}

// Config holds configuration for the catalog.
type Config struct {
	Repository content.Repository // Required
	TTL        time.Duration      // Cache lifetime, default 24h
	Now        func() time.Time   // Clock override for tests
}

// New creates a Catalog.
func New(cfg *Config) *Catalog {
	if cfg == nil || cfg.Repository == nil {
		panic("content repository is required")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Catalog{
		repo: cfg.Repository,
		ttl:  ttl,
		now:  now,
	}
}

// Content returns the cached bundle, refreshing it when expired. Concurrent
// refreshes collapse into a single repository load.
func (c *Catalog) Content(ctx context.Context) (*rulebook.Content, error) {
	c.mu.RLock()
	cached, fetchedAt := c.cached, c.fetchedAt
	c.mu.RUnlock()

	if cached != nil && c.now().Sub(fetchedAt) < c.ttl {
		return cached, nil
	}

	result, err, _ := c.group.Do("content", func() (any, error) {
		bundle, err := c.repo.GetContent(ctx)
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to load rule content")
		}

		c.mu.Lock()
		c.cached = bundle
		c.fetchedAt = c.now()
		c.mu.Unlock()

		return bundle, nil
	})
	if err != nil {
		// Serve a stale bundle over failing the read if we have one.
		if cached != nil {
			return cached, nil
		}
		return nil, err
	}

	return result.(*rulebook.Content), nil
}

// Invalidate drops the cached bundle so the next read reloads.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	c.cached = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}

// Class looks up a class by key.
func (c *Catalog) Class(ctx context.Context, key string) (*rulebook.Class, error) {
	bundle, err := c.Content(ctx)
	if err != nil {
		return nil, err
	}
	if class, ok := bundle.Classes[key]; ok {
		return class, nil
	}
	return nil, dnderr.NotFoundf("class '%s' not found", key).WithMeta("class_key", key)
}

// Subclass looks up a subclass by key.
func (c *Catalog) Subclass(ctx context.Context, key string) (*rulebook.Subclass, error) {
	bundle, err := c.Content(ctx)
	if err != nil {
		return nil, err
	}
	if sc, ok := bundle.Subclasses[key]; ok {
		return sc, nil
	}
	return nil, dnderr.NotFoundf("subclass '%s' not found", key).WithMeta("subclass_key", key)
}

// Race looks up a race by key.
func (c *Catalog) Race(ctx context.Context, key string) (*rulebook.Race, error) {
	bundle, err := c.Content(ctx)
	if err != nil {
		return nil, err
	}
	if race, ok := bundle.Races[key]; ok {
		return race, nil
	}
	return nil, dnderr.NotFoundf("race '%s' not found", key).WithMeta("race_key", key)
}

// Feat looks up a feat by key.
func (c *Catalog) Feat(ctx context.Context, key string) (*rulebook.Feat, error) {
	bundle, err := c.Content(ctx)
	if err != nil {
		return nil, err
	}
	if feat, ok := bundle.Feats[key]; ok {
		return feat, nil
	}
	return nil, dnderr.NotFoundf("feat '%s' not found", key).WithMeta("feat_key", key)
}

// Option looks up a choice option by key.
func (c *Catalog) Option(ctx context.Context, key string) (*rulebook.ChoiceOption, error) {
	bundle, err := c.Content(ctx)
	if err != nil {
		return nil, err
	}
	if opt, ok := bundle.Options[key]; ok {
		return opt, nil
	}
	return nil, dnderr.NotFoundf("choice option '%s' not found", key).WithMeta("option_key", key)
}

// Infusion looks up an infusion by key.
func (c *Catalog) Infusion(ctx context.Context, key string) (*rulebook.Infusion, error) {
	bundle, err := c.Content(ctx)
	if err != nil {
		return nil, err
	}
	if inf, ok := bundle.Infusions[key]; ok {
		return inf, nil
	}
	return nil, dnderr.NotFoundf("infusion '%s' not found", key).WithMeta("infusion_key", key)
}
