// Package cache is a small in-process key-value cache with optional
// per-entry TTL expiry and a master enable/disable gate.
//
// Gated operations signal "cache is off" and "key not there" through the
// normal return channel using the Disabled and Miss sentinels rather than
// errors, so callers can tell them apart from a legitimately cached falsy
// value. A process-wide default cache backs the package-level functions;
// New builds isolated instances.
package cache

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ashpect/microcache/pkg/logging"
)

// Cache is the engine. A single lock guards the store and the
// enabled/debug flags together, so Disable with a clear is observed
// atomically: no reader ever sees the cache disabled with entries still
// visible, or enabled mid-clear.
type Cache struct {
	mu      sync.RWMutex
	store   map[string]*entry
	enabled bool
	debug   bool
	logger  zerolog.Logger
}

// New builds a Cache. By default it is enabled, not in debug, and logs to
// the destination configured via pkg/logging.
func New(opts ...Option) *Cache {
	c := &Cache{
		store:   make(map[string]*entry),
		enabled: true,
		logger:  logging.Logger().With().Str("component", "cache").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Level(levelFor(c.debug))
	return c
}

// Has reports whether key is present and not expired. Returns Disabled
// while the cache is disabled.
func (c *Cache) Has(key string) any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.enabled {
		return Disabled
	}
	ret := c.hasLocked(key)
	c.logger.Debug().Str("key", key).Bool("present", ret).Msg("has")
	return ret
}

func (c *Cache) hasLocked(key string) bool {
	e, ok := c.store[key]
	return ok && !e.expired()
}

// Upsert inserts or unconditionally overwrites the entry for key,
// resetting its creation timestamp. ttl == 0 means no expiry. Returns true
// on success, or Disabled while the cache is disabled (in which case
// nothing is stored).
func (c *Cache) Upsert(key string, value any, ttl time.Duration) any {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return Disabled
	}
	c.logger.Debug().Str("key", key).Dur("ttl", ttl).Msg("upsert")
	c.store[key] = &entry{value: value, ttl: ttl, createdAt: time.Now()}
	return true
}

// Get returns the value stored under key. When the key is absent or
// expired it returns def if supplied, otherwise Miss. Returns Disabled
// while the cache is disabled — even when an explicit default was given.
func (c *Cache) Get(key string, def ...any) any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.enabled {
		return Disabled
	}
	ret := any(Miss)
	if len(def) > 0 {
		ret = def[0]
	}
	hit := false
	if e, ok := c.store[key]; ok && !e.expired() {
		ret = e.value
		hit = true
	}
	c.logger.Debug().Str("key", key).Bool("hit", hit).Msg("get")
	return ret
}

// Clear removes the entry for the given key, or every entry when no key
// (or an empty key) is given. Clearing an absent key is not an error.
// Returns true on success, or Disabled while the cache is disabled.
func (c *Cache) Clear(keys ...string) any {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return Disabled
	}
	c.clearLocked(keys...)
	return true
}

func (c *Cache) clearLocked(keys ...string) {
	if len(keys) > 0 && keys[0] != "" {
		delete(c.store, keys[0])
		c.logger.Info().Str("key", keys[0]).Msg("cache cleared for key")
		return
	}
	c.store = make(map[string]*entry)
	c.logger.Info().Msg("cache cleared for all keys")
}

// Disable turns the cache off. With clearCache (what callers normally
// want) the contents are dropped first, while still enabled, under the
// same lock — the clear and the flag flip are one atomic step. Disabling
// an already-disabled cache never clears.
func (c *Cache) Disable(clearCache bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if clearCache && c.enabled {
		c.clearLocked()
	}
	c.enabled = false
	c.logger.Info().Msg("cache disabled")
}

// Enable (re)enables the cache. Entries dropped by an earlier Disable are
// gone; entries that survived a Disable(false) become visible again.
func (c *Cache) Enable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = true
	c.logger.Info().Msg("cache enabled")
}

// Enabled reports the current state of the master gate.
func (c *Cache) Enabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled
}

// SetDebug flips the debug flag, which only changes log verbosity.
func (c *Cache) SetDebug(debug bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debug = debug
	c.logger = c.logger.Level(levelFor(debug))
}

// TemporarilyDisabled forces the cache off without clearing it and returns
// a restore func that reinstates whatever state was active on entry:
//
//	restore := c.TemporarilyDisabled()
//	defer restore()
//
// The deferred restore runs on every exit path including panic. Calls nest:
// each restore puts back exactly the state captured at its own entry. Not
// coordinated across goroutines; overlapping overrides on one cache from
// several goroutines trample each other.
func (c *Cache) TemporarilyDisabled() (restore func()) {
	return c.override(false)
}

// TemporarilyEnabled is the counterpart of TemporarilyDisabled: it forces
// the cache on and returns the restore func. Nesting composes the same way.
func (c *Cache) TemporarilyEnabled() (restore func()) {
	return c.override(true)
}

func (c *Cache) override(enabled bool) (restore func()) {
	c.mu.Lock()
	prev := c.enabled
	c.enabled = enabled
	c.logger.Debug().Bool("enabled", enabled).Bool("previous", prev).Msg("temporary override")
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		c.enabled = prev
		c.logger.Debug().Bool("enabled", prev).Msg("override restored")
		c.mu.Unlock()
	}
}
