// Package memoize wraps functions so their results are cached by argument.
//
// A wrapped function runs at most once per derived key until the entry
// expires or is cleared; while the cache is disabled the wrapper is a
// pass-through and every call runs the function. Errors from the wrapped
// function propagate unchanged and are never cached.
package memoize

import (
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/ashpect/microcache/pkg/cache"
)

type config struct {
	name    string
	key     string
	ttl     time.Duration
	keyFunc KeyFunc
}

// Option is a functional option for the wrappers.
type Option func(*config)

// WithKey pins every invocation to one fixed cache key. All calls then
// share the entry populated by whichever call ran first, regardless of
// arguments — which may be surprising, so be careful.
func WithKey(key string) Option {
	return func(c *config) {
		c.key = key
	}
}

// WithName overrides the function name used in derived keys. Useful when
// wrapping closures, whose runtime names carry a funcN suffix.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithTTL applies an expiry to the cached results. Zero (the default)
// means cached results never expire.
func WithTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.ttl = ttl
	}
}

// WithKeyFunc replaces the key derivation strategy. See KeyFunc.
func WithKeyFunc(fn KeyFunc) Option {
	return func(c *config) {
		c.keyFunc = fn
	}
}

// wrapper holds the pieces shared by all arities. The singleflight group
// collapses concurrent callers of the same key into one execution.
type wrapper[R any] struct {
	cache *cache.Cache
	cfg   config
	group singleflight.Group
}

func newWrapper[R any](c *cache.Cache, derivedName string, opts ...Option) *wrapper[R] {
	cfg := config{name: derivedName, keyFunc: DefaultKey}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &wrapper[R]{cache: c, cfg: cfg}
}

func (w *wrapper[R]) keyFor(args []any) string {
	if w.cfg.key != "" {
		return w.cfg.key
	}
	return w.cfg.keyFunc(w.cfg.name, args)
}

// cached reports a hit via Has rather than inferring one from the value:
// a cached nil is a real result, and a type assertion on a nil any fails
// for every R, so value-sniffing would turn cached nils into misses.
func (w *wrapper[R]) cached(key string) (R, bool) {
	var zero R
	if h, ok := w.cache.Has(key).(bool); !ok || !h {
		return zero, false
	}
	v := w.cache.Get(key)
	if cache.IsSentinel(v) {
		// expired between Has and Get
		return zero, false
	}
	if v == nil {
		// legitimately cached nil: the zero R is the stored result
		return zero, true
	}
	r, ok := v.(R)
	return r, ok
}

// call implements the memoization protocol: consult the cache, and on a
// miss run invoke under singleflight and store the result. A Disabled
// result from the cache falls through to invoking, and the Upsert's
// Disabled result is ignored — the computed value is returned either way.
func (w *wrapper[R]) call(args []any, invoke func() (R, error)) (R, error) {
	key := w.keyFor(args)

	if r, ok := w.cached(key); ok {
		return r, nil
	}

	v, err, _ := w.group.Do(key, func() (any, error) {
		// A concurrent flight may have populated the entry while this
		// caller was queued behind Do.
		if r, ok := w.cached(key); ok {
			return r, nil
		}
		r, err := invoke()
		if err != nil {
			return nil, err
		}
		w.cache.Upsert(key, r, w.cfg.ttl)
		return r, nil
	})
	if err != nil {
		var zero R
		return zero, err
	}
	if v == nil {
		var zero R
		return zero, nil
	}
	if r, ok := v.(R); ok {
		return r, nil
	}
	// Stored value has an unexpected type (someone wrote to the same key
	// directly). Recompute without caching rather than corrupting the entry.
	return invoke()
}

// Wrap memoizes a no-argument function.
func Wrap[R any](c *cache.Cache, fn func() (R, error), opts ...Option) func() (R, error) {
	w := newWrapper[R](c, funcName(fn), opts...)
	return func() (R, error) {
		return w.call(nil, fn)
	}
}

// Wrap1 memoizes a one-argument function, keyed by the argument.
func Wrap1[A any, R any](c *cache.Cache, fn func(A) (R, error), opts ...Option) func(A) (R, error) {
	w := newWrapper[R](c, funcName(fn), opts...)
	return func(a A) (R, error) {
		return w.call([]any{a}, func() (R, error) { return fn(a) })
	}
}

// Wrap2 memoizes a two-argument function, keyed by both arguments.
func Wrap2[A any, B any, R any](c *cache.Cache, fn func(A, B) (R, error), opts ...Option) func(A, B) (R, error) {
	w := newWrapper[R](c, funcName(fn), opts...)
	return func(a A, b B) (R, error) {
		return w.call([]any{a, b}, func() (R, error) { return fn(a, b) })
	}
}
