package cache

import "github.com/rs/zerolog"

// Option is a functional option for building a Cache.
type Option func(*Cache)

// WithEnabled sets the initial enabled state. Defaults to true.
func WithEnabled(enabled bool) Option {
	return func(c *Cache) {
		c.enabled = enabled
	}
}

// WithDebug sets the debug flag. Debug only changes log verbosity, it has
// no effect on cache semantics.
func WithDebug(debug bool) Option {
	return func(c *Cache) {
		c.debug = debug
	}
}

// WithLogger overrides the logger the cache emits operation traces to.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// levelFor maps the debug flag to the engine logger level.
func levelFor(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
