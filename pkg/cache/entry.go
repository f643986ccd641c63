package cache

import "time"

// entry holds one cached value. ttl == 0 means the entry never expires.
type entry struct {
	value     any
	ttl       time.Duration
	createdAt time.Time
}

// expired reports whether the entry has outlived its ttl. Expired entries
// are treated as absent but stay in the map until cleared or overwritten.
func (e *entry) expired() bool {
	// time.Since uses the monotonic clock, so wall-clock jumps don't
	// expire (or resurrect) entries.
	return e.ttl > 0 && time.Since(e.createdAt) > e.ttl
}
