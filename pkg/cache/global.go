package cache

import "time"

// std is the process-wide default cache backing the package-level
// functions. It is built once at init and lives for the whole process.
var std = New()

// Default returns the process-wide default cache.
func Default() *Cache {
	return std
}

// Has reports whether key is in the default cache. See Cache.Has.
func Has(key string) any {
	return std.Has(key)
}

// Upsert stores value under key in the default cache. See Cache.Upsert.
func Upsert(key string, value any, ttl time.Duration) any {
	return std.Upsert(key, value, ttl)
}

// Get reads key from the default cache. See Cache.Get.
func Get(key string, def ...any) any {
	return std.Get(key, def...)
}

// Clear removes one key (or everything) from the default cache. See
// Cache.Clear.
func Clear(keys ...string) any {
	return std.Clear(keys...)
}

// Items lists the default cache. See Cache.Items.
func Items(pathRoot string) []Item {
	return std.Items(pathRoot)
}

// Disable turns the default cache off. See Cache.Disable.
func Disable(clearCache bool) {
	std.Disable(clearCache)
}

// Enable (re)enables the default cache.
func Enable() {
	std.Enable()
}

// SetDebug flips the default cache's debug flag.
func SetDebug(debug bool) {
	std.SetDebug(debug)
}

// TemporarilyDisabled forces the default cache off until the returned
// restore func runs. See Cache.TemporarilyDisabled.
func TemporarilyDisabled() (restore func()) {
	return std.TemporarilyDisabled()
}

// TemporarilyEnabled forces the default cache on until the returned
// restore func runs. See Cache.TemporarilyEnabled.
func TemporarilyEnabled() (restore func()) {
	return std.TemporarilyEnabled()
}
