package cache

import (
	"sort"
	"strings"
)

// Item is one key/value pair from a listing.
type Item struct {
	Key   string
	Value any
}

// Items returns the live (non-expired) entries sorted by key. A non-empty
// pathRoot restricts the listing to the key equal to pathRoot plus every
// key under the "pathRoot/" namespace; "foo" matches "foo" and "foo/qux"
// but not "foobar" or "unfoo".
//
// Items is an inspection facility, not a cache read: it is deliberately not
// gated by the enabled flag, matching the reference behavior of listing
// whatever is in the store even while disabled.
func (c *Cache) Items(pathRoot string) []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Item, 0, len(c.store))
	prefix := pathRoot + "/"
	for k, e := range c.store {
		if e.expired() {
			continue
		}
		if pathRoot != "" && k != pathRoot && !strings.HasPrefix(k, prefix) {
			continue
		}
		out = append(out, Item{Key: k, Value: e.value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	c.logger.Debug().Str("path_root", pathRoot).Int("count", len(out)).Msg("items")
	return out
}
