package cache

// Sentinel is a distinguished marker communicated through the normal value
// channel. Sentinels compare unequal to every legitimate cached value,
// including a cached false or nil, and unequal to each other.
type Sentinel uint8

const (
	// Miss is returned by Get when the key is absent or expired and no
	// explicit default was supplied.
	Miss Sentinel = iota + 1

	// Disabled is returned by every gated operation while the cache is
	// disabled, regardless of what the operation would otherwise return.
	Disabled
)

func (s Sentinel) String() string {
	switch s {
	case Miss:
		return "CACHE_MISS"
	case Disabled:
		return "CACHE_DISABLED"
	}
	return "CACHE_SENTINEL_UNKNOWN"
}

// IsMiss reports whether v is the Miss sentinel.
func IsMiss(v any) bool {
	s, ok := v.(Sentinel)
	return ok && s == Miss
}

// IsDisabled reports whether v is the Disabled sentinel.
func IsDisabled(v any) bool {
	s, ok := v.(Sentinel)
	return ok && s == Disabled
}

// IsSentinel reports whether v is either sentinel, i.e. not a real value.
func IsSentinel(v any) bool {
	_, ok := v.(Sentinel)
	return ok
}
