package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestItemsPathFilter(t *testing.T) {
	c := New()
	c.Upsert("foo", "bar", 0)
	c.Upsert("unfoo", "unbar", 0)
	c.Upsert("foo/qux", "baz", 0)

	got := c.Items("foo")
	assert.Equal(t, []Item{
		{Key: "foo", Value: "bar"},
		{Key: "foo/qux", Value: "baz"},
	}, got)
}

func TestItemsSortedByKey(t *testing.T) {
	c := New()
	// inserted out of order on purpose
	c.Upsert("c", 3, 0)
	c.Upsert("a", 1, 0)
	c.Upsert("b", 2, 0)

	got := c.Items("")
	assert.Equal(t, []Item{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
		{Key: "c", Value: 3},
	}, got)
}

func TestItemsExcludesExpired(t *testing.T) {
	c := New()
	c.Upsert("stale", "x", 20*time.Millisecond)
	c.Upsert("fresh", "y", 0)

	time.Sleep(30 * time.Millisecond)
	got := c.Items("")
	assert.Equal(t, []Item{{Key: "fresh", Value: "y"}}, got)
}

func TestItemsIgnoresEnabledFlag(t *testing.T) {
	c := New()
	c.Upsert("key1", "value1", 0)
	c.Disable(false)

	// listing still works while disabled (reference behavior)
	got := c.Items("")
	assert.Equal(t, []Item{{Key: "key1", Value: "value1"}}, got)
}

func TestItemsPrefixIsPathAware(t *testing.T) {
	c := New()
	c.Upsert("foo", 1, 0)
	c.Upsert("foobar", 2, 0)
	c.Upsert("foo/sub", 3, 0)

	got := c.Items("foo")
	assert.Equal(t, []Item{
		{Key: "foo", Value: 1},
		{Key: "foo/sub", Value: 3},
	}, got)
}
