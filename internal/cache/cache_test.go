package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func TestCache_GetSet(t *testing.T) {
	clk := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New[string](5*time.Minute, clk.Now)

	_, ok := c.Get("30d")
	assert.False(t, ok)

	c.Set("30d", "stats")
	v, ok := c.Get("30d")
	assert.True(t, ok)
	assert.Equal(t, "stats", v)
}

func TestCache_TTLExpiry(t *testing.T) {
	clk := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New[int](5*time.Minute, clk.Now)

	c.Set("k", 42)

	clk.Advance(5*time.Minute - time.Second)
	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	clk.Advance(time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)

	// Evicted on the stale read, not just hidden.
	clk.Advance(-2 * time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestCache_SetResetsAge(t *testing.T) {
	clk := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New[int](5*time.Minute, clk.Now)

	c.Set("k", 1)
	clk.Advance(4 * time.Minute)
	c.Set("k", 2)
	clk.Advance(4 * time.Minute)

	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestCache_InvalidateAndPurge(t *testing.T) {
	c := New[int](0, nil)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Invalidate("a")
	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)

	c.Purge()
	_, ok = c.Get("b")
	assert.False(t, ok)
}
