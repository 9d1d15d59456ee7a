package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time        { return f.now }
func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func TestTTLCache_HitThenExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	c := New(30*time.Second, WithClock(clock.Now))

	c.Set("snapshot", "v1")

	got, ok := c.Get("snapshot")
	require.True(t, ok)
	assert.Equal(t, "v1", got)

	clock.Advance(29 * time.Second)
	_, ok = c.Get("snapshot")
	assert.True(t, ok, "entry must survive until the TTL elapses")

	clock.Advance(2 * time.Second)
	_, ok = c.Get("snapshot")
	assert.False(t, ok, "entry must expire after the TTL")
}

func TestTTLCache_SetRestartsTTL(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	c := New(30*time.Second, WithClock(clock.Now))

	c.Set("k", "v1")
	clock.Advance(20 * time.Second)
	c.Set("k", "v2")
	clock.Advance(20 * time.Second)

	got, ok := c.Get("k")
	require.True(t, ok, "refreshed entry must live a full TTL from the refresh")
	assert.Equal(t, "v2", got)
}

func TestTTLCache_Invalidate(t *testing.T) {
	c := New(time.Minute)
	c.Set("k", 1)
	c.Invalidate("k")
	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestTTLCache_ZeroTTLDisablesCaching(t *testing.T) {
	c := New(0)
	c.Set("k", 1)
	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestTTLCache_MissOnUnknownKey(t *testing.T) {
	c := New(time.Minute)
	_, ok := c.Get("nope")
	assert.False(t, ok)
}
