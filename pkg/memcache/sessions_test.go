package mem_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wayfare/internal/planner"
	mem "wayfare/pkg/memcache"
)

// TestGetOrCreate_reusesLiveSession verifies the same user+itinerary pair
// gets the same store back while distinct pairs stay isolated.
func TestGetOrCreate_reusesLiveSession(t *testing.T) {
	r := mem.NewSessionRegistry(time.Minute)
	build := func() *planner.Store { return planner.NewStore("u", 1, nil) }

	first, created := r.GetOrCreate("u", 1, build)
	require.True(t, created)

	second, created := r.GetOrCreate("u", 1, build)
	require.False(t, created)
	require.Same(t, first, second)

	other, created := r.GetOrCreate("u", 2, build)
	require.True(t, created)
	require.NotSame(t, first, other)

	otherUser, created := r.GetOrCreate("v", 1, build)
	require.True(t, created)
	require.NotSame(t, first, otherUser)
}

// TestGetOrCreate_expiresIdleSessions verifies an expired entry is replaced
// by a fresh store.
func TestGetOrCreate_expiresIdleSessions(t *testing.T) {
	r := mem.NewSessionRegistry(10 * time.Millisecond)
	build := func() *planner.Store { return planner.NewStore("u", 1, nil) }

	first, _ := r.GetOrCreate("u", 1, build)
	time.Sleep(20 * time.Millisecond)

	second, created := r.GetOrCreate("u", 1, build)
	require.True(t, created)
	require.NotSame(t, first, second)
}

// TestDrop verifies a dropped session is rebuilt on next access.
func TestDrop(t *testing.T) {
	r := mem.NewSessionRegistry(time.Minute)
	build := func() *planner.Store { return planner.NewStore("u", 1, nil) }

	first, _ := r.GetOrCreate("u", 1, build)
	r.Drop("u", 1)

	second, created := r.GetOrCreate("u", 1, build)
	require.True(t, created)
	require.NotSame(t, first, second)
}
