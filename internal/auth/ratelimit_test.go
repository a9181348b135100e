package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimiterBlocksAfterMaxAttempts(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute, time.Minute)
	t.Cleanup(rl.Stop)

	for i := 0; i < 3; i++ {
		require.True(t, rl.Allow("10.0.0.1"))
	}
	require.False(t, rl.Allow("10.0.0.1"))
	require.False(t, rl.BlockedUntil("10.0.0.1").IsZero())

	// Other keys are unaffected
	require.True(t, rl.Allow("10.0.0.2"))
}

func TestRateLimiterRecordSuccessResets(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute, time.Minute)
	t.Cleanup(rl.Stop)

	require.True(t, rl.Allow("10.0.0.1"))
	require.True(t, rl.Allow("10.0.0.1"))
	rl.RecordSuccess("10.0.0.1")

	for i := 0; i < 3; i++ {
		require.True(t, rl.Allow("10.0.0.1"))
	}
	require.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	rl := NewRateLimiter(2, 10*time.Millisecond, time.Minute)
	t.Cleanup(rl.Stop)

	require.True(t, rl.Allow("10.0.0.1"))
	require.True(t, rl.Allow("10.0.0.1"))

	// A new window starts once the old one has passed
	time.Sleep(20 * time.Millisecond)
	require.True(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiterStop(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute, time.Minute)

	// Stop only ends the background sweep; limiting still works, and a
	// second Stop is harmless
	rl.Stop()
	rl.Stop()

	require.True(t, rl.Allow("10.0.0.1"))
	require.True(t, rl.Allow("10.0.0.1"))
	require.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiterBlockExpiry(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute, 10*time.Millisecond)
	t.Cleanup(rl.Stop)

	require.True(t, rl.Allow("10.0.0.1"))
	require.False(t, rl.Allow("10.0.0.1"))

	time.Sleep(20 * time.Millisecond)
	require.True(t, rl.Allow("10.0.0.1"))
	require.True(t, rl.BlockedUntil("10.0.0.1").IsZero())
}
