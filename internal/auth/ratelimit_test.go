package auth

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiterSaturation(t *testing.T) {
	limiter := NewLimiter(5, time.Minute)
	now := time.Now()
	limiter.now = func() time.Time { return now }

	for i := 1; i <= 5; i++ {
		d := limiter.Admit("203.0.113.7")
		require.True(t, d.Allowed, "attempt %d should be allowed", i)
	}

	d := limiter.Admit("203.0.113.7")
	require.False(t, d.Allowed)
	require.Equal(t, 60, d.RetryAfter)

	t.Run("other clients are unaffected", func(t *testing.T) {
		require.True(t, limiter.Admit("198.51.100.2").Allowed)
	})

	t.Run("window expiry starts a fresh count", func(t *testing.T) {
		now = now.Add(time.Minute + time.Second)

		for i := 1; i <= 5; i++ {
			require.True(t, limiter.Admit("203.0.113.7").Allowed, "attempt %d after reset", i)
		}
		require.False(t, limiter.Admit("203.0.113.7").Allowed)
	})
}

func TestLimiterRetryAfterRoundsUp(t *testing.T) {
	limiter := NewLimiter(1, time.Minute)
	now := time.Now()
	limiter.now = func() time.Time { return now }

	require.True(t, limiter.Admit("client").Allowed)

	now = now.Add(30*time.Second + 500*time.Millisecond)
	d := limiter.Admit("client")
	require.False(t, d.Allowed)
	require.Equal(t, 30, d.RetryAfter)
}

func TestLimiterResetOnSuccess(t *testing.T) {
	limiter := NewLimiter(5, time.Minute)
	now := time.Now()
	limiter.now = func() time.Time { return now }

	for i := 0; i < 4; i++ {
		require.True(t, limiter.Admit("client").Allowed)
	}

	limiter.Reset("client")

	// The count starts fresh: five more attempts fit in the window.
	for i := 1; i <= 5; i++ {
		require.True(t, limiter.Admit("client").Allowed, "attempt %d after reset", i)
	}
	require.False(t, limiter.Admit("client").Allowed)
}

func TestLimiterConcurrentAdmit(t *testing.T) {
	limiter := NewLimiter(50, time.Minute)

	var wg sync.WaitGroup
	allowed := make([]bool, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			allowed[i] = limiter.Admit("client").Allowed
		}(i)
	}
	wg.Wait()

	count := 0
	for _, ok := range allowed {
		if ok {
			count++
		}
	}
	// No lost increments: exactly the ceiling is admitted.
	require.Equal(t, 50, count)
}
