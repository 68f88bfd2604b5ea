package auth

import (
	"math"
	"sync"
	"time"
)

// Decision is the outcome of a rate-limit check. RetryAfter is only set when
// the request was denied.
type Decision struct {
	Allowed    bool
	RetryAfter int // seconds until the window resets
}

type limitEntry struct {
	count int
	reset time.Time
}

// Limiter throttles repeated attempts per client identity using fixed
// windows. Entries live in process memory only; restarting the process
// clears all limits. Entries for identities that never return are not purged
// until their window recycles on the next access.
type Limiter struct {
	mu sync.Mutex

	max     int
	window  time.Duration
	now     func() time.Time
	entries map[string]*limitEntry
}

// NewLimiter creates a limiter that allows maxAttempts per window for each
// client identity.
func NewLimiter(maxAttempts int, window time.Duration) *Limiter {
	return &Limiter{
		max:     maxAttempts,
		window:  window,
		now:     time.Now,
		entries: make(map[string]*limitEntry),
	}
}

// Admit records an attempt for the client identity and reports whether it is
// allowed within the current window.
func (l *Limiter) Admit(clientID string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	e, ok := l.entries[clientID]
	if !ok || now.After(e.reset) {
		l.entries[clientID] = &limitEntry{count: 1, reset: now.Add(l.window)}
		return Decision{Allowed: true}
	}

	if e.count >= l.max {
		return Decision{
			Allowed:    false,
			RetryAfter: int(math.Ceil(e.reset.Sub(now).Seconds())),
		}
	}

	e.count++
	return Decision{Allowed: true}
}

// Reset clears the entry for the client identity. Called after a successful
// login so prior failed attempts are forgiven immediately.
func (l *Limiter) Reset(clientID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, clientID)
}
