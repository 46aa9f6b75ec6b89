package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	visitorTTL    = time.Hour
	sweepEvery    = time.Minute
	retryAfterSec = "1"
)

// Visitor is one client's token bucket.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// Visitors holds a Visitor per client address.
// Visitors idle for over an hour are forgotten.
type Visitors struct {
	burst int
	limit rate.Limit

	mu        sync.Mutex
	lastSweep time.Time
	val       map[string]Visitor
}

// NewVisitors allows each client limit requests per second on average, bursting up to burst.
func NewVisitors(limit float64, burst int) *Visitors {
	return &Visitors{
		burst:     burst,
		limit:     rate.Limit(limit),
		lastSweep: time.Now(),
		val:       make(map[string]Visitor),
	}
}

// Fetch returns the Visitor for ip, creating it on first sight, and marks it seen.
func (vs *Visitors) Fetch(ip string) Visitor {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	now := time.Now().UTC()
	if now.Sub(vs.lastSweep) > sweepEvery {
		vs.sweep(now)
	}

	v, ok := vs.val[ip]
	if !ok {
		v.Limiter = rate.NewLimiter(vs.limit, vs.burst)
	}

	v.LastSeen = now
	vs.val[ip] = v
	return v
}

// Len reports how many clients are tracked.
func (vs *Visitors) Len() int {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	return len(vs.val)
}

// sweep expects vs.mu held.
func (vs *Visitors) sweep(now time.Time) {
	for ip, v := range vs.val {
		if now.Sub(v.LastSeen) > visitorTTL {
			delete(vs.val, ip)
		}
	}

	vs.lastSweep = now
}

// RateLimit answers 429 Too Many Requests once a client drains its bucket in visitors.
// Clients are told apart by the address InjectIPAddress stored, or the proxy headers without it.
// A nil visitors disables limiting.
func RateLimit(visitors *Visitors) Adapter {
	if visitors == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !visitors.Fetch(clientIP(r)).Limiter.Allow() {
				w.Header().Set("Retry-After", retryAfterSec)
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			h.ServeHTTP(w, r)
		})
	}
}
