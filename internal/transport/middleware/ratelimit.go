package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/sustainage/materiality-survey/pkg/ctxutil"
)

// idleBucketTTL is how long an unused bucket survives cleanup.
const idleBucketTTL = 10 * time.Minute

// RateLimiter implements per-client token bucket rate limiting. Buckets are
// keyed by limiter name and client IP, so the fetch and submit limits of one
// stakeholder are independent.
type RateLimiter struct {
	clock   clockwork.Clock
	buckets sync.Map // map[string]*bucket
	stop    chan struct{}
	once    sync.Once
}

type bucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(clock clockwork.Clock, cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{clock: clock, stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. It is safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that allows maxPerMinute requests per client for
// the named limit. A non-positive maxPerMinute disables limiting.
func (rl *RateLimiter) Limit(name string, maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if maxPerMinute <= 0 {
			return next
		}
		retryAfter := strconv.Itoa(int(60.0/float64(maxPerMinute)) + 1)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ctxutil.ClientFromCtx(r.Context()).IP
			if ip == "" {
				ip = r.RemoteAddr
			}

			if !rl.getBucket(name+"|"+ip, maxPerMinute).allow(rl.clock.Now()) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) getBucket(key string, maxPerMinute int) *bucket {
	if b, ok := rl.buckets.Load(key); ok {
		return b.(*bucket)
	}

	maxTokens := float64(maxPerMinute)
	val, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: maxTokens / 60.0,
		lastRefill: rl.clock.Now(),
	})
	return val.(*bucket)
}

func (b *bucket) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	elapsed := now.Sub(b.lastRefill).Seconds()
	if elapsed > 0 {
		b.tokens = min(b.tokens+elapsed*b.refillRate, b.maxTokens)
		b.lastRefill = now
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := rl.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.Chan():
			rl.evictIdle(rl.clock.Now())
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		idle := now.Sub(b.lastRefill)
		b.mu.Unlock()
		if idle > idleBucketTTL {
			rl.buckets.Delete(key)
		}
		return true
	})
}
