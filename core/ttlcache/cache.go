// ABOUTME: Generic get-or-compute cache with a bounded lifetime per entry
// ABOUTME: Coalesces concurrent misses for the same key into a single producer call

package ttlcache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Func produces the value for a key. Its errors are forwarded to callers unchanged.
type Func[K comparable, V any] func(ctx context.Context, key K) (V, error)

// entry is a completed computation. It is replaced, never mutated.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// call is a computation in flight. done is closed once value and err are set.
type call[V any] struct {
	done  chan struct{}
	value V
	err   error
}

// Stats counts cache outcomes since construction
type Stats struct {
	Hits      uint64
	Misses    uint64
	Coalesced uint64
	Failures  uint64
}

// Report describes a cache for diagnostics
type Report struct {
	Name    string
	TTL     time.Duration
	Entries int
	Stats
}

// Cache memoizes a producer per key for a fixed TTL.
//
// For any key at most one producer call is in flight; callers arriving while
// it runs wait for its outcome. Successful values are served until
// now >= expiresAt. Failures are never stored, so the next call retries.
type Cache[K comparable, V any] struct {
	ttl      time.Duration
	producer Func[K, V]
	opts     options

	// mu guards entries and inflight only; it is never held across a producer call
	mu       sync.Mutex
	entries  map[K]entry[V]
	inflight map[K]*call[V]
	swept    time.Time

	hits      atomic.Uint64
	misses    atomic.Uint64
	coalesced atomic.Uint64
	failures  atomic.Uint64
}

// New creates a cache that calls producer on a miss and keeps results for ttl
func New[K comparable, V any](ttl time.Duration, producer Func[K, V], opts ...Option) *Cache[K, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Cache[K, V]{
		ttl:      ttl,
		producer: producer,
		opts:     o,
		entries:  make(map[K]entry[V]),
		inflight: make(map[K]*call[V]),
		swept:    o.now(),
	}
}

// Get returns the cached value for key, computing it if absent or expired.
//
// If ctx is done before the computation finishes, Get returns ctx.Err()
// but the computation keeps running and still populates the cache.
func (c *Cache[K, V]) Get(ctx context.Context, key K) (V, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		if c.opts.now().Before(e.expiresAt) {
			c.mu.Unlock()
			c.hits.Add(1)
			return e.value, nil
		}
		delete(c.entries, key)
	}

	cl, running := c.inflight[key]
	if running {
		c.coalesced.Add(1)
	} else {
		cl = &call[V]{done: make(chan struct{})}
		c.inflight[key] = cl
		c.misses.Add(1)
		go c.compute(context.WithoutCancel(ctx), key, cl)
	}
	c.mu.Unlock()

	if running {
		c.opts.logger.Debug("Awaiting in-flight computation", map[string]interface{}{
			"cache": c.opts.name,
			"key":   fmt.Sprint(key),
		})
	}

	select {
	case <-cl.done:
		return cl.value, cl.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

// compute runs the producer detached from any single caller and publishes the outcome
func (c *Cache[K, V]) compute(ctx context.Context, key K, cl *call[V]) {
	if c.opts.computeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.computeTimeout)
		defer cancel()
	}

	c.opts.logger.Debug("Cache miss, computing", map[string]interface{}{
		"cache": c.opts.name,
		"key":   fmt.Sprint(key),
	})

	defer func() {
		if r := recover(); r != nil {
			var zero V
			cl.value = zero
			cl.err = fmt.Errorf("%s: producer panicked: %v", c.opts.name, r)
		}

		now := c.opts.now()
		c.mu.Lock()
		if cl.err == nil {
			c.entries[key] = entry[V]{value: cl.value, expiresAt: now.Add(c.ttl)}
		}
		delete(c.inflight, key)
		removed := c.sweepLocked(now)
		c.mu.Unlock()

		if removed > 0 {
			c.opts.logger.Debug("Swept expired entries", map[string]interface{}{
				"cache":   c.opts.name,
				"removed": removed,
			})
		}

		if cl.err != nil {
			c.failures.Add(1)
			c.opts.logger.Debug("Computation failed, nothing cached", map[string]interface{}{
				"cache": c.opts.name,
				"key":   fmt.Sprint(key),
				"error": cl.err.Error(),
			})
		}
		close(cl.done)
	}()

	cl.value, cl.err = c.producer(ctx, key)
}

// InvalidateIf drops the entry for key only if pred reports true for its value.
// It returns whether an entry was dropped. A computation already in flight is
// not affected.
func (c *Cache[K, V]) InvalidateIf(key K, pred func(V) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !pred(e.value) {
		return false
	}
	delete(c.entries, key)
	return true
}

// sweepLocked purges expired entries at most once per TTL interval.
// Entries for keys never requested again would otherwise stay for the
// life of the process. c.mu must be held.
func (c *Cache[K, V]) sweepLocked(now time.Time) int {
	if now.Sub(c.swept) < c.ttl {
		return 0
	}
	c.swept = now
	return c.purgeLocked(now)
}

func (c *Cache[K, V]) purgeLocked(now time.Time) int {
	removed := 0
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of unexpired entries
func (c *Cache[K, V]) Len() int {
	now := c.opts.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, e := range c.entries {
		if now.Before(e.expiresAt) {
			n++
		}
	}
	return n
}

// Stats returns a snapshot of the outcome counters
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Coalesced: c.coalesced.Load(),
		Failures:  c.failures.Load(),
	}
}

// TTL returns the lifetime given to each successful computation
func (c *Cache[K, V]) TTL() time.Duration {
	return c.ttl
}

// Report returns the name, TTL, live entry count and counters of c
func (c *Cache[K, V]) Report() Report {
	return Report{
		Name:    c.opts.name,
		TTL:     c.TTL(),
		Entries: c.Len(),
		Stats:   c.Stats(),
	}
}
