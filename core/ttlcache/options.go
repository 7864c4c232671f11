// ABOUTME: Functional options for the TTL cache
// ABOUTME: Name, clock, logger and compute timeout are injectable for tests

package ttlcache

import (
	"time"

	"twitch-vod-rss/core/interfaces"
)

type options struct {
	name           string
	now            func() time.Time
	logger         interfaces.Logger
	computeTimeout time.Duration
}

func defaultOptions() options {
	return options{
		name:   "ttlcache",
		now:    time.Now,
		logger: interfaces.NopLogger{},
	}
}

// Option configures a Cache
type Option func(*options)

// WithName labels the cache in log output
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger used for miss and failure events
func WithLogger(logger interfaces.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithComputeTimeout bounds how long a detached computation may run.
// Zero means the producer's own deadlines apply.
func WithComputeTimeout(d time.Duration) Option {
	return func(o *options) {
		o.computeTimeout = d
	}
}
