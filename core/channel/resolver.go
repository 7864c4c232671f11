// ABOUTME: Channel resolver maps a case-insensitive handle to the platform user id
// ABOUTME: Unknown handles are reported as errors so they are never cached

package channel

import (
	"context"
	"time"

	"twitch-vod-rss/core/domain"
	"twitch-vod-rss/core/errors"
	"twitch-vod-rss/core/interfaces"
	"twitch-vod-rss/core/ttlcache"
)

// TTL is how long a resolved user id is reused
const TTL = 600 * time.Second

// Resolver resolves channel handles through a coalescing cache
type Resolver struct {
	tokens   interfaces.TokenProvider
	platform interfaces.PlatformClient
	logger   interfaces.Logger
	cache    *ttlcache.Cache[domain.Handle, domain.UserID]
}

// NewResolver creates a resolver using tokens for authentication
func NewResolver(deps interfaces.Dependencies, tokens interfaces.TokenProvider, opts ...ttlcache.Option) *Resolver {
	logger := deps.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	r := &Resolver{
		tokens:   tokens,
		platform: deps.Platform,
		logger:   logger,
	}

	cacheOpts := append([]ttlcache.Option{
		ttlcache.WithName("channel"),
		ttlcache.WithLogger(logger),
	}, opts...)
	r.cache = ttlcache.New(TTL, r.lookup, cacheOpts...)

	return r
}

// Resolve returns the user id for handle.
// Handles that cannot be platform logins fail without an upstream call.
func (r *Resolver) Resolve(ctx context.Context, raw string) (domain.UserID, error) {
	handle := domain.NormalizeHandle(raw)
	if !handle.Valid() {
		return "", &errors.UnknownChannelError{Handle: raw}
	}
	return r.cache.Get(ctx, handle)
}

// CacheReport describes the underlying cache
func (r *Resolver) CacheReport() ttlcache.Report {
	return r.cache.Report()
}

// lookup is the cache producer
func (r *Resolver) lookup(ctx context.Context, handle domain.Handle) (domain.UserID, error) {
	var (
		id    domain.UserID
		found bool
	)

	err := r.tokens.Do(ctx, func(ctx context.Context, tok domain.AccessToken) error {
		var err error
		id, found, err = r.platform.ResolveHandle(ctx, tok, handle)
		return err
	})
	if err != nil {
		r.logger.Warn("Channel lookup failed", map[string]interface{}{
			"handle": string(handle),
			"error":  err.Error(),
		})
		return "", errors.Classify("resolve handle", err)
	}

	if !found {
		r.logger.Info("Channel not found", map[string]interface{}{
			"handle": string(handle),
		})
		return "", &errors.UnknownChannelError{Handle: string(handle)}
	}

	r.logger.Debug("Resolved channel", map[string]interface{}{
		"handle":  string(handle),
		"user_id": id.String(),
	})
	return id, nil
}
