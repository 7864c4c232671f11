// ABOUTME: Video lister fetches a user's most recent videos through a coalescing cache
// ABOUTME: Upstream order is preserved; it is assumed to be newest first

package video

import (
	"context"
	"slices"
	"time"

	"twitch-vod-rss/core/domain"
	"twitch-vod-rss/core/errors"
	"twitch-vod-rss/core/interfaces"
	"twitch-vod-rss/core/ttlcache"
)

// TTL is how long a fetched video list is reused
const TTL = 600 * time.Second

// Lister lists videos per user id
type Lister struct {
	tokens   interfaces.TokenProvider
	platform interfaces.PlatformClient
	logger   interfaces.Logger
	cache    *ttlcache.Cache[domain.UserID, []domain.VideoRecord]
}

// NewLister creates a lister using tokens for authentication
func NewLister(deps interfaces.Dependencies, tokens interfaces.TokenProvider, opts ...ttlcache.Option) *Lister {
	logger := deps.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	l := &Lister{
		tokens:   tokens,
		platform: deps.Platform,
		logger:   logger,
	}

	cacheOpts := append([]ttlcache.Option{
		ttlcache.WithName("video"),
		ttlcache.WithLogger(logger),
	}, opts...)
	l.cache = ttlcache.New(TTL, l.fetch, cacheOpts...)

	return l
}

// List returns the videos for userID in upstream order.
// The returned slice is a copy and may be modified by the caller.
func (l *Lister) List(ctx context.Context, userID domain.UserID) ([]domain.VideoRecord, error) {
	videos, err := l.cache.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return slices.Clone(videos), nil
}

// CacheReport describes the underlying cache
func (l *Lister) CacheReport() ttlcache.Report {
	return l.cache.Report()
}

// fetch is the cache producer
func (l *Lister) fetch(ctx context.Context, userID domain.UserID) ([]domain.VideoRecord, error) {
	var videos []domain.VideoRecord

	err := l.tokens.Do(ctx, func(ctx context.Context, tok domain.AccessToken) error {
		var err error
		videos, err = l.platform.ListVideos(ctx, tok, userID)
		return err
	})
	if err != nil {
		l.logger.Warn("Video listing failed", map[string]interface{}{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, errors.Classify("list videos", err)
	}

	l.logger.Debug("Listed videos", map[string]interface{}{
		"user_id": userID.String(),
		"videos":  len(videos),
	})
	return videos, nil
}
