// ABOUTME: Feed service runs the handle -> user id -> videos -> feed pipeline
// ABOUTME: Provides business logic for feed operations independent of HTTP layer

package feed

import (
	"context"
	"fmt"

	"twitch-vod-rss/core/domain"
	"twitch-vod-rss/core/interfaces"
)

// ChannelBaseURL prefixes a handle to form the channel page link
const ChannelBaseURL = "https://www.twitch.tv/"

// ChannelResolver resolves a raw handle to a user id
type ChannelResolver interface {
	Resolve(ctx context.Context, handle string) (domain.UserID, error)
}

// VideoLister lists the videos of a user
type VideoLister interface {
	List(ctx context.Context, userID domain.UserID) ([]domain.VideoRecord, error)
}

// FeedService builds channel feeds from the cached upstream stages
type FeedService struct {
	resolver ChannelResolver
	lister   VideoLister
	logger   interfaces.Logger
}

// NewFeedService creates a new feed service instance
func NewFeedService(deps interfaces.Dependencies, resolver ChannelResolver, lister VideoLister) *FeedService {
	logger := deps.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	return &FeedService{
		resolver: resolver,
		lister:   lister,
		logger:   logger,
	}
}

// ResolveID returns the platform user id for handle
func (s *FeedService) ResolveID(ctx context.Context, handle string) (domain.UserID, error) {
	return s.resolver.Resolve(ctx, handle)
}

// ChannelFeed builds the VOD feed for handle
func (s *FeedService) ChannelFeed(ctx context.Context, handle string) (*domain.Feed, error) {
	userID, err := s.resolver.Resolve(ctx, handle)
	if err != nil {
		return nil, err
	}

	videos, err := s.lister.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	feed, err := BuildFeed(Title(handle), Link(handle), videos)
	if err != nil {
		s.logger.Error("Failed to build feed", map[string]interface{}{
			"handle":  handle,
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Debug("Built feed", map[string]interface{}{
		"handle":  handle,
		"user_id": userID.String(),
		"items":   len(feed.Items),
	})
	return feed, nil
}

// Title returns the channel title for handle
func Title(handle string) string {
	return fmt.Sprintf("%s Twitch VODs", handle)
}

// Link returns the channel page URL for handle
func Link(handle string) string {
	return ChannelBaseURL + string(domain.NormalizeHandle(handle))
}
