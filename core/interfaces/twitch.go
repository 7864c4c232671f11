// ABOUTME: Contracts for the upstream streaming platform and its authorization server
// ABOUTME: Implemented by infrastructure/twitch and by function-field mocks in tests

package interfaces

import (
	"context"

	"twitch-vod-rss/core/domain"
)

// AuthClient exchanges a credential pair for an app access token
type AuthClient interface {
	ExchangeCredentials(ctx context.Context, creds domain.Credentials) (domain.AccessToken, error)
}

// PlatformClient performs authenticated lookups against the platform.
//
// ResolveHandle reports found=false with a nil error when no user has the
// given login. Implementations return *errors.UnauthorizedError when the
// token is rejected and *errors.RequestError for any other failure.
type PlatformClient interface {
	ResolveHandle(ctx context.Context, token domain.AccessToken, handle domain.Handle) (id domain.UserID, found bool, err error)
	ListVideos(ctx context.Context, token domain.AccessToken, userID domain.UserID) ([]domain.VideoRecord, error)
}

// TokenProvider runs fn with a valid access token.
// A rejected token is replaced and fn retried at most once.
type TokenProvider interface {
	Do(ctx context.Context, fn func(ctx context.Context, token domain.AccessToken) error) error
}
