package video

import (
	"context"
	"sync/atomic"

	"twitch-vod-rss/core/domain"
)

// mockPlatformClient is a mock implementation of the PlatformClient interface
type mockPlatformClient struct {
	listCalls atomic.Int32
	listFunc  func(ctx context.Context, token domain.AccessToken, userID domain.UserID) ([]domain.VideoRecord, error)
}

func (m *mockPlatformClient) ResolveHandle(ctx context.Context, token domain.AccessToken, handle domain.Handle) (domain.UserID, bool, error) {
	return "", false, nil
}

func (m *mockPlatformClient) ListVideos(ctx context.Context, token domain.AccessToken, userID domain.UserID) ([]domain.VideoRecord, error) {
	m.listCalls.Add(1)
	if m.listFunc != nil {
		return m.listFunc(ctx, token, userID)
	}
	return nil, nil
}

// staticTokens is a TokenProvider that always hands out the same token
type staticTokens struct {
	token domain.AccessToken
	err   error
}

func (s staticTokens) Do(ctx context.Context, fn func(ctx context.Context, token domain.AccessToken) error) error {
	if s.err != nil {
		return s.err
	}
	return fn(ctx, s.token)
}
