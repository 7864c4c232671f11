package channel

import (
	"context"
	"sync/atomic"

	"twitch-vod-rss/core/domain"
)

// mockPlatformClient is a mock implementation of the PlatformClient interface
type mockPlatformClient struct {
	resolveCalls atomic.Int32
	resolveFunc  func(ctx context.Context, token domain.AccessToken, handle domain.Handle) (domain.UserID, bool, error)
}

func (m *mockPlatformClient) ResolveHandle(ctx context.Context, token domain.AccessToken, handle domain.Handle) (domain.UserID, bool, error) {
	m.resolveCalls.Add(1)
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, token, handle)
	}
	return "", false, nil
}

func (m *mockPlatformClient) ListVideos(ctx context.Context, token domain.AccessToken, userID domain.UserID) ([]domain.VideoRecord, error) {
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
