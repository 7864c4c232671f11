package feed

import (
	"context"
	"sync/atomic"

	"twitch-vod-rss/core/domain"
)

// mockResolver is a mock implementation of the ChannelResolver interface
type mockResolver struct {
	calls       atomic.Int32
	resolveFunc func(ctx context.Context, handle string) (domain.UserID, error)
}

func (m *mockResolver) Resolve(ctx context.Context, handle string) (domain.UserID, error) {
	m.calls.Add(1)
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, handle)
	}
	return "", nil
}

// mockLister is a mock implementation of the VideoLister interface
type mockLister struct {
	calls    atomic.Int32
	listFunc func(ctx context.Context, userID domain.UserID) ([]domain.VideoRecord, error)
}

func (m *mockLister) List(ctx context.Context, userID domain.UserID) ([]domain.VideoRecord, error) {
	m.calls.Add(1)
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return nil, nil
}
