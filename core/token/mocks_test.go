package token

import (
	"context"
	"sync/atomic"

	"twitch-vod-rss/core/domain"
)

// mockAuthClient is a mock implementation of the AuthClient interface
type mockAuthClient struct {
	calls        atomic.Int32
	exchangeFunc func(ctx context.Context, creds domain.Credentials) (domain.AccessToken, error)
}

func (m *mockAuthClient) ExchangeCredentials(ctx context.Context, creds domain.Credentials) (domain.AccessToken, error) {
	m.calls.Add(1)
	if m.exchangeFunc != nil {
		return m.exchangeFunc(ctx, creds)
	}
	return domain.AccessToken{}, nil
}
