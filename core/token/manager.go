// ABOUTME: Token manager caches the app access token minted from the process credentials
// ABOUTME: Evicts a rejected token and retries the caller's operation once with a fresh one

package token

import (
	"context"
	"time"

	"twitch-vod-rss/core/domain"
	"twitch-vod-rss/core/errors"
	"twitch-vod-rss/core/interfaces"
	"twitch-vod-rss/core/ttlcache"
)

// TTL is how long a minted token is reused before a new exchange
const TTL = 1200 * time.Second

// Manager hands out the current access token for one credential pair
type Manager struct {
	credentials domain.Credentials
	auth        interfaces.AuthClient
	logger      interfaces.Logger
	cache       *ttlcache.Cache[domain.Credentials, domain.AccessToken]
}

// NewManager creates a token manager for creds. Extra cache options are
// appended after the defaults, so tests can override the clock.
func NewManager(deps interfaces.Dependencies, creds domain.Credentials, opts ...ttlcache.Option) *Manager {
	logger := deps.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	m := &Manager{
		credentials: creds,
		auth:        deps.Auth,
		logger:      logger,
	}

	cacheOpts := append([]ttlcache.Option{
		ttlcache.WithName("token"),
		ttlcache.WithLogger(logger),
	}, opts...)
	m.cache = ttlcache.New(TTL, m.exchange, cacheOpts...)

	return m
}

// Token returns a valid access token, minting one if none is cached
func (m *Manager) Token(ctx context.Context) (domain.AccessToken, error) {
	return m.cache.Get(ctx, m.credentials)
}

// Do runs fn with the current token. If fn reports the token as
// unauthorized, the token is evicted and fn is retried once.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context, token domain.AccessToken) error) error {
	tok, err := m.Token(ctx)
	if err != nil {
		return err
	}

	err = fn(ctx, tok)
	if !errors.IsUnauthorized(err) {
		return err
	}

	m.logger.Warn("Access token rejected, refreshing", map[string]interface{}{
		"client_id": m.credentials.ClientID,
		"error":     err.Error(),
	})
	m.Invalidate(tok)

	tok, err = m.Token(ctx)
	if err != nil {
		return err
	}
	return fn(ctx, tok)
}

// Invalidate evicts the cached token if it is still the given one.
// A token already replaced by a concurrent refresh is left alone.
func (m *Manager) Invalidate(stale domain.AccessToken) bool {
	return m.cache.InvalidateIf(m.credentials, func(current domain.AccessToken) bool {
		return current.Value == stale.Value
	})
}

// CacheReport describes the underlying cache
func (m *Manager) CacheReport() ttlcache.Report {
	return m.cache.Report()
}

// exchange is the cache producer
func (m *Manager) exchange(ctx context.Context, creds domain.Credentials) (domain.AccessToken, error) {
	m.logger.Info("Requesting app access token", map[string]interface{}{
		"client_id": creds.ClientID,
	})

	tok, err := m.auth.ExchangeCredentials(ctx, creds)
	if err != nil {
		m.logger.Warn("Credential exchange failed", map[string]interface{}{
			"client_id": creds.ClientID,
			"error":     err.Error(),
		})
		if errors.IsToken(err) {
			return domain.AccessToken{}, err
		}
		return domain.AccessToken{}, &errors.TokenError{Message: err.Error(), Err: err}
	}

	if tok.Value == "" {
		return domain.AccessToken{}, &errors.TokenError{Message: "authorization server returned an empty access token"}
	}

	return tok, nil
}
