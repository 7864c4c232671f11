package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twitch-vod-rss/core/domain"
	"twitch-vod-rss/core/errors"
	"twitch-vod-rss/core/feed"
	"twitch-vod-rss/core/ttlcache"
	"twitch-vod-rss/infrastructure/rss"
)

func sampleFeed(t *testing.T, handle string) *domain.Feed {
	t.Helper()
	f, err := feed.BuildFeed(feed.Title(handle), feed.Link(handle), []domain.VideoRecord{
		{
			ID:                   "v1",
			Title:                "T",
			URL:                  "https://vod/v1",
			ThumbnailURLTemplate: "https://th/%{width}x%{height}.jpg",
			CreatedAt:            time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)
	return f
}

func TestChannelHandler_RegisterRoutes(t *testing.T) {
	_, api := humatest.New(t)
	NewChannelHandler(&mockFeedService{}, rss.Encoder{}, nil).RegisterRoutes(api)

	paths := api.OpenAPI().Paths
	require.Contains(t, paths, "/{handle}/id")
	require.Contains(t, paths, "/{handle}/vod")
	assert.NotNil(t, paths["/{handle}/id"].Get)
	assert.NotNil(t, paths["/{handle}/vod"].Get)
}

func TestChannelHandler_GetID(t *testing.T) {
	svc := &mockFeedService{
		resolveIDFunc: func(ctx context.Context, handle string) (domain.UserID, error) {
			assert.Equal(t, "somechannel", handle)
			return "42", nil
		},
	}
	_, api := humatest.New(t)
	NewChannelHandler(svc, rss.Encoder{}, nil).RegisterRoutes(api)

	resp := api.Get("/somechannel/id")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "42", resp.Body.String())
	assert.True(t, strings.HasPrefix(resp.Header().Get("Content-Type"), "text/plain"))
}

func TestChannelHandler_GetID_UnknownChannel(t *testing.T) {
	svc := &mockFeedService{
		resolveIDFunc: func(ctx context.Context, handle string) (domain.UserID, error) {
			return "", &errors.UnknownChannelError{Handle: handle}
		},
	}
	logger := &recordingLogger{}
	_, api := humatest.New(t)
	NewChannelHandler(svc, rss.Encoder{}, logger).RegisterRoutes(api)

	resp := api.Get("/ghost/id")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "unknown channel: ghost")
	assert.Equal(t, []string{"info"}, logger.levels)
}

func TestChannelHandler_GetVODFeed(t *testing.T) {
	svc := &mockFeedService{
		channelFeedFunc: func(ctx context.Context, handle string) (*domain.Feed, error) {
			return sampleFeed(t, handle), nil
		},
	}
	_, api := humatest.New(t)
	NewChannelHandler(svc, rss.Encoder{}, nil).RegisterRoutes(api)

	resp := api.Get("/somechannel/vod")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/rss+xml", resp.Header().Get("Content-Type"))

	parsed, err := gofeed.NewParser().ParseString(resp.Body.String())
	require.NoError(t, err)
	assert.Equal(t, "somechannel Twitch VODs", parsed.Title)
	require.Len(t, parsed.Items, 1)
	assert.Equal(t, "v1", parsed.Items[0].GUID)
	assert.Equal(t, "Sun, 01 Jan 2023 00:00:00 +0000", parsed.Items[0].Published)
	assert.Equal(t, `<a href="https://vod/v1"><img src="https://th/512x288.jpg" /></a><br />T`, parsed.Items[0].Description)
}

func TestChannelHandler_GetVODFeed_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown channel", &errors.UnknownChannelError{Handle: "ghost"}, http.StatusNotFound},
		{"token failure", &errors.TokenError{Message: "invalid client"}, http.StatusInternalServerError},
		{"unauthorized", &errors.UnauthorizedError{Operation: "list videos"}, http.StatusInternalServerError},
		{"request failure", &errors.RequestError{Operation: "list videos", StatusCode: 503}, http.StatusInternalServerError},
		{"feed build", &errors.FeedBuildError{Field: "guid", Message: "empty"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockFeedService{
				channelFeedFunc: func(ctx context.Context, handle string) (*domain.Feed, error) {
					return nil, tt.err
				},
			}
			_, api := humatest.New(t)
			NewChannelHandler(svc, rss.Encoder{}, nil).RegisterRoutes(api)

			resp := api.Get("/ghost/vod")

			assert.Equal(t, tt.status, resp.Code)
		})
	}
}

func TestChannelHandler_ClientCancellationLoggedAtInfo(t *testing.T) {
	svc := &mockFeedService{
		resolveIDFunc: func(ctx context.Context, handle string) (domain.UserID, error) {
			return "", context.Canceled
		},
		channelFeedFunc: func(ctx context.Context, handle string) (*domain.Feed, error) {
			return nil, fmt.Errorf("list videos: %w", context.Canceled)
		},
	}
	logger := &recordingLogger{}
	_, api := humatest.New(t)
	NewChannelHandler(svc, rss.Encoder{}, logger).RegisterRoutes(api)

	api.Get("/somechannel/id")
	api.Get("/somechannel/vod")

	assert.Equal(t, []string{"info", "info"}, logger.levels)
}

func TestChannelHandler_GetVODFeed_EncodeFailure(t *testing.T) {
	svc := &mockFeedService{
		channelFeedFunc: func(ctx context.Context, handle string) (*domain.Feed, error) {
			return sampleFeed(t, handle), nil
		},
	}
	enc := &mockEncoder{
		encodeFunc: func(*domain.Feed) ([]byte, error) {
			return nil, &errors.FeedBuildError{Field: "xml", Message: "broken"}
		},
	}
	logger := &recordingLogger{}
	_, api := humatest.New(t)
	NewChannelHandler(svc, enc, logger).RegisterRoutes(api)

	resp := api.Get("/somechannel/vod")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, []string{"error"}, logger.levels)
}

func TestHealthRoute(t *testing.T) {
	_, api := humatest.New(t)
	RegisterHealthRoutes(api)

	resp := api.Get("/healthz")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Empty(t, body["caches"])
}

func TestHealthRoute_ReportsCaches(t *testing.T) {
	_, api := humatest.New(t)
	RegisterHealthRoutes(api,
		staticReporter{Name: "token", TTL: 1200 * time.Second, Entries: 1, Stats: ttlcache.Stats{Misses: 1}},
		staticReporter{Name: "channel", TTL: 600 * time.Second, Entries: 3, Stats: ttlcache.Stats{Hits: 7, Misses: 3, Coalesced: 2, Failures: 1}},
	)

	resp := api.Get("/healthz")
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Caches []CacheHealth `json:"caches"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Caches, 2)
	assert.Equal(t, CacheHealth{Name: "token", TTLSeconds: 1200, Entries: 1, Misses: 1}, body.Caches[0])
	assert.Equal(t, CacheHealth{Name: "channel", TTLSeconds: 600, Entries: 3, Hits: 7, Misses: 3, Coalesced: 2, Failures: 1}, body.Caches[1])
}
