package handlers

import (
	"context"
	"sync"

	"twitch-vod-rss/core/domain"
	"twitch-vod-rss/core/ttlcache"
)

// mockFeedService is a mock implementation of the feed service
type mockFeedService struct {
	resolveIDFunc   func(ctx context.Context, handle string) (domain.UserID, error)
	channelFeedFunc func(ctx context.Context, handle string) (*domain.Feed, error)
}

func (m *mockFeedService) ResolveID(ctx context.Context, handle string) (domain.UserID, error) {
	if m.resolveIDFunc != nil {
		return m.resolveIDFunc(ctx, handle)
	}
	return "", nil
}

func (m *mockFeedService) ChannelFeed(ctx context.Context, handle string) (*domain.Feed, error) {
	if m.channelFeedFunc != nil {
		return m.channelFeedFunc(ctx, handle)
	}
	return nil, nil
}

// mockEncoder is a mock implementation of the Encoder interface
type mockEncoder struct {
	encodeFunc func(feed *domain.Feed) ([]byte, error)
}

func (m *mockEncoder) Encode(feed *domain.Feed) ([]byte, error) {
	if m.encodeFunc != nil {
		return m.encodeFunc(feed)
	}
	return nil, nil
}

func (m *mockEncoder) ContentType() string {
	return "application/test"
}

// recordingLogger keeps the levels of logged messages
type recordingLogger struct {
	mu     sync.Mutex
	levels []string
}

func (l *recordingLogger) add(level string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.levels = append(l.levels, level)
}

func (l *recordingLogger) Debug(string, map[string]interface{}) { l.add("debug") }
func (l *recordingLogger) Info(string, map[string]interface{})  { l.add("info") }
func (l *recordingLogger) Warn(string, map[string]interface{})  { l.add("warn") }
func (l *recordingLogger) Error(string, map[string]interface{}) { l.add("error") }

// staticReporter reports a fixed cache snapshot
type staticReporter ttlcache.Report

func (r staticReporter) CacheReport() ttlcache.Report { return ttlcache.Report(r) }
