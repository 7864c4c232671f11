// ABOUTME: Application wiring shared by the serve, resolve and feed commands
// ABOUTME: Builds the logger, outbound client, platform clients, caches and HTTP router

package main

import (
	"fmt"
	"io"
	"net/http"

	"twitch-vod-rss/api"
	"twitch-vod-rss/api/handlers"
	"twitch-vod-rss/api/middleware"
	"twitch-vod-rss/core/channel"
	"twitch-vod-rss/core/feed"
	"twitch-vod-rss/core/interfaces"
	"twitch-vod-rss/core/token"
	"twitch-vod-rss/core/video"
	stdhttp "twitch-vod-rss/infrastructure/http/standard"
	"twitch-vod-rss/infrastructure/logger"
	"twitch-vod-rss/infrastructure/logger/logrusadapter"
	"twitch-vod-rss/infrastructure/logger/zapadapter"
	"twitch-vod-rss/infrastructure/rss"
	"twitch-vod-rss/infrastructure/twitch"
	"twitch-vod-rss/pkg/config"
)

// app holds the long-lived components of one process
type app struct {
	cfg    *config.Config
	logger interfaces.Logger
	closer io.Closer

	tokens   *token.Manager
	resolver *channel.Resolver
	lister   *video.Lister
	feeds    *feed.FeedService
}

// closeableLogger is a logger owning an output that must be released
type closeableLogger interface {
	interfaces.Logger
	io.Closer
}

// newLogger builds the configured logging backend
func newLogger(cfg config.LogConfig, out io.Writer) (closeableLogger, error) {
	opts := logger.Options{
		Level:  cfg.Level,
		Format: cfg.Format,
		File:   cfg.File,
	}
	if cfg.File == "" {
		opts.Output = out
	}

	switch cfg.Backend {
	case "", "logrus":
		return logrusadapter.New(opts)
	case "zap":
		return zapadapter.New(opts)
	default:
		return nil, fmt.Errorf("unknown log backend %q", cfg.Backend)
	}
}

// newApp wires every component from cfg. Each cache is created once here.
func newApp(cfg *config.Config, logOut io.Writer) (*app, error) {
	log, err := newLogger(cfg.Log, logOut)
	if err != nil {
		return nil, err
	}

	transport := &middleware.LoggingRoundTripper{
		Transport: http.DefaultTransport,
		Logger:    log,
	}
	httpClient := stdhttp.NewStandardHTTPClient(
		cfg.Upstream.Timeout,
		stdhttp.WithRateLimit(cfg.Upstream.RateLimit, cfg.Upstream.RateBurst),
		stdhttp.WithTransport(transport),
	)

	deps := interfaces.Dependencies{
		Auth: twitch.NewAuthClient(cfg.Twitch.AuthURL, httpClient.Client()),
		Platform: twitch.NewHelixClient(httpClient, twitch.HelixConfig{
			BaseURL:  cfg.Twitch.HelixURL,
			ClientID: cfg.Twitch.ClientID,
			PageSize: cfg.Twitch.VideoPageSize,
		}, log),
		Logger: log,
	}

	tokens := token.NewManager(deps, cfg.Credentials())
	resolver := channel.NewResolver(deps, tokens)
	lister := video.NewLister(deps, tokens)

	return &app{
		cfg:      cfg,
		logger:   log,
		closer:   log,
		tokens:   tokens,
		resolver: resolver,
		lister:   lister,
		feeds:    feed.NewFeedService(deps, resolver, lister),
	}, nil
}

// router returns the HTTP handler serving every route
func (a *app) router() http.Handler {
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{Logger: a.logger})

	handlers.NewChannelHandler(a.feeds, rss.Encoder{}, a.logger).RegisterRoutes(humaAPI)
	handlers.RegisterHealthRoutes(humaAPI, a.tokens, a.resolver, a.lister)

	return router
}

// Close releases the log output
func (a *app) Close() error {
	return a.closer.Close()
}
