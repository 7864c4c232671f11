// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication, the platform APIs, feed encoding and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Standard library HTTP client with retry logic and an upstream rate limiter
// - twitch: OAuth2 client-credentials exchange and the Helix REST client
// - rss: RSS 2.0 encoding of the feed model
// - logger/logrusadapter: logrus backed logger with optional file rotation
// - logger/zapadapter: zap backed logger
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures and
// waits on a shared limiter before every attempt:
//
//	client := standard.NewStandardHTTPClient(30*time.Second, standard.WithRateLimit(10, 20))
//	resp, err := client.Get(ctx, "https://api.twitch.tv/helix/users?login=twitchdev", header)
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Platform clients
//
//	auth := twitch.NewAuthClient(twitch.DefaultTokenURL, client.Client())
//	helix := twitch.NewHelixClient(client, twitch.HelixConfig{ClientID: id}, log)
//
// # Logger
//
// Both backends support structured logging with fields:
//
//	log, err := logrusadapter.New(logger.Options{Level: "info", Format: "json"})
//	log.Info("Processing request", map[string]interface{}{
//	    "handle": "twitchdev",
//	})
package infrastructure
