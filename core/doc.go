// Package core contains the business logic for the Twitch VOD feed service.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - ttlcache: Generic time-bound cache with single-flight request coalescing
// - token: App access token manager keyed by the credential pair
// - channel: Handle to user id resolution
// - video: Per-user video listing
// - feed: Pure feed builder and the feed pipeline service
// - domain: Pure domain models (Credentials, VideoRecord, Feed, etc.)
// - errors: Closed set of pipeline error types
// - interfaces: Contracts for external dependencies (platform, auth, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Each cache is an explicit object built once at startup
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Auth:     authClient,  // implements interfaces.AuthClient
//	    Platform: helixClient, // implements interfaces.PlatformClient
//	    Logger:   logger,      // implements interfaces.Logger
//	}
//
//	tokens := token.NewManager(deps, creds)
//	resolver := channel.NewResolver(deps, tokens)
//	lister := video.NewLister(deps, tokens)
//	feeds := feed.NewFeedService(deps, resolver, lister)
//
//	f, err := feeds.ChannelFeed(ctx, "twitchdev")
package core
