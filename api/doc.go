// Package api provides the HTTP API layer for the Twitch VOD feed service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers and error mapping
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//	GET /{handle}/id   numeric user id as text/plain
//	GET /{handle}/vod  RSS 2.0 feed of the channel's videos
//	GET /healthz       liveness check and cache report
//
// The OpenAPI document is served at /openapi.json and the interactive
// docs at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{Logger: logger})
//
//	channelHandler := handlers.NewChannelHandler(feedService, rss.Encoder{}, logger)
//	channelHandler.RegisterRoutes(humaAPI)
//	handlers.RegisterHealthRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format. An unknown channel maps to 404;
// every other pipeline failure maps to 500.
package api
