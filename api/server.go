// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"twitch-vod-rss/api/middleware"
	"twitch-vod-rss/core/interfaces"
)

const (
	// Title is the API name in the OpenAPI document
	Title = "Twitch VOD RSS"

	// Version is the API version in the OpenAPI document
	Version = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// Feeds are public and read-only
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	config := huma.DefaultConfig(Title, Version)
	config.Info.Description = "Publishes a Twitch channel's past broadcasts and uploads as an RSS feed"

	// The OpenAPI document is automatically available at /openapi.json
	// The Swagger UI is automatically available at /docs
	api := humachi.New(router, config)

	return api, router
}
