// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts pipeline errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"twitch-vod-rss/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors.
// Only an unknown channel is the caller's fault; everything else is ours.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.IsUnknownChannel(err):
		return huma.Error404NotFound(err.Error())
	case errors.IsToken(err):
		return huma.Error500InternalServerError("Failed to obtain access token", err)
	case errors.IsUnauthorized(err):
		return huma.Error500InternalServerError("Upstream rejected access token", err)
	case errors.IsRequest(err):
		return huma.Error500InternalServerError("Upstream request failed", err)
	case errors.IsFeedBuild(err):
		return huma.Error500InternalServerError("Failed to build feed", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
