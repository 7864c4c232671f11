// ABOUTME: Channel handlers for the Huma API
// ABOUTME: Serves the resolved user id as text and the VOD history as RSS

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"twitch-vod-rss/core/domain"
	"twitch-vod-rss/core/interfaces"
)

// FeedService interface defines the methods needed from the feed service
type FeedService interface {
	ResolveID(ctx context.Context, handle string) (domain.UserID, error)
	ChannelFeed(ctx context.Context, handle string) (*domain.Feed, error)
}

// Encoder serializes a feed into a document of a fixed media type
type Encoder interface {
	Encode(feed *domain.Feed) ([]byte, error)
	ContentType() string
}

// ChannelHandler handles channel-related HTTP requests
type ChannelHandler struct {
	feeds   FeedService
	encoder Encoder
	logger  interfaces.Logger
}

// NewChannelHandler creates a new channel handler
func NewChannelHandler(feeds FeedService, encoder Encoder, logger interfaces.Logger) *ChannelHandler {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &ChannelHandler{
		feeds:   feeds,
		encoder: encoder,
		logger:  logger,
	}
}

// RegisterRoutes registers all channel routes
func (h *ChannelHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getChannelID",
		Method:      http.MethodGet,
		Path:        "/{handle}/id",
		Summary:     "Resolve a channel handle",
		Description: "Returns the numeric user id of the channel as plain text",
		Tags:        []string{"Channels"},
	}, h.GetID)

	huma.Register(api, huma.Operation{
		OperationID: "getChannelVODFeed",
		Method:      http.MethodGet,
		Path:        "/{handle}/vod",
		Summary:     "Channel VOD feed",
		Description: "Returns the channel's videos as an RSS 2.0 feed",
		Tags:        []string{"Channels"},
	}, h.GetVODFeed)
}

// ChannelInput identifies the channel in the path
type ChannelInput struct {
	Handle string `path:"handle" doc:"Channel login, case-insensitive" example:"twitchdev"`
}

// RawOutput is a non-JSON response body
type RawOutput struct {
	ContentType  string `header:"Content-Type"`
	CacheControl string `header:"Cache-Control"`
	Body         []byte
}

// GetID handles GET /{handle}/id
func (h *ChannelHandler) GetID(ctx context.Context, input *ChannelInput) (*RawOutput, error) {
	id, err := h.feeds.ResolveID(ctx, input.Handle)
	if err != nil {
		h.logFailure("Channel id lookup failed", input.Handle, err)
		return nil, toHumaError(err)
	}

	return &RawOutput{
		ContentType: "text/plain; charset=utf-8",
		Body:        []byte(id.String()),
	}, nil
}

// GetVODFeed handles GET /{handle}/vod
func (h *ChannelHandler) GetVODFeed(ctx context.Context, input *ChannelInput) (*RawOutput, error) {
	feed, err := h.feeds.ChannelFeed(ctx, input.Handle)
	if err != nil {
		h.logFailure("Feed generation failed", input.Handle, err)
		return nil, toHumaError(err)
	}

	doc, err := h.encoder.Encode(feed)
	if err != nil {
		h.logFailure("Feed encoding failed", input.Handle, err)
		return nil, toHumaError(err)
	}

	return &RawOutput{
		ContentType:  h.encoder.ContentType(),
		CacheControl: "public, max-age=600",
		Body:         doc,
	}, nil
}

func (h *ChannelHandler) logFailure(msg, handle string, err error) {
	fields := map[string]interface{}{
		"handle": handle,
		"error":  err.Error(),
	}
	if errors.Is(err, context.Canceled) {
		// the caller went away, there is nobody to answer
		h.logger.Info("Request cancelled by client", fields)
		return
	}
	if humaStatus(err) >= 500 {
		h.logger.Error(msg, fields)
		return
	}
	h.logger.Info(msg, fields)
}

// humaStatus returns the status toHumaError would assign to err
func humaStatus(err error) int {
	if se, ok := toHumaError(err).(huma.StatusError); ok {
		return se.GetStatus()
	}
	return http.StatusInternalServerError
}
