// ABOUTME: Helix REST client resolving logins and listing a user's videos
// ABOUTME: Maps 401 to UnauthorizedError and every other failure to RequestError

package twitch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"twitch-vod-rss/core/domain"
	apperrors "twitch-vod-rss/core/errors"
	"twitch-vod-rss/core/interfaces"
)

const (
	// DefaultHelixURL is the base of the platform REST API
	DefaultHelixURL = "https://api.twitch.tv/helix"

	// DefaultPageSize is the number of videos requested per listing
	DefaultPageSize = 20

	// MaxPageSize is the largest page Helix accepts
	MaxPageSize = 100

	// maxErrorBody caps how much of an error response is read
	maxErrorBody = 4 << 10
)

// HelixClient implements interfaces.PlatformClient
type HelixClient struct {
	http     interfaces.HTTPClient
	baseURL  string
	clientID string
	pageSize int
	logger   interfaces.Logger
}

// HelixConfig holds the settings for a HelixClient
type HelixConfig struct {
	BaseURL  string
	ClientID string
	PageSize int
}

// NewHelixClient creates a Helix client sending requests through httpClient
func NewHelixClient(httpClient interfaces.HTTPClient, cfg HelixConfig, logger interfaces.Logger) *HelixClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultHelixURL
	}
	if cfg.PageSize <= 0 || cfg.PageSize > MaxPageSize {
		cfg.PageSize = DefaultPageSize
	}
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &HelixClient{
		http:     httpClient,
		baseURL:  cfg.BaseURL,
		clientID: cfg.ClientID,
		pageSize: cfg.PageSize,
		logger:   logger,
	}
}

// ResolveHandle looks up the user id for a login
func (c *HelixClient) ResolveHandle(ctx context.Context, token domain.AccessToken, handle domain.Handle) (domain.UserID, bool, error) {
	const op = "resolve handle"

	q := url.Values{}
	q.Set("login", string(handle))

	var body usersResponse
	if err := c.get(ctx, op, token, "/users", q, &body); err != nil {
		return "", false, err
	}

	if len(body.Data) == 0 || body.Data[0].ID == "" {
		return "", false, nil
	}
	return domain.UserID(body.Data[0].ID), true, nil
}

// ListVideos returns the most recent videos of userID in upstream order
func (c *HelixClient) ListVideos(ctx context.Context, token domain.AccessToken, userID domain.UserID) ([]domain.VideoRecord, error) {
	const op = "list videos"

	q := url.Values{}
	q.Set("user_id", userID.String())
	q.Set("first", strconv.Itoa(c.pageSize))

	var body videosResponse
	if err := c.get(ctx, op, token, "/videos", q, &body); err != nil {
		return nil, err
	}

	videos := make([]domain.VideoRecord, 0, len(body.Data))
	for _, v := range body.Data {
		videos = append(videos, c.toRecord(v))
	}
	return videos, nil
}

func (c *HelixClient) toRecord(v helixVideo) domain.VideoRecord {
	duration, err := time.ParseDuration(v.Duration)
	if err != nil && v.Duration != "" {
		c.logger.Debug("Unparseable video duration", map[string]interface{}{
			"video_id": v.ID,
			"duration": v.Duration,
		})
	}

	return domain.VideoRecord{
		ID:                   v.ID,
		UserID:               domain.UserID(v.UserID),
		Title:                v.Title,
		URL:                  v.URL,
		ThumbnailURLTemplate: v.ThumbnailURL,
		Description:          v.Description,
		CreatedAt:            v.CreatedAt,
		Duration:             duration,
		ViewCount:            v.ViewCount,
		Type:                 v.Type,
	}
}

// get performs an authenticated GET and decodes a 2xx JSON body into out
func (c *HelixClient) get(ctx context.Context, op string, token domain.AccessToken, path string, q url.Values, out interface{}) error {
	endpoint := c.baseURL + path + "?" + q.Encode()

	header := http.Header{}
	header.Set("Client-Id", c.clientID)
	header.Set("Authorization", "Bearer "+token.Value)
	header.Set("Accept", "application/json")

	resp, err := c.http.Get(ctx, endpoint, header)
	if err != nil {
		return &apperrors.RequestError{Operation: op, Err: err}
	}
	defer resp.Body().Close()

	status := resp.StatusCode()
	if status == http.StatusUnauthorized {
		return &apperrors.UnauthorizedError{Operation: op}
	}
	if status < 200 || status >= 300 {
		return &apperrors.RequestError{
			Operation:  op,
			StatusCode: status,
			Message:    errorMessage(resp.Body(), status),
		}
	}

	if err := json.NewDecoder(resp.Body()).Decode(out); err != nil {
		return &apperrors.RequestError{
			Operation:  op,
			StatusCode: status,
			Message:    fmt.Sprintf("malformed response: %v", err),
			Err:        err,
		}
	}
	return nil
}

func errorMessage(body io.Reader, status int) string {
	raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))

	var he helixError
	if err := json.Unmarshal(raw, &he); err == nil && he.Message != "" {
		return he.Message
	}
	if len(raw) > 0 {
		return string(raw)
	}
	return http.StatusText(status)
}
