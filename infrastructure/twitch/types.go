// ABOUTME: Wire types of the Helix REST responses
// ABOUTME: Decoded by the Helix client and mapped onto domain types

package twitch

import "time"

// usersResponse is the body of GET /users
type usersResponse struct {
	Data []helixUser `json:"data"`
}

type helixUser struct {
	ID          string `json:"id"`
	Login       string `json:"login"`
	DisplayName string `json:"display_name"`
}

// videosResponse is the body of GET /videos
type videosResponse struct {
	Data       []helixVideo    `json:"data"`
	Pagination helixPagination `json:"pagination"`
}

type helixVideo struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	UserLogin    string    `json:"user_login"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	PublishedAt  time.Time `json:"published_at"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	ViewCount    int64     `json:"view_count"`
	Type         string    `json:"type"`
	Duration     string    `json:"duration"`
}

type helixPagination struct {
	Cursor string `json:"cursor"`
}

// helixError is the body Helix sends with non-2xx responses
type helixError struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}
