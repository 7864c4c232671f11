// ABOUTME: Video domain model mirrors a single video-on-demand record from the platform
// ABOUTME: Records are immutable once fetched and may be stale within the cache window

package domain

import (
	"strings"
	"time"
)

const (
	// ThumbnailWidth is substituted for %{width} in thumbnail templates
	ThumbnailWidth = "512"

	// ThumbnailHeight is substituted for %{height} in thumbnail templates
	ThumbnailHeight = "288"
)

// VideoRecord represents one video returned by the platform
type VideoRecord struct {
	ID     string
	UserID UserID
	Title  string
	URL    string

	// ThumbnailURLTemplate contains %{width} and %{height} placeholders
	ThumbnailURLTemplate string

	// Description may be empty
	Description string

	CreatedAt time.Time
	Duration  time.Duration
	ViewCount int64

	// Type is archive, highlight or upload
	Type string
}

// ThumbnailURL renders the thumbnail template at the fixed feed size
func (v VideoRecord) ThumbnailURL() string {
	return strings.NewReplacer(
		"%{width}", ThumbnailWidth,
		"%{height}", ThumbnailHeight,
	).Replace(v.ThumbnailURLTemplate)
}
