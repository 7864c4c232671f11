// ABOUTME: Feed builder turns an ordered list of videos into a syndication feed model
// ABOUTME: Pure and deterministic; no network or cache access happens here

package feed

import (
	"html"
	"strings"
	"time"

	"twitch-vod-rss/core/domain"
	"twitch-vod-rss/core/errors"
)

// RFC2822 is the layout used for item publish dates
const RFC2822 = time.RFC1123Z

// BuildFeed converts videos into a feed, keeping their order
func BuildFeed(title, link string, videos []domain.VideoRecord) (*domain.Feed, error) {
	feed := &domain.Feed{
		Title:       title,
		Link:        link,
		Description: title,
		Items:       make([]domain.FeedItem, 0, len(videos)),
	}

	if err := feed.Validate(); err != nil {
		return nil, &errors.FeedBuildError{Field: "channel", Message: err.Error()}
	}

	for _, v := range videos {
		item, err := BuildItem(v)
		if err != nil {
			return nil, err
		}
		feed.Items = append(feed.Items, item)
	}

	return feed, nil
}

// BuildItem converts a single video into a feed item
func BuildItem(v domain.VideoRecord) (domain.FeedItem, error) {
	if v.ID == "" {
		return domain.FeedItem{}, &errors.FeedBuildError{Field: "guid", Message: "video id is empty"}
	}
	if v.CreatedAt.IsZero() {
		return domain.FeedItem{}, &errors.FeedBuildError{Field: "pubDate", Message: "video " + v.ID + " has no creation time"}
	}

	return domain.FeedItem{
		GUID:            v.ID,
		Title:           v.Title,
		Link:            v.URL,
		HTMLDescription: BuildDescription(v),
		PublishDate:     v.CreatedAt.UTC().Format(RFC2822),
	}, nil
}

// BuildDescription renders the item body: a linked thumbnail, the platform
// description when present, and always the title last. Some readers only
// notice updates when the description changes, so title edits must show up here.
func BuildDescription(v domain.VideoRecord) string {
	var b strings.Builder

	b.WriteString(`<a href="`)
	b.WriteString(html.EscapeString(v.URL))
	b.WriteString(`"><img src="`)
	b.WriteString(html.EscapeString(v.ThumbnailURL()))
	b.WriteString(`" /></a>`)

	if v.Description != "" {
		b.WriteString("<br />")
		b.WriteString(html.EscapeString(v.Description))
	}

	b.WriteString("<br />")
	b.WriteString(html.EscapeString(v.Title))

	return b.String()
}
