// ABOUTME: RSS 2.0 encoder serializing the feed model with gorilla/feeds
// ABOUTME: The HTTP layer serves its output as application/rss+xml

package rss

import (
	"time"

	"github.com/gorilla/feeds"

	"twitch-vod-rss/core/domain"
	"twitch-vod-rss/core/errors"
)

// ContentType is the media type of encoded feeds
const ContentType = "application/rss+xml"

// Encode renders feed as an RSS 2.0 document
func Encode(feed *domain.Feed) ([]byte, error) {
	if feed == nil {
		return nil, &errors.FeedBuildError{Field: "channel", Message: "feed is nil"}
	}
	if err := feed.Validate(); err != nil {
		return nil, &errors.FeedBuildError{Field: "channel", Message: err.Error()}
	}

	out := &feeds.Feed{
		Title:       feed.Title,
		Link:        &feeds.Link{Href: feed.Link},
		Description: feed.Description,
		Items:       make([]*feeds.Item, 0, len(feed.Items)),
	}

	for _, item := range feed.Items {
		if !item.IsValid() {
			return nil, &errors.FeedBuildError{Field: "item", Message: "item " + item.GUID + " lacks a guid or link"}
		}
		// feeds writes pubDate with the same RFC 2822 layout, so the
		// parsed time round-trips to PublishDate unchanged
		created, err := time.Parse(time.RFC1123Z, item.PublishDate)
		if err != nil {
			return nil, &errors.FeedBuildError{Field: "pubDate", Message: "item " + item.GUID + ": " + err.Error()}
		}
		out.Items = append(out.Items, &feeds.Item{
			Id:          item.GUID,
			Title:       item.Title,
			Link:        &feeds.Link{Href: item.Link},
			Description: item.HTMLDescription,
			Created:     created,
		})
	}

	doc, err := out.ToRss()
	if err != nil {
		return nil, &errors.FeedBuildError{Field: "xml", Message: err.Error()}
	}
	return []byte(doc), nil
}

// Encoder exposes Encode behind a value that also reports its media type
type Encoder struct{}

// Encode renders feed as an RSS 2.0 document
func (Encoder) Encode(feed *domain.Feed) ([]byte, error) {
	return Encode(feed)
}

// ContentType returns the RSS media type
func (Encoder) ContentType() string {
	return ContentType
}
