// ABOUTME: Feed domain model is the syndication view of a channel's videos
// ABOUTME: Built fresh on every request and handed to an encoder for serialization

package domain

import (
	"errors"
)

// Feed represents an RSS channel built from a list of videos
type Feed struct {
	// Title is the human-readable title of the feed
	Title string

	// Link is the website URL associated with the feed
	Link string

	// Description provides a brief description of the feed's content
	Description string

	// Items contains the feed entries in upstream order
	Items []FeedItem
}

// FeedItem represents a single entry in a feed
type FeedItem struct {
	// GUID is stable per video so readers can deduplicate regenerated feeds
	GUID string

	// Title of the video
	Title string

	// Link points at the video page
	Link string

	// HTMLDescription is the rendered item body
	HTMLDescription string

	// PublishDate is the creation time in UTC formatted per RFC 2822.
	// Encoders emit it as pubDate verbatim.
	PublishDate string
}

// Validate checks if the feed has valid required fields
func (f *Feed) Validate() error {
	if f.Title == "" {
		return errors.New("feed title cannot be empty")
	}

	if f.Link == "" {
		return errors.New("feed link cannot be empty")
	}

	return nil
}

// IsValid checks if the feed item has the fields a reader needs
func (i FeedItem) IsValid() bool {
	return i.GUID != "" && i.Link != ""
}
