package rss

import (
	"bytes"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twitch-vod-rss/core/domain"
	apperrors "twitch-vod-rss/core/errors"
)

func sampleFeed() *domain.Feed {
	return &domain.Feed{
		Title:       "somechannel Twitch VODs",
		Link:        "https://www.twitch.tv/somechannel",
		Description: "somechannel Twitch VODs",
		Items: []domain.FeedItem{
			{
				GUID:            "v1",
				Title:           "T",
				Link:            "https://vod/v1",
				HTMLDescription: `<a href="https://vod/v1"><img src="https://th/512x288.jpg" /></a><br />T`,
				PublishDate:     "Sun, 01 Jan 2023 00:00:00 +0000",
			},
		},
	}
}

func TestEncode_ParsesAsRSS(t *testing.T) {
	doc, err := Encode(sampleFeed())
	require.NoError(t, err)

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "rss", parsed.FeedType)
	assert.Equal(t, "2.0", parsed.FeedVersion)
	assert.Equal(t, "somechannel Twitch VODs", parsed.Title)
	assert.Equal(t, "https://www.twitch.tv/somechannel", parsed.Link)

	require.Len(t, parsed.Items, 1)
	item := parsed.Items[0]
	assert.Equal(t, "v1", item.GUID)
	assert.Equal(t, "T", item.Title)
	assert.Equal(t, "https://vod/v1", item.Link)
	assert.Equal(t, `<a href="https://vod/v1"><img src="https://th/512x288.jpg" /></a><br />T`, item.Description)
	assert.Equal(t, "Sun, 01 Jan 2023 00:00:00 +0000", item.Published)
	require.NotNil(t, item.PublishedParsed)
	assert.True(t, item.PublishedParsed.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestEncode_PubDateIsPublishDateVerbatim(t *testing.T) {
	feed := sampleFeed()
	feed.Items[0].PublishDate = "Thu, 15 Jun 2023 14:30:00 +0200"

	doc, err := Encode(feed)
	require.NoError(t, err)

	assert.Contains(t, string(doc), "<pubDate>Thu, 15 Jun 2023 14:30:00 +0200</pubDate>")
}

func TestEncode_RejectsMalformedPublishDate(t *testing.T) {
	feed := sampleFeed()
	feed.Items[0].PublishDate = "2023-01-01"

	_, err := Encode(feed)

	var fbe *apperrors.FeedBuildError
	require.ErrorAs(t, err, &fbe)
	assert.Equal(t, "pubDate", fbe.Field)
}

func TestEncode_EmptyFeed(t *testing.T) {
	feed := sampleFeed()
	feed.Items = nil

	doc, err := Encode(feed)
	require.NoError(t, err)

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(doc))
	require.NoError(t, err)
	assert.Empty(t, parsed.Items)
}

func TestEncode_Deterministic(t *testing.T) {
	first, err := Encode(sampleFeed())
	require.NoError(t, err)
	second, err := Encode(sampleFeed())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEncode_Rejects(t *testing.T) {
	t.Run("nil feed", func(t *testing.T) {
		_, err := Encode(nil)
		assert.True(t, apperrors.IsFeedBuild(err))
	})

	t.Run("missing channel link", func(t *testing.T) {
		feed := sampleFeed()
		feed.Link = ""
		_, err := Encode(feed)
		assert.True(t, apperrors.IsFeedBuild(err))
	})

	t.Run("item without guid", func(t *testing.T) {
		feed := sampleFeed()
		feed.Items[0].GUID = ""
		_, err := Encode(feed)
		assert.True(t, apperrors.IsFeedBuild(err))
	})
}

func TestEncoder_ContentType(t *testing.T) {
	var enc Encoder

	doc, err := enc.Encode(sampleFeed())
	require.NoError(t, err)

	assert.Equal(t, "application/rss+xml", enc.ContentType())
	assert.Contains(t, string(doc), "<rss")
}
