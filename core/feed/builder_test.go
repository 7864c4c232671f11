package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twitch-vod-rss/core/domain"
	apperrors "twitch-vod-rss/core/errors"
)

func sampleVideo() domain.VideoRecord {
	return domain.VideoRecord{
		ID:                   "v1",
		UserID:               "42",
		Title:                "T",
		URL:                  "https://vod/v1",
		ThumbnailURLTemplate: "https://th/%{width}x%{height}.jpg",
		CreatedAt:            time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildFeed_SomeChannel(t *testing.T) {
	feed, err := BuildFeed(Title("somechannel"), Link("somechannel"), []domain.VideoRecord{sampleVideo()})
	require.NoError(t, err)

	assert.Equal(t, "somechannel Twitch VODs", feed.Title)
	assert.Equal(t, "https://www.twitch.tv/somechannel", feed.Link)
	require.Len(t, feed.Items, 1)

	item := feed.Items[0]
	assert.Equal(t, "v1", item.GUID)
	assert.Equal(t, "T", item.Title)
	assert.Equal(t, "https://vod/v1", item.Link)
	assert.Equal(t, "Sun, 01 Jan 2023 00:00:00 +0000", item.PublishDate)
	assert.Equal(t, `<a href="https://vod/v1"><img src="https://th/512x288.jpg" /></a><br />T`, item.HTMLDescription)
}

func TestBuildFeed_EmptyVideoList(t *testing.T) {
	feed, err := BuildFeed("x Twitch VODs", "https://www.twitch.tv/x", nil)

	require.NoError(t, err)
	assert.NotNil(t, feed.Items)
	assert.Empty(t, feed.Items)
}

func TestBuildFeed_PreservesOrder(t *testing.T) {
	videos := make([]domain.VideoRecord, 0, 3)
	for _, id := range []string{"c", "a", "b"} {
		v := sampleVideo()
		v.ID = id
		videos = append(videos, v)
	}

	feed, err := BuildFeed("t", "l", videos)
	require.NoError(t, err)

	var guids []string
	for _, item := range feed.Items {
		guids = append(guids, item.GUID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, guids)
}

func TestBuildFeed_GUIDStableAcrossBuilds(t *testing.T) {
	videos := []domain.VideoRecord{sampleVideo()}

	first, err := BuildFeed("t", "l", videos)
	require.NoError(t, err)
	second, err := BuildFeed("t", "l", videos)
	require.NoError(t, err)

	assert.Equal(t, first.Items[0].GUID, second.Items[0].GUID)
	assert.Equal(t, first, second)
}

func TestBuildFeed_PublishDateIsUTC(t *testing.T) {
	v := sampleVideo()
	v.CreatedAt = time.Date(2023, 6, 15, 14, 30, 0, 0, time.FixedZone("CEST", 2*60*60))

	feed, err := BuildFeed("t", "l", []domain.VideoRecord{v})
	require.NoError(t, err)

	assert.Equal(t, "Thu, 15 Jun 2023 12:30:00 +0000", feed.Items[0].PublishDate)
}

func TestBuildFeed_RejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(v *domain.VideoRecord)
		field  string
	}{
		{
			name:   "empty id",
			mutate: func(v *domain.VideoRecord) { v.ID = "" },
			field:  "guid",
		},
		{
			name:   "zero creation time",
			mutate: func(v *domain.VideoRecord) { v.CreatedAt = time.Time{} },
			field:  "pubDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := sampleVideo()
			tt.mutate(&v)

			feed, err := BuildFeed("t", "l", []domain.VideoRecord{v})

			assert.Nil(t, feed)
			require.True(t, apperrors.IsFeedBuild(err))
			var fbe *apperrors.FeedBuildError
			require.ErrorAs(t, err, &fbe)
			assert.Equal(t, tt.field, fbe.Field)
		})
	}
}

func TestBuildFeed_RejectsMissingChannelTitle(t *testing.T) {
	_, err := BuildFeed("", "l", nil)
	assert.True(t, apperrors.IsFeedBuild(err))
}

func TestBuildDescription_Layout(t *testing.T) {
	t.Run("without description", func(t *testing.T) {
		v := sampleVideo()

		desc := BuildDescription(v)

		assert.Equal(t, 1, strings.Count(desc, "<br />"))
		assert.True(t, strings.HasSuffix(desc, "<br />T"))
	})

	t.Run("with description", func(t *testing.T) {
		v := sampleVideo()
		v.Description = "D"

		desc := BuildDescription(v)

		assert.Equal(t, `<a href="https://vod/v1"><img src="https://th/512x288.jpg" /></a><br />D<br />T`, desc)
	})
}

func TestBuildDescription_ParsesAsLinkedThumbnail(t *testing.T) {
	v := sampleVideo()
	v.Description = "Speedrun practice & chat"

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(BuildDescription(v)))
	require.NoError(t, err)

	anchor := doc.Find("a").First()
	href, ok := anchor.Attr("href")
	require.True(t, ok)
	assert.Equal(t, v.URL, href)

	src, ok := anchor.Find("img").Attr("src")
	require.True(t, ok)
	assert.Equal(t, "https://th/512x288.jpg", src)

	assert.Equal(t, 2, doc.Find("br").Length())
	text := doc.Find("body").Text()
	assert.Contains(t, text, "Speedrun practice & chat")
	assert.True(t, strings.HasSuffix(text, "T"))
}

func TestBuildDescription_EscapesMarkup(t *testing.T) {
	v := sampleVideo()
	v.Title = `<script>alert("x")</script>`

	desc := BuildDescription(v)

	assert.NotContains(t, desc, "<script>")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(desc))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Find("script").Length())
}

func TestBuildDescription_ThumbnailSubstitution(t *testing.T) {
	v := sampleVideo()
	v.ThumbnailURLTemplate = "https://static/%{width}/%{height}/%{width}.png"

	desc := BuildDescription(v)

	assert.Contains(t, desc, `<img src="https://static/512/288/512.png" />`)
	assert.NotContains(t, desc, "%{")
}
