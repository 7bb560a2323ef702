package discover_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkowalik/feedscout"
	"github.com/mkowalik/feedscout/discover"
)

func generatorMarkup(content string) *feedscout.Markup {
	return &feedscout.Markup{Generator: &feedscout.GeneratorMeta{Content: content}}
}

func TestPlatformFeeds_Generator(t *testing.T) {
	t.Parallel()

	t.Run("wordpress contributes rss and atom paths", func(t *testing.T) {
		t.Parallel()

		feeds := discover.PlatformFeeds(generatorMarkup("WordPress 6.2"), "https://example.com/blog/post")

		require.Len(t, feeds, 2)
		assert.Equal(t, feedscout.Candidate{URL: "/feed/", Kind: feedscout.KindRSS, Source: feedscout.SourceFingerprint}, feeds[0])
		assert.Equal(t, feedscout.Candidate{URL: "/feed/atom/", Kind: feedscout.KindAtom, Source: feedscout.SourceFingerprint}, feeds[1])
	})

	t.Run("hugo contributes index.xml", func(t *testing.T) {
		t.Parallel()

		feeds := discover.PlatformFeeds(generatorMarkup("Hugo 0.118.2"), "https://example.com/")

		require.Len(t, feeds, 1)
		assert.Equal(t, "/index.xml", feeds[0].URL)
		assert.Equal(t, feedscout.KindRSS, feeds[0].Kind)
	})

	t.Run("jekyll contributes feed.xml as atom", func(t *testing.T) {
		t.Parallel()

		feeds := discover.PlatformFeeds(generatorMarkup("Jekyll v4.3.2"), "https://example.com/")

		require.Len(t, feeds, 1)
		assert.Equal(t, "/feed.xml", feeds[0].URL)
		assert.Equal(t, feedscout.KindAtom, feeds[0].Kind)
	})

	t.Run("ghost contributes rss path", func(t *testing.T) {
		t.Parallel()

		feeds := discover.PlatformFeeds(generatorMarkup("Ghost 5.0"), "https://example.com/")

		require.Len(t, feeds, 1)
		assert.Equal(t, "/rss/", feeds[0].URL)
		assert.Equal(t, feedscout.KindRSS, feeds[0].Kind)
	})

	t.Run("tumblr generator contributes rss path", func(t *testing.T) {
		t.Parallel()

		feeds := discover.PlatformFeeds(generatorMarkup("Tumblr (3.0; @someblog)"), "https://example.com/")

		require.Len(t, feeds, 1)
		assert.Equal(t, "/rss", feeds[0].URL)
	})

	t.Run("matches generator content case-insensitively", func(t *testing.T) {
		t.Parallel()

		feeds := discover.PlatformFeeds(generatorMarkup("WORDPRESS"), "https://example.com/")

		assert.Len(t, feeds, 2)
	})

	t.Run("unrecognized generator yields no candidates", func(t *testing.T) {
		t.Parallel()

		feeds := discover.PlatformFeeds(generatorMarkup("Drupal 10"), "https://example.com/")

		assert.Empty(t, feeds)
	})
}

func TestPlatformFeeds_URLShape(t *testing.T) {
	t.Parallel()

	t.Run("tumblr subdomain matches without a generator", func(t *testing.T) {
		t.Parallel()

		feeds := discover.PlatformFeeds(&feedscout.Markup{}, "https://someblog.tumblr.com/post/1234")

		require.Len(t, feeds, 1)
		assert.Equal(t, "/rss", feeds[0].URL)
		assert.Equal(t, feedscout.SourceFingerprint, feeds[0].Source)
	})

	t.Run("generator match wins over URL shape", func(t *testing.T) {
		t.Parallel()

		// A WordPress generator on a tumblr-looking host: the generator
		// signature decides.
		feeds := discover.PlatformFeeds(generatorMarkup("WordPress 6.2"), "https://someblog.tumblr.com/")

		require.Len(t, feeds, 2)
		assert.Equal(t, "/feed/", feeds[0].URL)
	})

	t.Run("unrecognized generator falls back to URL shape", func(t *testing.T) {
		t.Parallel()

		feeds := discover.PlatformFeeds(generatorMarkup("Drupal 10"), "https://someblog.tumblr.com/")

		require.Len(t, feeds, 1)
		assert.Equal(t, "/rss", feeds[0].URL)
	})

	t.Run("plain host yields no candidates", func(t *testing.T) {
		t.Parallel()

		feeds := discover.PlatformFeeds(&feedscout.Markup{}, "https://example.com/")

		assert.Empty(t, feeds)
	})
}
