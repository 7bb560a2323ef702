package whatwg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkowalik/feedscout"
	"github.com/mkowalik/feedscout/whatwg"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		ref  string
		want string
	}{
		{
			name: "absolute-path ref resolves against site root",
			base: "https://example.com/blog/post",
			ref:  "/rss.xml",
			want: "https://example.com/rss.xml",
		},
		{
			name: "relative ref merges with base path",
			base: "https://example.com/blog/post",
			ref:  "feed.xml",
			want: "https://example.com/blog/feed.xml",
		},
		{
			name: "dot segments are removed",
			base: "https://example.com/a/b/c",
			ref:  "../../feed",
			want: "https://example.com/feed",
		},
		{
			name: "scheme-relative ref adopts base scheme",
			base: "https://example.com/page",
			ref:  "//cdn.example.com/feed.xml",
			want: "https://cdn.example.com/feed.xml",
		},
		{
			name: "absolute ref replaces base entirely",
			base: "https://example.com/page",
			ref:  "http://other.org/atom.xml",
			want: "http://other.org/atom.xml",
		},
		{
			name: "empty ref yields canonical base",
			base: "https://example.com/blog/",
			ref:  "",
			want: "https://example.com/blog/",
		},
		{
			name: "scheme and host are lower-cased",
			base: "HTTPS://EXAMPLE.COM/Blog/",
			ref:  "Feed.XML",
			want: "https://example.com/Blog/Feed.XML",
		},
		{
			name: "default http port is stripped",
			base: "http://example.com:80/page",
			ref:  "/feed",
			want: "http://example.com/feed",
		},
		{
			name: "default https port is stripped",
			base: "https://example.com:443/page",
			ref:  "/feed",
			want: "https://example.com/feed",
		},
		{
			name: "non-default port is preserved",
			base: "https://example.com:8443/page",
			ref:  "/feed",
			want: "https://example.com:8443/feed",
		},
		{
			name: "query on ref is preserved",
			base: "https://www.youtube.com/",
			ref:  "/feeds/videos.xml?channel_id=UCabc123",
			want: "https://www.youtube.com/feeds/videos.xml?channel_id=UCabc123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := whatwg.NewResolver()
			got, err := r.Resolve(tt.base, tt.ref)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_Resolve_MalformedBase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
	}{
		{name: "no scheme or host", base: "not a url"},
		{name: "empty base", base: ""},
		{name: "path only", base: "/relative/path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := whatwg.NewResolver()
			_, err := r.Resolve(tt.base, "/feed")

			require.Error(t, err)
			assert.Equal(t, feedscout.EINVALID, feedscout.ErrorCode(err))
		})
	}
}
