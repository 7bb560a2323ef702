package discover

import (
	"net/url"
	"strings"

	"github.com/mkowalik/feedscout"
)

// platform describes a known site-generation platform: how to recognize
// it and which conventional feed paths it exposes at the site root.
type platform struct {
	name       string
	generator  string // case-insensitive substring of the generator meta
	hostSuffix string // URL-shape signature, e.g. platform-hosted subdomains
	feeds      []platformFeed
}

type platformFeed struct {
	path string
	kind feedscout.Kind
}

// platforms is the static signature table. It never changes at runtime;
// within the table, the first matching entry wins.
var platforms = []platform{
	{
		name:      "wordpress",
		generator: "wordpress",
		feeds: []platformFeed{
			{path: "/feed/", kind: feedscout.KindRSS},
			{path: "/feed/atom/", kind: feedscout.KindAtom},
		},
	},
	{
		name:       "tumblr",
		generator:  "tumblr",
		hostSuffix: ".tumblr.com",
		feeds: []platformFeed{
			{path: "/rss", kind: feedscout.KindRSS},
		},
	},
	{
		name:      "hugo",
		generator: "hugo",
		feeds: []platformFeed{
			{path: "/index.xml", kind: feedscout.KindRSS},
		},
	},
	{
		name:      "jekyll",
		generator: "jekyll",
		feeds: []platformFeed{
			{path: "/feed.xml", kind: feedscout.KindAtom},
		},
	},
	{
		name:      "ghost",
		generator: "ghost",
		feeds: []platformFeed{
			{path: "/rss/", kind: feedscout.KindRSS},
		},
	},
}

// PlatformFeeds synthesizes conventional feed paths for a recognized
// site-generation platform. A generator-string match always wins over a
// URL-shape match; the URL shape is consulted only when the generator
// meta is absent or matches no signature. Returned hrefs are
// root-relative so that resolution against the base URL lands on the
// site root, not the current page path. An unrecognized page yields no
// candidates; this detector is purely additive.
func PlatformFeeds(m *feedscout.Markup, baseURL string) []feedscout.Candidate {
	if m.Generator != nil {
		content := strings.ToLower(m.Generator.Content)
		for _, p := range platforms {
			if strings.Contains(content, p.generator) {
				return p.candidates()
			}
		}
	}

	host := hostOf(baseURL)
	if host == "" {
		return nil
	}
	for _, p := range platforms {
		if p.hostSuffix != "" && strings.HasSuffix(host, p.hostSuffix) {
			return p.candidates()
		}
	}
	return nil
}

func (p platform) candidates() []feedscout.Candidate {
	feeds := make([]feedscout.Candidate, 0, len(p.feeds))
	for _, f := range p.feeds {
		feeds = append(feeds, feedscout.Candidate{
			URL:    f.path,
			Kind:   f.kind,
			Source: feedscout.SourceFingerprint,
		})
	}
	return feeds
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
