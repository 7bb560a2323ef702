package discover

import (
	"strings"

	"github.com/mkowalik/feedscout"
)

// anchorVocabulary is the fixed set of link texts treated as feed hints
// when the href itself is inconclusive.
var anchorVocabulary = map[string]bool{
	"rss":       true,
	"feed":      true,
	"atom":      true,
	"subscribe": true,
}

// AnchorFeeds guesses feeds from <a> tags whose href path ends in a
// feed-like suffix or whose visible text matches a small fixed
// vocabulary. This is a lower-confidence signal than declared links and
// is ranked after them by the Finder. Hrefs are returned unresolved.
func AnchorFeeds(m *feedscout.Markup) []feedscout.Candidate {
	var feeds []feedscout.Candidate
	for _, a := range m.Anchors {
		if a.Href == "" {
			continue
		}
		if kind, ok := kindFromPath(a.Href); ok {
			feeds = append(feeds, feedscout.Candidate{
				URL:    a.Href,
				Kind:   kind,
				Source: feedscout.SourceAnchor,
			})
			continue
		}
		if anchorVocabulary[strings.ToLower(strings.TrimSpace(a.Text))] {
			feeds = append(feeds, feedscout.Candidate{
				URL:    a.Href,
				Kind:   feedscout.KindUnknown,
				Source: feedscout.SourceAnchor,
			})
		}
	}
	return feeds
}

// kindFromPath reports whether an href's path looks like a feed and the
// kind its suffix implies. Bare .json paths only count when the path
// also mentions "feed": .json anchors are overwhelmingly API links
// (e.g. /wp-json/ endpoints), not feeds.
func kindFromPath(href string) (feedscout.Kind, bool) {
	p := href
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.ToLower(strings.TrimSuffix(p, "/"))
	switch {
	case strings.HasSuffix(p, ".rss"),
		strings.HasSuffix(p, "/rss"),
		strings.HasSuffix(p, "/rss.xml"):
		return feedscout.KindRSS, true
	case strings.HasSuffix(p, ".atom"),
		strings.HasSuffix(p, "/atom"),
		strings.HasSuffix(p, "/atom.xml"):
		return feedscout.KindAtom, true
	case strings.HasSuffix(p, ".json") && strings.Contains(p, "feed"):
		return feedscout.KindJSON, true
	case strings.HasSuffix(p, "/feed"),
		strings.HasSuffix(p, "/feed.xml"),
		strings.HasSuffix(p, "/index.xml"):
		return feedscout.KindUnknown, true
	}
	return feedscout.KindUnknown, false
}
