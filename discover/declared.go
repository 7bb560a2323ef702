package discover

import (
	"strings"

	"github.com/mkowalik/feedscout"
)

// feedMIMETypes maps declared <link> type attributes to feed kinds.
var feedMIMETypes = map[string]feedscout.Kind{
	"application/rss+xml":   feedscout.KindRSS,
	"application/atom+xml":  feedscout.KindAtom,
	"application/json":      feedscout.KindJSON,
	"application/feed+json": feedscout.KindJSON,
}

// DeclaredFeeds returns candidates for feeds the page author explicitly
// advertised via <link rel="alternate"> with a feed MIME type. Hrefs are
// returned unresolved, in document order: declared links are the most
// authoritative source and supply the primary priority signal.
func DeclaredFeeds(m *feedscout.Markup) []feedscout.Candidate {
	var feeds []feedscout.Candidate
	for _, link := range m.Links {
		if !strings.EqualFold(strings.TrimSpace(link.Rel), "alternate") {
			continue
		}
		kind, ok := feedMIMETypes[strings.ToLower(strings.TrimSpace(link.Type))]
		if !ok || link.Href == "" {
			continue
		}
		feeds = append(feeds, feedscout.Candidate{
			URL:    link.Href,
			Kind:   kind,
			Source: feedscout.SourceLink,
		})
	}
	return feeds
}
