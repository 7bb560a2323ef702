// Package discover implements the feed discovery engine: a fixed set of
// stateless detectors (declared links, anchor heuristics, platform
// fingerprints, YouTube URL shapes) composed by a Finder that resolves,
// deduplicates and orders their output.
package discover

import (
	"github.com/mkowalik/feedscout"
)

// Ensure Finder implements feedscout.FeedFinder at compile time.
var _ feedscout.FeedFinder = (*Finder)(nil)

// Finder runs all applicable detectors for a page and aggregates their
// results. It holds no cross-call state: concurrent calls on disjoint
// inputs are independent.
type Finder struct {
	scanner  feedscout.MarkupScanner
	resolver feedscout.URLResolver
}

// NewFinder creates a Finder using the given scanner and resolver.
func NewFinder(scanner feedscout.MarkupScanner, resolver feedscout.URLResolver) *Finder {
	return &Finder{scanner: scanner, resolver: resolver}
}

// Discover returns feed candidates for the page, ordered by detection
// priority (declared links, then anchor heuristics, then platform
// fingerprints; document order within each) and unique by canonical URL,
// first occurrence winning. A YouTube page URL short-circuits markup
// scanning entirely and yields that single candidate.
//
// Zero candidates is a valid outcome, not an error. The only error
// condition is a base URL that is not itself a valid absolute URL
// (EINVALID): nothing can be resolved without one. Individual hrefs that
// fail to resolve are dropped silently.
func (f *Finder) Discover(page feedscout.Page) ([]feedscout.Candidate, error) {
	if _, err := f.resolver.Resolve(page.URL, ""); err != nil {
		return nil, feedscout.Errorf(feedscout.EINVALID, "invalid base URL %q", page.URL)
	}

	if c, ok := YouTubeFeed(page.URL); ok {
		return []feedscout.Candidate{c}, nil
	}

	m := f.scanner.Scan(page.HTML)

	raw := DeclaredFeeds(m)
	raw = append(raw, AnchorFeeds(m)...)
	raw = append(raw, PlatformFeeds(m, page.URL)...)

	seen := make(map[string]bool, len(raw))
	feeds := []feedscout.Candidate{}
	for _, c := range raw {
		resolved, err := f.resolver.Resolve(page.URL, c.URL)
		if err != nil {
			continue // malformed href drops the candidate, not the call
		}
		if seen[resolved] {
			continue
		}
		seen[resolved] = true
		c.URL = resolved
		feeds = append(feeds, c)
	}
	return feeds, nil
}

// DiscoverFromURL classifies a page URL without any HTML. It currently
// recognizes YouTube channel, playlist and user URLs. Returns (nil, nil)
// when the URL matches no known shape; returns EINVALID when the URL is
// not a valid absolute URL.
func (f *Finder) DiscoverFromURL(pageURL string) (*feedscout.Candidate, error) {
	if _, err := f.resolver.Resolve(pageURL, ""); err != nil {
		return nil, feedscout.Errorf(feedscout.EINVALID, "invalid URL %q", pageURL)
	}
	if c, ok := YouTubeFeed(pageURL); ok {
		return &c, nil
	}
	return nil, nil
}
