package feedscout

// Kind identifies the syndication format a candidate is believed to serve.
type Kind string

// Recognized feed kinds.
const (
	KindRSS     Kind = "rss"
	KindAtom    Kind = "atom"
	KindJSON    Kind = "json"
	KindUnknown Kind = "unknown"
)

// Source identifies which detection strategy produced a candidate.
// Sources are listed in priority order: declared links are the most
// authoritative signal and sort before heuristic guesses.
type Source string

// Detection sources.
const (
	SourceLink        Source = "link"
	SourceAnchor      Source = "anchor"
	SourceFingerprint Source = "fingerprint"
	SourceYouTube     Source = "youtube"
)

// Candidate is a discovered feed URL with its inferred format.
// The URL is always absolute, resolved against the page's base URL.
// Candidates are immutable once created; equality for deduplication is
// by canonical URL only.
type Candidate struct {
	URL    string `json:"url"`
	Kind   Kind   `json:"kind"`
	Source Source `json:"source"`
}

// Page is the input to one discovery call: the page's final
// (post-redirect) absolute URL and its HTML text. The caller owns it;
// discovery borrows it for the duration of one call and never retains it.
type Page struct {
	URL  string
	HTML string
}

// FeedFinder discovers feed candidates for a page.
type FeedFinder interface {
	// Discover returns feed candidates for the page, ordered by
	// detection priority and unique by canonical URL. A page with no
	// discoverable feeds yields an empty slice and a nil error; only a
	// malformed base URL is an error (EINVALID).
	Discover(page Page) ([]Candidate, error)

	// DiscoverFromURL classifies a page URL without any HTML, for
	// sources whose feed location is derivable from the URL alone
	// (YouTube channels, playlists, users). Returns (nil, nil) when the
	// URL matches no known shape.
	DiscoverFromURL(pageURL string) (*Candidate, error)
}
