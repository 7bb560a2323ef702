package feedscout

import "context"

// Fetcher retrieves HTML from URLs. It is the boundary collaborator
// that supplies pages to discovery; the discovery engine itself never
// performs I/O.
type Fetcher interface {
	// Fetch returns the page's HTML and its final URL after redirects.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (finalURL, html string, err error)

	// Close releases client resources.
	Close() error
}

// DomainLimiter provides per-domain rate limiting for fetches.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
