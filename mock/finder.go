package mock

import "github.com/mkowalik/feedscout"

var _ feedscout.FeedFinder = (*FeedFinder)(nil)

// FeedFinder is a mock implementation of feedscout.FeedFinder.
type FeedFinder struct {
	DiscoverFn        func(page feedscout.Page) ([]feedscout.Candidate, error)
	DiscoverFromURLFn func(pageURL string) (*feedscout.Candidate, error)
}

func (f *FeedFinder) Discover(page feedscout.Page) ([]feedscout.Candidate, error) {
	return f.DiscoverFn(page)
}

func (f *FeedFinder) DiscoverFromURL(pageURL string) (*feedscout.Candidate, error) {
	return f.DiscoverFromURLFn(pageURL)
}
