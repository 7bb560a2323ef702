package mock

import (
	"context"

	"github.com/mkowalik/feedscout"
)

var _ feedscout.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of feedscout.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
