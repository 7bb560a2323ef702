package mock

import "github.com/mkowalik/feedscout"

var _ feedscout.URLResolver = (*URLResolver)(nil)

// URLResolver is a mock implementation of feedscout.URLResolver.
type URLResolver struct {
	ResolveFn func(base, ref string) (string, error)
}

func (r *URLResolver) Resolve(base, ref string) (string, error) {
	return r.ResolveFn(base, ref)
}
