// Package whatwg provides a whatwg-url based implementation of
// feedscout.URLResolver. WHATWG parsing canonicalizes as it resolves:
// the scheme and host are lower-cased and a port matching the scheme's
// default is dropped, which makes the output directly usable as a
// deduplication key.
package whatwg

import (
	"github.com/nlnwa/whatwg-url/url"

	"github.com/mkowalik/feedscout"
)

// Ensure Resolver implements feedscout.URLResolver at compile time.
var _ feedscout.URLResolver = (*Resolver)(nil)

// Resolver resolves possibly-relative URLs against a base URL into
// absolute, canonical URLs. It is stateless and safe for concurrent use.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve resolves ref against base. The ref may be absolute,
// scheme-relative, absolute-path or relative; an empty ref yields the
// canonicalized base. Returns EINVALID when base is not a valid
// absolute URL or ref cannot be completed against it.
func (r *Resolver) Resolve(base, ref string) (string, error) {
	u, err := url.ParseRef(base, ref)
	if err != nil {
		return "", feedscout.Errorf(feedscout.EINVALID, "cannot resolve %q against %q: %v", ref, base, err)
	}
	return u.Href(false), nil
}
