package feedscout

// URLResolver resolves possibly-relative URLs against a base URL into
// absolute, canonical URLs.
type URLResolver interface {
	// Resolve resolves ref against base and canonicalizes the result:
	// scheme and host are lower-cased and a port matching the scheme's
	// default is stripped. An empty ref yields the canonicalized base.
	// Returns EINVALID when base is not a valid absolute URL or ref
	// cannot be completed against it.
	Resolve(base, ref string) (string, error)
}
