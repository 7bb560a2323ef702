// Package feedscout discovers syndication feed URLs (RSS, Atom, JSON
// Feed) reachable from a web page, given the page's HTML and its
// resolved base URL. It never performs I/O itself: fetching the page is
// the caller's job, and the discovery engine is a pure function over
// already-in-memory inputs.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., html/,
// whatwg/) or their domain role (discover/).
package feedscout
